package errlog

import (
	"go.uber.org/zap"

	"github.com/cecil-the-coder/error-kit/pkg/types"
)

// Fields converts err into zap fields. The error itself, its class, and any
// correlation ID are always present; extra info, suppressed entries, and the
// construction stack are added when the error carries them. Stacks are
// emitted only for defects and fatal signals, where the capture site is the
// diagnosis.
func Fields(err error) []zap.Field {
	if err == nil {
		return nil
	}
	class := types.ClassOf(err)
	fields := []zap.Field{
		zap.Error(err),
		zap.String("error_class", string(class)),
	}
	if c, ok := err.(types.Correlated); ok && c.CorrelationID() != "" {
		fields = append(fields, zap.String("correlation_id", c.CorrelationID()))
	}
	if h, ok := err.(types.HasExtraInfo); ok {
		if extra := h.ExtraInfo(); len(extra) > 0 {
			fields = append(fields, zap.Any("extra_info", extra))
		}
	}
	if sup := types.Suppressed(err); len(sup) > 0 {
		msgs := make([]string, len(sup))
		for i, s := range sup {
			msgs[i] = s.Error()
		}
		fields = append(fields, zap.Strings("suppressed", msgs))
	}
	if class == types.ClassDefect || class == types.ClassFatal {
		if stk := types.StackOf(err); len(stk) > 0 {
			fields = append(fields, zap.Strings("stack", stk.Strings()))
		}
	}
	return fields
}

// Write logs err at a level matching its class: fatal signals and defects at
// Error, everything else at Warn. A nil error logs nothing.
func Write(log *zap.Logger, msg string, err error) {
	if log == nil || err == nil {
		return
	}
	if types.NeverWrap(err) {
		log.Error(msg, Fields(err)...)
		return
	}
	log.Warn(msg, Fields(err)...)
}
