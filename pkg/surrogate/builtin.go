package surrogate

import (
	"github.com/cecil-the-coder/error-kit/pkg/types"
)

// registerBuiltins installs factories for the kit's own error types. This is
// configuration, not logic: each entry only knows which constructor to call
// and which fields to carry across. Foreign types register their own
// factories via Register or Install.
func registerBuiltins(r *Registry) {
	r.Register((*types.WrappedError)(nil), func(template, cause error) error {
		t := template.(*types.WrappedError)
		return types.NewWrappedMsg(t.Message(), cause, t.ExtraInfo()...)
	})

	r.Register((*types.FatalError)(nil), func(template, cause error) error {
		t := template.(*types.FatalError)
		return types.NewFatalCause(t.Message(), cause)
	})

	r.Register((*types.DefectError)(nil), func(template, cause error) error {
		t := template.(*types.DefectError)
		return types.NewDefectCause(t.Message(), cause)
	})

	// InterruptError takes no cause in its plain constructor; the dedicated
	// reconstruction constructor keeps the supplied cause while the class
	// still reports interruption.
	r.Register((*types.InterruptError)(nil), func(template, cause error) error {
		t := template.(*types.InterruptError)
		return types.NewInterruptCause(t.Reason(), cause)
	})

	r.Register((*types.DomainError)(nil), func(template, cause error) error {
		t := template.(*types.DomainError)
		return types.NewDomainCause(t.Code(), t.Message(), cause)
	})
}
