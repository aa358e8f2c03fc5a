package report

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cecil-the-coder/error-kit/pkg/types"
)

// Report is a serializable snapshot of one error and everything attached to
// it. Cause and Suppressed recurse into the same shape.
type Report struct {
	// Class is the error's own class (domain, defect, fatal, interrupt).
	Class string `yaml:"class" json:"class"`

	// Message is the error's Error() string.
	Message string `yaml:"message" json:"message"`

	// Code is the domain category tag, when the error carries one.
	Code string `yaml:"code,omitempty" json:"code,omitempty"`

	// CorrelationID traces the failure across wrap and reconstruction
	// boundaries, when the error carries one.
	CorrelationID string `yaml:"correlation_id,omitempty" json:"correlation_id,omitempty"`

	// ExtraInfo holds the ordered diagnostic values, rendered as strings.
	ExtraInfo []string `yaml:"extra_info,omitempty" json:"extra_info,omitempty"`

	// Stack holds the frames captured at the error's construction site.
	Stack []string `yaml:"stack,omitempty" json:"stack,omitempty"`

	// Cause is the causal parent, if any.
	Cause *Report `yaml:"cause,omitempty" json:"cause,omitempty"`

	// Suppressed holds the secondary failures recorded alongside this one.
	Suppressed []*Report `yaml:"suppressed,omitempty" json:"suppressed,omitempty"`
}

// maxDepth bounds recursion through cause chains and suppressed trees.
const maxDepth = 32

// New builds a Report for err, or nil for a nil error.
func New(err error) *Report {
	return build(err, maxDepth)
}

func build(err error, depth int) *Report {
	if err == nil {
		return nil
	}
	if depth <= 0 {
		return &Report{Class: string(types.ClassOf(err)), Message: "... (depth limit reached)"}
	}

	r := &Report{
		Class:   string(types.ClassOf(err)),
		Message: err.Error(),
	}
	if c, ok := err.(interface{ Code() types.Code }); ok {
		r.Code = string(c.Code())
	}
	if c, ok := err.(types.Correlated); ok {
		r.CorrelationID = c.CorrelationID()
	}
	if h, ok := err.(types.HasExtraInfo); ok {
		for _, v := range h.ExtraInfo() {
			r.ExtraInfo = append(r.ExtraInfo, fmt.Sprint(v))
		}
	}
	if stk := types.StackOf(err); len(stk) > 0 {
		r.Stack = stk.Strings()
	}
	if cause := errors.Unwrap(err); cause != nil {
		r.Cause = build(cause, depth-1)
	}
	for _, sup := range types.Suppressed(err) {
		r.Suppressed = append(r.Suppressed, build(sup, depth-1))
	}
	return r
}

// YAML renders the report as YAML.
func (r *Report) YAML() (string, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() (string, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
