package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse     Phase = "parse"     // markup or fragment parsing
	PhaseStyle     Phase = "style"     // stylesheet parsing and application
	PhaseLayout    Phase = "layout"    // render/layout computation
	PhaseLifecycle Phase = "lifecycle" // document construction/teardown
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidMarkup Kind = "invalid_markup"
	KindInvalidCSS    Kind = "invalid_css"
	KindNilHandle     Kind = "nil_handle"
	KindOutOfBounds   Kind = "out_of_bounds"
	KindClosed        Kind = "closed"
	KindUnsupported   Kind = "unsupported"
	KindInvalidInput  Kind = "invalid_input"
)

// Error is the structured error type used at the boundary. Entry points
// with a sentinel-default contract swallow it; only construction and
// mutation operations surface it to the caller.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidMarkup creates a markup parse error
func InvalidMarkup(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidMarkup,
		Cause:  cause,
		Detail: "markup could not be parsed",
	}
}

// InvalidCSS creates a stylesheet parse error
func InvalidCSS(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidCSS,
		Cause:  cause,
		Detail: "stylesheet could not be parsed",
	}
}

// NilHandle creates a nil handle error
func NilHandle(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilHandle,
		Detail: fmt.Sprintf("nil %s handle", what),
	}
}

// Closed creates an error for operations on a destroyed document
func Closed(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: "document already destroyed",
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}
