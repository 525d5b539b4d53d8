package goerror

import "errors"

// Reason describes a known failure: an application code, the message shown to
// clients, and how it is classified. Reasons are plain values meant to be
// declared once and shared; they are not errors themselves.
type Reason struct {
	ID      string
	Message string
	Type    Type
	Code    Code
}

// New builds a fresh *Error for the reason. kv adds field/message pairs to the
// error body; an odd trailing key is ignored.
func (r Reason) New(kv ...string) error {
	e := newError(nil, r.Message, r.Type, r.Code)
	e.reason = r.ID
	e.fields = pairs(kv)
	return e
}

// Wrap is New with an underlying cause kept for errors.Is/As and logs.
func (r Reason) Wrap(cause error, kv ...string) error {
	e := newError(cause, r.Message, r.Type, r.Code)
	e.reason = r.ID
	e.fields = pairs(kv)
	return e
}

// Is reports whether err was built from this reason.
func (r Reason) Is(err error) bool {
	var gerr *Error
	if !errors.As(err, &gerr) {
		return false
	}
	return gerr.reason == r.ID
}
