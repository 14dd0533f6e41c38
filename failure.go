package failure

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrImmutableMessage is returned when a message rewrite is requested for an error
// that does not implement MessageSetter.
var ErrImmutableMessage = errors.New("failure: message cannot be rewritten in place")

// MessageSetter is implemented by errors whose message can be rewritten in place.
type MessageSetter interface {
	SetMessage(message string)
}

// Suppressor is implemented by errors that record suppressed companions.
type Suppressor interface {
	AddSuppressed(err error)
	Suppressed() []error
}

// Failure is the concrete failure type of this package.
//
// A Failure has a kind, an optional message, an optional cause and an ordered list of
// suppressed companions. Unlike most Go errors its message is a mutable cell: it can
// be rewritten in place with SetMessage without changing the identity of the Failure
// or its position in a chain.
//
// A Failure is not safe for concurrent mutation.
type Failure struct {
	kind       *Kind
	message    string
	hasMessage bool
	cause      error
	suppressed []error
}

// Error returns the string representation of the failure.
// Format: "[KIND] message", "[KIND] message: cause", "[KIND]" or "[KIND]: cause".
func (f *Failure) Error() string {
	switch {
	case f == nil:
		return "<nil>"
	case f.hasMessage && f.cause != nil:
		return fmt.Sprintf("[%s] %s: %v", f.kind, f.message, f.cause)
	case f.hasMessage:
		return fmt.Sprintf("[%s] %s", f.kind, f.message)
	case f.cause != nil:
		return fmt.Sprintf("[%s]: %v", f.kind, f.cause)
	default:
		return fmt.Sprintf("[%s]", f.kind)
	}
}

// Accessors are safe to call on a nil *Failure.

// Kind returns the kind of the failure.
func (f *Failure) Kind() *Kind {
	if f == nil {
		return nil
	}
	return f.kind
}

// Message returns the message, or an empty string if the failure has none.
func (f *Failure) Message() string {
	if f == nil {
		return ""
	}
	return f.message
}

// HasMessage reports whether the failure carries a message.
func (f *Failure) HasMessage() bool {
	return f != nil && f.hasMessage
}

// SetMessage rewrites the message in place.
// The kind, cause and suppressed companions are left untouched.
func (f *Failure) SetMessage(message string) {
	f.message = message
	f.hasMessage = true
}

// Unwrap returns the cause for errors.Is and errors.As compatibility.
func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.cause
}

// AddSuppressed appends err to the suppressed companions.
// Suppressed companions are not part of the cause chain.
// It panics if err is nil or is the failure itself.
func (f *Failure) AddSuppressed(err error) {
	if err == nil {
		panic("failure: cannot suppress a nil error")
	}
	if other, ok := err.(*Failure); ok && other == f {
		panic("failure: a failure cannot suppress itself")
	}
	f.suppressed = append(f.suppressed, err)
}

// Suppressed returns a copy of the suppressed companions in insertion order.
// Returns nil if none have been added.
func (f *Failure) Suppressed() []error {
	if f == nil || len(f.suppressed) == 0 {
		return nil
	}
	out := make([]error, len(f.suppressed))
	copy(out, f.suppressed)
	return out
}

// Format implements fmt.Formatter. The %+v verb renders the full trace as produced
// by Stringify; %v and %s render Error.
func (f *Failure) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, Stringify(f))
			return
		}
		_, _ = io.WriteString(s, f.Error())
	case 's':
		_, _ = io.WriteString(s, f.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", f.Error())
	}
}

type messager interface {
	Message() string
}

// messageOf returns the message of err itself, and false when it has none.
func messageOf(err error) (string, bool) {
	switch e := err.(type) {
	case *Failure:
		return e.Message(), e.HasMessage()
	case messager:
		return e.Message(), true
	default:
		return ownText(err)
	}
}

// ownText returns the text a wrapper adds in front of its cause, as in
// fmt.Errorf("load: %w", cause). A wrapper whose text is exactly its cause's has no
// message of its own.
func ownText(err error) (string, bool) {
	text := err.Error()
	cause := Cause(err)
	if cause == nil || isNilPointer(cause) || sameError(err, cause) {
		return text, true
	}
	causeText := cause.Error()
	if text == causeText {
		return "", false
	}
	return strings.TrimSuffix(text, ": "+causeText), true
}
