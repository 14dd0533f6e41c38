package failure

import (
	"strings"

	"github.com/cenkalti/backoff/v4"
)

// Predicate reports whether a single node of a chain matches.
type Predicate func(err error) bool

// FindKind returns the first node of err's chain whose kind is kind or descends from
// it. Returns nil if no node matches or if either argument is nil.
//
// Example:
//
//	if oom := failure.FindKind(err, failure.KindOutOfMemory); oom != nil {
//	    // Handle memory pressure
//	}
func FindKind(err error, kind *Kind) error {
	if kind == nil {
		return nil
	}
	return FindFunc(err, func(node error) bool {
		return kindOf(node).IsA(kind)
	})
}

// Find returns the first node of err's chain whose dynamic type is T.
// When T is an interface type, the first node implementing it is returned.
//
// Unlike errors.As, Find only follows the single-cause chain and never calls As
// methods.
//
// Example:
//
//	if pathErr, ok := failure.Find[*fs.PathError](err); ok {
//	    fmt.Println(pathErr.Path)
//	}
func Find[T error](err error) (T, bool) {
	for node := range Chain(err) {
		if t, ok := node.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// FindFunc returns the first node of err's chain for which pred returns true.
// Returns nil if no node matches or if either argument is nil.
func FindFunc(err error, pred Predicate) error {
	if pred == nil {
		return nil
	}
	for node := range Chain(err) {
		if pred(node) {
			return node
		}
	}
	return nil
}

// FindMessage returns the first node of err's chain whose message contains text.
// Matching is case-sensitive. Nodes without a message never match.
//
// The message of a *Failure is its own message, excluding its cause. For other
// errors it is the result of a Message() string method when present, or Error().
func FindMessage(err error, text string) error {
	return FindFunc(err, func(node error) bool {
		msg, ok := messageOf(node)
		return ok && strings.Contains(msg, text)
	})
}

// Strip returns the first node of err's chain that is not of the wrapper kind.
//
// Wrappers are removed only while they have a cause: a wrapper at the end of the
// chain is returned as is. err is returned unchanged if it is not a wrapper.
//
// Example:
//
//	err = failure.Strip(err, failure.KindCompletion)
func Strip(err error, wrapper *Kind) error {
	if wrapper == nil {
		return err
	}
	return stripWhile(err, func(node error) bool {
		return kindOf(node).IsA(wrapper)
	})
}

// StripType is Strip for wrappers identified by their Go type instead of a Kind.
func StripType[T error](err error) error {
	return stripWhile(err, func(node error) bool {
		_, ok := node.(T)
		return ok
	})
}

// StripCompletion removes KindCompletion wrappers from err.
func StripCompletion(err error) error {
	return Strip(err, KindCompletion)
}

// StripExecution removes KindExecution wrappers from err.
func StripExecution(err error) error {
	return Strip(err, KindExecution)
}

// StripPermanent removes the wrappers added by backoff.Permanent to stop a retry
// loop, returning the error that caused the retry to give up.
//
// Example:
//
//	err := backoff.Retry(operation, policy)
//	err = failure.StripPermanent(err)
func StripPermanent(err error) error {
	return StripType[*backoff.PermanentError](err)
}

func stripWhile(err error, isWrapper Predicate) error {
	current := err
	for node := range Chain(err) {
		current = node
		if !isWrapper(node) || Cause(node) == nil {
			break
		}
	}
	return current
}
