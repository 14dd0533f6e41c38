package failure

import (
	"errors"
	"iter"
	"reflect"
)

// Cause returns the cause of err, or nil if it has none.
// Only the single-cause form of Unwrap is followed; errors that unwrap into a list
// (errors.Join, multierr) end the chain.
func Cause(err error) error {
	return errors.Unwrap(err)
}

// Chain returns an iterator over err and its causes, outermost first.
//
// Each distinct node is yielded at most once: when a cause leads back to a node
// already visited, iteration stops. Pointer-shaped errors are tracked by address and
// comparable values by equality. Chains built from non-comparable error values are
// assumed to terminate.
func Chain(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		var seen visitSet
		for node := err; node != nil; node = Cause(node) {
			if !seen.visit(node) || !yield(node) {
				return
			}
		}
	}
}

// RootCause returns the last node of err's chain, or nil if err is nil.
func RootCause(err error) error {
	var last error
	for node := range Chain(err) {
		last = node
	}
	return last
}

// linearVisitLimit is the number of nodes tracked by linear scan before switching to
// a map. Most chains are a handful of nodes deep.
const linearVisitLimit = 16

type visitSet struct {
	keys  []any
	index map[any]struct{}
}

// visit records err and reports whether it had not been seen before.
// Errors without a usable identity are always reported as new.
func (s *visitSet) visit(err error) bool {
	key, ok := identity(err)
	if !ok {
		return true
	}

	if s.index != nil {
		if _, seen := s.index[key]; seen {
			return false
		}
		s.index[key] = struct{}{}
		return true
	}

	for _, k := range s.keys {
		if k == key {
			return false
		}
	}
	s.keys = append(s.keys, key)

	if len(s.keys) > linearVisitLimit {
		s.index = make(map[any]struct{}, len(s.keys))
		for _, k := range s.keys {
			s.index[k] = struct{}{}
		}
		s.keys = nil
	}
	return true
}

type pointerKey struct {
	typ reflect.Type
	ptr uintptr
}

// identity returns a comparable key for err, and false when err cannot be compared
// without risking a runtime panic.
func identity(err error) (any, bool) {
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return pointerKey{typ: v.Type(), ptr: v.Pointer()}, true
	}
	if v.Comparable() {
		return err, true
	}
	return nil, false
}

// sameError reports whether a and b are the same error value.
func sameError(a, b error) bool {
	ka, okA := identity(a)
	kb, okB := identity(b)
	return okA && okB && ka == kb
}

// isNilPointer reports whether err is a non-nil interface holding a nil pointer.
func isNilPointer(err error) bool {
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
