package failure

import "go.uber.org/multierr"

// FirstOrSuppressed records newErr as a suppressed companion of previous and returns
// previous, or returns newErr when there is no previous error.
//
// It is meant for best-effort cleanup that must run every step and report every
// failure:
//
//	var err error
//	if cerr := conn.Close(); cerr != nil {
//	    err = failure.FirstOrSuppressed(cerr, err)
//	}
//	if ferr := file.Close(); ferr != nil {
//	    err = failure.FirstOrSuppressed(ferr, err)
//	}
//	return err
//
// newErr is returned unchanged when previous is nil, a nil pointer such as a nil
// *Failure, or newErr itself. When previous
// implements Suppressor, newErr is appended to it in insertion order and previous is
// returned. Otherwise both are combined with multierr.Append, previous first.
//
// It panics if newErr is nil.
func FirstOrSuppressed(newErr, previous error) error {
	if newErr == nil {
		panic("failure: FirstOrSuppressed called with a nil newErr")
	}
	if previous == nil || isNilPointer(previous) || sameError(newErr, previous) {
		return newErr
	}
	if s, ok := previous.(Suppressor); ok {
		s.AddSuppressed(newErr)
		return previous
	}
	return multierr.Append(previous, newErr)
}

// Suppressed returns the companions recorded for err: the suppressed list of a
// Suppressor, or every error after the first in a multierr combination.
// Returns nil if there are none.
func Suppressed(err error) []error {
	if err == nil {
		return nil
	}
	if s, ok := err.(Suppressor); ok {
		return s.Suppressed()
	}
	if errs := multierr.Errors(err); len(errs) > 1 {
		return errs[1:]
	}
	return nil
}
