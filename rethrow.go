package failure

import "fmt"

// Rethrow prepares err to be returned across a boundary that expects kinded failures.
// Errors that already carry a Kind are returned unchanged. Any other error is wrapped
// in a KindFailure with parentMessage as message and err as cause.
// Returns nil if err is nil.
func Rethrow(err error, parentMessage string) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(Kinded); ok {
		return err
	}
	return Wrap(err, KindFailure, parentMessage)
}

// ToFailure converts err to a *Failure. A *Failure is returned as is; any other error
// becomes the cause of a new KindFailure whose message is err's text.
// Returns nil if err is nil.
func ToFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	if f, ok := err.(*Failure); ok {
		return f
	}
	return Wrap(err, KindFailure, err.Error())
}

// Throw panics with ToFailure(err). It does nothing if err is nil.
func Throw(err error) {
	if err != nil {
		panic(ToFailure(err))
	}
}

// RethrowIfFatal panics with err if it is fatal to the runtime. See IsFatal.
//
// It belongs at points that handle most failures locally but must let runtime
// corruption escape immediately:
//
//	if err := handler(msg); err != nil {
//	    failure.RethrowIfFatal(err)
//	    // handle the failure locally
//	}
func RethrowIfFatal(err error) {
	if IsFatal(err) {
		panic(err)
	}
}

// RethrowIfFatalOrOutOfMemory panics with err if it is fatal to the runtime or an
// out-of-memory failure. See IsFatalOrOutOfMemory.
func RethrowIfFatalOrOutOfMemory(err error) {
	if IsFatalOrOutOfMemory(err) {
		panic(err)
	}
}

// Recover converts a panic into an error stored in *errp. It must be deferred
// directly:
//
//	func run() (err error) {
//	    defer failure.Recover(&err)
//	    ...
//	}
//
// A panic value that is an error is used as is; any other value becomes a KindFailure
// carrying its text. Fatal failures are not recovered: Recover panics again with them.
// If *errp already holds an error, the recovered error is recorded as suppressed with
// FirstOrSuppressed. If errp is nil the panic continues.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if errp == nil {
		panic(r)
	}

	err, ok := r.(error)
	if !ok {
		err = New(KindFailure, fmt.Sprint(r))
	}
	RethrowIfFatal(err)

	*errp = FirstOrSuppressed(err, *errp)
}
