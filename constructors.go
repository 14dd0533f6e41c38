package failure

import "fmt"

// New creates a Failure of the given kind with a message.
// A nil kind is replaced by KindFailure.
//
// Example:
//
//	err := failure.New(failure.KindOutOfMemory, "Java heap space")
func New(kind *Kind, message string) *Failure {
	return &Failure{
		kind:       orDefault(kind),
		message:    message,
		hasMessage: true,
	}
}

// Newf creates a Failure with a formatted message.
//
// Example:
//
//	err := failure.Newf(failure.KindInternal, "corrupt segment %d", id)
func Newf(kind *Kind, format string, args ...interface{}) *Failure {
	return New(kind, fmt.Sprintf(format, args...))
}

// Of creates a Failure of the given kind without a message.
// cause may be nil.
//
// Example:
//
//	err := failure.Of(failure.KindCompletion, cause)
func Of(kind *Kind, cause error) *Failure {
	return &Failure{
		kind:  orDefault(kind),
		cause: cause,
	}
}

// Wrap creates a Failure of the given kind with a message whose cause is err.
// A nil err produces a Failure without a cause.
//
// Example:
//
//	result, err := task.Get(ctx)
//	if err != nil {
//	    return failure.Wrap(err, failure.KindExecution, "task failed")
//	}
func Wrap(err error, kind *Kind, message string) *Failure {
	f := New(kind, message)
	f.cause = err
	return f
}

// Wrapf wraps err with a formatted message.
func Wrapf(err error, kind *Kind, format string, args ...interface{}) *Failure {
	return Wrap(err, kind, fmt.Sprintf(format, args...))
}

func orDefault(kind *Kind) *Kind {
	if kind == nil {
		return KindFailure
	}
	return kind
}
