package failure

// Kind identifies the category of a failure.
// Kinds form a tree through their parent so that a kind can be tested against any of
// its ancestors, the way a concrete failure is also an instance of its broader category.
type Kind struct {
	name   string
	parent *Kind
}

// NewKind creates a kind with the given name whose parent is parent.
// A nil parent creates a new root kind.
//
// Example:
//
//	var KindQuotaExhausted = failure.NewKind("QUOTA_EXHAUSTED", failure.KindOutOfMemory)
func NewKind(name string, parent *Kind) *Kind {
	return &Kind{name: name, parent: parent}
}

// Name returns the name of the kind. Returns an empty string for a nil kind.
func (k *Kind) Name() string {
	if k == nil {
		return ""
	}
	return k.name
}

// String implements fmt.Stringer.
func (k *Kind) String() string {
	return k.Name()
}

// Parent returns the parent kind, or nil for a root kind.
func (k *Kind) Parent() *Kind {
	if k == nil {
		return nil
	}
	return k.parent
}

// IsA reports whether k is target or descends from it.
// A nil kind is never a target, and nothing is a nil target.
func (k *Kind) IsA(target *Kind) bool {
	if target == nil {
		return false
	}
	for c := k; c != nil; c = c.parent {
		if c == target {
			return true
		}
	}
	return false
}

// Built-in kinds.
var (
	// KindFailure is the root kind and the kind used when an arbitrary error has to be
	// converted into a *Failure.
	KindFailure = NewKind("FAILURE", nil)

	// Runtime kinds.

	// KindRuntime groups failures raised by the execution environment itself.
	KindRuntime = NewKind("RUNTIME", KindFailure)

	// KindInternal indicates an internal error of the runtime. Fatal.
	KindInternal = NewKind("INTERNAL", KindRuntime)

	// KindUnknown indicates an unknown but serious runtime error. Fatal.
	KindUnknown = NewKind("UNKNOWN", KindRuntime)

	// KindOutOfMemory indicates the runtime could not satisfy an allocation.
	KindOutOfMemory = NewKind("OUT_OF_MEMORY", KindRuntime)

	// KindTerminated indicates a goroutine was forcefully stopped, leaving shared
	// state possibly inconsistent. Fatal.
	KindTerminated = NewKind("TERMINATED", KindFailure)

	// Wrapper kinds.

	// KindCompletion wraps a failure raised by an asynchronous completion.
	KindCompletion = NewKind("COMPLETION", KindFailure)

	// KindExecution wraps a failure raised while computing a result.
	KindExecution = NewKind("EXECUTION", KindFailure)
)

// Kinded is implemented by errors that carry a Kind.
// Errors that do not implement it have no kind and are never classified as fatal or
// out-of-memory.
type Kinded interface {
	error
	Kind() *Kind
}

// kindOf returns the kind of err itself, without looking at its cause.
func kindOf(err error) *Kind {
	if k, ok := err.(Kinded); ok {
		return k.Kind()
	}
	return nil
}
