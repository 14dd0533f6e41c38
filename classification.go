package failure

import "strings"

// Classification describes what a caller should do with a caught failure.
type Classification string

const (
	// ClassificationRecoverable indicates the failure can be handled locally.
	ClassificationRecoverable Classification = "RECOVERABLE"

	// ClassificationResourceExhaustion indicates the runtime ran out of memory.
	// The failure may surface in any goroutine, not the one that consumed the memory.
	ClassificationResourceExhaustion Classification = "RESOURCE_EXHAUSTION"

	// ClassificationFatal indicates the runtime may be corrupted and only a clean
	// process restart guarantees correct operation.
	ClassificationFatal Classification = "FATAL"
)

// MustTerminate returns true if the classification calls for a process restart.
func (c Classification) MustTerminate() bool {
	return c == ClassificationFatal || c == ClassificationResourceExhaustion
}

// fatalKinds is the closed set of kinds that leave the runtime in a corrupted state.
// Kinds descending from one of them are fatal as well.
var fatalKinds = [...]*Kind{
	KindInternal,
	KindUnknown,
	KindTerminated,
}

// Classify returns the classification of err itself. Its causes are not inspected.
// Returns ClassificationRecoverable for nil.
func Classify(err error) Classification {
	switch {
	case IsFatal(err):
		return ClassificationFatal
	case IsOutOfMemory(err):
		return ClassificationResourceExhaustion
	default:
		return ClassificationRecoverable
	}
}

// IsFatal reports whether err indicates a situation that may leave the runtime in a
// corrupted state: KindInternal, KindUnknown, KindTerminated or a descendant of one
// of them.
func IsFatal(err error) bool {
	k := kindOf(err)
	if k == nil {
		return false
	}
	for _, fatal := range fatalKinds {
		if k.IsA(fatal) {
			return true
		}
	}
	return false
}

// IsOutOfMemory reports whether the kind of err is exactly KindOutOfMemory.
// Kinds descending from KindOutOfMemory are deliberately not matched, so that domain
// specific exhaustion failures are not mistaken for the runtime running out of memory.
func IsOutOfMemory(err error) bool {
	return kindOf(err) == KindOutOfMemory
}

// IsFatalOrOutOfMemory reports whether err is fatal or an out-of-memory failure.
func IsFatalOrOutOfMemory(err error) bool {
	return IsFatal(err) || IsOutOfMemory(err)
}

// OutOfMemoryKind identifies the memory region implicated by an out-of-memory failure.
type OutOfMemoryKind int

const (
	// OutOfMemoryNone indicates the failure is not a recognized out-of-memory failure.
	OutOfMemoryNone OutOfMemoryKind = iota

	// OutOfMemoryMetaspace indicates class metadata space was exhausted.
	OutOfMemoryMetaspace

	// OutOfMemoryDirectBuffer indicates off-heap direct buffer memory was exhausted.
	OutOfMemoryDirectBuffer

	// OutOfMemoryHeapSpace indicates heap space was exhausted.
	OutOfMemoryHeapSpace
)

// String returns the name of the out-of-memory kind.
func (k OutOfMemoryKind) String() string {
	switch k {
	case OutOfMemoryMetaspace:
		return "metaspace"
	case OutOfMemoryDirectBuffer:
		return "direct-buffer"
	case OutOfMemoryHeapSpace:
		return "heap-space"
	default:
		return "none"
	}
}

// outOfMemoryInfixes are the runtime-emitted message fragments, in matching order.
var outOfMemoryInfixes = [...]struct {
	kind  OutOfMemoryKind
	infix string
}{
	{OutOfMemoryMetaspace, "metaspace"},
	{OutOfMemoryDirectBuffer, "direct buffer memory"},
	{OutOfMemoryHeapSpace, "java heap space"},
}

// ClassifyOutOfMemory returns the memory region named by an out-of-memory failure.
// The kind of err must be exactly KindOutOfMemory and its message must contain one of
// the runtime fragments, compared case-insensitively. Otherwise OutOfMemoryNone is
// returned.
func ClassifyOutOfMemory(err error) OutOfMemoryKind {
	if !IsOutOfMemory(err) {
		return OutOfMemoryNone
	}
	msg, ok := messageOf(err)
	if !ok {
		return OutOfMemoryNone
	}
	msg = strings.ToLower(msg)
	for _, m := range outOfMemoryInfixes {
		if strings.Contains(msg, m.infix) {
			return m.kind
		}
	}
	return OutOfMemoryNone
}

// IsMetaspaceOutOfMemory reports whether err is a metaspace out-of-memory failure.
func IsMetaspaceOutOfMemory(err error) bool {
	return ClassifyOutOfMemory(err) == OutOfMemoryMetaspace
}

// IsDirectOutOfMemory reports whether err is a direct buffer out-of-memory failure.
func IsDirectOutOfMemory(err error) bool {
	return ClassifyOutOfMemory(err) == OutOfMemoryDirectBuffer
}

// IsHeapSpaceOutOfMemory reports whether err is a heap space out-of-memory failure.
func IsHeapSpaceOutOfMemory(err error) bool {
	return ClassifyOutOfMemory(err) == OutOfMemoryHeapSpace
}
