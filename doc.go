// Package failure provides cause-chain traversal and classification for errors.
//
// Services that must never crash unexpectedly still have to recognize the few
// failures after which they cannot safely continue. This package classifies a caught
// error as recoverable, resource exhaustion or fatal to the runtime, searches its
// cause chain, strips wrapper errors to reach the real cause, merges failures from
// best-effort cleanup into one, and enriches out-of-memory failures with actionable
// text.
//
// # Features
//
//   - Kind hierarchy for classifying failures (KindInternal, KindOutOfMemory, ...)
//   - Fatal and out-of-memory predicates with a fixed policy
//   - Chain search by kind, Go type, predicate or message fragment
//   - Wrapper stripping (completion, execution and backoff.Permanent wrappers)
//   - In-place message rewriting without changing identity or chain position
//   - Suppressed companions for cleanup failures
//   - Panic boundaries that only let fatal failures escape
//   - Text and JSON rendering of whole chains
//
// # Design Principles
//
//   - Works over any error: the chain is what errors.Unwrap returns
//   - Iteration, not recursion, over cause chains
//   - Cycles are detected: every distinct node is visited at most once
//   - No logging, no retries, no I/O
//
// # Quick Start
//
// Creating failures:
//
//	err := failure.New(failure.KindOutOfMemory, "Java heap space")
//	err := failure.Wrap(cause, failure.KindExecution, "task failed")
//
// Deciding whether to terminate. Classify looks at err itself only, so search the
// chain when err may arrive wrapped by fmt.Errorf or another foreign wrapper:
//
//	if failure.FindFunc(err, failure.IsFatalOrOutOfMemory) != nil {
//	    os.Exit(1)
//	}
//
// Finding the real cause:
//
//	cause := failure.StripCompletion(err)
//	if node := failure.FindMessage(err, "connection reset"); node != nil {
//	    // reconnect
//	}
//
// Merging cleanup failures:
//
//	var err error
//	for _, c := range closers {
//	    if cerr := c.Close(); cerr != nil {
//	        err = failure.FirstOrSuppressed(cerr, err)
//	    }
//	}
//
// Enriching out-of-memory failures:
//
//	_ = failure.EnrichOutOfMemory(err, failure.OutOfMemoryMessages{
//	    Metaspace: "Metaspace. The task loads too many classes.",
//	})
//
// # Kinds
//
// A Kind names a category of failure and may have a parent kind. Errors carry a kind by
// implementing Kinded; *Failure does. The built-in kinds are:
//
//   - KindFailure: the root kind
//   - KindRuntime: KindInternal, KindUnknown, KindOutOfMemory
//   - KindTerminated: a goroutine was forcefully stopped
//   - KindCompletion, KindExecution: wrappers around the real cause
//
// Callers define their own kinds with NewKind. Search and stripping match a kind and all
// of its descendants.
//
// # Classification
//
// A failure is fatal if its kind is KindInternal, KindUnknown or KindTerminated, or
// descends from one of them. This set is fixed. Out-of-memory matching requires the
// kind to be exactly KindOutOfMemory, so domain kinds derived from it are not mistaken
// for the runtime running out of memory.
//
// # Message Rewriting
//
// Most Go errors are immutable. A *Failure keeps its message in a mutable cell, so
// UpdateMessages and EnrichOutOfMemory can replace it in place. Asking to rewrite a
// node that does not implement MessageSetter returns an error wrapping
// ErrImmutableMessage instead of silently skipping the node.
//
// # Concurrency
//
// Traversals are synchronous and hold no references after they return. A *Failure is
// not synchronized: mutating a chain while another goroutine traverses it is undefined.
package failure
