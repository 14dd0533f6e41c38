package failure

import "fmt"

// Classifier returns the new message for a node of a chain, and false to leave the
// node untouched.
type Classifier func(err error) (message string, ok bool)

// UpdateMessages rewrites messages along err's chain.
//
// fn is called once per node, outermost first. When it returns true the node's message
// is replaced in place: the node keeps its identity, kind and cause. Traversal always
// continues to the cause. A nil fn is a no-op.
//
// Only nodes implementing MessageSetter can be rewritten. If fn asks to rewrite any
// other node, or a nil pointer, traversal stops and an error wrapping
// ErrImmutableMessage is returned; nodes already visited keep their new message.
// Wrappers that cache their text, such as those built by fmt.Errorf, keep reporting
// the old message of their cause.
//
// The chain must not be mutated concurrently.
func UpdateMessages(err error, fn Classifier) error {
	if fn == nil {
		return nil
	}
	for node := range Chain(err) {
		msg, ok := fn(node)
		if !ok {
			continue
		}
		setter, ok := node.(MessageSetter)
		if !ok {
			return fmt.Errorf("%w: %T", ErrImmutableMessage, node)
		}
		if isNilPointer(node) {
			return fmt.Errorf("%w: nil %T", ErrImmutableMessage, node)
		}
		setter.SetMessage(msg)
	}
	return nil
}

// OutOfMemoryMessages holds the replacement messages used by EnrichOutOfMemory.
// An empty field disables rewriting for that kind of out-of-memory failure.
type OutOfMemoryMessages struct {
	Metaspace    string
	DirectBuffer string
	HeapSpace    string
}

// forKind returns the replacement for kind, and false if there is none.
func (m OutOfMemoryMessages) forKind(kind OutOfMemoryKind) (string, bool) {
	var msg string
	switch kind {
	case OutOfMemoryMetaspace:
		msg = m.Metaspace
	case OutOfMemoryDirectBuffer:
		msg = m.DirectBuffer
	case OutOfMemoryHeapSpace:
		msg = m.HeapSpace
	}
	return msg, msg != ""
}

// EnrichOutOfMemory replaces the messages of out-of-memory failures in err's chain
// with the matching text from msgs, typically a description of the likely cause and
// the setting to change. Nodes that are not out-of-memory failures, and kinds without
// a replacement, are left untouched.
//
// Example:
//
//	_ = failure.EnrichOutOfMemory(err, failure.OutOfMemoryMessages{
//	    HeapSpace: "Java heap space. Increase the task heap size.",
//	})
func EnrichOutOfMemory(err error, msgs OutOfMemoryMessages) error {
	return UpdateMessages(err, func(node error) (string, bool) {
		return msgs.forKind(ClassifyOutOfMemory(node))
	})
}
