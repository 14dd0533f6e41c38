package failure

import (
	"fmt"
	"strings"
)

// NullString is the text rendered by Stringify for a nil error.
const NullString = "(null)"

const (
	suppressedCaption = "Suppressed: "
	causedByCaption   = "Caused by: "
)

// Stringify renders err and its chain as multi-line text suitable for logs.
//
// The first line describes err, each following "Caused by:" line describes the next
// cause. Suppressed companions of a node are rendered, with their own chains, on
// indented "Suppressed:" lines below it. A node reached twice is rendered as
// "[CIRCULAR REFERENCE: ...]" and ends that chain.
//
// Kinded nodes are described as "[KIND] message", other errors as "<type>: message".
//
// Stringify never panics. It returns NullString for a nil error, and a one-line
// summary naming err's type if rendering fails.
func Stringify(err error) (out string) {
	if err == nil {
		return NullString
	}

	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("%T (error while rendering failure)", err)
		}
	}()

	var b strings.Builder
	var seen visitSet
	writeTrace(&b, err, "", "", &seen)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeTrace(b *strings.Builder, err error, caption, indent string, seen *visitSet) {
	for node := err; node != nil; node = Cause(node) {
		if !seen.visit(node) {
			fmt.Fprintf(b, "%s%s[CIRCULAR REFERENCE: %s]\n", indent, caption, describe(node))
			return
		}
		fmt.Fprintf(b, "%s%s%s\n", indent, caption, describe(node))

		if s, ok := node.(Suppressor); ok {
			for _, sup := range s.Suppressed() {
				writeTrace(b, sup, suppressedCaption, indent+"\t", seen)
			}
		}
		caption = causedByCaption
	}
}

// describe returns the one-line description of err itself.
func describe(err error) string {
	msg, hasMsg := messageOf(err)
	if k := kindOf(err); k != nil {
		if hasMsg {
			return fmt.Sprintf("[%s] %s", k, msg)
		}
		return fmt.Sprintf("[%s]", k)
	}
	if hasMsg {
		return fmt.Sprintf("%T: %s", err, msg)
	}
	return fmt.Sprintf("%T", err)
}
