package failure

import (
	"encoding/json"
	"fmt"
)

// Report is a structured rendering of a failure chain for JSON logging.
// Each node carries its own message only; the cause is rendered as a nested Report.
type Report struct {
	// Kind is the kind name of the node. Omitted for errors without a kind.
	Kind string `json:"kind,omitempty"`

	// Type is the Go type of the node.
	Type string `json:"type"`

	// Message is the node's own message. Omitted if the node has none.
	Message string `json:"message,omitempty"`

	// Classification is the classification of the node. See Classify.
	Classification string `json:"classification"`

	// Circular is set when the node was already rendered elsewhere in the report.
	// Its cause and suppressed companions are then omitted.
	Circular bool `json:"circular,omitempty"`

	// Suppressed contains the suppressed companions of the node.
	Suppressed []*Report `json:"suppressed,omitempty"`

	// Cause is the next node of the chain.
	Cause *Report `json:"cause,omitempty"`
}

// ToJSON converts err and its chain into a Report suitable for JSON serialization.
// Returns nil if err is nil.
//
// Example:
//
//	logger.Error("task failed", "failure", failure.ToJSON(err))
func ToJSON(err error) *Report {
	var seen visitSet
	return buildReport(err, &seen)
}

func buildReport(err error, seen *visitSet) *Report {
	var head *Report
	link := &head
	for node := err; node != nil; node = Cause(node) {
		r := &Report{
			Kind:           kindOf(node).Name(),
			Type:           fmt.Sprintf("%T", node),
			Classification: string(Classify(node)),
		}
		if msg, ok := messageOf(node); ok {
			r.Message = msg
		}
		*link = r

		if !seen.visit(node) {
			r.Circular = true
			break
		}
		if s, ok := node.(Suppressor); ok {
			for _, sup := range s.Suppressed() {
				r.Suppressed = append(r.Suppressed, buildReport(sup, seen))
			}
		}
		link = &r.Cause
	}
	return head
}

// MarshalJSON implements json.Marshaler for Failure using ToJSON.
//
// Example:
//
//	err := failure.New(failure.KindOutOfMemory, "Java heap space")
//	data, _ := json.Marshal(err)
//	// {"kind":"OUT_OF_MEMORY","type":"*failure.Failure","message":"Java heap space","classification":"RESOURCE_EXHAUSTION"}
func (f *Failure) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToJSON(f))
}
