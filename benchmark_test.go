package failure_test

import (
	stderrors "errors"
	"testing"

	"github.com/jmgilman/go/failure"
)

func buildChain(depth int) error {
	var err error = failure.New(failure.KindOutOfMemory, "Java heap space")
	for i := 0; i < depth; i++ {
		err = failure.Wrap(err, failure.KindExecution, "layer")
	}
	return err
}

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = failure.New(failure.KindInternal, "corrupt state")
	}
}

func BenchmarkIsFatal(b *testing.B) {
	err := failure.New(failure.KindOutOfMemory, "Java heap space")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = failure.IsFatal(err)
	}
}

func BenchmarkClassifyOutOfMemory(b *testing.B) {
	err := failure.New(failure.KindOutOfMemory, "Java heap space")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = failure.ClassifyOutOfMemory(err)
	}
}

// BenchmarkFindKind_Shallow measures search over a typical chain.
func BenchmarkFindKind_Shallow(b *testing.B) {
	err := buildChain(5)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = failure.FindKind(err, failure.KindOutOfMemory)
	}
}

// BenchmarkFindKind_Deep crosses the switch from linear visit tracking to a map.
func BenchmarkFindKind_Deep(b *testing.B) {
	err := buildChain(100)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = failure.FindKind(err, failure.KindOutOfMemory)
	}
}

func BenchmarkFindMessage(b *testing.B) {
	err := buildChain(5)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = failure.FindMessage(err, "heap")
	}
}

func BenchmarkStripExecution(b *testing.B) {
	err := buildChain(5)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = failure.StripExecution(err)
	}
}

func BenchmarkFirstOrSuppressed(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var err error
		err = failure.FirstOrSuppressed(failure.New(failure.KindFailure, "a"), err)
		_ = failure.FirstOrSuppressed(failure.New(failure.KindFailure, "b"), err)
	}
}

func BenchmarkFirstOrSuppressed_Foreign(b *testing.B) {
	first := stderrors.New("a")
	second := stderrors.New("b")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = failure.FirstOrSuppressed(second, first)
	}
}

func BenchmarkStringify(b *testing.B) {
	err := buildChain(5)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = failure.Stringify(err)
	}
}

func BenchmarkToJSON(b *testing.B) {
	err := buildChain(5)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = failure.ToJSON(err)
	}
}
