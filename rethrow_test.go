package failure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// kindedErr is a foreign error type that carries a kind.
type kindedErr struct{ kind *Kind }

func (e *kindedErr) Error() string { return "kinded " + e.kind.Name() }
func (e *kindedErr) Kind() *Kind   { return e.kind }

func TestRethrow(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		require.NoError(t, Rethrow(nil, "parent"))
	})

	t.Run("failure is returned unchanged", func(t *testing.T) {
		f := New(KindExecution, "x")
		require.Same(t, f, Rethrow(f, "parent"))
	})

	t.Run("kinded foreign error is returned unchanged", func(t *testing.T) {
		k := &kindedErr{kind: KindInternal}
		require.Same(t, k, Rethrow(k, "parent"))
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		plain := errors.New("plain")
		err := Rethrow(plain, "parent")

		f, ok := err.(*Failure)
		require.True(t, ok)
		require.Same(t, KindFailure, f.Kind())
		require.Equal(t, "parent", f.Message())
		require.Same(t, plain, f.Unwrap())
	})
}

func TestToFailure(t *testing.T) {
	require.Nil(t, ToFailure(nil))

	f := New(KindInternal, "x")
	require.Same(t, f, ToFailure(f))

	plain := errors.New("plain")
	got := ToFailure(plain)
	require.Same(t, KindFailure, got.Kind())
	require.Equal(t, "plain", got.Message())
	require.Same(t, plain, got.Unwrap())

	// a kinded foreign error keeps its kind as the cause
	k := &kindedErr{kind: KindUnknown}
	got = ToFailure(k)
	require.Same(t, k, got.Unwrap())
	require.False(t, IsFatal(got))
	require.Same(t, k, FindKind(got, KindUnknown))
}

func TestThrow(t *testing.T) {
	require.NotPanics(t, func() { Throw(nil) })

	f := New(KindExecution, "x")
	require.PanicsWithValue(t, f, func() { Throw(f) })

	plain := errors.New("plain")
	defer func() {
		r := recover()
		got, ok := r.(*Failure)
		require.True(t, ok)
		require.Same(t, plain, got.Unwrap())
	}()
	Throw(plain)
}

func TestRethrowIfFatal(t *testing.T) {
	fatal := New(KindTerminated, "stopped")
	require.PanicsWithValue(t, fatal, func() { RethrowIfFatal(fatal) })

	require.NotPanics(t, func() { RethrowIfFatal(New(KindOutOfMemory, "Java heap space")) })
	require.NotPanics(t, func() { RethrowIfFatal(errors.New("plain")) })
	require.NotPanics(t, func() { RethrowIfFatal(nil) })
}

func TestRethrowIfFatalOrOutOfMemory(t *testing.T) {
	fatal := New(KindInternal, "x")
	require.PanicsWithValue(t, fatal, func() { RethrowIfFatalOrOutOfMemory(fatal) })

	oom := New(KindOutOfMemory, "Java heap space")
	require.PanicsWithValue(t, oom, func() { RethrowIfFatalOrOutOfMemory(oom) })

	custom := New(NewKind("CUSTOM_OOM", KindOutOfMemory), "x")
	require.NotPanics(t, func() { RethrowIfFatalOrOutOfMemory(custom) })
	require.NotPanics(t, func() { RethrowIfFatalOrOutOfMemory(nil) })
}

func panicking(v any) (err error) {
	defer Recover(&err)
	panic(v)
}

func TestRecover(t *testing.T) {
	t.Run("error value", func(t *testing.T) {
		plain := errors.New("plain")
		require.Same(t, plain, panicking(plain))
	})

	t.Run("non error value", func(t *testing.T) {
		err := panicking("boom")
		f, ok := err.(*Failure)
		require.True(t, ok)
		require.Same(t, KindFailure, f.Kind())
		require.Equal(t, "boom", f.Message())
	})

	t.Run("out of memory is recovered", func(t *testing.T) {
		oom := New(KindOutOfMemory, "Java heap space")
		require.Same(t, oom, panicking(oom))
	})

	t.Run("fatal escapes", func(t *testing.T) {
		fatal := New(KindInternal, "corrupt")
		require.PanicsWithValue(t, fatal, func() { _ = panicking(fatal) })
	})

	t.Run("no panic", func(t *testing.T) {
		want := New(KindFailure, "returned")
		got := func() (err error) {
			defer Recover(&err)
			return want
		}()
		require.Same(t, want, got)
	})

	t.Run("merges with existing error", func(t *testing.T) {
		first := New(KindFailure, "first")
		got := func() (err error) {
			defer Recover(&err)
			err = first
			panic("boom")
		}()

		require.Same(t, first, got)
		suppressed := first.Suppressed()
		require.Len(t, suppressed, 1)
		require.Equal(t, "[FAILURE] boom", suppressed[0].Error())
	})

	t.Run("nil destination keeps panicking", func(t *testing.T) {
		require.PanicsWithValue(t, "boom", func() {
			defer Recover(nil)
			panic("boom")
		})
	})
}
