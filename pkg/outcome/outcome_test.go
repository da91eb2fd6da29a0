package outcome

import (
	"errors"
	"strings"
	"testing"
)

func TestOk_PredicatesAndUnwrap(t *testing.T) {
	t.Parallel()
	r := Ok[string](42)

	if !r.IsOk() || r.IsErr() {
		t.Fatalf("expected ok outcome, got: ok=%v, err=%v", r.IsOk(), r.IsErr())
	}
	if v := r.Unwrap(); v != 42 {
		t.Fatalf("expected 42, got: %v", v)
	}
}

func TestErr_PredicatesAndUnwrapErr(t *testing.T) {
	t.Parallel()
	r := Err[string, int]("bad")

	if r.IsOk() || !r.IsErr() {
		t.Fatalf("expected failure outcome, got: ok=%v, err=%v", r.IsOk(), r.IsErr())
	}
	if e := r.UnwrapErr(); e != "bad" {
		t.Fatalf("expected 'bad', got: %v", e)
	}
}

func TestUnwrap_PanicsOnFailure(t *testing.T) {
	t.Parallel()
	r := Err[string, int]("broken")

	defer func() {
		caught := recover()
		ue, ok := caught.(*UnwrapError)
		if !ok {
			t.Fatalf("expected *UnwrapError panic, got: %v", caught)
		}
		if msg := ue.Error(); !strings.Contains(msg, "broken") {
			t.Fatalf("expected message to include payload, got: %q", msg)
		}
	}()
	r.Unwrap()
	t.Fatalf("Unwrap on a failure should panic")
}

func TestUnwrapErr_PanicsOnSuccess(t *testing.T) {
	t.Parallel()
	r := Ok[string](7)

	defer func() {
		if _, ok := recover().(*UnwrapError); !ok {
			t.Fatalf("expected *UnwrapError panic")
		}
	}()
	r.UnwrapErr()
	t.Fatalf("UnwrapErr on a success should panic")
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()
	if v := Ok[string](3).UnwrapOr(9); v != 3 {
		t.Fatalf("expected 3, got: %v", v)
	}
	if v := Err[string, int]("nope").UnwrapOr(9); v != 9 {
		t.Fatalf("expected default 9, got: %v", v)
	}
}

func TestFromNullable_AbsentValues(t *testing.T) {
	t.Parallel()
	var p *int
	r := FromNullable[string]("missing", p)
	if !r.IsErr() || r.UnwrapErr() != "missing" {
		t.Fatalf("expected failure 'missing' for nil pointer, got: ok=%v", r.IsOk())
	}

	var i any
	r2 := FromNullable[string]("missing", i)
	if !r2.IsErr() || r2.UnwrapErr() != "missing" {
		t.Fatalf("expected failure 'missing' for nil interface, got: ok=%v", r2.IsOk())
	}
}

func TestFromNullable_PresentValue(t *testing.T) {
	t.Parallel()
	r := FromNullable[string]("missing", 5)
	if !r.IsOk() || r.Unwrap() != 5 {
		t.Fatalf("expected success with 5, got: ok=%v", r.IsOk())
	}

	zero := 0
	r2 := FromNullable[string]("missing", &zero)
	if !r2.IsOk() {
		t.Fatalf("non-nil pointer to zero value should be present")
	}
}

func TestTryCatch_Success(t *testing.T) {
	t.Parallel()
	r := TryCatch(func() int { return 16 }, func(caught any) string { return "never" })
	if !r.IsOk() || r.Unwrap() != 16 {
		t.Fatalf("expected success with 16, got: ok=%v", r.IsOk())
	}
}

func TestTryCatch_PanicConverted(t *testing.T) {
	t.Parallel()
	r := TryCatch(func() int {
		panic(errors.New("boom"))
	}, func(caught any) string {
		return caught.(error).Error()
	})

	if !r.IsErr() || r.UnwrapErr() != "boom" {
		t.Fatalf("expected failure 'boom', got: ok=%v, err=%v", r.IsOk(), r.UnwrapErr())
	}
}

func TestMap_Success(t *testing.T) {
	t.Parallel()
	r := Map(Ok[string](42), func(x int) int { return x * 2 })
	if v := r.Unwrap(); v != 84 {
		t.Fatalf("expected 84, got: %v", v)
	}
}

func TestMap_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	called := false
	r := Map(Err[string, int]("bad"), func(x int) int {
		called = true
		return x * 2
	})

	if called {
		t.Fatalf("onSuccess should not be called on a failure")
	}
	if e := r.UnwrapErr(); e != "bad" {
		t.Fatalf("expected 'bad', got: %v", e)
	}
}

func TestMapErr_BothPaths(t *testing.T) {
	t.Parallel()
	r := MapErr(Err[string, int]("bad"), func(e string) string { return e + "!" })
	if e := r.UnwrapErr(); e != "bad!" {
		t.Fatalf("expected 'bad!', got: %v", e)
	}

	called := false
	r2 := MapErr(Ok[string](1), func(e string) string {
		called = true
		return e
	})
	if called || !r2.IsOk() || r2.Unwrap() != 1 {
		t.Fatalf("success should pass through untouched, called=%v", called)
	}
}

func TestChain_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	called := false
	r := Chain(Err[string, int]("stop"), func(x int) Outcome[string, int] {
		called = true
		return Ok[string](x + 1)
	})

	if called {
		t.Fatalf("onSuccess should not be called on a failure")
	}
	if e := r.UnwrapErr(); e != "stop" {
		t.Fatalf("expected 'stop', got: %v", e)
	}
}

func TestChain_SuccessPath(t *testing.T) {
	t.Parallel()
	r := Chain(Ok[string](3), func(x int) Outcome[string, int] {
		return Ok[string](x * 2)
	})
	if v := r.Unwrap(); v != 6 {
		t.Fatalf("expected 6, got: %v", v)
	}
}

func TestChain_Associativity(t *testing.T) {
	t.Parallel()
	f := func(x int) Outcome[string, int] { return Ok[string](x + 1) }
	g := func(x int) Outcome[string, int] { return Ok[string](x * 3) }

	for _, start := range []Outcome[string, int]{Ok[string](4), Err[string, int]("e")} {
		left := Chain(Chain(start, f), g)
		right := Chain(start, func(x int) Outcome[string, int] { return Chain(f(x), g) })

		if left.IsOk() != right.IsOk() {
			t.Fatalf("associativity broken on tag: left=%v right=%v", left.IsOk(), right.IsOk())
		}
		if left.IsOk() && left.Unwrap() != right.Unwrap() {
			t.Fatalf("associativity broken on value: left=%v right=%v", left.Unwrap(), right.Unwrap())
		}
		if left.IsErr() && left.UnwrapErr() != right.UnwrapErr() {
			t.Fatalf("associativity broken on error: left=%v right=%v", left.UnwrapErr(), right.UnwrapErr())
		}
	}
}

func TestMatch_ExactlyOneBranch(t *testing.T) {
	t.Parallel()
	okCalls, errCalls := 0, 0

	v := Match(Ok[string](10),
		func(e string) string { errCalls++; return "err:" + e },
		func(x int) string { okCalls++; return "ok" })
	if v != "ok" || okCalls != 1 || errCalls != 0 {
		t.Fatalf("expected only onSuccess, got: v=%q ok=%d err=%d", v, okCalls, errCalls)
	}

	v = Match(Err[string, int]("down"),
		func(e string) string { errCalls++; return "err:" + e },
		func(x int) string { okCalls++; return "ok" })
	if v != "err:down" || okCalls != 1 || errCalls != 1 {
		t.Fatalf("expected only onFailure, got: v=%q ok=%d err=%d", v, okCalls, errCalls)
	}
}

func TestToPromise_Resolves(t *testing.T) {
	t.Parallel()
	v, err := Ok[string](11).ToPromise().Await()
	if err != nil || v != 11 {
		t.Fatalf("expected resolution with 11, got: v=%v err=%v", v, err)
	}
}

func TestToPromise_Rejects(t *testing.T) {
	t.Parallel()
	reason := errors.New("denied")
	_, err := Err[error, int](reason).ToPromise().Await()
	if !errors.Is(err, reason) {
		t.Fatalf("expected rejection with original error, got: %v", err)
	}

	_, err = Err[string, int]("plain").ToPromise().Await()
	if err == nil || err.Error() != "plain" {
		t.Fatalf("expected rejection wrapping 'plain', got: %v", err)
	}
}

func TestMetadata(t *testing.T) {
	t.Parallel()
	a := Ok[string](1)
	b := Ok[string](1)
	if a.Id() == b.Id() {
		t.Fatalf("distinct outcomes should carry distinct ids")
	}
	if a.CreatedAt().IsZero() {
		t.Fatalf("createdAt should be set")
	}
}
