package parsea

import (
	"errors"
	"reflect"
	"testing"
	"unicode"

	"github.com/npillmayer/parsea/internal/tracing"
)

func TestDoMixedElements(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	double := Do(func(pf *Performer[any]) (int, error) {
		v, err := Perform(pf, AnyElement[any]())
		if err != nil {
			return 0, err
		}
		n, ok := v.(int)
		if !ok {
			return 0, pf.Abort()
		}
		if _, err := Perform(pf, El[any]("*")); err != nil {
			return 0, err
		}
		return n * 2, nil
	})
	r := mustParse(t, double, Slice[any]{5, "*"})
	if !r.Success || r.Value != 10 || r.Index != 2 {
		t.Errorf("expected 10 at 2, have %+v", r)
	}
	r = mustParse(t, double, Slice[any]{"x", "*"})
	if r.Success || r.Index != 1 || len(r.Errors) != 0 {
		t.Errorf("expected abort at 1 without specific errors, have %+v", r)
	}
	r = mustParse(t, double, Slice[any]{5, "+"})
	if r.Success || r.Index != 1 {
		t.Errorf("expected failure at 1, have %+v", r)
	}
	if !reflect.DeepEqual(r.Errors, []ParseError{Expected{Value: []any{"*"}}}) {
		t.Errorf("expected '*' to be expected, have %v", r.Errors)
	}
}

func TestPerformReturnsAbort(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	var perr error
	p := Do(func(pf *Performer[rune]) (rune, error) {
		v, err := Perform(pf, El('a'))
		perr = err
		return v, err
	})
	r := mustParse(t, p, runes("b"))
	if r.Success {
		t.Errorf("expected failure")
	}
	if !errors.Is(perr, ErrAbort) {
		t.Errorf("expected Perform to return the abort signal, have %v", perr)
	}
}

func TestDoBareAbort(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	p := Do(func(pf *Performer[rune]) (rune, error) {
		if _, err := Perform(pf, El('a')); err != nil {
			return 0, err
		}
		return 0, ErrAbort
	})
	r, err := p.Parse(runes("ab"))
	if err != nil {
		t.Fatalf("expected abort not to escape from Parse, have %v", err)
	}
	if r.Success || r.Index != 1 {
		t.Errorf("expected failure at 1, have %+v", r)
	}
}

func signedDigit(partial bool) Parser[rune, string] {
	var opts []PerformOption
	if partial {
		opts = append(opts, AllowPartial())
	}
	return Do(func(pf *Performer[rune]) (string, error) {
		sign := "+"
		pf.Try(func() error {
			if _, err := Perform(pf, El('-')); err != nil {
				return err
			}
			if _, err := Perform(pf, El('-'), opts...); err != nil {
				return err
			}
			sign = "--"
			return nil
		})
		d, err := Perform(pf, AnyElement[rune]())
		if err != nil {
			return "", err
		}
		return sign + string(d), nil
	})
}

func TestTryRollsBack(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	r := mustParse(t, signedDigit(false), runes("--x"))
	if r.Value != "--x" || r.Index != 3 {
		t.Errorf("expected '--x' at 3, have %+v", r)
	}
	r = mustParse(t, signedDigit(false), runes("-x"))
	if r.Value != "+-" || r.Index != 1 {
		t.Errorf("expected rollback to 0, then '+-' at 1, have %+v", r)
	}
}

func TestTryAllowPartial(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	r := mustParse(t, signedDigit(true), runes("-x"))
	if r.Value != "+x" || r.Index != 2 {
		t.Errorf("expected partial progress to be kept, then '+x' at 2, have %+v", r)
	}
}

func TestTryResult(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	var first, second bool
	p := Do(func(pf *Performer[rune]) (int, error) {
		first = pf.Try(func() error {
			_, err := Perform(pf, El('a'))
			return err
		})
		second = pf.Try(func() error {
			_, err := Perform(pf, El('a'))
			return err
		})
		return pf.Index(), nil
	})
	r := mustParse(t, p, runes("ab"))
	if !first || second || r.Value != 1 {
		t.Errorf("expected Try to report true, then false at 1, have %v/%v at %d", first, second, r.Value)
	}
}

func TestWhile(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	digit := Satisfy(func(r rune, _ Config) bool { return unicode.IsDigit(r) })
	var count int
	digits := Do(func(pf *Performer[rune]) ([]rune, error) {
		var ds []rune
		count = pf.While(func() error {
			d, err := Perform(pf, digit)
			if err != nil {
				return err
			}
			ds = append(ds, d)
			return nil
		})
		return ds, nil
	})
	r := mustParse(t, digits, runes("123x"))
	if !r.Success || r.Index != 3 || string(r.Value) != "123" || count != 3 {
		t.Errorf("expected 3 digits at 3, have %+v, count = %d", r, count)
	}
	r = mustParse(t, digits, runes("x"))
	if !r.Success || r.Index != 0 || count != 0 {
		t.Errorf("expected no digits at 0, have %+v, count = %d", r, count)
	}
}

func TestWhileStopsWithoutProgress(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	calls := 0
	p := Do(func(pf *Performer[rune]) (int, error) {
		n := pf.While(func() error {
			calls++
			return nil
		})
		return n, nil
	})
	r := mustParse(t, p, runes("abc"))
	if !r.Success || r.Value != 0 || calls != 1 {
		t.Errorf("expected While to stop after one idle iteration, have %+v, calls = %d", r, calls)
	}
}

func TestPerformOr(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	sign := Do(func(pf *Performer[rune]) (rune, error) {
		return PerformOr(pf, El('-'), '+'), nil
	})
	if r := mustParse(t, sign, runes("-")); r.Value != '-' || r.Index != 1 {
		t.Errorf("expected '-' at 1, have %+v", r)
	}
	if r := mustParse(t, sign, runes("1")); r.Value != '+' || r.Index != 0 {
		t.Errorf("expected default '+' at 0, have %+v", r)
	}
}

func TestPerformerConfig(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	p := Do(func(pf *Performer[rune]) (string, error) {
		return pf.Config().String("mode"), nil
	})
	r := mustParse(t, p, runes(""), WithConfig(Config{"mode": "strict"}))
	if r.Value != "strict" {
		t.Errorf("expected configuration to be visible in a do-block, have %q", r.Value)
	}
}

func TestDoForeignError(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	errBoom := errors.New("boom")
	boom := Do(func(pf *Performer[rune]) (int, error) {
		if _, err := Perform(pf, El('a')); err != nil {
			return 0, err
		}
		return 0, errBoom
	})
	_, err := boom.Parse(runes("a"))
	if !errors.Is(err, errBoom) {
		t.Errorf("expected Parse to return the do-block's error, have %v", err)
	}
	// alternatives must not hide the error
	_, err = boom.Or(Pure[rune](1)).Parse(runes("a"))
	if !errors.Is(err, errBoom) {
		t.Errorf("expected error to survive backtracking, have %v", err)
	}
	_, err = ParseValue(boom, runes("a"))
	if !errors.Is(err, errBoom) {
		t.Errorf("expected ParseValue to return the do-block's error, have %v", err)
	}
}

func TestTryForeignError(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	errBoom := errors.New("boom")
	var performed bool
	p := Do(func(pf *Performer[rune]) (int, error) {
		pf.Try(func() error { return errBoom })
		_, err := Perform(pf, AnyElement[rune]())
		performed = err == nil
		return 0, nil
	})
	_, err := p.Parse(runes("a"))
	if !errors.Is(err, errBoom) {
		t.Errorf("expected Try not to swallow a foreign error, have %v", err)
	}
	if performed {
		t.Errorf("expected Perform to refuse running after a foreign error")
	}
}
