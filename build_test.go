package hwadd_test

import (
	"sync"
	"testing"

	"github.com/db47h/hwadd"
	"github.com/pkg/errors"
)

func trace(t *testing.T, err error) {
	t.Helper()
	if err, ok := err.(interface {
		StackTrace() errors.StackTrace
	}); ok {
		for _, f := range err.StackTrace() {
			t.Logf("%+v ", f)
		}
	}
}

func TestBuild_invalidWidth(t *testing.T) {
	for _, s := range []hwadd.Strategy{hwadd.Ripple, hwadd.Hierarchical} {
		for _, w := range []int{0, -1, -64} {
			n, err := hwadd.Build(w, s)
			if errors.Cause(err) != hwadd.ErrInvalidWidth {
				t.Errorf("Build(%d, %s): expected ErrInvalidWidth, got %v", w, s, err)
			}
			if n != nil {
				t.Errorf("Build(%d, %s): expected nil network, got %v", w, s, n)
			}
		}
	}
}

func TestBuild_invalidStrategy(t *testing.T) {
	_, err := hwadd.Build(4, hwadd.Strategy(42))
	if errors.Cause(err) != hwadd.ErrInvalidStrategy {
		t.Fatalf("expected ErrInvalidStrategy, got %v", err)
	}
	trace(t, err)
}

func TestBuild(t *testing.T) {
	td := []struct {
		width int
		s     hwadd.Strategy
		str   string
		depth int
	}{
		{1, hwadd.Ripple, "R1", 1},
		{4, hwadd.Ripple, "R4", 1},
		{1, hwadd.Hierarchical, "L", 1},
		{2, hwadd.Hierarchical, "C(L,L)", 2},
		{3, hwadd.Hierarchical, "C(L,C(L,L))", 3},
		{4, hwadd.Hierarchical, "C(C(L,L),C(L,L))", 3},
		{5, hwadd.Hierarchical, "C(C(L,L),C(L,C(L,L)))", 4},
	}
	for _, d := range td {
		n, err := hwadd.Build(d.width, d.s)
		if err != nil {
			t.Fatal(err)
		}
		if n.Width() != d.width {
			t.Errorf("Build(%d, %s): width = %d", d.width, d.s, n.Width())
		}
		if n.String() != d.str {
			t.Errorf("Build(%d, %s) = %s, expected %s", d.width, d.s, n, d.str)
		}
		if dp := hwadd.Depth(n); dp != d.depth {
			t.Errorf("Depth(%s) = %d, expected %d", n, dp, d.depth)
		}
		if c := hwadd.CellCount(n); c != d.width {
			t.Errorf("CellCount(%s) = %d, expected %d", n, c, d.width)
		}
	}
}

func TestBuild_oddSplit(t *testing.T) {
	n := hwadd.MustBuild(5, hwadd.Hierarchical)
	c, ok := n.(*hwadd.Composite)
	if !ok {
		t.Fatalf("expected *Composite, got %T", n)
	}
	if c.Low().Width() != 2 || c.High().Width() != 3 {
		t.Fatalf("expected 2/3 split, got %d/%d", c.Low().Width(), c.High().Width())
	}
	for i := 0; i < 10; i++ {
		if m := hwadd.MustBuild(5, hwadd.Hierarchical); !hwadd.Equal(n, m) {
			t.Fatalf("build #%d: %s != %s", i, m, n)
		}
	}
	if hwadd.Equal(n, hwadd.MustBuild(5, hwadd.Ripple)) {
		t.Fatal("hierarchical and ripple networks should differ")
	}
}

func TestBuild_concurrent(t *testing.T) {
	// run with -race: Build traces through the shared core tracer.
	var wg sync.WaitGroup
	nets := make([]hwadd.Network, 16)
	for i := range nets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			nets[i] = hwadd.MustBuild(i+1, hwadd.Hierarchical)
		}(i)
	}
	wg.Wait()
	for i, n := range nets {
		if n.Width() != i+1 {
			t.Errorf("network %d has width %d", i, n.Width())
		}
	}
}

func TestSplit(t *testing.T) {
	for w := 2; w <= 100; w++ {
		lo, hi := hwadd.Split(w)
		if lo+hi != w || lo != w/2 || hi < lo || hi-lo > 1 {
			t.Fatalf("Split(%d) = %d, %d", w, lo, hi)
		}
	}
}

func TestBuild_balanced(t *testing.T) {
	// ceil(log2(w)) + 1 levels
	for w, exp := range map[int]int{8: 4, 16: 5, 31: 6, 32: 6, 33: 7, 1024: 11} {
		if d := hwadd.Depth(hwadd.MustBuild(w, hwadd.Hierarchical)); d != exp {
			t.Errorf("depth of hierarchical adder of width %d = %d, expected %d", w, d, exp)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	td := []struct {
		in  string
		s   hwadd.Strategy
		err bool
	}{
		{"ripple", hwadd.Ripple, false},
		{" Chain", hwadd.Ripple, false},
		{"hierarchical", hwadd.Hierarchical, false},
		{"HIER", hwadd.Hierarchical, false},
		{"tree", hwadd.Hierarchical, false},
		{"carry-lookahead", 0, true},
		{"", 0, true},
	}
	for _, d := range td {
		s, err := hwadd.ParseStrategy(d.in)
		if d.err {
			if errors.Cause(err) != hwadd.ErrInvalidStrategy {
				t.Errorf("ParseStrategy(%q): expected ErrInvalidStrategy, got %v", d.in, err)
			}
			continue
		}
		if err != nil || s != d.s {
			t.Errorf("ParseStrategy(%q) = %v, %v, expected %v", d.in, s, err, d.s)
		}
	}
	if s := hwadd.Strategy(7).String(); s != "Strategy(7)" {
		t.Errorf("got %q", s)
	}
}

func TestDescribe(t *testing.T) {
	exp := "Composite 1+2\n  FullAdder\n  Composite 1+1\n    FullAdder\n    FullAdder\n"
	if s := hwadd.Describe(hwadd.MustBuild(3, hwadd.Hierarchical)); s != exp {
		t.Errorf("got:\n%s\nexpected:\n%s", s, exp)
	}
	if s := hwadd.Describe(hwadd.MustBuild(3, hwadd.Ripple)); s != "Chain 3\n" {
		t.Errorf("got %q", s)
	}
}
