package hwtest_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/db47h/hwadd"
	"github.com/db47h/hwadd/hwtest"
)

func TestCompareNetwork(t *testing.T) {
	for _, w := range []int{1, 7, 64, 129} {
		hwtest.CompareNetwork(t, 200, hwadd.MustBuild(w, hwadd.Hierarchical))
		hwtest.CompareNetwork(t, 200, hwadd.MustBuild(w, hwadd.Ripple))
	}
}

// an adder that ignores the carry in.
type noCin struct{ hwadd.Adder }

func (a noCin) Add(x, y hwadd.Bits, _ bool) (hwadd.Result, error) {
	return a.Adder.Add(x, y, false)
}

func TestFindCounterexample(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := hwtest.Samples(4, 0, rng)
	ref := hwtest.Oracle(4)

	c, err := hwtest.FindCounterexample(ref, noCin{hwtest.Oracle(4)}, s)
	if err != nil {
		t.Fatal(err)
	}
	if c == nil {
		t.Fatal("expected a counterexample")
	}
	if !c.Cin {
		t.Errorf("counterexample %v has cin == 0", c)
	}
	t.Log(c)

	c, err = hwtest.FindCounterexample(ref, hwadd.NewAdder(hwadd.MustBuild(4, hwadd.Ripple)), s)
	if err != nil {
		t.Fatal(err)
	}
	if c != nil {
		t.Fatalf("unexpected counterexample %v", c)
	}

	_, err = hwtest.FindCounterexample(ref, hwtest.Oracle(5), s)
	if err == nil {
		t.Fatal("expected width mismatch")
	}
}

func TestSamples(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := hwtest.Samples(9, 10, rng)
	if len(s) != 22 {
		t.Fatalf("expected 22 samples, got %d", len(s))
	}
	for i, o := range s {
		if o.A.Width() != 9 || o.B.Width() != 9 {
			t.Fatalf("sample #%d: bad width %d/%d", i, o.A.Width(), o.B.Width())
		}
	}
	if s[0].A.Uint64() != 0 || s[0].Cin {
		t.Errorf("first sample should be 0+0+0, got %v", s[0])
	}
	if s[1].A.Uint64() != 511 || s[1].B.Uint64() != 511 {
		t.Errorf("second sample should be max+max, got %v", s[1])
	}
}

// failing records logs and cleanups of a test that has already failed.
type failing struct {
	testing.TB
	logs     []string
	cleanups []func()
}

func (f *failing) Helper() {}
func (f *failing) Failed() bool { return true }
func (f *failing) Cleanup(fn func()) { f.cleanups = append(f.cleanups, fn) }
func (f *failing) Logf(format string, args ...interface{}) { f.logs = append(f.logs, fmt.Sprintf(format, args...)) }

func TestRandomSamples_seed(t *testing.T) {
	f := &failing{TB: t}
	s := hwtest.RandomSamples(f, 6, 20)
	for _, fn := range f.cleanups {
		fn()
	}
	if len(f.logs) != 1 {
		t.Fatalf("expected the seed to be logged once, got %q", f.logs)
	}
	var seed int64
	if _, err := fmt.Sscanf(f.logs[0], "random samples seed: %d", &seed); err != nil {
		t.Fatalf("%q: %v", f.logs[0], err)
	}
	r := hwtest.Samples(6, 20, rand.New(rand.NewSource(seed)))
	if len(r) != len(s) {
		t.Fatalf("replayed %d samples, expected %d", len(r), len(s))
	}
	for i := range s {
		if !s[i].A.Equal(r[i].A) || !s[i].B.Equal(r[i].B) || s[i].Cin != r[i].Cin {
			t.Fatalf("sample #%d: replayed %v, expected %v", i, r[i], s[i])
		}
	}
}
