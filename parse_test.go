package hwadd_test

import (
	"strings"
	"testing"

	"github.com/db47h/hwadd"
	"github.com/pkg/errors"
)

func TestParseOperands(t *testing.T) {
	td := []struct {
		in    string
		width int
		a, b  uint64
		cin   bool
		err   string
	}{
		{"a=0b1001, b=0b0111", 4, 9, 7, false, ""},
		{"b=1,a=255,cin=1", 8, 255, 1, true, ""},
		{" a = 0x10 , b = 0 , cin = 0 ", 5, 16, 0, false, ""},
		{"a=16, b=0", 4, 0, 0, false, "does not fit in 4 bits"},
		{"a=1, b=1, cin=2", 4, 0, 0, false, "cin must be 0 or 1"},
		{"a=1, c=1", 4, 0, 0, false, "unknown operand \"c\""},
		{"a=1", 4, 0, 0, false, "both a and b must be set"},
		{"a=1, a=2", 4, 0, 0, false, "duplicate assignment"},
		{"a=1 b=2", 4, 0, 0, false, "expected comma"},
		{"a=1, b=", 4, 0, 0, false, "pos 8: expected integer value"},
	}
	for _, d := range td {
		o, err := hwadd.ParseOperands(d.in, d.width)
		if d.err != "" {
			if err == nil || !strings.Contains(err.Error(), d.err) {
				t.Errorf("ParseOperands(%q): expected error containing %q, got %v", d.in, d.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOperands(%q): %v", d.in, err)
			continue
		}
		if o.A.Width() != d.width || o.B.Width() != d.width {
			t.Errorf("ParseOperands(%q): bad operand widths %d, %d", d.in, o.A.Width(), o.B.Width())
		}
		if o.A.Uint64() != d.a || o.B.Uint64() != d.b || o.Cin != d.cin {
			t.Errorf("ParseOperands(%q) = %d, %d, %v", d.in, o.A.Uint64(), o.B.Uint64(), o.Cin)
		}
	}

	_, err := hwadd.ParseOperands("a=1, b=1", 0)
	if errors.Cause(err) != hwadd.ErrInvalidWidth {
		t.Errorf("expected ErrInvalidWidth, got %v", err)
	}
}
