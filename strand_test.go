package genoskema_test

import (
	"testing"

	genoskema "github.com/reoring/genoskema"
)

func TestStrandConversion_ReadAndFallback(t *testing.T) {
	c := genoskema.NewStrandConversion(map[string]string{"1": "+", "-1": "-"})

	if got := c.Read("1"); got != "+" {
		t.Fatalf("Read(1) = %q, want +", got)
	}
	if got := c.Read("-1"); got != "-" {
		t.Fatalf("Read(-1) = %q, want -", got)
	}
	// Outside the mapped domain the value passes through unchanged.
	if got := c.Read("+"); got != "+" {
		t.Fatalf("Read(+) = %q, want + (identity fallback)", got)
	}
	if got := c.Read("."); got != "." {
		t.Fatalf("Read(.) = %q, want .", got)
	}
	// Idempotence: re-applying to an already-external value is a no-op.
	if got := c.Read(c.Read("1")); got != "+" {
		t.Fatalf("double Read(1) = %q, want +", got)
	}
}

func TestStrandConversion_WriteStoresAsGiven(t *testing.T) {
	c := genoskema.NewStrandConversion(map[string]string{"1": "+", "-1": "-"})
	if got := c.Write("1"); got != "1" {
		t.Fatalf("Write(1) = %q, want 1", got)
	}
	if got := c.Write("+"); got != "+" {
		t.Fatalf("Write(+) = %q, want +", got)
	}
}

func TestStrandConversion_TableAndInverse(t *testing.T) {
	c := genoskema.NewStrandConversion(map[string]string{"1": "+", "-1": "-"})
	tbl := c.Table()
	if tbl["1"] != "+" || tbl["-1"] != "-" {
		t.Fatalf("Table() = %v", tbl)
	}
	// Table returns a copy; mutating it must not affect the conversion.
	tbl["1"] = "x"
	if got := c.Read("1"); got != "+" {
		t.Fatalf("conversion mutated through Table copy: %q", got)
	}
	if code, ok := c.Code("+"); !ok || code != "1" {
		t.Fatalf("Code(+) = %q, %v", code, ok)
	}
	if _, ok := c.Symbol("2"); ok {
		t.Fatalf("Symbol(2) should miss")
	}
}
