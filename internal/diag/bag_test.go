package diag

import (
	"testing"

	"github.com/FedericoStra/texfmt/internal/source"
)

func TestBag_AddRespectsLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(Diagnostic{Severity: SevWarning, Code: LexInfo}) {
		t.Error("first Add must succeed")
	}
	if !bag.Add(Diagnostic{Severity: SevWarning, Code: LexInfo}) {
		t.Error("second Add must succeed")
	}
	if bag.Add(Diagnostic{Severity: SevError, Code: LexNoMatch}) {
		t.Error("Add past the limit must be dropped")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
	if bag.Cap() != 2 {
		t.Errorf("Cap = %d, want 2", bag.Cap())
	}
}

func TestBag_NegativeLimit(t *testing.T) {
	bag := NewBag(-1)
	if bag.Cap() != 0 {
		t.Errorf("Cap = %d, want 0", bag.Cap())
	}
	if bag.Add(Diagnostic{Severity: SevError, Code: LexNoMatch}) {
		t.Error("Add into a zero-capacity bag must be dropped")
	}
	if bag.Len() != 0 {
		t.Errorf("Len = %d, want 0", bag.Len())
	}
}

func TestBag_HasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("empty bag must report nothing")
	}

	bag.Add(Diagnostic{Severity: SevInfo, Code: LexInfo})
	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("info is neither error nor warning")
	}

	bag.Add(Diagnostic{Severity: SevWarning, Code: LexInfo})
	if bag.HasErrors() {
		t.Error("warning is not an error")
	}
	if !bag.HasWarnings() {
		t.Error("expected HasWarnings")
	}

	bag.Add(Diagnostic{Severity: SevError, Code: LexNoMatch})
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Error("error must count as both")
	}
}

func TestBag_Merge(t *testing.T) {
	a := NewBag(1)
	a.Add(Diagnostic{Severity: SevError, Code: LexNoMatch})

	b := NewBag(2)
	b.Add(Diagnostic{Severity: SevWarning, Code: LexInfo})
	b.Add(Diagnostic{Severity: SevInfo, Code: IOInfo})

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("Len after Merge = %d, want 3", a.Len())
	}
	// merging grows the limit so nothing is silently lost
	if a.Cap() < 3 {
		t.Errorf("Cap after Merge = %d, want >= 3", a.Cap())
	}
}

func TestBag_Sort(t *testing.T) {
	span := func(start uint32) source.Span {
		return source.Span{File: 0, Start: start, End: start + 1}
	}

	bag := NewBag(10)
	bag.Add(Diagnostic{Severity: SevWarning, Code: LexInfo, Primary: span(9)})
	bag.Add(Diagnostic{Severity: SevError, Code: LexNoMatch, Primary: span(3)})
	bag.Add(Diagnostic{Severity: SevWarning, Code: LexInfo, Primary: span(3)})

	bag.Sort()
	items := bag.Items()
	if items[0].Primary.Start != 3 || items[0].Severity != SevError {
		t.Errorf("item 0: got start=%d sev=%v", items[0].Primary.Start, items[0].Severity)
	}
	if items[1].Primary.Start != 3 || items[1].Severity != SevWarning {
		t.Errorf("item 1: got start=%d sev=%v", items[1].Primary.Start, items[1].Severity)
	}
	if items[2].Primary.Start != 9 {
		t.Errorf("item 2: got start=%d, want 9", items[2].Primary.Start)
	}
}

func TestBagReporter_ForwardsToBag(t *testing.T) {
	bag := NewBag(5)
	r := BagReporter{Bag: bag}
	sp := source.Span{File: 0, Start: 1, End: 2}
	r.Report(LexNoMatch, SevError, sp, "no token rule matched", nil)

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != LexNoMatch || d.Severity != SevError || d.Primary != sp {
		t.Errorf("stored diagnostic mismatch: %+v", d)
	}
}

func TestBagReporter_NilBag(t *testing.T) {
	r := BagReporter{}
	// must not panic
	r.Report(LexInfo, SevInfo, source.Span{}, "noop", nil)
}

func TestCode_ID(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{LexInfo, "LEX1000"},
		{LexNoMatch, "LEX1001"},
		{IOInfo, "IO4000"},
		{IOLoadFileError, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, c := range cases {
		if got := c.code.ID(); got != c.want {
			t.Errorf("%d.ID() = %q, want %q", c.code, got, c.want)
		}
	}
}
