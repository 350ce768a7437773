package style_test

import (
	"testing"

	"crcss/style"
)

func TestNewRecord_InheritsEverything(t *testing.T) {
	r := style.NewRecord()
	if !r.IsEmpty() {
		t.Fatal("NewRecord() is not empty")
	}
	if !r.FontWeight.IsInherit() || !r.Display.IsInherit() || !r.Orphans.IsInherit() {
		t.Error("enum properties must inherit")
	}
	for _, s := range style.Sides {
		if !r.Margin[s].IsInherited() || !r.BorderWidth[s].IsInherited() {
			t.Errorf("%s edge lengths must inherit", s)
		}
	}
}

func TestRecord_HashStable(t *testing.T) {
	a := style.NewRecord()
	a.FontWeight = style.FontWeightBold
	a.Margin[style.SideLeft] = style.Auto()
	a.FontSize = style.RawLength(style.UnitEm, 384)
	a.FontName = "Georgia"

	b := a
	if a != b || a.Hash() != b.Hash() {
		t.Fatal("copies must be equal and hash equally")
	}
	if a.Hash() != a.Hash() {
		t.Fatal("Hash is not deterministic")
	}

	c := a
	c.Margin[style.SideLeft] = style.Normal()
	if c.Hash() == a.Hash() {
		t.Error("auto and normal margins should hash differently")
	}

	d := a
	d.FontName = "Georgib"
	if d.Hash() == a.Hash() {
		t.Error("font name must take part in the hash")
	}

	empty := style.NewRecord()
	if empty.Hash() == a.Hash() {
		t.Error("empty record should hash differently")
	}
}

func TestRecord_HashFollowsPack(t *testing.T) {
	// Lengths that alias in Pack alias in Hash too.
	a := style.NewRecord()
	a.Width = style.RawLength(style.UnitPx, 0)
	b := style.NewRecord()
	b.Width = style.RawLength(style.UnitPx, 1<<28)
	if a == b {
		t.Fatal("records must differ")
	}
	if a.Hash() != b.Hash() {
		t.Error("expected colliding hashes for lengths outside the Pack budget")
	}
}

func TestSide_String(t *testing.T) {
	want := []string{"top", "right", "bottom", "left"}
	for i, s := range style.Sides {
		if s.String() != want[i] {
			t.Errorf("side %d = %s", i, s)
		}
	}
}
