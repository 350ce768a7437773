package style_test

import (
	"testing"

	"crcss/style"
)

func TestNewLength_Default(t *testing.T) {
	l := style.NewLength()
	if l.Unit != style.UnitScreenPx || l.Value != 0 {
		t.Fatalf("NewLength() = (%s, %d), want (screen_px, 0)", l.Unit, l.Value)
	}
	if !l.Equal(style.Pixels(0)) {
		t.Errorf("NewLength() != Pixels(0)")
	}
	if l.Equal(style.Length{}) {
		t.Errorf("NewLength() must differ from the zero Length which means inherit")
	}
}

func TestPixels(t *testing.T) {
	for _, n := range []int32{0, 1, -1, 17, -250, 1 << 20} {
		l := style.Pixels(n)
		if l.Unit != style.UnitScreenPx {
			t.Errorf("Pixels(%d).Unit = %s, want screen_px", n, l.Unit)
		}
		if l.Value != n {
			t.Errorf("Pixels(%d).Value = %d", n, l.Value)
		}
	}
}

func TestRawLength_NoScaling(t *testing.T) {
	tests := []struct {
		unit    style.Unit
		encoded int32
	}{
		{style.UnitPx, 2560},
		{style.UnitPx, 10},
		{style.UnitEm, 384},
		{style.UnitPercent, -512},
		{style.UnitUnspecified, style.GenericAuto},
		{style.UnitColor, 0xff0000},
	}
	for _, tt := range tests {
		l := style.RawLength(tt.unit, tt.encoded)
		if l.Unit != tt.unit || l.Value != tt.encoded {
			t.Errorf("RawLength(%s, %d) = (%s, %d)", tt.unit, tt.encoded, l.Unit, l.Value)
		}
	}
}

func TestFixedPoint(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{10, 2560},
		{1.5, 384},
		{0, 0},
		{-2.25, -576},
		{0.001, 0},
		{1.0 / 256, 1},
		{524288, 524288 * 256},
	}
	for _, tt := range tests {
		if got := style.FixedPoint(tt.in); got != tt.want {
			t.Errorf("FixedPoint(%g) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b style.Length
		want bool
	}{
		{"same", style.RawLength(style.UnitPx, 2560), style.RawLength(style.UnitPx, 2560), true},
		{"different value", style.RawLength(style.UnitPx, 2560), style.RawLength(style.UnitPx, 2561), false},
		{"inch vs screen px", style.RawLength(style.UnitIn, 256), style.Pixels(96), false},
		{"px vs screen px", style.RawLength(style.UnitPx, 0), style.Pixels(0), false},
		{"auto vs normal", style.Auto(), style.Normal(), false},
		{"auto vs raw auto", style.Auto(), style.RawLength(style.UnitUnspecified, -1), true},
		{"inherit", style.Inherited(), style.Length{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal is not symmetric for %v and %v", tt.a, tt.b)
			}
			if !tt.a.Equal(tt.a) {
				t.Errorf("Equal is not reflexive for %v", tt.a)
			}
		})
	}
}

func TestGenericSentinels(t *testing.T) {
	auto := style.RawLength(style.UnitUnspecified, -1)
	if !auto.IsGenericAuto() {
		t.Error("(unspecified, -1) must be auto")
	}
	if auto.IsGenericNormal() {
		t.Error("(unspecified, -1) must not be normal")
	}

	normal := style.RawLength(style.UnitUnspecified, -2)
	if !normal.IsGenericNormal() {
		t.Error("(unspecified, -2) must be normal")
	}
	if normal.IsGenericAuto() {
		t.Error("(unspecified, -2) must not be auto")
	}

	// The sentinels belong to the unspecified unit only.
	for _, u := range []style.Unit{style.UnitPx, style.UnitEm, style.UnitScreenPx, style.UnitInherited} {
		l := style.RawLength(u, -1)
		if l.IsGenericAuto() || l.IsGeneric() {
			t.Errorf("(%s, -1) must not be a generic value", u)
		}
		l = style.RawLength(u, -2)
		if l.IsGenericNormal() {
			t.Errorf("(%s, -2) must not be normal", u)
		}
	}

	if !style.Auto().Equal(auto) || !style.Normal().Equal(normal) {
		t.Error("Auto()/Normal() do not match the raw sentinel encoding")
	}
}

func TestPack(t *testing.T) {
	a := style.RawLength(style.UnitEm, 384)
	b := style.RawLength(style.UnitEm, 384)
	if a.Pack() != b.Pack() {
		t.Errorf("equal lengths pack differently: %d vs %d", a.Pack(), b.Pack())
	}
	if got, want := a.Pack(), int32(style.UnitEm)+384<<4; got != want {
		t.Errorf("Pack() = %d, want %d", got, want)
	}
	if got := style.Pixels(-3).Pack(); got != int32(style.UnitScreenPx)-48 {
		t.Errorf("Pixels(-3).Pack() = %d", got)
	}
	if style.Auto().Pack() == style.Normal().Pack() {
		t.Error("auto and normal must pack differently")
	}
	if style.RawLength(style.UnitPx, 0).Pack() == style.RawLength(style.UnitEm, 0).Pack() {
		t.Error("unit must take part in Pack")
	}
}

func TestPack_OutOfBudgetCollides(t *testing.T) {
	// 1<<28 shifted by 4 overflows int32 and wraps to 0. Known limitation.
	big := style.RawLength(style.UnitPx, 1<<28)
	zero := style.RawLength(style.UnitPx, 0)
	if big.Equal(zero) {
		t.Fatal("lengths must not be equal")
	}
	if big.Pack() != zero.Pack() {
		t.Errorf("expected aliasing outside the bit budget, got %d and %d", big.Pack(), zero.Pack())
	}
	if big.InBudget() {
		t.Error("1<<28 must be outside the budget")
	}
}

func TestInBudget_Bounds(t *testing.T) {
	const limit = style.MaxMagnitude * style.FixedPointOne
	tests := []struct {
		value int32
		want  bool
	}{
		{0, true},
		{-limit, true},
		{limit - 1, true},
		{limit, false},
		{-limit - 1, false},
	}
	for _, tt := range tests {
		if got := style.RawLength(style.UnitPx, tt.value).InBudget(); got != tt.want {
			t.Errorf("RawLength(px, %d).InBudget() = %v, want %v", tt.value, got, tt.want)
		}
	}

	// every in-budget value packs apart from its negation
	top := style.RawLength(style.UnitPx, limit-1)
	bottom := style.RawLength(style.UnitPx, -limit)
	if top.Pack() == bottom.Pack() {
		t.Errorf("in-budget lengths %v and %v pack to the same %d", top, bottom, top.Pack())
	}
	over := style.RawLength(style.UnitPx, limit)
	if over.Pack() != bottom.Pack() {
		t.Errorf("expected +MaxMagnitude to wrap onto -MaxMagnitude, got %d and %d", over.Pack(), bottom.Pack())
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		l    style.Length
		want float64
	}{
		{style.RawLength(style.UnitPx, 2560), 10},
		{style.RawLength(style.UnitEm, 384), 1.5},
		{style.Pixels(42), 42},
		{style.RawLength(style.UnitColor, 0x102030), 0x102030},
	}
	for _, tt := range tests {
		if got := tt.l.Float(); got != tt.want {
			t.Errorf("%v.Float() = %g, want %g", tt.l, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		l    style.Length
		want string
	}{
		{style.RawLength(style.UnitPx, 2560), "10px"},
		{style.RawLength(style.UnitEm, 384), "1.5em"},
		{style.RawLength(style.UnitPercent, 12800), "50%"},
		{style.Auto(), "auto"},
		{style.Normal(), "normal"},
		{style.Inherited(), "inherit"},
		{style.RawLength(style.UnitUnspecified, 307), "1.19921875"},
		{style.RawLength(style.UnitColor, 0xff0000), "#ff0000"},
		{style.Pixels(12), "12 screen_px"},
	}
	for _, tt := range tests {
		if got := tt.l.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
