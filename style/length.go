package style

import (
	"fmt"
	"strconv"
)

const (
	// FixedPointShift is the number of fractional bits in Length.Value for
	// every unit except screen_px.
	FixedPointShift = 8
	// FixedPointOne is 1.0 in fixed point.
	FixedPointOne = 1 << FixedPointShift

	// MaxMagnitude bounds the decoded value of a scaled length:
	// 32 bits less 8 for fraction, 4 for Pack and 1 for sign.
	MaxMagnitude = 1 << (32 - FixedPointShift - 4 - 1)

	// packShift leaves room for the Unit ordinal in Pack.
	packShift = 4
)

// Generic values live in the value slot of UnitUnspecified. They are not
// magnitudes and must be checked before Value is read as fixed point.
const (
	GenericAuto   int32 = -1 // margin: auto, width: auto
	GenericNormal int32 = -2 // line-height: normal, letter-spacing: normal
)

// Length is a CSS length, percentage, color reference or generic keyword.
//
// Value is fixed point with 8 fractional bits (the real number is
// Value/256) for every unit but UnitScreenPx, where it is an exact device
// pixel count. UnitColor stores an unscaled 0xRRGGBB.
//
// The zero Length is {UnitInherited, 0}, which means "inherit". It is not
// the default length, use NewLength for that.
type Length struct {
	Unit  Unit
	Value int32
}

// NewLength returns the default length: 0 device pixels.
func NewLength() Length {
	return Length{Unit: UnitScreenPx}
}

// Pixels returns an already resolved device pixel length. Negative values
// are fine (negative margins).
func Pixels(px int32) Length {
	return Length{Unit: UnitScreenPx, Value: px}
}

// RawLength returns exactly (unit, encoded). No scaling and no validation is
// done: the caller must pass FixedPoint(v) for scaled units, and the decoded
// magnitude must stay within MaxMagnitude or Pack may alias other lengths.
func RawLength(unit Unit, encoded int32) Length {
	return Length{Unit: unit, Value: encoded}
}

// Auto returns the generic "auto" length.
func Auto() Length {
	return Length{Unit: UnitUnspecified, Value: GenericAuto}
}

// Normal returns the generic "normal" length.
func Normal() Length {
	return Length{Unit: UnitUnspecified, Value: GenericNormal}
}

// Inherited returns the length asking the cascade for the parent value.
func Inherited() Length {
	return Length{Unit: UnitInherited}
}

// FixedPoint converts v to the 8 bit fixed point encoding expected by
// RawLength, rounding to the nearest 1/256.
func FixedPoint(v float64) int32 {
	if v < 0 {
		return -int32(-v*FixedPointOne + 0.5)
	}
	return int32(v*FixedPointOne + 0.5)
}

// Equal compares unit and value. Lengths in different units are never equal,
// even when they denote the same physical size.
func (l Length) Equal(other Length) bool {
	return l.Unit == other.Unit && l.Value == other.Value
}

// Pack folds the length into a single integer usable as a cache key
// component. Equal lengths always pack equally. Values outside the bit
// budget wrap around and may collide with other lengths.
func (l Length) Pack() int32 {
	return int32(l.Unit) + l.Value<<packShift
}

// IsGenericAuto reports whether l is the "auto" sentinel.
func (l Length) IsGenericAuto() bool {
	return l.Unit == UnitUnspecified && l.Value == GenericAuto
}

// IsGenericNormal reports whether l is the "normal" sentinel.
func (l Length) IsGenericNormal() bool {
	return l.Unit == UnitUnspecified && l.Value == GenericNormal
}

// IsGeneric reports whether Value holds a sentinel instead of a magnitude.
func (l Length) IsGeneric() bool {
	return l.IsGenericAuto() || l.IsGenericNormal()
}

// IsInherited reports whether the value is unset and taken from the parent.
func (l Length) IsInherited() bool {
	return l.Unit == UnitInherited
}

// Float returns the numeric value: Value/256 for scaled units and Value for
// screen pixels and colors. It does not look at generic sentinels, callers
// resolving sizes must check IsGeneric first.
func (l Length) Float() float64 {
	switch l.Unit {
	case UnitScreenPx, UnitColor:
		return float64(l.Value)
	}
	return float64(l.Value) / FixedPointOne
}

// InBudget reports whether Value fits the bit budget Pack relies on, that is
// a decoded magnitude in [-MaxMagnitude, MaxMagnitude) for scaled units.
// +MaxMagnitude itself is out: shifted by Pack it wraps onto -MaxMagnitude.
// Nothing in this package calls it, it is meant for debug checks in callers.
func (l Length) InBudget() bool {
	const limit = MaxMagnitude * FixedPointOne
	return l.Value >= -limit && l.Value < limit
}

var unitSuffix = map[Unit]string{
	UnitPx:      "px",
	UnitEm:      "em",
	UnitEx:      "ex",
	UnitRem:     "rem",
	UnitIn:      "in",
	UnitCm:      "cm",
	UnitMm:      "mm",
	UnitPt:      "pt",
	UnitPc:      "pc",
	UnitPercent: "%",
}

// String returns CSS-like text for the length: "1.5em", "auto", "#ff0000".
// Unitless numbers are printed bare and screen pixels as "12 screen_px".
func (l Length) String() string {
	switch l.Unit {
	case UnitInherited:
		return "inherit"
	case UnitUnspecified:
		switch l.Value {
		case GenericAuto:
			return "auto"
		case GenericNormal:
			return "normal"
		}
		return strconv.FormatFloat(l.Float(), 'g', -1, 64)
	case UnitColor:
		return fmt.Sprintf("#%06x", uint32(l.Value)&0xffffff)
	case UnitScreenPx:
		return fmt.Sprintf("%d %s", l.Value, UnitScreenPx)
	}
	if suffix, ok := unitSuffix[l.Unit]; ok {
		return strconv.FormatFloat(l.Float(), 'g', -1, 64) + suffix
	}
	return fmt.Sprintf("Length(%d, %d)", l.Unit, l.Value)
}

// MarshalText implements encoding.TextMarshaler for diagnostics output.
func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
