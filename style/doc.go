// Package style defines the computed style value model of the reader CSS
// subset.
//
// # Property domains
//
// Every enumerated property (display, text-align, font-weight, border-style,
// orphans, the non standard -cr-hint and the rest) is a closed go-enum type
// whose variant 0 is "inherit". Parse* functions and UnmarshalText never
// produce a value outside the domain.
//
// # Lengths
//
// Length is a {Unit, Value} pair. For all units but screen_px, Value is fixed
// point with 8 fractional bits, so 10px is stored as (px, 2560) and 1.5em as
// (em, 384). screen_px values are exact device pixels. The generic keywords
// auto and normal reuse the unspecified unit with Value -1 and -2:
//
//	l := style.RawLength(style.UnitEm, style.FixedPoint(1.5)) // (em, 384)
//	a := style.Auto()                                        // (unspecified, -1)
//	if a.IsGenericAuto() {
//		// never read a.Value as a magnitude
//	}
//
// There are three ways to build a length and they are kept apart on purpose:
// NewLength (0 device pixels), Pixels (device pixels) and RawLength (caller
// scaled). RawLength never scales, FixedPoint does.
//
// Equality is structural: 1in and 96 screen pixels are different lengths.
// Pack folds a length into an int32 cache key component.
//
// # Records
//
// Record gathers one value of every property. The zero Record inherits
// everything, Hash turns a record into a style cache key.
//
// Nothing here parses CSS text, resolves inheritance or converts units to
// pixels. See package crcss/css for decoding.
package style
