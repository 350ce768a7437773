package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"crcss/style"
)

// Decoder errors. Domain decoders wrap the go-enum ErrInvalid* error as well,
// so both can be matched with errors.Is.
var (
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrOutOfRange       = errors.New("value out of range")
	ErrUnknownProperty  = errors.New("unknown property")
)

// prefixedKeywords maps engine specific keywords to enum names. These
// keywords are valid only with the "-cr-" prefix.
var prefixedKeywords = map[string]string{
	"-cr-list-item-final": "list-item-final",
}

var lengthUnits = map[string]style.Unit{
	"px":  style.UnitPx,
	"em":  style.UnitEm,
	"ex":  style.UnitEx,
	"rem": style.UnitRem,
	"in":  style.UnitIn,
	"cm":  style.UnitCm,
	"mm":  style.UnitMm,
	"pt":  style.UnitPt,
	"pc":  style.UnitPc,
}

// singleToken lexes s and returns its only non-whitespace token.
func singleToken(s string) (css.TokenType, string, error) {
	l := css.NewLexer(parse.NewInputString(s))

	var (
		tt   css.TokenType
		data string
		n    int
	)
	for {
		t, d := l.Next()
		if t == css.ErrorToken {
			break
		}
		if t == css.WhitespaceToken || t == css.CommentToken {
			continue
		}
		if n++; n > 1 {
			return css.ErrorToken, "", fmt.Errorf("%q is not a single value: %w", s, ErrUnsupportedValue)
		}
		tt, data = t, string(d)
	}
	if n == 0 {
		return css.ErrorToken, "", fmt.Errorf("empty value: %w", ErrUnsupportedValue)
	}
	return tt, data, nil
}

// scaled builds a fixed point length, refusing magnitudes the encoding can
// not carry. The check is done after rounding, so values which round up to
// +MaxMagnitude are refused too.
func scaled(s string, unit style.Unit, n float64) (style.Length, error) {
	if math.IsNaN(n) || math.Abs(n) > style.MaxMagnitude {
		return style.Length{}, fmt.Errorf("%q: %w", s, ErrOutOfRange)
	}
	l := style.RawLength(unit, style.FixedPoint(n))
	if !l.InBudget() {
		return style.Length{}, fmt.Errorf("%q: %w", s, ErrOutOfRange)
	}
	return l, nil
}

// ParseLength decodes one CSS length value:
//
//	"10px"    -> (px, 2560)
//	"1.5em"   -> (em, 384)
//	"50%"     -> (percent, 12800)
//	"1.2"     -> (unspecified, 307), a multiplier for line-height
//	"0"       -> (px, 0)
//	"auto"    -> (unspecified, -1)
//	"normal"  -> (unspecified, -2)
//	"inherit" -> (inherited, 0)
//	"#f00"    -> (color, 0xff0000)
//
// Negative unitless numbers are rejected since they would collide with the
// generic sentinels.
func ParseLength(s string) (style.Length, error) {
	tt, data, err := singleToken(s)
	if err != nil {
		return style.Length{}, err
	}

	switch tt {
	case css.IdentToken:
		switch strings.ToLower(data) {
		case "auto":
			return style.Auto(), nil
		case "normal":
			return style.Normal(), nil
		case "inherit":
			return style.Inherited(), nil
		}
		return ParseColor(data)

	case css.HashToken:
		return ParseColor(data)

	case css.DimensionToken:
		n, suffix := splitDimension(data)
		unit, ok := lengthUnits[suffix]
		if !ok {
			return style.Length{}, fmt.Errorf("unit %q in %q: %w", suffix, s, ErrUnsupportedValue)
		}
		return scaled(s, unit, n)

	case css.PercentageToken:
		n, err := strconv.ParseFloat(strings.TrimSuffix(data, "%"), 64)
		if err != nil {
			return style.Length{}, fmt.Errorf("%q: %w", s, ErrUnsupportedValue)
		}
		return scaled(s, style.UnitPercent, n)

	case css.NumberToken:
		n, err := strconv.ParseFloat(data, 64)
		if err != nil {
			return style.Length{}, fmt.Errorf("%q: %w", s, ErrUnsupportedValue)
		}
		switch {
		case n == 0:
			return style.RawLength(style.UnitPx, 0), nil
		case n < 0:
			return style.Length{}, fmt.Errorf("negative number %q: %w", s, ErrUnsupportedValue)
		}
		return scaled(s, style.UnitUnspecified, n)
	}
	return style.Length{}, fmt.Errorf("%q: %w", s, ErrUnsupportedValue)
}

// LengthFromValue decodes a parsed declaration value as a length.
func LengthFromValue(v Value) (style.Length, error) {
	return ParseLength(v.Raw)
}

// basicColors are the 16 HTML 4 color keywords plus the common aliases.
var basicColors = map[string]int32{
	"black":   0x000000,
	"silver":  0xc0c0c0,
	"gray":    0x808080,
	"grey":    0x808080,
	"white":   0xffffff,
	"maroon":  0x800000,
	"red":     0xff0000,
	"purple":  0x800080,
	"fuchsia": 0xff00ff,
	"magenta": 0xff00ff,
	"green":   0x008000,
	"lime":    0x00ff00,
	"olive":   0x808000,
	"yellow":  0xffff00,
	"navy":    0x000080,
	"blue":    0x0000ff,
	"teal":    0x008080,
	"aqua":    0x00ffff,
	"cyan":    0x00ffff,
}

// ParseColor decodes #RGB, #RRGGBB and basic color keywords into a
// UnitColor length holding 0xRRGGBB unscaled. There is no alpha, so
// transparent is rejected.
func ParseColor(s string) (style.Length, error) {
	raw := strings.ToLower(strings.TrimSpace(s))

	if hex, ok := strings.CutPrefix(raw, "#"); ok {
		switch len(hex) {
		case 3:
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		case 6:
		default:
			return style.Length{}, fmt.Errorf("color %q: %w", s, ErrUnsupportedValue)
		}
		rgb, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return style.Length{}, fmt.Errorf("color %q: %w", s, ErrUnsupportedValue)
		}
		return style.RawLength(style.UnitColor, int32(rgb)), nil
	}

	if rgb, ok := basicColors[raw]; ok {
		return style.RawLength(style.UnitColor, rgb), nil
	}
	return style.Length{}, fmt.Errorf("color %q: %w", s, ErrUnsupportedValue)
}

// normalizeKeyword lowercases s and maps prefixed engine keywords to their
// enum names. An engine keyword spelled without its prefix is returned with
// a leading "-" so that no enum accepts it.
func normalizeKeyword(s string) string {
	kw := strings.ToLower(strings.TrimSpace(s))
	if name, ok := prefixedKeywords[kw]; ok {
		return name
	}
	for _, name := range prefixedKeywords {
		if kw == name {
			return "-" + kw
		}
	}
	return kw
}

// decodeKeyword runs a go-enum Parse function on the normalized keyword.
func decodeKeyword[T any](s string, parseFn func(string) (T, error)) (T, error) {
	v, err := parseFn(normalizeKeyword(s))
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrUnsupportedValue, err)
	}
	return v, nil
}

// DecodeDisplay decodes the display property. -cr-list-item-final is the
// engine list item, list-item is the CSS one.
func DecodeDisplay(s string) (style.Display, error) {
	return decodeKeyword(s, style.ParseDisplay)
}

// DecodeWhiteSpace decodes the white-space property.
func DecodeWhiteSpace(s string) (style.WhiteSpace, error) {
	return decodeKeyword(s, style.ParseWhiteSpace)
}

// DecodeTextAlign decodes text-align and text-align-last.
func DecodeTextAlign(s string) (style.TextAlign, error) {
	return decodeKeyword(s, style.ParseTextAlign)
}

// DecodeVerticalAlign decodes vertical-align keywords. Lengths are not
// accepted.
func DecodeVerticalAlign(s string) (style.VerticalAlign, error) {
	return decodeKeyword(s, style.ParseVerticalAlign)
}

// DecodeTextDecoration decodes a single text-decoration keyword.
func DecodeTextDecoration(s string) (style.TextDecoration, error) {
	return decodeKeyword(s, style.ParseTextDecoration)
}

// DecodeTextTransform decodes the text-transform property.
func DecodeTextTransform(s string) (style.TextTransform, error) {
	return decodeKeyword(s, style.ParseTextTransform)
}

// DecodeHyphenation decodes the hyphens property.
func DecodeHyphenation(s string) (style.Hyphenation, error) {
	return decodeKeyword(s, style.ParseHyphenation)
}

// DecodeFontStyle decodes the font-style property.
func DecodeFontStyle(s string) (style.FontStyle, error) {
	return decodeKeyword(s, style.ParseFontStyle)
}

// DecodeFontWeight accepts keywords and the numbers 100-900 in steps of 100.
func DecodeFontWeight(s string) (style.FontWeight, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		w, ok := style.FontWeightFromNumber(n)
		if !ok {
			return w, fmt.Errorf("font-weight %d: %w", n, ErrOutOfRange)
		}
		return w, nil
	}
	return decodeKeyword(s, style.ParseFontWeight)
}

// DecodeFontFamily splits a font-family list into the first generic family
// and the first named face. Either may be missing, but not both.
func DecodeFontFamily(s string) (style.FontFamily, string, error) {
	family, name := style.FontFamilyInherit, ""
	for item := range strings.SplitSeq(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		quoted := item[0] == '"' || item[0] == '\''
		if !quoted {
			if f, err := style.ParseFontFamily(strings.ToLower(item)); err == nil {
				if family == style.FontFamilyInherit {
					family = f
				}
				continue
			}
		}
		if name == "" {
			name = unquote(item)
		}
	}
	if family == style.FontFamilyInherit && name == "" {
		return family, name, fmt.Errorf("font-family %q: %w", s, ErrUnsupportedValue)
	}
	return family, name, nil
}

// DecodePageBreak decodes page-break-before, -after and -inside.
func DecodePageBreak(s string) (style.PageBreak, error) {
	return decodeKeyword(s, style.ParsePageBreak)
}

// DecodeListStyleType decodes the list-style-type property.
func DecodeListStyleType(s string) (style.ListStyleType, error) {
	return decodeKeyword(s, style.ParseListStyleType)
}

// DecodeListStylePosition decodes the list-style-position property.
func DecodeListStylePosition(s string) (style.ListStylePosition, error) {
	return decodeKeyword(s, style.ParseListStylePosition)
}

// DecodeBorderStyle decodes one border-style keyword.
func DecodeBorderStyle(s string) (style.BorderStyle, error) {
	return decodeKeyword(s, style.ParseBorderStyle)
}

// DecodeBackgroundRepeat decodes the background-repeat property.
func DecodeBackgroundRepeat(s string) (style.BackgroundRepeat, error) {
	return decodeKeyword(s, style.ParseBackgroundRepeat)
}

// DecodeBackgroundAttachment decodes the background-attachment property.
func DecodeBackgroundAttachment(s string) (style.BackgroundAttachment, error) {
	return decodeKeyword(s, style.ParseBackgroundAttachment)
}

// DecodeBackgroundPosition accepts one or two anchor keywords in either
// order ("top", "left bottom", "bottom left") and the plain domain keywords.
// A single keyword centers the other axis.
func DecodeBackgroundPosition(s string) (style.BackgroundPosition, error) {
	words := strings.Fields(strings.ToLower(s))

	var h, v string
	switch len(words) {
	case 1:
		switch words[0] {
		case "left", "right":
			h, v = words[0], "center"
		case "top", "bottom":
			h, v = "center", words[0]
		case "center":
			h, v = "center", "center"
		default:
			return decodeKeyword(words[0], style.ParseBackgroundPosition)
		}
	case 2:
		h, v = words[0], words[1]
		if h == "top" || h == "bottom" || v == "left" || v == "right" {
			h, v = v, h
		}
	default:
		return style.BackgroundPositionInherit, fmt.Errorf("background-position %q: %w", s, ErrUnsupportedValue)
	}

	pos, ok := style.BackgroundPositionFromAnchor(h, v)
	if !ok {
		return pos, fmt.Errorf("background-position %q: %w", s, ErrUnsupportedValue)
	}
	return pos, nil
}

// DecodeBorderCollapse decodes the border-collapse property.
func DecodeBorderCollapse(s string) (style.BorderCollapse, error) {
	return decodeKeyword(s, style.ParseBorderCollapse)
}

// DecodeOrphansWidows accepts inherit and the counts 1-9. Larger counts are
// out of range rather than clamped.
func DecodeOrphansWidows(s string) (style.OrphansWidows, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		ow, ok := style.OrphansWidowsFromCount(n)
		if !ok {
			return ow, fmt.Errorf("count %d: %w", n, ErrOutOfRange)
		}
		return ow, nil
	}
	if normalizeKeyword(s) != "inherit" {
		return style.OrphansWidowsInherit, fmt.Errorf("%q: %w", s, ErrUnsupportedValue)
	}
	return style.OrphansWidowsInherit, nil
}

// DecodeRenderingHint decodes values of the non standard -cr-hint property.
func DecodeRenderingHint(s string) (style.RenderingHint, error) {
	return decodeKeyword(s, style.ParseRenderingHint)
}
