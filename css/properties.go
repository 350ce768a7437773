package css

import (
	"fmt"
	"strings"

	"crcss/style"
)

// propertyFunc stores one decoded declaration into a record. It must leave
// the record untouched on error.
type propertyFunc func(r *style.Record, v Value) error

func keywordProperty[T any](decode func(string) (T, error), field func(*style.Record) *T) propertyFunc {
	return func(r *style.Record, v Value) error {
		x, err := decode(v.Raw)
		if err != nil {
			return err
		}
		*field(r) = x
		return nil
	}
}

func lengthProperty(field func(*style.Record) *style.Length) propertyFunc {
	return func(r *style.Record, v Value) error {
		l, err := decodeLength(v.Raw)
		if err != nil {
			return err
		}
		*field(r) = l
		return nil
	}
}

func colorProperty(field func(*style.Record) *style.Length) propertyFunc {
	return func(r *style.Record, v Value) error {
		l, err := decodeColor(v.Raw)
		if err != nil {
			return err
		}
		*field(r) = l
		return nil
	}
}

// decodeLength is ParseLength restricted to sizes: color names are not
// lengths even though ParseLength understands them.
func decodeLength(s string) (style.Length, error) {
	l, err := ParseLength(s)
	if err != nil {
		return l, err
	}
	if l.Unit == style.UnitColor {
		return style.Length{}, fmt.Errorf("color %q is not a length: %w", s, ErrUnsupportedValue)
	}
	return l, nil
}

// decodeColor accepts colors and inherit.
func decodeColor(s string) (style.Length, error) {
	if normalizeKeyword(s) == "inherit" {
		return style.Inherited(), nil
	}
	return ParseColor(s)
}

// decodeBorderWidth adds the thin, medium and thick keywords to lengths.
func decodeBorderWidth(s string) (style.Length, error) {
	switch normalizeKeyword(s) {
	case "thin":
		return style.RawLength(style.UnitPx, style.FixedPoint(1)), nil
	case "medium":
		return style.RawLength(style.UnitPx, style.FixedPoint(3)), nil
	case "thick":
		return style.RawLength(style.UnitPx, style.FixedPoint(5)), nil
	}
	l, err := decodeLength(s)
	if err != nil {
		return l, err
	}
	if l.IsGeneric() {
		return style.Length{}, fmt.Errorf("border width %q: %w", s, ErrUnsupportedValue)
	}
	return l, nil
}

// decodeImage accepts url(...) and none, which clears the image.
func decodeImage(s string) (string, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return "", nil
	}
	if len(s) > 5 && strings.EqualFold(s[:4], "url(") && s[len(s)-1] == ')' {
		return unquote(s[4 : len(s)-1]), nil
	}
	return "", fmt.Errorf("image %q: %w", s, ErrUnsupportedValue)
}

func sideProperties(prefix, suffix string, set func(r *style.Record, side style.Side, v Value) error, dst map[string]propertyFunc) {
	for _, side := range style.Sides {
		dst[prefix+side.String()+suffix] = func(r *style.Record, v Value) error {
			return set(r, side, v)
		}
	}
}

// longhands maps property names to their setters.
var longhands = func() map[string]propertyFunc {
	m := map[string]propertyFunc{
		"display":         keywordProperty(DecodeDisplay, func(r *style.Record) *style.Display { return &r.Display }),
		"white-space":     keywordProperty(DecodeWhiteSpace, func(r *style.Record) *style.WhiteSpace { return &r.WhiteSpace }),
		"text-align":      keywordProperty(DecodeTextAlign, func(r *style.Record) *style.TextAlign { return &r.TextAlign }),
		"text-align-last": keywordProperty(DecodeTextAlign, func(r *style.Record) *style.TextAlign { return &r.TextAlignLast }),
		"vertical-align":  keywordProperty(DecodeVerticalAlign, func(r *style.Record) *style.VerticalAlign { return &r.VerticalAlign }),
		"text-decoration": keywordProperty(DecodeTextDecoration, func(r *style.Record) *style.TextDecoration { return &r.TextDecoration }),
		"text-transform":  keywordProperty(DecodeTextTransform, func(r *style.Record) *style.TextTransform { return &r.TextTransform }),
		"hyphens":         keywordProperty(DecodeHyphenation, func(r *style.Record) *style.Hyphenation { return &r.Hyphenation }),
		"font-style":      keywordProperty(DecodeFontStyle, func(r *style.Record) *style.FontStyle { return &r.FontStyle }),
		"font-weight":     keywordProperty(DecodeFontWeight, func(r *style.Record) *style.FontWeight { return &r.FontWeight }),

		"font-size":      lengthProperty(func(r *style.Record) *style.Length { return &r.FontSize }),
		"line-height":    lengthProperty(func(r *style.Record) *style.Length { return &r.LineHeight }),
		"letter-spacing": lengthProperty(func(r *style.Record) *style.Length { return &r.LetterSpacing }),
		"text-indent":    lengthProperty(func(r *style.Record) *style.Length { return &r.TextIndent }),
		"width":          lengthProperty(func(r *style.Record) *style.Length { return &r.Width }),
		"height":         lengthProperty(func(r *style.Record) *style.Length { return &r.Height }),
		"min-width":      lengthProperty(func(r *style.Record) *style.Length { return &r.MinWidth }),
		"min-height":     lengthProperty(func(r *style.Record) *style.Length { return &r.MinHeight }),

		"color":            colorProperty(func(r *style.Record) *style.Length { return &r.Color }),
		"background-color": colorProperty(func(r *style.Record) *style.Length { return &r.BackgroundColor }),

		"background-repeat":     keywordProperty(DecodeBackgroundRepeat, func(r *style.Record) *style.BackgroundRepeat { return &r.BackgroundRepeat }),
		"background-attachment": keywordProperty(DecodeBackgroundAttachment, func(r *style.Record) *style.BackgroundAttachment { return &r.BackgroundAttachment }),
		"background-position":   keywordProperty(DecodeBackgroundPosition, func(r *style.Record) *style.BackgroundPosition { return &r.BackgroundPosition }),
		"border-collapse":       keywordProperty(DecodeBorderCollapse, func(r *style.Record) *style.BorderCollapse { return &r.BorderCollapse }),

		"page-break-before":   keywordProperty(DecodePageBreak, func(r *style.Record) *style.PageBreak { return &r.PageBreakBefore }),
		"page-break-after":    keywordProperty(DecodePageBreak, func(r *style.Record) *style.PageBreak { return &r.PageBreakAfter }),
		"page-break-inside":   keywordProperty(DecodePageBreak, func(r *style.Record) *style.PageBreak { return &r.PageBreakInside }),
		"orphans":             keywordProperty(DecodeOrphansWidows, func(r *style.Record) *style.OrphansWidows { return &r.Orphans }),
		"widows":              keywordProperty(DecodeOrphansWidows, func(r *style.Record) *style.OrphansWidows { return &r.Widows }),
		"list-style-type":     keywordProperty(DecodeListStyleType, func(r *style.Record) *style.ListStyleType { return &r.ListStyleType }),
		"list-style-position": keywordProperty(DecodeListStylePosition, func(r *style.Record) *style.ListStylePosition { return &r.ListStylePosition }),
		"-cr-hint":            keywordProperty(DecodeRenderingHint, func(r *style.Record) *style.RenderingHint { return &r.Hint }),

		"font-family": func(r *style.Record, v Value) error {
			family, name, err := DecodeFontFamily(v.Raw)
			if err != nil {
				return err
			}
			r.FontFamily, r.FontName = family, name
			return nil
		},
		"background-image": func(r *style.Record, v Value) error {
			img, err := decodeImage(v.Raw)
			if err != nil {
				return err
			}
			r.BackgroundImage = img
			return nil
		},
	}

	sideProperties("margin-", "", func(r *style.Record, side style.Side, v Value) error {
		l, err := decodeLength(v.Raw)
		if err == nil {
			r.Margin[side] = l
		}
		return err
	}, m)
	sideProperties("padding-", "", func(r *style.Record, side style.Side, v Value) error {
		l, err := decodeLength(v.Raw)
		if err == nil {
			r.Padding[side] = l
		}
		return err
	}, m)
	sideProperties("border-", "-style", func(r *style.Record, side style.Side, v Value) error {
		b, err := DecodeBorderStyle(v.Raw)
		if err == nil {
			r.BorderStyle[side] = b
		}
		return err
	}, m)
	sideProperties("border-", "-width", func(r *style.Record, side style.Side, v Value) error {
		l, err := decodeBorderWidth(v.Raw)
		if err == nil {
			r.BorderWidth[side] = l
		}
		return err
	}, m)
	sideProperties("border-", "-color", func(r *style.Record, side style.Side, v Value) error {
		l, err := decodeColor(v.Raw)
		if err == nil {
			r.BorderColor[side] = l
		}
		return err
	}, m)
	return m
}()

// shorthands maps shorthand names to their expanders. Expanders decode every
// component before storing anything.
var shorthands = map[string]propertyFunc{
	"margin": func(r *style.Record, v Value) error {
		return expandBox(v.Raw, decodeLength, &r.Margin)
	},
	"padding": func(r *style.Record, v Value) error {
		return expandBox(v.Raw, decodeLength, &r.Padding)
	},
	"border-width": func(r *style.Record, v Value) error {
		return expandBox(v.Raw, decodeBorderWidth, &r.BorderWidth)
	},
	"border-style": func(r *style.Record, v Value) error {
		return expandBox(v.Raw, DecodeBorderStyle, &r.BorderStyle)
	},
	"border-color": func(r *style.Record, v Value) error {
		return expandBox(v.Raw, decodeColor, &r.BorderColor)
	},
	"border": func(r *style.Record, v Value) error {
		return expandBorder(r, v.Raw, style.Sides[:]...)
	},
	"border-top": func(r *style.Record, v Value) error {
		return expandBorder(r, v.Raw, style.SideTop)
	},
	"border-right": func(r *style.Record, v Value) error {
		return expandBorder(r, v.Raw, style.SideRight)
	},
	"border-bottom": func(r *style.Record, v Value) error {
		return expandBorder(r, v.Raw, style.SideBottom)
	},
	"border-left": func(r *style.Record, v Value) error {
		return expandBorder(r, v.Raw, style.SideLeft)
	},
	"border-spacing": expandBorderSpacing,
	"list-style":     expandListStyle,
	"background":     expandBackground,
}

// expandBox applies the 1, 2, 3 or 4 value box rule:
//   - 1 value: all sides
//   - 2 values: top/bottom, left/right
//   - 3 values: top, left/right, bottom
//   - 4 values: top, right, bottom, left
func expandBox[T any](raw string, decode func(string) (T, error), dst *[4]T) error {
	parts := strings.Fields(raw)

	vals := make([]T, len(parts))
	for i, part := range parts {
		v, err := decode(part)
		if err != nil {
			return err
		}
		vals[i] = v
	}

	switch len(vals) {
	case 1:
		*dst = [4]T{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		*dst = [4]T{vals[0], vals[1], vals[0], vals[1]}
	case 3:
		*dst = [4]T{vals[0], vals[1], vals[2], vals[1]}
	case 4:
		*dst = [4]T{vals[0], vals[1], vals[2], vals[3]}
	default:
		return fmt.Errorf("%d values in %q: %w", len(vals), raw, ErrUnsupportedValue)
	}
	return nil
}

// expandBorder decodes "<width> <style> <color>" in any order, each part
// optional. Omitted parts reset to the CSS initial values.
func expandBorder(r *style.Record, raw string, sides ...style.Side) error {
	var (
		width = style.RawLength(style.UnitPx, style.FixedPoint(3))
		bs    = style.BorderStyleNone
		color = style.Inherited()

		seenWidth, seenStyle, seenColor bool
	)

	parts := strings.Fields(raw)
	if isLoneInherit(raw) {
		width, bs, color = style.Inherited(), style.BorderStyleInherit, style.Inherited()
		parts = nil
	}
	for _, part := range parts {
		if s, err := DecodeBorderStyle(part); err == nil && !seenStyle {
			bs, seenStyle = s, true
			continue
		}
		if w, err := decodeBorderWidth(part); err == nil && !seenWidth {
			width, seenWidth = w, true
			continue
		}
		if c, err := ParseColor(part); err == nil && !seenColor {
			color, seenColor = c, true
			continue
		}
		return fmt.Errorf("border component %q: %w", part, ErrUnsupportedValue)
	}

	for _, side := range sides {
		r.BorderWidth[side] = width
		r.BorderStyle[side] = bs
		r.BorderColor[side] = color
	}
	return nil
}

// expandBorderSpacing takes one value for both axes or horizontal then
// vertical.
func expandBorderSpacing(r *style.Record, v Value) error {
	parts := strings.Fields(v.Raw)
	if len(parts) < 1 || len(parts) > 2 {
		return fmt.Errorf("border-spacing %q: %w", v.Raw, ErrUnsupportedValue)
	}

	var spacing [2]style.Length
	for i, part := range parts {
		l, err := decodeLength(part)
		if err != nil {
			return err
		}
		spacing[i] = l
	}
	if len(parts) == 1 {
		spacing[1] = spacing[0]
	}
	r.BorderSpacing = spacing
	return nil
}

// expandListStyle decodes "<type> <position>" in any order. An image
// component is not representable and fails the declaration. A lone inherit
// applies to both longhands.
func expandListStyle(r *style.Record, v Value) error {
	var (
		lt  = style.ListStyleTypeDisc
		pos = style.ListStylePositionOutside
	)
	if isLoneInherit(v.Raw) {
		r.ListStyleType, r.ListStylePosition = style.ListStyleTypeInherit, style.ListStylePositionInherit
		return nil
	}
	for _, part := range strings.Fields(v.Raw) {
		if p, err := DecodeListStylePosition(part); err == nil {
			pos = p
			continue
		}
		if t, err := DecodeListStyleType(part); err == nil {
			lt = t
			continue
		}
		return fmt.Errorf("list-style component %q: %w", part, ErrUnsupportedValue)
	}
	r.ListStyleType, r.ListStylePosition = lt, pos
	return nil
}

// expandBackground decodes color, image, repeat, attachment and position
// components of the background shorthand in any order. A lone inherit
// applies to every longhand and clears the image.
func expandBackground(r *style.Record, v Value) error {
	var (
		color      = style.Inherited()
		image      string
		repeat     = style.BackgroundRepeatRepeat
		attachment = style.BackgroundAttachmentScroll
		position   []string
	)
	if isLoneInherit(v.Raw) {
		r.BackgroundColor = style.Inherited()
		r.BackgroundImage = ""
		r.BackgroundRepeat = style.BackgroundRepeatInherit
		r.BackgroundAttachment = style.BackgroundAttachmentInherit
		r.BackgroundPosition = style.BackgroundPositionInherit
		return nil
	}

	for _, part := range strings.Fields(v.Raw) {
		switch normalizeKeyword(part) {
		case "left", "right", "top", "bottom", "center":
			position = append(position, part)
			continue
		}
		if img, err := decodeImage(part); err == nil {
			image = img
			continue
		}
		if rep, err := DecodeBackgroundRepeat(part); err == nil {
			repeat = rep
			continue
		}
		if att, err := DecodeBackgroundAttachment(part); err == nil {
			attachment = att
			continue
		}
		if c, err := decodeColor(part); err == nil {
			color = c
			continue
		}
		return fmt.Errorf("background component %q: %w", part, ErrUnsupportedValue)
	}

	pos := style.BackgroundPositionLeftTop
	if len(position) > 0 {
		p, err := DecodeBackgroundPosition(strings.Join(position, " "))
		if err != nil {
			return err
		}
		pos = p
	}

	r.BackgroundColor = color
	r.BackgroundImage = image
	r.BackgroundRepeat = repeat
	r.BackgroundAttachment = attachment
	r.BackgroundPosition = pos
	return nil
}

func isLoneInherit(raw string) bool {
	parts := strings.Fields(raw)
	return len(parts) == 1 && normalizeKeyword(parts[0]) == "inherit"
}

// IsShorthand reports whether name is a supported shorthand property.
func IsShorthand(name string) bool {
	_, ok := shorthands[name]
	return ok
}

// ApplyDeclaration decodes one declaration into r. The record is not
// modified when an error is returned. Unsupported properties return
// ErrUnknownProperty.
func ApplyDeclaration(r *style.Record, name string, v Value) error {
	name = strings.ToLower(name)
	set, ok := shorthands[name]
	if !ok {
		set, ok = longhands[name]
	}
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownProperty)
	}
	if err := set(r, v); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
