package style

//go:generate go tool go-enum --marshal --names --nocase

// Every domain below is closed and starts with "inherit": the zero value of
// each type asks the cascade to use the value resolved for the parent
// element. Keyword spelling follows CSS where a single identifier exists.

// Unit is the kind of a Length. The ordinal is part of Length.Pack, do not
// reorder.
// ENUM(inherited, unspecified, px, em, ex, rem, in, cm, mm, pt, pc, percent, color, screen_px)
type Unit int

// IsRelative reports whether lengths of this unit depend on a font size or on
// the containing block.
func (u Unit) IsRelative() bool {
	switch u {
	case UnitEm, UnitEx, UnitRem, UnitPercent:
		return true
	}
	return false
}

// IsAbsolute reports whether lengths of this unit map to a physical size
// given only the rendering DPI.
func (u Unit) IsAbsolute() bool {
	switch u {
	case UnitPx, UnitIn, UnitCm, UnitMm, UnitPt, UnitPc, UnitScreenPx:
		return true
	}
	return false
}

// Display is the display property.
// list-item-final is the engine's -cr-list-item-final, list-item is CSS list-item.
// ENUM(inherit, inline, block, list-item-final, list-item, run-in, compact, marker, table, inline-table, table-row-group, table-header-group, table-footer-group, table-row, table-column-group, table-column, table-cell, table-caption, none)
type Display int

func (x Display) IsInherit() bool { return x == DisplayInherit }

// IsBlock reports whether elements with this display start a new block box.
func (x Display) IsBlock() bool {
	return x != DisplayInherit && x != DisplayInline && x != DisplayNone
}

// IsTablePart reports whether display places the element inside a table.
func (x Display) IsTablePart() bool {
	return x >= DisplayTableRowGroup && x <= DisplayTableCaption
}

// ENUM(inherit, normal, pre, nowrap)
type WhiteSpace int

func (x WhiteSpace) IsInherit() bool { return x == WhiteSpaceInherit }

// ENUM(inherit, left, right, center, justify)
type TextAlign int

func (x TextAlign) IsInherit() bool { return x == TextAlignInherit }

// ENUM(inherit, baseline, sub, super, top, text-top, middle, bottom, text-bottom)
type VerticalAlign int

func (x VerticalAlign) IsInherit() bool { return x == VerticalAlignInherit }

// TextDecoration holds a single decoration, combined decorations are not
// supported.
// ENUM(inherit, none, underline, overline, line-through, blink)
type TextDecoration int

func (x TextDecoration) IsInherit() bool { return x == TextDecorationInherit }

// ENUM(inherit, none, uppercase, lowercase, capitalize, full-width)
type TextTransform int

func (x TextTransform) IsInherit() bool { return x == TextTransformInherit }

// Hyphenation is the hyphens property.
// ENUM(inherit, none, auto)
type Hyphenation int

func (x Hyphenation) IsInherit() bool { return x == HyphenationInherit }

// ENUM(inherit, normal, italic, oblique)
type FontStyle int

func (x FontStyle) IsInherit() bool { return x == FontStyleInherit }

// FontWeight mixes absolute and relative weights in one flat domain.
// Resolving bolder and lighter against the parent weight belongs to the
// cascade.
// ENUM(inherit, normal, bold, bolder, lighter, 100, 200, 300, 400, 500, 600, 700, 800, 900)
type FontWeight int

func (x FontWeight) IsInherit() bool { return x == FontWeightInherit }

// IsRelative is true for bolder and lighter.
func (x FontWeight) IsRelative() bool {
	return x == FontWeightBolder || x == FontWeightLighter
}

// Numeric returns the absolute weight for normal, bold and 100-900.
func (x FontWeight) Numeric() (int, bool) {
	switch {
	case x == FontWeightNormal:
		return 400, true
	case x == FontWeightBold:
		return 700, true
	case x >= FontWeight100 && x <= FontWeight900:
		return int(x-FontWeight100+1) * 100, true
	}
	return 0, false
}

// FontWeightFromNumber maps 100, 200, ..., 900 to the matching variant.
func FontWeightFromNumber(n int) (FontWeight, bool) {
	if n < 100 || n > 900 || n%100 != 0 {
		return FontWeightInherit, false
	}
	return FontWeight100 + FontWeight(n/100-1), true
}

// FontFamily is the generic family class of a font-family list.
// ENUM(inherit, serif, sans-serif, cursive, fantasy, monospace)
type FontFamily int

func (x FontFamily) IsInherit() bool { return x == FontFamilyInherit }

// PageBreak is used by page-break-before, page-break-after and
// page-break-inside.
// ENUM(inherit, auto, always, avoid, left, right)
type PageBreak int

func (x PageBreak) IsInherit() bool { return x == PageBreakInherit }

// ENUM(inherit, disc, circle, square, decimal, lower-roman, upper-roman, lower-alpha, upper-alpha, none)
type ListStyleType int

func (x ListStyleType) IsInherit() bool { return x == ListStyleTypeInherit }

// IsOrdered reports whether the marker is a counter rather than a glyph.
func (x ListStyleType) IsOrdered() bool {
	return x >= ListStyleTypeDecimal && x <= ListStyleTypeUpperAlpha
}

// ENUM(inherit, inside, outside)
type ListStylePosition int

func (x ListStylePosition) IsInherit() bool { return x == ListStylePositionInherit }

// ENUM(inherit, solid, dotted, dashed, double, groove, ridge, inset, outset, none)
type BorderStyle int

func (x BorderStyle) IsInherit() bool { return x == BorderStyleInherit }

// IsVisible is false for inherit and none.
func (x BorderStyle) IsVisible() bool {
	return x != BorderStyleInherit && x != BorderStyleNone
}

// ENUM(inherit, repeat, repeat-x, repeat-y, no-repeat, initial, none)
type BackgroundRepeat int

func (x BackgroundRepeat) IsInherit() bool { return x == BackgroundRepeatInherit }

// ENUM(inherit, scroll, fixed, local, initial, none)
type BackgroundAttachment int

func (x BackgroundAttachment) IsInherit() bool { return x == BackgroundAttachmentInherit }

// BackgroundPosition is a 3x3 grid of anchors. Variant names are
// horizontal-vertical.
// ENUM(inherit, left-top, left-center, left-bottom, right-top, right-center, right-bottom, center-top, center-center, center-bottom, initial, none)
type BackgroundPosition int

func (x BackgroundPosition) IsInherit() bool { return x == BackgroundPositionInherit }

var (
	anchorsH = [...]string{"left", "right", "center"}
	anchorsV = [...]string{"top", "center", "bottom"}
)

// Anchor splits a grid variant into its horizontal and vertical keywords.
// It returns empty strings for inherit, initial and none.
func (x BackgroundPosition) Anchor() (horizontal, vertical string) {
	if x < BackgroundPositionLeftTop || x > BackgroundPositionCenterBottom {
		return "", ""
	}
	i := int(x - BackgroundPositionLeftTop)
	return anchorsH[i/3], anchorsV[i%3]
}

// BackgroundPositionFromAnchor is the inverse of Anchor.
func BackgroundPositionFromAnchor(horizontal, vertical string) (BackgroundPosition, bool) {
	hi, vi := -1, -1
	for i := range anchorsH {
		if anchorsH[i] == horizontal {
			hi = i
		}
		if anchorsV[i] == vertical {
			vi = i
		}
	}
	if hi < 0 || vi < 0 {
		return BackgroundPositionInherit, false
	}
	return BackgroundPositionLeftTop + BackgroundPosition(hi*3+vi), true
}

// ENUM(inherit, separate, collapse, initial, none)
type BorderCollapse int

func (x BorderCollapse) IsInherit() bool { return x == BorderCollapseInherit }

// OrphansWidows is shared by orphans and widows. Only counts 1-9 are
// representable, the decoder rejects anything else.
// ENUM(inherit, 1, 2, 3, 4, 5, 6, 7, 8, 9)
type OrphansWidows int

func (x OrphansWidows) IsInherit() bool { return x == OrphansWidowsInherit }

// Count returns the line count, 0 for inherit.
func (x OrphansWidows) Count() int {
	if !x.IsValid() {
		return 0
	}
	return int(x)
}

// OrphansWidowsFromCount maps 1-9 to the matching variant.
func OrphansWidowsFromCount(n int) (OrphansWidows, bool) {
	if n < 1 || n > 9 {
		return OrphansWidowsInherit, false
	}
	return OrphansWidows(n), true
}

// RenderingHint is the non standard -cr-hint property used by style tweaks to
// mark footnote links, footnote bodies and table of contents levels.
// ENUM(inherit, none, noteref, noteref-ignore, footnote, footnote-ignore, footnote-inpage, toc-level1, toc-level2, toc-level3, toc-level4, toc-level5, toc-level6, toc-ignore)
type RenderingHint int

func (x RenderingHint) IsInherit() bool { return x == RenderingHintInherit }

// TOCLevel returns 1-6 for toc-levelN hints and 0 otherwise.
func (x RenderingHint) TOCLevel() int {
	if x >= RenderingHintTocLevel1 && x <= RenderingHintTocLevel6 {
		return int(x-RenderingHintTocLevel1) + 1
	}
	return 0
}
