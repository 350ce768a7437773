package css_test

import (
	"errors"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"crcss/css"
	"crcss/style"
)

func convertOne(t *testing.T, input string) css.ConversionResult {
	t.Helper()

	rules := allRules(css.NewParser(zap.NewNop()).Parse([]byte(input)))
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	return css.NewConverter(zap.NewNop()).ConvertRule(rules[0])
}

func px(v float64) style.Length { return style.RawLength(style.UnitPx, style.FixedPoint(v)) }
func em(v float64) style.Length { return style.RawLength(style.UnitEm, style.FixedPoint(v)) }

func TestConverter_Longhands(t *testing.T) {
	res := convertOne(t, `p {
		display: -cr-list-item-final;
		text-align: justify;
		font-weight: 600;
		font-size: 1.2em;
		line-height: normal;
		text-indent: 0;
		color: #333;
		font-family: "Literata", serif;
		page-break-before: always;
		orphans: 3;
		-cr-hint: footnote-inpage;
		width: auto;
	}`)

	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}

	r := res.Style
	if r.Display != style.DisplayListItemFinal {
		t.Errorf("display = %v", r.Display)
	}
	if r.TextAlign != style.TextAlignJustify {
		t.Errorf("text-align = %v", r.TextAlign)
	}
	if r.FontWeight != style.FontWeight600 {
		t.Errorf("font-weight = %v", r.FontWeight)
	}
	if !r.FontSize.Equal(em(1.2)) {
		t.Errorf("font-size = %v", r.FontSize)
	}
	if !r.LineHeight.IsGenericNormal() {
		t.Errorf("line-height = %v", r.LineHeight)
	}
	if !r.TextIndent.Equal(px(0)) {
		t.Errorf("text-indent = %v", r.TextIndent)
	}
	if !r.Color.Equal(style.RawLength(style.UnitColor, 0x333333)) {
		t.Errorf("color = %v", r.Color)
	}
	if r.FontFamily != style.FontFamilySerif || r.FontName != "Literata" {
		t.Errorf("font-family = %v %q", r.FontFamily, r.FontName)
	}
	if r.PageBreakBefore != style.PageBreakAlways {
		t.Errorf("page-break-before = %v", r.PageBreakBefore)
	}
	if r.Orphans.Count() != 3 {
		t.Errorf("orphans = %v", r.Orphans)
	}
	if r.Hint != style.RenderingHintFootnoteInpage {
		t.Errorf("-cr-hint = %v", r.Hint)
	}
	if !r.Width.IsGenericAuto() {
		t.Errorf("width = %v", r.Width)
	}

	// untouched properties stay inherit
	if !r.WhiteSpace.IsInherit() || !r.Height.IsInherited() || !r.Widows.IsInherit() {
		t.Error("expected undeclared properties to inherit")
	}
}

func TestConverter_EmptyRuleIsEmptyRecord(t *testing.T) {
	res := convertOne(t, `p { }`)
	if !res.Style.IsEmpty() {
		t.Errorf("expected empty record, got %+v", res.Style)
	}
	if res.Style.Hash() != style.NewRecord().Hash() {
		t.Error("empty rule must hash like a new record")
	}
}

func TestConverter_MarginShorthand(t *testing.T) {
	tests := []struct {
		css  string
		want [4]style.Length
	}{
		{`p { margin: 1em; }`, [4]style.Length{em(1), em(1), em(1), em(1)}},
		{`p { margin: 1em auto; }`, [4]style.Length{em(1), style.Auto(), em(1), style.Auto()}},
		{`p { margin: 1px 2px 3px; }`, [4]style.Length{px(1), px(2), px(3), px(2)}},
		{`p { margin: 1px 2px 3px 4px; }`, [4]style.Length{px(1), px(2), px(3), px(4)}},
		{`p { margin: 0 0 0.5em 0; }`, [4]style.Length{px(0), px(0), em(0.5), px(0)}},
		{`p { margin: inherit; }`, [4]style.Length{}},
	}

	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			res := convertOne(t, tt.css)
			if res.Err != nil {
				t.Fatalf("unexpected error: %v", res.Err)
			}
			for _, side := range style.Sides {
				if !res.Style.Margin[side].Equal(tt.want[side]) {
					t.Errorf("margin-%s = %v, want %v", side, res.Style.Margin[side], tt.want[side])
				}
			}
		})
	}
}

func TestConverter_DeclarationOrder(t *testing.T) {
	res := convertOne(t, `p { margin: 1em; margin-left: 2em; padding-top: 1px; padding: 0; }`)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if !res.Style.Margin[style.SideLeft].Equal(em(2)) {
		t.Errorf("longhand after shorthand must win, got %v", res.Style.Margin[style.SideLeft])
	}
	if !res.Style.Margin[style.SideTop].Equal(em(1)) {
		t.Errorf("margin-top = %v", res.Style.Margin[style.SideTop])
	}
	if !res.Style.Padding[style.SideTop].Equal(px(0)) {
		t.Errorf("shorthand after longhand must win, got %v", res.Style.Padding[style.SideTop])
	}
}

func TestConverter_Important(t *testing.T) {
	res := convertOne(t, `p { text-indent: 0 !important; text-indent: 2em; }`)
	if !res.Style.TextIndent.Equal(px(0)) {
		t.Errorf("important declaration must win, got %v", res.Style.TextIndent)
	}
}

func TestConverter_Border(t *testing.T) {
	res := convertOne(t, `td { border: 1px solid red; border-left: thick dotted; border-collapse: collapse; border-spacing: 2px 4px; }`)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}

	r := res.Style
	red := style.RawLength(style.UnitColor, 0xff0000)
	for _, side := range []style.Side{style.SideTop, style.SideRight, style.SideBottom} {
		if r.BorderStyle[side] != style.BorderStyleSolid || !r.BorderWidth[side].Equal(px(1)) || !r.BorderColor[side].Equal(red) {
			t.Errorf("border-%s = %v %v %v", side, r.BorderWidth[side], r.BorderStyle[side], r.BorderColor[side])
		}
	}
	if r.BorderStyle[style.SideLeft] != style.BorderStyleDotted || !r.BorderWidth[style.SideLeft].Equal(px(5)) {
		t.Errorf("border-left = %v %v", r.BorderWidth[style.SideLeft], r.BorderStyle[style.SideLeft])
	}
	if !r.BorderColor[style.SideLeft].IsInherited() {
		t.Errorf("border-left color = %v, want reset", r.BorderColor[style.SideLeft])
	}
	if r.BorderCollapse != style.BorderCollapseCollapse {
		t.Errorf("border-collapse = %v", r.BorderCollapse)
	}
	if !r.BorderSpacing[0].Equal(px(2)) || !r.BorderSpacing[1].Equal(px(4)) {
		t.Errorf("border-spacing = %v", r.BorderSpacing)
	}
}

func TestConverter_BorderBoxShorthands(t *testing.T) {
	res := convertOne(t, `td { border-style: solid none; border-width: medium 0; border-color: black white gray; }`)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}

	r := res.Style
	wantStyle := [4]style.BorderStyle{style.BorderStyleSolid, style.BorderStyleNone, style.BorderStyleSolid, style.BorderStyleNone}
	if r.BorderStyle != wantStyle {
		t.Errorf("border-style = %v, want %v", r.BorderStyle, wantStyle)
	}
	if !r.BorderWidth[style.SideTop].Equal(px(3)) || !r.BorderWidth[style.SideRight].Equal(px(0)) {
		t.Errorf("border-width = %v", r.BorderWidth)
	}
	if r.BorderColor[style.SideLeft].Value != 0xffffff || r.BorderColor[style.SideBottom].Value != 0x808080 {
		t.Errorf("border-color = %v", r.BorderColor)
	}
}

func TestConverter_ListStyleAndBackground(t *testing.T) {
	res := convertOne(t, `li { list-style: upper-roman inside; background: #eee url("paper.png") no-repeat right top fixed; }`)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}

	r := res.Style
	if r.ListStyleType != style.ListStyleTypeUpperRoman || r.ListStylePosition != style.ListStylePositionInside {
		t.Errorf("list-style = %v %v", r.ListStyleType, r.ListStylePosition)
	}
	if !r.ListStyleType.IsOrdered() {
		t.Error("upper-roman must be ordered")
	}
	if !r.BackgroundColor.Equal(style.RawLength(style.UnitColor, 0xeeeeee)) {
		t.Errorf("background-color = %v", r.BackgroundColor)
	}
	if r.BackgroundImage != "paper.png" {
		t.Errorf("background-image = %q", r.BackgroundImage)
	}
	if r.BackgroundRepeat != style.BackgroundRepeatNoRepeat {
		t.Errorf("background-repeat = %v", r.BackgroundRepeat)
	}
	if r.BackgroundAttachment != style.BackgroundAttachmentFixed {
		t.Errorf("background-attachment = %v", r.BackgroundAttachment)
	}
	if r.BackgroundPosition != style.BackgroundPositionRightTop {
		t.Errorf("background-position = %v", r.BackgroundPosition)
	}
}

func TestConverter_ShorthandInherit(t *testing.T) {
	res := convertOne(t, `li { list-style: upper-roman inside; background: #eee url("paper.png") no-repeat fixed; list-style: inherit; background: INHERIT; }`)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}

	r := res.Style
	if r.ListStyleType != style.ListStyleTypeInherit || r.ListStylePosition != style.ListStylePositionInherit {
		t.Errorf("list-style = %v %v, want inherit inherit", r.ListStyleType, r.ListStylePosition)
	}
	if !r.BackgroundColor.IsInherited() || r.BackgroundImage != "" {
		t.Errorf("background color/image = %v %q, want inherit and none", r.BackgroundColor, r.BackgroundImage)
	}
	if r.BackgroundRepeat != style.BackgroundRepeatInherit ||
		r.BackgroundAttachment != style.BackgroundAttachmentInherit ||
		r.BackgroundPosition != style.BackgroundPositionInherit {
		t.Errorf("background = %v %v %v, want all inherit", r.BackgroundRepeat, r.BackgroundAttachment, r.BackgroundPosition)
	}
	if !r.IsEmpty() {
		t.Errorf("record = %+v, want every field unset", r)
	}
}

func TestConverter_Rejections(t *testing.T) {
	res := convertOne(t, `p {
		orphans: 10;
		font-weight: 950;
		margin: 1em 2em 3em 4em 5em;
		color: transparent;
		width: red;
		float: left;
		text-align: center;
	}`)

	errs := multierr.Errors(res.Err)
	if len(errs) != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", len(errs), res.Err)
	}
	if len(res.Warnings) != 5 {
		t.Errorf("expected 5 warnings, got %d", len(res.Warnings))
	}
	if !errors.Is(errs[0], css.ErrOutOfRange) || !errors.Is(errs[1], css.ErrOutOfRange) {
		t.Errorf("expected out of range errors, got %v and %v", errs[0], errs[1])
	}
	if errors.Is(res.Err, css.ErrUnknownProperty) {
		t.Error("unknown properties must not be reported as errors")
	}

	// rejected declarations leave the record untouched
	r := res.Style
	if !r.Orphans.IsInherit() || !r.FontWeight.IsInherit() || !r.Color.IsInherited() || !r.Width.IsInherited() {
		t.Errorf("rejected declarations modified the record: %+v", r)
	}
	if r.Margin != [4]style.Length{} {
		t.Errorf("partially applied margin: %v", r.Margin)
	}
	if r.TextAlign != style.TextAlignCenter {
		t.Errorf("valid declaration lost: text-align = %v", r.TextAlign)
	}
}

func TestApplyDeclaration_Unknown(t *testing.T) {
	var r style.Record
	err := css.ApplyDeclaration(&r, "float", css.Value{Raw: "left"})
	if !errors.Is(err, css.ErrUnknownProperty) {
		t.Errorf("expected ErrUnknownProperty, got %v", err)
	}
	if !css.IsShorthand("border-top") || css.IsShorthand("border-top-width") {
		t.Error("IsShorthand mismatch")
	}
}

func TestConverter_ConvertStylesheet(t *testing.T) {
	sheet := css.NewParser(zap.NewNop()).Parse([]byte(`
		p { margin: 0; }
		@media print { p { orphans: 2; } }
		h1 { font-weight: bold; }
	`))
	c := css.NewConverter(zap.NewNop())

	screen := c.ConvertStylesheet(sheet, "screen")
	if len(screen) != 2 {
		t.Fatalf("screen: expected 2 records, got %d", len(screen))
	}

	printed := c.ConvertStylesheet(sheet, "print")
	if len(printed) != 3 {
		t.Fatalf("print: expected 3 records, got %d", len(printed))
	}
	if printed[1].Selector.Element != "p" || printed[1].Style.Orphans.Count() != 2 {
		t.Errorf("printed[1] = %+v", printed[1])
	}
	if printed[2].Style.FontWeight != style.FontWeightBold {
		t.Errorf("printed[2] font-weight = %v", printed[2].Style.FontWeight)
	}
	if printed[0].Style.Hash() == printed[2].Style.Hash() {
		t.Error("different records should not share a hash here")
	}
}
