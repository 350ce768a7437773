package css_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"crcss/css"
)

// allRules collects top-level rules only, @media blocks are not flattened.
func allRules(sheet *css.Stylesheet) []css.Rule {
	var rules []css.Rule
	for _, item := range sheet.Items {
		if item.Rule != nil {
			rules = append(rules, *item.Rule)
		}
	}
	return rules
}

const readerCSS = `
@import url("fonts.css");

@font-face {
	font-family: "Literata";
	src: url(fonts/literata.ttf);
	font-weight: normal;
}

body { font-family: serif; line-height: 1.3; }
p { text-indent: 1.2em; margin: 0 0 0.5em 0; text-align: justify; }
h1, h2 { font-weight: bold; page-break-before: always; }
.epigraph { font-style: italic; margin-left: 30%; }
p.has-dropcap { text-indent: 0 !important; }
.title::before { content: "~"; }
a:hover { color: red; }

@media print {
	p { orphans: 2; widows: 2; }
}
`

func TestParser_ParseReaderCSS(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	sheet := p.Parse([]byte(readerCSS), "reader.css")

	if got := sheet.Imports(); len(got) != 1 || got[0] != "fonts.css" {
		t.Errorf("Imports() = %v, want [fonts.css]", got)
	}
	if faces := sheet.FontFaces(); len(faces) != 1 || faces[0].Family != "Literata" {
		t.Errorf("FontFaces() = %+v", faces)
	}

	rules := allRules(sheet)
	if len(rules) != 7 {
		for _, r := range rules {
			t.Logf("  %s", r.Selector.Raw)
		}
		t.Fatalf("expected 7 top-level rules, got %d", len(rules))
	}

	if len(sheet.RulesBySelector("h2")) != 1 {
		t.Error("expected 'h2' rule from grouped selector")
	}

	found := false
	for _, w := range sheet.Warnings {
		if strings.Contains(w, "a:hover") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected warning for a:hover, got %v", sheet.Warnings)
	}
}

func TestParser_ElementSelector(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	sheet := p.Parse([]byte(`P { text-indent: 1em; }`))

	rules := allRules(sheet)
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}

	rule := rules[0]
	if rule.Selector.Element != "p" {
		t.Errorf("expected element 'p', got '%s'", rule.Selector.Element)
	}
	if rule.Selector.Class != "" {
		t.Errorf("expected no class, got '%s'", rule.Selector.Class)
	}

	val, ok := rule.GetProperty("text-indent")
	if !ok {
		t.Fatal("expected text-indent property")
	}
	if val.Number != 1 || val.Unit != "em" {
		t.Errorf("expected 1em, got %v%s", val.Number, val.Unit)
	}
}

func TestParser_ClassSelector(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	sheet := p.Parse([]byte(`.epigraph { font-style: italic; }`))

	rules := allRules(sheet)
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}

	rule := rules[0]
	if rule.Selector.Element != "" {
		t.Errorf("expected no element, got '%s'", rule.Selector.Element)
	}
	if rule.Selector.Class != "epigraph" {
		t.Errorf("expected class 'epigraph', got '%s'", rule.Selector.Class)
	}

	val, _ := rule.GetProperty("font-style")
	if val.Keyword != "italic" {
		t.Errorf("expected keyword 'italic', got '%s'", val.Keyword)
	}
}

func TestParser_GroupedSelectors(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	sheet := p.Parse([]byte(`h2, h3, h4 { font-size: 120%; }`))

	rules := allRules(sheet)
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules for grouped selector, got %d", len(rules))
	}

	expected := []string{"h2", "h3", "h4"}
	for i, rule := range rules {
		if rule.Selector.Element != expected[i] {
			t.Errorf("rule %d: expected element '%s', got '%s'", i, expected[i], rule.Selector.Element)
		}
		val, _ := rule.GetProperty("font-size")
		if val.Number != 120 || val.Unit != "%" {
			t.Errorf("rule %d: expected 120%%, got %v%s", i, val.Number, val.Unit)
		}
	}

	// properties must not be shared between rules of a group
	rules[0].Properties["font-size"] = css.Value{Raw: "1em"}
	if v, _ := rules[1].GetProperty("font-size"); v.Raw != "120%" {
		t.Errorf("grouped rules share properties: %q", v.Raw)
	}
}

func TestParser_PseudoElements(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	sheet := p.Parse([]byte(`.quote::before { content: ">>"; } p.note:after { content: " *"; }`))

	rules := allRules(sheet)
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}

	if rules[0].Selector.Class != "quote" || rules[0].Selector.Pseudo != css.PseudoBefore {
		t.Errorf("unexpected first selector %+v", rules[0].Selector)
	}
	if val, _ := rules[0].GetProperty("content"); val.Keyword != ">>" {
		t.Errorf("expected content '>>', got '%s'", val.Keyword)
	}

	sel := rules[1].Selector
	if sel.Element != "p" || sel.Class != "note" || sel.Pseudo != css.PseudoAfter {
		t.Errorf("unexpected second selector %+v", sel)
	}
}

func TestParser_DescendantSelector(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	sheet := p.Parse([]byte(`div.poem p code { white-space: pre; }`))

	rules := allRules(sheet)
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}

	sel := rules[0].Selector
	if sel.Element != "code" || !sel.IsDescendant() {
		t.Fatalf("expected descendant 'code', got %+v", sel)
	}
	if sel.Ancestor.Element != "p" {
		t.Errorf("expected parent 'p', got '%s'", sel.Ancestor.Element)
	}
	if sel.Ancestor.Ancestor == nil || sel.Ancestor.Ancestor.Class != "poem" {
		t.Errorf("expected grandparent '.poem', got %+v", sel.Ancestor.Ancestor)
	}
	if sel.Raw != "div.poem p code" {
		t.Errorf("expected raw selector text, got %q", sel.Raw)
	}
}

func TestParser_UnsupportedSelectors(t *testing.T) {
	tests := []string{
		`p > code { color: red; }`,
		`h1 + p { color: red; }`,
		`a[href] { color: red; }`,
		`p:first-child { color: red; }`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			sheet := css.NewParser(zap.NewNop()).Parse([]byte(input))
			if n := len(allRules(sheet)); n != 0 {
				t.Errorf("expected no rules, got %d", n)
			}
			if len(sheet.Warnings) == 0 {
				t.Error("expected a warning")
			}
		})
	}
}

func TestParser_Values(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	tests := []struct {
		css     string
		prop    string
		raw     string
		number  float64
		unit    string
		keyword string
	}{
		{`p { font-size: 1.2em; }`, "font-size", "1.2em", 1.2, "em", ""},
		{`p { font-size: 100%; }`, "font-size", "100%", 100, "%", ""},
		{`p { font-size: 12PX; }`, "font-size", "12PX", 12, "px", ""},
		{`p { line-height: 1.5; }`, "line-height", "1.5", 1.5, "", ""},
		{`p { margin-top: -0.5em; }`, "margin-top", "-0.5em", -0.5, "em", ""},
		{`p { text-align: CENTER; }`, "text-align", "CENTER", 0, "", "center"},
		{`p { color: #ff0000; }`, "color", "#ff0000", 0, "", "#ff0000"},
		{`p { margin: 1em auto; }`, "margin", "1em auto", 0, "", ""},
		{`p { font-size: 1e2px; }`, "font-size", "1e2px", 100, "px", ""},
		{`p { font-size: 2.5E-1em; }`, "font-size", "2.5E-1em", 0.25, "em", ""},
	}

	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			rules := allRules(p.Parse([]byte(tt.css)))
			if len(rules) != 1 {
				t.Fatalf("expected 1 rule, got %d", len(rules))
			}

			val, ok := rules[0].GetProperty(tt.prop)
			if !ok {
				t.Fatalf("expected property %s", tt.prop)
			}
			if val.Raw != tt.raw {
				t.Errorf("expected raw %q, got %q", tt.raw, val.Raw)
			}
			if val.Number != tt.number || val.Unit != tt.unit {
				t.Errorf("expected %v%s, got %v%s", tt.number, tt.unit, val.Number, val.Unit)
			}
			if val.Keyword != tt.keyword {
				t.Errorf("expected keyword '%s', got '%s'", tt.keyword, val.Keyword)
			}
		})
	}
}

func TestParser_Important(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	rules := allRules(p.Parse([]byte(`p { text-indent: 0 !important; color: red; }`)))
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}

	val, _ := rules[0].GetProperty("text-indent")
	if !val.Important || val.Raw != "0" {
		t.Errorf("expected important 0, got %+v", val)
	}
	if !val.IsNumeric() {
		t.Error("expected 0 to be numeric")
	}
	if val, _ := rules[0].GetProperty("color"); val.Important {
		t.Error("color must not be important")
	}
}

func TestParser_DeclarationOrder(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	rules := allRules(p.Parse([]byte(`p { margin-left: 2em; margin: 0; margin-left: 1em; }`)))
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}

	decls := rules[0].Declarations
	want := []string{"margin-left:2em", "margin:0", "margin-left:1em"}
	if len(decls) != len(want) {
		t.Fatalf("expected %d declarations, got %d", len(want), len(decls))
	}
	for i, d := range decls {
		if got := d.Name + ":" + d.Value.Raw; got != want[i] {
			t.Errorf("declaration %d: got %s, want %s", i, got, want[i])
		}
	}
	if v, _ := rules[0].GetProperty("margin-left"); v.Raw != "1em" {
		t.Errorf("expected last margin-left to win, got %s", v.Raw)
	}
}

func TestParser_MediaBlocks(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	sheet := p.Parse([]byte(`
		p { margin: 0; }
		@media print { p { orphans: 2; } }
		@media not print { p { orphans: 3; } }
		@media screen and (min-width: 600px) { p { widows: 2; } }
		@page { margin: 1in; }
		h1 { display: block; }
	`))

	var blocks []*css.MediaBlock
	for _, item := range sheet.Items {
		if item.MediaBlock != nil {
			blocks = append(blocks, item.MediaBlock)
		}
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 media blocks, got %d", len(blocks))
	}
	if blocks[0].Query.Type != "print" || blocks[0].Query.Negated {
		t.Errorf("unexpected first query %+v", blocks[0].Query)
	}
	if !blocks[1].Query.Negated {
		t.Errorf("expected negated second query %+v", blocks[1].Query)
	}
	if len(blocks[2].Query.Features) != 1 || blocks[2].Query.Features[0].Name != "min-width" {
		t.Errorf("unexpected third query features %+v", blocks[2].Query.Features)
	}

	if n := len(allRules(sheet)); n != 2 {
		t.Errorf("expected 2 top-level rules (@page skipped), got %d", n)
	}

	printRules := sheet.Rules("print")
	if len(printRules) != 3 {
		t.Fatalf("Rules(print): expected 3 rules, got %d", len(printRules))
	}
	if v, _ := printRules[1].GetProperty("orphans"); v.Number != 2 {
		t.Errorf("Rules(print): expected orphans 2 in place, got %+v", v)
	}

	screenRules := sheet.Rules("screen")
	if len(screenRules) != 3 {
		t.Fatalf("Rules(screen): expected 3 rules, got %d", len(screenRules))
	}
	if v, _ := screenRules[1].GetProperty("orphans"); v.Number != 3 {
		t.Errorf("Rules(screen): expected orphans 3, got %+v", v)
	}
}

func TestParser_Comments(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	sheet := p.Parse([]byte(`/* header */ p { /* inside */ text-align: left; } /* trailer */`))

	rules := allRules(sheet)
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	if v, _ := rules[0].GetProperty("text-align"); v.Keyword != "left" {
		t.Errorf("expected text-align left, got %+v", v)
	}
}

func TestParser_Empty(t *testing.T) {
	sheet := css.NewParser(nil).Parse(nil)
	if len(sheet.Items) != 0 || len(sheet.Warnings) != 0 {
		t.Errorf("expected empty stylesheet, got %+v", sheet)
	}
}

func TestMediaQuery_Evaluate(t *testing.T) {
	tests := []struct {
		name   string
		mq     css.MediaQuery
		active []string
		want   bool
	}{
		{"all always matches", css.MediaQuery{Type: "all"}, nil, true},
		{"type active", css.MediaQuery{Type: "screen"}, []string{"screen"}, true},
		{"type case insensitive", css.MediaQuery{Type: "Print"}, []string{"print"}, true},
		{"type inactive", css.MediaQuery{Type: "print"}, []string{"screen"}, false},
		{"negated inactive", css.MediaQuery{Type: "print", Negated: true}, []string{"screen"}, true},
		{"negated all", css.MediaQuery{Type: "all", Negated: true}, []string{"screen"}, false},
		{
			"feature active",
			css.MediaQuery{Type: "screen", Features: []css.MediaFeature{{Name: "color"}}},
			[]string{"screen", "color"},
			true,
		},
		{
			"negated feature active",
			css.MediaQuery{Type: "screen", Features: []css.MediaFeature{{Name: "color", Negated: true}}},
			[]string{"screen", "color"},
			false,
		},
		{"empty query", css.MediaQuery{}, []string{"screen"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mq.Evaluate(tt.active...); got != tt.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.active, got, tt.want)
			}
		})
	}
}

func TestValue_IsNumeric(t *testing.T) {
	tests := []struct {
		val  css.Value
		want bool
	}{
		{css.Value{Raw: "1em", Number: 1, Unit: "em"}, true},
		{css.Value{Raw: "0"}, true},
		{css.Value{Raw: "-2"}, true},
		{css.Value{Raw: "auto", Keyword: "auto"}, false},
		{css.Value{Raw: "1em auto"}, false},
		{css.Value{}, false},
	}
	for _, tt := range tests {
		if got := tt.val.IsNumeric(); got != tt.want {
			t.Errorf("%q.IsNumeric() = %v, want %v", tt.val.Raw, got, tt.want)
		}
	}
}

func TestStylesheet_String(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	sheet := p.Parse([]byte(`@import "a.css"; p { margin: 0 auto; text-indent: 1em !important; } @media print { h1 { color: red; } }`))

	want := "@import url(\"a.css\");\n" +
		"\n" +
		"p {\n  margin: 0 auto;\n  text-indent: 1em !important;\n}\n" +
		"\n" +
		"@media print {\n  h1 {\n    color: red;\n  }\n}\n"
	if got := sheet.String(); got != want {
		t.Errorf("String() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStylesheet_RoundTrip(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	first := p.Parse([]byte(readerCSS))
	second := p.Parse([]byte(first.String()))

	if first.String() != second.String() {
		t.Errorf("round trip mismatch\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestStylesheet_WriteTo(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	sheet := p.Parse([]byte(`p { color: red; }`))

	var sb strings.Builder
	n, err := sheet.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(sb.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d", n, sb.Len())
	}
}
