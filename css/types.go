package css

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"
)

// quoteString escapes s for use inside CSS double quotes.
func quoteString(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return `"` + s + `"`
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	b.WriteByte('"')
	for _, r := range s {
		if r == '\\' || r == '"' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// MediaQuery is a parsed @media prelude: [not] type [and [not] feature]...
type MediaQuery struct {
	Raw      string
	Type     string
	Negated  bool
	Features []MediaFeature
}

// MediaFeature is one "and [not] name" condition of a media query.
type MediaFeature struct {
	Name    string
	Negated bool
}

// Evaluate reports whether the query matches when exactly the given media
// names are active. "all" always matches, an empty query never does.
func (mq MediaQuery) Evaluate(active ...string) bool {
	has := func(name string) bool {
		name = strings.ToLower(name)
		if name == "all" {
			return true
		}
		return slices.ContainsFunc(active, func(a string) bool { return strings.EqualFold(a, name) })
	}

	if mq.Type == "" {
		return false
	}
	if has(mq.Type) == mq.Negated {
		return false
	}
	for _, f := range mq.Features {
		if has(f.Name) == f.Negated {
			return false
		}
	}
	return true
}

// Value is a declaration value as it appeared in the source. Single token
// values are pre-split into Number/Unit or Keyword, everything else is left
// in Raw for the decoders.
type Value struct {
	Raw       string  // value text without !important, e.g. "1.2em", "1em auto"
	Number    float64 // numeric part of single dimension, percentage or number
	Unit      string  // "em", "px", "%"... for single dimensions
	Keyword   string  // lowercased identifier, unquoted string or hash
	Important bool
}

// IsNumeric reports whether the value is a single number, percentage or
// dimension, including explicit zeros.
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Keyword != "" || v.Raw == "" || strings.ContainsAny(v.Raw, " ,/") {
		return false
	}
	c := rune(v.Raw[0])
	return unicode.IsDigit(c) || c == '.' || c == '-' || c == '+'
}

// IsKeyword reports whether the value is a single identifier.
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// PseudoElement is the pseudo-element a rule applies to.
type PseudoElement int

const (
	PseudoNone PseudoElement = iota
	PseudoBefore
	PseudoAfter
)

func (p PseudoElement) String() string {
	switch p {
	case PseudoBefore:
		return "::before"
	case PseudoAfter:
		return "::after"
	default:
		return ""
	}
}

// Selector is a supported selector: element, .class, element.class, an
// optional pseudo-element and optional descendant ancestors.
type Selector struct {
	Raw      string
	Element  string
	Class    string
	Pseudo   PseudoElement
	Ancestor *Selector // "p code" -> Ancestor is "p"
}

// IsSimple reports whether the rightmost compound has an element or class.
func (s Selector) IsSimple() bool {
	return s.Element != "" || s.Class != ""
}

func (s Selector) IsDescendant() bool {
	return s.Ancestor != nil
}

// Declaration is a single "name: value" pair.
type Declaration struct {
	Name  string
	Value Value
}

// Rule is a selector with its declarations. Declarations keep source order
// (shorthands and longhands override each other by position), Properties
// keeps the last value of each name.
type Rule struct {
	Selector     Selector
	Declarations []Declaration
	Properties   map[string]Value
}

// GetProperty returns the last declared value of the property.
func (r Rule) GetProperty(name string) (Value, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// FontFace is an @font-face declaration.
type FontFace struct {
	Family string
	Src    string
	Style  string
	Weight string
}

// StylesheetItem is one top-level item; exactly one field is set.
type StylesheetItem struct {
	Rule       *Rule
	MediaBlock *MediaBlock
	FontFace   *FontFace
	Import     *string
}

// MediaBlock is an @media block with the rules it contains.
type MediaBlock struct {
	Query MediaQuery
	Rules []Rule
}

// Stylesheet is a parsed stylesheet in source order.
type Stylesheet struct {
	Items    []StylesheetItem
	Warnings []string
}

// Imports returns @import URLs in source order.
func (s *Stylesheet) Imports() []string {
	var urls []string
	for _, item := range s.Items {
		if item.Import != nil {
			urls = append(urls, *item.Import)
		}
	}
	return urls
}

// FontFaces returns @font-face declarations with a family name.
func (s *Stylesheet) FontFaces() []FontFace {
	var faces []FontFace
	for _, item := range s.Items {
		if item.FontFace != nil && item.FontFace.Family != "" {
			faces = append(faces, *item.FontFace)
		}
	}
	return faces
}

// Rules returns top-level rules followed, in place, by the rules of every
// @media block matching the active media.
func (s *Stylesheet) Rules(active ...string) []Rule {
	var rules []Rule
	for _, item := range s.Items {
		switch {
		case item.Rule != nil:
			rules = append(rules, *item.Rule)
		case item.MediaBlock != nil && item.MediaBlock.Query.Evaluate(active...):
			rules = append(rules, item.MediaBlock.Rules...)
		}
	}
	return rules
}

// RulesBySelector returns top-level rules whose selector text is selector.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector.Raw == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet back as CSS, implementing io.WriterTo.
// Declarations are written in source order.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	for i, item := range s.Items {
		if i > 0 {
			cw.printf("\n")
		}
		switch {
		case item.Import != nil:
			cw.printf("@import url(%s);\n", quoteString(*item.Import))
		case item.FontFace != nil:
			writeFontFace(cw, item.FontFace)
		case item.MediaBlock != nil:
			cw.printf("@media %s {\n", item.MediaBlock.Query.Raw)
			for j := range item.MediaBlock.Rules {
				if j > 0 {
					cw.printf("\n")
				}
				writeRule(cw, &item.MediaBlock.Rules[j], "  ")
			}
			cw.printf("}\n")
		case item.Rule != nil:
			writeRule(cw, item.Rule, "")
		}
		if cw.err != nil {
			break
		}
	}
	return cw.n, cw.err
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// countingWriter remembers the first error so writers can be chained
// without checking every call.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) printf(format string, args ...any) {
	if cw.err != nil {
		return
	}
	n, err := fmt.Fprintf(cw.w, format, args...)
	cw.n += int64(n)
	cw.err = err
}

func writeRule(cw *countingWriter, rule *Rule, indent string) {
	cw.printf("%s%s {\n", indent, rule.Selector.Raw)
	for _, d := range rule.Declarations {
		if d.Value.Important {
			cw.printf("%s  %s: %s !important;\n", indent, d.Name, d.Value.Raw)
			continue
		}
		cw.printf("%s  %s: %s;\n", indent, d.Name, d.Value.Raw)
	}
	cw.printf("%s}\n", indent)
}

func writeFontFace(cw *countingWriter, ff *FontFace) {
	cw.printf("@font-face {\n")
	if ff.Family != "" {
		cw.printf("  font-family: %s;\n", quoteString(ff.Family))
	}
	if ff.Src != "" {
		cw.printf("  src: %s;\n", ff.Src)
	}
	if ff.Style != "" {
		cw.printf("  font-style: %s;\n", ff.Style)
	}
	if ff.Weight != "" {
		cw.printf("  font-weight: %s;\n", ff.Weight)
	}
	cw.printf("}\n")
}
