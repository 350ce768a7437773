package css

import (
	"bytes"
	"errors"
	"io"
	"maps"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses stylesheets into rules. It keeps only what the style model
// can use and records a warning for every selector it drops.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. The optional source names the
// input in debug logs.
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]StylesheetItem, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if p.atEnd(parser, sheet) {
				return sheet
			}

		case css.BeginAtRuleGrammar:
			switch atRule := strings.ToLower(string(data)); atRule {
			case "@media":
				mq := parseMediaQuery(parser.Values())
				rules := p.parseRulesets(parser, sheet)
				p.log.Debug("Parsed @media block", zap.String("query", mq.Raw), zap.Int("rules", len(rules)))
				sheet.Items = append(sheet.Items, StylesheetItem{MediaBlock: &MediaBlock{Query: mq, Rules: rules}})
			case "@font-face":
				ff := p.parseFontFace(parser)
				sheet.Items = append(sheet.Items, StylesheetItem{FontFace: &ff})
			default:
				p.skipAtRuleBlock(parser)
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			}

		case css.AtRuleGrammar:
			if atRule := strings.ToLower(string(data)); atRule == "@import" {
				if url := importURL(parser.Values()); url != "" {
					sheet.Items = append(sheet.Items, StylesheetItem{Import: &url})
					p.log.Debug("Parsed @import", zap.String("url", url))
				}
			} else {
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			}

		case css.BeginRulesetGrammar:
			for _, rule := range p.parseRuleset(parser, data, sheet) {
				sheet.Items = append(sheet.Items, StylesheetItem{Rule: &rule})
			}
		}
	}
}

// atEnd handles ErrorGrammar: true at the end of input, otherwise the
// malformed construct is reported and parsing continues.
func (p *Parser) atEnd(parser *css.Parser, sheet *Stylesheet) bool {
	err := parser.Err()
	if err == nil {
		sheet.Warnings = append(sheet.Warnings, "malformed CSS skipped")
		return false
	}
	if !errors.Is(err, io.EOF) {
		p.log.Debug("CSS parse error", zap.Error(err))
	}
	return true
}

// parseRuleset reads declarations of the ruleset just opened and returns
// one rule per supported selector of the group.
func (p *Parser) parseRuleset(parser *css.Parser, data []byte, sheet *Stylesheet) []Rule {
	selectors := splitSelectors(data, parser.Values())
	decls := p.parseDeclarations(parser, sheet)

	props := make(map[string]Value, len(decls))
	for _, d := range decls {
		props[d.Name] = d.Value
	}

	var rules []Rule
	for _, selStr := range selectors {
		sel := p.parseSelector(selStr, sheet)
		if !sel.IsSimple() {
			continue
		}
		rules = append(rules, Rule{
			Selector:     sel,
			Declarations: append([]Declaration(nil), decls...),
			Properties:   maps.Clone(props),
		})
	}
	return rules
}

// parseRulesets reads rulesets until the end of the enclosing @-rule block.
func (p *Parser) parseRulesets(parser *css.Parser, sheet *Stylesheet) []Rule {
	var rules []Rule
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if p.atEnd(parser, sheet) {
				return rules
			}
		case css.EndAtRuleGrammar:
			return rules
		case css.BeginRulesetGrammar:
			rules = append(rules, p.parseRuleset(parser, data, sheet)...)
		case css.BeginAtRuleGrammar:
			p.skipAtRuleBlock(parser)
		}
	}
}

// splitSelectors builds the selector text and splits grouped selectors.
func splitSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// parseDeclarations reads declarations until the end of the ruleset.
func (p *Parser) parseDeclarations(parser *css.Parser, sheet *Stylesheet) []Declaration {
	var decls []Declaration
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if p.atEnd(parser, sheet) {
				return decls
			}
		case css.EndRulesetGrammar:
			return decls
		case css.DeclarationGrammar:
			if values := parser.Values(); len(values) > 0 {
				decls = append(decls, Declaration{
					Name:  strings.ToLower(string(data)),
					Value: tokensValue(values),
				})
			}
		case css.CustomPropertyGrammar:
			p.log.Debug("Skipping custom property", zap.ByteString("name", data))
		}
	}
}

// tokensValue converts declaration tokens to a Value, splitting off a
// trailing !important.
func tokensValue(tokens []css.Token) Value {
	tokens = trimWhitespace(tokens)
	var val Value
	if n := len(tokens); n >= 2 &&
		tokens[n-1].TokenType == css.IdentToken && strings.EqualFold(string(tokens[n-1].Data), "important") {
		rest := trimWhitespace(tokens[:n-1])
		if k := len(rest); k > 0 && rest[k-1].TokenType == css.DelimToken && string(rest[k-1].Data) == "!" {
			val.Important = true
			tokens = trimWhitespace(rest[:k-1])
		}
	}
	if len(tokens) == 0 {
		return val
	}

	var sb strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			sb.WriteByte(' ')
			continue
		}
		sb.Write(t.Data)
	}
	val.Raw = sb.String()

	if len(tokens) > 1 {
		return val
	}
	t := tokens[0]
	switch t.TokenType {
	case css.DimensionToken:
		val.Number, val.Unit = splitDimension(string(t.Data))
	case css.PercentageToken:
		val.Number, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
		val.Unit = "%"
	case css.NumberToken:
		val.Number, _ = strconv.ParseFloat(string(t.Data), 64)
	case css.IdentToken:
		val.Keyword = strings.ToLower(string(t.Data))
	case css.StringToken:
		val.Keyword = unquote(string(t.Data))
	case css.HashToken:
		val.Keyword = string(t.Data)
	}
	return val
}

func trimWhitespace(tokens []css.Token) []css.Token {
	for len(tokens) > 0 && tokens[0].TokenType == css.WhitespaceToken {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].TokenType == css.WhitespaceToken {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// splitDimension splits "1.5em" into 1.5 and "em". An exponent is part of
// the number only when digits follow it, so "1e2px" is 100px and "1em" is 1em.
func splitDimension(s string) (float64, string) {
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' || ((c == '-' || c == '+') && end == 0) {
			end++
			continue
		}
		break
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		i := end + 1
		if i < len(s) && (s[i] == '-' || s[i] == '+') {
			i++
		}
		if i < len(s) && s[i] >= '0' && s[i] <= '9' {
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			end = i
		}
	}
	if end == 0 {
		return 0, ""
	}
	num, _ := strconv.ParseFloat(s[:end], 64)
	return num, strings.ToLower(s[end:])
}

// importURL extracts the URL of @import "url" or @import url(...).
func importURL(tokens []css.Token) string {
	for _, t := range tokens {
		switch t.TokenType {
		case css.StringToken:
			return unquote(string(t.Data))
		case css.URLToken:
			s := strings.TrimSuffix(strings.TrimPrefix(string(t.Data), "url("), ")")
			return unquote(strings.TrimSpace(s))
		}
	}
	return ""
}

// parseSelector parses one selector of a group. Unsupported selectors come
// back without element and class, and a warning is recorded.
func (p *Parser) parseSelector(selStr string, sheet *Stylesheet) Selector {
	sel := Selector{Raw: selStr}

	unsupported := func(what string) Selector {
		sheet.Warnings = append(sheet.Warnings, "unsupported "+what+" selector: "+selStr)
		p.log.Debug("Skipping selector", zap.String("kind", what), zap.String("selector", selStr))
		return sel
	}
	switch {
	case strings.ContainsAny(selStr, "+~>"):
		return unsupported("combinator")
	case strings.Contains(selStr, "["):
		return unsupported("attribute")
	}

	parts := strings.Fields(selStr)
	if len(parts) == 0 {
		return sel
	}

	// rightmost compound is the subject, everything left of it is a chain
	// of ancestors
	var ancestor *Selector
	for _, part := range parts[:len(parts)-1] {
		a, ok := p.parseCompound(part, sheet)
		if !ok {
			return sel
		}
		a.Ancestor = ancestor
		ancestor = &a
	}
	subject, ok := p.parseCompound(parts[len(parts)-1], sheet)
	if !ok {
		return sel
	}
	subject.Raw = selStr
	subject.Ancestor = ancestor
	return subject
}

// parseCompound parses element, .class or element.class with an optional
// ::before/::after.
func (p *Parser) parseCompound(s string, sheet *Stylesheet) (Selector, bool) {
	sel := Selector{Raw: s}

	rest := s
	if before, pseudo, found := strings.Cut(s, ":"); found {
		switch strings.ToLower(strings.TrimPrefix(pseudo, ":")) {
		case "before":
			sel.Pseudo = PseudoBefore
		case "after":
			sel.Pseudo = PseudoAfter
		default:
			sheet.Warnings = append(sheet.Warnings, "unsupported pseudo-class: "+s)
			p.log.Debug("Skipping pseudo-class selector", zap.String("selector", s))
			return sel, false
		}
		rest = before
	}

	if element, class, found := strings.Cut(rest, "."); found {
		sel.Element = strings.ToLower(element)
		sel.Class = class
	} else {
		sel.Element = strings.ToLower(rest)
	}
	if sel.Element == "*" {
		sel.Element = ""
	}
	return sel, sel.IsSimple()
}

// skipAtRuleBlock skips tokens up to the end of the @-rule block just
// opened.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	for depth := 1; depth > 0; {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if parser.Err() != nil {
				return
			}
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// parseFontFace parses the body of an @font-face block.
func (p *Parser) parseFontFace(parser *css.Parser) FontFace {
	var ff FontFace
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if parser.Err() != nil {
				return ff
			}
		case css.EndAtRuleGrammar:
			return ff
		case css.DeclarationGrammar:
			val := tokensValue(parser.Values())
			switch strings.ToLower(string(data)) {
			case "font-family":
				ff.Family = unquote(val.Raw)
			case "src":
				ff.Src = val.Raw
			case "font-style":
				ff.Style = val.Raw
			case "font-weight":
				ff.Weight = val.Raw
			}
		}
	}
}

// parseMediaQuery parses "[not] type [and [not] feature]..." from the
// @media prelude tokens.
func parseMediaQuery(tokens []css.Token) MediaQuery {
	mq := MediaQuery{Raw: tokensValue(tokens).Raw}

	var idents []string
	for _, t := range tokens {
		if t.TokenType == css.IdentToken {
			idents = append(idents, strings.ToLower(string(t.Data)))
		}
	}

	i := 0
	next := func() (string, bool) {
		if i >= len(idents) {
			return "", false
		}
		i++
		return idents[i-1], true
	}

	id, ok := next()
	if ok && id == "not" {
		mq.Negated = true
		id, ok = next()
	}
	if !ok {
		return mq
	}
	mq.Type = id

	for id, ok = next(); ok; id, ok = next() {
		if id != "and" {
			continue
		}
		var f MediaFeature
		if id, ok = next(); ok && id == "not" {
			f.Negated = true
			id, ok = next()
		}
		if !ok {
			break
		}
		f.Name = id
		mq.Features = append(mq.Features, f)
	}
	return mq
}

// unquote removes surrounding quotes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
