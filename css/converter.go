package css

import (
	"errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"crcss/style"
)

// Converter converts CSS rules to computed style records.
type Converter struct {
	log *zap.Logger
}

// NewConverter creates a new CSS-to-record converter.
func NewConverter(log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{log: log.Named("css-converter")}
}

// ConversionResult holds the result of converting a CSS rule. Err combines
// every rejected declaration, Warnings has one line per rejection.
type ConversionResult struct {
	Style    style.Record
	Warnings []string
	Err      error
}

// Computed is the record produced for one selector.
type Computed struct {
	Selector Selector
	Style    style.Record
	Warnings []string
}

// ConvertRule applies the rule's declarations in source order onto an
// all-inherit record. Declarations marked !important are applied after the
// others so that a later plain declaration can not override them.
func (c *Converter) ConvertRule(rule Rule) ConversionResult {
	result := ConversionResult{
		Style:    style.NewRecord(),
		Warnings: make([]string, 0),
	}

	for _, important := range []bool{false, true} {
		for _, d := range rule.Declarations {
			if d.Value.Important == important {
				c.convertDeclaration(d, &result)
			}
		}
	}
	return result
}

func (c *Converter) convertDeclaration(d Declaration, result *ConversionResult) {
	err := ApplyDeclaration(&result.Style, d.Name, d.Value)
	switch {
	case err == nil:
	case errors.Is(err, ErrUnknownProperty):
		c.log.Debug("unknown CSS property", zap.String("property", d.Name))
	default:
		result.Err = multierr.Append(result.Err, err)
		result.Warnings = append(result.Warnings, "unable to convert "+d.Name+": "+d.Value.Raw+" ("+err.Error()+")")
	}
}

// ConvertStylesheet converts top-level rules and the rules of @media blocks
// matching the active media, in source order.
func (c *Converter) ConvertStylesheet(sheet *Stylesheet, media ...string) []Computed {
	rules := sheet.Rules(media...)
	computed := make([]Computed, 0, len(rules))

	for _, rule := range rules {
		result := c.ConvertRule(rule)
		if result.Err != nil {
			c.log.Debug("Rule converted with errors",
				zap.String("selector", rule.Selector.Raw),
				zap.Int("rejected", len(multierr.Errors(result.Err))))
		}
		computed = append(computed, Computed{
			Selector: rule.Selector,
			Style:    result.Style,
			Warnings: result.Warnings,
		})
	}
	return computed
}
