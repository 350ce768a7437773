package inspect

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"crcss/config"
	"crcss/css"
	"crcss/state"
	"crcss/style"
)

type inspector struct {
	env    *state.LocalEnv
	log    *zap.Logger
	media  []string
	format config.OutputFmt
	out    io.Writer

	// yaml output is a single document
	entries []entry
}

type entry struct {
	Source   string     `yaml:"source"`
	Selector string     `yaml:"selector"`
	Hash     string     `yaml:"hash,omitempty"`
	Style    *yaml.Node `yaml:"style"`
	Warnings []string   `yaml:"warnings,omitempty"`
}

// property is one line of the computed record.
type property struct {
	name, value string
}

// describe lists record properties in declaration order. Unless unset ones
// are requested, properties which still inherit are skipped.
func describe(rec style.Record, includeUnset bool) (*yaml.Node, error) {
	var node yaml.Node
	if err := node.Encode(rec); err != nil {
		return nil, fmt.Errorf("unable to encode style record: %w", err)
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("unexpected style record encoding: kind %d", node.Kind)
	}
	if includeUnset {
		return &node, nil
	}

	content := make([]*yaml.Node, 0, len(node.Content))
	for i := 0; i+1 < len(node.Content); i += 2 {
		if isUnset(node.Content[i+1]) {
			continue
		}
		content = append(content, node.Content[i], node.Content[i+1])
	}
	node.Content = content
	return &node, nil
}

func isUnset(n *yaml.Node) bool {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value == "" || n.Value == "inherit"
	case yaml.SequenceNode:
		for _, c := range n.Content {
			if !isUnset(c) {
				return false
			}
		}
		return true
	}
	return false
}

func properties(node *yaml.Node) []property {
	props := make([]property, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		v := node.Content[i+1]
		value := v.Value
		if v.Kind == yaml.SequenceNode {
			parts := make([]string, 0, len(v.Content))
			for _, c := range v.Content {
				parts = append(parts, c.Value)
			}
			value = strings.Join(parts, " ")
		}
		if value == "" {
			value = `""`
		}
		props = append(props, property{name: node.Content[i].Value, value: value})
	}
	return props
}

func (insp *inspector) add(source string, computed []css.Computed) error {
	cfg := insp.env.Cfg.Output

	if insp.format == config.OutputFmtText {
		fmt.Fprintf(insp.out, "/* %s: %d rule(s) */\n", source, len(computed))
	}

	for _, c := range computed {
		node, err := describe(c.Style, cfg.IncludeUnset)
		if err != nil {
			return err
		}

		var hash string
		if cfg.IncludeHash {
			hash = fmt.Sprintf("%08x", c.Style.Hash())
		}

		switch insp.format {
		case config.OutputFmtYaml:
			insp.entries = append(insp.entries, entry{
				Source:   source,
				Selector: c.Selector.Raw,
				Hash:     hash,
				Style:    node,
				Warnings: c.Warnings,
			})
		default:
			writeText(insp.out, c.Selector.Raw, hash, properties(node))
		}
	}
	return nil
}

func writeText(w io.Writer, selector, hash string, props []property) {
	if len(hash) > 0 {
		fmt.Fprintf(w, "%s { /* hash %s */\n", selector, hash)
	} else {
		fmt.Fprintf(w, "%s {\n", selector)
	}
	for _, p := range props {
		fmt.Fprintf(w, "  %s: %s;\n", p.name, p.value)
	}
	fmt.Fprintln(w, "}")
}

// flush writes accumulated entries when output is a single document.
func (insp *inspector) flush() error {
	if insp.format != config.OutputFmtYaml {
		return nil
	}

	enc := yaml.NewEncoder(insp.out)
	enc.SetIndent(2)
	if insp.entries == nil {
		insp.entries = []entry{}
	}
	if err := enc.Encode(insp.entries); err != nil {
		return fmt.Errorf("unable to write computed styles: %w", err)
	}
	return enc.Close()
}
