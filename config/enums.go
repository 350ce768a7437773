package config

//go:generate go tool go-enum --marshal --names --nocase

// Specification of inspect output format.
// ENUM(text, yaml)
type OutputFmt int

// Ext returns file name extension for the format.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtYaml:
		return ".yaml"
	default:
		return ".txt"
	}
}
