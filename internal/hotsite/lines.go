package hotsite

import "strings"

// Lines splits a free-form block into its non-blank, trimmed lines.
func Lines(block string) []string {
	var out []string
	for _, line := range strings.Split(block, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// SpecRow is one "label: value" line of the tech specs block.
type SpecRow struct {
	Label string
	Value string
}

// SpecRows parses tech-spec lines, splitting each on its first colon. A line
// without a colon is all label.
func SpecRows(block string) []SpecRow {
	var rows []SpecRow
	for _, line := range Lines(block) {
		label, value, _ := strings.Cut(line, ":")
		row := SpecRow{Label: strings.TrimSpace(label), Value: strings.TrimSpace(value)}
		if row.Label == "" {
			row.Label = line
		}
		rows = append(rows, row)
	}
	return rows
}
