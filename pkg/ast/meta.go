package ast

import "fmt"

// Meta carries optional source-location metadata for diagnostic
// rendering. It is never consulted during evaluation (spec.md §4.6) —
// only by short_location() and by exception reporting further up the
// stack (cmd/pixie, internal/astjson).
type Meta struct {
	FileName     string
	LineText     string
	LineNumber   int
	ColumnNumber int
}

// ShortLocation renders "<file> @ <line-prefix>^<line-suffix>" with the
// caret placed at ColumnNumber, exactly as spec.md §4.6 specifies. A nil
// Meta (the common case for synthetic or test-built nodes) renders as
// "<unknown>", matching the source's PrevASTNil fallback.
func (m *Meta) ShortLocation() string {
	if m == nil {
		return "<unknown>"
	}
	prefix, suffix := splitAtColumn(m.LineText, m.ColumnNumber)
	return fmt.Sprintf("%s @ %s^%s", m.FileName, prefix, suffix)
}

func splitAtColumn(line string, col int) (string, string) {
	runes := []rune(line)
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	return string(runes[:col]), string(runes[col:])
}
