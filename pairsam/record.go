// Package pairsam rewrites pairsam body lines.
package pairsam

import (
	"fmt"
	"strings"

	"github.com/guigolab/pairsamtools/config"
	"github.com/guigolab/pairsamtools/sam"
)

// DupPairType is the pair type of duplicate pairs.
const DupPairType = "DD"

// LayoutError is returned when a body line does not match the expected layout.
type LayoutError struct {
	Line     int
	Columns  int
	Expected int
}

func (e *LayoutError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: expected %d columns, got %d", e.Line, e.Expected, e.Columns)
	}
	return fmt.Sprintf("expected %d columns, got %d", e.Expected, e.Columns)
}

// MarkColumn marks as duplicates all SAM entries of a sam column.
func MarkColumn(col, sep string) (string, error) {
	entries := strings.Split(col, sep)
	for i, e := range entries {
		marked, err := sam.MarkDuplicate(e)
		if err != nil {
			return "", err
		}
		entries[i] = marked
	}
	return strings.Join(entries, sep), nil
}

// MarkLine marks a pairsam body line as a duplicate pair. The returned line
// is terminated by a newline.
func MarkLine(line string, l *config.Layout) (string, error) {
	cols := strings.Split(strings.TrimSuffix(line, "\n"), l.ColumnSep)
	if len(cols) != l.Columns {
		return "", &LayoutError{Columns: len(cols), Expected: l.Columns}
	}
	cols[l.PairType] = DupPairType
	for _, i := range []int{l.Sam1, l.Sam2} {
		marked, err := MarkColumn(cols[i], l.EntrySep)
		if err != nil {
			return "", err
		}
		cols[i] = marked
	}
	return strings.Join(cols, l.ColumnSep) + "\n", nil
}
