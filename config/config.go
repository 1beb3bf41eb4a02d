package config

import "github.com/pkg/errors"

// Default pairsam separators.
const (
	ColumnSep = "\v"
	EntrySep  = "\x04"
)

// Names of the columns the markasdup tool rewrites.
const (
	PairTypeColumn = "pair_type"
	Sam1Column     = "sam1"
	Sam2Column     = "sam2"
)

// DefaultColumns lists the pairsam columns in their default order.
var DefaultColumns = []string{
	"readID", "chrom1", "pos1", "chrom2", "pos2", "strand1", "strand2",
	PairTypeColumn, Sam1Column, Sam2Column,
}

// Layout describes the positional semantics of a pairsam body line.
type Layout struct {
	Columns              int
	PairType, Sam1, Sam2 int
	ColumnSep, EntrySep  string
}

// NewLayout returns the layout described by the column names, using the given separators.
func NewLayout(names []string, columnSep, entrySep string) (*Layout, error) {
	l := &Layout{
		Columns:   len(names),
		PairType:  -1,
		Sam1:      -1,
		Sam2:      -1,
		ColumnSep: columnSep,
		EntrySep:  entrySep,
	}
	for i, name := range names {
		switch name {
		case PairTypeColumn:
			l.PairType = i
		case Sam1Column:
			l.Sam1 = i
		case Sam2Column:
			l.Sam2 = i
		}
	}
	if l.PairType < 0 || l.Sam1 < 0 || l.Sam2 < 0 {
		return nil, errors.Errorf("columns %s, %s and %s are required, got %v",
			PairTypeColumn, Sam1Column, Sam2Column, names)
	}
	if columnSep == "" || entrySep == "" {
		return nil, errors.New("empty separator")
	}
	if columnSep == entrySep {
		return nil, errors.New("column and entry separators must differ")
	}
	return l, nil
}

// DefaultLayout returns the layout of DefaultColumns with the default separators.
func DefaultLayout() *Layout {
	l, _ := NewLayout(DefaultColumns, ColumnSep, EntrySep)
	return l
}

// Program describes the current run, recorded in the output header.
type Program struct {
	ID, Name, Version, CommandLine string
}

type Config struct {
	Cpu, MaxBuf int
	Layout      *Layout
	Program     *Program
}

func NewConfig(cpu, maxBuf int, layout *Layout, prog *Program) *Config {
	return &Config{cpu, maxBuf, layout, prog}
}
