// Package stats collects statistics about the pairs processed by pairsamtools.
package stats

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/guigolab/pairsamtools/config"
	"github.com/guigolab/pairsamtools/sam"
)

// Counts represents statistics on the input pairs of a markasdup run.
type Counts struct {
	Pairs      int    `json:"pairs"`
	PairTypes  TagMap `json:"pair_types"`
	Entries    int    `json:"sam_entries"`
	Duplicates int    `json:"sam_duplicates"`
}

func NewCounts() *Counts {
	return &Counts{PairTypes: make(TagMap)}
}

// Collect updates the counts with an input body line. The line must match the layout.
func (c *Counts) Collect(line string, l *config.Layout) {
	cols := strings.Split(strings.TrimSuffix(line, "\n"), l.ColumnSep)
	if len(cols) != l.Columns {
		return
	}
	c.Pairs++
	c.PairTypes[cols[l.PairType]]++
	for _, i := range []int{l.Sam1, l.Sam2} {
		for _, e := range strings.Split(cols[i], l.EntrySep) {
			if e == "" {
				continue
			}
			c.Entries++
			if dup, err := sam.IsDuplicate(e); err == nil && dup {
				c.Duplicates++
			}
		}
	}
}

// Update adds the counts of other to c.
func (c *Counts) Update(other *Counts) {
	c.Pairs += other.Pairs
	c.PairTypes.Update(other.PairTypes)
	c.Entries += other.Entries
	c.Duplicates += other.Duplicates
}

// OutputJSON writes the json representation of the counts to an io.Writer
func (c *Counts) OutputJSON(writer io.Writer) error {
	b, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return err
	}
	if _, err = writer.Write(append(b, '\n')); err != nil {
		return err
	}
	if w, ok := writer.(*bufio.Writer); ok {
		return w.Flush()
	}
	return nil
}
