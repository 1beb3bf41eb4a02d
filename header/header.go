// Package header reads and augments the header block of pairsam files.
package header

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/hts/sam"
	"github.com/guigolab/pairsamtools/config"
	"github.com/pkg/errors"
)

const (
	// CommentChar starts every header line.
	CommentChar = '#'
	// SamHeaderPrefix marks header lines carrying a SAM header record.
	SamHeaderPrefix = "#samheader:"
	// ColumnsPrefix marks the header line listing the body column names.
	ColumnsPrefix = "#columns:"
)

// Read reads the header lines at the start of r, without line terminators. It
// stops before the first line not starting with CommentChar, which is left
// unread in r.
func Read(r *bufio.Reader) ([]string, error) {
	var lines []string
	for {
		b, err := r.Peek(1)
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "couldn't read header")
		}
		if b[0] != CommentChar {
			return lines, nil
		}
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "couldn't read header")
		}
		lines = append(lines, strings.TrimSuffix(line, "\n"))
		if err == io.EOF {
			return lines, nil
		}
	}
}

// Write writes the header lines to w, each terminated by a newline.
func Write(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return errors.Wrap(err, "couldn't write header")
		}
	}
	return nil
}

// Columns returns the column names declared in the header, or nil.
func Columns(lines []string) []string {
	for _, l := range lines {
		if strings.HasPrefix(l, ColumnsPrefix) {
			return strings.Fields(strings.TrimPrefix(l, ColumnsPrefix))
		}
	}
	return nil
}

// programs returns the IDs of the @PG records in the SAM header lines, in
// order. Records without an ID are skipped and repeated IDs are kept.
func programs(lines []string) []string {
	var uids []string
	for _, l := range lines {
		if !strings.HasPrefix(l, SamHeaderPrefix) {
			continue
		}
		fields := strings.Split(strings.TrimLeft(strings.TrimPrefix(l, SamHeaderPrefix), " "), "\t")
		if fields[0] != "@PG" {
			continue
		}
		for _, f := range fields[1:] {
			if strings.HasPrefix(f, "ID:") {
				uids = append(uids, strings.TrimPrefix(f, "ID:"))
				break
			}
		}
	}
	return uids
}

// AppendProgram returns the header lines with a new @PG entry describing p.
// The entry is placed after the last SAM header line, or at the end of the
// header if there is none. If p.ID is already used by another @PG entry a
// numeric suffix is added, and the new entry points to the last existing
// @PG entry as its previous program.
func AppendProgram(lines []string, p *config.Program) []string {
	uids := programs(lines)
	used := make(map[string]bool, len(uids))
	for _, uid := range uids {
		used[uid] = true
	}
	uid := p.ID
	for n := 1; used[uid]; n++ {
		uid = fmt.Sprintf("%s-%d", p.ID, n)
	}
	var prev string
	if len(uids) > 0 {
		prev = uids[len(uids)-1]
	}
	pg := sam.NewProgram(uid, p.Name, p.CommandLine, prev, p.Version)

	fields := []string{
		"@PG",
		"ID:" + pg.UID(),
		"PN:" + pg.Name(),
		"VN:" + pg.Version(),
		"CL:" + pg.Command(),
	}
	if pg.Previous() != "" {
		fields = append(fields, "PP:"+pg.Previous())
	}
	entry := SamHeaderPrefix + " " + strings.Join(fields, "\t")

	at := len(lines)
	for i, l := range lines {
		if strings.HasPrefix(l, SamHeaderPrefix) {
			at = i + 1
		}
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, entry)
	return append(out, lines[at:]...)
}
