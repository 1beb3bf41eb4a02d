package utils

import (
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
	log "github.com/sirupsen/logrus"
)

// Stdio is the file name used for standard input and output.
const Stdio = "-"

func stdio(name string) string {
	if name == "" {
		return Stdio
	}
	return name
}

// NewReader opens a file for reading, transparently decompressing gzip and
// bgzip data. If the file name is empty or '-' os.Stdin is used.
func NewReader(input string) (*xopen.Reader, error) {
	input = stdio(input)
	r, err := xopen.Ropen(input)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't open %s", input)
	}
	return r, nil
}

type bgzfWriter struct {
	*bgzf.Writer
	f *os.File
}

func (w *bgzfWriter) Close() error {
	err := w.Writer.Close()
	if cerr := w.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// NewWriter returns a new io.WriteCloser given an output file name. If the
// file name is empty or '-' os.Stdout is used. Files ending in .gz are bgzip
// compressed using cpu compression workers.
func NewWriter(output string, cpu int) (io.WriteCloser, error) {
	output = stdio(output)
	if output != Stdio && strings.HasSuffix(output, ".gz") {
		f, err := os.Create(output)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't create %s", output)
		}
		log.WithFields(log.Fields{
			"File":    output,
			"Workers": cpu,
		}).Debug("Writing bgzip compressed output")
		return &bgzfWriter{bgzf.NewWriter(f, cpu), f}, nil
	}
	w, err := xopen.Wopen(output)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't create %s", output)
	}
	return w, nil
}
