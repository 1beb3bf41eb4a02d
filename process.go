// Package pairsamtools provides functions for processing pairsam files.
package pairsamtools

import (
	"bufio"
	"io"
	"sync"
	"time"

	"github.com/guigolab/pairsamtools/config"
	"github.com/guigolab/pairsamtools/header"
	"github.com/guigolab/pairsamtools/pairsam"
	"github.com/guigolab/pairsamtools/stats"
	"github.com/guigolab/pairsamtools/utils"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// UtilName is the name of the markasdup tool, used as its @PG ID and program name.
const UtilName = "pairsam_markasdup"

func init() {
	log.SetLevel(log.WarnLevel)
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return line, err
}

func lineError(err error, n int) error {
	if lerr, ok := err.(*pairsam.LayoutError); ok {
		lerr.Line = n
		return lerr
	}
	return errors.Wrapf(err, "line %d", n)
}

type batch struct {
	start int
	lines []string
	// lines[:n] have been marked
	n      int
	counts *stats.Counts
	err    error
	done   chan struct{}
}

func newBatch(start, size int) *batch {
	return &batch{
		start:  start,
		lines:  make([]string, 0, size),
		counts: stats.NewCounts(),
		done:   make(chan struct{}),
	}
}

func (b *batch) read(br *bufio.Reader) error {
	for len(b.lines) < cap(b.lines) {
		line, err := readLine(br)
		if err != nil {
			return err
		}
		b.lines = append(b.lines, line)
	}
	return nil
}

func (b *batch) mark(l *config.Layout) {
	for i, line := range b.lines {
		marked, err := pairsam.MarkLine(line, l)
		if err != nil {
			b.err = lineError(err, b.start+i)
			return
		}
		b.counts.Collect(line, l)
		b.lines[i] = marked
		b.n++
	}
}

func worker(id int, batches chan *batch, l *config.Layout, wg *sync.WaitGroup) {
	defer wg.Done()
	logger := log.WithFields(log.Fields{
		"worker": id,
	})
	logger.Debug("Starting")
	for b := range batches {
		b.mark(l)
		close(b.done)
	}
	logger.Debug("Done")
}

func readBatches(br *bufio.Reader, size int, work, queue chan *batch, quit chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	defer close(work)
	defer close(queue)
	start := 1
	for {
		b := newBatch(start, size)
		err := b.read(br)
		if len(b.lines) > 0 {
			select {
			case queue <- b:
			case <-quit:
				return
			}
			select {
			case work <- b:
			case <-quit:
				return
			}
			log.Debugf("Read lines %d-%d", start, start+len(b.lines)-1)
			start += len(b.lines)
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			eb := newBatch(start, 0)
			eb.err = errors.Wrap(err, "couldn't read pairsam body")
			close(eb.done)
			select {
			case queue <- eb:
			case <-quit:
			}
			return
		}
	}
}

func markParallel(br *bufio.Reader, w io.Writer, l *config.Layout, cpu, size int) (counts *stats.Counts, err error) {
	var wg sync.WaitGroup
	counts = stats.NewCounts()
	work := make(chan *batch)
	queue := make(chan *batch, cpu)
	quit := make(chan struct{})

	for i := 0; i < cpu; i++ {
		wg.Add(1)
		go worker(i+1, work, l, &wg)
	}
	wg.Add(1)
	go readBatches(br, size, work, queue, quit, &wg)

	for b := range queue {
		<-b.done
		for _, line := range b.lines[:b.n] {
			if _, err = io.WriteString(w, line); err != nil {
				err = errors.Wrap(err, "couldn't write pairsam body")
				break
			}
		}
		if err == nil {
			counts.Update(b.counts)
			err = b.err
		}
		if err != nil {
			close(quit)
			break
		}
	}
	wg.Wait()
	return counts, err
}

func markSeq(br *bufio.Reader, w io.Writer, l *config.Layout) (*stats.Counts, error) {
	counts := stats.NewCounts()
	for n := 1; ; n++ {
		line, err := readLine(br)
		if err == io.EOF {
			return counts, nil
		}
		if err != nil {
			return counts, errors.Wrap(err, "couldn't read pairsam body")
		}
		marked, err := pairsam.MarkLine(line, l)
		if err != nil {
			return counts, lineError(err, n)
		}
		if _, err := io.WriteString(w, marked); err != nil {
			return counts, errors.Wrap(err, "couldn't write pairsam body")
		}
		counts.Collect(line, l)
	}
}

// MarkAsDup copies a pairsam stream from r to w, adding a @PG entry for cfg.Program
// to the header and marking every pair as a duplicate. It returns statistics on
// the pairs written. Processing stops at the first malformed line.
func MarkAsDup(r io.Reader, w io.Writer, cfg *config.Config) (counts *stats.Counts, err error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	h, err := header.Read(br)
	if err != nil {
		return nil, err
	}
	l := cfg.Layout
	if names := header.Columns(h); names != nil {
		if l, err = config.NewLayout(names, l.ColumnSep, l.EntrySep); err != nil {
			return nil, errors.Wrap(err, "invalid columns header")
		}
		log.Debugf("Using columns %v from header", names)
	}
	h = header.AppendProgram(h, cfg.Program)

	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "couldn't write output")
		}
	}()
	if err = header.Write(bw, h); err != nil {
		return stats.NewCounts(), err
	}
	if cfg.Cpu > 1 {
		size := cfg.MaxBuf
		if size < 1 {
			size = 1
		}
		return markParallel(br, bw, l, cfg.Cpu, size)
	}
	return markSeq(br, bw, l)
}

// MarkAsDupFile marks all pairs in the input pairsam file as duplicates and
// writes the result to output. Empty file names or '-' stand for stdin and
// stdout. If statsOutput is not empty, statistics on the processed pairs are
// written there in JSON format.
func MarkAsDupFile(input, output, statsOutput string, cfg *config.Config) (err error) {
	in, err := utils.NewReader(input)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := utils.NewWriter(output, cfg.Cpu)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "couldn't close output")
		}
	}()

	if input == "" {
		input = utils.Stdio
	}
	log.Infof("Marking duplicates in %s", input)
	start := time.Now()
	counts, err := MarkAsDup(in, out, cfg)
	if err != nil {
		if counts != nil {
			log.Warnf("Stopped after %d pairs", counts.Pairs)
		}
		return err
	}
	log.WithFields(log.Fields{
		"Pairs":      counts.Pairs,
		"Entries":    counts.Entries,
		"Duplicates": counts.Duplicates,
	}).Infof("Done in %v", time.Since(start))

	if statsOutput == "" {
		return nil
	}
	w, err := utils.NewWriter(statsOutput, 1)
	if err != nil {
		return err
	}
	if err = counts.OutputJSON(w); err != nil {
		w.Close()
		return errors.Wrap(err, "couldn't write stats")
	}
	return errors.Wrap(w.Close(), "couldn't write stats")
}
