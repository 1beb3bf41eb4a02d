package utils

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/biogo/hts/bgzf"
)

func checkTest(err error, t *testing.T) {
	if err != nil {
		t.Fatal(err)
	}
}

func TestWriterReader(t *testing.T) {
	dir, err := ioutil.TempDir("", "pairsamtools")
	checkTest(err, t)
	defer os.RemoveAll(dir)

	data := []byte("#samheader: @HD\tVN:1.5\nread1\vchr1\n")
	for i, name := range []string{"plain.pairsam", "compressed.pairsam.gz"} {
		path := filepath.Join(dir, name)
		w, err := NewWriter(path, 2)
		checkTest(err, t)
		_, err = w.Write(data)
		checkTest(err, t)
		checkTest(w.Close(), t)

		r, err := NewReader(path)
		checkTest(err, t)
		got, err := ioutil.ReadAll(r)
		checkTest(err, t)
		r.Close()
		if !bytes.Equal(got, data) {
			t.Errorf("[%d] Expected %q, got %q", i, data, got)
		}
	}
}

func TestBgzipOutput(t *testing.T) {
	dir, err := ioutil.TempDir("", "pairsamtools")
	checkTest(err, t)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "out.pairsam.gz")
	w, err := NewWriter(path, 1)
	checkTest(err, t)
	_, err = w.Write([]byte("read1\n"))
	checkTest(err, t)
	checkTest(w.Close(), t)

	f, err := os.Open(path)
	checkTest(err, t)
	defer f.Close()
	ok, err := bgzf.HasEOF(f)
	checkTest(err, t)
	if !ok {
		t.Errorf("Expected bgzip EOF block in %s", path)
	}
}

func TestMissingInput(t *testing.T) {
	if _, err := NewReader(filepath.Join(os.TempDir(), "does", "not", "exist.pairsam")); err == nil {
		t.Error("Expected error for missing input")
	}
}
