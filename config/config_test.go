package config

import "testing"

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	if l.Columns != 10 || l.PairType != 7 || l.Sam1 != 8 || l.Sam2 != 9 {
		t.Errorf("Unexpected default layout %+v", *l)
	}
}

func TestNewLayout(t *testing.T) {
	for i, c := range []struct {
		names               []string
		columnSep, entrySep string
		valid               bool
	}{
		{[]string{"sam1", "sam2", "pair_type"}, "\v", "\x04", true},
		{[]string{"readID", "sam1", "sam2"}, "\v", "\x04", false},
		{DefaultColumns, "", "\x04", false},
		{DefaultColumns, "\v", "\v", false},
	} {
		_, err := NewLayout(c.names, c.columnSep, c.entrySep)
		if (err == nil) != c.valid {
			t.Errorf("[%d] Expected valid %v, got error %v", i, c.valid, err)
		}
	}
}
