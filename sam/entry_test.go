package sam

import (
	"strings"
	"testing"
)

func entry(fields ...string) string {
	return strings.Join(fields, "\t")
}

func TestMarkDuplicate(t *testing.T) {
	for i, s := range []struct {
		entry    string
		expected string
	}{
		{
			entry("r001", "0", "chr1", "7", "30", "8M", "=", "37", "39", "TTAGATAA", "*", "Yt:Z:UU"),
			entry("r001", "1024", "chr1", "7", "30", "8M", "=", "37", "39", "TTAGATAA", "*", "Yt:Z:DD"),
		},
		{
			entry("r002", "16", "chr1", "9", "30", "6M", "*", "0", "0", "AAAAGA", "*"),
			entry("r002", "1040", "chr1", "9", "30", "6M", "*", "0", "0", "AAAAGA", "*"),
		},
		{
			entry("r003", "1089", "chr2", "9", "30", "6M", "*", "0", "0", "AAAAGA", "*", "NM:i:1", "Yt:Z:CX", "AS:i:6"),
			entry("r003", "1089", "chr2", "9", "30", "6M", "*", "0", "0", "AAAAGA", "*", "NM:i:1", "Yt:Z:DD", "AS:i:6"),
		},
		{
			// the pair type tag is only looked for among optional fields
			entry("Yt:Z:UU", "4", "*", "0", "0", "*", "*", "0", "0", "*", "*"),
			entry("Yt:Z:UU", "1028", "*", "0", "0", "*", "*", "0", "0", "*", "*"),
		},
		{
			entry("r004", "4", "*", "0", "0", "*", "*", "0", "0", "*", "*", "Yt:A:U", "YT:Z:UU", "Yt:i:1"),
			entry("r004", "1028", "*", "0", "0", "*", "*", "0", "0", "*", "*", "Yt:A:U", "YT:Z:UU", "Yt:i:1"),
		},
		{
			entry("r005", "65536", "chr1"),
			entry("r005", "66560", "chr1"),
		},
		{
			entry("r005", "3"),
			entry("r005", "1027"),
		},
		{"", ""},
		{"r006", "r006"},
	} {
		marked, err := MarkDuplicate(s.entry)
		if err != nil {
			t.Errorf("[%d] unexpected error: %v", i, err)
			continue
		}
		if marked != s.expected {
			t.Errorf("[%d] Expected %q, got %q", i, s.expected, marked)
		}
		if n, m := strings.Count(s.entry, "\t"), strings.Count(marked, "\t"); n != m {
			t.Errorf("[%d] Expected %d fields, got %d", i, n+1, m+1)
		}
		again, err := MarkDuplicate(marked)
		if err != nil || again != marked {
			t.Errorf("[%d] Expected idempotent marking, got %q (%v)", i, again, err)
		}
	}
}

func TestMarkDuplicateFlagError(t *testing.T) {
	for i, flag := range []string{"", "abc", "-4", "1.5", "0x400", "18446744073709551616"} {
		_, err := MarkDuplicate(entry("r001", flag, "chr1"))
		if err == nil {
			t.Errorf("[%d] Expected error for flag %q", i, flag)
			continue
		}
		if _, ok := err.(*FlagError); !ok {
			t.Errorf("[%d] Expected *FlagError, got %T", i, err)
		}
	}
}

func TestIsDuplicate(t *testing.T) {
	for i, s := range []struct {
		entry    string
		expected bool
	}{
		{entry("r001", "1024", "chr1"), true},
		{entry("r001", "1040"), true},
		{entry("r001", "16", "chr1"), false},
		{"", false},
	} {
		dup, err := IsDuplicate(s.entry)
		if err != nil {
			t.Errorf("[%d] unexpected error: %v", i, err)
		}
		if dup != s.expected {
			t.Errorf("[%d] Expected %v, got %v", i, s.expected, dup)
		}
	}
}

func BenchmarkMarkDuplicate(b *testing.B) {
	e := entry("r001", "99", "chr1", "7", "30", "8M2I4M1D3M", "=", "37", "39", "TTAGATAAAGGATACTG", "*", "NM:i:1", "Yt:Z:UU")
	for i := 0; i < b.N; i++ {
		MarkDuplicate(e)
	}
}
