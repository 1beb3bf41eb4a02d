package sam

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/biogo/hts/sam"
)

const (
	// FieldSep separates the fields of a SAM entry.
	FieldSep = "\t"

	flagField = 1
	// optional TAG:TYPE:VALUE fields start after the 11 mandatory ones
	optField = 11

	pairTypePrefix = "Yt:Z:"
)

var dupPairType = mustAux("Yt", "DD")

func mustAux(tag string, value interface{}) string {
	aux, err := sam.NewAux(sam.NewTag(tag), value)
	if err != nil {
		panic(err)
	}
	return aux.String()
}

// FlagError is returned when the FLAG field of a SAM entry is not a valid flag value.
type FlagError struct {
	Value string
	Err   error
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("invalid SAM flag %q: %v", e.Value, e.Err)
}

// dupFlag is the SAM duplicate bit, 1024.
const dupFlag = uint64(sam.Duplicate)

func parseFlags(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &FlagError{s, err}
	}
	return v, nil
}

// MarkDuplicate sets the duplicate bit in the FLAG field of a SAM entry and
// sets the pair type tag, if present, to DD. Entries without a FLAG field are
// returned unchanged.
func MarkDuplicate(entry string) (string, error) {
	fields := strings.Split(entry, FieldSep)
	if len(fields) <= flagField {
		return entry, nil
	}
	flags, err := parseFlags(fields[flagField])
	if err != nil {
		return "", err
	}
	fields[flagField] = strconv.FormatUint(flags|dupFlag, 10)
	for i := optField; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], pairTypePrefix) {
			fields[i] = dupPairType
		}
	}
	return strings.Join(fields, FieldSep), nil
}

// IsDuplicate reports whether the FLAG field of a SAM entry has the duplicate bit set.
func IsDuplicate(entry string) (bool, error) {
	fields := strings.SplitN(entry, FieldSep, flagField+2)
	if len(fields) <= flagField {
		return false, nil
	}
	flags, err := parseFlags(fields[flagField])
	if err != nil {
		return false, err
	}
	return flags&dupFlag != 0, nil
}
