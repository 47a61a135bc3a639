package builder

import (
	"fmt"
	"strconv"
)

// tagOrNil converts an IDFn result to a node/edge tag pointer, treating
// the empty string as "no tag."
func tagOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// IDFn derives an optional tag label for the node at zero-based index
// idx. An empty string means "no tag": the node is added untagged. It
// must be a pure, deterministic function: given the same idx, it always
// returns the same string. Panics in implementations indicate a
// programmer error in the requested index domain.
type IDFn func(idx int) string

// DefaultIDFn leaves every node untagged.
func DefaultIDFn(idx int) string {
	return ""
}

// DecimalIDFn returns the decimal string of idx, e.g. 0->"0", 42->"42".
// Never panics.
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0,25], e.g.
// 0->"A", 25->"Z". Panics if idx is out of range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// AlphanumericIDFn returns a base-36 string for idx, e.g. 0->"0",
// 10->"a", 35->"z", 36->"10". Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be >= 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn returns the "Excel-style" column name for idx, e.g.
// 0->"A", 25->"Z", 26->"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be >= 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// HexIDFn returns the lowercase hexadecimal representation of idx, e.g.
// 0->"0", 10->"a", 255->"ff". Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be >= 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 16)
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn (no tags).
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithDecimalIDs sets the ID scheme to DecimalIDFn.
func WithDecimalIDs() BuilderOption {
	return WithIDScheme(DecimalIDFn)
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithHexIDs sets the ID scheme to HexIDFn.
func WithHexIDs() BuilderOption {
	return WithIDScheme(HexIDFn)
}

// WithAlphanumericIDs sets the ID scheme to AlphanumericIDFn.
func WithAlphanumericIDs() BuilderOption {
	return WithIDScheme(AlphanumericIDFn)
}
