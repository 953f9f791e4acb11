package mcda

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellText
	cellNumber
)

// Cell is one raw input value as supplied by a form, workbook or JSON body:
// either text to be parsed, an already-numeric value, or nothing.
type Cell struct {
	kind cellKind
	text string
	num  float64
}

// TextCell wraps a raw string value.
func TextCell(s string) Cell { return Cell{kind: cellText, text: s} }

// NumberCell wraps an already-numeric value.
func NumberCell(v float64) Cell { return Cell{kind: cellNumber, num: v} }

// EmptyCell is a missing value.
func EmptyCell() Cell { return Cell{} }

// TextCells converts a slice of raw strings.
func TextCells(ss []string) []Cell {
	out := make([]Cell, len(ss))
	for i, s := range ss {
		out[i] = TextCell(s)
	}
	return out
}

// NumberCells converts a slice of numbers.
func NumberCells(vs []float64) []Cell {
	out := make([]Cell, len(vs))
	for i, v := range vs {
		out[i] = NumberCell(v)
	}
	return out
}

// IsBlank reports whether the cell is missing or whitespace-only text.
func (c Cell) IsBlank() bool {
	switch c.kind {
	case cellEmpty:
		return true
	case cellText:
		return strings.TrimSpace(c.text) == ""
	default:
		return false
	}
}

// Float parses the cell as a finite real number.
func (c Cell) Float() (float64, error) {
	var v float64
	switch c.kind {
	case cellEmpty:
		return 0, fmt.Errorf("empty value")
	case cellNumber:
		v = c.num
	default:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(c.text), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number")
		}
		v = parsed
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return v, nil
}

// String returns the raw text as the caller supplied it.
func (c Cell) String() string {
	switch c.kind {
	case cellText:
		return c.text
	case cellNumber:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	default:
		return ""
	}
}

// UnmarshalJSON accepts a number, a string or null.
func (c *Cell) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*c = EmptyCell()
	case float64:
		*c = NumberCell(t)
	case string:
		*c = TextCell(t)
	default:
		return fmt.Errorf("cell must be a number or string, got %s", string(b))
	}
	return nil
}

// MarshalJSON writes numbers as numbers, text as strings and missing cells as null.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case cellNumber:
		return json.Marshal(c.num)
	case cellText:
		return json.Marshal(c.text)
	default:
		return []byte("null"), nil
	}
}
