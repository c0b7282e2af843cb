package fitness

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParsePoints parses a flat "x0,y0,x1,y1,..." list. Commas and whitespace
// both separate values.
func ParsePoints(s string) ([]float64, error) {
	fields := splitFields(s)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("parse point %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadSamples reads one "x,y" (or "x y") sample per line. Blank lines and
// lines starting with # are skipped.
func ReadSamples(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := splitFields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want x and y, got %d values", line, len(fields))
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
