// Package loads reads externally supplied load-case files and answers
// bending-moment lookups by span fraction.
//
// Moment tables are pipe-separated text, one station per line:
//
//	# z/L | z (m) | M (N·m)
//	0.2 | 3.432 | 7.63e6
//
// Overload files carry "key = value" lines (ny_max, ny_min, safety_factor).
package loads

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/aeroform/wingpanel/internal/errs"
)

// MomentEntry is one station of a bending-moment table.
type MomentEntry struct {
	SpanFraction float64 // z/L
	Station      float64 // m from the root
	Moment       float64 // N·m, positive compresses the upper panel
}

// MomentTable is an ordered bending-moment distribution along the semispan.
type MomentTable struct {
	entries []MomentEntry
}

// ParseMoments reads a moment table from r. Lines starting with '#' and
// blank lines are skipped.
func ParseMoments(r io.Reader) (*MomentTable, error) {
	var entries []MomentEntry

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 pipe-separated values, got %d", lineNum, len(parts))
		}

		var values [3]float64
		for i, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			values[i] = v
		}
		entries = append(entries, MomentEntry{
			SpanFraction: values[0],
			Station:      values[1],
			Moment:       values[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("moment table is empty")
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SpanFraction < entries[j].SpanFraction
	})
	return &MomentTable{entries: entries}, nil
}

// LoadMoments reads a moment table from a file.
func LoadMoments(path string) (*MomentTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := ParseMoments(f)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return table, nil
}

// Entries returns the table's stations in span order.
func (t *MomentTable) Entries() []MomentEntry {
	return t.entries
}

// MomentAt returns the bending moment at span fraction z, interpolating
// linearly between stations and extrapolating linearly beyond the table's
// ends.
func (t *MomentTable) MomentAt(z float64) (float64, error) {
	if z < 0 || z > 1 {
		return 0, &errs.OutOfRange{Name: "span fraction", Value: z, Min: 0, Max: 1}
	}
	if len(t.entries) == 0 {
		return 0, &errs.MissingParameter{Name: "moment table"}
	}

	first := t.entries[0]
	last := t.entries[len(t.entries)-1]
	if len(t.entries) == 1 {
		return first.Moment, nil
	}

	if z < first.SpanFraction {
		next := t.entries[1]
		slope := (next.Moment - first.Moment) / (next.SpanFraction - first.SpanFraction)
		return first.Moment + slope*(z-first.SpanFraction), nil
	}
	if z > last.SpanFraction {
		prev := t.entries[len(t.entries)-2]
		slope := (last.Moment - prev.Moment) / (last.SpanFraction - prev.SpanFraction)
		return last.Moment + slope*(z-last.SpanFraction), nil
	}

	for i := 0; i < len(t.entries)-1; i++ {
		a, b := t.entries[i], t.entries[i+1]
		if z >= a.SpanFraction && z <= b.SpanFraction {
			if b.SpanFraction == a.SpanFraction {
				return a.Moment, nil
			}
			frac := (z - a.SpanFraction) / (b.SpanFraction - a.SpanFraction)
			return a.Moment + (b.Moment-a.Moment)*frac, nil
		}
	}
	return last.Moment, nil
}

// Overloads holds the design load factors read from an overload file.
type Overloads struct {
	NyMax        float64
	NyMin        float64
	SafetyFactor float64
}

// ParseOverloads reads "key = value" overload lines from r.
func ParseOverloads(r io.Reader) (*Overloads, error) {
	values := make(map[string]float64)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || !strings.Contains(line, "=") {
			continue
		}
		key, raw, _ := strings.Cut(line, "=")
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		values[strings.TrimSpace(key)] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("overload file has no key = value lines")
	}

	return &Overloads{
		NyMax:        values["ny_max"],
		NyMin:        values["ny_min"],
		SafetyFactor: values["safety_factor"],
	}, nil
}

// LoadOverloads reads an overload file.
func LoadOverloads(path string) (*Overloads, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	o, err := ParseOverloads(f)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return o, nil
}
