// Package table contains the normalized observation model shared by all
// source adapters and the presentation layer.
package table

import (
	"sort"

	"github.com/okian/vital/internal/domain/catalog"
)

// Record is one normalized observation. Records are produced only by
// source adapters and never mutated afterwards. Duplicate
// (kpi, year, country) keys from different sources may coexist; the
// pivot resolves them with first-value-wins.
type Record struct {
	Year    int            `json:"year"`
	Country string         `json:"country"`
	KPI     string         `json:"kpi"`
	Value   float64        `json:"value"`
	Source  catalog.Source `json:"source"`
}

// Table is an ordered collection of records.
type Table []Record

// Empty reports whether the table has no records.
func (t Table) Empty() bool { return len(t) == 0 }

// Concat concatenates tables in order into a fresh table.
func Concat(tables ...Table) Table {
	n := 0
	for _, tb := range tables {
		n += len(tb)
	}
	out := make(Table, 0, n)
	for _, tb := range tables {
		out = append(out, tb...)
	}
	return out
}

// SortByKPIYear orders the table by KPI then Year (single-country runs).
func (t Table) SortByKPIYear() {
	sort.SliceStable(t, func(i, j int) bool {
		if t[i].KPI != t[j].KPI {
			return t[i].KPI < t[j].KPI
		}
		return t[i].Year < t[j].Year
	})
}

// SortByCountryKPIYear orders the table by Country, KPI, Year
// (multi-country runs).
func (t Table) SortByCountryKPIYear() {
	sort.SliceStable(t, func(i, j int) bool {
		if t[i].Country != t[j].Country {
			return t[i].Country < t[j].Country
		}
		if t[i].KPI != t[j].KPI {
			return t[i].KPI < t[j].KPI
		}
		return t[i].Year < t[j].Year
	})
}

// FilterSource returns the records belonging to one source, in order.
func (t Table) FilterSource(src catalog.Source) Table {
	var out Table
	for _, r := range t {
		if r.Source == src {
			out = append(out, r)
		}
	}
	return out
}

// FilterCountry returns the records for one country code, in order.
func (t Table) FilterCountry(code string) Table {
	var out Table
	for _, r := range t {
		if r.Country == code {
			out = append(out, r)
		}
	}
	return out
}

// Years returns the distinct years present, ascending.
func (t Table) Years() []int {
	seen := map[int]bool{}
	var out []int
	for _, r := range t {
		if !seen[r.Year] {
			seen[r.Year] = true
			out = append(out, r.Year)
		}
	}
	sort.Ints(out)
	return out
}

// Countries returns the distinct country codes present, ascending.
func (t Table) Countries() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range t {
		if !seen[r.Country] {
			seen[r.Country] = true
			out = append(out, r.Country)
		}
	}
	sort.Strings(out)
	return out
}

// KPIs returns the distinct KPI names in first-encounter order.
func (t Table) KPIs() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range t {
		if !seen[r.KPI] {
			seen[r.KPI] = true
			out = append(out, r.KPI)
		}
	}
	return out
}

// Sources returns the distinct sources present, in catalog display order.
func (t Table) Sources() []catalog.Source {
	present := map[catalog.Source]bool{}
	for _, r := range t {
		present[r.Source] = true
	}
	var out []catalog.Source
	for _, src := range catalog.Sources() {
		if present[src] {
			out = append(out, src)
		}
	}
	return out
}
