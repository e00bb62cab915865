package twoiplib

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/netip"
	"sort"
	"strings"
	"text/tabwriter"
)

// GeoResults is an ordered collection of geo lookup records.
type GeoResults []GeoResult

// NewGeoResults builds a collection from records deduplicating them by
// address. The first occurrence wins.
func NewGeoResults(records []GeoResult) GeoResults {
	rv := make(GeoResults, 0, len(records))
	seen := make(map[netip.Addr]struct{}, len(records))

	for _, v := range records {
		if _, ok := seen[v.IP]; ok {
			continue
		}

		seen[v.IP] = struct{}{}
		rv = append(rv, v)
	}

	return rv
}

// ToMap returns the records keyed by their address string.
func (g GeoResults) ToMap() map[string]GeoResult {
	rv := make(map[string]GeoResult, len(g))

	for _, v := range g {
		key := v.IP.String()

		if _, ok := rv[key]; ok {
			continue
		}

		rv[key] = v
	}

	return rv
}

// JSON renders the collection as an indented JSON object keyed by
// address.
func (g GeoResults) JSON() (string, error) {
	data, err := json.MarshalIndent(g.ToMap(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot marshal results: %w", err)
	}

	return string(data), nil
}

// Table renders the collection as an aligned text table. fields picks
// the columns, defaults are used when it is empty. sortBy is a column
// name or a 0-based index, an empty sortBy keeps the record order.
func (g GeoResults) Table(fields []string, sortBy string) (string, error) {
	defs, err := resolveFields(fields, geoFieldDefs, geoDefaultFields)
	if err != nil {
		return "", err
	}

	sortColumn, err := resolveSortColumn(sortBy, defs)
	if err != nil {
		return "", err
	}

	return renderTable(defs, g.cells(defs), sortColumn), nil
}

// CSV renders the collection in CSV format. A zero delimiter means
// comma.
func (g GeoResults) CSV(fields []string, delimiter rune) (string, error) {
	defs, err := resolveFields(fields, geoFieldDefs, geoDefaultFields)
	if err != nil {
		return "", err
	}

	return renderCSV(defs, g.cells(defs), delimiter)
}

func (g GeoResults) cells(defs []fieldDef) [][]string {
	rv := make([][]string, 0, len(g))

	for _, record := range g {
		row := make([]string, 0, len(defs))

		for _, def := range defs {
			row = append(row, record.fieldValue(def.name))
		}

		rv = append(rv, row)
	}

	return rv
}

// ProviderResults is an ordered collection of provider lookup records.
type ProviderResults []ProviderResult

// NewProviderResults builds a collection from records deduplicating
// them by address. The first occurrence wins.
func NewProviderResults(records []ProviderResult) ProviderResults {
	rv := make(ProviderResults, 0, len(records))
	seen := make(map[netip.Addr]struct{}, len(records))

	for _, v := range records {
		if _, ok := seen[v.IP]; ok {
			continue
		}

		seen[v.IP] = struct{}{}
		rv = append(rv, v)
	}

	return rv
}

// ToMap returns the records keyed by their address string.
func (p ProviderResults) ToMap() map[string]ProviderResult {
	rv := make(map[string]ProviderResult, len(p))

	for _, v := range p {
		key := v.IP.String()

		if _, ok := rv[key]; ok {
			continue
		}

		rv[key] = v
	}

	return rv
}

// JSON renders the collection as an indented JSON object keyed by
// address.
func (p ProviderResults) JSON() (string, error) {
	data, err := json.MarshalIndent(p.ToMap(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot marshal results: %w", err)
	}

	return string(data), nil
}

// Table renders the collection as an aligned text table. fields picks
// the columns, defaults are used when it is empty. sortBy is a column
// name or a 0-based index, an empty sortBy keeps the record order.
func (p ProviderResults) Table(fields []string, sortBy string) (string, error) {
	defs, err := resolveFields(fields, providerFieldDefs, providerDefaultFields)
	if err != nil {
		return "", err
	}

	sortColumn, err := resolveSortColumn(sortBy, defs)
	if err != nil {
		return "", err
	}

	return renderTable(defs, p.cells(defs), sortColumn), nil
}

// CSV renders the collection in CSV format. A zero delimiter means
// comma.
func (p ProviderResults) CSV(fields []string, delimiter rune) (string, error) {
	defs, err := resolveFields(fields, providerFieldDefs, providerDefaultFields)
	if err != nil {
		return "", err
	}

	return renderCSV(defs, p.cells(defs), delimiter)
}

func (p ProviderResults) cells(defs []fieldDef) [][]string {
	rv := make([][]string, 0, len(p))

	for _, record := range p {
		row := make([]string, 0, len(defs))

		for _, def := range defs {
			row = append(row, record.fieldValue(def.name))
		}

		rv = append(rv, row)
	}

	return rv
}

func renderTable(defs []fieldDef, cells [][]string, sortColumn int) string {
	if sortColumn >= 0 {
		sort.SliceStable(cells, func(i, j int) bool {
			return cells[i][sortColumn] < cells[j][sortColumn]
		})
	}

	titles := make([]string, 0, len(defs))

	for _, v := range defs {
		titles = append(titles, v.title)
	}

	buf := &bytes.Buffer{}
	w := tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(titles, "\t"))

	for _, row := range cells {
		for i, v := range row {
			if v == "" {
				row[i] = "-"
			}
		}

		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	w.Flush() // nolint: errcheck

	return buf.String()
}

func renderCSV(defs []fieldDef, cells [][]string, delimiter rune) (string, error) {
	names := make([]string, 0, len(defs))

	for _, v := range defs {
		names = append(names, v.name)
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if delimiter != 0 {
		w.Comma = delimiter
	}

	if err := w.Write(names); err != nil {
		return "", fmt.Errorf("cannot write a csv header: %w", err)
	}

	if err := w.WriteAll(cells); err != nil {
		return "", fmt.Errorf("cannot write csv records: %w", err)
	}

	return buf.String(), nil
}
