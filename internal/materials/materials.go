// Package materials loads the section-properties table the optimizer
// draws candidates from.
//
// The backing store is a CSV with named columns: profile, mass_kg_per_m,
// I_cm4, W_cm3, rho_kg_per_m3, co2_kg_per_kg. Catalog units (cm⁴, cm³)
// are converted to SI once at load time; nothing downstream converts
// units again.
package materials

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var (
	// ErrUnknownProfile is returned when a profile id is not in the table.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrMissingColumn is returned when the CSV lacks a required column.
	ErrMissingColumn = errors.New("materials table is missing required column")
)

// Section holds the resolved properties of one catalog profile, in SI
// units except MassPerMeter which stays in its natural kg/m.
type Section struct {
	Profile        string
	MassPerMeter   float64 // kg/m
	Area           float64 // m²
	SecondMoment   float64 // m⁴
	SectionModulus float64 // m³
	Density        float64 // kg/m³
	EmissionFactor float64 // kg CO₂ per kg material
}

// Source resolves a profile id to its section properties. The optimizer
// depends on this narrow contract rather than on the CSV table directly.
type Source interface {
	Section(profile string) (Section, error)
}

// Table is an in-memory section table keyed by profile id. It preserves
// catalog order for listing.
type Table struct {
	sections map[string]Section
	order    []string
}

var requiredColumns = []string{
	"profile", "mass_kg_per_m", "I_cm4", "W_cm3", "rho_kg_per_m3", "co2_kg_per_kg",
}

// Load reads a materials table from a CSV file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open materials table: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses a materials table from CSV content.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read materials header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrMissingColumn)
		}
	}

	t := &Table{sections: make(map[string]Section)}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read materials row %d: %w", line, err)
		}

		sec, err := parseRow(record, col)
		if err != nil {
			return nil, fmt.Errorf("materials row %d: %w", line, err)
		}

		if _, seen := t.sections[sec.Profile]; !seen {
			t.order = append(t.order, sec.Profile)
		}
		t.sections[sec.Profile] = sec
	}

	return t, nil
}

func parseRow(record []string, col map[string]int) (Section, error) {
	field := func(name string) (float64, error) {
		i := col[name]
		if i >= len(record) {
			return 0, fmt.Errorf("%q: %w", name, ErrMissingColumn)
		}
		v, err := strconv.ParseFloat(record[i], 64)
		if err != nil {
			return 0, fmt.Errorf("column %q: %w", name, err)
		}
		return v, nil
	}

	profile := record[col["profile"]]

	mass, err := field("mass_kg_per_m")
	if err != nil {
		return Section{}, err
	}
	iCm4, err := field("I_cm4")
	if err != nil {
		return Section{}, err
	}
	wCm3, err := field("W_cm3")
	if err != nil {
		return Section{}, err
	}
	rho, err := field("rho_kg_per_m3")
	if err != nil {
		return Section{}, err
	}
	ef, err := field("co2_kg_per_kg")
	if err != nil {
		return Section{}, err
	}

	return Section{
		Profile:        profile,
		MassPerMeter:   mass,
		Area:           mass / rho,  // m², from mass per metre and density
		SecondMoment:   iCm4 * 1e-8, // cm⁴ → m⁴
		SectionModulus: wCm3 * 1e-6, // cm³ → m³
		Density:        rho,
		EmissionFactor: ef,
	}, nil
}

// Section returns the properties for a profile id.
func (t *Table) Section(profile string) (Section, error) {
	sec, ok := t.sections[profile]
	if !ok {
		return Section{}, fmt.Errorf("%q: %w", profile, ErrUnknownProfile)
	}
	return sec, nil
}

// Profiles returns all profile ids in catalog order.
func (t *Table) Profiles() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of profiles in the table.
func (t *Table) Len() int {
	return len(t.sections)
}
