// Package report writes candidate-evaluation results to spreadsheet
// files for downstream use.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gosteel/internal/optimizer"
	"github.com/alexiusacademia/gosteel/internal/statics"
)

const sheetName = "Candidates"

var header = []interface{}{
	"profile", "M_Rd (kNm)", "utilization", "deflection (mm)",
	"deflection limit (mm)", "deflection OK", "mass (kg)", "CO2 (kg)", "conforms",
}

// WriteXLSX writes the full candidate table plus the demand summary to an
// XLSX workbook. Every evaluated candidate is listed in input order; the
// selected section, if any, is repeated on a summary row.
func WriteXLSX(filename string, demand statics.Demand, res optimizer.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, ev := range res.Evaluations {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{
			ev.Profile, ev.Resistance, ev.Utilization, ev.Deflection,
			ev.DeflectionLimit, ev.DeflectionOK, ev.Mass, ev.CO2, ev.Conforms(),
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	summaryRow := len(res.Evaluations) + 3
	summary := [][]interface{}{
		{"span (m)", demand.Span},
		{"max |M| (kNm)", demand.MaxMoment},
		{"max |V| (kN)", demand.MaxShear},
		{"RA (kN)", demand.ReactionLeft},
		{"RB (kN)", demand.ReactionRight},
	}
	if res.Best != nil {
		summary = append(summary, []interface{}{"selected", res.Best.Profile})
	} else {
		summary = append(summary, []interface{}{"selected", "no conforming section"})
	}
	for i, row := range summary {
		cell := fmt.Sprintf("A%d", summaryRow+i)
		r := row
		if err := f.SetSheetRow(sheetName, cell, &r); err != nil {
			return err
		}
	}

	for i, sk := range res.Skipped {
		cell := fmt.Sprintf("A%d", summaryRow+len(summary)+1+i)
		row := []interface{}{"skipped", sk.Profile, sk.Err.Error()}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}
