package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shrek198/thrive-well-tracker/internal/model"
)

// ExportKind selects which measurement series a CSV export covers.
type ExportKind string

const (
	ExportWeight       ExportKind = "weight"
	ExportBodyFat      ExportKind = "bodyFat"
	ExportMeasurements ExportKind = "measurements"
)

func ParseExportKind(s string) (ExportKind, error) {
	switch strings.TrimSpace(s) {
	case "weight":
		return ExportWeight, nil
	case "bodyFat", "bodyfat", "body-fat":
		return ExportBodyFat, nil
	case "measurements":
		return ExportMeasurements, nil
	}
	return "", fmt.Errorf("invalid export kind %q (use weight, bodyfat or measurements)", s)
}

// ExportFileName is the fixed download name per kind.
func ExportFileName(kind ExportKind) string {
	switch kind {
	case ExportWeight:
		return "weight-progress.csv"
	case ExportBodyFat:
		return "bodyfat-progress.csv"
	case ExportMeasurements:
		return "body-measurements.csv"
	}
	return "export.csv"
}

// ExportCSV renders the measurements carrying the requested kind as CSV.
// Dates print as calendar days in ISO form, locale-independent, so the
// output round-trips through spreadsheet tools. Absent optional fields
// print as empty strings. No field can contain a comma, so no quoting is
// performed; that holds only because the kind set is bounded.
func ExportCSV(measurements []model.Progress, kind ExportKind) (string, error) {
	var header string
	switch kind {
	case ExportWeight:
		header = "Date,Weight (kg)"
	case ExportBodyFat:
		header = "Date,Body Fat (%)"
	case ExportMeasurements:
		header = "Date,Chest (cm),Waist (cm),Hips (cm),Biceps (cm),Thighs (cm)"
	default:
		return "", fmt.Errorf("invalid export kind %q", kind)
	}

	qualifying := MeasurementsWithField(measurements, MetricField(kind))
	lines := make([]string, 0, len(qualifying)+1)
	lines = append(lines, header)
	for _, m := range qualifying {
		day := m.Date.Format("2006-01-02")
		switch kind {
		case ExportWeight:
			lines = append(lines, day+","+formatNumber(*m.Weight))
		case ExportBodyFat:
			lines = append(lines, day+","+formatNumber(*m.BodyFat))
		case ExportMeasurements:
			lines = append(lines, strings.Join([]string{
				day,
				formatOptional(m.Measurements.Chest),
				formatOptional(m.Measurements.Waist),
				formatOptional(m.Measurements.Hips),
				formatOptional(m.Measurements.Biceps),
				formatOptional(m.Measurements.Thighs),
			}, ","))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatNumber(*v)
}
