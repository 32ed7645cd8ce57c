package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

// MetricField names one of the optional slots a Progress snapshot may carry.
type MetricField string

const (
	FieldWeight       MetricField = "weight"
	FieldBodyFat      MetricField = "bodyFat"
	FieldMeasurements MetricField = "measurements"
	FieldPhotos       MetricField = "photos"
)

func ParseMetricField(s string) (MetricField, error) {
	switch MetricField(strings.TrimSpace(s)) {
	case FieldWeight:
		return FieldWeight, nil
	case FieldBodyFat, "bodyfat":
		return FieldBodyFat, nil
	case FieldMeasurements:
		return FieldMeasurements, nil
	case FieldPhotos:
		return FieldPhotos, nil
	}
	return "", fmt.Errorf("invalid measurement field %q (use weight, bodyFat, measurements or photos)", s)
}

type RecordMeasurementInput struct {
	Date         time.Time
	Weight       *float64
	WeightUnit   string
	BodyFat      *float64
	Measurements *model.BodyMeasurements
	Photos       []string
}

// RecordMeasurement validates and persists one snapshot. At least one of
// weight, body fat, tape measurements or photos must be present; nothing
// is written otherwise.
func RecordMeasurement(repo *store.Repository, in RecordMeasurementInput) (model.Progress, error) {
	if in.Weight == nil && in.BodyFat == nil && emptyMeasurements(in.Measurements) && len(in.Photos) == 0 {
		return model.Progress{}, fmt.Errorf("measurement needs at least one of weight, body fat, measurements or photos")
	}
	var weight *float64
	if in.Weight != nil {
		kg, err := ToKg(*in.Weight, in.WeightUnit)
		if err != nil {
			return model.Progress{}, err
		}
		weight = &kg
	}
	if in.BodyFat != nil && (*in.BodyFat < 0 || *in.BodyFat > 100) {
		return model.Progress{}, fmt.Errorf("body fat must be between 0 and 100")
	}
	if in.Measurements != nil {
		for _, check := range []struct {
			field string
			value *float64
		}{
			{"chest", in.Measurements.Chest},
			{"waist", in.Measurements.Waist},
			{"hips", in.Measurements.Hips},
			{"biceps", in.Measurements.Biceps},
			{"thighs", in.Measurements.Thighs},
		} {
			if check.value != nil && *check.value <= 0 {
				return model.Progress{}, fmt.Errorf("%s must be > 0", check.field)
			}
		}
	}

	tape := in.Measurements
	if emptyMeasurements(tape) {
		tape = nil
	}
	p := model.Progress{
		ID:           uuid.New().String(),
		Date:         orNow(in.Date),
		Weight:       weight,
		BodyFat:      in.BodyFat,
		Measurements: tape,
		Photos:       in.Photos,
	}
	if err := repo.SaveMeasurement(p); err != nil {
		return model.Progress{}, err
	}
	return p, nil
}

func emptyMeasurements(m *model.BodyMeasurements) bool {
	if m == nil {
		return true
	}
	return m.Chest == nil && m.Waist == nil && m.Hips == nil && m.Biceps == nil && m.Thighs == nil
}

// MeasurementsWithField filters to snapshots that carry the field, sorted
// ascending by date.
func MeasurementsWithField(measurements []model.Progress, field MetricField) []model.Progress {
	out := make([]model.Progress, 0, len(measurements))
	for _, m := range measurements {
		if hasField(m, field) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func hasField(m model.Progress, field MetricField) bool {
	switch field {
	case FieldWeight:
		return m.Weight != nil
	case FieldBodyFat:
		return m.BodyFat != nil
	case FieldMeasurements:
		return !emptyMeasurements(m.Measurements)
	case FieldPhotos:
		return len(m.Photos) > 0
	}
	return false
}

// AllMeasurements returns every snapshot, newest first.
func AllMeasurements(repo *store.Repository) ([]model.Progress, error) {
	measurements, err := repo.Measurements()
	if err != nil {
		return nil, err
	}
	sorted := make([]model.Progress, len(measurements))
	copy(sorted, measurements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted, nil
}

func DeleteMeasurement(repo *store.Repository, id string) error {
	measurements, err := repo.Measurements()
	if err != nil {
		return err
	}
	kept := make([]model.Progress, 0, len(measurements))
	for _, m := range measurements {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(measurements) {
		return fmt.Errorf("measurement %s not found", id)
	}
	return repo.ReplaceMeasurements(kept)
}

// Delta is the difference between the two most recent values of a field.
type Delta struct {
	Latest   float64
	Previous float64
	Change   float64
}

// MeasurementDelta computes latest minus previous across the snapshots
// carrying the field. Fewer than two qualifying entries means the delta is
// undefined and nil is returned; a zero change is a real result and must
// stay distinguishable from "no prior data".
func MeasurementDelta(measurements []model.Progress, field MetricField) *Delta {
	if field != FieldWeight && field != FieldBodyFat {
		return nil
	}
	qualifying := MeasurementsWithField(measurements, field)
	if len(qualifying) < 2 {
		return nil
	}
	latest := numericField(qualifying[len(qualifying)-1], field)
	previous := numericField(qualifying[len(qualifying)-2], field)
	return &Delta{Latest: latest, Previous: previous, Change: latest - previous}
}

func numericField(m model.Progress, field MetricField) float64 {
	switch field {
	case FieldWeight:
		return *m.Weight
	case FieldBodyFat:
		return *m.BodyFat
	}
	return 0
}

// Direction labels a delta by the domain convention rather than its sign:
// dropping weight or body fat reads as favorable. Presentation decides how
// to style the label.
type Direction string

const (
	DirectionFavorable   Direction = "favorable"
	DirectionUnfavorable Direction = "unfavorable"
	DirectionFlat        Direction = "flat"
)

func DeltaDirection(field MetricField, change float64) Direction {
	if change == 0 {
		return DirectionFlat
	}
	switch field {
	case FieldWeight, FieldBodyFat:
		if change < 0 {
			return DirectionFavorable
		}
		return DirectionUnfavorable
	}
	return DirectionFlat
}

// ToKg converts a weight to kilograms, the unit everything is stored in.
func ToKg(value float64, unit string) (float64, error) {
	if value <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		u = "kg"
	}
	switch u {
	case "kg":
		return value, nil
	case "lb", "lbs":
		return value * 0.45359237, nil
	default:
		return 0, fmt.Errorf("invalid weight unit %q (use kg or lb)", unit)
	}
}
