package thrive

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shrek198/thrive-well-tracker/internal/model"
	"github.com/shrek198/thrive-well-tracker/internal/service"
	"github.com/shrek198/thrive-well-tracker/internal/store"
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Record and review body measurements",
}

var (
	measureDate    string
	measureWeight  float64
	measureUnit    string
	measureBodyFat float64
	measureChest   float64
	measureWaist   float64
	measureHips    float64
	measureBiceps  float64
	measureThighs  float64
	measurePhotos  []string
)

var measureRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a progress snapshot",
	Long:  "Record a progress snapshot. Provide at least one of weight, body fat, tape measurements or photos. Weight defaults to kg; pass --unit lb to convert.",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrNow(measureDate)
		if err != nil {
			return err
		}
		tape := &model.BodyMeasurements{
			Chest:  optionalFloat(measureChest),
			Waist:  optionalFloat(measureWaist),
			Hips:   optionalFloat(measureHips),
			Biceps: optionalFloat(measureBiceps),
			Thighs: optionalFloat(measureThighs),
		}
		return withRepo(func(repo *store.Repository) error {
			p, err := service.RecordMeasurement(repo, service.RecordMeasurementInput{
				Date:         date,
				Weight:       optionalFloat(measureWeight),
				WeightUnit:   measureUnit,
				BodyFat:      optionalFloat(measureBodyFat),
				Measurements: tape,
				Photos:       measurePhotos,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded measurement %s for %s\n", p.ID, p.Date.Format("2006-01-02"))
			return nil
		})
	},
}

var measureListField string

var measureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List progress snapshots, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			measurements, err := service.AllMeasurements(repo)
			if err != nil {
				return err
			}
			if measureListField != "" {
				field, err := service.ParseMetricField(measureListField)
				if err != nil {
					return err
				}
				filtered := service.MeasurementsWithField(measurements, field)
				// MeasurementsWithField sorts ascending; flip back to newest first.
				for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
					filtered[i], filtered[j] = filtered[j], filtered[i]
				}
				measurements = filtered
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tWEIGHT\tBODY FAT\tTAPE\tPHOTOS")
			for _, m := range measurements {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%t\t%d\n",
					m.ID, m.Date.Format("2006-01-02"),
					formatPtr(m.Weight), formatPtr(m.BodyFat),
					m.Measurements != nil, len(m.Photos))
			}
			return nil
		})
	},
}

var measureDeltaField string

var measureDeltaCmd = &cobra.Command{
	Use:   "delta",
	Short: "Show the change between the two most recent snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := service.ParseMetricField(measureDeltaField)
		if err != nil {
			return err
		}
		if field != service.FieldWeight && field != service.FieldBodyFat {
			return fmt.Errorf("delta supports weight and bodyFat only")
		}
		return withRepo(func(repo *store.Repository) error {
			measurements, err := repo.Measurements()
			if err != nil {
				return err
			}
			delta := service.MeasurementDelta(measurements, field)
			if delta == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not enough data: record at least two snapshots with this field.")
				return nil
			}
			change := strconv.FormatFloat(delta.Change, 'f', -1, 64)
			if delta.Change > 0 {
				change = "+" + change
			}
			switch service.DeltaDirection(field, delta.Change) {
			case service.DirectionFavorable:
				change = color.GreenString(change)
			case service.DirectionUnfavorable:
				change = color.RedString(change)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (latest %s, previous %s)\n",
				field, change,
				strconv.FormatFloat(delta.Latest, 'f', -1, 64),
				strconv.FormatFloat(delta.Previous, 'f', -1, 64))
			return nil
		})
	},
}

var measureDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a progress snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo *store.Repository) error {
			if err := service.DeleteMeasurement(repo, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted measurement %s\n", args[0])
			return nil
		})
	},
}

func formatPtr(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func init() {
	rootCmd.AddCommand(measureCmd)
	measureCmd.AddCommand(measureRecordCmd, measureListCmd, measureDeltaCmd, measureDeleteCmd)

	measureRecordCmd.Flags().StringVar(&measureDate, "date", "", "Date YYYY-MM-DD (default today)")
	measureRecordCmd.Flags().Float64Var(&measureWeight, "weight", -1, "Weight")
	measureRecordCmd.Flags().StringVar(&measureUnit, "unit", "kg", "Weight unit: kg or lb")
	measureRecordCmd.Flags().Float64Var(&measureBodyFat, "body-fat", -1, "Body fat percentage")
	measureRecordCmd.Flags().Float64Var(&measureChest, "chest", -1, "Chest (cm)")
	measureRecordCmd.Flags().Float64Var(&measureWaist, "waist", -1, "Waist (cm)")
	measureRecordCmd.Flags().Float64Var(&measureHips, "hips", -1, "Hips (cm)")
	measureRecordCmd.Flags().Float64Var(&measureBiceps, "biceps", -1, "Biceps (cm)")
	measureRecordCmd.Flags().Float64Var(&measureThighs, "thighs", -1, "Thighs (cm)")
	measureRecordCmd.Flags().StringArrayVar(&measurePhotos, "photo", nil, "Progress photo path or URL (repeatable)")

	measureListCmd.Flags().StringVar(&measureListField, "field", "", "Only snapshots carrying this field: weight, bodyFat, measurements or photos")

	measureDeltaCmd.Flags().StringVar(&measureDeltaField, "field", "weight", "Field to diff: weight or bodyFat")
}
