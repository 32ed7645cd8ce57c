package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shrek198/thrive-well-tracker/internal/model"
)

type SortKey string

const (
	SortRecent   SortKey = "recent"
	SortOldest   SortKey = "oldest"
	SortShortest SortKey = "duration-shortest"
	SortLongest  SortKey = "duration-longest"
)

type DurationBucket string

const (
	BucketUnder15 DurationBucket = "<15"
	Bucket15To30  DurationBucket = "15-30"
	Bucket30To60  DurationBucket = "30-60"
	BucketOver60  DurationBucket = ">60"
)

func (b DurationBucket) contains(minutes int) bool {
	switch b {
	case BucketUnder15:
		return minutes < 15
	case Bucket15To30:
		return minutes >= 15 && minutes <= 30
	case Bucket30To60:
		return minutes > 30 && minutes <= 60
	case BucketOver60:
		return minutes > 60
	}
	return false
}

// FilterWorkouts applies type and duration-bucket filters, then a stable
// sort. Empty filter sets pass everything; bucket membership is OR'd and
// the two filters are AND'd. The input slice is never mutated and an
// unknown sort key falls back to newest first.
func FilterWorkouts(workouts []model.Workout, types []model.WorkoutType, buckets []DurationBucket, sortBy SortKey) []model.Workout {
	filtered := make([]model.Workout, 0, len(workouts))
	for _, w := range workouts {
		if len(types) > 0 && !containsType(types, w.Type) {
			continue
		}
		if len(buckets) > 0 && !inAnyBucket(buckets, w.Duration) {
			continue
		}
		filtered = append(filtered, w)
	}

	switch sortBy {
	case SortOldest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Date.Before(filtered[j].Date)
		})
	case SortShortest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Duration < filtered[j].Duration
		})
	case SortLongest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Duration > filtered[j].Duration
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Date.After(filtered[j].Date)
		})
	}
	return filtered
}

func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.TrimSpace(s)) {
	case SortRecent, "":
		return SortRecent, nil
	case SortOldest:
		return SortOldest, nil
	case SortShortest:
		return SortShortest, nil
	case SortLongest:
		return SortLongest, nil
	}
	return "", fmt.Errorf("invalid sort key %q (use recent, oldest, duration-shortest or duration-longest)", s)
}

func ParseDurationBucket(s string) (DurationBucket, error) {
	switch DurationBucket(strings.TrimSpace(s)) {
	case BucketUnder15:
		return BucketUnder15, nil
	case Bucket15To30:
		return Bucket15To30, nil
	case Bucket30To60:
		return Bucket30To60, nil
	case BucketOver60:
		return BucketOver60, nil
	}
	return "", fmt.Errorf("invalid duration bucket %q (use <15, 15-30, 30-60 or >60)", s)
}

func containsType(types []model.WorkoutType, t model.WorkoutType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

func inAnyBucket(buckets []DurationBucket, minutes int) bool {
	for _, b := range buckets {
		if b.contains(minutes) {
			return true
		}
	}
	return false
}
