package service_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/shrek198/thrive-well-tracker/internal/store"
)

func newTestRepo(t *testing.T) *store.Repository {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return store.NewRepository(store.NewMemoryKV(), log)
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
