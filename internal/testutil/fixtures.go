// Package testutil provides utilities for testing.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/sopgen/sopgen/internal/pipeline"
	"github.com/sopgen/sopgen/internal/services/masterdata"
)

// FixtureStart is the first simulated day of fixture runs.
var FixtureStart = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

// FixtureConfig returns a run configuration small enough for unit tests:
// a 30 day horizon over a handful of products and locations.
func FixtureConfig(seed int64, overrides ...func(*pipeline.Config)) pipeline.Config {
	cfg := pipeline.Config{
		Seed:                seed,
		StartDate:           FixtureStart,
		HorizonDays:         30,
		TimeDimensionMonths: 4,
		Forecasts:           10,
		Counts: masterdata.Counts{
			Products:       5,
			Locations:      4,
			Customers:      3,
			Suppliers:      3,
			Resources:      2,
			TransportLanes: 6,
		},
	}

	for _, override := range overrides {
		override(&cfg)
	}

	return cfg
}

// FixtureDataset generates the dataset for FixtureConfig(seed).
func FixtureDataset(t *testing.T, seed int64, overrides ...func(*pipeline.Config)) *pipeline.Dataset {
	t.Helper()

	ds, err := pipeline.NewGenerator(FixtureConfig(seed, overrides...)).Generate(context.Background())
	if err != nil {
		t.Fatalf("generating fixture dataset: %v", err)
	}
	return ds
}
