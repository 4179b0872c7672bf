package production

import (
	"log/slog"

	"github.com/sopgen/sopgen/internal/models"
	"github.com/sopgen/sopgen/internal/util"
)

// MaxFallbackPlants caps how many locations stand in for plants when the
// network has none.
const MaxFallbackPlants = 3

// Assignment is the set of locations that may host production.
type Assignment struct {
	Plants []models.Location

	// Fallback is set when no location is a plant and Plants was sampled
	// from all locations instead.
	Fallback bool
}

// AssignPlants returns the plant locations in table order. When none exist it
// samples up to MaxFallbackPlants distinct locations from s and marks the
// assignment as a fallback.
func AssignPlants(s *util.Sampler, locations []models.Location) Assignment {
	var plants []models.Location
	for _, l := range locations {
		if l.IsPlant() {
			plants = append(plants, l)
		}
	}
	if len(plants) > 0 {
		return Assignment{Plants: plants}
	}

	for _, idx := range s.Distinct(len(locations), min(MaxFallbackPlants, len(locations))) {
		plants = append(plants, locations[idx])
	}
	slog.Warn("no plant locations, sampling fallback production sites",
		"locations", len(locations),
		"fallback_plants", len(plants),
	)
	return Assignment{Plants: plants, Fallback: true}
}

// IDs returns the ids of the assigned plants.
func (a Assignment) IDs() []string {
	ids := make([]string, len(a.Plants))
	for i, p := range a.Plants {
		ids[i] = p.ID
	}
	return ids
}
