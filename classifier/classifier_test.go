package classifier

import (
	"testing"

	"go-wastewatch/catalog"
	"go-wastewatch/types"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCatalogRows(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		wasteType string
		priority  types.Priority
		hazard    int
		special   bool
		cleanup   int
		risk      types.RiskLevel
	}{
		{"chemical_hazardous", types.PriorityCritical, 5, true, 48, types.RiskHigh},
		{"medical_biological", types.PriorityHigh, 4, true, 24, types.RiskHigh},
		{"radioactive", types.PriorityCritical, 5, true, 48, types.RiskHigh},
		{"industrial_waste", types.PriorityHigh, 3, true, 24, types.RiskMedium},
		{"disaster_debris", types.PriorityMedium, 2, false, 12, types.RiskMedium},
		{"construction_debris", types.PriorityLow, 1, false, 6, types.RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.wasteType, func(t *testing.T) {
			c := Classify(cat, tt.wasteType, "routine debris")
			assert.Equal(t, tt.priority, c.Priority)
			assert.Equal(t, tt.hazard, c.HazardLevel)
			assert.Equal(t, tt.special, c.RequiresSpecialHandling)
			assert.Equal(t, tt.cleanup, c.EstimatedCleanupHours)
			assert.Equal(t, tt.risk, c.EnvironmentalRisk)
			assert.Equal(t, tt.wasteType, c.PrimaryType)
		})
	}
}

func TestClassifyNormalizesType(t *testing.T) {
	cat := catalog.Default()
	c := Classify(cat, "Chemical Hazardous", "spill near plant")
	assert.Equal(t, types.PriorityCritical, c.Priority)
	assert.Equal(t, 5, c.HazardLevel)
	assert.Equal(t, "Chemical Hazardous", c.PrimaryType)
}

func TestClassifyUnknownTypeDefaults(t *testing.T) {
	cat := catalog.Default()
	c := Classify(cat, "mystery_goop", "")
	assert.Equal(t, types.PriorityMedium, c.Priority)
	assert.Equal(t, 2, c.HazardLevel)
	assert.False(t, c.RequiresSpecialHandling)
	assert.Equal(t, 12, c.EstimatedCleanupHours)
	assert.Equal(t, types.RiskMedium, c.EnvironmentalRisk)
}

func TestClassifyKeywordEscalation(t *testing.T) {
	cat := catalog.Default()

	// LOW material escalates to CRITICAL, hazard bumps 1 -> 2.
	c := Classify(cat, "construction_debris", "contains toxic sludge")
	assert.Equal(t, types.PriorityCritical, c.Priority)
	assert.Equal(t, 2, c.HazardLevel)

	// Hazard is capped at 5 even when already maxed.
	c = Classify(cat, "chemical_hazardous", "highly hazardous chemical leak")
	assert.Equal(t, types.PriorityCritical, c.Priority)
	assert.Equal(t, 5, c.HazardLevel)

	// Keyword match is case-insensitive substring.
	c = Classify(cat, "disaster_debris", "POISONOUS runoff reported")
	assert.Equal(t, types.PriorityCritical, c.Priority)
	assert.Equal(t, 3, c.HazardLevel)
}

func TestClassifyHazardBounds(t *testing.T) {
	cat := catalog.Default()
	wasteTypes := []string{
		"chemical_hazardous", "medical_biological", "radioactive",
		"industrial_waste", "disaster_debris", "construction_debris", "unknown",
	}
	descriptions := []string{"", "toxic chemical hazardous poison", "fine"}

	for _, wt := range wasteTypes {
		for _, desc := range descriptions {
			c := Classify(cat, wt, desc)
			assert.GreaterOrEqual(t, c.HazardLevel, 1, "%s / %q", wt, desc)
			assert.LessOrEqual(t, c.HazardLevel, 5, "%s / %q", wt, desc)
		}
	}
}
