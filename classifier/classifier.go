package classifier

import (
	"strings"

	"go-wastewatch/catalog"
	"go-wastewatch/types"
)

// Fallback for material types missing from the catalog.
var defaultEntry = catalog.ClassificationEntry{
	Priority:        types.PriorityMedium,
	HazardLevel:     2,
	SpecialHandling: false,
}

var cleanupHours = map[types.Priority]int{
	types.PriorityCritical: 48,
	types.PriorityHigh:     24,
	types.PriorityMedium:   12,
	types.PriorityLow:      6,
}

// Classify maps a material type and free-text description to a severity
// classification. It is total: unknown types fall back to the MEDIUM default
// and there are no error paths.
func Classify(cat *catalog.Catalog, wasteType, description string) types.Classification {
	key := strings.ReplaceAll(strings.ToLower(wasteType), " ", "_")
	entry, ok := cat.Classifications[key]
	if !ok {
		entry = defaultEntry
	}

	// Keyword escalation always wins over the catalog row.
	lowered := strings.ToLower(description)
	for _, keyword := range cat.EscalationKeywords {
		if strings.Contains(lowered, keyword) {
			entry.Priority = types.PriorityCritical
			if entry.HazardLevel+1 < 5 {
				entry.HazardLevel = entry.HazardLevel + 1
			} else {
				entry.HazardLevel = 5
			}
			break
		}
	}

	return types.Classification{
		PrimaryType:             wasteType,
		Priority:                entry.Priority,
		HazardLevel:             entry.HazardLevel,
		RequiresSpecialHandling: entry.SpecialHandling,
		EstimatedCleanupHours:   estimateCleanupHours(entry.Priority),
		EnvironmentalRisk:       environmentalRisk(entry.HazardLevel),
	}
}

func estimateCleanupHours(priority types.Priority) int {
	if hours, ok := cleanupHours[priority]; ok {
		return hours
	}
	return 12
}

func environmentalRisk(hazardLevel int) types.RiskLevel {
	switch {
	case hazardLevel >= 4:
		return types.RiskHigh
	case hazardLevel >= 2:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}
