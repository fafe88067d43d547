package coordination

import (
	"fmt"
	"time"

	"go-wastewatch/catalog"
	"go-wastewatch/types"
)

// NoAgreement is the default for country pairs without a bilateral agreement
// on file, and for affected sets that are not exactly two countries.
var NoAgreement = types.BilateralAgreement{
	Type:              "None",
	ResponseTimeHours: 24,
	DataSharing:       false,
}

// LookupAgreement canonicalizes the country set (sorted) and looks it up in
// the static agreement table.
func LookupAgreement(cat *catalog.Catalog, countries []string) types.BilateralAgreement {
	if agreement, ok := cat.Agreements[catalog.PairKey(countries)]; ok {
		return agreement
	}
	return NoAgreement
}

// DetermineLevel evaluates the coordination rule chain in order; the first
// matching rule wins. HIGH priority without data sharing falls through to
// STANDARD.
func DetermineLevel(priority types.Priority, agreement types.BilateralAgreement) types.CoordinationLevel {
	if priority == types.PriorityCritical {
		return types.CoordinationCritical
	}
	if priority == types.PriorityHigh && agreement.DataSharing {
		return types.CoordinationHigh
	}
	return types.CoordinationStandard
}

// Coordinate produces the full cross-border decision record for an incident.
func Coordinate(cat *catalog.Catalog, incidentID string, countries []string, priority types.Priority, now time.Time) types.Coordination {
	agreement := LookupAgreement(cat, countries)
	return types.Coordination{
		CoordinationID:    fmt.Sprintf("COORD-%s", incidentID),
		IncidentID:        incidentID,
		AffectedCountries: countries,
		Level:             DetermineLevel(priority, agreement),
		Agreement:         agreement,
		Status:            "INITIATED",
		CreatedAt:         now.UTC().Format(time.RFC3339),
	}
}
