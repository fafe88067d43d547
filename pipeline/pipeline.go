package pipeline

import (
	"fmt"
	"time"

	"go-wastewatch/alerts"
	"go-wastewatch/catalog"
	"go-wastewatch/classifier"
	"go-wastewatch/coordination"
	"go-wastewatch/geospatial"
	"go-wastewatch/optimizer"
	"go-wastewatch/scheduler"
	"go-wastewatch/types"
)

// InputShapeError is the one error the core may raise: a mandatory field is
// missing from the submission. Everything else resolves to documented
// defaults.
type InputShapeError struct {
	Field string
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Evaluation is the full decision produced for one incident. Every field is
// a pure function of the incident, the catalog, and the evaluation time.
type Evaluation struct {
	Incident       types.Incident           `json:"incident"`
	Classification types.Classification     `json:"classification"`
	Geo            types.GeoAnalysis        `json:"geo_analysis"`
	CrossBorder    types.CrossBorderCheck   `json:"cross_border"`
	Coordination   types.Coordination       `json:"coordination"`
	Optimization   types.OptimizationResult `json:"optimization"`
	Plan           types.DeploymentPlan     `json:"deployment_plan"`
	Alerts         []types.Alert            `json:"alerts"`
}

// Evaluate runs the whole decision pipeline: classify, geoanalyze,
// coordinate, optimize, schedule, fan out. It performs no I/O and never
// blocks; persistence and delivery happen in the surrounding layer.
func Evaluate(cat *catalog.Catalog, incident types.Incident, now time.Time) (Evaluation, error) {
	if incident.ID == "" {
		return Evaluation{}, &InputShapeError{Field: "incident_id"}
	}

	classification := classifier.Classify(cat, incident.WasteType, incident.Description)
	geo := geospatial.Analyze(cat, incident.Location)
	crossBorder := geospatial.CheckCrossBorder(cat, incident.Location)

	coord := coordination.Coordinate(cat, incident.ID, crossBorder.Countries, classification.Priority, now)

	pool := cat.AvailableTeams(crossBorder.Countries)
	optimization := optimizer.Optimize(cat, classification, pool)
	plan := scheduler.Plan(optimization)

	// The coordination level doubles as the alert level; STANDARD has no
	// template of its own and borrows MEDIUM's audience.
	fanout := alerts.Generate(cat, incident.ID, string(coord.Level), crossBorder.Countries, now)

	incident.Status = types.StatusClassified

	return Evaluation{
		Incident:       incident,
		Classification: classification,
		Geo:            geo,
		CrossBorder:    crossBorder,
		Coordination:   coord,
		Optimization:   optimization,
		Plan:           plan,
		Alerts:         fanout,
	}, nil
}

// NewIncidentID builds the INC-<UTC timestamp> identifier used when a
// submission arrives without one.
func NewIncidentID(now time.Time) string {
	return "INC-" + now.UTC().Format("20060102150405")
}
