package types

type Coordinates struct {
	Latitude  float64 `firestore:"latitude" json:"latitude"`
	Longitude float64 `firestore:"longitude" json:"longitude"`
}

// LocationAnalysis holds the derived characteristics of an incident site.
type LocationAnalysis struct {
	Coordinates       Coordinates `firestore:"coordinates" json:"coordinates"`
	Country           string      `firestore:"country" json:"country"`
	Region            string      `firestore:"region" json:"region"`
	TerrainType       string      `firestore:"terrainType" json:"terrain_type"`
	PopulationDensity string      `firestore:"populationDensity" json:"population_density"`
	Infrastructure    string      `firestore:"infrastructureAccess" json:"infrastructure_access"`
}

// BorderMatch records one border reference within range of the point.
type BorderMatch struct {
	Countries       []string `firestore:"countries" json:"countries"`
	DistanceDegrees float64  `firestore:"distanceDegrees" json:"distance_degrees"`
	Type            string   `firestore:"type" json:"type"`
}

type BorderProximity struct {
	NearBorder      bool          `firestore:"nearBorder" json:"near_border"`
	NearestBorders  []BorderMatch `firestore:"nearestBorders" json:"nearest_borders"`
	CrossBorderRisk RiskLevel     `firestore:"crossBorderRisk" json:"cross_border_risk"`
}

type EnvironmentalSensitivity struct {
	SensitivityLevel         string `firestore:"sensitivityLevel" json:"sensitivity_level"`
	ProtectedArea            string `firestore:"protectedArea,omitempty" json:"protected_area,omitempty"`
	SpecialProtocolsRequired bool   `firestore:"specialProtocolsRequired" json:"special_protocols_required"`
}

// CrossBorderCheck is the intake-time bounding-box test that decides whether
// an incident pulls in more than one country.
type CrossBorderCheck struct {
	RequiresCoordination bool     `firestore:"requiresCoordination" json:"requires_coordination"`
	Countries            []string `firestore:"countries" json:"countries"`
	BorderProximity      bool     `firestore:"borderProximity" json:"border_proximity"`
}

// GeoAnalysis bundles every geospatial fact derived for one incident.
type GeoAnalysis struct {
	Location      LocationAnalysis         `firestore:"locationAnalysis" json:"location_analysis"`
	Borders       BorderProximity          `firestore:"borderProximity" json:"border_proximity"`
	Sensitivity   EnvironmentalSensitivity `firestore:"environmentalSensitivity" json:"environmental_sensitivity"`
	Accessibility string                   `firestore:"accessibility" json:"accessibility"`
	WeatherImpact string                   `firestore:"weatherImpact" json:"weather_impact"`
}
