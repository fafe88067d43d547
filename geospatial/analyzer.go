package geospatial

import (
	"math"
	"strings"

	"go-wastewatch/catalog"
	"go-wastewatch/types"
)

// Analyze derives every geospatial fact for an incident location. All
// branches are total; a zero-value Location analyzes as 0,0.
func Analyze(cat *catalog.Catalog, loc types.Location) types.GeoAnalysis {
	return types.GeoAnalysis{
		Location:      AnalyzeLocation(cat, loc),
		Borders:       CheckBorderProximity(cat, loc.Latitude, loc.Longitude),
		Sensitivity:   AssessSensitivity(cat, loc.Latitude, loc.Longitude),
		Accessibility: AssessAccessibility(loc),
		WeatherImpact: AssessWeatherImpact(loc.Latitude),
	}
}

func AnalyzeLocation(cat *catalog.Catalog, loc types.Location) types.LocationAnalysis {
	country := loc.Country
	if country == "" {
		country = "Unknown"
	}
	region := loc.Region
	if region == "" {
		region = "Unknown"
	}
	return types.LocationAnalysis{
		Coordinates:       types.Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude},
		Country:           country,
		Region:            region,
		TerrainType:       TerrainType(loc.Latitude),
		PopulationDensity: PopulationDensity(cat, loc.Latitude, loc.Longitude),
		Infrastructure:    "GOOD",
	}
}

func TerrainType(lat float64) string {
	switch {
	case math.Abs(lat) > 60:
		return "ARCTIC"
	case math.Abs(lat) < 23.5:
		return "TROPICAL"
	default:
		return "TEMPERATE"
	}
}

// PopulationDensity returns the density tag of the first reference city
// within 0.5 degrees, defaulting to MEDIUM.
func PopulationDensity(cat *catalog.Catalog, lat, lng float64) string {
	for _, city := range cat.ReferenceCities {
		if distance(lat, lng, city.Lat, city.Lng) < 0.5 {
			return city.Density
		}
	}
	return "MEDIUM"
}

// CheckBorderProximity scans every border reference and reports all matches,
// not just the nearest one.
func CheckBorderProximity(cat *catalog.Catalog, lat, lng float64) types.BorderProximity {
	var matches []types.BorderMatch
	for _, border := range cat.BorderReferences {
		d := distance(lat, lng, border.Lat, border.Lng)
		if d <= border.Threshold {
			matches = append(matches, types.BorderMatch{
				Countries:       border.Countries,
				DistanceDegrees: d,
				Type:            "LAND_BORDER",
			})
		}
	}
	risk := types.RiskLow
	if len(matches) > 0 {
		risk = types.RiskHigh
	}
	return types.BorderProximity{
		NearBorder:      len(matches) > 0,
		NearestBorders:  matches,
		CrossBorderRisk: risk,
	}
}

// AssessSensitivity scans the sensitive zones in declared order and returns
// the first zone containing the point. Ordered scan, not closest match.
func AssessSensitivity(cat *catalog.Catalog, lat, lng float64) types.EnvironmentalSensitivity {
	for _, zone := range cat.SensitiveZones {
		if distance(lat, lng, zone.Lat, zone.Lng) <= zone.Radius {
			return types.EnvironmentalSensitivity{
				SensitivityLevel:         zone.Sensitivity,
				ProtectedArea:            zone.Name,
				SpecialProtocolsRequired: true,
			}
		}
	}
	return types.EnvironmentalSensitivity{SensitivityLevel: "STANDARD"}
}

func AssessAccessibility(loc types.Location) string {
	if math.Abs(loc.Latitude) > 60 {
		return "DIFFICULT"
	}
	if strings.Contains(strings.ToLower(loc.Terrain), "water") {
		return "WATER_ACCESS_REQUIRED"
	}
	return "ACCESSIBLE"
}

func AssessWeatherImpact(lat float64) string {
	abs := math.Abs(lat)
	switch {
	case abs > 50:
		return "SEVERE_WEATHER_RISK"
	case abs >= 20 && abs <= 35:
		return "MODERATE_WEATHER_RISK"
	default:
		return "MINIMAL_WEATHER_RISK"
	}
}

// CheckCrossBorder runs the intake-time bounding-box test that decides
// whether the incident pulls a second country into scope.
func CheckCrossBorder(cat *catalog.Catalog, loc types.Location) types.CrossBorderCheck {
	for _, region := range cat.BorderRegions {
		if region.LatMin <= loc.Latitude && loc.Latitude <= region.LatMax &&
			region.LngMin <= loc.Longitude && loc.Longitude <= region.LngMax {
			return types.CrossBorderCheck{
				RequiresCoordination: true,
				Countries:            region.Countries,
				BorderProximity:      true,
			}
		}
	}
	country := loc.Country
	if country == "" {
		country = "Unknown"
	}
	return types.CrossBorderCheck{
		RequiresCoordination: false,
		Countries:            []string{country},
	}
}

// distance is a flat Euclidean approximation in latitude/longitude degrees.
// Good enough for threshold checks against the reference lists; this is not
// geodesic distance.
func distance(lat1, lng1, lat2, lng2 float64) float64 {
	return math.Sqrt((lat2-lat1)*(lat2-lat1) + (lng2-lng1)*(lng2-lng1))
}
