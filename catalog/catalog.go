package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go-wastewatch/types"

	"gopkg.in/yaml.v3"
)

// Catalog carries every static reference dataset the decision pipeline reads.
// It is loaded once and shared read-only across evaluations; components take
// it as a parameter so tests can substitute fixtures.
type Catalog struct {
	Classifications    map[string]ClassificationEntry      `yaml:"classifications"`
	EscalationKeywords []string                            `yaml:"escalation_keywords"`
	BorderRegions      []BorderRegion                      `yaml:"border_regions"`
	BorderReferences   []BorderReference                   `yaml:"border_references"`
	SensitiveZones     []SensitiveZone                     `yaml:"sensitive_zones"`
	ReferenceCities    []ReferenceCity                     `yaml:"reference_cities"`
	Agreements         map[string]types.BilateralAgreement `yaml:"agreements"`
	Teams              map[string][]types.Team             `yaml:"teams"`
	Specializations    map[string][]string                 `yaml:"specializations"`
	BaseEquipment      []string                            `yaml:"base_equipment"`
	SpecialEquipment   map[string][]string                 `yaml:"special_equipment"`
	AlertTemplates     map[string]AlertTemplate            `yaml:"alert_templates"`
}

type ClassificationEntry struct {
	Priority        types.Priority `yaml:"priority"`
	HazardLevel     int            `yaml:"hazard_level"`
	SpecialHandling bool           `yaml:"special_handling"`
}

// BorderRegion is an intake-time bounding box; a point inside it implies the
// incident touches both countries.
type BorderRegion struct {
	Countries []string `yaml:"countries"`
	LatMin    float64  `yaml:"lat_min"`
	LatMax    float64  `yaml:"lat_max"`
	LngMin    float64  `yaml:"lng_min"`
	LngMax    float64  `yaml:"lng_max"`
}

// BorderReference is a border crossing point with a proximity threshold in
// degrees.
type BorderReference struct {
	Countries []string `yaml:"countries"`
	Lat       float64  `yaml:"lat"`
	Lng       float64  `yaml:"lng"`
	Threshold float64  `yaml:"threshold"`
}

type SensitiveZone struct {
	Name        string  `yaml:"name"`
	Lat         float64 `yaml:"lat"`
	Lng         float64 `yaml:"lng"`
	Radius      float64 `yaml:"radius"`
	Sensitivity string  `yaml:"sensitivity"`
}

type ReferenceCity struct {
	Lat     float64 `yaml:"lat"`
	Lng     float64 `yaml:"lng"`
	Density string  `yaml:"density"`
}

// AlertTemplate drives the fan-out for one alert level. Message is a
// fmt format string taking the incident id.
type AlertTemplate struct {
	Message    string   `yaml:"message"`
	Recipients []string `yaml:"recipients"`
	Channels   []string `yaml:"channels"`
}

// PairKey canonicalizes a two-country set into the agreement-table key.
func PairKey(countries []string) string {
	sorted := make([]string, len(countries))
	copy(sorted, countries)
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}

// LoadFile reads a YAML overlay and replaces any section it defines,
// leaving the rest of the catalog untouched.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading catalog file %s: %w", path, err)
	}
	var overlay Catalog
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	c.merge(&overlay)
	return nil
}

func (c *Catalog) merge(o *Catalog) {
	if len(o.Classifications) > 0 {
		c.Classifications = o.Classifications
	}
	if len(o.EscalationKeywords) > 0 {
		c.EscalationKeywords = o.EscalationKeywords
	}
	if len(o.BorderRegions) > 0 {
		c.BorderRegions = o.BorderRegions
	}
	if len(o.BorderReferences) > 0 {
		c.BorderReferences = o.BorderReferences
	}
	if len(o.SensitiveZones) > 0 {
		c.SensitiveZones = o.SensitiveZones
	}
	if len(o.ReferenceCities) > 0 {
		c.ReferenceCities = o.ReferenceCities
	}
	if len(o.Agreements) > 0 {
		c.Agreements = o.Agreements
	}
	if len(o.Teams) > 0 {
		c.Teams = o.Teams
	}
	if len(o.Specializations) > 0 {
		c.Specializations = o.Specializations
	}
	if len(o.BaseEquipment) > 0 {
		c.BaseEquipment = o.BaseEquipment
	}
	if len(o.SpecialEquipment) > 0 {
		c.SpecialEquipment = o.SpecialEquipment
	}
	if len(o.AlertTemplates) > 0 {
		c.AlertTemplates = o.AlertTemplates
	}
}

// AvailableTeams returns the AVAILABLE teams registered for the given
// countries, in registry order.
func (c *Catalog) AvailableTeams(countries []string) []types.Team {
	var available []types.Team
	for _, country := range countries {
		for _, team := range c.Teams[country] {
			if team.Status == types.TeamAvailable {
				available = append(available, team)
			}
		}
	}
	return available
}
