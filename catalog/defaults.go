package catalog

import "go-wastewatch/types"

// Default returns the built-in reference datasets. Callers may overlay a
// YAML file on top via LoadFile.
func Default() *Catalog {
	return &Catalog{
		Classifications: map[string]ClassificationEntry{
			"chemical_hazardous":  {Priority: types.PriorityCritical, HazardLevel: 5, SpecialHandling: true},
			"medical_biological":  {Priority: types.PriorityHigh, HazardLevel: 4, SpecialHandling: true},
			"radioactive":         {Priority: types.PriorityCritical, HazardLevel: 5, SpecialHandling: true},
			"industrial_waste":    {Priority: types.PriorityHigh, HazardLevel: 3, SpecialHandling: true},
			"disaster_debris":     {Priority: types.PriorityMedium, HazardLevel: 2, SpecialHandling: false},
			"construction_debris": {Priority: types.PriorityLow, HazardLevel: 1, SpecialHandling: false},
		},
		EscalationKeywords: []string{"toxic", "chemical", "hazardous", "poison"},
		BorderRegions: []BorderRegion{
			{Countries: []string{"Bangladesh", "India"}, LatMin: 23.0, LatMax: 26.0, LngMin: 88.0, LngMax: 92.0},
			{Countries: []string{"United States", "Canada"}, LatMin: 48.0, LatMax: 50.0, LngMin: -125.0, LngMax: -95.0},
			{Countries: []string{"Germany", "Netherlands"}, LatMin: 51.0, LatMax: 53.0, LngMin: 6.0, LngMax: 8.0},
		},
		BorderReferences: []BorderReference{
			{Countries: []string{"Bangladesh", "India"}, Lat: 23.7, Lng: 90.4, Threshold: 0.5},
			{Countries: []string{"United States", "Canada"}, Lat: 49.0, Lng: -95.0, Threshold: 0.5},
			{Countries: []string{"Germany", "Netherlands"}, Lat: 51.8, Lng: 6.2, Threshold: 0.3},
		},
		SensitiveZones: []SensitiveZone{
			{Name: "Sundarbans Mangroves", Lat: 22.0, Lng: 89.0, Radius: 1.0, Sensitivity: "CRITICAL"},
			{Name: "Great Lakes Region", Lat: 45.0, Lng: -85.0, Radius: 2.0, Sensitivity: "HIGH"},
			{Name: "Rhine Delta", Lat: 52.0, Lng: 5.0, Radius: 0.5, Sensitivity: "HIGH"},
		},
		ReferenceCities: []ReferenceCity{
			{Lat: 23.8, Lng: 90.4, Density: "HIGH"},  // Dhaka
			{Lat: 45.5, Lng: -73.6, Density: "HIGH"}, // Montreal
			{Lat: 52.5, Lng: 13.4, Density: "HIGH"},  // Berlin
		},
		Agreements: map[string]types.BilateralAgreement{
			PairKey([]string{"Bangladesh", "India"}):        {Type: "Formal", ResponseTimeHours: 6, DataSharing: true},
			PairKey([]string{"United States", "Canada"}):    {Type: "Formal", ResponseTimeHours: 4, DataSharing: true},
			PairKey([]string{"Germany", "Netherlands"}):     {Type: "EU Framework", ResponseTimeHours: 3, DataSharing: true},
		},
		Teams: map[string][]types.Team{
			"Bangladesh": {
				{ID: "BD-HAZMAT-01", Jurisdiction: "Bangladesh", Specialization: "Chemical Response", Status: types.TeamAvailable, Capability: 9},
				{ID: "BD-FLOOD-02", Jurisdiction: "Bangladesh", Specialization: "Flood Response", Status: types.TeamAvailable, Capability: 8},
			},
			"India": {
				{ID: "IN-BORDER-01", Jurisdiction: "India", Specialization: "Cross-Border Ops", Status: types.TeamAvailable, Capability: 9},
				{ID: "IN-ENV-02", Jurisdiction: "India", Specialization: "Environmental", Status: types.TeamDeployed, Capability: 7},
			},
			"United States": {
				{ID: "US-HAZMAT-01", Jurisdiction: "United States", Specialization: "Chemical Response", Status: types.TeamAvailable, Capability: 10},
				{ID: "US-FLOOD-02", Jurisdiction: "United States", Specialization: "Flood Response", Status: types.TeamAvailable, Capability: 9},
			},
			"Canada": {
				{ID: "CA-COORD-01", Jurisdiction: "Canada", Specialization: "Coordination", Status: types.TeamAvailable, Capability: 8},
				{ID: "CA-ENV-02", Jurisdiction: "Canada", Specialization: "Environmental", Status: types.TeamAvailable, Capability: 8},
			},
			"Germany": {
				{ID: "DE-IND-01", Jurisdiction: "Germany", Specialization: "Industrial Cleanup", Status: types.TeamAvailable, Capability: 9},
				{ID: "DE-CHEM-02", Jurisdiction: "Germany", Specialization: "Chemical Response", Status: types.TeamAvailable, Capability: 9},
			},
			"Netherlands": {
				{ID: "NL-ENV-01", Jurisdiction: "Netherlands", Specialization: "Environmental", Status: types.TeamAvailable, Capability: 8},
				{ID: "NL-WATER-02", Jurisdiction: "Netherlands", Specialization: "Water Management", Status: types.TeamAvailable, Capability: 10},
			},
		},
		Specializations: map[string][]string{
			"Chemical Hazardous": {"Chemical Response", "Environmental"},
			"Medical Biological": {"Medical Response", "Environmental"},
			"Industrial Waste":   {"Industrial Cleanup", "Environmental"},
			"Disaster Debris":    {"Flood Response", "Construction"},
			"Radioactive":        {"Radiation Response", "Environmental"},
		},
		BaseEquipment: []string{"Communication Systems", "Safety Equipment", "Transportation"},
		SpecialEquipment: map[string][]string{
			"Chemical Hazardous": {"Chemical Suits", "Neutralization Agents", "Containment Systems"},
			"Medical Biological": {"Biohazard Suits", "Sterilization Equipment", "Medical Waste Containers"},
			"Industrial Waste":   {"Heavy Machinery", "Industrial Containers", "Filtration Systems"},
			"Disaster Debris":    {"Heavy Machinery", "Sorting Equipment", "Disposal Trucks"},
		},
		AlertTemplates: map[string]AlertTemplate{
			"CRITICAL": {
				Message:    "🚨 CRITICAL CROSS-BORDER INCIDENT: %s. Immediate coordination required.",
				Recipients: []string{"emergency_coordinators", "border_authorities", "environmental_agencies"},
				Channels:   []string{"SMS", "EMAIL", "PUSH", "RADIO"},
			},
			"HIGH": {
				Message:    "⚠️ HIGH PRIORITY INCIDENT: %s. Cross-border coordination initiated.",
				Recipients: []string{"emergency_coordinators", "environmental_agencies"},
				Channels:   []string{"SMS", "EMAIL", "PUSH"},
			},
			"MEDIUM": {
				Message:    "📋 INCIDENT ALERT: %s. Monitoring and coordination in progress.",
				Recipients: []string{"emergency_coordinators"},
				Channels:   []string{"EMAIL", "PUSH"},
			},
			"LOW": {
				Message:    "ℹ️ INCIDENT NOTIFICATION: %s. Standard response protocols activated.",
				Recipients: []string{"emergency_coordinators"},
				Channels:   []string{"EMAIL"},
			},
		},
	}
}
