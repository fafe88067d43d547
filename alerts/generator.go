package alerts

import (
	"fmt"
	"time"

	"go-wastewatch/catalog"
	"go-wastewatch/types"
)

// Generate expands an alert level into one Alert per (country, recipient,
// channel) cell of the level's template. Levels without a template of their
// own (STANDARD, for one) borrow MEDIUM's audience but keep their level as
// the alert priority.
func Generate(cat *catalog.Catalog, incidentID, alertLevel string, affectedCountries []string, now time.Time) []types.Alert {
	template, ok := cat.AlertTemplates[alertLevel]
	if !ok {
		template = cat.AlertTemplates["MEDIUM"]
	}

	message := fmt.Sprintf(template.Message, incidentID)
	timestamp := now.UTC().Format(time.RFC3339)

	var generated []types.Alert
	for _, country := range affectedCountries {
		for _, recipient := range template.Recipients {
			for _, channel := range template.Channels {
				generated = append(generated, types.Alert{
					Country:       country,
					RecipientType: recipient,
					Channel:       channel,
					Message:       message,
					Priority:      types.Priority(alertLevel),
					Timestamp:     timestamp,
				})
			}
		}
	}
	return generated
}
