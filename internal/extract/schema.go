package extract

import "tripdeck/constants"

// BuildDraftJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. It is embedded in the remote extraction prompt as the output
// contract and used locally to validate what comes back.
func BuildDraftJSONSchema() map[string]any {
	props := map[string]any{
		"type":               map[string]any{"type": "string", "enum": constants.BookingTypesAsStrings()},
		"title":              map[string]any{"type": "string"},
		"startDate":          map[string]any{"type": "string"},
		"endDate":            map[string]any{"type": "string"},
		"location":           map[string]any{"type": "string"},
		"description":        map[string]any{"type": "string"},
		"confirmationNumber": map[string]any{"type": "string"},
		"from":               map[string]any{"type": "string"},
		"to":                 map[string]any{"type": "string"},
		"airline":            map[string]any{"type": "string"},
		"flightNumber":       map[string]any{"type": "string"},
		"departureTime":      map[string]any{"type": "string"},
		"arrivalTime":        map[string]any{"type": "string"},
	}

	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   []string{"type"},
	}
}
