package mistral

import "strings"

// buildSystemPrompt describes the target field schema. The wording mirrors
// the instruction the booking form expects: a flat JSON object, ISO dates,
// flight subfields only when the document is a flight confirmation.
func buildSystemPrompt() string {
	parts := []string{
		"You are an assistant that extracts booking information from travel confirmation documents.",
		"Return ONLY a JSON object, no prose.",
		"Extract these fields when available:",
		"type (one of: flight, hotel, car, activity, other),",
		"title (short descriptive label),",
		"startDate and endDate (ISO-8601),",
		"location, description, confirmationNumber.",
		"For flight bookings also extract: from, to, airline, flightNumber, departureTime, arrivalTime.",
		"Omit fields that are not present in the document; never invent values and never output null.",
		"The document may be written in English or Swedish.",
	}
	return strings.Join(parts, " ")
}

const maxPromptText = 8000

// buildUserPrompt embeds the acquired text, truncated to keep the request
// within a single completion window.
func buildUserPrompt(text string) string {
	if len(text) > maxPromptText {
		text = text[:maxPromptText]
	}
	var b strings.Builder
	b.WriteString("Analyze the following text from a booking PDF and extract the booking information:\n\n")
	b.WriteString(text)
	return b.String()
}
