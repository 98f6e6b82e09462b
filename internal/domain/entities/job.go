package entities

import "github.com/volatiletech/null/v8"

// Job is one careers-page posting. ApplicationURL is nullable at the store
// layer; the admin editor is what enforces it as required.
type Job struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Department     string      `json:"department"`
	Location       string      `json:"location"`
	Type           string      `json:"type"`
	Description    null.String `json:"description"`
	ApplicationURL null.String `json:"applicationUrl"`
}
