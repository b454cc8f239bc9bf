package controllers

import "clinicportal-service/internal/pkg/constvars"

// listMessage annotates a success message when fixture data was served, so
// clients can surface the degraded mode without parsing the payload.
func listMessage(message string, fixture bool) string {
	if fixture {
		return message + " (" + constvars.FixtureDataNotice + ")"
	}
	return message
}
