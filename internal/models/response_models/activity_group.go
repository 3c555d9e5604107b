package response_models

import "reactivities/internal/models/domain_models"

// ActivityGroup is one row of the date-grouped projection: a calendar date
// (UTC, "2006-01-02") and the activities falling on it, ordered by their
// full timestamps.
type ActivityGroup struct {
	Date       string                    `json:"date"`
	Activities []*domain_models.Activity `json:"activities"`
}
