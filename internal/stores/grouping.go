package stores

import (
	"sort"

	"reactivities/internal/models/domain_models"
	"reactivities/internal/models/response_models"
	"reactivities/pkg/utils"
)

// GroupActivitiesByDate projects a registry snapshot into ordered
// (calendar date, activities) rows: a stable ascending sort by full
// timestamp, then a partition by UTC day. It is a pure function; the view
// is recomputed from scratch on every read so it can never go stale.
func GroupActivitiesByDate(activities []*domain_models.Activity) []response_models.ActivityGroup {
	sorted := make([]*domain_models.Activity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var groups []response_models.ActivityGroup
	for _, activity := range sorted {
		key := utils.DateKey(activity.Date)
		if n := len(groups); n > 0 && groups[n-1].Date == key {
			groups[n-1].Activities = append(groups[n-1].Activities, activity)
			continue
		}
		groups = append(groups, response_models.ActivityGroup{
			Date:       key,
			Activities: []*domain_models.Activity{activity},
		})
	}
	return groups
}
