package booking

import (
	"sort"

	"github.com/fadebook/fadebook-api/internal/models"
)

// DiffServiceIDs computes the writes needed to make a barber's stored
// service links equal the selected set. Set semantics: input ordering is
// irrelevant and duplicates collapse. Results come back sorted so callers
// issue writes in a deterministic order.
func DiffServiceIDs(current, selected []uint) (toAdd, toRemove []uint) {
	currentSet := make(map[uint]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}

	selectedSet := make(map[uint]struct{}, len(selected))
	for _, id := range selected {
		selectedSet[id] = struct{}{}
	}

	for id := range selectedSet {
		if _, ok := currentSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for id := range currentSet {
		if _, ok := selectedSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}

	sort.Slice(toAdd, func(i, j int) bool { return toAdd[i] < toAdd[j] })
	sort.Slice(toRemove, func(i, j int) bool { return toRemove[i] < toRemove[j] })
	return toAdd, toRemove
}

// LinkedServiceIDs extracts the service-id set from a barber's join rows.
func LinkedServiceIDs(links []models.BarberService) []uint {
	ids := make([]uint, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ServiceID)
	}
	return ids
}
