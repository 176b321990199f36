package views

import (
	"sort"

	"github.com/flextrackapp/flextrack-backend/internal/models"
)

// SortPostsByDate orders the feed by post date ascending. The sort is stable
// so posts sharing a date keep their incoming order; there is deliberately no
// secondary tie-break.
func SortPostsByDate(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.Before(posts[j].Date)
	})
}
