package service

import (
	"math"

	"storehub/internal/api/models"
)

// Aggregate derives the average rating and the rating count from the full set
// of a store's ratings. The average is rounded to one decimal place, half up,
// and is 0 when the store has no ratings. It is recomputed from scratch on
// every call; nothing is cached or maintained incrementally.
func Aggregate(ratings []models.Rating) (average float64, count int) {
	count = len(ratings)
	if count == 0 {
		return 0, 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}

	average = math.Round(float64(sum)/float64(count)*10) / 10
	return average, count
}
