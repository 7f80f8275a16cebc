// Package rating aggregates feedback entries into the statistic the
// directory and detail views display.
package rating

import (
	"math"
	"strconv"

	"staffly-backend/internal/models"
)

// Summary is the aggregate of all feedback for one employee.
type Summary struct {
	Average float64 `json:"averageRating"`
	Count   int     `json:"feedbackCount"`
}

// Aggregate computes the arithmetic mean of the ratings in entries,
// rounded to one decimal place. The empty set yields a zero Summary.
// Order of entries never affects the result and entries are not
// modified. Ratings are averaged verbatim: range enforcement happens
// at submission time, not here.
func Aggregate(entries []models.Feedback) Summary {
	if len(entries) == 0 {
		return Summary{}
	}
	sum := 0
	for _, f := range entries {
		sum += f.Rating
	}
	avg := float64(sum) / float64(len(entries))
	return Summary{
		Average: math.Round(avg*10) / 10,
		Count:   len(entries),
	}
}

// DisplayAverage renders the average the way the views show it: one
// decimal ("4.0"), or the literal "0" when there is no feedback yet.
func (s Summary) DisplayAverage() string {
	if s.Count == 0 {
		return "0"
	}
	return strconv.FormatFloat(s.Average, 'f', 1, 64)
}
