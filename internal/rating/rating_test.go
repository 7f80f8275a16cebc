package rating

import (
	"testing"

	"staffly-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func fb(ratings ...int) []models.Feedback {
	entries := make([]models.Feedback, len(ratings))
	for i, r := range ratings {
		entries[i] = models.Feedback{Rating: r}
	}
	return entries
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name        string
		ratings     []int
		wantAverage float64
		wantCount   int
		wantDisplay string
	}{
		{"empty set", nil, 0, 0, "0"},
		{"single entry", []int{3}, 3.0, 1, "3.0"},
		{"whole average", []int{5, 4, 3}, 4.0, 3, "4.0"},
		{"half average", []int{1, 2}, 1.5, 2, "1.5"},
		{"repeating decimal rounds to one place", []int{4, 4, 5}, 4.3, 3, "4.3"},
		{"out-of-range ratings included verbatim", []int{10, 0}, 5.0, 2, "5.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Aggregate(fb(tt.ratings...))
			assert.Equal(t, tt.wantAverage, summary.Average)
			assert.Equal(t, tt.wantCount, summary.Count)
			assert.Equal(t, tt.wantDisplay, summary.DisplayAverage())
		})
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	permutations := [][]int{
		{5, 1, 3, 4},
		{1, 3, 4, 5},
		{4, 5, 1, 3},
		{3, 4, 5, 1},
	}

	want := Aggregate(fb(permutations[0]...))
	for _, p := range permutations[1:] {
		assert.Equal(t, want, Aggregate(fb(p...)))
	}
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	entries := fb(2, 5, 4)
	before := make([]models.Feedback, len(entries))
	copy(before, entries)

	Aggregate(entries)
	assert.Equal(t, before, entries)
}

func TestAggregate_Idempotent(t *testing.T) {
	entries := fb(5, 4, 3)
	assert.Equal(t, Aggregate(entries), Aggregate(entries))
}
