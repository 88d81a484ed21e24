package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestFeedback_Score(t *testing.T) {
	tests := []struct {
		name     string
		feedback Feedback
		want     int
	}{
		{
			name:     "empty feedback scores zero",
			feedback: Feedback{},
			want:     0,
		},
		{
			name:     "comment dominates everything else",
			feedback: Feedback{Comment: ptr("Great!")},
			want:     1006,
		},
		{
			name:     "empty comment does not count",
			feedback: Feedback{Comment: ptr("")},
			want:     0,
		},
		{
			name:     "comment length counts characters not bytes",
			feedback: Feedback{Comment: ptr("très bon début 🎉")},
			want:     1016,
		},
		{
			name:     "rating multiplies by five",
			feedback: Feedback{Rating: ptr(8)},
			want:     40,
		},
		{
			name:     "claps count one for one",
			feedback: Feedback{Claps: 13},
			want:     13,
		},
		{
			name:     "star adds ten",
			feedback: Feedback{Star: true},
			want:     10,
		},
		{
			name: "each quick action adds twenty",
			feedback: Feedback{
				WantToAccess: true,
				WantToInvest: true,
				WantToWork:   true,
			},
			want: 60,
		},
		{
			name: "signals accumulate",
			feedback: Feedback{
				Comment: ptr("Great!"),
				Rating:  ptr(8),
			},
			want: 1046,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.feedback.Score())
		})
	}
}

func TestFeedback_Score_CommentedAlwaysOutranksUncommented(t *testing.T) {
	// Maxed-out engagement without a comment: rating 10, a generous
	// clapper, star and all three quick actions.
	loud := Feedback{
		Rating:       ptr(10),
		Claps:        500,
		Star:         true,
		WantToAccess: true,
		WantToInvest: true,
		WantToWork:   true,
	}
	quiet := Feedback{Comment: ptr("ok")}

	assert.Greater(t, quiet.Score(), loud.Score())
}

func TestFeedback_QuickActions(t *testing.T) {
	assert.Equal(t, 0, (&Feedback{}).QuickActions())
	assert.Equal(t, 1, (&Feedback{WantToInvest: true}).QuickActions())
	assert.Equal(t, 3, (&Feedback{WantToAccess: true, WantToInvest: true, WantToWork: true}).QuickActions())
}
