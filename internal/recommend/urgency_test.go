package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUrgencyCascade(t *testing.T) {
	cases := []struct {
		name string
		in   Answers
		want string
	}{
		{"panic always high", Answers{Energy: "low", Concern: "panic"}, UrgencyHigh},
		{"hopeless whole body", Answers{Energy: "moderate", Concern: "hopeless", Context: "whole_body"}, UrgencyHigh},
		{"hopeless all day", Answers{Energy: "moderate", Concern: "hopeless", Context: "all_day"}, UrgencyHigh},
		{"hopeless alone", Answers{Energy: "moderate", Concern: "hopeless"}, UrgencyHigh},
		{"empty concern all day", Answers{Energy: "moderate", Concern: "", Context: "all_day"}, UrgencyHigh},
		{"empty concern right now", Answers{Energy: "moderate", Concern: "", Context: "right_now"}, UrgencyHigh},
		{"anxiety whole body", Answers{Energy: "moderate", Concern: "anxiety", Context: "whole_body"}, UrgencyHigh},
		{"high energy anger", Answers{Energy: "high", Concern: "anger"}, UrgencyHigh},
		{"high energy anxiety", Answers{Energy: "high", Concern: "anxiety"}, UrgencyHigh},
		{"high energy other", Answers{Energy: "high", Concern: "overwhelmed"}, UrgencyModerate},
		{"low energy default", Answers{Energy: "low", Concern: "exhausted"}, UrgencyModerate},
		{"moderate default", Answers{Energy: "moderate", Concern: "stressed"}, UrgencyLow},
		{"unknown energy default", Answers{Energy: "", Concern: "sad"}, UrgencyLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyUrgency(tc.in))
		})
	}
}

func TestUrgencyFirstMatchWins(t *testing.T) {
	// panic + whole_body context hits the panic branch before anything else;
	// same answer with hopeless would hit the combined branch first. Either
	// way the early-return semantics, not specificity, decide.
	got := ClassifyUrgency(Answers{Energy: "low", Concern: "panic", Context: "whole_body"})
	assert.Equal(t, UrgencyHigh, got)
}

// The crisis tier is declared but unreachable today: the crisis-looking
// branches return "high". This test pins that so any change to the mapping
// is deliberate, not accidental.
func TestUrgencyNeverCrisis(t *testing.T) {
	energies := []string{"", "high", "moderate", "low", "weird"}
	concerns := []string{"", "panic", "anxiety", "anger", "overwhelmed", "stressed", "sad", "numb", "hopeless", "exhausted", "banana"}
	contexts := []string{"", "chest", "head", "stomach", "whole_body", "restless", "tears", "heavy", "racing_thoughts", "cant_focus", "all_day", "right_now", "no_energy"}

	for _, e := range energies {
		for _, c := range concerns {
			for _, ctx := range contexts {
				got := ClassifyUrgency(Answers{Energy: e, Concern: c, Context: ctx})
				assert.NotEqual(t, UrgencyCrisis, got, "energy=%q concern=%q context=%q", e, c, ctx)
			}
		}
	}
}
