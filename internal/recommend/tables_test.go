package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every id a rule references must exist in the catalog; a miss would
// silently degrade the profile at runtime, so it is caught here instead.
func TestEveryReferencedToolExists(t *testing.T) {
	for _, r := range rules {
		for _, id := range r.ToolOrder {
			_, ok := toolByID(id)
			assert.True(t, ok, "rule %q references unknown tool %q", r.Archetype, id)
		}
		for _, id := range []string{r.PrimaryTool, r.QuickRelief, r.DeeperWork} {
			_, ok := toolByID(id)
			assert.True(t, ok, "rule %q distinguished tool %q unknown", r.Archetype, id)
		}
	}
}

// Table-order contract: within an energy tier the energy-only catch-all must
// come after every concern-specific rule, and the table must end on a
// catch-all (the global fallback).
func TestCatchAllsComeLastPerTier(t *testing.T) {
	seenCatchAll := map[string]bool{}
	for _, r := range rules {
		energy := r.Conditions.Energy
		require.NotEmpty(t, energy, "every rule conditions on energy")

		if r.Conditions.specificity() == 1 {
			assert.False(t, seenCatchAll[energy], "second catch-all for %q", energy)
			seenCatchAll[energy] = true
			continue
		}
		assert.False(t, seenCatchAll[energy],
			"specific rule %q listed after the %q catch-all", r.Archetype, energy)
	}

	last := rules[len(rules)-1]
	assert.Equal(t, 1, last.Conditions.specificity(), "table must end on a catch-all")
}

func TestRulePayloadsComplete(t *testing.T) {
	for _, r := range rules {
		assert.NotEmpty(t, r.Archetype)
		assert.NotEmpty(t, r.State)
		assert.NotEmpty(t, r.ToolOrder, "rule %q", r.Archetype)
		assert.Len(t, r.Theme.Gradient, 2, "rule %q", r.Archetype)
		assert.NotEmpty(t, r.Theme.Accent)
		assert.NotEmpty(t, r.Theme.Ambiance)
		assert.NotEmpty(t, r.AITone)
		assert.NotEmpty(t, r.AIStyle)
		assert.NotEmpty(t, r.JournalPrompt)
		assert.NotEmpty(t, r.Affirmation)
		assert.NotEmpty(t, r.BodyFocus)
		assert.NotEmpty(t, r.OpeningMessage)

		// the head of the ordered list is the primary tool, so the filtered
		// list leads with it whenever no boost reorders things
		assert.Equal(t, r.ToolOrder[0], r.PrimaryTool, "rule %q", r.Archetype)
	}
}

// Quick relief must actually be quick: it survives any time budget.
func TestQuickReliefIsShort(t *testing.T) {
	for _, r := range rules {
		quick, ok := toolByID(r.QuickRelief)
		require.True(t, ok)
		assert.LessOrEqual(t, quick.Duration, 3, "rule %q quick relief %q", r.Archetype, quick.ID)
	}
}

func TestFallbackToolShape(t *testing.T) {
	fb, ok := toolByID(FallbackToolID)
	require.True(t, ok)
	assert.Equal(t, 2, fb.Duration)
	assert.Equal(t, CategoryRest, fb.Category)
}

func TestBoostTablesReferenceKnownTools(t *testing.T) {
	for ctx, ids := range contextBoosts {
		for _, id := range ids {
			_, ok := toolByID(id)
			assert.True(t, ok, "context %q references unknown tool %q", ctx, id)
		}
	}
}
