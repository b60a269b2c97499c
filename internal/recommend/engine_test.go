package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStormSurgeScenario(t *testing.T) {
	p := GenerateProfile(Answers{
		Energy: "high", Concern: "panic",
		Context: "", Approach: "", SupportStyle: "", Time: "5",
	})

	assert.Equal(t, "The Storm Surge", p.Archetype)
	assert.Equal(t, UrgencyHigh, p.UrgencyLevel)
	require.NotEmpty(t, p.Tools)
	assert.LessOrEqual(t, p.Tools[0].Duration, 5)
	assert.LessOrEqual(t, p.PrimaryTool.Duration, 5)
}

func TestCollapsedStackScenario(t *testing.T) {
	p := GenerateProfile(Answers{
		Energy: "low", Concern: "exhausted",
		Context: "", Approach: "", SupportStyle: "", Time: "10",
	})

	assert.Equal(t, "The Collapsed Stack", p.Archetype)
	require.NotEmpty(t, p.Tools)
	assert.Equal(t, "rest_permission", p.PrimaryTool.ID)
	assert.Equal(t, "rest_permission", p.Tools[0].ID)
}

func TestUnknownConcernFallsBackToEnergyCatchAll(t *testing.T) {
	p := GenerateProfile(Answers{Energy: "moderate", Concern: "banana", Time: "10"})
	assert.Equal(t, "The Steady Path", p.Archetype)
}

func TestNoMatchAtAllUsesLastRule(t *testing.T) {
	p := GenerateProfile(Answers{Energy: "sideways", Concern: "banana", Time: "10"})
	assert.Equal(t, rules[len(rules)-1].Archetype, p.Archetype)
}

func TestProfileAlwaysUsable(t *testing.T) {
	tiers := map[string]bool{
		UrgencyLow: true, UrgencyModerate: true, UrgencyHigh: true, UrgencyCrisis: true,
	}

	// well-formed, weird, and empty inputs all get a workable profile
	cases := []Answers{
		{Energy: "high", Concern: "anxiety", Context: "chest", Approach: "body", SupportStyle: "gentle", Time: "15"},
		{Energy: "low", Concern: "hopeless", Context: "heavy", Approach: "feel", SupportStyle: "listener", Time: "30+"},
		{},
		{Energy: "HIGH", Concern: "panic", Time: "not a number"},
	}
	for _, a := range cases {
		p := GenerateProfile(a)
		assert.NotEmpty(t, p.Tools, "answers %+v", a)
		assert.NotEmpty(t, p.Archetype)
		assert.True(t, tiers[p.UrgencyLevel], "unexpected tier %q", p.UrgencyLevel)
		assert.Equal(t, a, p.Answers)
	}
}

func TestDeterminism(t *testing.T) {
	a := Answers{
		Energy: "high", Concern: "anxiety",
		Context: "racing_thoughts", Approach: "mind", SupportStyle: "direct", Time: "10",
	}
	assert.Equal(t, GenerateProfile(a), GenerateProfile(a))
}

func TestBothBoostsOutrankSingleBoost(t *testing.T) {
	// Wired Worrier + racing_thoughts + mind:
	// worry_window is in the context set AND the cognitive category set,
	// box_breathing only in the context set. Double boost must win.
	p := GenerateProfile(Answers{
		Energy: "high", Concern: "anxiety",
		Context: "racing_thoughts", Approach: "mind", Time: "30+",
	})

	require.NotEmpty(t, p.Tools)
	assert.Equal(t, "worry_window", p.Tools[0].ID)

	pos := map[string]int{}
	for i, tool := range p.Tools {
		pos[tool.ID] = i
	}
	assert.Less(t, pos["worry_window"], pos["box_breathing"])
}

func TestTimeFilterDropsLongTools(t *testing.T) {
	p := GenerateProfile(Answers{Energy: "high", Concern: "anxiety", Time: "5"})
	for _, tool := range p.Tools {
		assert.LessOrEqual(t, tool.Duration, 5, "tool %s", tool.ID)
	}
}

func TestTimeFilterFallbackGuarantee(t *testing.T) {
	// Budget of one minute is below every catalog tool.
	p := GenerateProfile(Answers{Energy: "high", Concern: "panic", Time: "1"})

	require.Len(t, p.Tools, 1)
	assert.Equal(t, FallbackToolID, p.Tools[0].ID)
	assert.Equal(t, 1, p.Tools[0].Priority)
}

func TestTimeFilterIdempotent(t *testing.T) {
	tools := assembleTools(rules[0])
	once := filterByTime(tools, 5)
	twice := filterByTime(once, 5)
	assert.Equal(t, once, twice)
}

func TestTimeBudgetParsing(t *testing.T) {
	assert.Equal(t, unlimitedMinutes, timeBudget("30+"))
	assert.Equal(t, 10, timeBudget("10"))
	assert.Equal(t, 15, timeBudget(" 15 "))
	assert.Equal(t, defaultMinutes, timeBudget(""))
	assert.Equal(t, defaultMinutes, timeBudget("soon"))
}

func TestDistinguishedToolsBypassTimeFilter(t *testing.T) {
	// Intentional: quick relief and deeper work are fixed "break glass"
	// options, so they must survive even a budget that empties the main list.
	p := GenerateProfile(Answers{Energy: "moderate", Concern: "stressed", Time: "1"})

	assert.NotEmpty(t, p.QuickRelief.ID)
	assert.NotEmpty(t, p.DeeperWork.ID)
	assert.Greater(t, p.DeeperWork.Duration, 1)
}

func TestStableRerankKeepsTiedOrder(t *testing.T) {
	a, _ := toolByID("walk_outside")
	b, _ := toolByID("gratitude_three")
	a.Priority = 3
	b.Priority = 3

	out := boostByContext([]Tool{a, b}, "nonsense-context")
	require.Len(t, out, 2)
	assert.Equal(t, "walk_outside", out[0].ID)
	assert.Equal(t, "gratitude_three", out[1].ID)
}

func TestBoostCreatesTieResolvedByIncomingOrder(t *testing.T) {
	// cold_water starts behind feet_on_floor but "right_now" boosts both;
	// their tie must resolve to the incoming order.
	feet, _ := toolByID("feet_on_floor")
	cold, _ := toolByID("cold_water")
	walk, _ := toolByID("walk_outside")
	feet.Priority = 1
	walk.Priority = 2
	cold.Priority = 3

	out := boostByContext([]Tool{feet, walk, cold}, "right_now")
	require.Len(t, out, 3)
	assert.Equal(t, "feet_on_floor", out[0].ID)
	assert.Equal(t, "cold_water", out[1].ID)
	assert.Equal(t, "walk_outside", out[2].ID)
}

func TestCatalogNeverMutated(t *testing.T) {
	before := catalog["worry_window"]

	_ = GenerateProfile(Answers{
		Energy: "high", Concern: "anxiety",
		Context: "racing_thoughts", Approach: "mind", Time: "30+",
	})

	assert.Equal(t, before, catalog["worry_window"])
	assert.Zero(t, catalog["worry_window"].Priority)
}
