package recommend

import (
	"slices"
	"sort"
)

// Boost deltas. Context is the stronger signal (where it lives in the body /
// day), approach the weaker one (how they like to work on it). A tool hit by
// both ends up 8 points ahead of an unboosted neighbor.
const (
	contextBoost  = 5
	approachBoost = 3
)

// contextBoosts maps a context answer to the tool ids especially relevant to
// it. Unknown contexts simply boost nothing.
var contextBoosts = map[string][]string{
	// body locations
	"chest":      {"physiological_sigh", "long_exhale", "box_breathing", "wall_push"},
	"head":       {"thought_dump", "grounding_54321", "cold_water"},
	"stomach":    {"body_scan", "long_exhale", "feet_on_floor"},
	"whole_body": {"progressive_muscle", "shake_it_out", "body_scan"},

	// movement / restlessness
	"restless": {"shake_it_out", "walk_outside", "wall_push"},

	// emotional texture
	"tears": {"self_compassion_break", "name_the_feeling", "music_reset"},
	"heavy": {"rest_permission", "music_reset", "self_compassion_break"},

	// mental / cognitive
	"racing_thoughts": {"thought_dump", "worry_window", "box_breathing"},
	"cant_focus":      {"grounding_54321", "feet_on_floor", "tiny_task"},

	// duration of the episode
	"all_day":   {"worry_window", "walk_outside", "rest_permission"},
	"right_now": {"physiological_sigh", "cold_water", "feet_on_floor"},

	// energy floor
	"no_energy": {"rest_permission", "music_reset", "long_exhale"},
}

// approachBoosts maps an approach answer to tool categories, not individual
// tools: the user is telling us the kind of work they want.
var approachBoosts = map[string][]Category{
	"body":     {CategoryBreathing, CategorySomatic, CategoryMovement},
	"mind":     {CategoryCognitive, CategoryJournaling},
	"feel":     {CategorySomatic, CategoryJournaling},
	"distract": {CategoryMovement, CategoryRest},
}

// boostByContext lowers the priority of every tool in the context's boost set,
// then re-sorts. The sort must be stable: equal priorities keep their
// incoming order, otherwise identical requests could diverge.
func boostByContext(tools []Tool, context string) []Tool {
	ids := contextBoosts[context]
	for i := range tools {
		if slices.Contains(ids, tools[i].ID) {
			tools[i].Priority -= contextBoost
		}
	}
	sort.SliceStable(tools, func(i, j int) bool {
		return tools[i].Priority < tools[j].Priority
	})
	return tools
}

// boostByApproach is the same pass keyed by category. Runs after the context
// pass; the two deltas compose on the same copies.
func boostByApproach(tools []Tool, approach string) []Tool {
	cats := approachBoosts[approach]
	for i := range tools {
		if slices.Contains(cats, tools[i].Category) {
			tools[i].Priority -= approachBoost
		}
	}
	sort.SliceStable(tools, func(i, j int) bool {
		return tools[i].Priority < tools[j].Priority
	})
	return tools
}
