package recommend

import (
	"strconv"
	"strings"
)

// Time budget handling. "30+" is the largest option the wizard offers and
// means "no limit"; anything unparsable falls back to a conservative 5.
const (
	unlimitedTimeAnswer = "30+"
	unlimitedMinutes    = 999
	defaultMinutes      = 5
)

func timeBudget(answer string) int {
	if answer == unlimitedTimeAnswer {
		return unlimitedMinutes
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return defaultMinutes
	}
	return n
}

// filterByTime drops tools longer than the budget, keeping order. The result
// is guaranteed non-empty: if everything gets filtered out, the 2-minute
// self-compassion fallback is substituted so the dashboard always has
// something actionable to show.
func filterByTime(tools []Tool, budget int) []Tool {
	kept := make([]Tool, 0, len(tools))
	for _, t := range tools {
		if t.Duration <= budget {
			kept = append(kept, t)
		}
	}

	if len(kept) == 0 {
		fallback, _ := toolByID(FallbackToolID)
		fallback.Priority = 1
		return []Tool{fallback}
	}

	return kept
}

// GenerateProfile is the whole engine: answers in, profile out. Pure and
// deterministic (no I/O, no clock, no randomness), so it is safe to call
// from any number of goroutines.
func GenerateProfile(a Answers) Profile {
	rule := matchRule(a)

	tools := assembleTools(rule)
	tools = boostByContext(tools, a.Context)
	tools = boostByApproach(tools, a.Approach)
	tools = filterByTime(tools, timeBudget(a.Time))

	// The distinguished tools come straight from the catalog and skip the
	// time filter on purpose: quick relief and deeper work are the fixed
	// "break glass" options, available even on a one-minute budget.
	primary, _ := toolByID(rule.PrimaryTool)
	quick, _ := toolByID(rule.QuickRelief)
	deeper, _ := toolByID(rule.DeeperWork)

	return Profile{
		Archetype:    rule.Archetype,
		State:        rule.State,
		UrgencyLevel: ClassifyUrgency(a),
		Tools:        tools,
		PrimaryTool:  primary,
		QuickRelief:  quick,
		DeeperWork:   deeper,
		Theme:        rule.Theme,
		AIPersonality: Personality{
			Tone:           rule.AITone,
			Style:          rule.AIStyle,
			BasePrompt:     buildBasePrompt(rule, a),
			OpeningMessage: rule.OpeningMessage,
			AvoidTopics:    rule.AvoidTopics,
		},
		JournalPrompt: rule.JournalPrompt,
		Affirmation:   rule.Affirmation,
		BodyFocus:     rule.BodyFocus,
		Answers:       a,
	}
}
