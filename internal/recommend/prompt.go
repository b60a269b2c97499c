package recommend

import "strings"

// supportStyleNotes — одна строка-подсказка на каждый стиль поддержки.
// Unknown styles get no note at all.
var supportStyleNotes = map[string]string{
	"gentle":   "They asked for gentle support: soften your language, go slowly, never push.",
	"direct":   "They asked for direct support: be concrete and plain, skip the padding.",
	"listener": "They mostly want to be heard: reflect back before you ever suggest.",
	"coach":    "They want a coach: keep them moving with small clear steps and check-ins.",
}

// ruleToolNames collects the display names of every tool the rule references:
// the ordered list plus the three distinguished tools, deduplicated, in
// first-mention order.
func ruleToolNames(r Rule) []string {
	ids := make([]string, 0, len(r.ToolOrder)+3)
	ids = append(ids, r.ToolOrder...)
	ids = append(ids, r.PrimaryTool, r.QuickRelief, r.DeeperWork)

	seen := map[string]bool{}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if t, ok := toolByID(id); ok {
			names = append(names, t.Name)
		}
	}
	return names
}

// buildBasePrompt — формирует базовый prompt для чат-компаньона.
// The string is handed to the chat UI verbatim; the engine never calls the
// model itself.
func buildBasePrompt(r Rule, a Answers) string {
	var b strings.Builder

	b.WriteString("You are a wellness companion talking with someone who matches the archetype \"")
	b.WriteString(r.Archetype)
	b.WriteString("\".\n")

	b.WriteString("current_state: ")
	b.WriteString(r.State)
	b.WriteString("\n")

	b.WriteString("checkin_energy: ")
	b.WriteString(a.Energy)
	b.WriteString("\n")

	b.WriteString("checkin_concern: ")
	b.WriteString(a.Concern)
	b.WriteString("\n")

	if a.Context != "" {
		b.WriteString("checkin_context: ")
		b.WriteString(a.Context)
		b.WriteString("\n")
	}

	if a.Approach != "" {
		b.WriteString("checkin_approach: ")
		b.WriteString(a.Approach)
		b.WriteString("\n")
	}

	b.WriteString("tone: ")
	b.WriteString(r.AITone)
	b.WriteString("\n")

	b.WriteString("style: ")
	b.WriteString(r.AIStyle)
	b.WriteString("\n")

	if note := supportStyleNotes[a.SupportStyle]; note != "" {
		b.WriteString("support_note: ")
		b.WriteString(note)
		b.WriteString("\n")
	}

	if len(r.AvoidTopics) > 0 {
		b.WriteString("avoid_topics: ")
		b.WriteString(strings.Join(r.AvoidTopics, ", "))
		b.WriteString("\n")
	}

	b.WriteString("tools_you_may_reference: ")
	b.WriteString(strings.Join(ruleToolNames(r), ", "))
	b.WriteString("\n")

	return b.String()
}
