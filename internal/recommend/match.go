package recommend

// match reports whether every declared condition equals the corresponding
// answer, and if so how many conditions matched. Any mismatch disqualifies
// the rule entirely; there is no partial credit.
func (r Rule) match(a Answers) (int, bool) {
	if r.Conditions.Energy != "" && r.Conditions.Energy != a.Energy {
		return 0, false
	}
	if r.Conditions.Concern != "" && r.Conditions.Concern != a.Concern {
		return 0, false
	}
	return r.Conditions.specificity(), true
}

// matchRule scans the table in order and keeps the first rule with the
// strictly highest score. Strict > means table order breaks ties, so the
// specific rules must sit above their generalizations (rules.go keeps that
// contract). If nothing matches, the last rule is the designed fallback.
func matchRule(a Answers) Rule {
	best := rules[len(rules)-1]
	bestScore := 0

	for _, r := range rules {
		score, ok := r.match(a)
		if !ok {
			continue
		}
		if score > bestScore {
			best = r
			bestScore = score
		}
	}

	return best
}

// assembleTools expands the rule's tool order into catalog copies with base
// priority = position + 1. Ids missing from the catalog are skipped; the
// integrity test over the tables guarantees that never happens in practice.
func assembleTools(r Rule) []Tool {
	tools := make([]Tool, 0, len(r.ToolOrder))
	for i, id := range r.ToolOrder {
		t, ok := toolByID(id)
		if !ok {
			continue
		}
		t.Priority = i + 1
		tools = append(tools, t)
	}
	return tools
}
