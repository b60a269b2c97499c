package recommend

// ClassifyUrgency buckets the answers into a severity tier, independent of
// the tool pipeline. Top-to-bottom, first match wins; this is a cascade,
// not a best-match search.
//
// The "crisis" tier exists in the tier set but is never returned here: the
// branches below that read like crisis detection deliberately stop at "high".
// Do not "fix" this without a product decision: the apps route "crisis"
// differently (see TestUrgencyNeverCrisis).
func ClassifyUrgency(a Answers) string {
	switch {
	case a.Concern == "panic":
		return UrgencyHigh
	case a.Concern == "hopeless" && (a.Context == "whole_body" || a.Context == "all_day"):
		return UrgencyHigh
	case a.Concern == "" && (a.Context == "all_day" || a.Context == "right_now"):
		return UrgencyHigh
	case a.Concern == "hopeless":
		return UrgencyHigh
	case a.Concern == "anxiety" && a.Context == "whole_body":
		return UrgencyHigh
	}

	// Energy-based defaults.
	switch a.Energy {
	case EnergyHigh:
		if a.Concern == "anger" || a.Concern == "anxiety" {
			return UrgencyHigh
		}
		return UrgencyModerate
	case EnergyLow:
		return UrgencyModerate
	}

	return UrgencyLow
}
