package recommend

// Energy levels coming from the onboarding wizard.
const (
	EnergyHigh     = "high"
	EnergyModerate = "moderate"
	EnergyLow      = "low"
)

// Urgency tiers, ordered low < moderate < high < crisis.
// NOTE: the classifier currently never returns UrgencyCrisis: the branches that
// look crisis-intended return "high" (see urgency.go). Kept declared to match the
// tier set the apps know about.
const (
	UrgencyLow      = "low"
	UrgencyModerate = "moderate"
	UrgencyHigh     = "high"
	UrgencyCrisis   = "crisis"
)

// Tool categories (closed set).
type Category string

const (
	CategoryBreathing  Category = "breathing"
	CategoryGrounding  Category = "grounding"
	CategoryMovement   Category = "movement"
	CategoryCognitive  Category = "cognitive"
	CategoryJournaling Category = "journaling"
	CategorySomatic    Category = "somatic"
	CategoryRest       Category = "rest"
)

// Answers is the fixed set of six onboarding answers.
// The engine does no validation: unknown values mean "no boost", never an error.
type Answers struct {
	Energy       string `json:"energy"`
	Concern      string `json:"concern"`
	Context      string `json:"context"`
	Approach     string `json:"approach"`
	SupportStyle string `json:"support_style"`
	Time         string `json:"time"` // minutes as string, "30+" = no limit
}

// Tool is one coping exercise. Every Tool that flows through the pipeline is a
// copy of a catalog entry; only the copy's Priority is ever adjusted.
type Tool struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Duration     int      `json:"duration"` // minutes
	Priority     int      `json:"priority"` // lower = recommended first
	Category     Category `json:"category"`
	Technique    string   `json:"technique"`
	Instructions string   `json:"instructions"`
}

// Theme drives the dashboard visuals for an archetype.
type Theme struct {
	Gradient []string `json:"gradient"`
	Accent   string   `json:"accent"`
	Mood     string   `json:"mood"`
	Greeting string   `json:"greeting"`
	Ambiance string   `json:"ambiance"` // rain / waves / forest / night / dawn
}

// Conditions is a partial match over the answers. Empty field = not checked.
type Conditions struct {
	Energy  string
	Concern string
}

// Rule maps a matched emotional state to its full presentation payload.
// Rules are static data, loaded once, never mutated.
type Rule struct {
	Conditions Conditions

	Archetype string
	State     string
	Theme     Theme

	// ToolOrder establishes base priority (position 0 => priority 1).
	ToolOrder []string

	// Distinguished tools, looked up straight from the catalog.
	// QuickRelief and DeeperWork intentionally bypass the time filter:
	// they are the fixed "break glass" options.
	PrimaryTool string
	QuickRelief string
	DeeperWork  string

	AITone      string
	AIStyle     string
	AvoidTopics []string

	JournalPrompt  string
	Affirmation    string
	BodyFocus      string
	OpeningMessage string
}

// specificity is the number of declared conditions. The matcher prefers the
// highest fully-matching specificity; table order breaks ties.
func (c Conditions) specificity() int {
	n := 0
	if c.Energy != "" {
		n++
	}
	if c.Concern != "" {
		n++
	}
	return n
}

// Personality is everything the chat UI needs to run the companion.
type Personality struct {
	Tone           string   `json:"tone"`
	Style          string   `json:"style"`
	BasePrompt     string   `json:"base_prompt"`
	OpeningMessage string   `json:"opening_message"`
	AvoidTopics    []string `json:"avoid_topics"`
}

// Profile is the full engine output. Pure data; rendering and the LLM call
// both happen elsewhere.
type Profile struct {
	Archetype     string      `json:"archetype"`
	State         string      `json:"state"`
	UrgencyLevel  string      `json:"urgency_level"`
	Tools         []Tool      `json:"tools"`
	PrimaryTool   Tool        `json:"primary_tool"`
	QuickRelief   Tool        `json:"quick_relief_tool"`
	DeeperWork    Tool        `json:"deeper_work_tool"`
	Theme         Theme       `json:"theme"`
	AIPersonality Personality `json:"ai_personality"`
	JournalPrompt string      `json:"journal_prompt"`
	Affirmation   string      `json:"affirmation"`
	BodyFocus     string      `json:"body_focus"`
	Answers       Answers     `json:"answers"`
}
