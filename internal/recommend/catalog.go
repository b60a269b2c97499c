package recommend

// FallbackToolID is the always-safe tool the time filter substitutes when the
// user's budget filters out everything else. 2 minutes, always doable.
const FallbackToolID = "self_compassion_break"

// catalog is the single source of truth for tools. Read-only after init:
// every lookup hands out a copy, never the entry itself.
var catalog = map[string]Tool{
	"box_breathing": {
		ID:           "box_breathing",
		Name:         "Box Breathing",
		Description:  "Slow square breathing to settle a racing system.",
		Icon:         "wind",
		Duration:     3,
		Category:     CategoryBreathing,
		Technique:    "4-4-4-4 paced breathing",
		Instructions: "Inhale for 4, hold for 4, exhale for 4, hold for 4. Repeat for three minutes.",
	},
	"physiological_sigh": {
		ID:           "physiological_sigh",
		Name:         "Physiological Sigh",
		Description:  "The fastest known way to down-shift a panic spike.",
		Icon:         "waves",
		Duration:     2,
		Category:     CategoryBreathing,
		Technique:    "double inhale, long exhale",
		Instructions: "Two sharp inhales through the nose, then one long slow exhale through the mouth. Repeat five times.",
	},
	"long_exhale": {
		ID:           "long_exhale",
		Name:         "Long Exhale",
		Description:  "Exhaling longer than you inhale tells the body it is safe.",
		Icon:         "feather",
		Duration:     2,
		Category:     CategoryBreathing,
		Technique:    "extended exhale breathing",
		Instructions: "Breathe in for 4 counts, out for 8. Keep the shoulders loose. Ten rounds.",
	},
	"grounding_54321": {
		ID:           "grounding_54321",
		Name:         "5-4-3-2-1 Grounding",
		Description:  "Pull attention out of the spiral and into the room.",
		Icon:         "anchor",
		Duration:     5,
		Category:     CategoryGrounding,
		Technique:    "sensory grounding",
		Instructions: "Name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste.",
	},
	"feet_on_floor": {
		ID:           "feet_on_floor",
		Name:         "Feet on the Floor",
		Description:  "The smallest grounding exercise there is.",
		Icon:         "footprints",
		Duration:     2,
		Category:     CategoryGrounding,
		Technique:    "pressure grounding",
		Instructions: "Press both feet into the floor. Notice the contact, the temperature, the weight. Two minutes.",
	},
	"cold_water": {
		ID:           "cold_water",
		Name:         "Cold Water Reset",
		Description:  "Cold on the face trips the dive reflex and slows the heart.",
		Icon:         "droplet",
		Duration:     2,
		Category:     CategoryGrounding,
		Technique:    "temperature reset",
		Instructions: "Splash cold water on your face or hold a cold glass against your wrists for 30 seconds.",
	},
	"shake_it_out": {
		ID:           "shake_it_out",
		Name:         "Shake It Out",
		Description:  "Let the body discharge what it is holding.",
		Icon:         "zap",
		Duration:     3,
		Category:     CategoryMovement,
		Technique:    "tension discharge",
		Instructions: "Stand up and shake your hands, arms, shoulders, legs. Loose and silly is the point.",
	},
	"walk_outside": {
		ID:           "walk_outside",
		Name:         "Step Outside",
		Description:  "A short walk with no destination and no phone.",
		Icon:         "map",
		Duration:     15,
		Category:     CategoryMovement,
		Technique:    "walking reset",
		Instructions: "Walk for fifteen minutes. Don't solve anything. Just notice what you pass.",
	},
	"tiny_task": {
		ID:           "tiny_task",
		Name:         "One Tiny Task",
		Description:  "Finish one two-minute thing to break the freeze.",
		Icon:         "check",
		Duration:     5,
		Category:     CategoryMovement,
		Technique:    "behavioral activation",
		Instructions: "Pick the smallest undone thing near you — one cup, one email, one sock — and finish it.",
	},
	"wall_push": {
		ID:           "wall_push",
		Name:         "Wall Push",
		Description:  "Give the anger somewhere to go.",
		Icon:         "hand",
		Duration:     2,
		Category:     CategorySomatic,
		Technique:    "isometric release",
		Instructions: "Push against a wall as hard as you can for 10 seconds, release for 10. Five rounds.",
	},
	"progressive_muscle": {
		ID:           "progressive_muscle",
		Name:         "Progressive Muscle Release",
		Description:  "Tense and release each muscle group, feet to face.",
		Icon:         "layers",
		Duration:     10,
		Category:     CategorySomatic,
		Technique:    "progressive muscle relaxation",
		Instructions: "Working upward from your feet, tense each muscle group for 5 seconds, then let go completely.",
	},
	"body_scan": {
		ID:           "body_scan",
		Name:         "Body Scan",
		Description:  "Slow attention through the body, no fixing required.",
		Icon:         "scan",
		Duration:     10,
		Category:     CategorySomatic,
		Technique:    "interoceptive scan",
		Instructions: "Lie down or sit back. Move attention slowly from toes to head, naming what you find without changing it.",
	},
	"thought_dump": {
		ID:           "thought_dump",
		Name:         "Thought Dump",
		Description:  "Get everything out of your head and onto paper.",
		Icon:         "pen",
		Duration:     10,
		Category:     CategoryJournaling,
		Technique:    "free writing",
		Instructions: "Write continuously for ten minutes. No editing, no order, no audience.",
	},
	"worry_window": {
		ID:           "worry_window",
		Name:         "Worry Window",
		Description:  "Give the worries an appointment instead of the whole day.",
		Icon:         "clock",
		Duration:     10,
		Category:     CategoryCognitive,
		Technique:    "scheduled worry",
		Instructions: "Set a 10-minute timer. Worry on purpose, write each one down. When it rings, the window is closed.",
	},
	"reframe_thought": {
		ID:           "reframe_thought",
		Name:         "Reframe One Thought",
		Description:  "Take one harsh thought and find its fairer version.",
		Icon:         "refresh",
		Duration:     5,
		Category:     CategoryCognitive,
		Technique:    "cognitive reframing",
		Instructions: "Write the loudest thought down. Then write what you'd tell a friend who said it about themselves.",
	},
	"name_the_feeling": {
		ID:           "name_the_feeling",
		Name:         "Name the Feeling",
		Description:  "Naming an emotion precisely already turns its volume down.",
		Icon:         "tag",
		Duration:     3,
		Category:     CategoryCognitive,
		Technique:    "affect labeling",
		Instructions: "Find the most precise word for what you feel right now — not 'bad', the exact word. Say it out loud.",
	},
	"gratitude_three": {
		ID:           "gratitude_three",
		Name:         "Three Good Things",
		Description:  "Three small true things that did not go wrong today.",
		Icon:         "star",
		Duration:     5,
		Category:     CategoryJournaling,
		Technique:    "gratitude journaling",
		Instructions: "Write three specific things from today that were okay or better, and one line on why each happened.",
	},
	"self_compassion_break": {
		ID:           "self_compassion_break",
		Name:         "Self-Compassion Break",
		Description:  "Thirty seconds of talking to yourself like someone you love.",
		Icon:         "heart",
		Duration:     2,
		Category:     CategoryRest,
		Technique:    "self-compassion",
		Instructions: "Hand on chest. Say: this is hard, hard moments are part of being human, may I be kind to myself right now.",
	},
	"rest_permission": {
		ID:           "rest_permission",
		Name:         "Permission to Rest",
		Description:  "Rest on purpose instead of collapsing by accident.",
		Icon:         "moon",
		Duration:     5,
		Category:     CategoryRest,
		Technique:    "intentional rest",
		Instructions: "Set a 5-minute timer. Lie down or lean back. You are not allowed to be productive until it rings.",
	},
	"music_reset": {
		ID:           "music_reset",
		Name:         "One-Song Reset",
		Description:  "One song, eyes closed, nothing else.",
		Icon:         "music",
		Duration:     5,
		Category:     CategoryRest,
		Technique:    "music immersion",
		Instructions: "Pick one song that matches or softens the mood. Close your eyes and only listen until it ends.",
	},
}

// toolByID returns a copy of the catalog entry. The bool follows the usual
// comma-ok convention; callers that get false received a zero Tool.
func toolByID(id string) (Tool, bool) {
	t, ok := catalog[id]
	return t, ok
}
