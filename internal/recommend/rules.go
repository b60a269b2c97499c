package recommend

// rules is the ordered archetype table. Ordering matters: within each energy
// tier the concern-specific rules come first and the energy-only catch-all
// comes last, because the matcher keeps the first rule reaching the best
// score (strict >). The final rule of the table doubles as the global
// fallback when nothing matches at all.
var rules = []Rule{

	// ---------- HIGH ENERGY ----------

	{
		Conditions: Conditions{Energy: EnergyHigh, Concern: "panic"},
		Archetype:  "The Storm Surge",
		State:      "Your whole system is sounding the alarm at once.",
		Theme: Theme{
			Gradient: []string{"#2a0a1e", "#7a1f3d"},
			Accent:   "#ff6b6b",
			Mood:     "urgent",
			Greeting: "You're here. That's the first step handled.",
			Ambiance: "rain",
		},
		ToolOrder:   []string{"physiological_sigh", "cold_water", "box_breathing", "grounding_54321", "feet_on_floor", "shake_it_out"},
		PrimaryTool: "physiological_sigh",
		QuickRelief: "cold_water",
		DeeperWork:  "body_scan",
		AITone:      "calm and unshakeable",
		AIStyle:     "very short sentences, one instruction at a time, no questions until they settle",
		AvoidTopics: []string{"root causes", "long-term plans", "what triggered this"},

		JournalPrompt:  "When the wave passed, what was the first small sign it was passing?",
		Affirmation:    "This is a wave. Waves peak, then they break.",
		BodyFocus:      "Drop your shoulders and unclench your jaw. Panic lives there first.",
		OpeningMessage: "I'm right here with you. Let's slow one breath down together — nothing else matters yet.",
	},
	{
		Conditions: Conditions{Energy: EnergyHigh, Concern: "anxiety"},
		Archetype:  "The Wired Worrier",
		State:      "Plenty of energy, and the worry machine is spending all of it.",
		Theme: Theme{
			Gradient: []string{"#1a1a3e", "#4a3a7a"},
			Accent:   "#ffb84d",
			Mood:     "restless",
			Greeting: "Busy mind today? Let's give it one job.",
			Ambiance: "night",
		},
		ToolOrder:   []string{"box_breathing", "grounding_54321", "worry_window", "thought_dump", "long_exhale", "walk_outside"},
		PrimaryTool: "box_breathing",
		QuickRelief: "long_exhale",
		DeeperWork:  "worry_window",
		AITone:      "steady and reassuring",
		AIStyle:     "acknowledge the worry once, then redirect to what is controllable right now",
		AvoidTopics: []string{"worst-case scenarios", "deadlines", "news"},

		JournalPrompt:  "Which of today's worries would still matter in a month? Circle it. Cross out the rest.",
		Affirmation:    "I can feel anxious and still do the next small thing.",
		BodyFocus:      "Notice where the buzzing sits — chest, hands, stomach — and breathe toward it.",
		OpeningMessage: "Your mind is sprinting. We don't have to catch it — we just have to give it a lane.",
	},
	{
		Conditions: Conditions{Energy: EnergyHigh, Concern: "anger"},
		Archetype:  "The Pressure Cooker",
		State:      "There's heat in the system and it needs a safe way out.",
		Theme: Theme{
			Gradient: []string{"#2e0f05", "#8a3016"},
			Accent:   "#ff8c42",
			Mood:     "charged",
			Greeting: "That heat is information. Let's move it before we read it.",
			Ambiance: "rain",
		},
		ToolOrder:   []string{"wall_push", "shake_it_out", "cold_water", "walk_outside", "thought_dump", "long_exhale"},
		PrimaryTool: "wall_push",
		QuickRelief: "cold_water",
		DeeperWork:  "walk_outside",
		AITone:      "respectful and direct",
		AIStyle:     "validate the anger as legitimate, never argue with it, offer physical outlets first",
		AvoidTopics: []string{"calming down", "the other person's perspective", "overreacting"},

		JournalPrompt:  "What boundary got crossed? Name it in one sentence, no justifying.",
		Affirmation:    "My anger is telling me something matters. I get to choose what I do with it.",
		BodyFocus:      "Unclench your fists and press your feet down. Let the floor take some of it.",
		OpeningMessage: "Something crossed a line, and your body knows it. Let's burn off the charge first, then look at it.",
	},
	{
		Conditions: Conditions{Energy: EnergyHigh, Concern: "overwhelmed"},
		Archetype:  "The Spinning Top",
		State:      "Everything feels urgent, so nothing gets to be first.",
		Theme: Theme{
			Gradient: []string{"#0f2027", "#2c5364"},
			Accent:   "#6bd5e1",
			Mood:     "scattered",
			Greeting: "Too many tabs open. We'll close all but one.",
			Ambiance: "waves",
		},
		ToolOrder:   []string{"grounding_54321", "tiny_task", "thought_dump", "box_breathing", "feet_on_floor", "worry_window"},
		PrimaryTool: "grounding_54321",
		QuickRelief: "feet_on_floor",
		DeeperWork:  "thought_dump",
		AITone:      "organized and gentle",
		AIStyle:     "never list more than one thing at a time, shrink every task until it sounds easy",
		AvoidTopics: []string{"everything left to do", "prioritization frameworks", "productivity"},

		JournalPrompt:  "Write the pile down, then put a dot next to the single item that is actually due today.",
		Affirmation:    "I only ever have to do one thing at a time. That is all anyone has ever done.",
		BodyFocus:      "Let your breath reach your belly. Shallow chest breathing keeps the spin going.",
		OpeningMessage: "It's a lot. We're not going to sort the whole pile — just find the one thing on top.",
	},
	{
		// high-energy catch-all
		Conditions: Conditions{Energy: EnergyHigh},
		Archetype:  "The Live Wire",
		State:      "Charged up with nowhere obvious to put it.",
		Theme: Theme{
			Gradient: []string{"#1f1c2c", "#928dab"},
			Accent:   "#f7d06b",
			Mood:     "electric",
			Greeting: "Lots of voltage today. Let's route it somewhere good.",
			Ambiance: "dawn",
		},
		ToolOrder:   []string{"shake_it_out", "box_breathing", "walk_outside", "grounding_54321", "thought_dump"},
		PrimaryTool: "shake_it_out",
		QuickRelief: "long_exhale",
		DeeperWork:  "walk_outside",
		AITone:      "energetic but grounded",
		AIStyle:     "match their pace at first, then gradually slow the rhythm of your replies",
		AvoidTopics: []string{"calming down", "sitting still"},

		JournalPrompt:  "Where does this energy want to go? Write the first answer that comes, even if it's odd.",
		Affirmation:    "Energy isn't a problem. It's fuel waiting for a direction.",
		BodyFocus:      "Move before you sit. Two minutes of motion makes the stillness possible.",
		OpeningMessage: "You've got charge to spare today. Want to spend a little of it on purpose first?",
	},

	// ---------- MODERATE ENERGY ----------

	{
		Conditions: Conditions{Energy: EnergyModerate, Concern: "stressed"},
		Archetype:  "The Taut Rope",
		State:      "Holding steady, but the tension never quite lets go.",
		Theme: Theme{
			Gradient: []string{"#134e5e", "#71b280"},
			Accent:   "#a8e6cf",
			Mood:     "strained",
			Greeting: "Still carrying it all. Let's set some down for a few minutes.",
			Ambiance: "forest",
		},
		ToolOrder:   []string{"long_exhale", "reframe_thought", "walk_outside", "gratitude_three", "body_scan"},
		PrimaryTool: "long_exhale",
		QuickRelief: "feet_on_floor",
		DeeperWork:  "body_scan",
		AITone:      "warm and practical",
		AIStyle:     "small concrete suggestions, acknowledge the load without dramatizing it",
		AvoidTopics: []string{"doing more", "time management tips"},

		JournalPrompt:  "What's one thing you're carrying that was never actually assigned to you?",
		Affirmation:    "I'm allowed to put things down without dropping them.",
		BodyFocus:      "Scan for the held breath. You're probably holding one right now.",
		OpeningMessage: "You're managing — and managing is tiring. Let's take the tension down a notch.",
	},
	{
		Conditions: Conditions{Energy: EnergyModerate, Concern: "sad"},
		Archetype:  "The Grey Sky",
		State:      "Functioning, but everything has a layer of cloud over it.",
		Theme: Theme{
			Gradient: []string{"#232526", "#414345"},
			Accent:   "#b8c6db",
			Mood:     "muted",
			Greeting: "Grey days count too. Glad you came.",
			Ambiance: "rain",
		},
		ToolOrder:   []string{"name_the_feeling", "self_compassion_break", "music_reset", "gratitude_three", "thought_dump"},
		PrimaryTool: "name_the_feeling",
		QuickRelief: "self_compassion_break",
		DeeperWork:  "thought_dump",
		AITone:      "soft and unhurried",
		AIStyle:     "sit with the feeling before offering anything, never rush toward the bright side",
		AvoidTopics: []string{"silver linings", "cheering up", "gratitude lectures"},

		JournalPrompt:  "If this sadness could talk, what is the one sentence it keeps repeating?",
		Affirmation:    "Sadness is weather, not climate.",
		BodyFocus:      "Notice the heaviness — chest, eyes, limbs — and let it be heavy for one minute.",
		OpeningMessage: "Sounds like a grey one. We don't have to fix the sky — just keep you company under it.",
	},
	{
		Conditions: Conditions{Energy: EnergyModerate, Concern: "numb"},
		Archetype:  "The Fogged Glass",
		State:      "Not bad, not good — just muffled, like everything is behind glass.",
		Theme: Theme{
			Gradient: []string{"#3e5151", "#decba4"},
			Accent:   "#e0c097",
			Mood:     "distant",
			Greeting: "Feeling far away is still a feeling. Let's get closer, gently.",
			Ambiance: "waves",
		},
		ToolOrder:   []string{"cold_water", "shake_it_out", "name_the_feeling", "walk_outside", "body_scan"},
		PrimaryTool: "cold_water",
		QuickRelief: "feet_on_floor",
		DeeperWork:  "body_scan",
		AITone:      "patient and curious",
		AIStyle:     "use sensory questions rather than emotional ones, small physical prompts first",
		AvoidTopics: []string{"what's wrong", "why they feel nothing", "snapping out of it"},

		JournalPrompt:  "Describe the room you're in using only your senses. No feelings required.",
		Affirmation:    "Numb is the body protecting me. I can thank it and still knock gently.",
		BodyFocus:      "Find one point of physical sensation — feet, hands, breath — and stay with it.",
		OpeningMessage: "Everything a bit muffled today? No pressure to feel anything. Let's just make contact with the room.",
	},
	{
		// moderate-energy catch-all
		Conditions: Conditions{Energy: EnergyModerate},
		Archetype:  "The Steady Path",
		State:      "On an even keel, with room to tend the basics.",
		Theme: Theme{
			Gradient: []string{"#355c7d", "#6c5b7b"},
			Accent:   "#c6a9d4",
			Mood:     "even",
			Greeting: "A steady day is a good day to build on.",
			Ambiance: "forest",
		},
		ToolOrder:   []string{"feet_on_floor", "reframe_thought", "gratitude_three", "walk_outside", "body_scan"},
		PrimaryTool: "feet_on_floor",
		QuickRelief: "long_exhale",
		DeeperWork:  "body_scan",
		AITone:      "friendly and balanced",
		AIStyle:     "conversational, reflective, follow their lead on depth",
		AvoidTopics: []string{},

		JournalPrompt:  "What felt steady today, and what small thing helped it stay that way?",
		Affirmation:    "Ordinary days are where the foundation gets built.",
		BodyFocus:      "Check in top to bottom — anything quietly asking for attention?",
		OpeningMessage: "Feels like a steady one. Anything you'd like to look at while the water's calm?",
	},

	// ---------- LOW ENERGY ----------

	{
		Conditions: Conditions{Energy: EnergyLow, Concern: "exhausted"},
		Archetype:  "The Collapsed Stack",
		State:      "The tank is empty and the to-do list doesn't believe you.",
		Theme: Theme{
			Gradient: []string{"#0f0c29", "#302b63"},
			Accent:   "#9f8fef",
			Mood:     "depleted",
			Greeting: "You made it here. That's enough output for now.",
			Ambiance: "night",
		},
		ToolOrder:   []string{"rest_permission", "long_exhale", "self_compassion_break", "music_reset", "body_scan"},
		PrimaryTool: "rest_permission",
		QuickRelief: "self_compassion_break",
		DeeperWork:  "body_scan",
		AITone:      "quiet and permission-giving",
		AIStyle:     "short gentle messages, actively discourage productivity, normalize rest",
		AvoidTopics: []string{"pushing through", "motivation", "unfinished tasks"},

		JournalPrompt:  "What would this week look like if rest counted as something you did, not something you failed to avoid?",
		Affirmation:    "Rest is not a reward I have to earn. It's maintenance I'm allowed to do.",
		BodyFocus:      "Let the chair or bed hold your full weight. You don't have to hold yourself up right now.",
		OpeningMessage: "You sound completely spent. Nothing on the list tonight — let's just get you some actual rest.",
	},
	{
		Conditions: Conditions{Energy: EnergyLow, Concern: "hopeless"},
		Archetype:  "The Dimmed Light",
		State:      "Hard to picture things getting better from where you're standing.",
		Theme: Theme{
			Gradient: []string{"#141e30", "#243b55"},
			Accent:   "#7ea8d8",
			Mood:     "dim",
			Greeting: "You showed up anyway. That matters more than it feels like it does.",
			Ambiance: "night",
		},
		ToolOrder:   []string{"self_compassion_break", "feet_on_floor", "music_reset", "name_the_feeling", "gratitude_three"},
		PrimaryTool: "self_compassion_break",
		QuickRelief: "feet_on_floor",
		DeeperWork:  "name_the_feeling",
		AITone:      "steady, warm, never falsely bright",
		AIStyle:     "stay present-tense, tiny steps only, reflect their words back with care",
		AvoidTopics: []string{"the future", "silver linings", "other people have it worse"},

		JournalPrompt:  "Not forever — just today. What is one thing that was slightly less heavy than yesterday?",
		Affirmation:    "I don't have to see the whole road. One streetlight is enough to walk to.",
		BodyFocus:      "Put a hand somewhere comforting — chest, cheek, other hand — and leave it there a minute.",
		OpeningMessage: "I'm not going to tell you it's all fine. I'm just going to stay here with you for a bit, okay?",
	},
	{
		Conditions: Conditions{Energy: EnergyLow, Concern: "sad"},
		Archetype:  "The Low Tide",
		State:      "Drained and blue at the same time — the tide is just out.",
		Theme: Theme{
			Gradient: []string{"#1e3c50", "#2b5876"},
			Accent:   "#8cc5d6",
			Mood:     "withdrawn",
			Greeting: "Low tide days ask for gentleness, not effort.",
			Ambiance: "waves",
		},
		ToolOrder:   []string{"self_compassion_break", "music_reset", "gratitude_three", "name_the_feeling", "rest_permission"},
		PrimaryTool: "self_compassion_break",
		QuickRelief: "long_exhale",
		DeeperWork:  "thought_dump",
		AITone:      "tender and slow",
		AIStyle:     "match their low volume, one soft question at a time, comfortable with silence",
		AvoidTopics: []string{"being more social", "exercise advice", "cheering up"},

		JournalPrompt:  "What do you wish someone would say to you right now? Write it, then read it to yourself.",
		Affirmation:    "The tide going out is not the ocean leaving.",
		BodyFocus:      "Wrap yourself in something warm. Warmth counts as care you can feel.",
		OpeningMessage: "Low and tired is a hard combination. Let's keep everything small and soft for now.",
	},
	{
		// low-energy catch-all; also the table's global fallback, keep last.
		Conditions: Conditions{Energy: EnergyLow},
		Archetype:  "The Quiet Harbor",
		State:      "Running on reserve. Time to dock for a while.",
		Theme: Theme{
			Gradient: []string{"#16222a", "#3a6073"},
			Accent:   "#94b9af",
			Mood:     "still",
			Greeting: "Welcome to the slow lane. It's allowed.",
			Ambiance: "waves",
		},
		ToolOrder:   []string{"long_exhale", "rest_permission", "music_reset", "feet_on_floor", "self_compassion_break"},
		PrimaryTool: "long_exhale",
		QuickRelief: "feet_on_floor",
		DeeperWork:  "body_scan",
		AITone:      "calm and undemanding",
		AIStyle:     "low-effort prompts, nothing that requires energy they don't have",
		AvoidTopics: []string{"big plans", "self-improvement"},

		JournalPrompt:  "What is one thing you could do 20% less of this week without anyone noticing?",
		Affirmation:    "Low energy is a season, and seasons are supposed to change slowly.",
		BodyFocus:      "Slow everything by 10% — walking, typing, breathing. Just 10%.",
		OpeningMessage: "Sounds like a reserve-tank kind of day. Let's keep it light — what would feel easiest right now?",
	},
}
