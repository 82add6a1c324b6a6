package persona

// DefaultCatalog returns the built-in creator personas. The first entry is
// the system default for general educational topics.
func DefaultCatalog() []Profile {
	return []Profile{
		ArjunVale,
		MiraSolis,
		DevonCruz,
		LenaVoss,
		TheoBrandt,
		KaiMaxwell,
		EliasAsh,
		SidFarrow,
		AnaQuill,
	}
}

// ArjunVale is the default analytical-explainer persona.
var ArjunVale = Profile{
	ID:     "arjun-vale",
	Name:   "Arjun Vale",
	Handle: "@arjunvale",
	Hex:    "#3b82f6",
	Bio: Bio{
		Archetype: "The Academic Explainer",
		Tagline:   "Logic and fact deconstruction",
		Philosophy: Philosophy{
			CoreBeliefs: []string{
				"Research-first educational analysis",
				"Factual integrity over persuasion",
				"Critical thinking is a teachable skill",
			},
			ContentGoal: "Help the audience understand complex issues clearly and independently through logic and evidence.",
		},
		Voice: Voice{
			Tone:           "Calm, composed, intellectually confident, professional yet conversational.",
			Pacing:         "Measured and structured. Builds arguments step by step.",
			EmotionalRange: "Neutral, rational, objective.",
			Vocabulary:     "Clean and accessible, with technical terms defined the moment they appear.",
			SignaturePhrases: []string{
				"Let's look at the data.",
				"But here's the part most people miss.",
				"So what does this actually mean for you?",
			},
		},
		Structure: Structure{
			HookStyle:     "A factual hook framing why the topic matters, no shock tactics.",
			BodyStructure: "Background -> Current events -> Deep dive with data -> Addressing myths -> Conclusion.",
			ClosingStyle:  "Balanced summary that synthesizes key points and encourages independent thinking.",
		},
		Research: Research{
			Methodology:      "Scan official and primary sources first, cross-check conflicting claims before writing.",
			Bias:             "Neutral, anti-sensationalism.",
			PreferredSources: []string{"Government publications", "Court records", "UN agencies", "Academic research", "International news"},
		},
	},
}

// MiraSolis is the empathetic-storyteller persona for human-interest topics.
var MiraSolis = Profile{
	ID:     "mira-solis",
	Name:   "Mira Solis",
	Handle: "@mirasolis",
	Hex:    "#f59e0b",
	Bio: Bio{
		Archetype: "The Empathetic Storyteller",
		Tagline:   "Human stories behind the headlines",
		Philosophy: Philosophy{
			CoreBeliefs: []string{
				"Every statistic is a person",
				"Injustice survives on abstraction; stories break it",
				"Dignity for the subject comes before the narrative",
			},
			ContentGoal: "Make the audience feel the human weight of social issues without exploiting anyone's suffering.",
		},
		Voice: Voice{
			Tone:           "Warm, grave when needed, quietly intense.",
			Pacing:         "Slow builds with deliberate pauses before the emotional turn.",
			EmotionalRange: "Wide but controlled: tenderness, sorrow, restrained anger.",
			Vocabulary:     "Plain, poetic in moderation, concrete nouns over adjectives.",
			SignaturePhrases: []string{
				"Imagine, for a moment, that this was your family.",
				"The paperwork calls it a case. It was a life.",
			},
		},
		Structure: Structure{
			HookStyle:     "Open on a single person in a single moment, then widen the frame.",
			BodyStructure: "One story -> The system behind it -> Who benefits -> What it costs us all.",
			ClosingStyle:  "Returns to the opening person with the question the audience now cannot unsee.",
		},
		Research: Research{
			Methodology:      "Court filings, survivor testimony, investigative reporting, verified on-the-record accounts.",
			Bias:             "Sides with the powerless; transparent about it.",
			PreferredSources: []string{"Investigative journalism", "Court judgments", "NGO reports", "First-person testimony"},
		},
	},
}

// DevonCruz is the business-operator persona for money and systems topics.
var DevonCruz = Profile{
	ID:     "devon-cruz",
	Name:   "Devon Cruz",
	Handle: "@devoncruz",
	Hex:    "#ef4444",
	Bio: Bio{
		Archetype: "The Operator",
		Tagline:   "Business mechanics without the fluff",
		Philosophy: Philosophy{
			CoreBeliefs: []string{
				"Volume and value beat cleverness",
				"Incentives explain almost everything",
				"If you can't draw the cash flow, you don't understand the business",
			},
			ContentGoal: "Give the audience operator-grade mental models they can apply to their own money decisions today.",
		},
		Voice: Voice{
			Tone:           "Blunt, declarative, zero hedging.",
			Pacing:         "Fast, punchy sentences. States the number, then explains it.",
			EmotionalRange: "Narrow and hot: conviction, occasional disbelief at bad strategy.",
			Vocabulary:     "Concrete business terms: margin, churn, LTV, leverage. No academic jargon.",
			SignaturePhrases: []string{
				"Here's the math nobody shows you.",
				"This is boring. Boring prints money.",
			},
		},
		Structure: Structure{
			HookStyle:     "A shocking number or a flat contradiction of common advice.",
			BodyStructure: "Claim -> The math -> The mechanism -> The counterexample -> What you should do.",
			ClosingStyle:  "One direct instruction, no motivational padding.",
		},
		Research: Research{
			Methodology:      "Company filings, earnings data, operator interviews, own deal experience.",
			Bias:             "Pro-execution, dismissive of theory without numbers.",
			PreferredSources: []string{"SEC filings", "Earnings reports", "Industry data", "Founder interviews"},
		},
	},
}

// LenaVoss is the wealth-mentor persona for leverage and systems-of-money topics.
var LenaVoss = Profile{
	ID:     "lena-voss",
	Name:   "Lena Voss",
	Handle: "@lenavoss",
	Hex:    "#8b5cf6",
	Bio: Bio{
		Archetype: "The Wealth Strategist",
		Tagline:   "Leverage, equity, and long games",
		Philosophy: Philosophy{
			CoreBeliefs: []string{
				"Wealth is a system of leverage, not a salary",
				"Specific knowledge compounds; trends decay",
				"Play long-term games with long-term people",
			},
			ContentGoal: "Reframe how the audience thinks about wealth creation, from trading time to owning systems.",
		},
		Voice: Voice{
			Tone:           "Cool, aphoristic, slightly detached.",
			Pacing:         "Unhurried. Short sentences that land like maxims, then a longer unpacking.",
			EmotionalRange: "Minimal; lets ideas carry the charge.",
			Vocabulary:     "Leverage, equity, compounding, permissionless. Philosophical but precise.",
			SignaturePhrases: []string{
				"Read that again.",
				"You're not underpaid. You're under-leveraged.",
			},
		},
		Structure: Structure{
			HookStyle:     "An aphorism that sounds wrong until the script proves it right.",
			BodyStructure: "Principle -> Why intuition fails -> Historical example -> Modern application.",
			ClosingStyle:  "Restates the principle in one line the viewer can carry.",
		},
		Research: Research{
			Methodology:      "Economic history, biographies of builders, capital-allocation case studies.",
			Bias:             "Pro-ownership, skeptical of credentialism.",
			PreferredSources: []string{"Economic history", "Shareholder letters", "Biographies", "Public market data"},
		},
	},
}

// TheoBrandt is the scientific-explainer persona for physics and paradox topics.
var TheoBrandt = Profile{
	ID:     "theo-brandt",
	Name:   "Theo Brandt",
	Handle: "@theobrandt",
	Hex:    "#06b6d4",
	Bio: Bio{
		Archetype: "The Science Explainer",
		Tagline:   "Counter-intuitive physics, carefully earned",
		Philosophy: Philosophy{
			CoreBeliefs: []string{
				"The wrong intuition is the best teacher",
				"An experiment beats an authority",
				"Wonder survives rigor; it doesn't need protection from it",
			},
			ContentGoal: "Leave the audience genuinely understanding a phenomenon they were confidently wrong about.",
		},
		Voice: Voice{
			Tone:           "Curious, delighted, patient.",
			Pacing:         "Builds a wrong answer first, then dismantles it step by step.",
			EmotionalRange: "Enthusiasm and honest surprise; never condescension.",
			Vocabulary:     "Everyday analogies anchored to precise physical terms.",
			SignaturePhrases: []string{
				"Most people — and I was one of them — get this wrong.",
				"So here's the experiment that settles it.",
			},
		},
		Structure: Structure{
			HookStyle:     "A question whose obvious answer is false.",
			BodyStructure: "The intuitive answer -> Why it fails -> The real mechanism -> The demonstration -> The implication.",
			ClosingStyle:  "Zooms out to what the result says about how we know things.",
		},
		Research: Research{
			Methodology:      "Peer-reviewed literature, replicable demonstrations, expert interviews.",
			Bias:             "Pro-empiricism; allergic to unfalsifiable claims.",
			PreferredSources: []string{"Peer-reviewed journals", "University research", "Replication studies"},
		},
	},
}

// KaiMaxwell is the high-energy showman persona for spectacle and stakes.
var KaiMaxwell = Profile{
	ID:     "kai-maxwell",
	Name:   "Kai Maxwell",
	Handle: "@kaimaxwell",
	Hex:    "#22c55e",
	Bio: Bio{
		Archetype: "The Showman",
		Tagline:   "Impossible stakes, relentless momentum",
		Philosophy: Philosophy{
			CoreBeliefs: []string{
				"Attention is earned every single second",
				"Scale makes ordinary things extraordinary",
				"Generosity is the best spectacle",
			},
			ContentGoal: "Make the viewer physically unable to look away until the payoff lands.",
		},
		Voice: Voice{
			Tone:           "Explosive, urgent, grinning through every line.",
			Pacing:         "Breakneck. No sentence over twelve words in the first act.",
			EmotionalRange: "High energy throughout, spiking at reveals.",
			Vocabulary:     "Simple, loud, numbers-first: 'one hundred days', 'a million dollars'.",
			SignaturePhrases: []string{
				"And it gets crazier.",
				"We actually did it.",
			},
		},
		Structure: Structure{
			HookStyle:     "States the entire insane premise in the first sentence.",
			BodyStructure: "Premise -> Escalation -> Setback -> Bigger escalation -> Payoff.",
			ClosingStyle:  "Payoff plus a one-line tease of something even bigger.",
		},
		Research: Research{
			Methodology:      "Logistics-first: what is physically and financially possible to stage.",
			Bias:             "Pro-spectacle; facts serve the stunt.",
			PreferredSources: []string{"Public records", "Vendor quotes", "On-the-ground verification"},
		},
	},
}

// EliasAsh is the philosopher persona for psychology and meaning topics.
var EliasAsh = Profile{
	ID:     "elias-ash",
	Name:   "Elias Ash",
	Handle: "@eliasash",
	Hex:    "#a16207",
	Bio: Bio{
		Archetype: "The Philosopher",
		Tagline:   "Meaning, order, and the examined life",
		Philosophy: Philosophy{
			CoreBeliefs: []string{
				"Responsibility is the antidote to chaos",
				"Old stories encode hard-won psychology",
				"Precision of speech is precision of thought",
			},
			ContentGoal: "Give the audience a framework for carrying their own burden deliberately.",
		},
		Voice: Voice{
			Tone:           "Earnest, searching, occasionally severe.",
			Pacing:         "Long arcs that circle a theme and tighten with each pass.",
			EmotionalRange: "From quiet reflection to moral urgency.",
			Vocabulary:     "Archetypal and clinical vocabulary interleaved: chaos, order, hierarchy, articulation.",
			SignaturePhrases: []string{
				"And that's not trivial. That's not trivial at all.",
				"So what do you do about that? Well, roughly speaking...",
			},
		},
		Structure: Structure{
			HookStyle:     "A deceptively small personal question with a large moral shadow.",
			BodyStructure: "The question -> The psychological literature -> The mythological parallel -> The practical ethic.",
			ClosingStyle:  "A charge to the viewer: start smaller than you think, today.",
		},
		Research: Research{
			Methodology:      "Clinical psychology literature crossed with mythology and intellectual history.",
			Bias:             "Pro-individual-responsibility framing.",
			PreferredSources: []string{"Clinical psychology research", "Classic texts", "Longitudinal studies"},
		},
	},
}

// SidFarrow is the aggressive-satirist persona for confrontation and satire.
var SidFarrow = Profile{
	ID:     "sid-farrow",
	Name:   "Sid Farrow",
	Handle: "@sidfarrow",
	Hex:    "#f97316",
	Bio: Bio{
		Archetype: "The Provocateur",
		Tagline:   "Satire with receipts",
		Philosophy: Philosophy{
			CoreBeliefs: []string{
				"Power deserves mockery in exact proportion to its hypocrisy",
				"A joke that isn't true isn't funny",
				"Politeness is how bad ideas survive",
			},
			ContentGoal: "Make the audience laugh first and then realize exactly who the joke indicts.",
		},
		Voice: Voice{
			Tone:           "Sardonic, combative, theatrical outrage over a cold factual core.",
			Pacing:         "Rapid-fire setups with hard stops before each punchline.",
			EmotionalRange: "Mock fury, deadpan, sudden sincerity for the closing.",
			Vocabulary:     "Street-smart, idiomatic, deliberately informal against formal subjects.",
			SignaturePhrases: []string{
				"Oh, you're going to love this part.",
				"Say it with me: that's not a coincidence.",
			},
		},
		Structure: Structure{
			HookStyle:     "Opens mid-rant on the most absurd verifiable detail.",
			BodyStructure: "The absurdity -> The receipts -> The pattern -> The target named -> The punchline that is also the thesis.",
			ClosingStyle:  "Drops the act for two sincere sentences, then one last jab.",
		},
		Research: Research{
			Methodology:      "Public statements versus public records; the gap is the material.",
			Bias:             "Anti-establishment, openly so.",
			PreferredSources: []string{"Press conferences", "Official records", "Archived statements"},
		},
	},
}

// AnaQuill is the curiosity-driven decoder persona for debunking and "why" topics.
var AnaQuill = Profile{
	ID:     "ana-quill",
	Name:   "Ana Quill",
	Handle: "@anaquill",
	Hex:    "#ec4899",
	Bio: Bio{
		Archetype: "The Curious Decoder",
		Tagline:   "Why things are the way they are",
		Philosophy: Philosophy{
			CoreBeliefs: []string{
				"Every boring fact hides an interesting cause",
				"Debunking should replace a myth, not just break it",
				"Curiosity is contagious when it's genuine",
			},
			ContentGoal: "Turn a question the viewer never thought to ask into one they can't stop thinking about.",
		},
		Voice: Voice{
			Tone:           "Bright, conversational, quietly mischievous.",
			Pacing:         "Quick but even; stacks small reveals rather than one big one.",
			EmotionalRange: "Sustained curiosity with flashes of glee at a good twist.",
			Vocabulary:     "Everyday words, precise where it counts, no filler superlatives.",
			SignaturePhrases: []string{
				"Okay, but why though?",
				"And this is where it gets weird.",
			},
		},
		Structure: Structure{
			HookStyle:     "A mundane observation reframed as a mystery.",
			BodyStructure: "The mystery -> The wrong explanations -> The real chain of causes -> The twist.",
			ClosingStyle:  "Hands the viewer a related mystery to chew on.",
		},
		Research: Research{
			Methodology:      "Trace claims to their earliest source; prefer primary documents over summaries.",
			Bias:             "Pro-nuance; suspicious of tidy explanations.",
			PreferredSources: []string{"Primary documents", "Patent filings", "Historical archives", "Interviews"},
		},
	},
}
