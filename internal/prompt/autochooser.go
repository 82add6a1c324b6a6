package prompt

import (
	"fmt"
	"strings"

	"github.com/voxforge/studio/internal/persona"
)

// selectionRules is the fixed, hand-authored priority table mapping topic
// archetypes to persona classes. Determinism is the point: the same topic
// profile must keep preferring the same persona class, so the table is plain
// inspectable data rather than anything scored or learned.
var selectionRules = []string{
	"Geopolitics / Policy / Debunking -> Arjun Vale or Ana Quill.",
	"Human Suffering / Society / Justice -> Mira Solis.",
	"Wealth / Business / Systems -> Devon Cruz or Lena Voss.",
	"Science / Paradox / Physics -> Theo Brandt.",
	"Psychology / Meaning / Order -> Elias Ash.",
	"Spectacle / Money Challenges -> Kai Maxwell.",
	"Political Satire / Aggression -> Sid Farrow.",
}

// AutoSelection builds the system instruction for auto match mode: a
// two-phase protocol that decodes the topic, matches it against the rule
// table, and then writes the script under the selected persona. Fails with
// ErrInvalidIntent when no candidates are provided.
func AutoSelection(topic string, candidates []persona.Profile) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("auto-selection with zero candidates: %w", ErrInvalidIntent)
	}

	topic = truncate(topic, selectionTopicCeiling)

	var list strings.Builder
	for _, c := range candidates {
		// Only essential bio data goes in, to keep the decision focused.
		beliefs := c.Bio.Philosophy.CoreBeliefs
		if len(beliefs) > 2 {
			beliefs = beliefs[:2]
		}
		fmt.Fprintf(&list, "- %s (ID: %s)\n", c.Name, c.ID)
		fmt.Fprintf(&list, "  Tagline: %s\n", c.Bio.Tagline)
		fmt.Fprintf(&list, "  Archetype: %s\n", c.Bio.Archetype)
		fmt.Fprintf(&list, "  Core Beliefs: %s\n", strings.Join(beliefs, ", "))
		fmt.Fprintf(&list, "  Research Method: %s\n", c.Bio.Research.Methodology)
	}

	var b strings.Builder
	b.WriteString("*** AUTO MATCH INTELLIGENCE ENGINE ACTIVE ***\n\n")

	b.WriteString("[OBJECTIVE]\n")
	fmt.Fprintf(&b, "You are an autonomous Creator Intelligence System. Select the single best creator persona to write a script about the topic: %q.\n\n", topic)

	b.WriteString("[PHASE 1: TOPIC DECODING]\n")
	b.WriteString("Analyze the input topic for:\n")
	b.WriteString("- Factual Intensity (does it need rigorous citation?)\n")
	b.WriteString("- Emotional Resonance (does it need empathy or anger?)\n")
	b.WriteString("- Complexity (does it need simplification or deep philosophy?)\n")
	b.WriteString("- Narrative Shape (is it a story, a roast, or a lecture?)\n\n")

	b.WriteString("[PHASE 2: PROFILE MATCHING]\n")
	b.WriteString("Compare the topic against these profiles:\n\n")
	b.WriteString(list.String())
	b.WriteString("\n[SELECTION WEIGHTING RULES]\n")
	for i, rule := range selectionRules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rule)
	}
	b.WriteString("\n[CONSTRAINTS]\n")
	fmt.Fprintf(&b, "- DEFAULT: %s is the default for general educational topics, but ONLY if they rely on logic and data.\n", candidates[0].Name)
	b.WriteString("- NO RANDOMNESS: Do not rotate creators for variety. The same topic profile must always prefer the same persona. Choose the absolute best fit.\n")
	b.WriteString("- STRICT ISOLATION: Once a creator is chosen, ignore all others. Do not blend.\n\n")

	b.WriteString("[OUTPUT REQUIREMENT]\n")
	b.WriteString("You must populate the 'autoCreatorSelection' field in the JSON response:\n")
	b.WriteString("- selectedId: the ID of the chosen creator.\n")
	b.WriteString("- reason: a public-facing one-sentence disclosure of why this persona fits the topic.\n")
	b.WriteString("- alternatives: list 1-2 runner-up IDs.\n\n")

	b.WriteString("[EXECUTION PHASE]\n")
	b.WriteString("After selection, write the script with these 4 enhancement layers active:\n")
	b.WriteString("1. STYLE LOCK: strictly adhere to the selected creator's bio, tone, and philosophy. Do not drift into generic AI voice.\n")
	b.WriteString("2. DYNAMIC HOOK: the first segment is a high-retention hook (Pattern Interrupt or Curiosity Gap).\n")
	b.WriteString("3. DEEP RESEARCH: use deep reasoning to provide context and nuance.\n")
	b.WriteString("4. CLARITY & QUALITY: monitor pacing, remove filler, ensure logical flow.\n\n")
	b.WriteString("Write the full script package now.\n")

	return b.String(), nil
}
