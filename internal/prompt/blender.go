package prompt

import (
	"fmt"
	"strings"

	"github.com/voxforge/studio/internal/persona"
)

// Blend builds the system instruction for blend mode. The primary persona
// owns structure, hook, and closing at dominant weight; each secondary
// contributes tone and vocabulary only. Fails with ErrInvalidIntent when
// there are no secondaries, more than MaxBlendSecondaries, or a secondary
// duplicates the primary.
func Blend(primary persona.Profile, secondaries []persona.Profile) (string, error) {
	if len(secondaries) == 0 {
		return "", fmt.Errorf("blend with zero secondaries: %w", ErrInvalidIntent)
	}
	if len(secondaries) > MaxBlendSecondaries {
		return "", fmt.Errorf("blend with %d secondaries (max %d): %w", len(secondaries), MaxBlendSecondaries, ErrInvalidIntent)
	}
	names := make([]string, 0, len(secondaries))
	for _, s := range secondaries {
		if s.ID == primary.ID {
			return "", fmt.Errorf("blend secondary %q duplicates primary: %w", s.ID, ErrInvalidIntent)
		}
		names = append(names, s.Name)
	}

	var infusion strings.Builder
	for _, s := range secondaries {
		fmt.Fprintf(&infusion, "   [SECONDARY INFLUENCE: %s]\n", s.Name)
		fmt.Fprintf(&infusion, "   - Contribution: inject their %s tone and %s vocabulary.\n", s.Bio.Voice.Tone, s.Bio.Voice.Vocabulary)
		infusion.WriteString("   - Constraint: do NOT override the primary narrative structure. Use as 'spice', not 'base'.\n")
	}

	var b strings.Builder
	b.WriteString("*** CREATOR BLEND STUDIO ACTIVE ***\n\n")

	b.WriteString("[CONFIGURATION]\n")
	fmt.Fprintf(&b, "PRIMARY VOICE: %s (%s)\n", primary.Name, primary.Bio.Archetype)
	fmt.Fprintf(&b, "SECONDARY LAYERS: %s\n\n", strings.Join(names, ", "))

	b.WriteString("[BLENDING ARCHITECTURE]\n\n")
	fmt.Fprintf(&b, "1. THE BACKBONE (70%% influence - %s)\n", primary.Name)
	fmt.Fprintf(&b, "   - The script structure, hook style, and logical flow MUST follow %s.\n", primary.Name)
	fmt.Fprintf(&b, "   - Hook style: %s\n", primary.Bio.Structure.HookStyle)
	fmt.Fprintf(&b, "   - Closing style: %s\n\n", primary.Bio.Structure.ClosingStyle)

	b.WriteString("2. THE INFUSION (30% influence - secondary creators)\n")
	b.WriteString(infusion.String())
	b.WriteString("\n3. CONFLICT RESOLUTION\n")
	b.WriteString("   - If the primary register is calm and a secondary is hyper-energetic, keep the primary's pacing but allow the secondary's vocabulary at emotional peaks only.\n")
	b.WriteString("   - Do not let contradictory ideologies break the narrative flow.\n\n")

	b.WriteString("[OUTPUT REQUIREMENT]\n")
	b.WriteString("You must populate the 'blendMetadata' field in the JSON response:\n")
	b.WriteString("- primaryCreator: name of the primary.\n")
	b.WriteString("- secondaryCreators: list of secondary names.\n")
	fmt.Fprintf(&b, "- blendRatio: a human-readable description of the mix (e.g. \"%s's structure with %s's vocabulary\").\n\n", primary.Name, names[0])

	b.WriteString("[INTELLIGENCE LAYERS]\n")
	b.WriteString("Apply these concurrent optimizations during generation:\n")
	b.WriteString("1. DYNAMIC HOOK: the opening must be potent and style-aligned.\n")
	b.WriteString("2. DEEP RESEARCH: inject high-resolution context and facts.\n")
	b.WriteString("3. QUALITY MONITOR: zero fluff, high signal-to-noise ratio.\n")
	b.WriteString("4. CLARITY: ground abstract concepts with concrete examples.\n\n")
	b.WriteString("Proceed to write the blended script now.\n")

	return b.String(), nil
}
