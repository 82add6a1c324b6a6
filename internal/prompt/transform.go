package prompt

import (
	"fmt"
	"strings"

	"github.com/voxforge/studio/internal/persona"
)

// SummaryLength selects how aggressively Summarize condenses.
type SummaryLength string

const (
	SummaryShort    SummaryLength = "Short"
	SummaryMedium   SummaryLength = "Medium"
	SummaryDetailed SummaryLength = "Detailed"
)

var summaryInstructions = map[SummaryLength]string{
	SummaryShort:    "Condense to the absolute core hook and conclusion. Max 150 words.",
	SummaryMedium:   "Retain main arguments but remove examples and fluff. Approx 50% of original.",
	SummaryDetailed: "Keep all distinct points but tighten phrasing. Approx 80% of original.",
}

// ToneChange builds the instruction for rewriting flat script text in a new
// tone. Structure, argument order, and facts are non-negotiable constraints.
func ToneChange(scriptText, targetTone string) string {
	var b strings.Builder
	b.WriteString("ROLE: Master Script Editor.\n")
	fmt.Fprintf(&b, "TASK: Rewrite the following script to have a %q tone.\n\n", targetTone)
	b.WriteString("[ALGORITHMIC RULES]\n")
	b.WriteString("1. ANALYZE the current emotional weight and rhythm.\n")
	fmt.Fprintf(&b, "2. TRANSFORM the vocabulary and sentence structure to match %q.\n", targetTone)
	b.WriteString("3. CONSTRAINT: you MUST preserve the original paragraph structure, argument order, and factual details. Do not summarize. Do not add new facts.\n")
	b.WriteString("4. GOAL: the output must feel like the exact same script, just spoken by someone with a different emotional intent.\n\n")
	writeInputAndOutput(&b, scriptText, "Return ONLY the rewritten script text. No meta-commentary.")
	return b.String()
}

// StyleChange builds the instruction for rewriting flat script text in a
// target persona's stylistic framework.
func StyleChange(scriptText string, target persona.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ROLE: Ghostwriter for %s.\n", target.Name)
	fmt.Fprintf(&b, "TASK: Rewrite the provided script to match the specific stylistic framework of %s.\n\n", target.Name)
	b.WriteString("[CREATOR PROFILE]\n")
	fmt.Fprintf(&b, "- Archetype: %s\n", target.Bio.Archetype)
	fmt.Fprintf(&b, "- Tone: %s\n", target.Bio.Voice.Tone)
	fmt.Fprintf(&b, "- Vocabulary: %s\n", target.Bio.Voice.Vocabulary)
	fmt.Fprintf(&b, "- Structural Signature: %s\n\n", target.Bio.Structure.BodyStructure)
	b.WriteString("[EXECUTION RULES]\n")
	b.WriteString("1. ABSORB the input script's topic and key arguments.\n")
	fmt.Fprintf(&b, "2. REWRITE it as if %s is speaking it. Use their metaphors, sentence length, and rhetorical devices.\n", target.Name)
	if len(target.Bio.Voice.SignaturePhrases) > 0 {
		fmt.Fprintf(&b, "3. INTEGRATE their signature phrases naturally if appropriate (e.g. %q).\n", target.Bio.Voice.SignaturePhrases)
	} else {
		b.WriteString("3. INTEGRATE their rhetorical habits naturally.\n")
	}
	b.WriteString("4. PRESERVE the core truth. Do not hallucinate new data points, but you may reframe existing ones through their lens.\n\n")
	writeInputAndOutput(&b, scriptText, "Return ONLY the rewritten script text.")
	return b.String()
}

// Summarize builds the condensing instruction for the given target length.
// Unknown lengths fall back to Medium.
func Summarize(scriptText string, length SummaryLength) string {
	instr, ok := summaryInstructions[length]
	if !ok {
		instr = summaryInstructions[SummaryMedium]
	}
	var b strings.Builder
	b.WriteString("ROLE: Executive Script Editor.\n")
	fmt.Fprintf(&b, "TASK: Condense the script based on the following constraint: %s\n\n", instr)
	b.WriteString("[LOGIC]\n")
	b.WriteString("1. IDENTIFY the narrative arc (beginning -> middle -> end).\n")
	b.WriteString("2. STRIP away repetition, filler words, and secondary elaborations.\n")
	b.WriteString("3. PRESERVE narrative continuity. The output must be a coherent, read-aloud script, NOT a bulleted list.\n")
	b.WriteString("4. TONE: keep the original intent, just sharper.\n\n")
	writeInputAndOutput(&b, scriptText, "Return ONLY the condensed script text.")
	return b.String()
}

// AddQuestions builds the additive-only reflective-questions instruction.
func AddQuestions(scriptText string) string {
	var b strings.Builder
	b.WriteString("ROLE: Socratic Engagement Engine.\n")
	b.WriteString("TASK: Deepen the following script by appending or weaving in 3-4 profound, relevant questions.\n\n")
	b.WriteString("[BEHAVIOR]\n")
	b.WriteString("1. ANALYZE the script's central theme and conclusion.\n")
	b.WriteString("2. GENERATE questions that challenge the viewer's assumptions, encourage self-reflection, and open a loop for future thought.\n")
	b.WriteString("3. INTEGRATION: add the questions naturally, either as a closing reflection section or woven into the conclusion if it fits seamlessly.\n")
	b.WriteString("4. Do NOT change the original text substantially; primarily ADD to it.\n\n")
	writeInputAndOutput(&b, scriptText, "Return the full script with the new questions integrated.")
	return b.String()
}

// GrammarFix builds the voice-preserving correction instruction.
func GrammarFix(scriptText, voiceName string) string {
	var b strings.Builder
	b.WriteString("ROLE: Copy editor.\n")
	fmt.Fprintf(&b, "TASK: Correct grammar and spelling only. Preserve %s's voice, rhythm, and word choices exactly. Do not rewrite, reorder, or improve style.\n\n", voiceName)
	writeInputAndOutput(&b, scriptText, "Return ONLY the corrected script text.")
	return b.String()
}

func writeInputAndOutput(b *strings.Builder, scriptText, outputRule string) {
	b.WriteString("INPUT SCRIPT:\n\"\"\"\n")
	b.WriteString(scriptText)
	b.WriteString("\n\"\"\"\n\nOUTPUT:\n")
	b.WriteString(outputRule)
	b.WriteString("\n")
}
