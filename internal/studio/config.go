package studio

// WritingMode selects how the system instruction is compiled.
type WritingMode string

const (
	// ModeManual locks generation to an explicitly chosen persona.
	ModeManual WritingMode = "manual"
	// ModeAuto lets the model pick the persona via the selection protocol.
	ModeAuto WritingMode = "auto"
	// ModeBlend composes a primary persona with secondary influences.
	ModeBlend WritingMode = "blend"
)

// BlendConfig names the secondary personas layered over the primary in
// blend mode.
type BlendConfig struct {
	SecondaryIDs []string
}

// Sponsor is an optional sponsor integration woven into the script.
type Sponsor struct {
	Name    string
	Product string
	Message string
}

// ReferenceImage is an inline image attached to the generation request.
type ReferenceImage struct {
	MIMEType string
	Data     string // base64
}

// GeneratorConfig is the full intent for one script generation.
type GeneratorConfig struct {
	Topic    string
	Platform string
	Duration string
	Language string
	// ArabicDialect refines Language when it is Arabic.
	ArabicDialect string

	WritingMode WritingMode
	// CreatorID selects the persona in manual mode and the blend primary in
	// blend mode. Empty means the catalog default.
	CreatorID string
	// CustomInstruction is the optional user override layer in manual mode.
	CustomInstruction string
	Blend             BlendConfig

	ReferenceImages []ReferenceImage
	Sponsor         *Sponsor
}

// Durations lists the supported target lengths in menu order.
var Durations = []string{
	"Match Original Length",
	"30 Seconds (Fast)",
	"60 Seconds (Shorts)",
	"2 Minutes (Explainer)",
	"5 Minutes (Deep Dive)",
	"10 Minutes (Mini-Doc)",
	"20 Minutes (Full Documentary)",
}

// Platforms lists the supported publishing targets.
var Platforms = []string{
	"YouTube Shorts",
	"Instagram Reels",
	"TikTok",
	"YouTube Long Form",
	"LinkedIn Video",
	"Podcast Intro",
}

// Languages lists the supported output languages.
var Languages = []string{
	"English",
	"Urdu (Proper)",
	"Urdu (Roman + Script)",
	"Arabic",
	"French",
	"German",
	"Spanish",
	"Italian",
	"Portuguese",
}

// ArabicDialects lists the supported Arabic dialect refinements.
var ArabicDialects = []string{
	"Modern Standard (Fusha)",
	"Egyptian (Masri)",
	"Levantine (Shami)",
	"Gulf (Khaleeji)",
}

type durationSpec struct {
	MinWords  int
	Structure string
}

// durationMapping pins each target length to a word floor and a narrative
// structure the prompt demands. Unknown durations fall back to the Shorts
// entry.
var durationMapping = map[string]durationSpec{
	"30 Seconds (Fast)":             {75, "1 Act: Hook -> Rapid Value -> Punchline"},
	"60 Seconds (Shorts)":           {150, "3 Acts: Hook -> The Twist/Insight -> The CTA"},
	"2 Minutes (Explainer)":         {320, "Linear: Problem -> Context -> Solution -> Insight"},
	"5 Minutes (Deep Dive)":         {850, "Complex: Hook -> Context/History -> The Deep Analysis (Data) -> The Counter-Point -> Synthesis"},
	"10 Minutes (Mini-Doc)":         {4000, "Documentary: Chapter 1 (The Event) -> Chapter 2 (The Background) -> Chapter 3 (The Turning Point) -> Chapter 4 (The Aftermath) -> Deep Dive -> Conclusion"},
	"20 Minutes (Full Documentary)": {7000, "Epic: Multiple Narrative Arcs, Deep Historical Context, Expert Opinions, Philosophical Conclusion, Extended Case Studies"},
	"Match Original Length":         {0, "Mirror input structure"},
}

func durationFor(duration string) durationSpec {
	if spec, ok := durationMapping[duration]; ok {
		return spec
	}
	return durationMapping["60 Seconds (Shorts)"]
}

// languageInstruction renders the language directive. The two Urdu modes
// carry explicit script rules; Arabic may carry a dialect.
func languageInstruction(language, dialect string) string {
	switch language {
	case "Urdu (Proper)":
		return "LANGUAGE: Pure Urdu (Nastaliq Script). Do NOT use English/Roman characters."
	case "Urdu (Roman + Script)":
		return "LANGUAGE: Roman Urdu (English alphabet) FOLLOWED BY the actual Urdu Script in brackets [ ] for each sentence. Example: 'Main ja raha hoon [میں جا رہا ہوں]'."
	}
	if dialect != "" {
		return "LANGUAGE: " + language + " (Dialect: " + dialect + ")"
	}
	return "LANGUAGE: " + language
}
