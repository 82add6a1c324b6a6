package prompt

import (
	"fmt"
	"strings"

	"github.com/voxforge/studio/internal/persona"
)

// thumbnailStyle is a persona's visual identity for thumbnails: the look a
// returning viewer recognizes before reading a single word.
type thumbnailStyle struct {
	VisualDNA   string
	Aesthetic   string
	Colors      string
	Composition string
	Elements    []string
	FontRule    string
}

const (
	fontBoldSans  = "Bold Sans-Serif (Impact or Montserrat)"
	fontCinematic = "Cinematic Serif (Cinzel)"
	fontClean     = "Clean geometric Sans-Serif (Montserrat)"
	fontEditorial = "Editorial Serif with generous letter spacing"
)

var defaultThumbnailStyle = thumbnailStyle{
	VisualDNA:   "High-contrast photographic realism with a single clear focal subject",
	Aesthetic:   "Modern documentary",
	Colors:      "Deep navy background with one saturated accent color",
	Composition: "Rule of thirds, subject on the left, text space on the right",
	Elements:    []string{"one strong focal object", "subtle depth-of-field blur on background only"},
	FontRule:    fontBoldSans,
}

// thumbnailStyles keys each catalog persona to its thumbnail identity. An
// unknown id falls back to defaultThumbnailStyle so custom personas still
// render.
var thumbnailStyles = map[string]thumbnailStyle{
	"arjun-vale": {
		VisualDNA:   "Split-screen comparison: claim on one side, evidence on the other",
		Aesthetic:   "Academic documentary, whiteboard-meets-newsroom",
		Colors:      "Cool blues with white annotations",
		Composition: "Symmetric split with a thin dividing line, diagram overlays",
		Elements:    []string{"hand-drawn arrows", "a circled data point", "a small source tag"},
		FontRule:    fontClean,
	},
	"mira-solis": {
		VisualDNA:   "Intimate golden-hour portrait, eyes toward the camera",
		Aesthetic:   "Warm human-interest photojournalism",
		Colors:      "Amber and soft gold with gentle vignette",
		Composition: "Close-up face filling the right third, soft bokeh behind",
		Elements:    []string{"a single human face with visible emotion", "natural window light"},
		FontRule:    fontEditorial,
	},
	"devon-cruz": {
		VisualDNA:   "Boardroom stakes: a chart mid-collapse or mid-surge behind the subject",
		Aesthetic:   "Aggressive business news",
		Colors:      "Red and black with white numerals",
		Composition: "Subject foreground left, oversized chart or figure behind",
		Elements:    []string{"a bold percentage or dollar figure", "a rising or crashing line chart"},
		FontRule:    fontBoldSans,
	},
	"lena-voss": {
		VisualDNA:   "Luxury still life: assets rendered like a watch advertisement",
		Aesthetic:   "Cinematic wealth editorial",
		Colors:      "Deep purple and champagne gold, low-key lighting",
		Composition: "Centered hero object on reflective black surface",
		Elements:    []string{"marble or brushed-metal textures", "a faint skyline in the background"},
		FontRule:    fontEditorial,
	},
	"theo-brandt": {
		VisualDNA:   "A single impossible-looking physical phenomenon, rendered literally",
		Aesthetic:   "Conceptual 3D science render",
		Colors:      "Cyan glow on near-black, volumetric light",
		Composition: "Centered phenomenon with scale reference (a person or a coin)",
		Elements:    []string{"glowing field lines or particle trails", "a clean annotation callout"},
		FontRule:    fontClean,
	},
	"kai-maxwell": {
		VisualDNA:   "Maximum spectacle: the most extreme frame of the stunt or stakes",
		Aesthetic:   "Hyper-saturated viral event photography",
		Colors:      "Electric green accents over punchy full-spectrum color",
		Composition: "Wide shot of the spectacle, shocked face inset in a corner circle",
		Elements:    []string{"an exaggerated facial reaction", "motion blur on the action", "a red arrow"},
		FontRule:    fontBoldSans,
	},
	"elias-ash": {
		VisualDNA:   "Chiaroscuro noir: one figure, one light source, long shadows",
		Aesthetic:   "Philosophical noir, old-master painting energy",
		Colors:      "Sepia and umber, near-monochrome",
		Composition: "Low-key portrait in the lower third, vast negative space above",
		Elements:    []string{"a single candle or desk lamp", "an open book or chess piece"},
		FontRule:    fontCinematic,
	},
	"sid-farrow": {
		VisualDNA:   "Satirical news collage: the target headline, circled and stamped",
		Aesthetic:   "Torn-newsprint roast, tabloid meets court exhibit",
		Colors:      "Orange highlighter over desaturated newsprint gray",
		Composition: "Layered clippings at slight angles, red circle on the key phrase",
		Elements:    []string{"a rubber-stamp graphic", "highlighter strokes", "a raised eyebrow portrait"},
		FontRule:    fontBoldSans,
	},
	"ana-quill": {
		VisualDNA:   "Cutaway diagram of an everyday object revealing its hidden mechanism",
		Aesthetic:   "Playful explanatory infographic",
		Colors:      "Soft white background with pink and teal accent callouts",
		Composition: "Exploded-view object centered, numbered callout lines radiating out",
		Elements:    []string{"dotted annotation lines", "a magnifying-glass inset", "a question mark motif"},
		FontRule:    fontClean,
	},
}

// ThumbnailSpec carries the per-request inputs for a thumbnail prompt.
// AspectRatio defaults to 16:9 when empty.
type ThumbnailSpec struct {
	Topic       string
	TextOverlay string
	Language    string
	AspectRatio string
}

// Thumbnail compiles an image-generation prompt for a video thumbnail in the
// given persona's visual identity. Pure and deterministic: same profile and
// spec, same prompt.
func Thumbnail(p persona.Profile, spec ThumbnailSpec) string {
	style, ok := thumbnailStyles[p.ID]
	if !ok {
		style = defaultThumbnailStyle
	}
	aspect := spec.AspectRatio
	if aspect == "" {
		aspect = "16:9"
	}

	var b strings.Builder
	b.WriteString("[STYLE DNA]\n")
	fmt.Fprintf(&b, "Creator Style: %s\n", style.VisualDNA)
	fmt.Fprintf(&b, "Aesthetic: %s\n", style.Aesthetic)
	fmt.Fprintf(&b, "Color Palette: %s\n", style.Colors)
	fmt.Fprintf(&b, "Composition: %s\n", style.Composition)
	fmt.Fprintf(&b, "Mandatory Elements: %s\n\n", strings.Join(style.Elements, ", "))

	b.WriteString("[SUBJECT MATTER]\n")
	fmt.Fprintf(&b, "Core Topic: %s\n", spec.Topic)
	fmt.Fprintf(&b, "Include imagery related to: %q (e.g., if economic, show graphs/currency; if tech, show circuits/devices).\n", spec.Topic)
	b.WriteString("Integrate the topic's central metaphor into the composition rather than adding it as a sticker.\n\n")

	b.WriteString("[TEXT OVERLAY]\n")
	fmt.Fprintf(&b, "Text: %q\n", spec.TextOverlay)
	fmt.Fprintf(&b, "Font Rule: %s\n", fontRuleFor(style, spec.Language))
	b.WriteString("Text Visibility: Large, legible, high contrast against background.\n\n")

	b.WriteString("[TECHNICAL]\n")
	fmt.Fprintf(&b, "Aspect Ratio: %s\n", aspect)
	b.WriteString("Quality: 8k, Unreal Engine 5 render style, sharp focus, no blur.\n")
	return b.String()
}

// fontRuleFor picks the overlay typography. Script languages override the
// persona's latin font so the overlay reads natively.
func fontRuleFor(style thumbnailStyle, language string) string {
	lang := strings.ToLower(language)
	if strings.Contains(lang, "urdu") || strings.Contains(lang, "hindi") {
		return "Render the text overlay in a bold, calligraphic Nastaliq-style font or Devanagari script. Ensure cultural authenticity."
	}
	return style.FontRule
}
