package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxforge/studio/internal/persona"
)

func thumbProfile(id string) persona.Profile {
	for _, p := range persona.DefaultCatalog() {
		if p.ID == id {
			return p
		}
	}
	return persona.Profile{ID: id, Name: id}
}

func TestThumbnailIsDeterministic(t *testing.T) {
	spec := ThumbnailSpec{Topic: "the chip shortage", TextOverlay: "NO CHIPS LEFT"}
	p := thumbProfile("arjun-vale")
	assert.Equal(t, Thumbnail(p, spec), Thumbnail(p, spec))
}

func TestThumbnailCarriesPersonaStyle(t *testing.T) {
	out := Thumbnail(thumbProfile("elias-ash"), ThumbnailSpec{
		Topic:       "why boredom matters",
		TextOverlay: "THE LOST ART",
	})

	assert.Contains(t, out, "[STYLE DNA]")
	assert.Contains(t, out, "Chiaroscuro noir")
	assert.Contains(t, out, "Cinematic Serif (Cinzel)")
	assert.Contains(t, out, `Core Topic: why boredom matters`)
	assert.Contains(t, out, `Text: "THE LOST ART"`)
	assert.Contains(t, out, "Aspect Ratio: 16:9")
	assert.Contains(t, out, "Unreal Engine 5 render style")
}

func TestThumbnailScriptLanguageOverridesFont(t *testing.T) {
	out := Thumbnail(thumbProfile("kai-maxwell"), ThumbnailSpec{
		Topic:       "street food economics",
		TextOverlay: "SASTA YA MEHNGA?",
		Language:    "Urdu/Hindi",
	})

	assert.Contains(t, out, "Nastaliq-style font or Devanagari script")
	assert.NotContains(t, out, "Impact or Montserrat")
}

func TestThumbnailAspectOverride(t *testing.T) {
	out := Thumbnail(thumbProfile("mira-solis"), ThumbnailSpec{
		Topic:       "x",
		AspectRatio: "9:16",
	})
	assert.Contains(t, out, "Aspect Ratio: 9:16")
}

func TestThumbnailUnknownPersonaFallsBack(t *testing.T) {
	out := Thumbnail(persona.Profile{ID: "custom-voice", Name: "Custom"}, ThumbnailSpec{
		Topic:       "x",
		TextOverlay: "X",
	})
	assert.Contains(t, out, "High-contrast photographic realism")
}
