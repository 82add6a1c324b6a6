package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voxforge/studio/internal/persona"
)

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List the creator persona catalog",
	Run:   runPersonas,
}

func init() {
	rootCmd.AddCommand(personasCmd)
}

func runPersonas(cmd *cobra.Command, args []string) {
	reg := persona.NewRegistry(persona.DefaultCatalog())
	fmt.Println()
	for i, p := range reg.List() {
		name := personaStyle(p).Render(p.Name)
		def := ""
		if i == 0 {
			def = helpStyle.Render(" (default)")
		}
		fmt.Printf("  %s %s%s\n", name, visualStyle.Render(p.Handle), def)
		fmt.Printf("    %-10s %s\n", "id:", p.ID)
		fmt.Printf("    %-10s %s\n", "archetype:", p.Bio.Archetype)
		fmt.Printf("    %-10s %s\n", "tagline:", p.Bio.Tagline)
		fmt.Printf("    %-10s %s | %s\n", "voice:", p.Bio.Voice.Tone, p.Bio.Voice.Pacing)
		if len(p.Bio.Voice.SignaturePhrases) > 0 {
			fmt.Printf("    %-10s %q\n", "phrases:", strings.Join(p.Bio.Voice.SignaturePhrases, `", "`))
		}
		fmt.Println()
	}
}
