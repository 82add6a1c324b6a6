package cli

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/voxforge/studio/internal/ingest"
	"github.com/voxforge/studio/internal/progress"
	"github.com/voxforge/studio/internal/prompt"
	"github.com/voxforge/studio/internal/store"
	"github.com/voxforge/studio/internal/studio"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a script package from a topic, URL, or text file",
	RunE:  runGenerate,
}

var (
	flagInput       string
	flagPlatform    string
	flagDuration    string
	flagLanguage    string
	flagDialect     string
	flagCreator     string
	flagMode        string
	flagBlend       string
	flagInstruction string
	flagSponsor     string
	flagImages      []string
	flagNoSave      bool
	flagPlan        string
	flagTUI         bool
	flagJSON        bool
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&flagInput, "input", "i", "", "Topic text, URL, or text file path")
	generateCmd.Flags().StringVarP(&flagPlatform, "platform", "P", "YouTube Shorts", "Target platform")
	generateCmd.Flags().StringVarP(&flagDuration, "duration", "d", "60 Seconds (Shorts)", "Target duration")
	generateCmd.Flags().StringVarP(&flagLanguage, "language", "l", "English", "Output language")
	generateCmd.Flags().StringVar(&flagDialect, "dialect", "", "Arabic dialect (only with --language Arabic)")
	generateCmd.Flags().StringVarP(&flagCreator, "creator", "c", "", "Persona id (manual mode) or blend primary (see 'studio personas')")
	generateCmd.Flags().StringVar(&flagMode, "mode", "manual", "Writing mode: manual, auto, blend")
	generateCmd.Flags().StringVar(&flagBlend, "blend", "", "Comma-separated secondary persona ids (blend mode, max 3)")
	generateCmd.Flags().StringVar(&flagInstruction, "instruction", "", "Custom instruction layered over the persona (manual mode)")
	generateCmd.Flags().StringVar(&flagSponsor, "sponsor", "", "Sponsor integration as name:product:message")
	generateCmd.Flags().StringArrayVar(&flagImages, "image", nil, "Reference image file (repeatable)")
	generateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Skip saving to history")
	generateCmd.Flags().StringVar(&flagPlan, "plan", "free", "Subscription plan for quota checks: free, pro")
	generateCmd.Flags().BoolVarP(&flagTUI, "tui", "t", false, "Interactive persona and mode picker")
	generateCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the script package as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if flagTUI {
		if err := runInteractiveSetup(); err != nil {
			return err
		}
	}

	if flagInput == "" {
		return fmt.Errorf("--input (-i) is required")
	}

	mode := studio.WritingMode(flagMode)
	switch mode {
	case studio.ModeManual, studio.ModeAuto, studio.ModeBlend:
	default:
		return fmt.Errorf("invalid mode %q: must be manual, auto, or blend", flagMode)
	}

	var secondaries []string
	if flagBlend != "" {
		if mode != studio.ModeBlend {
			return fmt.Errorf("--blend requires --mode blend")
		}
		for _, id := range strings.Split(flagBlend, ",") {
			secondaries = append(secondaries, strings.TrimSpace(id))
		}
		if len(secondaries) > prompt.MaxBlendSecondaries {
			return fmt.Errorf("too many blend secondaries %d: max %d", len(secondaries), prompt.MaxBlendSecondaries)
		}
	}
	if mode == studio.ModeBlend && len(secondaries) == 0 {
		return fmt.Errorf("--mode blend requires --blend with at least one secondary persona")
	}

	if !contains(studio.Durations, flagDuration) {
		return fmt.Errorf("invalid duration %q: must be one of %s", flagDuration, strings.Join(studio.Durations, ", "))
	}
	if !contains(studio.Platforms, flagPlatform) {
		return fmt.Errorf("invalid platform %q: must be one of %s", flagPlatform, strings.Join(studio.Platforms, ", "))
	}
	if !contains(studio.Languages, flagLanguage) {
		return fmt.Errorf("invalid language %q: must be one of %s", flagLanguage, strings.Join(studio.Languages, ", "))
	}
	if flagDialect != "" {
		if flagLanguage != "Arabic" {
			return fmt.Errorf("--dialect is only valid with --language Arabic")
		}
		if !contains(studio.ArabicDialects, flagDialect) {
			return fmt.Errorf("invalid dialect %q: must be one of %s", flagDialect, strings.Join(studio.ArabicDialects, ", "))
		}
	}
	if flagPlan != string(store.PlanFree) && flagPlan != string(store.PlanPro) {
		return fmt.Errorf("invalid plan %q: must be free or pro", flagPlan)
	}

	sponsor, err := parseSponsor(flagSponsor)
	if err != nil {
		return err
	}
	images, err := loadImages(flagImages)
	if err != nil {
		return err
	}

	s, err := newStudio(ctx)
	if err != nil {
		return err
	}

	// History store is optional for generation; quota enforcement only
	// applies when one is configured.
	var st store.Store
	if !flagNoSave && flagTable != "" {
		st, err = newStore(ctx)
		if err != nil {
			return err
		}
		ok, err := st.CheckLimit(ctx, store.Plan(flagPlan))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("daily limit reached (%d scripts on the free plan); try again tomorrow or use --plan pro", store.FreeDailyLimit)
		}
	}

	var onProgress progress.Callback = progress.NopCallback
	var renderer *progress.BarRenderer
	if !flagVerbose && !flagJSON {
		renderer = progress.NewBarRenderer(os.Stdout)
		defer renderer.Finish()
		onProgress = renderer.Handle
	}
	start := time.Now()

	onProgress(progress.NewEvent(progress.StageIngest, "Resolving topic input", 0.05, start))
	content, err := ingest.Ingest(ctx, flagInput)
	if err != nil {
		return err
	}

	cfg := studio.GeneratorConfig{
		Topic:             content.Text,
		Platform:          flagPlatform,
		Duration:          flagDuration,
		Language:          flagLanguage,
		ArabicDialect:     flagDialect,
		WritingMode:       mode,
		CreatorID:         flagCreator,
		CustomInstruction: flagInstruction,
		Blend:             studio.BlendConfig{SecondaryIDs: secondaries},
		ReferenceImages:   images,
		Sponsor:           sponsor,
	}

	onProgress(progress.NewEvent(progress.StageInvoke, "Writing script", 0.30, start))
	doc, err := s.GenerateScript(ctx, cfg)
	if err != nil {
		return err
	}

	if st != nil {
		onProgress(progress.NewEvent(progress.StageSave, "Saving to history", 0.90, start))
		if err := st.Save(ctx, &store.SavedScript{Document: *doc}); err != nil {
			return err
		}
		if _, err := st.IncrementUsage(ctx); err != nil {
			return err
		}
	}

	done := progress.NewEvent(progress.StageComplete, "Done", 1.0, start)
	done.ScriptID = doc.ID
	done.Title = doc.Title
	done.Segments = len(doc.Segments)
	onProgress(done)

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(doc)
	}
	printScript(os.Stdout, doc, s.Personas())
	return nil
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

func parseSponsor(spec string) (*studio.Sponsor, error) {
	if spec == "" {
		return nil, nil
	}
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid --sponsor %q: expected name:product:message", spec)
	}
	return &studio.Sponsor{Name: parts[0], Product: parts[1], Message: parts[2]}, nil
}

var imageMIMETypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

func loadImages(paths []string) ([]studio.ReferenceImage, error) {
	images := make([]studio.ReferenceImage, 0, len(paths))
	for _, path := range paths {
		mime, ok := imageMIMETypes[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil, fmt.Errorf("unsupported image type %s: must be png, jpg, or webp", path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read image %s: %w", path, err)
		}
		images = append(images, studio.ReferenceImage{
			MIMEType: mime,
			Data:     base64.StdEncoding.EncodeToString(data),
		})
	}
	return images, nil
}
