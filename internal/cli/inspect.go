package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxforge/studio/internal/store"
	"github.com/voxforge/studio/internal/studio"
)

// Inspection commands run one orchestration operation against a saved
// script and print the result as JSON. Analyze additionally writes the
// result back onto the history entry.

var analyzeCmd = &cobra.Command{
	Use:   "analyze <script-id>",
	Short: "Score a saved script for viral potential and retention risks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		saved, st, err := loadScript(ctx, args[0])
		if err != nil {
			return err
		}
		s, err := newStudio(ctx)
		if err != nil {
			return err
		}
		analysis, err := s.Analyze(ctx, &saved.Document)
		if err != nil {
			return err
		}
		saved.Analysis = analysis
		if err := st.Save(ctx, saved); err != nil {
			return err
		}
		return printJSON(analysis)
	},
}

var hooksCmd = &cobra.Command{
	Use:   "hooks <script-id>",
	Short: "Propose alternative hooks for a saved script",
	Args:  cobra.ExactArgs(1),
	RunE: inspectOp(func(ctx context.Context, s *studio.Studio, saved *store.SavedScript) (any, error) {
		return s.GenerateHooks(ctx, &saved.Document)
	}),
}

var enhanceCmd = &cobra.Command{
	Use:   "enhance <script-id>",
	Short: "Report retention and engagement improvements for a saved script",
	Args:  cobra.ExactArgs(1),
	RunE: inspectOp(func(ctx context.Context, s *studio.Studio, saved *store.SavedScript) (any, error) {
		return s.Enhance(ctx, &saved.Document)
	}),
}

var simulateCmd = &cobra.Command{
	Use:   "simulate <script-id>",
	Short: "Run a synthetic audience screening on a saved script",
	Args:  cobra.ExactArgs(1),
	RunE: inspectOp(func(ctx context.Context, s *studio.Studio, saved *store.SavedScript) (any, error) {
		return s.SimulateAudience(ctx, &saved.Document)
	}),
}

var directCmd = &cobra.Command{
	Use:   "direct <script-id>",
	Short: "Produce a shot-by-shot director plan for a saved script",
	Args:  cobra.ExactArgs(1),
	RunE: inspectOp(func(ctx context.Context, s *studio.Studio, saved *store.SavedScript) (any, error) {
		return s.DirectorPlan(ctx, &saved.Document)
	}),
}

var evidenceCmd = &cobra.Command{
	Use:   "evidence <script-id>",
	Short: "Map the script's factual claims to citations",
	Args:  cobra.ExactArgs(1),
	RunE: inspectOp(func(ctx context.Context, s *studio.Studio, saved *store.SavedScript) (any, error) {
		return s.EvidenceMap(ctx, &saved.Document)
	}),
}

var variantsCmd = &cobra.Command{
	Use:   "variants <script-id>",
	Short: "Propose A/B experiment variants for a saved script",
	Args:  cobra.ExactArgs(1),
	RunE: inspectOp(func(ctx context.Context, s *studio.Studio, saved *store.SavedScript) (any, error) {
		return s.ExperimentVariants(ctx, &saved.Document)
	}),
}

var flagTitlesLanguage string

var titlesCmd = &cobra.Command{
	Use:   "titles <script-id>",
	Short: "Generate high-CTR title candidates for a saved script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		saved, _, err := loadScript(ctx, args[0])
		if err != nil {
			return err
		}
		s, err := newStudio(ctx)
		if err != nil {
			return err
		}
		creator, err := s.Personas().Get(saved.CreatorID)
		if err != nil {
			creator = s.Personas().Default()
		}
		lang := flagTitlesLanguage
		if lang == "" {
			lang = saved.Language
		}
		titles, err := s.ViralTitles(ctx, &saved.Document, creator, lang)
		if err != nil {
			return err
		}
		return printJSON(titles)
	},
}

var extendCmd = &cobra.Command{
	Use:   "extend <script-id>",
	Short: "Continue a saved script for another 30 seconds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtend(cmd, args[0], false)
	},
}

var extendVisualsCmd = &cobra.Command{
	Use:   "extend-visuals <script-id>",
	Short: "Append visual-only segments to a saved script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtend(cmd, args[0], true)
	},
}

var flagTopicsPlatform string

var topicsCmd = &cobra.Command{
	Use:   "topics <topic>",
	Short: "Refine a topic idea into viral angles using live search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := newStudio(ctx)
		if err != nil {
			return err
		}
		suggestions, err := s.SuggestTopics(ctx, args[0], flagTopicsPlatform)
		if err != nil {
			return err
		}
		return printJSON(suggestions)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd, hooksCmd, enhanceCmd, simulateCmd, directCmd, evidenceCmd, variantsCmd, titlesCmd, extendCmd, extendVisualsCmd, topicsCmd)
	titlesCmd.Flags().StringVar(&flagTitlesLanguage, "language", "", "Title language mode (defaults to the script's language)")
	topicsCmd.Flags().StringVarP(&flagTopicsPlatform, "platform", "P", "YouTube Shorts", "Target platform")
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runExtend(cmd *cobra.Command, id string, visualsOnly bool) error {
	ctx := cmd.Context()
	saved, st, err := loadScript(ctx, id)
	if err != nil {
		return err
	}
	s, err := newStudio(ctx)
	if err != nil {
		return err
	}

	doc := &saved.Document
	if visualsOnly {
		doc, err = s.ExtendVisualSequence(ctx, doc)
	} else {
		creator, cerr := s.Personas().Get(saved.CreatorID)
		if cerr != nil {
			creator = s.Personas().Default()
		}
		doc, err = s.ExtendScriptText(ctx, doc, creator)
	}
	if err != nil {
		return err
	}

	saved.Document = *doc
	if err := st.Save(ctx, saved); err != nil {
		return err
	}
	printScript(os.Stdout, doc, s.Personas())
	return nil
}

func inspectOp(fn func(context.Context, *studio.Studio, *store.SavedScript) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		saved, _, err := loadScript(ctx, args[0])
		if err != nil {
			return err
		}
		s, err := newStudio(ctx)
		if err != nil {
			return err
		}
		out, err := fn(ctx, s, saved)
		if err != nil {
			return err
		}
		return printJSON(out)
	}
}
