package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxforge/studio/internal/prompt"
	"github.com/voxforge/studio/internal/studio"
)

// Canvas commands transform a saved script's flat text and print the
// proposal. Use --commit to write the result back as the user edit.

var canvasCmd = &cobra.Command{
	Use:   "canvas",
	Short: "Editorial transforms over a saved script's text",
}

var (
	flagCanvasCommit bool
	flagTargetTone   string
	flagTargetStyle  string
	flagSummaryLen   string
)

var canvasToneCmd = &cobra.Command{
	Use:   "tone <script-id>",
	Short: "Rewrite the script in a different tone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCanvasOp(cmd, args[0], func(c canvasCtx) (string, error) {
			if flagTargetTone == "" {
				return "", fmt.Errorf("--to is required (e.g. --to Serious)")
			}
			return c.studio.ChangeTone(c.ctx, c.text, flagTargetTone)
		})
	},
}

var canvasStyleCmd = &cobra.Command{
	Use:   "style <script-id>",
	Short: "Rewrite the script in another persona's voice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCanvasOp(cmd, args[0], func(c canvasCtx) (string, error) {
			target, err := c.studio.Personas().Get(flagTargetStyle)
			if err != nil {
				return "", err
			}
			return c.studio.ChangeStyle(c.ctx, c.text, target)
		})
	},
}

var canvasSummarizeCmd = &cobra.Command{
	Use:   "summarize <script-id>",
	Short: "Condense the script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCanvasOp(cmd, args[0], func(c canvasCtx) (string, error) {
			length := prompt.SummaryLength(flagSummaryLen)
			switch length {
			case prompt.SummaryShort, prompt.SummaryMedium, prompt.SummaryDetailed:
			default:
				return "", fmt.Errorf("invalid --length %q: must be Short, Medium, or Detailed", flagSummaryLen)
			}
			return c.studio.Summarize(c.ctx, c.text, length)
		})
	},
}

var canvasQuestionsCmd = &cobra.Command{
	Use:   "questions <script-id>",
	Short: "Weave reflective questions into the script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCanvasOp(cmd, args[0], func(c canvasCtx) (string, error) {
			return c.studio.AddQuestions(c.ctx, c.text)
		})
	},
}

var canvasGrammarCmd = &cobra.Command{
	Use:   "grammar <script-id>",
	Short: "Correct grammar and spelling, preserving the voice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCanvasOp(cmd, args[0], func(c canvasCtx) (string, error) {
			return c.studio.GrammarCheck(c.ctx, c.text, c.voiceName)
		})
	},
}

func init() {
	rootCmd.AddCommand(canvasCmd)
	canvasCmd.AddCommand(canvasToneCmd, canvasStyleCmd, canvasSummarizeCmd, canvasQuestionsCmd, canvasGrammarCmd)
	canvasCmd.PersistentFlags().BoolVar(&flagCanvasCommit, "commit", false, "Write the transformed text back onto the saved script")
	canvasToneCmd.Flags().StringVar(&flagTargetTone, "to", "", "Target tone (e.g. Energetic, Serious, Warm)")
	canvasStyleCmd.Flags().StringVar(&flagTargetStyle, "to", "", "Target persona id")
	canvasSummarizeCmd.Flags().StringVar(&flagSummaryLen, "length", "Medium", "Summary length: Short, Medium, Detailed")
}

type canvasCtx struct {
	ctx       context.Context
	studio    *studio.Studio
	text      string
	voiceName string
}

func runCanvasOp(cmd *cobra.Command, id string, fn func(canvasCtx) (string, error)) error {
	ctx := cmd.Context()
	saved, st, err := loadScript(ctx, id)
	if err != nil {
		return err
	}
	s, err := newStudio(ctx)
	if err != nil {
		return err
	}

	voiceName := saved.CreatorName
	if voiceName == "" {
		voiceName = s.Personas().Default().Name
	}

	result, err := fn(canvasCtx{
		ctx:       ctx,
		studio:    s,
		text:      saved.FlatText(),
		voiceName: voiceName,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, result)

	if flagCanvasCommit {
		saved.UserEditedText = result
		if err := st.Save(ctx, saved); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, helpStyle.Render("Committed to history as the edited text."))
	}
	return nil
}
