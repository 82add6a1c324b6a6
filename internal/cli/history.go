package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved scripts",
}

var (
	flagHistoryLimit  int
	flagHistoryCursor string
	flagHistoryJSON   bool
)

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scripts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := newStore(ctx)
		if err != nil {
			return err
		}
		entries, next, err := st.List(ctx, flagHistoryLimit, flagHistoryCursor)
		if err != nil {
			return err
		}
		if flagHistoryJSON {
			return printJSON(entries)
		}

		fmt.Println()
		for _, e := range entries {
			analyzed := ""
			if e.Analysis != nil {
				analyzed = fmt.Sprintf("  hook %.0f/%s", e.Analysis.HookScore, e.Analysis.ViralityLabel)
			}
			fmt.Printf("  %s  %s\n", e.ID, titleStyle.Render(e.Title))
			fmt.Printf("    %s | %s | %s%s\n", e.CreatorName, e.Platform, e.CreatedAt.Format("2006-01-02 15:04"), analyzed)
		}
		if next != "" {
			fmt.Println(helpStyle.Render("  more: --cursor " + next))
		}
		fmt.Println()
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <script-id>",
	Short: "Show a saved script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		saved, _, err := loadScript(ctx, args[0])
		if err != nil {
			return err
		}
		if flagHistoryJSON {
			return printJSON(saved)
		}
		s, err := newStudio(ctx)
		if err != nil {
			return err
		}
		printScript(os.Stdout, &saved.Document, s.Personas())
		if saved.Analysis != nil {
			fmt.Printf("Analysis: hook %.0f, virality %s\n", saved.Analysis.HookScore, saved.Analysis.ViralityLabel)
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <script-id>",
	Short: "Delete a saved script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := newStore(ctx)
		if err != nil {
			return err
		}
		if err := st.Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

var historyUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show today's generation count",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := newStore(ctx)
		if err != nil {
			return err
		}
		count, err := st.Usage(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Scripts generated today: %d\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd, historyUsageCmd)
	historyCmd.PersistentFlags().BoolVar(&flagHistoryJSON, "json", false, "Print as JSON")
	historyListCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum entries to list")
	historyListCmd.Flags().StringVar(&flagHistoryCursor, "cursor", "", "Pagination cursor from a previous listing")
}
