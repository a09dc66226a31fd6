package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"palette/internal/models"
)

var (
	historyLimit int
)

// historyCmd represents the base command for search history operations
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View search history",
	Long:  `Displays past search queries recorded by the application.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listHistoryCmd.RunE(cmd, args)
	},
}

var listHistoryCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent search queries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		queries, err := appInstance.SearchService.ListSearchHistory(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("error listing search history: %w", err)
		}
		renderHistory(cmd.OutOrStdout(), queries)
		return nil
	},
}

var showHistoryCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the ranked results recorded for one search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid search query ID %q: %w", args[0], err)
		}

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		results, err := appInstance.SearchService.SearchHistoryResults(cmd.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return fmt.Errorf("no search with ID %d", id)
			}
			return err
		}
		renderHistoryResults(cmd.OutOrStdout(), results)
		return nil
	},
}

func renderHistory(w io.Writer, queries []*models.SearchQuery) {
	if len(queries) == 0 {
		fmt.Fprintln(w, "No search history found.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Query", "Results", "Executed At"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, q := range queries {
		table.Append([]string{
			strconv.FormatInt(q.ID, 10),
			q.Query,
			strconv.Itoa(q.ResultsCount),
			q.ExecutedAt.Format("2006-01-02 15:04:05"),
		})
	}
	table.Render()
}

func renderHistoryResults(w io.Writer, results []models.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results were recorded for this search.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Kind", "Item", "Score"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, r := range results {
		table.Append([]string{
			strconv.Itoa(r.Rank),
			kindLabel(r.Kind),
			r.ItemID,
			fmt.Sprintf("%.1f", r.RelevanceScore),
		})
	}
	table.Render()
}

func init() {
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of history entries to show")

	historyCmd.AddCommand(listHistoryCmd)
	historyCmd.AddCommand(showHistoryCmd)

	rootCmd.AddCommand(historyCmd)
}
