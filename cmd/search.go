package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"palette/internal/clix"
	"palette/internal/models"
	"palette/internal/services"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search articles, resources, scripts and events",
	Long: `Ranks every dashboard item against the query and prints the best matches.
Titles weigh more than tags, tags more than descriptions, and resources get a boost.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		flags := cmd.Flags()

		pagination, err := clix.ParsePagination(flags)
		if err != nil {
			return err
		}
		filters, err := clix.ParseSearchFilters(flags)
		if err != nil {
			return err
		}
		showAll, _ := flags.GetBool("all")

		params := services.SearchParams{
			Query:   query,
			Filters: filters,
			Limit:   pagination.Limit,
			ShowAll: showAll,
		}
		if flags.Changed("min-relevance") {
			minRel, _ := flags.GetFloat64("min-relevance")
			params.MinRelevance = &minRel
		}

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app from context: %w", err)
		}

		out := cmd.OutOrStdout()
		resp, err := appInstance.SearchService.Search(cmd.Context(), params)
		if err != nil {
			if errors.Is(err, models.ErrRankingFailed) {
				fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("Warning: search could not rank the current content."))
				fmt.Fprintln(out, "No results found.")
				return nil
			}
			return fmt.Errorf("search failed: %w", err)
		}

		renderSearchResults(out, resp)
		return nil
	},
}

var kindColors = map[models.ContentKind]func(format string, a ...interface{}) string{
	models.KindArticle:  color.CyanString,
	models.KindResource: color.GreenString,
	models.KindScript:   color.MagentaString,
	models.KindEvent:    color.YellowString,
}

func kindLabel(k models.ContentKind) string {
	if paint, ok := kindColors[k]; ok {
		return paint("%s", k)
	}
	return string(k)
}

func renderSearchResults(w io.Writer, resp *services.SearchResponse) {
	if len(resp.Items) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Title", "Score", "Date", "Link"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, item := range resp.Items {
		date := "-"
		if item.Date != nil {
			date = item.Date.Format("2006-01-02")
		}
		link := item.URL
		if link == "" {
			link = "-"
		}
		table.Append([]string{
			kindLabel(item.Kind),
			item.Title,
			fmt.Sprintf("%.1f", item.Relevance),
			date,
			link,
		})
	}
	table.Render()

	if resp.Total > len(resp.Items) {
		fmt.Fprintf(w, "Showing %d of %d matches.\n", len(resp.Items), resp.Total)
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntP("limit", "l", 0, "Limit the number of search results (0 uses search.default_limit)")
	searchCmd.Flags().StringP("tags", "T", "", "Comma-separated list of tags to filter results by (match any)")
	searchCmd.Flags().StringP("kinds", "k", "", "Comma-separated list of kinds to include: article,resource,script,event")
	searchCmd.Flags().String("from", "", "Only include dated items on or after this date (YYYY-MM-DD)")
	searchCmd.Flags().String("to", "", "Only include dated items on or before this date (YYYY-MM-DD)")
	searchCmd.Flags().Float64("min-relevance", 0, "Drop matches scoring below this value")
	searchCmd.Flags().Bool("all", false, "List every item when the query is empty")
}
