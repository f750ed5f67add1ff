package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glabrego/cinemas-cli/internal/catalog"
	"github.com/glabrego/cinemas-cli/internal/rapidmock"
	"github.com/glabrego/cinemas-cli/internal/render/text"
	"github.com/glabrego/cinemas-cli/internal/tui/view"
)

const showWidth = 80

func (c *cli) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.cfg.HTTP.Timeout)
}

func newCatalogCmd(c *cli) *cobra.Command {
	var query, category, sortDir string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the catalog, filtered and sorted by title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := catalog.ParseDirection(sortDir)
			if err != nil {
				return err
			}

			ctx, cancel := c.commandContext(cmd)
			defer cancel()
			movies, err := c.service.LoadCatalog(ctx)
			if err != nil {
				return err
			}

			v := catalog.View{Query: query, Category: catalog.ParseCategory(category), Direction: dir}
			shown := c.engine.Derive(movies, v)
			printCatalog(cmd.OutOrStdout(), shown, len(movies), v)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive title search")
	cmd.Flags().StringVarP(&category, "category", "c", "all", "all, movie, show or another type label")
	cmd.Flags().StringVarP(&sortDir, "sort", "s", "asc", "title order: asc or desc")
	return cmd
}

func printCatalog(w io.Writer, shown []rapidmock.Movie, total int, v catalog.View) {
	fmt.Fprintf(w, "%d/%d titles (%s, %s)\n", len(shown), total, v.Category, v.Direction)
	if len(shown) == 0 {
		fmt.Fprintln(w, "No movies available.")
		return
	}
	for _, movie := range shown {
		fmt.Fprintf(w, "• %s [%s] (ID: %d)\n", movie.Title, orDash(movie.Type), movie.ID)
	}
}

func newMyListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "mylist",
		Short: "Print the Watched and To Watch lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := c.commandContext(cmd)
			defer cancel()
			list, err := c.service.LoadMyList(ctx)
			if err != nil {
				return err
			}
			printMyList(cmd.OutOrStdout(), list)
			return nil
		},
	}
}

func printMyList(w io.Writer, list rapidmock.MyList) {
	buckets := []struct {
		status  rapidmock.Status
		entries []rapidmock.ListEntry
		empty   string
	}{
		{rapidmock.StatusWatched, list.Watched, "No watched movies."},
		{rapidmock.StatusToWatch, list.ToWatch, "No movies to watch."},
	}
	for i, b := range buckets {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d):\n", b.status, len(b.entries))
		if len(b.entries) == 0 {
			fmt.Fprintf(w, "  %s\n", b.empty)
			continue
		}
		for _, entry := range b.entries {
			fmt.Fprintf(w, "  • %s [%s]\n", entry.Title, view.UpdatedLabel(entry.UpdatedAt))
		}
	}
}

func newShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID [ID...]",
		Short: "Print the details of one or more titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			movies, err := c.service.LoadMovies(cmd.Context(), ids)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, movie := range movies {
				if i > 0 {
					fmt.Fprintln(w)
				}
				for _, line := range view.DetailLines(movie, showWidth, 0, text.Wrap) {
					fmt.Fprintln(w, line)
				}
			}
			return nil
		},
	}
}

func newAddCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add ID STATUS",
		Short: `Mark a title as "Watched" or "To Watch"`,
		Example: `  cinemas add 3 watched
  cinemas add 3 "to watch"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args[:1])
			if err != nil {
				return err
			}
			status, err := rapidmock.ParseStatus(args[1])
			if err != nil {
				return err
			}

			ctx, cancel := c.commandContext(cmd)
			defer cancel()
			if err := c.service.AddToList(ctx, ids[0], status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Success: Movie marked as %s\n", status)
			return nil
		},
	}
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid movie id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
