package commands

import (
	"fmt"
	"strings"

	"frent-client/internal/models"

	"github.com/spf13/cobra"
)

func newMoviesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "Browse the catalog",
	}

	cmd.AddCommand(
		newMoviesListCmd(e),
		newMoviesGetCmd(e),
		newMoviesSearchCmd(e),
	)

	return cmd
}

func newMoviesListCmd(e *env) *cobra.Command {
	page, size := models.FirstPage, 0

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			movies, err := e.app.CatalogService.ListPage(cmd.Context(), page, size)
			if err != nil {
				return err
			}
			return e.print.Result(movies, func() {
				e.print.Table(movieHeaders, movieRows(movies), "No movies on this page")
			})
		},
	}

	addPageFlags(cmd, &page, &size)
	return cmd
}

func newMoviesGetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "get <movie-id>",
		Short: "Show one movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movie, err := e.app.CatalogService.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return e.print.Result(movie, func() { printMovie(e, movie) })
		},
	}
}

func newMoviesSearchCmd(e *env) *cobra.Command {
	page, size := models.FirstPage, 0

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search movies by title",
		Long: `Search movies by title. Pages start at 1.

Examples:
  frent movies search heat
  frent movies search "blade runner" --page 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movies, err := e.app.CatalogService.Search(cmd.Context(), args[0], page, size)
			if err != nil {
				return err
			}
			return e.print.Result(movies, func() {
				e.print.Table(movieHeaders, movieRows(movies), fmt.Sprintf("No movies match %q", args[0]))
			})
		},
	}

	addPageFlags(cmd, &page, &size)
	return cmd
}

func addPageFlags(cmd *cobra.Command, page, size *int) {
	cmd.Flags().IntVar(page, "page", *page, "Page number, starting at 1")
	cmd.Flags().IntVar(size, "size", *size, "Page size (default 10)")
}

var movieHeaders = []string{"ID", "TITLE", "YEAR", "GENRE", "PRICE", "AVAILABLE"}

func movieRows(movies []models.Movie) [][]string {
	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []string{m.ID, m.Title, year(m.Year), genres(m.Genre), price(m.RentalPrice), yesNo(m.Available)})
	}
	return rows
}

func printMovie(e *env, m *models.Movie) {
	e.print.Table([]string{"FIELD", "VALUE"}, [][]string{
		{"ID", m.ID},
		{"Title", m.Title},
		{"Director", m.Director},
		{"Year", year(m.Year)},
		{"Genre", genres(m.Genre)},
		{"Price", price(m.RentalPrice)},
		{"Available", yesNo(m.Available)},
		{"Description", m.Description},
	}, "")
}

func genres(gs []models.Genre) string {
	labels := make([]string, len(gs))
	for i, g := range gs {
		labels[i] = g.Label()
	}
	return strings.Join(labels, ", ")
}

func price(p float64) string {
	return fmt.Sprintf("%.2f", p)
}

func year(y int) string {
	if y == 0 {
		return "-"
	}
	return fmt.Sprint(y)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
