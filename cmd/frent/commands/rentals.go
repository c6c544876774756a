package commands

import (
	"fmt"

	"frent-client/internal/models"

	"github.com/spf13/cobra"
)

func newRentalsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rentals",
		Short: "Manage your rentals",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List your rentals",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				rentals, err := e.app.RentalService.ListForUser(cmd.Context(), sess)
				if err != nil {
					return err
				}
				return e.print.Result(rentals, func() {
					e.print.Table(rentalHeaders, rentalRows(rentals), "You have no rentals")
				})
			},
		},
		&cobra.Command{
			Use:   "rent <movie-id>",
			Short: "Rent one movie",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				rental, err := e.app.RentalService.Create(cmd.Context(), sess, args[0])
				if err != nil {
					return err
				}
				return e.print.Result(rental, func() {
					e.print.Success("Rented %s, due back on %s", rental.MovieID, rental.DueDate)
				})
			},
		},
		&cobra.Command{
			Use:   "return <rental-id>",
			Short: "Return a rented movie",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				rental, err := e.app.RentalService.Return(cmd.Context(), sess, args[0])
				if err != nil {
					return err
				}
				return e.print.Result(rental, func() {
					e.print.Success("Returned rental %s", rental.ID)
				})
			},
		},
		&cobra.Command{
			Use:   "total",
			Short: "Show how much you have spent on rentals",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				total, err := e.app.RentalService.TotalSpent(cmd.Context(), sess)
				if err != nil {
					return err
				}
				return e.print.Result(map[string]float64{"total": total}, func() {
					e.print.Success("Total spent: %s", price(total))
				})
			},
		},
	)

	return cmd
}

func newHistoryCmd(e *env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show your recent checkouts",
		Long: `Show the recorded rent-cart and move-to-cart transactions, newest first.
Needs MONGO_URI to be configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 || limit > 100 {
				return fmt.Errorf("--limit must be between 0 and 100")
			}
			sess, err := e.session(cmd.Context())
			if err != nil {
				return err
			}
			records, err := e.app.CheckoutService.History(cmd.Context(), sess, limit)
			if err != nil {
				return err
			}
			return e.print.Result(records, func() {
				rows := make([][]string, 0, len(records))
				for _, r := range records {
					status := "ok"
					switch {
					case r.Succeeded:
					case len(r.Committed()) > 0:
						status = "partial"
					default:
						status = "failed"
					}
					rows = append(rows, []string{
						r.StartedAt.Local().Format("2006-01-02 15:04"),
						r.Name,
						fmt.Sprint(len(r.Steps)),
						status,
					})
				}
				e.print.Table([]string{"STARTED", "TRANSACTION", "STEPS", "STATUS"}, rows, "No checkouts recorded")
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum entries (default 20)")
	return cmd
}

var rentalHeaders = []string{"ID", "TITLE", "RENTED", "DUE", "PRICE", "RETURNED"}

func rentalRows(rentals []models.RentalMovie) [][]string {
	rows := make([][]string, 0, len(rentals))
	for _, r := range rentals {
		returned := "no"
		if r.ReturnDate != nil {
			returned = r.ReturnDate.String()
		} else if r.Returned {
			returned = "yes"
		}
		rows = append(rows, []string{r.ID, r.Title, r.RentalDate.String(), r.DueDate.String(), price(r.RentalPrice), returned})
	}
	return rows
}
