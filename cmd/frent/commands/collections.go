package commands

import (
	"context"

	"frent-client/internal/models"
	"frent-client/internal/service"
	"frent-client/pkg/auth"

	"github.com/spf13/cobra"
)

func newCartCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your cart",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the movies in your cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				items, err := e.app.CollectionService.GetCart(cmd.Context(), sess)
				if err != nil {
					return err
				}
				return e.print.Result(items, func() {
					rows := make([][]string, 0, len(items))
					for _, m := range items {
						rows = append(rows, []string{m.ID, m.Title, price(m.RentalPrice), yesNo(m.Available)})
					}
					e.print.Table([]string{"ID", "TITLE", "PRICE", "AVAILABLE"}, rows, "Your cart is empty")
				})
			},
		},
		&cobra.Command{
			Use:   "total",
			Short: "Show the rental price of everything in your cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				total, err := e.app.CollectionService.CartTotal(cmd.Context(), sess)
				if err != nil {
					return err
				}
				return e.print.Result(map[string]float64{"total": total}, func() {
					e.print.Success("Cart total: %s", price(total))
				})
			},
		},
		newCartRentCmd(e),
		collectionMutation(e, "add", "Add a movie to your cart", "Added %s to your cart",
			(*service.CollectionService).AddToCart),
		collectionMutation(e, "remove", "Remove a movie from your cart", "Removed %s from your cart",
			(*service.CollectionService).RemoveFromCart),
		collectionContains(e, "cart", (*service.CollectionService).IsInCart),
	)

	return cmd
}

func newCartRentCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "rent",
		Short: "Rent every movie in your cart",
		Long: `Rent every movie in your cart, then empty it.

The rentals are created first. If any of them fails the cart is left as it
was, and the rentals that did go through are listed so you can return them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := e.session(cmd.Context())
			if err != nil {
				return err
			}
			result, err := e.app.CheckoutService.RentCart(cmd.Context(), sess)
			if err != nil {
				return err
			}
			return e.print.Result(result, func() {
				if len(result.Steps) == 0 {
					e.print.Muted("Your cart is empty, nothing to rent")
					return
				}
				e.print.Success("Rented %d movie(s)", countSteps(result, service.StepCreateRental))
			})
		},
	}
}

func newWishlistCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage your wishlist",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the movies in your wishlist",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				items, err := e.app.CollectionService.GetWishlist(cmd.Context(), sess)
				if err != nil {
					return err
				}
				return e.print.Result(items, func() {
					rows := make([][]string, 0, len(items))
					for _, m := range items {
						rows = append(rows, []string{m.ID, m.Title, price(m.RentalPrice), yesNo(m.Available)})
					}
					e.print.Table([]string{"ID", "TITLE", "PRICE", "AVAILABLE"}, rows, "Your wishlist is empty")
				})
			},
		},
		collectionMutation(e, "add", "Add a movie to your wishlist", "Added %s to your wishlist",
			(*service.CollectionService).AddToWishlist),
		collectionMutation(e, "remove", "Remove a movie from your wishlist", "Removed %s from your wishlist",
			(*service.CollectionService).RemoveFromWishlist),
		collectionContains(e, "wishlist", (*service.CollectionService).IsInWishlist),
		&cobra.Command{
			Use:   "move <movie-id>",
			Short: "Move a movie from your wishlist to your cart",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				result, err := e.app.CheckoutService.MoveToCart(cmd.Context(), sess, args[0])
				if err != nil {
					return err
				}
				return e.print.Result(result, func() {
					e.print.Success("Moved %s to your cart", args[0])
				})
			},
		},
	)

	return cmd
}

// Method expressions, so the service is resolved when the command runs.
type (
	mutationFunc func(*service.CollectionService, context.Context, *auth.Session, string) error
	containsFunc func(*service.CollectionService, context.Context, *auth.Session, string) (bool, error)
)

func collectionMutation(e *env, use, short, done string, fn mutationFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <movie-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := e.session(cmd.Context())
			if err != nil {
				return err
			}
			if err := fn(e.app.CollectionService, cmd.Context(), sess, args[0]); err != nil {
				return err
			}
			return e.print.Result(map[string]string{"movieId": args[0]}, func() {
				e.print.Success(done, args[0])
			})
		},
	}
}

func collectionContains(e *env, name string, fn containsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "contains <movie-id>",
		Short: "Check whether a movie is in your " + name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := e.session(cmd.Context())
			if err != nil {
				return err
			}
			ok, err := fn(e.app.CollectionService, cmd.Context(), sess, args[0])
			if err != nil {
				return err
			}
			return e.print.Result(map[string]bool{"contains": ok}, func() {
				if ok {
					e.print.Success("%s is in your %s", args[0], name)
				} else {
					e.print.Muted("%s is not in your %s", args[0], name)
				}
			})
		},
	}
}

func countSteps(result *models.SagaRecord, name string) int {
	n := 0
	for _, s := range result.Steps {
		if s.Name == name && s.Status == models.StepCommitted {
			n++
		}
	}
	return n
}
