package commands

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"frent-client/internal/models"

	"github.com/spf13/cobra"
)

func newAdminCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer the catalog and users",
		Long:  `Administrative commands. Every command here needs an admin session.`,
	}

	cmd.AddCommand(
		newAdminMoviesCmd(e),
		newAdminUsersCmd(e),
		newAdminPartialFailuresCmd(e),
		&cobra.Command{
			Use:   "warnings",
			Short: "Send due-date warnings to every member with an overdue rental",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				if err := e.app.RentalService.SendDueDateWarnings(cmd.Context(), sess); err != nil {
					return err
				}
				e.print.Success("Due date warnings requested")
				return nil
			},
		},
	)

	return cmd
}

func newAdminMoviesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "Manage the catalog",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every movie, available or not",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				movies, err := e.app.CatalogService.ListAll(cmd.Context(), sess)
				if err != nil {
					return err
				}
				return e.print.Result(movies, func() {
					e.print.Table(movieHeaders, movieRows(movies), "The catalog is empty")
				})
			},
		},
		newAdminMovieCreateCmd(e),
		newAdminMovieUpdateCmd(e),
		&cobra.Command{
			Use:   "delete <movie-id>",
			Short: "Delete a movie",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				if err := e.app.CatalogService.Delete(cmd.Context(), sess, args[0]); err != nil {
					return err
				}
				e.print.Success("Deleted movie %s", args[0])
				return nil
			},
		},
		movieAction(e, "available <movie-id>", "Make a movie available for rent", 1, func(cmd *cobra.Command, args []string) (*models.Movie, error) {
			sess, err := e.session(cmd.Context())
			if err != nil {
				return nil, err
			}
			return e.app.CatalogService.SetAvailable(cmd.Context(), sess, args[0])
		}),
		movieAction(e, "unavailable <movie-id>", "Withdraw a movie from rent", 1, func(cmd *cobra.Command, args []string) (*models.Movie, error) {
			sess, err := e.session(cmd.Context())
			if err != nil {
				return nil, err
			}
			return e.app.CatalogService.SetUnavailable(cmd.Context(), sess, args[0])
		}),
		movieAction(e, "discount <movie-id> <percent>", "Lower a movie's price by a percentage", 2, func(cmd *cobra.Command, args []string) (*models.Movie, error) {
			percent, err := parseNumber(args[1], "percent")
			if err != nil {
				return nil, err
			}
			sess, err := e.session(cmd.Context())
			if err != nil {
				return nil, err
			}
			return e.app.CatalogService.ApplyDiscount(cmd.Context(), sess, args[0], percent)
		}),
		movieAction(e, "revert <movie-id> <price>", "Restore a movie's price", 2, func(cmd *cobra.Command, args []string) (*models.Movie, error) {
			old, err := parseNumber(args[1], "price")
			if err != nil {
				return nil, err
			}
			sess, err := e.session(cmd.Context())
			if err != nil {
				return nil, err
			}
			return e.app.CatalogService.RevertPrice(cmd.Context(), sess, args[0], old)
		}),
		newAdminArtworkCmd(e),
	)

	return cmd
}

type movieFlags struct {
	req    models.MovieRequest
	genres []string
}

func (f *movieFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.req.Title, "title", "", "Title")
	fl.StringVar(&f.req.Description, "description", "", "Description")
	fl.StringVar(&f.req.Director, "director", "", "Director")
	fl.StringSliceVar(&f.genres, "genre", nil, "Genres, e.g. CRIME,THRILLER")
	fl.IntVar(&f.req.Year, "year", 0, "Release year")
	fl.Float64Var(&f.req.RentalPrice, "price", 0, "Rental price")
	fl.BoolVar(&f.req.Available, "available", false, "Available for rent")
	fl.StringVar(&f.req.SmallImage, "small-image", "", "Small artwork URL")
	fl.StringVar(&f.req.BigImage, "big-image", "", "Large artwork URL")
	fl.StringVar(&f.req.Video, "video", "", "Trailer URL")
}

// applyTo copies the flags that were set on the command line over req.
func (f *movieFlags) applyTo(cmd *cobra.Command, req *models.MovieRequest) {
	fl := cmd.Flags()
	set := func(name string, apply func()) {
		if fl.Changed(name) {
			apply()
		}
	}
	set("title", func() { req.Title = f.req.Title })
	set("description", func() { req.Description = f.req.Description })
	set("director", func() { req.Director = f.req.Director })
	set("genre", func() { req.Genre = toGenres(f.genres) })
	set("year", func() { req.Year = f.req.Year })
	set("price", func() { req.RentalPrice = f.req.RentalPrice })
	set("available", func() { req.Available = f.req.Available })
	set("small-image", func() { req.SmallImage = f.req.SmallImage })
	set("big-image", func() { req.BigImage = f.req.BigImage })
	set("video", func() { req.Video = f.req.Video })
}

func newAdminMovieCreateCmd(e *env) *cobra.Command {
	var f movieFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a movie to the catalog",
		Long: `Add a movie to the catalog.

Example:
  frent admin movies create --title Heat --director "Michael Mann" \
    --genre CRIME,THRILLER --year 1995 --price 4.5 --available`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := e.session(cmd.Context())
			if err != nil {
				return err
			}
			req := f.req
			req.Genre = toGenres(f.genres)
			movie, err := e.app.CatalogService.Create(cmd.Context(), sess, &req)
			if err != nil {
				return err
			}
			return e.print.Result(movie, func() {
				e.print.Success("Created %s (%s)", movie.Title, movie.ID)
			})
		},
	}

	f.bind(cmd)
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newAdminMovieUpdateCmd(e *env) *cobra.Command {
	var f movieFlags

	cmd := &cobra.Command{
		Use:   "update <movie-id>",
		Short: "Change a movie; fields not given keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := e.session(cmd.Context())
			if err != nil {
				return err
			}
			current, err := e.app.CatalogService.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			req := models.MovieRequest{
				Title:       current.Title,
				Description: current.Description,
				SmallImage:  current.SmallImage,
				BigImage:    current.BigImage,
				Director:    current.Director,
				Genre:       current.Genre,
				Year:        current.Year,
				Available:   current.Available,
				RentalPrice: current.RentalPrice,
				Video:       current.Video,
			}
			f.applyTo(cmd, &req)

			movie, err := e.app.CatalogService.Update(cmd.Context(), sess, args[0], &req)
			if err != nil {
				return err
			}
			return e.print.Result(movie, func() {
				e.print.Success("Updated %s (%s)", movie.Title, movie.ID)
			})
		},
	}

	f.bind(cmd)
	return cmd
}

func newAdminArtworkCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <image-file>",
		Short: "Upload poster artwork and print its URL",
		Long: `Upload a JPEG, PNG or WebP poster. The printed URL can be passed to
--small-image or --big-image. Needs S3_ENDPOINT to be configured.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := e.session(cmd.Context())
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			contentType := mime.TypeByExtension(filepath.Ext(args[0]))
			url, err := e.app.CatalogService.UploadArtwork(cmd.Context(), sess, filepath.Base(args[0]), contentType, f)
			if err != nil {
				return err
			}
			return e.print.Result(map[string]string{"url": url}, func() {
				e.print.Success("Uploaded %s", url)
			})
		},
	}
}

func movieAction(e *env, use, short string, n int, run func(cmd *cobra.Command, args []string) (*models.Movie, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(n),
		RunE: func(cmd *cobra.Command, args []string) error {
			movie, err := run(cmd, args)
			if err != nil {
				return err
			}
			return e.print.Result(movie, func() {
				e.print.Success("%s now costs %s, available: %s", movie.Title, price(movie.RentalPrice), yesNo(movie.Available))
			})
		},
	}
}

func newAdminUsersCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every account",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				users, err := e.app.UserAdminService.List(cmd.Context(), sess)
				if err != nil {
					return err
				}
				return e.print.Result(users, func() {
					rows := make([][]string, 0, len(users))
					for _, u := range users {
						rows = append(rows, []string{u.ID, u.Username, u.Email, u.UserType, yesNo(u.IsSuspended)})
					}
					e.print.Table([]string{"ID", "USERNAME", "EMAIL", "TYPE", "SUSPENDED"}, rows, "No users")
				})
			},
		},
		&cobra.Command{
			Use:   "delete <user-id>",
			Short: "Delete an account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				if err := e.app.UserAdminService.Delete(cmd.Context(), sess, args[0]); err != nil {
					return err
				}
				e.print.Success("Deleted user %s", args[0])
				return nil
			},
		},
		userSuspension(e, true),
		userSuspension(e, false),
		&cobra.Command{
			Use:   "rentals <user-id>",
			Short: "List an account's rentals",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				rentals, err := e.app.RentalService.ListForUserByID(cmd.Context(), sess, args[0])
				if err != nil {
					return err
				}
				return e.print.Result(rentals, func() {
					e.print.Table(rentalHeaders, rentalRows(rentals), "No rentals")
				})
			},
		},
		&cobra.Command{
			Use:   "total <user-id>",
			Short: "Show how much an account has spent",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				sess, err := e.session(cmd.Context())
				if err != nil {
					return err
				}
				total, err := e.app.RentalService.TotalSpentByID(cmd.Context(), sess, args[0])
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

func userSuspension(e *env, suspend bool) *cobra.Command {
	use, short := "unsuspend <user-id>", "Lift an account suspension"
	if suspend {
		use, short = "suspend <user-id>", "Suspend an account"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := e.session(cmd.Context())
			if err != nil {
				return err
			}
			svc := e.app.UserAdminService
			var user *models.User
			if suspend {
				user, err = svc.Suspend(cmd.Context(), sess, args[0])
			} else {
				user, err = svc.Unsuspend(cmd.Context(), sess, args[0])
			}
			if err != nil {
				return err
			}
			return e.print.Result(user, func() {
				e.print.Success("%s suspended: %s", user.Username, yesNo(user.IsSuspended))
			})
		},
	}
}

func toGenres(values []string) []models.Genre {
	out := make([]models.Genre, len(values))
	for i, v := range values {
		out[i] = models.Genre(v)
	}
	return out
}

func parseNumber(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

func newAdminPartialFailuresCmd(e *env) *cobra.Command {
	since := 24 * time.Hour

	cmd := &cobra.Command{
		Use:   "partial-failures",
		Short: "List checkouts that were only partly applied",
		Long: `List every user's rent-cart and move-to-cart transactions that failed
after at least one step went through, e.g. rentals created while the cart
was not emptied. Needs MONGO_URI to be configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if since <= 0 {
				return fmt.Errorf("--since must be positive")
			}
			sess, err := e.session(cmd.Context())
			if err != nil {
				return err
			}
			records, err := e.app.CheckoutService.PartialFailures(cmd.Context(), sess, time.Now().Add(-since))
			if err != nil {
				return err
			}
			return e.print.Result(records, func() {
				rows := make([][]string, 0, len(records))
				for _, r := range records {
					rows = append(rows, []string{
						r.StartedAt.Local().Format("2006-01-02 15:04"),
						r.Username,
						r.Name,
						strings.Join(r.Committed(), ", "),
						strings.Join(r.Failed(), ", "),
					})
				}
				e.print.Table([]string{"STARTED", "USER", "TRANSACTION", "COMMITTED", "FAILED"}, rows, "No partial failures")
			})
		},
	}

	cmd.Flags().DurationVar(&since, "since", since, "Look-back window")
	return cmd
}
