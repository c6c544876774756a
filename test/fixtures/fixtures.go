// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"frent-client/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newID() string {
	return primitive.NewObjectID().Hex()
}

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	id := newID()
	return &UserBuilder{
		user: models.User{
			ID:           id,
			UserType:     models.RoleMember,
			Name:         "Test User",
			Email:        fmt.Sprintf("test-%s@example.com", id[:8]),
			Username:     "user" + id[:8],
			Cart:         []string{},
			Wishlist:     []string{},
			CreationDate: time.Now().UTC(),
		},
	}
}

func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.user.Username = username
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithCart(movieIDs ...string) *UserBuilder {
	b.user.Cart = movieIDs
	return b
}

func (b *UserBuilder) WithWishlist(movieIDs ...string) *UserBuilder {
	b.user.Wishlist = movieIDs
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.UserType = models.RoleAdmin
	return b
}

func (b *UserBuilder) Suspended() *UserBuilder {
	b.user.IsSuspended = true
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Movie Fixtures =====

// MovieBuilder provides fluent API for building test movies.
type MovieBuilder struct {
	movie models.Movie
}

// NewMovie creates a new MovieBuilder with sensible defaults.
func NewMovie() *MovieBuilder {
	id := newID()
	return &MovieBuilder{
		movie: models.Movie{
			ID:          id,
			Title:       "Movie " + id[:6],
			Description: "A test movie",
			Director:    "Test Director",
			Genre:       []models.Genre{models.GenreDrama},
			Year:        1999,
			Available:   true,
			RentalPrice: 4.5,
		},
	}
}

func (b *MovieBuilder) WithID(id string) *MovieBuilder {
	b.movie.ID = id
	return b
}

func (b *MovieBuilder) WithTitle(title string) *MovieBuilder {
	b.movie.Title = title
	return b
}

func (b *MovieBuilder) WithPrice(price float64) *MovieBuilder {
	b.movie.RentalPrice = price
	return b
}

func (b *MovieBuilder) WithGenre(genres ...models.Genre) *MovieBuilder {
	b.movie.Genre = genres
	return b
}

func (b *MovieBuilder) Unavailable() *MovieBuilder {
	b.movie.Available = false
	return b
}

func (b *MovieBuilder) Build() models.Movie {
	return b.movie
}

func (b *MovieBuilder) BuildPtr() *models.Movie {
	return &b.movie
}

// ===== Rental Fixtures =====

// RentalBuilder provides fluent API for building test rentals.
type RentalBuilder struct {
	rental models.Rental
}

// NewRental creates an open rental rented today and due in a week.
func NewRental() *RentalBuilder {
	today := models.NewDate(time.Now())
	return &RentalBuilder{
		rental: models.Rental{
			ID:          newID(),
			Username:    "jdoe",
			MovieID:     newID(),
			RentalDate:  today,
			DueDate:     models.NewDate(today.AddDate(0, 0, 7)),
			RentalPrice: 4.5,
		},
	}
}

func (b *RentalBuilder) WithID(id string) *RentalBuilder {
	b.rental.ID = id
	return b
}

func (b *RentalBuilder) WithUsername(username string) *RentalBuilder {
	b.rental.Username = username
	return b
}

func (b *RentalBuilder) WithMovie(movie models.Movie) *RentalBuilder {
	b.rental.MovieID = movie.ID
	b.rental.RentalPrice = movie.RentalPrice
	return b
}

func (b *RentalBuilder) WithPrice(price float64) *RentalBuilder {
	b.rental.RentalPrice = price
	return b
}

func (b *RentalBuilder) WithRentalDate(d models.Date) *RentalBuilder {
	b.rental.RentalDate = d
	return b
}

// Returned marks the rental returned on the given date.
func (b *RentalBuilder) Returned(on models.Date) *RentalBuilder {
	b.rental.Returned = true
	b.rental.ReturnDate = &on
	return b
}

func (b *RentalBuilder) Build() models.Rental {
	return b.rental
}

func (b *RentalBuilder) BuildPtr() *models.Rental {
	return &b.rental
}

// ===== Saga Fixtures =====

// NewSagaRecord builds a finished journal entry with the given steps.
func NewSagaRecord(name, username string, steps ...models.SagaStep) models.SagaRecord {
	started := time.Now().UTC().Add(-time.Second)
	succeeded := true
	for _, s := range steps {
		if s.Status != models.StepCommitted {
			succeeded = false
		}
	}
	return models.SagaRecord{
		ID:         newID(),
		Name:       name,
		Username:   username,
		Steps:      steps,
		Succeeded:  succeeded,
		StartedAt:  started,
		FinishedAt: started.Add(500 * time.Millisecond),
	}
}
