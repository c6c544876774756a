package models

// RentalMovie is a rental joined with the movie it references.
type RentalMovie struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	MovieID     string  `json:"movieId"`
	RentalDate  Date    `json:"rentalDate" swaggertype:"string"`
	DueDate     Date    `json:"dueDate" swaggertype:"string"`
	ReturnDate  *Date   `json:"returnDate" swaggertype:"string"`
	RentalPrice float64 `json:"rentalPrice"`
	Returned    bool    `json:"returned"`

	Title       string  `json:"title"`
	Description string  `json:"description"`
	SmallImage  string  `json:"smallImage"`
	BigImage    string  `json:"bigImage"`
	Director    string  `json:"director"`
	Genre       []Genre `json:"genre"`
	Year        int     `json:"year"`
	Available   bool    `json:"available"`
	Video       string  `json:"video"`
}

// MergeRental overlays movie display detail onto a rental.
//
// Precedence: every rental field wins, including its identifier, movie id and
// price snapshot. The movie contributes only title, description, images,
// director, genre, year, availability and video. The movie's own identifier is
// dropped.
func MergeRental(r Rental, m Movie) RentalMovie {
	return RentalMovie{
		ID:          r.ID,
		Username:    r.Username,
		MovieID:     r.MovieID,
		RentalDate:  r.RentalDate,
		DueDate:     r.DueDate,
		ReturnDate:  r.ReturnDate,
		RentalPrice: r.RentalPrice,
		Returned:    r.Returned,

		Title:       m.Title,
		Description: m.Description,
		SmallImage:  m.SmallImage,
		BigImage:    m.BigImage,
		Director:    m.Director,
		Genre:       m.Genre,
		Year:        m.Year,
		Available:   m.Available,
		Video:       m.Video,
	}
}

// CartMovie is a movie resolved from a user's cart.
type CartMovie struct {
	Movie
	Owner string `json:"owner"`
}

// NewCartMovie merges a cart entry with its movie. The entry identifier is the
// movie identifier, so it is kept as the result identifier.
func NewCartMovie(owner, movieID string, m Movie) CartMovie {
	m.ID = movieID
	return CartMovie{Movie: m, Owner: owner}
}

// WishlistMovie is a movie resolved from a user's wishlist.
type WishlistMovie struct {
	Movie
	Owner string `json:"owner"`
}

// NewWishlistMovie merges a wishlist entry with its movie.
func NewWishlistMovie(owner, movieID string, m Movie) WishlistMovie {
	m.ID = movieID
	return WishlistMovie{Movie: m, Owner: owner}
}

// ContainsMovie reports whether any of the views has the given movie id.
func ContainsMovie[T interface{ MovieKey() string }](items []T, movieID string) bool {
	for _, item := range items {
		if item.MovieKey() == movieID {
			return true
		}
	}
	return false
}

// MovieKey returns the identifier used for membership checks.
func (c CartMovie) MovieKey() string { return c.ID }

// MovieKey returns the identifier used for membership checks.
func (w WishlistMovie) MovieKey() string { return w.ID }
