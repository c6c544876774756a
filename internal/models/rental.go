package models

import apperrors "frent-client/internal/errors"

// Rental represents one movie rented by one user.
type Rental struct {
	ID          string  `json:"id" example:"65a11f77bcf86cd799439099"`
	Username    string  `json:"username" example:"jdoe"`
	MovieID     string  `json:"movieId" example:"657a1f77bcf86cd799439011"`
	RentalDate  Date    `json:"rentalDate" swaggertype:"string" example:"2024-01-15"`
	DueDate     Date    `json:"dueDate" swaggertype:"string" example:"2024-01-22"`
	ReturnDate  *Date   `json:"returnDate" swaggertype:"string" example:"2024-01-20"` // nil until returned
	RentalPrice float64 `json:"rentalPrice" example:"4.5"`
	Returned    bool    `json:"returned" example:"false"`
}

// Validate checks that Returned and ReturnDate agree.
func (r *Rental) Validate() error {
	if r.Returned != (r.ReturnDate != nil) {
		return apperrors.ErrInconsistentRental
	}
	return nil
}

// RentalRequest is the payload sent to create a rental. Username is always
// sent empty; the server derives identity from the bearer token.
type RentalRequest struct {
	Username    string  `json:"username"`
	MovieID     string  `json:"movieId"`
	RentalPrice float64 `json:"rentalPrice"`
}

// NewRentalRequest builds a rental request priced at the movie's current price.
func NewRentalRequest(movie *Movie) *RentalRequest {
	return &RentalRequest{
		Username:    "",
		MovieID:     movie.ID,
		RentalPrice: movie.RentalPrice,
	}
}

// NewestFirst reverses the server's chronological order. The input is not modified.
func NewestFirst(rentals []Rental) []Rental {
	out := make([]Rental, len(rentals))
	for i, r := range rentals {
		out[len(rentals)-1-i] = r
	}
	return out
}
