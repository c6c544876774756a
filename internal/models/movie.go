// Package models defines data structures for the application.
package models

import "strings"

// Genre is one of the fixed catalog genre tags.
type Genre string

const (
	GenreHorror         Genre = "HORROR"
	GenreDrama          Genre = "DRAMA"
	GenreCrime          Genre = "CRIME"
	GenreAdventure      Genre = "ADVENTURE"
	GenreThriller       Genre = "THRILLER"
	GenreAction         Genre = "ACTION"
	GenreScienceFiction Genre = "SCIENCE_FICTION"
	GenreAnimation      Genre = "ANIMATION"
	GenreComedy         Genre = "COMEDY"
	GenreMystery        Genre = "MYSTERY"
	GenreFantasy        Genre = "FANTASY"
	GenreWestern        Genre = "WESTERN"
)

// Genres lists every valid genre in catalog order.
var Genres = []Genre{
	GenreHorror, GenreDrama, GenreCrime, GenreAdventure, GenreThriller, GenreAction,
	GenreScienceFiction, GenreAnimation, GenreComedy, GenreMystery, GenreFantasy, GenreWestern,
}

// Valid reports whether g belongs to the enumeration.
func (g Genre) Valid() bool {
	for _, known := range Genres {
		if g == known {
			return true
		}
	}
	return false
}

// Label renders the genre for display, e.g. SCIENCE_FICTION -> "Science Fiction".
func (g Genre) Label() string {
	parts := strings.Split(strings.ToLower(string(g)), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// Movie represents a catalog entry.
type Movie struct {
	ID          string  `json:"id" example:"657a1f77bcf86cd799439011"`
	Title       string  `json:"title" example:"Heat"`
	Description string  `json:"description" example:"A group of professional bank robbers..."`
	SmallImage  string  `json:"smallImage" example:"https://cdn.example.com/heat-small.jpg"`
	BigImage    string  `json:"bigImage" example:"https://cdn.example.com/heat-big.jpg"`
	Director    string  `json:"director" example:"Michael Mann"`
	Genre       []Genre `json:"genre" example:"CRIME,THRILLER"`
	Year        int     `json:"year" example:"1995"`
	Available   bool    `json:"available" example:"true"`
	RentalPrice float64 `json:"rentalPrice" example:"4.5"`
	Video       string  `json:"video" example:"https://cdn.example.com/heat.mp4"`
}

// MovieRequest is the payload for creating or updating a movie.
type MovieRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200" example:"Heat"`
	Description string  `json:"description" binding:"max=4000" example:"A group of professional bank robbers..."`
	SmallImage  string  `json:"smallImage" binding:"omitempty,url" example:"https://cdn.example.com/heat-small.jpg"`
	BigImage    string  `json:"bigImage" binding:"omitempty,url" example:"https://cdn.example.com/heat-big.jpg"`
	Director    string  `json:"director" binding:"max=200" example:"Michael Mann"`
	Genre       []Genre `json:"genre" binding:"dive,genre" example:"CRIME,THRILLER"`
	Year        int     `json:"year" binding:"omitempty,gte=1888,lte=2200" example:"1995"`
	Available   bool    `json:"available" example:"true"`
	RentalPrice float64 `json:"rentalPrice" binding:"gte=0" example:"4.5"`
	Video       string  `json:"video" binding:"omitempty,url" example:"https://cdn.example.com/heat.mp4"`
}

// FirstPage is the first catalog page; the rental service pages from 1.
const FirstPage = 1

// PageRequest carries catalog pagination parameters.
type PageRequest struct {
	Page int `form:"page" binding:"omitempty,gte=1"`
	Size int `form:"size" binding:"gte=0,lte=100"`
}

// Normalize applies default pagination values.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < FirstPage {
		p.Page = FirstPage
	}
	if p.Size < 1 {
		p.Size = 10
	}
	return p
}
