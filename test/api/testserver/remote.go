//go:build api

package testserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"frent-client/internal/models"
	"frent-client/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// remoteSecret signs tokens issued by the fake service. The client never
// verifies them.
const remoteSecret = "remote-secret-for-api-tests"

type account struct {
	user     models.User
	password string
}

// Remote is an in-memory stand-in for the rental REST service.
type Remote struct {
	Server *httptest.Server

	mu       sync.Mutex
	accounts map[string]*account // by username
	movies   []models.Movie
	rentals  []models.Rental

	// failRentals makes rental creation fail for these movie ids.
	failRentals map[string]bool

	warnings atomic.Int32
}

// NewRemote starts the fake service.
func NewRemote() *Remote {
	r := &Remote{}
	r.Reset()
	r.Server = httptest.NewServer(r.routes())
	return r
}

// BaseURL is the API root the client is configured with.
func (r *Remote) BaseURL() string {
	return r.Server.URL + "/api"
}

// Close stops the fake service.
func (r *Remote) Close() {
	r.Server.Close()
}

// Reset drops every account, movie and rental.
func (r *Remote) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = map[string]*account{}
	r.movies = nil
	r.rentals = nil
	r.failRentals = map[string]bool{}
	r.warnings.Store(0)
}

// AddAccount creates an account directly, bypassing registration.
func (r *Remote) AddAccount(userType, username, password string) models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addAccountLocked(&models.RegisterRequest{
		UserType:  userType,
		FirstName: "Test",
		LastName:  username,
		Email:     username + "@example.com",
		Username:  username,
		Password:  password,
	})
}

// AddMovie stores m and returns it with an id.
func (r *Remote) AddMovie(m models.Movie) models.Movie {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == "" {
		m.ID = primitive.NewObjectID().Hex()
	}
	r.movies = append(r.movies, m)
	return m
}

// FailRentalsFor makes rental creation for movieID fail with a server error.
func (r *Remote) FailRentalsFor(movieID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failRentals[movieID] = true
}

// Cart returns a copy of username's cart.
func (r *Remote) Cart(username string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.accounts[username]; ok {
		return slices.Clone(a.user.Cart)
	}
	return nil
}

// Rentals returns a copy of username's rentals.
func (r *Remote) Rentals(username string) []models.Rental {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Rental
	for _, rental := range r.rentals {
		if rental.Username == username {
			out = append(out, rental)
		}
	}
	return out
}

// WarningsSent counts due-date warning broadcasts.
func (r *Remote) WarningsSent() int {
	return int(r.warnings.Load())
}

func (r *Remote) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", r.register)
	mux.HandleFunc("POST /api/auth/login", r.login)

	mux.HandleFunc("GET /api/movies/{$}", r.listMovies)
	mux.HandleFunc("GET /api/movies/allMovies", r.withUser(true, r.allMovies))
	mux.HandleFunc("GET /api/movies/{id}", r.getMovie)
	mux.HandleFunc("GET /api/movies/search/{keyword}/{page}/{size}", r.searchMovies)
	mux.HandleFunc("POST /api/movies/add", r.withUser(true, r.createMovie))
	mux.HandleFunc("PUT /api/movies/{id}", r.withUser(true, r.updateMovie))
	mux.HandleFunc("DELETE /api/movies/{id}", r.withUser(true, r.deleteMovie))
	mux.HandleFunc("PUT /api/movies/setAvailable/{id}", r.withUser(true, r.setAvailable(true)))
	mux.HandleFunc("PUT /api/movies/setUnavailable/{id}", r.withUser(true, r.setAvailable(false)))
	mux.HandleFunc("PUT /api/movies/discount/{id}/{value}", r.withUser(true, r.reprice(true)))
	mux.HandleFunc("PUT /api/movies/revertPrice/{id}/{value}", r.withUser(true, r.reprice(false)))

	mux.HandleFunc("GET /api/users/{$}", r.withUser(true, r.listUsers))
	mux.HandleFunc("DELETE /api/users/{id}", r.withUser(true, r.deleteUser))
	mux.HandleFunc("PATCH /api/users/suspend/{id}", r.withUser(true, r.suspend(true)))
	mux.HandleFunc("PATCH /api/users/unsuspend/{id}", r.withUser(true, r.suspend(false)))
	mux.HandleFunc("GET /api/users/cart", r.withUser(false, r.collection(false)))
	mux.HandleFunc("GET /api/users/wishlist", r.withUser(false, r.collection(true)))
	mux.HandleFunc("GET /api/users/cartTotal", r.withUser(false, r.cartTotal))
	mux.HandleFunc("PUT /api/users/addToCart/{id}", r.withUser(false, r.mutate(false, true)))
	mux.HandleFunc("PUT /api/users/removeFromCart/{id}", r.withUser(false, r.mutate(false, false)))
	mux.HandleFunc("PUT /api/users/addToWishlist/{id}", r.withUser(false, r.mutate(true, true)))
	mux.HandleFunc("PUT /api/users/removeFromWishlist/{id}", r.withUser(false, r.mutate(true, false)))

	mux.HandleFunc("GET /api/rentals/getForUser", r.withUser(false, r.ownRentals))
	mux.HandleFunc("GET /api/rentals/getAllForUser/{id}", r.withUser(true, r.userRentals))
	mux.HandleFunc("POST /api/rentals/addForUser/{id}", r.withUser(false, r.createRental))
	mux.HandleFunc("PUT /api/rentals/return/{id}", r.withUser(false, r.returnRental))
	mux.HandleFunc("GET /api/rentals/getTotalSpent", r.withUser(false, r.ownTotal))
	mux.HandleFunc("GET /api/rentals/getTotalSpentByUser/{id}", r.withUser(true, r.userTotal))
	mux.HandleFunc("POST /api/rentals/sendDueDateWarnings", r.withUser(true, func(w http.ResponseWriter, _ *http.Request, _ *account) {
		r.warnings.Add(1)
		w.WriteHeader(http.StatusOK)
	}))

	return mux
}

type userHandler func(w http.ResponseWriter, req *http.Request, caller *account)

// withUser resolves the bearer token to an account. Handlers run with the
// lock held.
func (r *Remote) withUser(adminOnly bool, next userHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		token := strings.TrimPrefix(req.Header.Get("Authorization"), "Bearer ")
		claims, err := auth.DecodeClaims(token)
		if err != nil {
			fail(w, http.StatusUnauthorized, "invalid token")
			return
		}

		r.mu.Lock()
		defer r.mu.Unlock()

		caller, ok := r.accounts[claims.Username()]
		if !ok {
			fail(w, http.StatusUnauthorized, "unknown user")
			return
		}
		if adminOnly && caller.user.UserType != models.RoleAdmin {
			fail(w, http.StatusForbidden, "admin only")
			return
		}
		next(w, req, caller)
	}
}

func (r *Remote) register(w http.ResponseWriter, req *http.Request) {
	var body models.RegisterRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		fail(w, http.StatusBadRequest, "invalid body")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accounts[body.Username]; exists {
		fail(w, http.StatusConflict, "Username already taken")
		return
	}
	writeJSON(w, http.StatusCreated, r.addAccountLocked(&body))
}

func (r *Remote) addAccountLocked(req *models.RegisterRequest) models.User {
	userType := req.UserType
	if userType == "" {
		userType = models.RoleMember
	}
	a := &account{
		user: models.User{
			ID:           primitive.NewObjectID().Hex(),
			UserType:     userType,
			Name:         req.FirstName + " " + req.LastName,
			Email:        req.Email,
			Username:     req.Username,
			Cart:         []string{},
			Wishlist:     []string{},
			CreationDate: time.Now().UTC(),
		},
		password: req.Password,
	}
	r.accounts[req.Username] = a
	return a.user
}

func (r *Remote) login(w http.ResponseWriter, req *http.Request) {
	var body models.LoginRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		fail(w, http.StatusBadRequest, "invalid body")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.user.Email == body.Email && a.password == body.Password && !a.user.IsSuspended {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
				Subject:   a.user.Username,
				Issuer:    strings.ToLower(a.user.UserType),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}).SignedString([]byte(remoteSecret))
			if err != nil {
				fail(w, http.StatusInternalServerError, err.Error())
				return
			}
			writeJSON(w, http.StatusOK, models.LoginResponse{JWT: token})
			return
		}
	}
	fail(w, http.StatusUnauthorized, "Bad credentials")
}

func (r *Remote) listMovies(w http.ResponseWriter, req *http.Request) {
	page, _ := strconv.Atoi(req.URL.Query().Get("page"))
	size, _ := strconv.Atoi(req.URL.Query().Get("size"))

	r.mu.Lock()
	defer r.mu.Unlock()
	var available []models.Movie
	for _, m := range r.movies {
		if m.Available {
			available = append(available, m)
		}
	}
	writeJSON(w, http.StatusOK, paginate(available, page, size))
}

func (r *Remote) allMovies(w http.ResponseWriter, _ *http.Request, _ *account) {
	writeJSON(w, http.StatusOK, nonNil(r.movies))
}

func (r *Remote) getMovie(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m := r.movieLocked(req.PathValue("id")); m != nil {
		writeJSON(w, http.StatusOK, m)
		return
	}
	fail(w, http.StatusNotFound, "Movie not found")
}

func (r *Remote) searchMovies(w http.ResponseWriter, req *http.Request) {
	keyword := strings.ToLower(req.PathValue("keyword"))
	page, _ := strconv.Atoi(req.PathValue("page"))
	size, _ := strconv.Atoi(req.PathValue("size"))

	r.mu.Lock()
	defer r.mu.Unlock()
	var matches []models.Movie
	for _, m := range r.movies {
		if strings.Contains(strings.ToLower(m.Title), keyword) {
			matches = append(matches, m)
		}
	}
	writeJSON(w, http.StatusOK, paginate(matches, page, size))
}

func (r *Remote) createMovie(w http.ResponseWriter, req *http.Request, _ *account) {
	var body models.MovieRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		fail(w, http.StatusBadRequest, "invalid body")
		return
	}
	m := movieFrom(primitive.NewObjectID().Hex(), &body)
	r.movies = append(r.movies, m)
	writeJSON(w, http.StatusCreated, m)
}

func (r *Remote) updateMovie(w http.ResponseWriter, req *http.Request, _ *account) {
	var body models.MovieRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		fail(w, http.StatusBadRequest, "invalid body")
		return
	}
	m := r.movieLocked(req.PathValue("id"))
	if m == nil {
		fail(w, http.StatusNotFound, "Movie not found")
		return
	}
	*m = movieFrom(m.ID, &body)
	writeJSON(w, http.StatusOK, m)
}

func (r *Remote) deleteMovie(w http.ResponseWriter, req *http.Request, _ *account) {
	id := req.PathValue("id")
	i := slices.IndexFunc(r.movies, func(m models.Movie) bool { return m.ID == id })
	if i < 0 {
		fail(w, http.StatusNotFound, "Movie not found")
		return
	}
	r.movies = slices.Delete(r.movies, i, i+1)
	w.WriteHeader(http.StatusOK)
}

func (r *Remote) setAvailable(available bool) userHandler {
	return func(w http.ResponseWriter, req *http.Request, _ *account) {
		m := r.movieLocked(req.PathValue("id"))
		if m == nil {
			fail(w, http.StatusNotFound, "Movie not found")
			return
		}
		m.Available = available
		writeJSON(w, http.StatusOK, m)
	}
}

func (r *Remote) reprice(discount bool) userHandler {
	return func(w http.ResponseWriter, req *http.Request, _ *account) {
		value, err := strconv.ParseFloat(req.PathValue("value"), 64)
		if err != nil {
			fail(w, http.StatusBadRequest, "invalid number")
			return
		}
		m := r.movieLocked(req.PathValue("id"))
		if m == nil {
			fail(w, http.StatusNotFound, "Movie not found")
			return
		}
		if discount {
			m.RentalPrice = m.RentalPrice * (100 - value) / 100
		} else {
			m.RentalPrice = value
		}
		writeJSON(w, http.StatusOK, m)
	}
}

func (r *Remote) listUsers(w http.ResponseWriter, _ *http.Request, _ *account) {
	users := make([]models.User, 0, len(r.accounts))
	for _, a := range r.accounts {
		users = append(users, a.user)
	}
	slices.SortFunc(users, func(a, b models.User) int { return strings.Compare(a.Username, b.Username) })
	writeJSON(w, http.StatusOK, users)
}

func (r *Remote) deleteUser(w http.ResponseWriter, req *http.Request, _ *account) {
	a := r.accountByIDLocked(req.PathValue("id"))
	if a == nil {
		fail(w, http.StatusNotFound, "User not found")
		return
	}
	delete(r.accounts, a.user.Username)
	w.WriteHeader(http.StatusOK)
}

func (r *Remote) suspend(suspended bool) userHandler {
	return func(w http.ResponseWriter, req *http.Request, _ *account) {
		a := r.accountByIDLocked(req.PathValue("id"))
		if a == nil {
			fail(w, http.StatusNotFound, "User not found")
			return
		}
		a.user.IsSuspended = suspended
		writeJSON(w, http.StatusOK, a.user)
	}
}

func (r *Remote) collection(wishlist bool) userHandler {
	return func(w http.ResponseWriter, _ *http.Request, caller *account) {
		if wishlist {
			writeJSON(w, http.StatusOK, caller.user.Wishlist)
			return
		}
		writeJSON(w, http.StatusOK, caller.user.Cart)
	}
}

func (r *Remote) cartTotal(w http.ResponseWriter, _ *http.Request, caller *account) {
	total := 0.0
	for _, id := range caller.user.Cart {
		if m := r.movieLocked(id); m != nil {
			total += m.RentalPrice
		}
	}
	writeJSON(w, http.StatusOK, total)
}

func (r *Remote) mutate(wishlist, add bool) userHandler {
	return func(w http.ResponseWriter, req *http.Request, caller *account) {
		id := req.PathValue("id")
		if r.movieLocked(id) == nil {
			fail(w, http.StatusNotFound, "Movie not found")
			return
		}
		list := &caller.user.Cart
		if wishlist {
			list = &caller.user.Wishlist
		}
		if add {
			if !slices.Contains(*list, id) {
				*list = append(*list, id)
			}
		} else {
			*list = slices.DeleteFunc(*list, func(s string) bool { return s == id })
		}
		writeJSON(w, http.StatusOK, caller.user)
	}
}

func (r *Remote) ownRentals(w http.ResponseWriter, _ *http.Request, caller *account) {
	writeJSON(w, http.StatusOK, r.rentalsForLocked(caller.user.Username))
}

func (r *Remote) userRentals(w http.ResponseWriter, req *http.Request, _ *account) {
	a := r.accountByIDLocked(req.PathValue("id"))
	if a == nil {
		fail(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, r.rentalsForLocked(a.user.Username))
}

func (r *Remote) createRental(w http.ResponseWriter, req *http.Request, caller *account) {
	id := req.PathValue("id")
	if r.failRentals[id] {
		fail(w, http.StatusInternalServerError, "rental store unavailable")
		return
	}
	var body models.RentalRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		fail(w, http.StatusBadRequest, "invalid body")
		return
	}
	if r.movieLocked(id) == nil {
		fail(w, http.StatusNotFound, "Movie not found")
		return
	}

	today := models.NewDate(time.Now())
	rental := models.Rental{
		ID:          primitive.NewObjectID().Hex(),
		Username:    caller.user.Username,
		MovieID:     id,
		RentalDate:  today,
		DueDate:     models.NewDate(today.AddDate(0, 0, 7)),
		RentalPrice: body.RentalPrice,
	}
	r.rentals = append(r.rentals, rental)
	writeJSON(w, http.StatusCreated, rental)
}

func (r *Remote) returnRental(w http.ResponseWriter, req *http.Request, caller *account) {
	id := req.PathValue("id")
	for i := range r.rentals {
		rental := &r.rentals[i]
		if rental.ID != id || rental.Username != caller.user.Username {
			continue
		}
		today := models.NewDate(time.Now())
		rental.Returned = true
		rental.ReturnDate = &today
		writeJSON(w, http.StatusOK, rental)
		return
	}
	fail(w, http.StatusNotFound, "Rental not found")
}

func (r *Remote) ownTotal(w http.ResponseWriter, _ *http.Request, caller *account) {
	writeJSON(w, http.StatusOK, spent(r.rentalsForLocked(caller.user.Username)))
}

func (r *Remote) userTotal(w http.ResponseWriter, req *http.Request, _ *account) {
	a := r.accountByIDLocked(req.PathValue("id"))
	if a == nil {
		fail(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, spent(r.rentalsForLocked(a.user.Username)))
}

func (r *Remote) movieLocked(id string) *models.Movie {
	for i := range r.movies {
		if r.movies[i].ID == id {
			return &r.movies[i]
		}
	}
	return nil
}

func (r *Remote) accountByIDLocked(id string) *account {
	for _, a := range r.accounts {
		if a.user.ID == id {
			return a
		}
	}
	return nil
}

func (r *Remote) rentalsForLocked(username string) []models.Rental {
	out := []models.Rental{}
	for _, rental := range r.rentals {
		if rental.Username == username {
			out = append(out, rental)
		}
	}
	return out
}

func movieFrom(id string, req *models.MovieRequest) models.Movie {
	return models.Movie{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		SmallImage:  req.SmallImage,
		BigImage:    req.BigImage,
		Director:    req.Director,
		Genre:       req.Genre,
		Year:        req.Year,
		Available:   req.Available,
		RentalPrice: req.RentalPrice,
		Video:       req.Video,
	}
}

func paginate(movies []models.Movie, page, size int) []models.Movie {
	if size <= 0 {
		size = 10
	}
	start := (page - 1) * size
	if start < 0 || start >= len(movies) {
		return []models.Movie{}
	}
	return movies[start:min(start+size, len(movies))]
}

func spent(rentals []models.Rental) float64 {
	total := 0.0
	for _, rental := range rentals {
		total += rental.RentalPrice
	}
	return total
}

func nonNil(movies []models.Movie) []models.Movie {
	if movies == nil {
		return []models.Movie{}
	}
	return movies
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message, "error": fmt.Sprint(status)})
}
