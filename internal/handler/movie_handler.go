package handler

import (
	"strconv"

	"frent-client/internal/middleware"
	"frent-client/internal/models"
	"frent-client/internal/service"
	"frent-client/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxArtworkSize = 5 << 20

// MovieHandler handles HTTP requests for catalog operations.
type MovieHandler struct {
	service service.CatalogServicer
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(service service.CatalogServicer) *MovieHandler {
	return &MovieHandler{service: service}
}

// ListMovies godoc
// @Summary      List movies
// @Description  One page of the catalog
// @Tags         movies
// @Produce      json
// @Param        page  query     int  false  "Page number, starting at 1"  default(1)
// @Param        size  query     int  false  "Page size"    default(10)
// @Success      200   {object}  response.Response{data=[]models.Movie}
// @Failure      400   {object}  response.Response
// @Router       /movies [get]
func (h *MovieHandler) ListMovies(c *gin.Context) {
	var page models.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page = page.Normalize()

	movies, err := h.service.ListPage(c.Request.Context(), page.Page, page.Size)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, movies)
}

// GetMovie godoc
// @Summary      Get movie by ID
// @Tags         movies
// @Produce      json
// @Param        id   path      string  true  "Movie ID"
// @Success      200  {object}  response.Response{data=models.Movie}
// @Failure      404  {object}  response.Response
// @Router       /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *gin.Context) {
	movie, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, movie)
}

// SearchMovies godoc
// @Summary      Search movies
// @Description  Movies whose title matches the keyword. No match is an empty list.
// @Tags         movies
// @Produce      json
// @Param        keyword  path      string  true   "Search keyword"
// @Param        page     query     int     false  "Page number, starting at 1"  default(1)
// @Param        size     query     int     false  "Page size"                   default(10)
// @Success      200      {object}  response.Response{data=[]models.Movie}
// @Router       /movies/search/{keyword} [get]
func (h *MovieHandler) SearchMovies(c *gin.Context) {
	var page models.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page = page.Normalize()

	movies, err := h.service.Search(c.Request.Context(), c.Param("keyword"), page.Page, page.Size)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, movies)
}

// ListAllMovies godoc
// @Summary      List the whole catalog
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Movie}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/movies [get]
func (h *MovieHandler) ListAllMovies(c *gin.Context) {
	movies, err := h.service.ListAll(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, movies)
}

// CreateMovie godoc
// @Summary      Create a movie
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      models.MovieRequest  true  "Movie"
// @Success      201      {object}  response.Response{data=models.Movie}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/movies [post]
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req models.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	movie, err := h.service.Create(c.Request.Context(), middleware.GetSession(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, movie)
}

// UpdateMovie godoc
// @Summary      Update a movie
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Movie ID"
// @Param        request  body      models.MovieRequest  true  "Movie"
// @Success      200      {object}  response.Response{data=models.Movie}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	var req models.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	movie, err := h.service.Update(c.Request.Context(), middleware.GetSession(c), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, movie)
}

// DeleteMovie godoc
// @Summary      Delete a movie
// @Tags         admin
// @Param        id   path  string  true  "Movie ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.GetSession(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	response.NoContent(c)
}

// SetAvailable marks a movie rentable.
func (h *MovieHandler) SetAvailable(c *gin.Context) {
	movie, err := h.service.SetAvailable(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, movie)
}

// SetUnavailable marks a movie not rentable.
func (h *MovieHandler) SetUnavailable(c *gin.Context) {
	movie, err := h.service.SetUnavailable(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, movie)
}

// ApplyDiscount godoc
// @Summary      Put a movie on sale
// @Description  Lowers the price by a percentage and notifies users who wishlisted the movie
// @Tags         admin
// @Produce      json
// @Param        id       path      string  true  "Movie ID"
// @Param        percent  path      number  true  "Discount percentage, 0 < percent <= 100"
// @Success      200      {object}  response.Response{data=models.Movie}
// @Failure      400      {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/movies/{id}/discount/{percent} [put]
func (h *MovieHandler) ApplyDiscount(c *gin.Context) {
	percent, err := strconv.ParseFloat(c.Param("percent"), 64)
	if err != nil {
		response.BadRequest(c, "invalid discount percentage")
		return
	}

	movie, err := h.service.ApplyDiscount(c.Request.Context(), middleware.GetSession(c), c.Param("id"), percent)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, movie)
}

// RevertPrice restores a movie's price after a sale.
func (h *MovieHandler) RevertPrice(c *gin.Context) {
	price, err := strconv.ParseFloat(c.Param("price"), 64)
	if err != nil {
		response.BadRequest(c, "invalid price")
		return
	}

	movie, err := h.service.RevertPrice(c.Request.Context(), middleware.GetSession(c), c.Param("id"), price)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, movie)
}

// UploadArtwork godoc
// @Summary      Upload a poster
// @Description  Stores an image and returns the URL to use as smallImage or bigImage
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "JPEG, PNG or WebP image"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      503   {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/movies/artwork [post]
func (h *MovieHandler) UploadArtwork(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if header.Size > maxArtworkSize {
		response.BadRequest(c, "file too large")
		return
	}

	file, err := header.Open()
	if err != nil {
		response.BadRequest(c, "could not read file")
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.service.UploadArtwork(c.Request.Context(), middleware.GetSession(c), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, gin.H{"url": url})
}
