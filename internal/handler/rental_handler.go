package handler

import (
	"frent-client/internal/middleware"
	"frent-client/internal/service"
	"frent-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// RentalHandler handles HTTP requests for rental operations.
type RentalHandler struct {
	service service.RentalServicer
}

// NewRentalHandler creates a new RentalHandler.
func NewRentalHandler(service service.RentalServicer) *RentalHandler {
	return &RentalHandler{service: service}
}

// ListRentals godoc
// @Summary      List my rentals
// @Description  Rentals joined with their movies, most recent first
// @Tags         rentals
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.RentalMovie}
// @Security     BearerAuth
// @Router       /rentals [get]
func (h *RentalHandler) ListRentals(c *gin.Context) {
	rentals, err := h.service.ListForUser(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, rentals)
}

// CreateRental godoc
// @Summary      Rent a movie
// @Tags         rentals
// @Produce      json
// @Param        movieId  path      string  true  "Movie ID"
// @Success      201      {object}  response.Response{data=models.Rental}
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /rentals/{movieId} [post]
func (h *RentalHandler) CreateRental(c *gin.Context) {
	rental, err := h.service.Create(c.Request.Context(), middleware.GetSession(c), c.Param("movieId"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, rental)
}

// ReturnRental godoc
// @Summary      Return a rental
// @Description  The return date is set by the rental service
// @Tags         rentals
// @Produce      json
// @Param        id   path      string  true  "Rental ID"
// @Success      200  {object}  response.Response{data=models.Rental}
// @Failure      400  {object}  response.Response
// @Security     BearerAuth
// @Router       /rentals/{id}/return [put]
func (h *RentalHandler) ReturnRental(c *gin.Context) {
	rental, err := h.service.Return(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, rental)
}

// TotalSpent returns what the current user spent on rentals.
func (h *RentalHandler) TotalSpent(c *gin.Context) {
	total, err := h.service.TotalSpent(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{"total": total})
}

// ListUserRentals returns another user's rentals.
func (h *RentalHandler) ListUserRentals(c *gin.Context) {
	rentals, err := h.service.ListForUserByID(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, rentals)
}

// UserTotalSpent returns what another user spent on rentals.
func (h *RentalHandler) UserTotalSpent(c *gin.Context) {
	total, err := h.service.TotalSpentByID(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{"total": total})
}

// SendDueDateWarnings godoc
// @Summary      Email users with overdue rentals
// @Description  Fire and forget: delivery failures are only logged
// @Tags         admin
// @Produce      json
// @Success      202  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/rentals/due-date-warnings [post]
func (h *RentalHandler) SendDueDateWarnings(c *gin.Context) {
	if err := h.service.SendDueDateWarnings(c.Request.Context(), middleware.GetSession(c)); err != nil {
		writeError(c, err)
		return
	}

	response.Accepted(c, gin.H{"message": "due date warnings requested"})
}
