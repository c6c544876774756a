package handler

import (
	"strconv"
	"time"

	"frent-client/internal/middleware"
	"frent-client/internal/service"
	"frent-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles HTTP requests for compound transactions.
type CheckoutHandler struct {
	service service.CheckoutServicer
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service service.CheckoutServicer) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// RentCart godoc
// @Summary      Rent everything in the cart
// @Description  Creates one rental per cart entry, then empties the cart. Not atomic: a failure is reported without saying which step failed.
// @Tags         cart
// @Produce      json
// @Success      200  {object}  response.Response{data=models.SagaRecord}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /cart/rent [post]
func (h *CheckoutHandler) RentCart(c *gin.Context) {
	result, err := h.service.RentCart(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		writeCompoundError(c, err)
		return
	}

	response.Success(c, result)
}

// MoveToCart godoc
// @Summary      Move a wishlisted movie to the cart
// @Tags         wishlist
// @Produce      json
// @Param        movieId  path      string  true  "Movie ID"
// @Success      200      {object}  response.Response{data=models.SagaRecord}
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /wishlist/{movieId}/move-to-cart [post]
func (h *CheckoutHandler) MoveToCart(c *gin.Context) {
	result, err := h.service.MoveToCart(c.Request.Context(), middleware.GetSession(c), c.Param("movieId"))
	if err != nil {
		writeCompoundError(c, err)
		return
	}

	response.Success(c, result)
}

// History godoc
// @Summary      Recent compound transactions
// @Tags         cart
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries"  default(20)
// @Success      200    {object}  response.Response{data=[]models.SagaRecord}
// @Failure      503    {object}  response.Response
// @Security     BearerAuth
// @Router       /checkout/history [get]
func (h *CheckoutHandler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 100 {
			response.BadRequest(c, "limit must be between 0 and 100")
			return
		}
		limit = n
	}

	history, err := h.service.History(c.Request.Context(), middleware.GetSession(c), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, history)
}

const defaultAuditWindow = 24 * time.Hour

// PartialFailures godoc
// @Summary      Partially applied compound transactions
// @Description  Lists every user's transactions that failed after committing a step, e.g. rentals created without the cart being emptied.
// @Tags         admin
// @Produce      json
// @Param        since  query     string  false  "Look-back window as a Go duration"  default(24h)
// @Success      200    {object}  response.Response{data=[]models.SagaRecord}
// @Failure      400    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      503    {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/checkout/partial-failures [get]
func (h *CheckoutHandler) PartialFailures(c *gin.Context) {
	window := defaultAuditWindow
	if raw := c.Query("since"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			response.BadRequest(c, "since must be a positive duration such as 24h")
			return
		}
		window = d
	}

	records, err := h.service.PartialFailures(c.Request.Context(), middleware.GetSession(c), time.Now().Add(-window))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, records)
}
