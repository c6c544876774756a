package handler

import (
	"frent-client/internal/middleware"
	"frent-client/internal/service"
	"frent-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// CollectionHandler handles HTTP requests for the cart and the wishlist.
type CollectionHandler struct {
	service service.CollectionServicer
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(service service.CollectionServicer) *CollectionHandler {
	return &CollectionHandler{service: service}
}

// GetCart godoc
// @Summary      Get the cart
// @Description  Cart entries resolved to movies, in cart order
// @Tags         cart
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.CartMovie}
// @Failure      401  {object}  response.Response
// @Security     BearerAuth
// @Router       /cart [get]
func (h *CollectionHandler) GetCart(c *gin.Context) {
	cart, err := h.service.GetCart(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, cart)
}

// CartTotal godoc
// @Summary      Get the cart total
// @Tags         cart
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /cart/total [get]
func (h *CollectionHandler) CartTotal(c *gin.Context) {
	total, err := h.service.CartTotal(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{"total": total})
}

// CartContains reports whether a movie is in the cart.
func (h *CollectionHandler) CartContains(c *gin.Context) {
	in, err := h.service.IsInCart(c.Request.Context(), middleware.GetSession(c), c.Param("movieId"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{"contains": in})
}

// AddToCart godoc
// @Summary      Add a movie to the cart
// @Tags         cart
// @Param        movieId  path  string  true  "Movie ID"
// @Success      204
// @Failure      400  {object}  response.Response
// @Security     BearerAuth
// @Router       /cart/{movieId} [put]
func (h *CollectionHandler) AddToCart(c *gin.Context) {
	if err := h.service.AddToCart(c.Request.Context(), middleware.GetSession(c), c.Param("movieId")); err != nil {
		writeError(c, err)
		return
	}

	response.NoContent(c)
}

// RemoveFromCart godoc
// @Summary      Remove a movie from the cart
// @Tags         cart
// @Param        movieId  path  string  true  "Movie ID"
// @Success      204
// @Security     BearerAuth
// @Router       /cart/{movieId} [delete]
func (h *CollectionHandler) RemoveFromCart(c *gin.Context) {
	if err := h.service.RemoveFromCart(c.Request.Context(), middleware.GetSession(c), c.Param("movieId")); err != nil {
		writeError(c, err)
		return
	}

	response.NoContent(c)
}

// GetWishlist godoc
// @Summary      Get the wishlist
// @Tags         wishlist
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.WishlistMovie}
// @Security     BearerAuth
// @Router       /wishlist [get]
func (h *CollectionHandler) GetWishlist(c *gin.Context) {
	wishlist, err := h.service.GetWishlist(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, wishlist)
}

// WishlistContains reports whether a movie is in the wishlist.
func (h *CollectionHandler) WishlistContains(c *gin.Context) {
	in, err := h.service.IsInWishlist(c.Request.Context(), middleware.GetSession(c), c.Param("movieId"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{"contains": in})
}

// AddToWishlist adds a movie to the wishlist.
func (h *CollectionHandler) AddToWishlist(c *gin.Context) {
	if err := h.service.AddToWishlist(c.Request.Context(), middleware.GetSession(c), c.Param("movieId")); err != nil {
		writeError(c, err)
		return
	}

	response.NoContent(c)
}

// RemoveFromWishlist removes a movie from the wishlist.
func (h *CollectionHandler) RemoveFromWishlist(c *gin.Context) {
	if err := h.service.RemoveFromWishlist(c.Request.Context(), middleware.GetSession(c), c.Param("movieId")); err != nil {
		writeError(c, err)
		return
	}

	response.NoContent(c)
}
