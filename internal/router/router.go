// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	"frent-client/internal/authz"
	"frent-client/internal/handler"
	"frent-client/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler       *handler.AuthHandler
	MovieHandler      *handler.MovieHandler
	CollectionHandler *handler.CollectionHandler
	RentalHandler     *handler.RentalHandler
	CheckoutHandler   *handler.CheckoutHandler
	UserHandler       *handler.UserHandler
	Authorizer        authz.Authorizer
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
		}

		// Catalog routes (public)
		movies := v1.Group("/movies")
		{
			movies.GET("", cfg.MovieHandler.ListMovies)
			movies.GET("/:id", cfg.MovieHandler.GetMovie)
			movies.GET("/search/:keyword", cfg.MovieHandler.SearchMovies)
		}

		// Cart routes (protected)
		cart := v1.Group("/cart")
		cart.Use(middleware.Auth())
		{
			cart.GET("", cfg.CollectionHandler.GetCart)
			cart.GET("/total", cfg.CollectionHandler.CartTotal)
			cart.POST("/rent", cfg.CheckoutHandler.RentCart)
			cart.GET("/:movieId/contains", cfg.CollectionHandler.CartContains)
			cart.PUT("/:movieId", cfg.CollectionHandler.AddToCart)
			cart.DELETE("/:movieId", cfg.CollectionHandler.RemoveFromCart)
		}

		// Wishlist routes (protected)
		wishlist := v1.Group("/wishlist")
		wishlist.Use(middleware.Auth())
		{
			wishlist.GET("", cfg.CollectionHandler.GetWishlist)
			wishlist.GET("/:movieId/contains", cfg.CollectionHandler.WishlistContains)
			wishlist.PUT("/:movieId", cfg.CollectionHandler.AddToWishlist)
			wishlist.DELETE("/:movieId", cfg.CollectionHandler.RemoveFromWishlist)
			wishlist.POST("/:movieId/move-to-cart", cfg.CheckoutHandler.MoveToCart)
		}

		// Rental routes (protected)
		rentals := v1.Group("/rentals")
		rentals.Use(middleware.Auth())
		{
			rentals.GET("", cfg.RentalHandler.ListRentals)
			rentals.GET("/total", cfg.RentalHandler.TotalSpent)
			rentals.POST("/:movieId", cfg.RentalHandler.CreateRental)
			rentals.PUT("/:id/return", cfg.RentalHandler.ReturnRental)
		}

		checkout := v1.Group("/checkout")
		checkout.Use(middleware.Auth())
		{
			checkout.GET("/history", cfg.CheckoutHandler.History)
		}

		// Admin routes (protected, role checked per route)
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth())
		{
			adminMovies := admin.Group("/movies")
			{
				adminMovies.GET("", middleware.RequireAction(cfg.Authorizer, authz.ActionCatalogListAll), cfg.MovieHandler.ListAllMovies)
				adminMovies.POST("", middleware.RequireAction(cfg.Authorizer, authz.ActionCatalogManage), cfg.MovieHandler.CreateMovie)
				adminMovies.POST("/artwork", middleware.RequireAction(cfg.Authorizer, authz.ActionArtworkUpload), cfg.MovieHandler.UploadArtwork)
				adminMovies.PUT("/:id", middleware.RequireAction(cfg.Authorizer, authz.ActionCatalogManage), cfg.MovieHandler.UpdateMovie)
				adminMovies.DELETE("/:id", middleware.RequireAction(cfg.Authorizer, authz.ActionCatalogManage), cfg.MovieHandler.DeleteMovie)
				adminMovies.PUT("/:id/available", middleware.RequireAction(cfg.Authorizer, authz.ActionCatalogManage), cfg.MovieHandler.SetAvailable)
				adminMovies.PUT("/:id/unavailable", middleware.RequireAction(cfg.Authorizer, authz.ActionCatalogManage), cfg.MovieHandler.SetUnavailable)
				adminMovies.PUT("/:id/discount/:percent", middleware.RequireAction(cfg.Authorizer, authz.ActionCatalogPricing), cfg.MovieHandler.ApplyDiscount)
				adminMovies.PUT("/:id/revert-price/:price", middleware.RequireAction(cfg.Authorizer, authz.ActionCatalogPricing), cfg.MovieHandler.RevertPrice)
			}

			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", middleware.RequireAction(cfg.Authorizer, authz.ActionUserList), cfg.UserHandler.ListUsers)
				adminUsers.DELETE("/:id", middleware.RequireAdmin(cfg.Authorizer), cfg.UserHandler.DeleteUser)
				adminUsers.PUT("/:id/suspend", middleware.RequireAdmin(cfg.Authorizer), cfg.UserHandler.SuspendUser)
				adminUsers.PUT("/:id/unsuspend", middleware.RequireAdmin(cfg.Authorizer), cfg.UserHandler.UnsuspendUser)
				adminUsers.GET("/:id/rentals", middleware.RequireAction(cfg.Authorizer, authz.ActionRentalViewAny), cfg.RentalHandler.ListUserRentals)
				adminUsers.GET("/:id/total-spent", middleware.RequireAction(cfg.Authorizer, authz.ActionRentalViewAny), cfg.RentalHandler.UserTotalSpent)
			}

			admin.POST("/rentals/due-date-warnings", middleware.RequireAction(cfg.Authorizer, authz.ActionRentalNotify), cfg.RentalHandler.SendDueDateWarnings)
			admin.GET("/checkout/partial-failures", middleware.RequireAction(cfg.Authorizer, authz.ActionCheckoutAudit), cfg.CheckoutHandler.PartialFailures)
		}
	}

	return r
}
