package models

import "time"

// User roles as the rental service names them.
const (
	RoleMember   = "MEMBER"
	RoleEmployee = "EMPLOYEE"
	RoleAdmin    = "ADMIN"
)

// User represents an account on the rental service.
type User struct {
	ID           string    `json:"id" example:"6579ab77bcf86cd799439011"`
	UserType     string    `json:"userType" example:"MEMBER"`
	Name         string    `json:"name" example:"John Doe"`
	Email        string    `json:"email" example:"user@example.com"`
	Username     string    `json:"username" example:"jdoe"`
	Cart         []string  `json:"cart"`
	Wishlist     []string  `json:"wishlist"`
	CreationDate time.Time `json:"creationDate" example:"2024-01-15T09:30:00Z"`
	IsSuspended  bool      `json:"isSuspended" example:"false"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse is what the rental service returns on successful login.
type LoginResponse struct {
	JWT string `json:"jwt" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// SessionResponse is what the API returns to the browser after login.
type SessionResponse struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	Username  string    `json:"username" example:"jdoe"`
	Role      string    `json:"role" example:"member"`
	ExpiresAt time.Time `json:"expiresAt" example:"2024-01-15T10:30:00Z"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	UserType  string `json:"userType" binding:"omitempty,oneof=MEMBER EMPLOYEE ADMIN" example:"MEMBER"`
	FirstName string `json:"firstName" binding:"required,min=1" example:"John"`
	LastName  string `json:"lastName" binding:"required,min=1" example:"Doe"`
	Email     string `json:"email" binding:"required,email" example:"user@example.com"`
	Username  string `json:"username" binding:"required,min=3" example:"jdoe"`
	Password  string `json:"password" binding:"required,min=6" example:"secret123"`
}
