// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"
	"io"
	"time"

	"frent-client/internal/models"
	"frent-client/internal/service"
	"frent-client/pkg/auth"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*auth.Session, error)
	RegisterFunc func(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*auth.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

// MockCatalogService is a mock implementation of CatalogServicer.
type MockCatalogService struct {
	ListPageFunc       func(ctx context.Context, page, size int) ([]models.Movie, error)
	ListAllFunc        func(ctx context.Context, sess *auth.Session) ([]models.Movie, error)
	GetByIDFunc        func(ctx context.Context, id string) (*models.Movie, error)
	SearchFunc         func(ctx context.Context, keyword string, page, size int) ([]models.Movie, error)
	CreateFunc         func(ctx context.Context, sess *auth.Session, req *models.MovieRequest) (*models.Movie, error)
	UpdateFunc         func(ctx context.Context, sess *auth.Session, id string, req *models.MovieRequest) (*models.Movie, error)
	DeleteFunc         func(ctx context.Context, sess *auth.Session, id string) error
	SetAvailableFunc   func(ctx context.Context, sess *auth.Session, id string) (*models.Movie, error)
	SetUnavailableFunc func(ctx context.Context, sess *auth.Session, id string) (*models.Movie, error)
	ApplyDiscountFunc  func(ctx context.Context, sess *auth.Session, id string, percent float64) (*models.Movie, error)
	RevertPriceFunc    func(ctx context.Context, sess *auth.Session, id string, oldPrice float64) (*models.Movie, error)
	UploadArtworkFunc  func(ctx context.Context, sess *auth.Session, filename, contentType string, body io.Reader) (string, error)
}

func (m *MockCatalogService) ListPage(ctx context.Context, page, size int) ([]models.Movie, error) {
	if m.ListPageFunc != nil {
		return m.ListPageFunc(ctx, page, size)
	}
	return nil, nil
}

func (m *MockCatalogService) ListAll(ctx context.Context, sess *auth.Session) ([]models.Movie, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, sess)
	}
	return nil, nil
}

func (m *MockCatalogService) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCatalogService) Search(ctx context.Context, keyword string, page, size int) ([]models.Movie, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, keyword, page, size)
	}
	return nil, nil
}

func (m *MockCatalogService) Create(ctx context.Context, sess *auth.Session, req *models.MovieRequest) (*models.Movie, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sess, req)
	}
	return nil, nil
}

func (m *MockCatalogService) Update(ctx context.Context, sess *auth.Session, id string, req *models.MovieRequest) (*models.Movie, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sess, id, req)
	}
	return nil, nil
}

func (m *MockCatalogService) Delete(ctx context.Context, sess *auth.Session, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sess, id)
	}
	return nil
}

func (m *MockCatalogService) SetAvailable(ctx context.Context, sess *auth.Session, id string) (*models.Movie, error) {
	if m.SetAvailableFunc != nil {
		return m.SetAvailableFunc(ctx, sess, id)
	}
	return nil, nil
}

func (m *MockCatalogService) SetUnavailable(ctx context.Context, sess *auth.Session, id string) (*models.Movie, error) {
	if m.SetUnavailableFunc != nil {
		return m.SetUnavailableFunc(ctx, sess, id)
	}
	return nil, nil
}

func (m *MockCatalogService) ApplyDiscount(ctx context.Context, sess *auth.Session, id string, percent float64) (*models.Movie, error) {
	if m.ApplyDiscountFunc != nil {
		return m.ApplyDiscountFunc(ctx, sess, id, percent)
	}
	return nil, nil
}

func (m *MockCatalogService) RevertPrice(ctx context.Context, sess *auth.Session, id string, oldPrice float64) (*models.Movie, error) {
	if m.RevertPriceFunc != nil {
		return m.RevertPriceFunc(ctx, sess, id, oldPrice)
	}
	return nil, nil
}

func (m *MockCatalogService) UploadArtwork(ctx context.Context, sess *auth.Session, filename, contentType string, body io.Reader) (string, error) {
	if m.UploadArtworkFunc != nil {
		return m.UploadArtworkFunc(ctx, sess, filename, contentType, body)
	}
	return "", nil
}

// MockCollectionService is a mock implementation of CollectionServicer.
type MockCollectionService struct {
	GetCartFunc            func(ctx context.Context, sess *auth.Session) ([]models.CartMovie, error)
	GetWishlistFunc        func(ctx context.Context, sess *auth.Session) ([]models.WishlistMovie, error)
	CartTotalFunc          func(ctx context.Context, sess *auth.Session) (float64, error)
	AddToCartFunc          func(ctx context.Context, sess *auth.Session, movieID string) error
	RemoveFromCartFunc     func(ctx context.Context, sess *auth.Session, movieID string) error
	AddToWishlistFunc      func(ctx context.Context, sess *auth.Session, movieID string) error
	RemoveFromWishlistFunc func(ctx context.Context, sess *auth.Session, movieID string) error
	IsInCartFunc           func(ctx context.Context, sess *auth.Session, movieID string) (bool, error)
	IsInWishlistFunc       func(ctx context.Context, sess *auth.Session, movieID string) (bool, error)
}

func (m *MockCollectionService) GetCart(ctx context.Context, sess *auth.Session) ([]models.CartMovie, error) {
	if m.GetCartFunc != nil {
		return m.GetCartFunc(ctx, sess)
	}
	return nil, nil
}

func (m *MockCollectionService) GetWishlist(ctx context.Context, sess *auth.Session) ([]models.WishlistMovie, error) {
	if m.GetWishlistFunc != nil {
		return m.GetWishlistFunc(ctx, sess)
	}
	return nil, nil
}

func (m *MockCollectionService) CartTotal(ctx context.Context, sess *auth.Session) (float64, error) {
	if m.CartTotalFunc != nil {
		return m.CartTotalFunc(ctx, sess)
	}
	return 0, nil
}

func (m *MockCollectionService) AddToCart(ctx context.Context, sess *auth.Session, movieID string) error {
	if m.AddToCartFunc != nil {
		return m.AddToCartFunc(ctx, sess, movieID)
	}
	return nil
}

func (m *MockCollectionService) RemoveFromCart(ctx context.Context, sess *auth.Session, movieID string) error {
	if m.RemoveFromCartFunc != nil {
		return m.RemoveFromCartFunc(ctx, sess, movieID)
	}
	return nil
}

func (m *MockCollectionService) AddToWishlist(ctx context.Context, sess *auth.Session, movieID string) error {
	if m.AddToWishlistFunc != nil {
		return m.AddToWishlistFunc(ctx, sess, movieID)
	}
	return nil
}

func (m *MockCollectionService) RemoveFromWishlist(ctx context.Context, sess *auth.Session, movieID string) error {
	if m.RemoveFromWishlistFunc != nil {
		return m.RemoveFromWishlistFunc(ctx, sess, movieID)
	}
	return nil
}

func (m *MockCollectionService) IsInCart(ctx context.Context, sess *auth.Session, movieID string) (bool, error) {
	if m.IsInCartFunc != nil {
		return m.IsInCartFunc(ctx, sess, movieID)
	}
	return false, nil
}

func (m *MockCollectionService) IsInWishlist(ctx context.Context, sess *auth.Session, movieID string) (bool, error) {
	if m.IsInWishlistFunc != nil {
		return m.IsInWishlistFunc(ctx, sess, movieID)
	}
	return false, nil
}

// MockRentalService is a mock implementation of RentalServicer.
type MockRentalService struct {
	ListForUserFunc         func(ctx context.Context, sess *auth.Session) ([]models.RentalMovie, error)
	ListForUserByIDFunc     func(ctx context.Context, sess *auth.Session, userID string) ([]models.RentalMovie, error)
	CreateFunc              func(ctx context.Context, sess *auth.Session, movieID string) (*models.Rental, error)
	ReturnFunc              func(ctx context.Context, sess *auth.Session, rentalID string) (*models.Rental, error)
	TotalSpentFunc          func(ctx context.Context, sess *auth.Session) (float64, error)
	TotalSpentByIDFunc      func(ctx context.Context, sess *auth.Session, userID string) (float64, error)
	SendDueDateWarningsFunc func(ctx context.Context, sess *auth.Session) error
}

func (m *MockRentalService) ListForUser(ctx context.Context, sess *auth.Session) ([]models.RentalMovie, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, sess)
	}
	return nil, nil
}

func (m *MockRentalService) ListForUserByID(ctx context.Context, sess *auth.Session, userID string) ([]models.RentalMovie, error) {
	if m.ListForUserByIDFunc != nil {
		return m.ListForUserByIDFunc(ctx, sess, userID)
	}
	return nil, nil
}

func (m *MockRentalService) Create(ctx context.Context, sess *auth.Session, movieID string) (*models.Rental, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sess, movieID)
	}
	return nil, nil
}

func (m *MockRentalService) Return(ctx context.Context, sess *auth.Session, rentalID string) (*models.Rental, error) {
	if m.ReturnFunc != nil {
		return m.ReturnFunc(ctx, sess, rentalID)
	}
	return nil, nil
}

func (m *MockRentalService) TotalSpent(ctx context.Context, sess *auth.Session) (float64, error) {
	if m.TotalSpentFunc != nil {
		return m.TotalSpentFunc(ctx, sess)
	}
	return 0, nil
}

func (m *MockRentalService) TotalSpentByID(ctx context.Context, sess *auth.Session, userID string) (float64, error) {
	if m.TotalSpentByIDFunc != nil {
		return m.TotalSpentByIDFunc(ctx, sess, userID)
	}
	return 0, nil
}

func (m *MockRentalService) SendDueDateWarnings(ctx context.Context, sess *auth.Session) error {
	if m.SendDueDateWarningsFunc != nil {
		return m.SendDueDateWarningsFunc(ctx, sess)
	}
	return nil
}

// MockCheckoutService is a mock implementation of CheckoutServicer.
type MockCheckoutService struct {
	RentCartFunc   func(ctx context.Context, sess *auth.Session) (*service.SagaResult, error)
	MoveToCartFunc func(ctx context.Context, sess *auth.Session, movieID string) (*service.SagaResult, error)
	HistoryFunc    func(ctx context.Context, sess *auth.Session, limit int) ([]service.SagaResult, error)

	PartialFailuresFunc func(ctx context.Context, sess *auth.Session, since time.Time) ([]service.SagaResult, error)
}

func (m *MockCheckoutService) RentCart(ctx context.Context, sess *auth.Session) (*service.SagaResult, error) {
	if m.RentCartFunc != nil {
		return m.RentCartFunc(ctx, sess)
	}
	return nil, nil
}

func (m *MockCheckoutService) MoveToCart(ctx context.Context, sess *auth.Session, movieID string) (*service.SagaResult, error) {
	if m.MoveToCartFunc != nil {
		return m.MoveToCartFunc(ctx, sess, movieID)
	}
	return nil, nil
}

func (m *MockCheckoutService) History(ctx context.Context, sess *auth.Session, limit int) ([]service.SagaResult, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, sess, limit)
	}
	return nil, nil
}

func (m *MockCheckoutService) PartialFailures(ctx context.Context, sess *auth.Session, since time.Time) ([]service.SagaResult, error) {
	if m.PartialFailuresFunc != nil {
		return m.PartialFailuresFunc(ctx, sess, since)
	}
	return nil, nil
}

// MockUserAdminService is a mock implementation of UserAdminServicer.
type MockUserAdminService struct {
	ListFunc      func(ctx context.Context, sess *auth.Session) ([]models.User, error)
	DeleteFunc    func(ctx context.Context, sess *auth.Session, id string) error
	SuspendFunc   func(ctx context.Context, sess *auth.Session, id string) (*models.User, error)
	UnsuspendFunc func(ctx context.Context, sess *auth.Session, id string) (*models.User, error)
}

func (m *MockUserAdminService) List(ctx context.Context, sess *auth.Session) ([]models.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, sess)
	}
	return nil, nil
}

func (m *MockUserAdminService) Delete(ctx context.Context, sess *auth.Session, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sess, id)
	}
	return nil
}

func (m *MockUserAdminService) Suspend(ctx context.Context, sess *auth.Session, id string) (*models.User, error) {
	if m.SuspendFunc != nil {
		return m.SuspendFunc(ctx, sess, id)
	}
	return nil, nil
}

func (m *MockUserAdminService) Unsuspend(ctx context.Context, sess *auth.Session, id string) (*models.User, error) {
	if m.UnsuspendFunc != nil {
		return m.UnsuspendFunc(ctx, sess, id)
	}
	return nil, nil
}

var (
	_ service.AuthServicer       = (*MockAuthService)(nil)
	_ service.CatalogServicer    = (*MockCatalogService)(nil)
	_ service.CollectionServicer = (*MockCollectionService)(nil)
	_ service.RentalServicer     = (*MockRentalService)(nil)
	_ service.CheckoutServicer   = (*MockCheckoutService)(nil)
	_ service.UserAdminServicer  = (*MockUserAdminService)(nil)
)
