package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	apperrors "frent-client/internal/errors"
	"frent-client/internal/models"
	"frent-client/internal/service/mocks"
	"frent-client/pkg/auth"
	"frent-client/test/fixtures"
	"frent-client/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovieHandler(t *testing.T) {
	mockService := &mocks.MockCatalogService{}
	handler := NewMovieHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestMovieHandler_ListMovies(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedPage   int
		expectedSize   int
	}{
		{name: "defaults to the first page", query: "", expectedStatus: http.StatusOK, expectedPage: 1, expectedSize: 10},
		{name: "page zero reads the first page", query: "?page=0", expectedStatus: http.StatusOK, expectedPage: 1, expectedSize: 10},
		{name: "negative page", query: "?page=-1", expectedStatus: http.StatusBadRequest},
		{name: "explicit page", query: "?page=2&size=25", expectedStatus: http.StatusOK, expectedPage: 2, expectedSize: 25},
		{name: "size above limit", query: "?size=500", expectedStatus: http.StatusBadRequest},
		{name: "non numeric page", query: "?page=abc", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPage, gotSize int
			mockService := &mocks.MockCatalogService{
				ListPageFunc: func(ctx context.Context, page, size int) ([]models.Movie, error) {
					gotPage, gotSize = page, size
					return []models.Movie{fixtures.NewMovie().WithTitle("Heat").Build()}, nil
				},
			}
			handler := NewMovieHandler(mockService)

			router := newTestRouter(nil)
			router.GET("/movies", handler.ListMovies)

			w := testutil.MakeRequest(t, router, http.MethodGet, "/movies"+tt.query, nil)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedPage, gotPage)
				assert.Equal(t, tt.expectedSize, gotSize)

				var movies []models.Movie
				decodeData(t, w, &movies)
				require.Len(t, movies, 1)
				assert.Equal(t, "Heat", movies[0].Title)
			}
		})
	}
}

func TestMovieHandler_GetMovie(t *testing.T) {
	movie := fixtures.NewMovie().Build()

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockCatalogService)
		expectedStatus int
	}{
		{
			name: "found",
			mockSetup: func(m *mocks.MockCatalogService) {
				m.GetByIDFunc = func(ctx context.Context, id string) (*models.Movie, error) {
					return &movie, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			mockSetup: func(m *mocks.MockCatalogService) {
				m.GetByIDFunc = func(ctx context.Context, id string) (*models.Movie, error) {
					return nil, apperrors.NewRemoteError(http.StatusNotFound, "movie not found")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "unexpected error",
			mockSetup: func(m *mocks.MockCatalogService) {
				m.GetByIDFunc = func(ctx context.Context, id string) (*models.Movie, error) {
					return nil, errors.New("boom")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockCatalogService{}
			tt.mockSetup(mockService)
			handler := NewMovieHandler(mockService)

			router := newTestRouter(nil)
			router.GET("/movies/:id", handler.GetMovie)

			w := testutil.MakeRequest(t, router, http.MethodGet, "/movies/"+movie.ID, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestMovieHandler_SearchMovies(t *testing.T) {
	var gotKeyword string
	var gotPage int
	mockService := &mocks.MockCatalogService{
		SearchFunc: func(ctx context.Context, keyword string, page, size int) ([]models.Movie, error) {
			gotKeyword, gotPage = keyword, page
			return []models.Movie{}, nil
		},
	}
	handler := NewMovieHandler(mockService)

	router := newTestRouter(nil)
	router.GET("/movies/search/:keyword", handler.SearchMovies)

	w := testutil.MakeRequest(t, router, http.MethodGet, "/movies/search/heat", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "heat", gotKeyword)
	assert.Equal(t, 1, gotPage, "search pages start at one")

	var movies []models.Movie
	decodeData(t, w, &movies)
	assert.Empty(t, movies)
}

func TestMovieHandler_CreateMovie(t *testing.T) {
	admin := testutil.NewSession(t, "root", auth.RoleAdmin)

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockCatalogService)
		expectedStatus int
	}{
		{
			name: "created",
			body: models.MovieRequest{Title: "Heat", Genre: []models.Genre{models.GenreCrime}, RentalPrice: 3},
			mockSetup: func(m *mocks.MockCatalogService) {
				m.CreateFunc = func(ctx context.Context, sess *auth.Session, req *models.MovieRequest) (*models.Movie, error) {
					assert.Same(t, admin, sess)
					return &models.Movie{ID: "m1", Title: req.Title}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unknown genre",
			body:           map[string]interface{}{"title": "Heat", "genre": []string{"POLKA"}},
			mockSetup:      func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative price",
			body:           map[string]interface{}{"title": "Heat", "rentalPrice": -1},
			mockSetup:      func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not an admin",
			body: models.MovieRequest{Title: "Heat"},
			mockSetup: func(m *mocks.MockCatalogService) {
				m.CreateFunc = func(ctx context.Context, sess *auth.Session, req *models.MovieRequest) (*models.Movie, error) {
					return nil, apperrors.ErrForbidden
				}
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockCatalogService{}
			tt.mockSetup(mockService)
			handler := NewMovieHandler(mockService)

			router := newTestRouter(admin)
			router.POST("/movies", handler.CreateMovie)

			w := testutil.MakeRequest(t, router, http.MethodPost, "/movies", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestMovieHandler_DeleteMovie(t *testing.T) {
	var deleted string
	mockService := &mocks.MockCatalogService{
		DeleteFunc: func(ctx context.Context, sess *auth.Session, id string) error {
			deleted = id
			return nil
		},
	}
	handler := NewMovieHandler(mockService)

	router := newTestRouter(testutil.NewSession(t, "root", auth.RoleAdmin))
	router.DELETE("/movies/:id", handler.DeleteMovie)

	w := testutil.MakeRequest(t, router, http.MethodDelete, "/movies/m1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "m1", deleted)
}

func TestMovieHandler_Pricing(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockSetup      func(*mocks.MockCatalogService)
		expectedStatus int
	}{
		{
			name: "discount",
			path: "/movies/m1/discount/25",
			mockSetup: func(m *mocks.MockCatalogService) {
				m.ApplyDiscountFunc = func(ctx context.Context, sess *auth.Session, id string, percent float64) (*models.Movie, error) {
					assert.Equal(t, 25.0, percent)
					return &models.Movie{ID: id, RentalPrice: 3}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "discount not a number",
			path:           "/movies/m1/discount/lots",
			mockSetup:      func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "discount out of range",
			path: "/movies/m1/discount/150",
			mockSetup: func(m *mocks.MockCatalogService) {
				m.ApplyDiscountFunc = func(ctx context.Context, sess *auth.Session, id string, percent float64) (*models.Movie, error) {
					return nil, apperrors.ErrInvalidArgument
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "revert",
			path: "/movies/m1/revert/4.5",
			mockSetup: func(m *mocks.MockCatalogService) {
				m.RevertPriceFunc = func(ctx context.Context, sess *auth.Session, id string, oldPrice float64) (*models.Movie, error) {
					assert.Equal(t, 4.5, oldPrice)
					return &models.Movie{ID: id, RentalPrice: oldPrice}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockCatalogService{}
			tt.mockSetup(mockService)
			handler := NewMovieHandler(mockService)

			router := newTestRouter(testutil.NewSession(t, "root", auth.RoleAdmin))
			router.PUT("/movies/:id/discount/:percent", handler.ApplyDiscount)
			router.PUT("/movies/:id/revert/:price", handler.RevertPrice)

			w := testutil.MakeRequest(t, router, http.MethodPut, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func artworkRequest(t *testing.T, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/movies/artwork", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestMovieHandler_UploadArtwork(t *testing.T) {
	t.Run("uploads file", func(t *testing.T) {
		var gotName, gotType string
		var gotBody []byte
		mockService := &mocks.MockCatalogService{
			UploadArtworkFunc: func(ctx context.Context, sess *auth.Session, filename, contentType string, body io.Reader) (string, error) {
				gotName, gotType = filename, contentType
				gotBody, _ = io.ReadAll(body)
				return "https://cdn.example.com/artwork/x-heat.png", nil
			},
		}
		handler := NewMovieHandler(mockService)
		router := newTestRouter(testutil.NewSession(t, "root", auth.RoleAdmin))
		router.POST("/movies/artwork", handler.UploadArtwork)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, artworkRequest(t, "heat.png", "image/png", []byte("png-bytes")))

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "heat.png", gotName)
		assert.Equal(t, "image/png", gotType)
		assert.Equal(t, []byte("png-bytes"), gotBody)

		var resp map[string]string
		decodeData(t, w, &resp)
		assert.Equal(t, "https://cdn.example.com/artwork/x-heat.png", resp["url"])
	})

	t.Run("missing file", func(t *testing.T) {
		handler := NewMovieHandler(&mocks.MockCatalogService{})
		router := newTestRouter(testutil.NewSession(t, "root", auth.RoleAdmin))
		router.POST("/movies/artwork", handler.UploadArtwork)

		w := testutil.MakeRequest(t, router, http.MethodPost, "/movies/artwork", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage not configured", func(t *testing.T) {
		mockService := &mocks.MockCatalogService{
			UploadArtworkFunc: func(ctx context.Context, sess *auth.Session, filename, contentType string, body io.Reader) (string, error) {
				return "", apperrors.ErrStorageUnavailable
			},
		}
		handler := NewMovieHandler(mockService)
		router := newTestRouter(testutil.NewSession(t, "root", auth.RoleAdmin))
		router.POST("/movies/artwork", handler.UploadArtwork)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, artworkRequest(t, "heat.png", "image/png", []byte("png-bytes")))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
