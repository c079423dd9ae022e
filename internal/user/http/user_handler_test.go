package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardledger/internal/user/http/dto"
	userDomain "github.com/allisson/cardledger/internal/user/domain"
	userMocks "github.com/allisson/cardledger/internal/user/usecase/mocks"
)

func setupUserRouter(t *testing.T) (*gin.Engine, *userMocks.MockUserUseCase) {
	t.Helper()
	uc := userMocks.NewMockUserUseCase(t)
	handler := NewUserHandler(uc, discardLogger())

	router := gin.New()
	router.POST("/v1/users/register", handler.RegisterHandler)
	router.POST("/v1/users/login", handler.LoginHandler)
	router.GET("/v1/admin/users", handler.ListHandler)
	router.DELETE("/v1/admin/users/:id", handler.DeleteHandler)
	return router, uc
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, uc := setupUserRouter(t)
		user := &userDomain.User{
			ID:           uuid.Must(uuid.NewV7()),
			Email:        "alice@example.com",
			PasswordHash: "hash",
			Role:         userDomain.RoleUser,
			CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		}
		uc.On("Register", mock.Anything, "alice@example.com", "password123").Return(user, nil).Once()

		w := doJSON(router, http.MethodPost, "/v1/users/register",
			`{"email":"alice@example.com","password":"password123"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, "USER", resp.Role)
		assert.NotContains(t, w.Body.String(), "hash")
	})

	t.Run("Error_MalformedJSON", func(t *testing.T) {
		router, _ := setupUserRouter(t)
		w := doJSON(router, http.MethodPost, "/v1/users/register", `{"email":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_MissingFields", func(t *testing.T) {
		router, _ := setupUserRouter(t)
		w := doJSON(router, http.MethodPost, "/v1/users/register", `{"email":"  "}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_EmailTaken", func(t *testing.T) {
		router, uc := setupUserRouter(t)
		uc.On("Register", mock.Anything, "alice@example.com", "password123").
			Return(nil, userDomain.ErrUserAlreadyExists).Once()

		w := doJSON(router, http.MethodPost, "/v1/users/register",
			`{"email":"alice@example.com","password":"password123"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, uc := setupUserRouter(t)
		expiresAt := time.Date(2026, 1, 2, 4, 0, 0, 0, time.UTC)
		uc.On("Login", mock.Anything, "alice@example.com", "password123").
			Return(&userDomain.AccessToken{Token: "jwt", ExpiresAt: expiresAt}, nil).Once()

		w := doJSON(router, http.MethodPost, "/v1/users/login",
			`{"email":"alice@example.com","password":"password123"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "jwt", resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.True(t, expiresAt.Equal(resp.ExpiresAt))
	})

	t.Run("Error_InvalidCredentials", func(t *testing.T) {
		router, uc := setupUserRouter(t)
		uc.On("Login", mock.Anything, "alice@example.com", "wrongpass").
			Return(nil, userDomain.ErrInvalidCredentials).Once()

		w := doJSON(router, http.MethodPost, "/v1/users/login",
			`{"email":"alice@example.com","password":"wrongpass"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUserHandler_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, uc := setupUserRouter(t)
		users := []*userDomain.User{
			{ID: uuid.Must(uuid.NewV7()), Email: "a@example.com", Role: userDomain.RoleAdmin},
			{ID: uuid.Must(uuid.NewV7()), Email: "b@example.com", Role: userDomain.RoleUser},
		}
		uc.On("ListUsers", mock.Anything, 1, 5).Return(users, nil).Once()

		w := doJSON(router, http.MethodGet, "/v1/admin/users?page=1&size=5", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.ListUsersResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "a@example.com", resp.Data[0].Email)
	})

	t.Run("Empty", func(t *testing.T) {
		router, uc := setupUserRouter(t)
		uc.On("ListUsers", mock.Anything, 0, 10).Return([]*userDomain.User{}, nil).Once()

		w := doJSON(router, http.MethodGet, "/v1/admin/users", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[]}`, w.Body.String())
	})

	t.Run("Error_NonIntegerPage", func(t *testing.T) {
		router, _ := setupUserRouter(t)
		w := doJSON(router, http.MethodGet, "/v1/admin/users?page=x", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_InvalidPagination", func(t *testing.T) {
		router, uc := setupUserRouter(t)
		uc.On("ListUsers", mock.Anything, -1, 10).Return(nil, userDomain.ErrInvalidPagination).Once()

		w := doJSON(router, http.MethodGet, "/v1/admin/users?page=-1", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, uc := setupUserRouter(t)
		id := uuid.Must(uuid.NewV7())
		uc.On("DeleteUser", mock.Anything, id).Return(nil).Once()

		w := doJSON(router, http.MethodDelete, "/v1/admin/users/"+id.String(), "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		router, _ := setupUserRouter(t)
		w := doJSON(router, http.MethodDelete, "/v1/admin/users/not-a-uuid", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_OwnsCards", func(t *testing.T) {
		router, uc := setupUserRouter(t)
		id := uuid.Must(uuid.NewV7())
		uc.On("DeleteUser", mock.Anything, id).Return(userDomain.ErrUserHasCards).Once()

		w := doJSON(router, http.MethodDelete, "/v1/admin/users/"+id.String(), "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Error_Internal", func(t *testing.T) {
		router, uc := setupUserRouter(t)
		id := uuid.Must(uuid.NewV7())
		uc.On("DeleteUser", mock.Anything, id).Return(errors.New("boom")).Once()

		w := doJSON(router, http.MethodDelete, "/v1/admin/users/"+id.String(), "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}

func TestMapUserToResponse(t *testing.T) {
	user := &userDomain.User{ID: uuid.Must(uuid.NewV7()), Email: "a@example.com", Role: userDomain.RoleAdmin}
	resp := dto.MapUserToResponse(user)
	assert.Equal(t, "ADMIN", resp.Role)
}
