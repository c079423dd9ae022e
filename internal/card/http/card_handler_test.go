package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cardDomain "github.com/allisson/cardledger/internal/card/domain"
	"github.com/allisson/cardledger/internal/card/http/dto"
	cardMocks "github.com/allisson/cardledger/internal/card/usecase/mocks"
	apperrors "github.com/allisson/cardledger/internal/errors"
	"github.com/allisson/cardledger/internal/httputil"
	userDomain "github.com/allisson/cardledger/internal/user/domain"
	userHttp "github.com/allisson/cardledger/internal/user/http"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testPrincipal = &userDomain.Principal{
	UserID: uuid.MustParse("0190a6d4-0000-7000-8000-000000000001"),
	Email:  "owner@example.com",
	Role:   userDomain.RoleUser,
}

func setupCardRouter(t *testing.T, principal *userDomain.Principal) (*gin.Engine, *cardMocks.MockCardUseCase) {
	t.Helper()
	uc := cardMocks.NewMockCardUseCase(t)
	handler := NewCardHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if principal != nil {
			c.Request = c.Request.WithContext(userHttp.WithPrincipal(c.Request.Context(), principal))
		}
		c.Next()
	})
	router.GET("/v1/cards", handler.ListOwnHandler)
	router.GET("/v1/cards/:id/balance", handler.BalanceHandler)
	router.POST("/v1/cards/transfer", handler.TransferHandler)
	router.POST("/v1/cards/:id/block", handler.BlockOwnHandler)
	router.POST("/v1/admin/cards", handler.CreateHandler)
	router.GET("/v1/admin/cards", handler.ListAllHandler)
	router.POST("/v1/admin/cards/:id/block", handler.BlockHandler)
	router.POST("/v1/admin/cards/:id/activate", handler.ActivateHandler)
	router.DELETE("/v1/admin/cards/:id", handler.DeleteHandler)
	return router, uc
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestCardHandler_ListOwn(t *testing.T) {
	view := &cardDomain.UserCardView{
		ID:           uuid.Must(uuid.NewV7()),
		MaskedNumber: "**** **** **** 4242",
		ExpiryDate:   "10/30",
		Status:       cardDomain.StatusActive,
		Balance:      decimal.RequireFromString("12.5"),
	}

	t.Run("Success_NoFilter", func(t *testing.T) {
		router, uc := setupCardRouter(t, testPrincipal)
		uc.On("ListOwnedCards", mock.Anything, "owner@example.com", (*cardDomain.Status)(nil), 0, 10).
			Return([]*cardDomain.UserCardView{view}, nil).Once()

		w := serve(router, http.MethodGet, "/v1/cards", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.ListUserCardsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "12.50", resp.Data[0].Balance)
		assert.Equal(t, "**** **** **** 4242", resp.Data[0].MaskedNumber)
	})

	t.Run("Success_StatusFilter", func(t *testing.T) {
		router, uc := setupCardRouter(t, testPrincipal)
		blocked := cardDomain.StatusBlocked
		uc.On("ListOwnedCards", mock.Anything, "owner@example.com", &blocked, 2, 5).
			Return([]*cardDomain.UserCardView{}, nil).Once()

		w := serve(router, http.MethodGet, "/v1/cards?status=blocked&page=2&size=5", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[]}`, w.Body.String())
	})

	t.Run("Error_UnknownStatus", func(t *testing.T) {
		router, _ := setupCardRouter(t, testPrincipal)
		w := serve(router, http.MethodGet, "/v1/cards?status=frozen", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_NonIntegerSize", func(t *testing.T) {
		router, _ := setupCardRouter(t, testPrincipal)
		w := serve(router, http.MethodGet, "/v1/cards?size=ten", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_NoPrincipal", func(t *testing.T) {
		router, _ := setupCardRouter(t, nil)
		w := serve(router, http.MethodGet, "/v1/cards", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCardHandler_Balance(t *testing.T) {
	cardID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		router, uc := setupCardRouter(t, testPrincipal)
		uc.On("GetBalance", mock.Anything, cardID, testPrincipal.UserID).
			Return(decimal.RequireFromString("100"), nil).Once()

		w := serve(router, http.MethodGet, "/v1/cards/"+cardID.String()+"/balance", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"card_id":"`+cardID.String()+`","balance":"100.00"}`, w.Body.String())
	})

	t.Run("Error_NotOwned", func(t *testing.T) {
		router, uc := setupCardRouter(t, testPrincipal)
		uc.On("GetBalance", mock.Anything, cardID, testPrincipal.UserID).
			Return(decimal.Zero, cardDomain.ErrCardNotOwned).Once()

		w := serve(router, http.MethodGet, "/v1/cards/"+cardID.String()+"/balance", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		router, _ := setupCardRouter(t, testPrincipal)
		w := serve(router, http.MethodGet, "/v1/cards/123/balance", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "validation_error", errorCode(t, w))
	})
}

func TestCardHandler_Transfer(t *testing.T) {
	from := uuid.Must(uuid.NewV7())
	to := uuid.Must(uuid.NewV7())
	matchInput := func(amount string) interface{} {
		return mock.MatchedBy(func(in *cardDomain.TransferInput) bool {
			return in.CallerID == testPrincipal.UserID &&
				in.FromCardID == from &&
				in.ToCardID == to &&
				in.Amount.Equal(decimal.RequireFromString(amount))
		})
	}
	body := func(amount string) string {
		return `{"from_card_id":"` + from.String() + `","to_card_id":"` + to.String() + `","amount":` + amount + `}`
	}

	t.Run("Success_StringAmount", func(t *testing.T) {
		router, uc := setupCardRouter(t, testPrincipal)
		uc.On("Transfer", mock.Anything, matchInput("10.25")).Return(nil).Once()

		w := serve(router, http.MethodPost, "/v1/cards/transfer", body(`"10.25"`))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Success_NumberAmount", func(t *testing.T) {
		router, uc := setupCardRouter(t, testPrincipal)
		uc.On("Transfer", mock.Anything, matchInput("3")).Return(nil).Once()

		w := serve(router, http.MethodPost, "/v1/cards/transfer", body(`3`))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	for name, amount := range map[string]string{
		"Zero":         `"0"`,
		"Negative":     `"-5"`,
		"TooPrecise":   `"1.005"`,
		"MissingValue": `null`,
	} {
		t.Run("Error_Amount"+name, func(t *testing.T) {
			router, _ := setupCardRouter(t, testPrincipal)
			w := serve(router, http.MethodPost, "/v1/cards/transfer", body(amount))
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}

	t.Run("Error_InvalidCardID", func(t *testing.T) {
		router, _ := setupCardRouter(t, testPrincipal)
		w := serve(router, http.MethodPost, "/v1/cards/transfer",
			`{"from_card_id":"x","to_card_id":"`+to.String()+`","amount":"1"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_MalformedJSON", func(t *testing.T) {
		router, _ := setupCardRouter(t, testPrincipal)
		w := serve(router, http.MethodPost, "/v1/cards/transfer", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_InsufficientFunds", func(t *testing.T) {
		router, uc := setupCardRouter(t, testPrincipal)
		uc.On("Transfer", mock.Anything, matchInput("500")).Return(cardDomain.ErrInsufficientFunds).Once()

		w := serve(router, http.MethodPost, "/v1/cards/transfer", body(`"500"`))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "insufficient_funds", errorCode(t, w))
	})

	t.Run("Error_CardNotActive", func(t *testing.T) {
		router, uc := setupCardRouter(t, testPrincipal)
		uc.On("Transfer", mock.Anything, matchInput("1")).Return(cardDomain.ErrCardNotActive).Once()

		w := serve(router, http.MethodPost, "/v1/cards/transfer", body(`"1"`))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "invalid_state", errorCode(t, w))
	})

	t.Run("Error_Incomplete", func(t *testing.T) {
		router, uc := setupCardRouter(t, testPrincipal)
		uc.On("Transfer", mock.Anything, matchInput("1")).Return(cardDomain.ErrTransferIncomplete).Once()

		w := serve(router, http.MethodPost, "/v1/cards/transfer", body(`"1"`))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "transfer_incomplete", errorCode(t, w))
	})
}

func TestCardHandler_BlockOwn(t *testing.T) {
	cardID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		router, uc := setupCardRouter(t, testPrincipal)
		uc.On("BlockByUser", mock.Anything, cardID, testPrincipal.UserID).Return(nil).Once()

		w := serve(router, http.MethodPost, "/v1/cards/"+cardID.String()+"/block", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		router, uc := setupCardRouter(t, testPrincipal)
		uc.On("BlockByUser", mock.Anything, cardID, testPrincipal.UserID).Return(cardDomain.ErrCardNotFound).Once()

		w := serve(router, http.MethodPost, "/v1/cards/"+cardID.String()+"/block", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCardHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, uc := setupCardRouter(t, nil)
		created := &cardDomain.CreatedCard{
			ID:           uuid.Must(uuid.NewV7()),
			MaskedNumber: "**** **** **** 1234",
			OwnerID:      testPrincipal.UserID,
			ExpiryDate:   "10/30",
			Status:       cardDomain.StatusActive,
			Balance:      decimal.Zero,
			CreatedAt:    time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
		}
		uc.On("CreateCard", mock.Anything, "owner@example.com").Return(created, nil).Once()

		w := serve(router, http.MethodPost, "/v1/admin/cards", `{"owner_email":"owner@example.com"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.CreateCardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "0.00", resp.Balance)
		assert.Equal(t, "ACTIVE", resp.Status)
		assert.Equal(t, testPrincipal.UserID.String(), resp.OwnerID)
	})

	t.Run("Error_InvalidEmail", func(t *testing.T) {
		router, _ := setupCardRouter(t, nil)
		w := serve(router, http.MethodPost, "/v1/admin/cards", `{"owner_email":"nope"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_OwnerNotFound", func(t *testing.T) {
		router, uc := setupCardRouter(t, nil)
		uc.On("CreateCard", mock.Anything, "ghost@example.com").
			Return(nil, apperrors.Wrap(apperrors.ErrNotFound, "user not found")).Once()

		w := serve(router, http.MethodPost, "/v1/admin/cards", `{"owner_email":"ghost@example.com"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCardHandler_ListAll(t *testing.T) {
	router, uc := setupCardRouter(t, nil)
	views := []*cardDomain.AdminCardView{{
		ID:           uuid.Must(uuid.NewV7()),
		MaskedNumber: "**** **** **** 0001",
		ExpiryDate:   "10/30",
		Status:       cardDomain.StatusBlocked,
		OwnerID:      testPrincipal.UserID,
	}}
	uc.On("ListAllCards", mock.Anything, 0, 10).Return(views, nil).Once()

	w := serve(router, http.MethodGet, "/v1/admin/cards", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListAdminCardsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "BLOCKED", resp.Data[0].Status)
	assert.NotContains(t, w.Body.String(), "balance")
}

func TestCardHandler_AdminActions(t *testing.T) {
	cardID := uuid.Must(uuid.NewV7())
	cases := []struct {
		name   string
		method string
		path   string
		mockFn string
	}{
		{"Block", http.MethodPost, "/v1/admin/cards/%s/block", "BlockByAdmin"},
		{"Activate", http.MethodPost, "/v1/admin/cards/%s/activate", "Activate"},
		{"Delete", http.MethodDelete, "/v1/admin/cards/%s", "DeleteCard"},
	}

	for _, tc := range cases {
		t.Run(tc.name+"_Success", func(t *testing.T) {
			router, uc := setupCardRouter(t, nil)
			uc.On(tc.mockFn, mock.Anything, cardID).Return(nil).Once()

			w := serve(router, tc.method, strings.Replace(tc.path, "%s", cardID.String(), 1), "")
			assert.Equal(t, http.StatusNoContent, w.Code)
		})

		t.Run(tc.name+"_InvalidID", func(t *testing.T) {
			router, _ := setupCardRouter(t, nil)
			w := serve(router, tc.method, strings.Replace(tc.path, "%s", "bad-id", 1), "")
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}

	t.Run("Activate_AlreadyActive", func(t *testing.T) {
		router, uc := setupCardRouter(t, nil)
		uc.On("Activate", mock.Anything, cardID).Return(cardDomain.ErrCardAlreadyActive).Once()

		w := serve(router, http.MethodPost, "/v1/admin/cards/"+cardID.String()+"/activate", "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
