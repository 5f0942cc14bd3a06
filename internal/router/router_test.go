package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"splittab/internal/auth"
	"splittab/internal/friends"
	"splittab/internal/receipts"
)

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	authHandler := auth.NewHandler(auth.NewService(auth.NewInMemoryUserRepository()))

	friendService := friends.NewService(friends.NewInMemoryRepository())
	receiptService := receipts.NewService(receipts.NewInMemoryRepository(), friendService, nil)

	friendHandler := friends.NewHandler(friendService, receiptService)
	receiptHandler := receipts.NewHandler(receiptService)

	return New(authHandler, friendHandler, receiptHandler)
}

func TestHealth(t *testing.T) {
	router := testEngine()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	router := testEngine()

	for _, path := range []string{"/friends", "/receipts/some-id"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without a token: status = %d, want 401", path, w.Code)
		}
	}
}

// End to end: register, log in, add a friend, create a receipt, read
// back the final amounts through the real middleware.
func TestAuthenticatedFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := testEngine()

	do := func(method, path, token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	if w := do(http.MethodPost, "/auth/register", "",
		`{"name": "Alice", "email": "alice@example.com", "password": "s3cret"}`); w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body = %s", w.Code, w.Body.String())
	}

	w := do(http.MethodPost, "/auth/login", "",
		`{"email": "alice@example.com", "password": "s3cret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil || login.Token == "" {
		t.Fatalf("login body = %s", w.Body.String())
	}

	w = do(http.MethodPost, "/friends", login.Token, `{"name": "Bob"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add friend status = %d, body = %s", w.Code, w.Body.String())
	}
	var bob struct {
		Seq int64  `json:"seq"`
		ID  string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &bob); err != nil {
		t.Fatalf("friend body = %s", w.Body.String())
	}

	w = do(http.MethodPost, "/receipts", login.Token, `{
		"name": "Dinner",
		"expected_total": "12.00",
		"participants": ["`+bob.ID+`"],
		"items": [
			{"name": "Pizza", "price": "12.00", "quantity": "1",
			 "split_equally": true, "assigned_friends": ["`+bob.ID+`"]}
		]
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create receipt status = %d, body = %s", w.Code, w.Body.String())
	}
	var created struct {
		Receipt struct {
			ID string `json:"id"`
		} `json:"receipt"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil || created.Receipt.ID == "" {
		t.Fatalf("receipt body = %s", w.Body.String())
	}

	w = do(http.MethodGet, "/receipts/"+created.Receipt.ID+"/final-amounts", login.Token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("final amounts status = %d, body = %s", w.Code, w.Body.String())
	}
	var amounts []struct {
		ID          int64   `json:"id"`
		AmountToPay float64 `json:"amountToPay"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &amounts); err != nil {
		t.Fatalf("amounts body = %s", w.Body.String())
	}
	if len(amounts) != 1 || amounts[0].ID != bob.Seq || amounts[0].AmountToPay != 12.00 {
		t.Errorf("amounts = %+v, want bob (seq %d) owing 12.00", amounts, bob.Seq)
	}
}
