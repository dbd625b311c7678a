package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestExpenseEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("create and list", func(t *testing.T) {
		t.Parallel()
		router := testRouter(t, nil)
		token := loginDemo(t, router)

		rec := doJSON(t, router, http.MethodPost, "/api/transactions/expenses", token, gin.H{
			"description": "Graphing Calculator",
			"amount":      "1500",
			"category":    "Supplies",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		created := dataMap(t, decodeResponse(t, rec))
		require.NotEmpty(t, created["id"])
		require.Equal(t, "Graphing Calculator", created["description"])

		rec = doJSON(t, router, http.MethodGet, "/api/transactions/expenses", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		list, ok := decodeResponse(t, rec).Data.([]any)
		require.True(t, ok)
		// Three starter expenses plus the new one, newest last.
		require.Len(t, list, 4)
		last, ok := list[3].(map[string]any)
		require.True(t, ok)
		require.Equal(t, created["id"], last["id"])
	})

	t.Run("invalid category returns 400", func(t *testing.T) {
		t.Parallel()
		router := testRouter(t, nil)
		token := loginDemo(t, router)

		rec := doJSON(t, router, http.MethodPost, "/api/transactions/expenses", token, gin.H{
			"description": "Snacks",
			"amount":      "10",
			"category":    "Snacks",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("requires a token", func(t *testing.T) {
		t.Parallel()
		router := testRouter(t, nil)

		rec := doJSON(t, router, http.MethodGet, "/api/transactions/expenses", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestReminderEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("create starts pending", func(t *testing.T) {
		t.Parallel()
		router := testRouter(t, nil)
		token := loginDemo(t, router)

		rec := doJSON(t, router, http.MethodPost, "/api/transactions/reminders", token, gin.H{
			"title":   "Exam Fee",
			"dueDate": "2026-06-01T00:00:00Z",
			"amount":  "500",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		created := dataMap(t, decodeResponse(t, rec))
		require.Equal(t, "Pending", created["status"])
	})

	t.Run("mark paid reports updated", func(t *testing.T) {
		t.Parallel()
		router := testRouter(t, nil)
		token := loginDemo(t, router)

		rec := doJSON(t, router, http.MethodPost, "/api/transactions/reminders", token, gin.H{
			"title":   "Exam Fee",
			"dueDate": "2026-06-01T00:00:00Z",
			"amount":  "500",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		id, ok := dataMap(t, decodeResponse(t, rec))["id"].(string)
		require.True(t, ok)

		rec = doJSON(t, router, http.MethodPut, "/api/transactions/reminders/"+id+"/paid", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, true, dataMap(t, decodeResponse(t, rec))["updated"])
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		t.Parallel()
		router := testRouter(t, nil)
		token := loginDemo(t, router)

		rec := doJSON(t, router, http.MethodPut, "/api/transactions/reminders/no-such-id/paid", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, false, dataMap(t, decodeResponse(t, rec))["updated"])

		// The starter reminders are untouched.
		rec = doJSON(t, router, http.MethodGet, "/api/transactions/reminders", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		list, ok := decodeResponse(t, rec).Data.([]any)
		require.True(t, ok)
		require.Len(t, list, 2)
		for _, item := range list {
			rem, ok := item.(map[string]any)
			require.True(t, ok)
			require.Equal(t, "Pending", rem["status"])
		}
	})
}

func TestPaymentEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("payment synthesizes a tuition expense", func(t *testing.T) {
		t.Parallel()
		router := testRouter(t, nil)
		token := loginDemo(t, router)

		rec := doJSON(t, router, http.MethodPost, "/api/transactions/payments", token, gin.H{
			"amount":      "15000",
			"description": "Spring Tuition Fee",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = doJSON(t, router, http.MethodGet, "/api/transactions/payments", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		payments, ok := decodeResponse(t, rec).Data.([]any)
		require.True(t, ok)
		require.Len(t, payments, 1)

		rec = doJSON(t, router, http.MethodGet, "/api/transactions/expenses", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		expenses, ok := decodeResponse(t, rec).Data.([]any)
		require.True(t, ok)
		require.Len(t, expenses, 4)

		last, ok := expenses[3].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "Payment: Spring Tuition Fee", last["description"])
		require.Equal(t, "Tuition", last["category"])
	})

	t.Run("missing description returns 400", func(t *testing.T) {
		t.Parallel()
		router := testRouter(t, nil)
		token := loginDemo(t, router)

		rec := doJSON(t, router, http.MethodPost, "/api/transactions/payments", token, gin.H{
			"amount": "15000",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
