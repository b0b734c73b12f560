package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mealprep-ai/backend/config"
	"github.com/pageza/mealprep-ai/backend/internal/logger"
	"github.com/pageza/mealprep-ai/backend/internal/middleware"
	"github.com/pageza/mealprep-ai/backend/internal/service"
	"github.com/pageza/mealprep-ai/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires the real service against a fake chat-completions endpoint answering with content.
func newTestServer(t *testing.T, status int, content string) *Server {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			fmt.Fprint(w, content)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": content}}},
		})
	}))
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		ServerHost:    "127.0.0.1",
		ServerPort:    "0",
		Environment:   config.Test,
		OpenAIAPIKey:  "test-key",
		OpenAIAPIURL:  upstream.URL,
		OpenAITimeout: 5 * time.Second,
	}
	log := logger.Discard()
	meals := service.NewMealService(service.NewLLMClient(cfg), log)
	return New(cfg, meals, log)
}

func do(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

const fencedMeals = "```json\n" + `[
  {"title":"Lemon Salmon","description":"Bright and fresh.","ingredients":["1 salmon fillet","1 lemon"],
   "steps":["Season","Bake at 200C for 12 minutes"],"nutrition":{"calories":"420 kcal","protein":"34g","fat":"22g"},
   "prep_time":"20 minutes","difficulty":"easy"}
]` + "\n```"

func TestGenerateMealsEndToEnd(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, fencedMeals)

	w := do(srv, http.MethodPost, "/api/generate-meals", `{"ingredients":["salmon","lemon"],"count":1}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.MealResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Meals, 1)
	meal := resp.Meals[0]
	assert.Equal(t, "Lemon Salmon", meal.Title)
	assert.Equal(t, types.DifficultyEasy, meal.Difficulty)
	assert.Equal(t, "34g", meal.Nutrition.Protein)
	assert.Nil(t, meal.Nutrition.Carbs)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestGenerateMealsEndToEndFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		content  string
		contains string
	}{
		{"truncated json", http.StatusOK, `[{"title":"Lemon Salmon",`, "Failed to parse OpenAI response as JSON"},
		{"missing title", http.StatusOK, `[{"description":"d","ingredients":[],"steps":[],"nutrition":{"calories":"1","protein":"1"}}]`, "Error generating meals"},
		{"upstream down", http.StatusServiceUnavailable, `{"error":"overloaded"}`, "status 503"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.content)

			w := do(srv, http.MethodPost, "/api/generate-meals", `{"ingredients":["salmon"]}`)
			assert.Equal(t, http.StatusInternalServerError, w.Code)

			var resp middleware.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp.Detail, tt.contains)
			assert.NotContains(t, resp.Detail, "goroutine")
		})
	}
}

func TestHealthIgnoresUpstream(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError, "down")

	w := do(srv, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"MealPrep AI"}`, w.Body.String())
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, "[]")

	w := do(srv, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"MealPrep AI Backend","environment":"test","docs":"/docs"}`, w.Body.String())

	w = do(srv, http.MethodPost, "/api/generate-meals", `{"ingredients":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"At least one ingredient is required"}`, w.Body.String())
}

func TestStartAndShutdown(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, "[]")

	errChan := make(chan error, 1)
	go func() { errChan <- srv.Start() }()

	// Give ListenAndServe a moment to bind before shutting down.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	assert.NoError(t, <-errChan)
}
