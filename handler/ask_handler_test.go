package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tieubaoca/policy-insights-be/database"
	"github.com/tieubaoca/policy-insights-be/repository"
	"github.com/tieubaoca/policy-insights-be/service"
	"github.com/tieubaoca/policy-insights-be/types"
)

type fakeAI struct {
	answer string
}

func (f *fakeAI) Answer(_ context.Context, _ string) (string, error) {
	return f.answer, nil
}

func setupRouter(t *testing.T, ai service.AIService) (*gin.Engine, database.QueryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := database.NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	queryRepo := repository.NewQueryRepo(store)
	pdfService := service.NewPDFService()
	policyService := service.NewPolicyService(t.TempDir(), pdfService)
	insightService := service.NewInsightService(ai, queryRepo)
	analyticsService := service.NewAnalyticsService(queryRepo)

	askHandler := NewAskHandler(insightService, policyService, pdfService)
	analyticsHandler := NewAnalyticsHandler(analyticsService)

	router := gin.New()
	router.POST("/ask", askHandler.HandleAsk)
	router.GET("/analytics", analyticsHandler.HandleReport)
	router.GET("/faqs", askHandler.HandleFAQs)
	return router, queryRepo
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleAsk_General(t *testing.T) {
	router, queryRepo := setupRouter(t, &fakeAI{answer: "Business casual."})

	w := postJSON(router, "/ask", types.AskRequest{Question: "What is the dress code?"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool              `json:"status"`
		Data   types.AskResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, types.ContextGeneral, resp.Data.Context)
	assert.Equal(t, "Business casual.", resp.Data.Answer)
	assert.True(t, resp.Data.OK)

	records, err := queryRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "What is the dress code?", records[0].Question)
}

func TestHandleAsk_BlankQuestion(t *testing.T) {
	router, queryRepo := setupRouter(t, &fakeAI{answer: "unused"})

	w := postJSON(router, "/ask", types.AskRequest{Question: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	records, err := queryRepo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHandleAsk_UnknownPolicy(t *testing.T) {
	router, _ := setupRouter(t, &fakeAI{answer: "unused"})

	w := postJSON(router, "/ask", types.AskRequest{Policy: "missing.pdf", Question: "q"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleAnalytics(t *testing.T) {
	router, queryRepo := setupRouter(t, &fakeAI{answer: "a"})

	for _, q := range []string{"q1", "q1", "q2"} {
		require.NoError(t, queryRepo.Append(context.Background(), &types.QueryRecord{
			Context:  "policy_a.pdf",
			Question: q,
			Answer:   "a",
			OK:       true,
		}))
	}

	req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool                  `json:"status"`
		Data   types.AnalyticsReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, 3, resp.Data.TotalQuestions)
	assert.Equal(t, 1, resp.Data.UniqueContexts)
	require.NotEmpty(t, resp.Data.TopQuestions)
	assert.Equal(t, "q1", resp.Data.TopQuestions[0].Question)
	assert.Equal(t, 2, resp.Data.TopQuestions[0].Count)
}

func TestHandleFAQs(t *testing.T) {
	router, _ := setupRouter(t, &fakeAI{answer: "Q: q1\nA: a1"})

	req := httptest.NewRequest(http.MethodGet, "/faqs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool              `json:"status"`
		Data   types.FAQResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, "Q: q1\nA: a1", resp.Data.FAQs)
}
