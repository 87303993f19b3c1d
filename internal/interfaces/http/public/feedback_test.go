package public

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedbackRouter(t *testing.T, gatewayURL string) chi.Router {
	t.Helper()
	handler := NewHandler(Config{
		Logger:              log.New(io.Discard, "", 0),
		HTTPClient:          &http.Client{Timeout: 2 * time.Second},
		FeedbackEndpoint:    gatewayURL,
		FeedbackDestination: "discord",
	})

	router := chi.NewRouter()
	router.Post("/feedback", handler.feedbackHandler())
	return router
}

func postFeedback(t *testing.T, router chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestFeedback_Accepted(t *testing.T) {
	received := make(chan map[string]any, 1)
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		received <- payload
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	router := newFeedbackRouter(t, gateway.URL)
	recorder := postFeedback(t, router, `{
		"name": "王小明",
		"email": "ming@example.com",
		"category": "bug",
		"message": "地圖在手機上無法顯示"
	}`)
	require.Equal(t, http.StatusAccepted, recorder.Code)

	var response feedbackAcceptedResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.NotEmpty(t, response.ID)
	assert.Equal(t, "accepted", response.Status)

	select {
	case payload := <-received:
		text, _ := payload["text"].(string)
		assert.Contains(t, text, "問題反饋")
		assert.Contains(t, text, "地圖在手機上無法顯示")
		assert.Contains(t, text, "王小明")
		assert.Equal(t, "discord", payload["destination"])
		assert.Equal(t, response.ID, payload["userId"])
	case <-time.After(3 * time.Second):
		t.Fatal("gateway never received the forwarded feedback")
	}
}

func TestFeedback_GatewayFailureStaysAccepted(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer gateway.Close()

	router := newFeedbackRouter(t, gateway.URL)
	recorder := postFeedback(t, router, `{"category": "other", "message": "測試"}`)

	// Forwarding is fire-and-forget; a broken gateway never reaches the submitter.
	assert.Equal(t, http.StatusAccepted, recorder.Code)
}

func TestFeedback_NoGatewayConfigured(t *testing.T) {
	router := newFeedbackRouter(t, "")
	recorder := postFeedback(t, router, `{"category": "general", "message": "測試"}`)
	assert.Equal(t, http.StatusAccepted, recorder.Code)
}

func TestFeedback_MalformedBody(t *testing.T) {
	router := newFeedbackRouter(t, "")
	recorder := postFeedback(t, router, `{not json`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "請求內容的格式不正確")
}

func TestFeedback_Validation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing category",
			body:      `{"message": "內容"}`,
			wantField: "category",
		},
		{
			name:      "unknown category",
			body:      `{"category": "spam", "message": "內容"}`,
			wantField: "category",
		},
		{
			name:      "missing message",
			body:      `{"category": "feature"}`,
			wantField: "message",
		},
		{
			name:      "whitespace only message",
			body:      `{"category": "feature", "message": "   "}`,
			wantField: "message",
		},
		{
			name:      "message too long",
			body:      `{"category": "feature", "message": "` + strings.Repeat("長", 4001) + `"}`,
			wantField: "message",
		},
		{
			name:      "invalid email",
			body:      `{"category": "feature", "message": "內容", "email": "not-an-email"}`,
			wantField: "email",
		},
		{
			name:      "invalid phone",
			body:      `{"category": "feature", "message": "內容", "phone": "abc"}`,
			wantField: "phone",
		},
	}

	router := newFeedbackRouter(t, "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postFeedback(t, router, tt.body)
			require.Equal(t, http.StatusBadRequest, recorder.Code)

			var response struct {
				Error  string            `json:"error"`
				Fields map[string]string `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
			assert.Contains(t, response.Fields, tt.wantField)
		})
	}
}

func TestFeedback_OptionalFieldsMayBeEmpty(t *testing.T) {
	router := newFeedbackRouter(t, "")
	recorder := postFeedback(t, router, `{"category": "recommend", "message": "推薦一家店", "name": "", "email": "", "phone": ""}`)
	assert.Equal(t, http.StatusAccepted, recorder.Code)
}

func TestBuildFeedbackMessage(t *testing.T) {
	message := buildFeedbackMessage("sub-1", feedbackRequest{
		Name:     "Alice",
		Category: "feature",
		Message:  "想要離線模式",
	})

	assert.Contains(t, message, "新的網站反饋")
	assert.Contains(t, message, "功能建議")
	assert.Contains(t, message, "Alice")
	assert.Contains(t, message, "想要離線模式")
	assert.Contains(t, message, "sub-1")
	assert.NotContains(t, message, "電話", "empty sections are omitted")
}
