package public

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/diveshopfinder/api/internal/interfaces/http/common"
	"github.com/diveshopfinder/api/internal/metrics"
)

// feedbackCategories matches the options of the feedback form.
var feedbackCategories = map[string]string{
	"feature":   "功能建議",
	"bug":       "問題反饋",
	"recommend": "推薦潛水店",
	"general":   "其他建議",
	"join":      "加入開發",
	"other":     "其他",
}

func (h *Handler) feedbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req feedbackRequest
		body := http.MaxBytesReader(w, r.Body, common.MaxFeedbackRequestBody)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			metrics.FeedbackSubmissions.WithLabelValues("rejected").Inc()
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "請求內容的格式不正確"})
			return
		}

		if fieldErrors := validateFeedback(req); len(fieldErrors) > 0 {
			metrics.FeedbackSubmissions.WithLabelValues("rejected").Inc()
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]any{
				"error":  "輸入內容有誤",
				"fields": fieldErrors,
			})
			return
		}

		submissionID := uuid.NewString()
		metrics.FeedbackSubmissions.WithLabelValues("accepted").Inc()

		// ゲートウェイへの転送は fire-and-forget。クロスオリジンの不透明
		// レスポンスと同じ扱いで、転送失敗は成功と区別せずログのみ残す。
		go h.forwardFeedback(context.Background(), submissionID, req)

		common.WriteJSON(h.logger, w, http.StatusAccepted, feedbackAcceptedResponse{
			ID:     submissionID,
			Status: "accepted",
		})
	}
}

// validateFeedback performs the local field checks required before any
// submission leaves the service. Name/email/phone are optional; category and
// message are required.
func validateFeedback(req feedbackRequest) map[string]string {
	fieldErrors := make(map[string]string)

	category := strings.TrimSpace(req.Category)
	if category == "" {
		fieldErrors["category"] = "請選擇反饋類型"
	} else if _, ok := feedbackCategories[category]; !ok {
		fieldErrors["category"] = "無效的反饋類型"
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		fieldErrors["message"] = "請輸入反饋內容"
	} else if utf8.RuneCountInString(message) > common.MaxFeedbackMessageRunes {
		fieldErrors["message"] = "反饋內容過長"
	}

	if email := strings.TrimSpace(req.Email); email != "" && !emailPattern.MatchString(email) {
		fieldErrors["email"] = "電子郵箱格式不正確"
	}

	if phone := strings.TrimSpace(req.Phone); phone != "" && !phonePattern.MatchString(phone) {
		fieldErrors["phone"] = "電話號碼格式不正確"
	}

	return fieldErrors
}

// forwardFeedback sends the submission to the messenger gateway. Best effort:
// failures are logged and counted, never surfaced to the submitter.
func (h *Handler) forwardFeedback(ctx context.Context, submissionID string, req feedbackRequest) {
	if strings.TrimSpace(h.feedbackEndpoint) == "" {
		return
	}

	if err := h.sendGatewayMessage(ctx, submissionID, buildFeedbackMessage(submissionID, req)); err != nil {
		metrics.FeedbackSubmissions.WithLabelValues("forward_failed").Inc()
		if h.logger != nil {
			h.logger.Printf("フィードバック転送に失敗 id=%s: %v", submissionID, err)
		}
		return
	}
	metrics.FeedbackSubmissions.WithLabelValues("forwarded").Inc()
}

func buildFeedbackMessage(submissionID string, req feedbackRequest) string {
	var builder strings.Builder
	builder.WriteString("新的網站反饋\n")

	addSection := func(title, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		builder.WriteString(fmt.Sprintf("**%s**\n> %s\n", title, value))
	}

	if label, ok := feedbackCategories[strings.TrimSpace(req.Category)]; ok {
		addSection("類型", label)
	}
	addSection("姓名", req.Name)
	addSection("電子郵箱", req.Email)
	addSection("電話", req.Phone)
	addSection("內容", req.Message)
	addSection("ID", submissionID)

	return builder.String()
}

func (h *Handler) sendGatewayMessage(ctx context.Context, submissionID, text string) error {
	payload := map[string]any{
		"userId": submissionID,
		"text":   text,
	}
	if dest := strings.TrimSpace(h.feedbackDestination); dest != "" {
		payload["destination"] = dest
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ゲートウェイ送信用ペイロードの作成に失敗: %w", err)
	}

	timeout := h.httpClient.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := strings.TrimRight(h.feedbackEndpoint, "/") + "/messages"
	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("ゲートウェイ送信リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ゲートウェイ送信リクエストに失敗: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("ゲートウェイ送信でエラーが発生: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(message)))
	}

	return nil
}
