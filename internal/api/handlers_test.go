package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shush-app/shush/internal/ai"
	"github.com/shush-app/shush/internal/services"
	"github.com/shush-app/shush/internal/storage"
	"github.com/shush-app/shush/internal/store"
)

func newTestApp(t *testing.T) (*fiber.App, *store.CycleLogStore) {
	t.Helper()

	logStore := store.NewCycleLogStore(storage.NewMemoryKV())
	content, err := ai.NewContentService(t.Context(), "")
	if err != nil {
		t.Fatalf("content service init failed: %v", err)
	}

	handler := NewHandler(logStore, content, "test-secret", false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, logStore
}

func jsonRequest(t *testing.T, method string, target string, payload any, cookie string) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}
	return request
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func registerAndExtractCookie(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{"username": username}, ""), -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	for _, rawCookie := range response.Header.Values("Set-Cookie") {
		if strings.HasPrefix(rawCookie, authCookieName+"=") {
			return strings.SplitN(rawCookie, ";", 2)[0]
		}
	}
	t.Fatalf("no %s cookie in register response", authCookieName)
	return ""
}

func TestRegisterLoginLogoutFlow(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	cookie := registerAndExtractCookie(t, app, "ava")

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/auth/me", nil, cookie), -1)
	if err != nil {
		t.Fatalf("me request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	me := decodeBody(t, response)
	if me["username"] != "ava" {
		t.Fatalf("expected username ava, got %v", me["username"])
	}

	response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/auth/logout", nil, cookie), -1)
	if err != nil {
		t.Fatalf("logout request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 on logout, got %d", response.StatusCode)
	}
	response.Body.Close()

	response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "ava"}, ""), -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 on login, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	registerAndExtractCookie(t, app, "ava")

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{"username": "ava"}, ""), -1)
	if err != nil {
		t.Fatalf("duplicate register request failed: %v", err)
	}
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", response.StatusCode)
	}
	body := decodeBody(t, response)
	if body["error"] != "Username already taken." {
		t.Fatalf("unexpected error message %v", body["error"])
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "ghost"}, ""), -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
	body := decodeBody(t, response)
	if body["error"] != "User not found. Please sign up first." {
		t.Fatalf("unexpected error message %v", body["error"])
	}
}

func TestTrackerRequiresAuth(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/tracker/status", nil, ""), -1)
	if err != nil {
		t.Fatalf("status request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}

func TestTrackerToggleAndStatus(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	cookie := registerAndExtractCookie(t, app, "ava")
	todayKey := services.DateKey(time.Now())

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/tracker/days/"+todayKey, nil, cookie), -1)
	if err != nil {
		t.Fatalf("toggle request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	toggled := decodeBody(t, response)
	status, ok := toggled["status"].(map[string]any)
	if !ok {
		t.Fatalf("expected status object, got %v", toggled["status"])
	}
	if status["phase"] != string(services.PhasePeriod) {
		t.Fatalf("expected period phase after logging today, got %v", status["phase"])
	}
	if status["day_count"] != float64(1) {
		t.Fatalf("expected day count 1, got %v", status["day_count"])
	}

	response, err = app.Test(jsonRequest(t, http.MethodGet, "/api/tracker/status", nil, cookie), -1)
	if err != nil {
		t.Fatalf("status request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	fresh := decodeBody(t, response)
	if fresh["phase"] != string(services.PhasePeriod) {
		t.Fatalf("expected period phase from status endpoint, got %v", fresh["phase"])
	}
}

func TestTrackerToggleRejectsBadDate(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	cookie := registerAndExtractCookie(t, app, "ava")

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/tracker/days/not-a-date", nil, cookie), -1)
	if err != nil {
		t.Fatalf("toggle request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestTrackerSettingsClamped(t *testing.T) {
	t.Parallel()

	app, logStore := newTestApp(t)
	cookie := registerAndExtractCookie(t, app, "ava")

	payload := map[string]int{"cycle_length": 100, "period_length": 0}
	response, err := app.Test(jsonRequest(t, http.MethodPut, "/api/tracker/settings", payload, cookie), -1)
	if err != nil {
		t.Fatalf("settings request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := decodeBody(t, response)
	if body["cycle_length"] != float64(60) || body["period_length"] != float64(1) {
		t.Fatalf("expected clamped 60/1, got %v/%v", body["cycle_length"], body["period_length"])
	}

	current, ok, err := logStore.CurrentUser()
	if err != nil || !ok {
		t.Fatalf("expected a session: ok=%v err=%v", ok, err)
	}
	if current.CycleLength != 60 || current.PeriodLength != 1 {
		t.Fatalf("expected stored 60/1, got %d/%d", current.CycleLength, current.PeriodLength)
	}
}

func TestTrackerCalendarOffset(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	cookie := registerAndExtractCookie(t, app, "ava")

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/tracker/calendar?offset=1", nil, cookie), -1)
	if err != nil {
		t.Fatalf("calendar request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	view := decodeBody(t, response)

	now := time.Now()
	nextMonth := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
	if view["label"] != nextMonth.Format("January 2006") {
		t.Fatalf("expected next month label %q, got %v", nextMonth.Format("January 2006"), view["label"])
	}

	cells, ok := view["cells"].([]any)
	if !ok || len(cells) == 0 {
		t.Fatalf("expected non-empty cells, got %v", view["cells"])
	}
}

func TestQuoteServesFallbackWithoutAPIKey(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/quote", nil, ""), -1)
	if err != nil {
		t.Fatalf("quote request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := decodeBody(t, response)
	if body["quote"] != "Believe in yourself and all that you are." {
		t.Fatalf("unexpected quote %v", body["quote"])
	}
}

func TestArticleEndpoints(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/articles", nil, ""), -1)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	listing := decodeBody(t, response)
	if _, ok := listing["main_categories"]; !ok {
		t.Fatalf("expected main_categories section, got %v", listing)
	}

	response, err = app.Test(jsonRequest(t, http.MethodGet, "/api/articles/what-is-pms", nil, ""), -1)
	if err != nil {
		t.Fatalf("article request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	article := decodeBody(t, response)
	if article["content"] != "API Key not configured. Unable to fetch AI content." {
		t.Fatalf("expected fallback article body, got %v", article["content"])
	}

	response, err = app.Test(jsonRequest(t, http.MethodGet, "/api/articles/unknown", nil, ""), -1)
	if err != nil {
		t.Fatalf("unknown article request failed: %v", err)
	}
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestArticleChat(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	payload := map[string]any{"question": "How long does PMS last?"}
	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/articles/what-is-pms/chat", payload, ""), -1)
	if err != nil {
		t.Fatalf("chat request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := decodeBody(t, response)
	if body["reply"] != "I can't chat right now. Please check your API key." {
		t.Fatalf("expected fallback chat reply, got %v", body["reply"])
	}

	response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/articles/what-is-pms/chat", map[string]any{"question": "  "}, ""), -1)
	if err != nil {
		t.Fatalf("empty question request failed: %v", err)
	}
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for empty question, got %d", response.StatusCode)
	}
	response.Body.Close()
}
