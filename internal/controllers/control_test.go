package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sysmond/internal/config"
	"sysmond/internal/services"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.Monitor) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	monitor := services.NewMonitor(config.Default())
	api := NewAPI(monitor, nil, nil)

	r := gin.New()
	r.POST("/control", api.PostControl)
	r.GET("/history", api.GetHistory)
	return r, monitor
}

func postControl(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/control", strings.NewReader(body))
	r.ServeHTTP(w, req)
	return w
}

func TestControlEndpointSequence(t *testing.T) {
	r, monitor := newTestRouter(t)

	// Last valid command wins; unknown tokens are no-ops, never errors.
	for _, body := range []string{"enable\n", "disable\n", "xyz\n"} {
		if w := postControl(t, r, body); w.Code != http.StatusOK {
			t.Fatalf("POST /control %q: status %d", body, w.Code)
		}
	}

	if monitor.Enabled() {
		t.Fatal("monitoring enabled, want disabled after sequence")
	}
}

func TestControlEndpointReportsState(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postControl(t, r, "disable")
	var resp struct {
		Monitoring bool `json:"monitoring"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Monitoring {
		t.Error("response reports monitoring enabled after disable")
	}

	w = postControl(t, r, "enable")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Monitoring {
		t.Error("response reports monitoring disabled after enable")
	}
}

func TestControlEndpointIgnoresOversizedBody(t *testing.T) {
	r, monitor := newTestRouter(t)

	// Only the leading bytes matter; a huge body must not break parsing.
	body := "disable" + strings.Repeat("x", 1<<16)
	if w := postControl(t, r, body); w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if monitor.Enabled() {
		t.Fatal("prefix-matched disable not applied")
	}
}

func TestHistoryEndpointAges(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var resp struct {
		Size    int `json:"size"`
		Samples []struct {
			Age int `json:"age"`
		} `json:"samples"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Size != config.DefaultHistorySize {
		t.Errorf("size = %d, want %d", resp.Size, config.DefaultHistorySize)
	}
	for i, s := range resp.Samples {
		if s.Age != i {
			t.Errorf("sample %d: age = %d", i, s.Age)
		}
	}
}
