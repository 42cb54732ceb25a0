package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"dayplanner/config"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(t *testing.T, perMinute int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Planner.ChatRatePerMin = perMinute
	mw := New(&mockLogger{}, cfg)
	t.Cleanup(mw.Close)

	r := gin.New()
	r.POST("/chat", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("requests within the burst pass", func(t *testing.T) {
		r := newTestRouter(t, 5)
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/chat", nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: code = %d", i, w.Code)
			}
		}
	})

	t.Run("burst exhaustion yields 429", func(t *testing.T) {
		r := newTestRouter(t, 2)
		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/chat", nil)
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}
		if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
			t.Errorf("codes = %v", codes)
		}
		if codes[2] != http.StatusTooManyRequests {
			t.Errorf("codes = %v", codes)
		}
	})

	t.Run("close stops the sweeper goroutine", func(t *testing.T) {
		before := runtime.NumGoroutine()
		cl := newClientLimiters(5)
		cl.close()

		deadline := time.Now().Add(time.Second)
		for runtime.NumGoroutine() > before && time.Now().Before(deadline) {
			time.Sleep(10 * time.Millisecond)
		}
		if got := runtime.NumGoroutine(); got > before {
			t.Errorf("goroutines = %d, want at most %d", got, before)
		}
	})
}
