package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/model"
	"dayplanner/internal/planner"
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

// Mock use case driven by per-method functions
type mockUseCase struct {
	chatFn         func(ctx context.Context, input planner.ChatInput) (planner.ChatOutput, error)
	listTasksFn    func(ctx context.Context, dateID string) ([]model.Task, error)
	replaceTasksFn func(ctx context.Context, dateID string, tasks []model.Task) error
	transcriptFn   func(ctx context.Context, sessionID string) (planner.TranscriptOutput, error)
}

func (m *mockUseCase) Chat(ctx context.Context, input planner.ChatInput) (planner.ChatOutput, error) {
	return m.chatFn(ctx, input)
}

func (m *mockUseCase) ListTasks(ctx context.Context, dateID string) ([]model.Task, error) {
	return m.listTasksFn(ctx, dateID)
}

func (m *mockUseCase) ReplaceTasks(ctx context.Context, dateID string, tasks []model.Task) error {
	return m.replaceTasksFn(ctx, dateID, tasks)
}

func (m *mockUseCase) Transcript(ctx context.Context, sessionID string) (planner.TranscriptOutput, error) {
	return m.transcriptFn(ctx, sessionID)
}

func newTestRouter(uc planner.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&mockLogger{}, uc)

	r := gin.New()
	api := r.Group("/api/v1/planner")
	{
		api.POST("/chat", h.Chat)
		api.GET("/tasks/:date", h.ListTasks)
		api.PUT("/tasks/:date", h.ReplaceTasks)
		api.GET("/sessions/:id/transcript", h.Transcript)
	}
	return r
}

func TestChatHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockUseCase{
			chatFn: func(ctx context.Context, input planner.ChatInput) (planner.ChatOutput, error) {
				if input.SessionID != "s1" || input.Message != "add buy milk" {
					t.Errorf("input = %+v", input)
				}
				return planner.ChatOutput{
					Replies: []model.TranscriptEntry{
						{Role: model.RoleUser, Text: "add buy milk"},
						{Role: model.RoleAssistant, Text: `Added "buy milk".`},
					},
					ActiveDate: "2025-03-14",
					Celebrate:  false,
				}, nil
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		body := `{"session_id": "s1", "message": "add buy milk"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/planner/chat", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
		}
		var resp struct {
			Data chatResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if len(resp.Data.Replies) != 2 || resp.Data.ActiveDate != "2025-03-14" {
			t.Errorf("data = %+v", resp.Data)
		}
	})

	t.Run("missing message is a bad request", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/planner/chat", strings.NewReader(`{"session_id": "s1"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d", w.Code)
		}
	})
}

func TestListTasksHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockUseCase{
			listTasksFn: func(ctx context.Context, dateID string) ([]model.Task, error) {
				return []model.Task{{ID: "t1", Text: "buy milk", Priority: model.PriorityMed}}, nil
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/tasks/2025-03-14", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("code = %d", w.Code)
		}
		var resp struct {
			Data listTasksResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Data.Date != "2025-03-14" || len(resp.Data.Tasks) != 1 {
			t.Errorf("data = %+v", resp.Data)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		uc := &mockUseCase{
			listTasksFn: func(ctx context.Context, dateID string) ([]model.Task, error) {
				return nil, planner.ErrInvalidDateID
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/tasks/not-a-date", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d", w.Code)
		}
	})
}

func TestReplaceTasksHandler(t *testing.T) {
	var gotDate string
	var gotTasks []model.Task
	uc := &mockUseCase{
		replaceTasksFn: func(ctx context.Context, dateID string, tasks []model.Task) error {
			gotDate = dateID
			gotTasks = tasks
			return nil
		},
		listTasksFn: func(ctx context.Context, dateID string) ([]model.Task, error) {
			return gotTasks, nil
		},
	}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	body := `{"tasks": [{"text": "buy milk", "priority": "high", "tags": ["groceries"]}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/planner/tasks/2025-03-14", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
	if gotDate != "2025-03-14" {
		t.Errorf("date = %q", gotDate)
	}
	if len(gotTasks) != 1 || gotTasks[0].Text != "buy milk" || gotTasks[0].Priority != model.PriorityHigh {
		t.Errorf("tasks = %+v", gotTasks)
	}
}

func TestTranscriptHandler(t *testing.T) {
	t.Run("unknown session is 404", func(t *testing.T) {
		uc := &mockUseCase{
			transcriptFn: func(ctx context.Context, sessionID string) (planner.TranscriptOutput, error) {
				return planner.TranscriptOutput{}, planner.ErrSessionNotFound
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/sessions/nope/transcript", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("code = %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc := &mockUseCase{
			transcriptFn: func(ctx context.Context, sessionID string) (planner.TranscriptOutput, error) {
				return planner.TranscriptOutput{
					Entries: []model.TranscriptEntry{
						{Role: model.RoleUser, Text: "hello"},
						{Role: model.RoleAssistant, Text: "Hi!"},
					},
					ActiveDate: "2025-03-14",
				}, nil
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/sessions/s1/transcript", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("code = %d", w.Code)
		}
		var resp struct {
			Data transcriptResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Data.SessionID != "s1" || len(resp.Data.Entries) != 2 {
			t.Errorf("data = %+v", resp.Data)
		}
	})
}
