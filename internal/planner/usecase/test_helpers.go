package usecase

import (
	"context"
	"errors"
	"time"

	"dayplanner/internal/planner/executor"
	"dayplanner/internal/planner/repository/memory"
	"dayplanner/pkg/datemath"
	"dayplanner/pkg/llmprovider"
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

// Mock provider for driving the bridge path in tests
type mockProvider struct {
	generateFn func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	lastReq    *llmprovider.Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastReq = req
	if m.generateFn != nil {
		return m.generateFn(ctx, req)
	}
	return nil, errors.New("no generate function configured")
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-model" }

func textProvider(text string) *mockProvider {
	return &mockProvider{
		generateFn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			return &llmprovider.Response{Text: text, ProviderName: "mock"}, nil
		},
	}
}

func failingProvider(err error) *mockProvider {
	return &mockProvider{
		generateFn: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			return nil, err
		},
	}
}

var testNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

// newTestUseCase wires an in-memory planner around the given provider with a
// frozen clock, March 14 2025 UTC.
func newTestUseCase(provider llmprovider.Provider) *implUseCase {
	dateMath, err := datemath.NewParser("UTC")
	if err != nil {
		panic(err)
	}

	manager := llmprovider.NewManager(
		[]llmprovider.Provider{provider},
		&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1},
		&mockLogger{},
	)

	now := func() time.Time { return testNow }
	return &implUseCase{
		l:          &mockLogger{},
		repo:       memory.New(),
		llm:        manager,
		dateMath:   dateMath,
		exec:       executor.New(),
		sessions:   newSessionStore(8, 30*time.Minute, now),
		summaryMax: 10,
		now:        now,
	}
}
