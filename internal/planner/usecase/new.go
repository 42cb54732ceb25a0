package usecase

import (
	"time"

	"dayplanner/internal/planner"
	"dayplanner/internal/planner/executor"
	"dayplanner/internal/planner/repository"
	"dayplanner/pkg/datemath"
	"dayplanner/pkg/gcalendar"
	"dayplanner/pkg/llmprovider"
	pkgLog "dayplanner/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.TaskRepository
	llm        *llmprovider.Manager
	calendar   *gcalendar.Client // nil when calendar sync is disabled
	calendarID string
	dateMath   *datemath.Parser
	exec       *executor.Executor
	sessions   *sessionStore
	summaryMax int
	now        func() time.Time
}

// New creates a new planner UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	llm *llmprovider.Manager,
	calendar *gcalendar.Client,
	calendarID string,
	dateMath *datemath.Parser,
	maxSessions int,
	sessionTTL time.Duration,
	summaryMaxTasks int,
) planner.UseCase {
	now := time.Now
	return &implUseCase{
		l:          l,
		repo:       repo,
		llm:        llm,
		calendar:   calendar,
		calendarID: calendarID,
		dateMath:   dateMath,
		exec:       executor.New(),
		sessions:   newSessionStore(maxSessions, sessionTTL, now),
		summaryMax: summaryMaxTasks,
		now:        now,
	}
}
