package middleware

import (
	"dayplanner/config"
	"dayplanner/pkg/log"
)

type Middleware struct {
	l            log.Logger
	config       *config.Config
	chatLimiters *clientLimiters
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:            l,
		config:       cfg,
		chatLimiters: newClientLimiters(cfg.Planner.ChatRatePerMin),
	}
}

// Close releases the middleware's background resources.
func (m Middleware) Close() {
	m.chatLimiters.close()
}
