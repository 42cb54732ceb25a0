package usecase

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"dayplanner/internal/model"
)

// session is one browser conversation: an append-only transcript plus the
// active date it is planning. A session is mutated only while holding mu.
type session struct {
	mu         sync.Mutex
	transcript []model.TranscriptEntry
	activeDate string
	lastSeen   time.Time
}

func (s *session) append(entries ...model.TranscriptEntry) {
	s.transcript = append(s.transcript, entries...)
}

// sessionStore bounds live sessions with an LRU cache and expires idle ones
// by TTL. An expired or evicted session simply starts over on next use.
type sessionStore struct {
	mu    sync.Mutex
	cache *lru.Cache[string, *session]
	ttl   time.Duration
	now   func() time.Time
}

func newSessionStore(maxSessions int, ttl time.Duration, now func() time.Time) *sessionStore {
	if maxSessions <= 0 {
		maxSessions = 256
	}
	cache, _ := lru.New[string, *session](maxSessions)
	return &sessionStore{
		cache: cache,
		ttl:   ttl,
		now:   now,
	}
}

// getOrCreate returns the live session for id, creating a fresh one when none
// exists or the previous one sat idle past the TTL.
func (ss *sessionStore) getOrCreate(id, defaultDate string) *session {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	now := ss.now()
	if sess, ok := ss.cache.Get(id); ok {
		if ss.ttl <= 0 || now.Sub(sess.lastSeen) <= ss.ttl {
			sess.lastSeen = now
			return sess
		}
		ss.cache.Remove(id)
	}

	sess := &session{activeDate: defaultDate, lastSeen: now}
	ss.cache.Add(id, sess)
	return sess
}

// get returns the live session for id without creating one.
func (ss *sessionStore) get(id string) (*session, bool) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	sess, ok := ss.cache.Get(id)
	if !ok {
		return nil, false
	}
	if ss.ttl > 0 && ss.now().Sub(sess.lastSeen) > ss.ttl {
		ss.cache.Remove(id)
		return nil, false
	}
	return sess, true
}
