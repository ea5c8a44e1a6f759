package session

import (
	"hash/fnv"
	"sync"
	"time"

	"rag-support-be/pkg/store"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const lockShards = 32

// Store owns the process-wide session map. Sessions are created lazily on
// first access and evicted by TTL. Appends to the same session are
// serialized through sharded mutexes; distinct sessions never block each
// other.
type Store struct {
	cache *cache.Cache
	locks [lockShards]sync.Mutex
}

// NewStore builds a store whose sessions expire after ttl of inactivity.
func NewStore(ttl, sweepInterval time.Duration) *Store {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	if sweepInterval <= 0 {
		sweepInterval = 10 * time.Minute
	}
	return &Store{
		cache: cache.New(ttl, sweepInterval),
	}
}

// NewSessionID mints an opaque unique session token.
func NewSessionID() string {
	return uuid.NewString()
}

func (s *Store) shard(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return &s.locks[h.Sum32()%lockShards]
}

// Get returns a copy of the session's turn history, creating an empty
// session if none exists. Callers never alias the stored slice.
func (s *Store) Get(sessionID string) []store.ConversationTurn {
	mu := s.shard(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess := s.load(sessionID)
	turns := make([]store.ConversationTurn, len(sess.Turns))
	copy(turns, sess.Turns)
	return turns
}

// Append adds a turn to the session's history tail.
func (s *Store) Append(sessionID string, turn store.ConversationTurn) {
	mu := s.shard(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess := s.load(sessionID)
	sess.Turns = append(sess.Turns, turn)
	s.cache.Set(sessionID, sess, cache.DefaultExpiration)
}

// Reset drops the session's history entirely.
func (s *Store) Reset(sessionID string) {
	mu := s.shard(sessionID)
	mu.Lock()
	defer mu.Unlock()

	s.cache.Delete(sessionID)
}

// Recent returns up to limit most recent turns. The full history stays in
// the store; trimming happens only at read time.
func (s *Store) Recent(sessionID string, limit int) []store.ConversationTurn {
	turns := s.Get(sessionID)
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	return turns
}

// load must be called with the shard lock held.
func (s *Store) load(sessionID string) *store.Session {
	if x, found := s.cache.Get(sessionID); found {
		return x.(*store.Session)
	}
	sess := &store.Session{ID: sessionID}
	s.cache.Set(sessionID, sess, cache.DefaultExpiration)
	return sess
}
