package ui

import (
	"sync"
	"time"

	"winelab/domain/core"
	"winelab/domain/dataset"
	"winelab/internal/analysis"

	"golang.org/x/sync/errgroup"
)

const (
	sessionCookie = "winelab_session"

	// sessionTTL bounds how long an idle session keeps its table clone and
	// warmed analyses in memory.
	sessionTTL = time.Hour
)

// Session holds the per-browser view of the dashboard: a clone of the base
// table plus everything derived from it. The cluster column is attached to
// the session's table the first time the analysis section runs and stays for
// the rest of the session.
type Session struct {
	ID    core.SessionID
	Table *dataset.Table

	mu       sync.Mutex
	fields   []dataset.FieldSummary
	describe []dataset.DescribeRow
	corr     *dataset.CorrelationMatrix
	clusters *dataset.ClusterResult

	// lastSeen is guarded by the store's mutex, not the session's.
	lastSeen time.Time
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[core.SessionID]*Session
	now      func() time.Time
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[core.SessionID]*Session),
		now:      time.Now,
	}
}

func (st *sessionStore) get(id core.SessionID) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, ok := st.sessions[id]
	if ok {
		sess.lastSeen = st.now()
	}
	return sess, ok
}

// evictExpired drops sessions idle past the TTL. Called with the store lock
// held.
func (st *sessionStore) evictExpired() {
	cutoff := st.now().Add(-sessionTTL)
	for id, sess := range st.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
		}
	}
}

// create builds a session around a clone of the base table and warms up the
// read-only analyses concurrently.
func (st *sessionStore) create(base *dataset.Table) (*Session, error) {
	sess := &Session{
		ID:    core.NewSessionID(),
		Table: base.Clone(),
	}

	var g errgroup.Group
	g.Go(func() error {
		fields, err := analysis.Summarize(sess.Table)
		if err != nil {
			return err
		}
		sess.fields = fields
		return nil
	})
	g.Go(func() error {
		describe, err := analysis.Describe(sess.Table)
		if err != nil {
			return err
		}
		sess.describe = describe
		return nil
	})
	g.Go(func() error {
		corr, err := analysis.Correlation(sess.Table)
		if err != nil {
			return err
		}
		sess.corr = corr
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	st.mu.Lock()
	st.evictExpired()
	sess.lastSeen = st.now()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()
	return sess, nil
}

// Fields returns the schema summary computed at session creation.
func (s *Session) Fields() []dataset.FieldSummary { return s.fields }

// Describe returns the descriptive statistics computed at session creation.
func (s *Session) Describe() []dataset.DescribeRow { return s.describe }

// Correlation returns the correlation matrix computed at session creation.
func (s *Session) Correlation() *dataset.CorrelationMatrix { return s.corr }

// Clusters runs the fixed clustering once per session and returns the cached
// result afterwards: standardize the feature columns, partition with k-means,
// attach the cluster column to the session table.
func (s *Session) Clusters() (*dataset.ClusterResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clusters != nil {
		return s.clusters, nil
	}

	m, features, err := analysis.StandardizeFeatures(s.Table)
	if err != nil {
		return nil, err
	}
	result, err := analysis.KMeans(m, features, analysis.DefaultKMeansConfig())
	if err != nil {
		return nil, err
	}
	if err := s.Table.AttachClusters(result.Assignments); err != nil {
		return nil, err
	}

	s.clusters = result
	return result, nil
}
