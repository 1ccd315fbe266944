package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clubstats/football-stats-api/internal/models"
)

// MockStatStore implements StatStore for testing
type MockStatStore struct {
	mu       sync.Mutex
	Counters map[string]int64
	Marks    map[string]bool
	Err      error
}

func NewMockStatStore() *MockStatStore {
	return &MockStatStore{
		Counters: make(map[string]int64),
		Marks:    make(map[string]bool),
	}
}

func (m *MockStatStore) IncrBy(ctx context.Context, key string, value int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.Counters[key] += value
	return m.Counters[key], nil
}

func (m *MockStatStore) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if m.Marks[key] {
		return false, nil
	}
	m.Marks[key] = true
	return true, nil
}

func (m *MockStatStore) Counter(key string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Counters[key]
}

// MockClickHouseConn implements driver.Conn for testing
type MockClickHouseConn struct {
	driver.Conn

	mu         sync.Mutex
	PrepareErr error
	SendErr    error
	Batches    []*MockBatch
}

func (m *MockClickHouseConn) PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error) {
	if m.PrepareErr != nil {
		return nil, m.PrepareErr
	}
	b := &MockBatch{Query: query, sendErr: m.SendErr, mu: &m.mu}
	m.mu.Lock()
	m.Batches = append(m.Batches, b)
	m.mu.Unlock()
	return b, nil
}

// SentRows counts rows across batches that were sent successfully.
func (m *MockClickHouseConn) SentRows() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, b := range m.Batches {
		if b.sent {
			n += len(b.Appended)
		}
	}
	return n
}

// MockBatch implements driver.Batch
type MockBatch struct {
	driver.Batch

	Query    string
	Appended [][]interface{}
	sent     bool
	sendErr  error
	mu       *sync.Mutex
}

func (m *MockBatch) Append(v ...interface{}) error {
	if len(v) != 10 {
		return fmt.Errorf("expected 10 columns, got %d", len(v))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Appended = append(m.Appended, v)
	return nil
}

func (m *MockBatch) Send() error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = true
	return nil
}

func (m *MockBatch) IsSent() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent
}

// MockDBStore implements DBStore
type MockDBStore struct {
	mu       sync.Mutex
	Defs     []AchievementDefinition
	QueryErr error
	Unlocked map[string]bool
	Inserts  int
}

func NewMockDBStore(defs []AchievementDefinition) *MockDBStore {
	return &MockDBStore{Defs: defs, Unlocked: make(map[string]bool)}
}

func (m *MockDBStore) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return &MockDefRows{defs: m.Defs, idx: -1}, nil
}

func (m *MockDBStore) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Inserts++
	key := fmt.Sprintf("%v/%v", args[0], args[1])
	if m.Unlocked[key] {
		return pgconn.NewCommandTag("INSERT 0 0"), nil
	}
	m.Unlocked[key] = true
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (m *MockDBStore) HasUnlocked(playerID, code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Unlocked[playerID+"/"+code]
}

// MockDefRows serves achievement definitions as pgx.Rows
type MockDefRows struct {
	pgx.Rows
	defs []AchievementDefinition
	idx  int
}

func (m *MockDefRows) Close()     {}
func (m *MockDefRows) Err() error { return nil }
func (m *MockDefRows) Next() bool {
	m.idx++
	return m.idx < len(m.defs)
}

func (m *MockDefRows) Scan(dest ...any) error {
	d := m.defs[m.idx]
	*dest[0].(*string) = d.Code
	*dest[1].(*string) = d.Name
	*dest[2].(*string) = d.Tier
	*dest[3].(*string) = d.Metric
	*dest[4].(*int64) = d.Threshold
	return nil
}

// recordingSink collects events handed over after a flush
type recordingSink struct {
	mu     sync.Mutex
	events []*models.MatchEvent
}

func (s *recordingSink) Enqueue(event *models.MatchEvent) {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
}

func (s *recordingSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
