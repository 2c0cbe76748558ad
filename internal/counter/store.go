// Package counter keeps the usage counters of the card generator in a single JSON file.
//
// Every mutation is a read-modify-write of the whole file. Store serializes these
// with an in-process mutex and an exclusive advisory lock on a sibling ".lock" file,
// so concurrent requests, and other processes sharing the file, never lose updates.
// The file is replaced atomically, so readers never observe a partial write.
package counter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/renameio/v2"

	"github.com/naka-gawa/github-profile-card/internal/domain"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
	filePerm    = 0o644
)

// ErrStorage is wrapped by every error caused by reading, locking or writing the stats file.
var ErrStorage = errors.New("stats storage failure")

// Store is the file-backed counter store.
type Store struct {
	path   string
	lock   *flock.Flock
	mu     sync.Mutex
	loc    *time.Location
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the calendar used for daily and monthly buckets and timestamps.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// NewStore creates a store backed by path. The file is created on first access.
func NewStore(path string, logger *log.Logger, opts ...Option) *Store {
	s := &Store{
		path:   path,
		lock:   flock.New(path + ".lock"),
		loc:    time.UTC,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the stats file path.
func (s *Store) Path() string { return s.path }

// Load returns the current snapshot, creating the file with zero counters if it does not exist.
func (s *Store) Load() (*domain.StatsSnapshot, error) {
	unlock, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.load()
}

// IncrementGenerations counts one generated card.
func (s *Store) IncrementGenerations() (*domain.GenerationResult, error) {
	var result *domain.GenerationResult
	err := s.update(func(snap *domain.StatsSnapshot, now time.Time) {
		day, month := now.Format(dayLayout), now.Format(monthLayout)
		stamp := now.Format(domain.TimestampLayout)

		snap.TotalGenerations++
		snap.LastGeneration = &stamp
		if snap.FirstGeneration == nil || *snap.FirstGeneration == "" {
			first := stamp
			snap.FirstGeneration = &first
		}
		snap.DailyStats[day]++
		snap.MonthlyStats[month]++

		result = &domain.GenerationResult{
			Success:            true,
			TotalGenerations:   snap.TotalGenerations,
			DailyGenerations:   snap.DailyStats[day],
			MonthlyGenerations: snap.MonthlyStats[month],
		}
	})
	if err != nil {
		return nil, err
	}
	s.logger.Printf("Counter: generations=%d\n", result.TotalGenerations)
	return result, nil
}

// IncrementVisitors counts one visit.
func (s *Store) IncrementVisitors() (*domain.VisitorResult, error) {
	var result *domain.VisitorResult
	err := s.update(func(snap *domain.StatsSnapshot, now time.Time) {
		stamp := now.Format(domain.TimestampLayout)

		snap.TotalVisitors++
		snap.LastVisit = &stamp
		snap.DailyVisitors[now.Format(dayLayout)]++
		snap.MonthlyVisitors[now.Format(monthLayout)]++

		result = &domain.VisitorResult{Success: true, TotalVisitors: snap.TotalVisitors}
	})
	if err != nil {
		return nil, err
	}
	s.logger.Printf("Counter: visitors=%d\n", result.TotalVisitors)
	return result, nil
}

// GetStats summarizes the snapshot for today and the current month. It never
// fails: if the file cannot be read, zero counters are returned.
func (s *Store) GetStats() *domain.Stats {
	snap, err := s.Load()
	if err != nil {
		s.logger.Printf("Counter: serving empty stats: %v\n", err)
		snap = domain.NewStatsSnapshot()
	}
	now := s.now().In(s.loc)
	return &domain.Stats{
		TotalGenerations:   snap.TotalGenerations,
		TotalVisitors:      snap.TotalVisitors,
		DailyGenerations:   snap.DailyStats[now.Format(dayLayout)],
		MonthlyGenerations: snap.MonthlyStats[now.Format(monthLayout)],
		LastGeneration:     snap.LastGeneration,
		LastVisit:          snap.LastVisit,
		FirstGeneration:    snap.FirstGeneration,
	}
}

// Debug reports the absolute file path, its permission bits and the stored snapshot.
func (s *Store) Debug() (*domain.DebugInfo, error) {
	unlock, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer unlock()

	snap, err := s.load()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(s.path)
	if err != nil {
		abs = s.path
	}
	perms := "unknown"
	if info, err := os.Stat(s.path); err == nil {
		perms = fmt.Sprintf("%04o", info.Mode().Perm())
	}
	return &domain.DebugInfo{Path: abs, Permissions: perms, Contents: snap}, nil
}

func (s *Store) update(mutate func(snap *domain.StatsSnapshot, now time.Time)) error {
	unlock, err := s.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	mutate(snap, s.now().In(s.loc))
	return s.persist(snap)
}

// acquire takes the process mutex, then the file lock. The returned func releases both.
func (s *Store) acquire() (func(), error) {
	s.mu.Lock()
	if err := s.lock.Lock(); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: lock %s: %v", ErrStorage, s.lock.Path(), err)
	}
	return func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Printf("Counter: failed to release lock: %v\n", err)
		}
		s.mu.Unlock()
	}, nil
}

// load must be called with the lock held.
func (s *Store) load() (*domain.StatsSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Printf("Counter: creating %s\n", s.path)
		snap := domain.NewStatsSnapshot()
		if err := s.persist(snap); err != nil {
			return nil, err
		}
		return snap, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorage, s.path, err)
	}
	snap := domain.NewStatsSnapshot()
	if len(data) == 0 {
		return snap, nil
	}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrStorage, s.path, err)
	}
	snap.Normalize()
	return snap, nil
}

// persist must be called with the lock held.
func (s *Store) persist(snap *domain.StatsSnapshot) error {
	data, err := json.MarshalIndent(snap, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", ErrStorage, err)
	}
	if err := renameio.WriteFile(s.path, data, filePerm); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorage, s.path, err)
	}
	return nil
}
