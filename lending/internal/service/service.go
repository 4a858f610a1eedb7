package service

import (
	"context"
	"sync"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/Astemirdum/lending-service/pkg/auth"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	LoanPeriod     time.Duration
	RenewalPeriod  time.Duration
	FinePerDay     float64
	MaxRenewals    int
	SearchCacheTTL time.Duration
	BcryptCost     int
	Auth           auth.Config
}

func DefaultConfig() Config {
	return Config{
		LoanPeriod:     14 * 24 * time.Hour,
		RenewalPeriod:  7 * 24 * time.Hour,
		FinePerDay:     1.0,
		MaxRenewals:    2,
		SearchCacheTTL: 30 * time.Second,
		BcryptCost:     bcrypt.DefaultCost,
		Auth:           auth.Config{Secret: auth.DevSecret, TTL: 24 * time.Hour},
	}
}

// EventPublisher delivers lending events downstream. kafka.Publisher implements it.
type EventPublisher interface {
	Publish(ctx context.Context, key string, v any) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, any) error { return nil }

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithPublisher(p EventPublisher) Option {
	return func(s *Service) { s.publisher = p }
}

// Service is the lending orchestrator. It is the only component that writes
// more than one entity type per operation.
type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	cfg       Config
	now       func() time.Time
	locks     *locker
	search    *ttlcache.Cache[string, []model.Book]
	publisher EventPublisher

	// searchGen counts catalog writes; a search result computed before the
	// latest write is never cached.
	searchMu  sync.Mutex
	searchGen uint64
}

func NewService(repo repository.Repository, log *zap.Logger, cfg Config, opts ...Option) *Service {
	s := &Service{
		log:       log.Named("service"),
		repo:      repo,
		cfg:       cfg,
		now:       time.Now,
		locks:     newLocker(),
		publisher: noopPublisher{},
	}
	if cfg.SearchCacheTTL > 0 {
		s.search = ttlcache.New[string, []model.Book](
			ttlcache.WithTTL[string, []model.Book](cfg.SearchCacheTTL),
			ttlcache.WithDisableTouchOnHit[string, []model.Book](),
		)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) publish(ctx context.Context, event model.LendingEvent) {
	event.OccurredAt = s.now().UTC()
	if err := s.publisher.Publish(ctx, event.BookID.String(), event); err != nil {
		s.log.Warn("publish lending event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}

func (s *Service) purgeSearch() {
	if s.search == nil {
		return
	}
	s.searchMu.Lock()
	defer s.searchMu.Unlock()
	s.searchGen++
	s.search.DeleteAll()
}

func (s *Service) searchGeneration() uint64 {
	s.searchMu.Lock()
	defer s.searchMu.Unlock()
	return s.searchGen
}

// cacheSearch stores items unless the catalog changed after gen was read.
func (s *Service) cacheSearch(query string, items []model.Book, gen uint64) {
	s.searchMu.Lock()
	defer s.searchMu.Unlock()
	if s.searchGen != gen {
		return
	}
	s.search.Set(query, cloneBooks(items), ttlcache.DefaultTTL)
}

// StartJanitor evicts expired search results in the background until the
// returned stop function is called.
func (s *Service) StartJanitor() (stop func()) {
	if s.search == nil {
		return func() {}
	}
	go s.search.Start()
	return s.search.Stop
}
