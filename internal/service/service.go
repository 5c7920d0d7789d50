package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/eslib/lending-service/internal/model"
	"github.com/eslib/lending-service/internal/repository"
	"github.com/eslib/lending-service/pkg/cache"
	"github.com/eslib/lending-service/pkg/kafka"
	"github.com/eslib/lending-service/pkg/metrics"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Enqueuer publishes lending events for the activity feed. Publishing is best
// effort and happens after the owning transaction commits.
type Enqueuer interface {
	Enqueue(topic string, v any) error
}

const (
	cacheKeyComponents = "lending:components"
	cacheKeyDashboard  = "lending:stats:dashboard"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	enqueuer Enqueuer
	cache    *cache.Cache
	clock    Clock
}

type Option func(*Service)

func WithClock(clock Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

func NewService(repo repository.Repository, enqueuer Enqueuer, c *cache.Cache, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log,
		repo:     repo,
		enqueuer: enqueuer,
		cache:    c,
		clock:    realClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) invalidateCache(ctx context.Context) {
	s.cache.Del(ctx, cacheKeyComponents, cacheKeyDashboard)
}

func (s *Service) publishEvent(l model.LendingRecord, eventType string) {
	metrics.LendingTransitions.WithLabelValues(eventType).Inc()
	if s.enqueuer == nil {
		return
	}
	event := kafka.EventLending{
		Timestamp:   s.clock.Now().UTC(),
		RollNumber:  l.RollNumber,
		LendingID:   l.LendingUid,
		ComponentID: l.ComponentUid,
		Quantity:    l.Quantity,
		EventType:   eventType,
	}
	if err := s.enqueuer.Enqueue(kafka.LendingTopic, event); err != nil {
		s.log.Warn("enqueue lending event", zap.String("event", eventType), zap.Error(err))
	}
}
