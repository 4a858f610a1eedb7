package service

import (
	"context"

	"github.com/Astemirdum/lending-service/stats/internal/model"
	"github.com/Astemirdum/lending-service/stats/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
	}
}

// Record stores one lending event. Events without a type or book are dropped.
func (s *Service) Record(ctx context.Context, event model.Event) error {
	if event.Type == "" || event.BookID == uuid.Nil {
		s.log.Warn("skip incomplete event", zap.String("type", event.Type), zap.Int64("offset", event.Offset))
		return nil
	}
	return s.repo.SaveEvent(ctx, event)
}

func (s *Service) GetStats(ctx context.Context) (model.Stats, error) {
	return s.repo.GetStats(ctx)
}
