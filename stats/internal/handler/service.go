package handler

import (
	"context"

	"github.com/Astemirdum/lending-service/stats/internal/model"
	"github.com/Astemirdum/lending-service/stats/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StatsService interface {
	Record(ctx context.Context, event model.Event) error
	GetStats(ctx context.Context) (model.Stats, error)
}

var _ StatsService = (*service.Service)(nil)
