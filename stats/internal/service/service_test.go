package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/lending-service/stats/internal/model"
	mock_repository "github.com/Astemirdum/lending-service/stats/internal/repository/mocks"
	"github.com/Astemirdum/lending-service/stats/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Record(t *testing.T) {
	t.Parallel()
	t0 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	returned := model.Event{
		Type:       model.EventBookReturned,
		BookID:     uuid.New(),
		Fine:       2.5,
		OccurredAt: t0,
		Topic:      "lending-events",
		Offset:     7,
	}

	tests := []struct {
		name         string
		event        model.Event
		mockBehavior func(m *mock_repository.MockRepository)
		wantErr      bool
	}{
		{
			name:  "ok",
			event: returned,
			mockBehavior: func(m *mock_repository.MockRepository) {
				m.EXPECT().SaveEvent(gomock.Any(), returned).Return(nil)
			},
		},
		{
			name:         "skip. no type",
			event:        model.Event{BookID: uuid.New(), OccurredAt: t0},
			mockBehavior: func(m *mock_repository.MockRepository) {},
		},
		{
			name:         "skip. no book",
			event:        model.Event{Type: model.EventRequestApproved, OccurredAt: t0},
			mockBehavior: func(m *mock_repository.MockRepository) {},
		},
		{
			name:  "err. db",
			event: returned,
			mockBehavior: func(m *mock_repository.MockRepository) {
				m.EXPECT().SaveEvent(gomock.Any(), returned).Return(errors.New("db internal"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()

			repo := mock_repository.NewMockRepository(c)
			tt.mockBehavior(repo)

			err := service.NewService(repo, zap.NewNop()).Record(context.Background(), tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_GetStats(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()

	last := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
	want := model.Stats{
		Events:         map[string]int{model.EventRequestApproved: 3, model.EventBookReturned: 2},
		OnLoan:         1,
		FinesCollected: 3.5,
		TopBooks:       []model.BookStat{{BookID: uuid.New(), Issues: 2, Returns: 1}},
		LastEventAt:    &last,
	}
	repo := mock_repository.NewMockRepository(c)
	repo.EXPECT().GetStats(gomock.Any()).Return(want, nil)

	got, err := service.NewService(repo, zap.NewNop()).GetStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}
