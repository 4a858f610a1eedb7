package repository

import (
	"context"
	"database/sql"

	"github.com/Astemirdum/lending-service/stats/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	SaveEvent(ctx context.Context, event model.Event) error
	GetStats(ctx context.Context) (model.Stats, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	eventsTableName = `events`
	topBooks        = 10
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SaveEvent stores one consumed event. A message already stored under the
// same topic, partition and offset is ignored.
func (r *repository) SaveEvent(ctx context.Context, event model.Event) error {
	q, args, err := qb.Insert(eventsTableName).
		Columns("topic", "msg_partition", "msg_offset", "event_type", "book_id", "fine", "occurred_at").
		Values(event.Topic, event.Partition, event.Offset, event.Type, event.BookID, event.Fine, event.OccurredAt).
		Suffix("on conflict (topic, msg_partition, msg_offset) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	if _, err = r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("SaveEvent", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return errors.Wrap(err, "save event")
	}
	return nil
}

type eventCount struct {
	Type  string `db:"event_type"`
	Count int    `db:"cnt"`
}

type totals struct {
	Issues      int          `db:"issues"`
	Returns     int          `db:"returns"`
	Fines       float64      `db:"fines"`
	LastEventAt sql.NullTime `db:"last_event_at"`
}

func countOf(eventType, alias string) sq.Sqlizer {
	return sq.Expr("count(*) filter (where event_type = ?) as "+alias, eventType)
}

func (r *repository) GetStats(ctx context.Context) (model.Stats, error) {
	st := model.Stats{
		Events:   make(map[string]int),
		TopBooks: make([]model.BookStat, 0, topBooks),
	}

	q, args, err := qb.Select("event_type", "count(*) as cnt").
		From(eventsTableName).
		GroupBy("event_type").
		ToSql()
	if err != nil {
		return model.Stats{}, err
	}
	var counts []eventCount
	if err = r.db.SelectContext(ctx, &counts, q, args...); err != nil {
		return model.Stats{}, errors.Wrap(err, "count events")
	}
	for _, c := range counts {
		st.Events[c.Type] = c.Count
	}

	q, args, err = qb.Select().
		Column(countOf(model.EventRequestApproved, "issues")).
		Column(countOf(model.EventBookReturned, "returns")).
		Column(sq.Expr("coalesce(sum(fine) filter (where event_type = ?), 0) as fines", model.EventBookReturned)).
		Column("max(occurred_at) as last_event_at").
		From(eventsTableName).
		ToSql()
	if err != nil {
		return model.Stats{}, err
	}
	var t totals
	if err = r.db.GetContext(ctx, &t, q, args...); err != nil {
		return model.Stats{}, errors.Wrap(err, "event totals")
	}
	st.OnLoan = t.Issues - t.Returns
	st.FinesCollected = t.Fines
	if t.LastEventAt.Valid {
		last := t.LastEventAt.Time.UTC()
		st.LastEventAt = &last
	}

	q, args, err = qb.Select("book_id").
		Column(countOf(model.EventRequestApproved, "issues")).
		Column(countOf(model.EventBookReturned, "returns")).
		From(eventsTableName).
		Where(sq.Eq{"event_type": []string{model.EventRequestApproved, model.EventBookReturned}}).
		GroupBy("book_id").
		OrderBy("issues desc", "book_id").
		Limit(topBooks).
		ToSql()
	if err != nil {
		return model.Stats{}, err
	}
	if err = r.db.SelectContext(ctx, &st.TopBooks, q, args...); err != nil {
		return model.Stats{}, errors.Wrap(err, "top books")
	}
	return st, nil
}
