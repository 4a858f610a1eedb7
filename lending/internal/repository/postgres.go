package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

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
	booksTableName    = `books`
	requestsTableName = `borrow_requests`
	loansTableName    = `issued_books`
	usersTableName    = `users`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	bookColumns    = []string{"id", "title", "author", "category", "total_copies", "available_copies", "version"}
	requestColumns = []string{"id", "user_id", "book_id", "requested_at", "status"}
	loanColumns    = []string{"id", "book_id", "user_id", "issued_at", "due_at", "returned_at", "fine", "renew_count"}
	userColumns    = []string{"id", "name", "email", "password_hash", "phone", "address", "role"}
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *repository) SaveBook(ctx context.Context, book model.Book) (model.Book, error) {
	if book.Version == 0 {
		book.Version = 1
		q, args, err := qb.Insert(booksTableName).
			Columns(bookColumns...).
			Values(book.ID, book.Title, book.Author, book.Category, book.TotalCopies, book.AvailableCopies, book.Version).
			ToSql()
		if err != nil {
			return model.Book{}, err
		}
		if _, err = r.db.ExecContext(ctx, q, args...); err != nil {
			r.log.Error("SaveBook insert", zap.String("q", q), zap.Error(err))
			return model.Book{}, errors.Wrap(err, "insert book")
		}
		return book, nil
	}

	q, args, err := qb.Update(booksTableName).
		SetMap(map[string]interface{}{
			"title":            book.Title,
			"author":           book.Author,
			"category":         book.Category,
			"total_copies":     book.TotalCopies,
			"available_copies": book.AvailableCopies,
			"version":          sq.Expr("version + 1"),
		}).
		Where(sq.Eq{"id": book.ID, "version": book.Version}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return model.Book{}, errors.Wrap(err, "update book")
	}
	if n, err := res.RowsAffected(); err != nil {
		return model.Book{}, err
	} else if n == 0 {
		if _, err := r.GetBook(ctx, book.ID); err != nil {
			return model.Book{}, err
		}
		return model.Book{}, errs.ErrEditConflict
	}
	book.Version++
	return book, nil
}

func (r *repository) GetBook(ctx context.Context, id uuid.UUID) (model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, errors.Wrap(err, "get book")
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("lower(title)").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, errors.Wrap(err, "list books")
	}
	return items, nil
}

func (r *repository) RemoveBook(ctx context.Context, id uuid.UUID) error {
	q, args, err := qb.Delete(booksTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return errors.Wrap(err, "delete book")
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return errs.ErrBookNotFound
	}
	return nil
}

func (r *repository) SaveRequest(ctx context.Context, req model.BorrowRequest) error {
	q, args, err := qb.Insert(requestsTableName).
		Columns(requestColumns...).
		Values(req.ID, req.UserID, req.BookID, req.RequestedAt, req.Status).
		Suffix(fmt.Sprintf(`on conflict (id) do update set status = excluded.status
	where %[1]s.status = '%[2]s'`, requestsTableName, model.RequestPending)).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.ErrDuplicateBorrowRequest
		}
		r.log.Error("SaveRequest", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return errors.Wrap(err, "save request")
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return errs.ErrRequestNotPending
	}
	return nil
}

func (r *repository) GetRequest(ctx context.Context, id uuid.UUID) (model.BorrowRequest, error) {
	q, args, err := qb.Select(requestColumns...).
		From(requestsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BorrowRequest{}, err
	}
	var req model.BorrowRequest
	if err := r.db.GetContext(ctx, &req, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRequest{}, errs.ErrRequestNotFound
		}
		return model.BorrowRequest{}, errors.Wrap(err, "get request")
	}
	return req, nil
}

func (r *repository) ListRequests(ctx context.Context, f RequestFilter) ([]model.BorrowRequest, error) {
	sb := qb.Select(requestColumns...).From(requestsTableName)
	if f.UserID != nil {
		sb = sb.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.BookID != nil {
		sb = sb.Where(sq.Eq{"book_id": *f.BookID})
	}
	if f.Status != "" {
		sb = sb.Where(sq.Eq{"status": f.Status})
	}
	q, args, err := sb.OrderBy("requested_at").ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.BorrowRequest, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, errors.Wrap(err, "list requests")
	}
	return items, nil
}

func (r *repository) SaveLoan(ctx context.Context, loan model.IssuedBook) error {
	q, args, err := qb.Insert(loansTableName).
		Columns(loanColumns...).
		Values(loan.ID, loan.BookID, loan.UserID, loan.IssuedAt, loan.DueAt, loan.ReturnedAt, loan.Fine, loan.RenewCount).
		Suffix(fmt.Sprintf(`on conflict (id) do update set
	due_at = excluded.due_at, returned_at = excluded.returned_at,
	fine = excluded.fine, renew_count = excluded.renew_count
	where %s.returned_at is null`, loansTableName)).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		r.log.Error("SaveLoan", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return errors.Wrap(err, "save loan")
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return errs.ErrBookAlreadyReturned
	}
	return nil
}

func (r *repository) GetLoan(ctx context.Context, id uuid.UUID) (model.IssuedBook, error) {
	q, args, err := qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.IssuedBook{}, err
	}
	var loan model.IssuedBook
	if err := r.db.GetContext(ctx, &loan, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.IssuedBook{}, errs.ErrIssueNotFound
		}
		return model.IssuedBook{}, errors.Wrap(err, "get loan")
	}
	return loan, nil
}

func (r *repository) ListLoans(ctx context.Context, f LoanFilter) ([]model.IssuedBook, error) {
	sb := qb.Select(loanColumns...).From(loansTableName)
	if f.UserID != nil {
		sb = sb.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.BookID != nil {
		sb = sb.Where(sq.Eq{"book_id": *f.BookID})
	}
	if f.ActiveOnly {
		sb = sb.Where(sq.Eq{"returned_at": nil})
	}
	q, args, err := sb.OrderBy("issued_at").ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListLoans", zap.String("query", q), zap.Any("args", args))

	items := make([]model.IssuedBook, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, errors.Wrap(err, "list loans")
	}
	return items, nil
}

func (r *repository) RemoveLoan(ctx context.Context, id uuid.UUID) error {
	q, args, err := qb.Delete(loansTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return errors.Wrap(err, "delete loan")
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return errs.ErrIssueNotFound
	}
	return nil
}

func (r *repository) CreateUser(ctx context.Context, user model.User) error {
	q, args, err := qb.Insert(usersTableName).
		Columns(userColumns...).
		Values(user.ID, user.Name, strings.ToLower(user.Email), user.PasswordHash, user.Phone, user.Address, user.Role).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrUserAlreadyExists
		}
		return errors.Wrap(err, "create user")
	}
	return nil
}

func (r *repository) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"email": strings.ToLower(email)})
}

func (r *repository) getUser(ctx context.Context, where sq.Eq) (model.User, error) {
	q, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, errors.Wrap(err, "get user")
	}
	return user, nil
}
