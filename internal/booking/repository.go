package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)

	// UpdateStatus moves a booking from one status to another. The
	// write is conditional on the from status still holding, so a
	// concurrent decision cannot be silently overwritten: the loser
	// gets ErrAlreadyDecided.
	UpdateStatus(ctx context.Context, id int64, from, to Status) error

	ListByBooker(ctx context.Context, bookerID int64, state State, now time.Time) ([]*Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, state State, now time.Time) ([]*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("item_id", "booker_id", "start_at", "end_at", "status").
		Values(b.ItemID, b.BookerID, b.Start, b.End, b.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		// The referenced item or user can vanish between validation
		// and insert; surface that the same way as a failed lookup.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrNotFound
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) selectBookings() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.item_id", "i.name", "i.owner_id",
		"b.booker_id", "u.name",
		"b.start_at", "b.end_at", "b.status",
	).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.ItemID, &b.ItemName, &b.ItemOwnerID,
		&b.BookerID, &b.BookerName,
		&b.Start, &b.End, &b.Status,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, from, to Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", to).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		// Either the booking vanished or its status moved underneath us.
		var exists bool
		if err := r.pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM public.bookings WHERE id = $1)", id,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check booking exists failed: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrAlreadyDecided
	}
	return nil
}

// stateConditions translates a query state into WHERE clauses against now.
func stateConditions(query squirrel.SelectBuilder, state State, now time.Time) squirrel.SelectBuilder {
	switch state {
	case StateCurrent:
		query = query.
			Where(squirrel.LtOrEq{"b.start_at": now}).
			Where(squirrel.GtOrEq{"b.end_at": now})
	case StatePast:
		query = query.Where(squirrel.Lt{"b.end_at": now})
	case StateFuture:
		query = query.Where(squirrel.Gt{"b.start_at": now})
	case StateWaiting:
		query = query.Where(squirrel.Eq{"b.status": StatusWaiting})
	case StateRejected:
		query = query.Where(squirrel.Eq{"b.status": StatusRejected})
	}
	return query
}

func (r *pgxRepository) ListByBooker(ctx context.Context, bookerID int64, state State, now time.Time) ([]*Booking, error) {
	query := r.selectBookings().Where(squirrel.Eq{"b.booker_id": bookerID})
	return r.list(ctx, stateConditions(query, state, now))
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID int64, state State, now time.Time) ([]*Booking, error) {
	query := r.selectBookings().Where(squirrel.Eq{"i.owner_id": ownerID})
	return r.list(ctx, stateConditions(query, state, now))
}

func (r *pgxRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]*Booking, error) {
	// Latest-ending first, for every state.
	sql, args, err := query.OrderBy("b.end_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
