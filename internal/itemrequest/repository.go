package itemrequest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"shareit/internal/user"
)

type Repository interface {
	Create(ctx context.Context, r *ItemRequest) error
	GetByID(ctx context.Context, id int64) (*ItemRequest, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]*ItemRequest, error)
	// ListOthers returns requests posted by anyone except requesterID,
	// newest first, paginated by row offset.
	ListOthers(ctx context.Context, requesterID int64, from, size int) ([]*ItemRequest, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// Replies are fetched as a JSON array via a correlated subquery so a
// list stays a single round trip.
const requestColumns = `
	r.id,
	r.description,
	r.requester_id,
	r.created_at,
	COALESCE(
		(
			SELECT json_agg(json_build_object('id', i.id, 'name', i.name, 'ownerId', i.owner_id))
			FROM public.items i
			WHERE i.request_id = r.id
		),
		'[]'::json
	) AS items
`

func (r *pgxRepository) Create(ctx context.Context, req *ItemRequest) error {
	const query = `
		INSERT INTO public.requests (description, requester_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query, req.Description, req.RequesterID, req.CreatedAt).
		Scan(&req.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return user.ErrNotFound
		}
		return fmt.Errorf("create item request failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*ItemRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM public.requests r WHERE r.id = $1`

	req, err := scanRequest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item request failed: %w", err)
	}
	return req, nil
}

func (r *pgxRepository) ListByRequester(ctx context.Context, requesterID int64) ([]*ItemRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM public.requests r
		WHERE r.requester_id = $1
		ORDER BY r.created_at DESC
	`
	return r.list(ctx, query, requesterID)
}

func (r *pgxRepository) ListOthers(ctx context.Context, requesterID int64, from, size int) ([]*ItemRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM public.requests r
		WHERE r.requester_id <> $1
		ORDER BY r.created_at DESC
		OFFSET $2 LIMIT $3
	`
	return r.list(ctx, query, requesterID, from, size)
}

func (r *pgxRepository) list(ctx context.Context, query string, args ...any) ([]*ItemRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list item requests failed: %w", err)
	}
	defer rows.Close()

	var requests []*ItemRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item request failed: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func scanRequest(row pgx.Row) (*ItemRequest, error) {
	var req ItemRequest
	var itemsJSON []byte

	if err := row.Scan(&req.ID, &req.Description, &req.RequesterID, &req.CreatedAt, &itemsJSON); err != nil {
		return nil, err
	}

	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &req.Items); err != nil {
			// One bad reply list should not fail the whole read.
			log.Warn().Err(err).Int64("request_id", req.ID).Msg("failed to unmarshal request replies")
		}
	}
	return &req, nil
}
