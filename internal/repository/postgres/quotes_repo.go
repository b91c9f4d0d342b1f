package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quotewall/backend/internal/models"
)

type quotesRepo struct{ pool *pgxpool.Pool }

func (r *quotesRepo) Create(ctx context.Context, body string) (models.Quote, error) {
	var q models.Quote
	err := r.pool.QueryRow(ctx,
		`INSERT INTO quotes(id, quote) VALUES($1,$2) RETURNING id, quote, created_at`,
		uuid.NewString(), body,
	).Scan(&q.ID, &q.Quote, &q.CreatedAt)
	return q, err
}

func (r *quotesRepo) GetByID(ctx context.Context, id string) (models.Quote, error) {
	var q models.Quote
	err := r.pool.QueryRow(ctx,
		`SELECT id, quote, created_at FROM quotes WHERE id=$1`, id,
	).Scan(&q.ID, &q.Quote, &q.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Quote{}, models.ErrNotFound
	}
	return q, err
}

func (r *quotesRepo) ListWithLikes(ctx context.Context, userID string, newest bool) ([]models.QuoteWithLikes, error) {
	order := "DESC"
	if !newest {
		order = "ASC"
	}
	rows, err := r.pool.Query(ctx,
		`SELECT q.id, q.quote, q.created_at,
		        COUNT(l.id) AS likes,
		        COUNT(*) FILTER (WHERE l.user_id = $1) > 0 AS liked
		   FROM quotes q
		   LEFT JOIN likes l ON l.quote_id = q.id
		  GROUP BY q.id
		  ORDER BY q.created_at `+order,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.QuoteWithLikes
	for rows.Next() {
		var q models.QuoteWithLikes
		if err := rows.Scan(&q.ID, &q.Quote.Quote, &q.CreatedAt, &q.Likes, &q.LikedBy); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *quotesRepo) UpdateBody(ctx context.Context, id, body string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE quotes SET quote=$2 WHERE id=$1`, id, body)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *quotesRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM quotes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
