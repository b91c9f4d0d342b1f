package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type likesRepo struct{ pool *pgxpool.Pool }

// Toggle is delete-first: a racing double-click at worst hits the unique
// constraint on insert, which ON CONFLICT swallows, leaving exactly one row.
func (r *likesRepo) Toggle(ctx context.Context, userID, quoteID string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM likes WHERE user_id=$1 AND quote_id=$2`, userID, quoteID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO likes(id, user_id, quote_id) VALUES($1,$2,$3)
		 ON CONFLICT (user_id, quote_id) DO NOTHING`,
		uuid.NewString(), userID, quoteID,
	)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *likesRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM likes WHERE user_id=$1`, userID)
	return err
}
