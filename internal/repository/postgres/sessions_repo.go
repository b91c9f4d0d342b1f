package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quotewall/backend/internal/models"
)

type sessionsRepo struct{ pool *pgxpool.Pool }

func (r *sessionsRepo) Create(ctx context.Context, sid string, data models.SessionData, ttl time.Duration) error {
	sess, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO sessions(sid, sess, expire) VALUES($1,$2,$3)`,
		sid, sess, time.Now().Add(ttl),
	)
	return err
}

func (r *sessionsRepo) Get(ctx context.Context, sid string) (models.SessionData, error) {
	var sess []byte
	err := r.pool.QueryRow(ctx,
		`SELECT sess FROM sessions WHERE sid=$1 AND expire > now()`, sid,
	).Scan(&sess)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.SessionData{}, models.ErrNotFound
	}
	if err != nil {
		return models.SessionData{}, err
	}
	var data models.SessionData
	if err := json.Unmarshal(sess, &data); err != nil {
		return models.SessionData{}, err
	}
	return data, nil
}

func (r *sessionsRepo) Update(ctx context.Context, sid string, data models.SessionData, ttl time.Duration) error {
	sess, err := json.Marshal(data)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE sessions SET sess=$2, expire=$3 WHERE sid=$1`,
		sid, sess, time.Now().Add(ttl),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *sessionsRepo) Delete(ctx context.Context, sid string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE sid=$1`, sid)
	return err
}

func (r *sessionsRepo) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE expire <= now()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
