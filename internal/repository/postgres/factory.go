package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	repo "github.com/quotewall/backend/internal/repository"
)

type Repositories struct {
	Users    repo.Users
	Quotes   repo.Quotes
	Likes    repo.Likes
	Sessions repo.Sessions
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:    &usersRepo{pool},
		Quotes:   &quotesRepo{pool},
		Likes:    &likesRepo{pool},
		Sessions: &sessionsRepo{pool},
	}
}
