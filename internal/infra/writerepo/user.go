package writerepo

import (
	"context"

	"itemshare/internal/domain/user"
	"itemshare/internal/infra"
	"itemshare/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const q = `
		INSERT INTO users (id, name, email)
		VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, q, u.ID(), u.Name(), u.Email()); err != nil {
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	const q = `
		UPDATE users
		SET name = $2, email = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, u.ID(), u.Name(), u.Email())
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM users WHERE id = $1`

	if _, err := r.db.Exec(ctx, q, id); err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	return nil
}
