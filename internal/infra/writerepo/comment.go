package writerepo

import (
	"context"

	"itemshare/internal/domain/comment"
	"itemshare/internal/infra"
	"itemshare/internal/infra/db"
)

type CommentRepository struct {
	db db.DBTX
}

func NewCommentRepository(dbtx db.DBTX) *CommentRepository {
	return &CommentRepository{db: dbtx}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	const q = `
		INSERT INTO comments (id, comment_text, item_id, author_id, created)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, q, c.ID(), c.Text(), c.ItemID(), c.AuthorID(), c.Created())
	if err != nil {
		return infra.WrapRepoErr("failed to insert comment", err)
	}
	return nil
}
