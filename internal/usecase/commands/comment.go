package commands

import (
	"context"
	"time"

	"itemshare/internal/domain/comment"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/clock"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAuthorNotFound    = errs.New("comment author not found")
	ErrCommentNotAllowed = errs.New("commenting requires a past booking of the item")
)

type CreateCommentResult struct {
	CommentID  uuid.UUID
	Text       string
	AuthorName string
	Created    time.Time
}

type CommentCommands interface {
	Create(ctx context.Context, text string, itemID, authorID uuid.UUID) (*CreateCommentResult, error)
}

type commentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommentCommands(uow shared.UnitOfWork, clk clock.Clock) CommentCommands {
	return &commentUseCaseImpl{uow: uow, clock: clk}
}

// Create persists a comment if the author has a booking of the item that
// ended before now. The booking's status does not matter for the gate,
// only that it lies in the past.
func (uc *commentUseCaseImpl) Create(ctx context.Context, text string, itemID, authorID uuid.UUID) (*CreateCommentResult, error) {
	var result CreateCommentResult

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Reads().ItemByID(ctx, itemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("item with id = %s not found", itemID), ErrItemNotFound)
			}
			return err
		}

		author, err := tx.Reads().UserByID(ctx, authorID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("user with id = %s not found", authorID), ErrAuthorNotFound)
			}
			return err
		}

		ok, err := tx.Reads().HasPastBooking(ctx, it.ID, author.ID, uc.clock.Now())
		if err != nil {
			return err
		}
		if !ok {
			return errs.Mark(
				errs.Newf("user %s may not comment on item %s without a past booking", authorID, itemID),
				ErrCommentNotAllowed,
			)
		}

		c, err := comment.NewComment(text, it.ID, author.ID, uc.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Comments().Create(ctx, c); err != nil {
			return err
		}

		result = CreateCommentResult{
			CommentID:  c.ID(),
			Text:       c.Text(),
			AuthorName: author.Name,
			Created:    c.Created(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
