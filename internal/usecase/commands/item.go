package commands

import (
	"context"

	"itemshare/internal/domain/item"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound = errs.New("item not found")
	ErrItemNotOwned = errs.New("acting user does not own the item")
)

type CreateItemCommand struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type UpdateItemCommand struct {
	Name        *string
	Description *string
	Available   *bool
}

type CreateItemResult struct {
	ItemID uuid.UUID
}

type ItemCommands interface {
	Create(ctx context.Context, cmd CreateItemCommand, ownerID uuid.UUID) (*CreateItemResult, error)
	Update(ctx context.Context, itemID uuid.UUID, cmd UpdateItemCommand, actorID uuid.UUID) error
}

type itemUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewItemCommands(uow shared.UnitOfWork) ItemCommands {
	return &itemUseCaseImpl{uow: uow}
}

func (uc *itemUseCaseImpl) Create(ctx context.Context, cmd CreateItemCommand, ownerID uuid.UUID) (*CreateItemResult, error) {
	var createdID uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, err := tx.Reads().UserByID(ctx, ownerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("user with id = %s not found", ownerID), ErrUserNotFound)
			}
			return err
		}

		it, err := item.NewItem(owner.ID, cmd.Name, cmd.Description, cmd.Available, cmd.RequestID)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Items().Create(ctx, it); err != nil {
			return err
		}

		createdID = it.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateItemResult{ItemID: createdID}, nil
}

// Update applies a partial patch; only the owner may change an item.
func (uc *itemUseCaseImpl) Update(ctx context.Context, itemID uuid.UUID, cmd UpdateItemCommand, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ItemByID(ctx, itemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("item with id = %s not found", itemID), ErrItemNotFound)
			}
			return err
		}

		if snap.OwnerID != actorID {
			return errs.Mark(
				errs.Newf("user %s may not change item %s: not the owner", actorID, itemID),
				ErrItemNotOwned,
			)
		}

		it := item.ReconstructItem(snap.ID, snap.OwnerID, snap.Name, snap.Description, snap.Available, snap.RequestID)
		if err := it.ApplyPatch(cmd.Name, cmd.Description, cmd.Available); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		return tx.Items().Update(ctx, it)
	})
}
