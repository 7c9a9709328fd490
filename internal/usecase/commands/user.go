package commands

import (
	"context"

	"itemshare/internal/domain/user"
	"itemshare/internal/infra"
	"itemshare/internal/pkg/errs"
	"itemshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound     = errs.New("user not found")
	ErrEmailTaken       = errs.New("email already registered")
	ErrDomainValidation = errs.New("domain validation error")
)

type CreateUserCommand struct {
	Name  string
	Email string
}

type UpdateUserCommand struct {
	Name  *string
	Email *string
}

type CreateUserResult struct {
	UserID uuid.UUID
}

type UserCommands interface {
	Create(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error)
	Update(ctx context.Context, userID uuid.UUID, cmd UpdateUserCommand) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userUseCaseImpl{uow: uow}
}

func (uc *userUseCaseImpl) Create(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	var createdID uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := checkEmailFree(ctx, tx.Reads(), cmd.Email, uuid.Nil); err != nil {
			return err
		}

		u, err := user.NewUser(cmd.Name, cmd.Email)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Users().Create(ctx, u); err != nil {
			// The unique index is the authority under concurrent creates.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailTaken)
			}
			return err
		}

		createdID = u.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateUserResult{UserID: createdID}, nil
}

func (uc *userUseCaseImpl) Update(ctx context.Context, userID uuid.UUID, cmd UpdateUserCommand) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("user with id = %s not found", userID), ErrUserNotFound)
			}
			return err
		}

		if cmd.Email != nil {
			if err := checkEmailFree(ctx, tx.Reads(), *cmd.Email, userID); err != nil {
				return err
			}
		}

		u := user.ReconstructUser(snap.ID, snap.Name, snap.Email)
		if err := u.ApplyPatch(cmd.Name, cmd.Email); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Users().Update(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailTaken)
			}
			return err
		}
		return nil
	})
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Delete(ctx, userID)
	})
}

// checkEmailFree allows the email to belong to selfID so a user can
// re-submit their own address on update.
func checkEmailFree(ctx context.Context, reads shared.CommandReads, email string, selfID uuid.UUID) error {
	existing, err := reads.UserByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return errs.Mark(errs.Newf("user with email %s is already registered", email), ErrEmailTaken)
	}
	return nil
}
