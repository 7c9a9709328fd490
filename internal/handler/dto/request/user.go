package request

import (
	"itemshare/internal/usecase/commands"
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func (r CreateUserRequest) ToCommand() commands.CreateUserCommand {
	return commands.CreateUserCommand{
		Name:  r.Name,
		Email: r.Email,
	}
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

func (r UpdateUserRequest) ToCommand() commands.UpdateUserCommand {
	return commands.UpdateUserCommand{
		Name:  r.Name,
		Email: r.Email,
	}
}
