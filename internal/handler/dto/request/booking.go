package request

import (
	"time"

	"itemshare/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required,future"`
	End    time.Time `json:"end" binding:"required,future"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingCommand {
	return commands.CreateBookingCommand{
		ItemID: r.ItemID,
		Start:  r.Start,
		End:    r.End,
	}
}
