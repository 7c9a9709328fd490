package api

import (
	"net/http"

	reqdto "itemshare/internal/handler/dto/request"
	resdto "itemshare/internal/handler/dto/response"
	"itemshare/internal/handler/middleware"
	"itemshare/internal/usecase/commands"
	"itemshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemHandler struct {
	itemCommands    commands.ItemCommands
	commentCommands commands.CommentCommands
	itemQueries     queries.ItemQueries
}

func NewItemHandler(itemCommands commands.ItemCommands, commentCommands commands.CommentCommands, itemQueries queries.ItemQueries) *ItemHandler {
	return &ItemHandler{
		itemCommands:    itemCommands,
		commentCommands: commentCommands,
		itemQueries:     itemQueries,
	}
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.itemCommands.Create(c.Request.Context(), req.ToCommand(), ownerID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	view, err := h.itemQueries.GetByID(c.Request.Context(), result.ItemID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// UpdateItem applies a partial patch; fields absent from the body are
// left untouched.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	var req reqdto.UpdateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.itemCommands.Update(c.Request.Context(), itemID, req.ToCommand(), actorID); err != nil {
		respondUsecaseError(c, err)
		return
	}

	view, err := h.itemQueries.GetByID(c.Request.Context(), itemID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	view, err := h.itemQueries.GetByID(c.Request.Context(), itemID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

func (h *ItemHandler) ListOwnItems(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.itemQueries.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

func (h *ItemHandler) SearchItems(c *gin.Context) {
	views, err := h.itemQueries.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// CreateComment is gated on the author having booked the item in the past.
func (h *ItemHandler) CreateComment(c *gin.Context) {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	var req reqdto.CreateCommentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.commentCommands.Create(c.Request.Context(), req.Text, itemID, authorID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CommentResponse{
		ID:         result.CommentID,
		Text:       result.Text,
		AuthorName: result.AuthorName,
		Created:    result.Created,
	})
}
