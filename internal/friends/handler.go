package friends

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"splittab/internal/core"
)

type Handler struct {
	service  *Service
	receipts core.ReceiptReader
}

func NewHandler(service *Service, receipts core.ReceiptReader) *Handler {
	return &Handler{service: service, receipts: receipts}
}

type friendResponse struct {
	*Friend
	Receipts []core.ReceiptSummary `json:"receipts"`
}

// --------------------------------------------------
// Add friend
// --------------------------------------------------
func (h *Handler) AddFriend(c *gin.Context) {
	var req struct {
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	friend, err := h.service.AddFriend(c.Request.Context(), c.GetString("userID"), req.Name, req.Avatar)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, friend)
}

// --------------------------------------------------
// List friends (paginated)
// --------------------------------------------------
func (h *Handler) ListFriends(c *gin.Context) {
	ownerID := c.GetString("userID")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))

	list, total, err := h.service.ListFriends(c.Request.Context(), ownerID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch friends"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"friends": h.withReceipts(c, ownerID, list),
		"page":    page,
		"limit":   limit,
		"total":   total,
	})
}

// --------------------------------------------------
// List friends (non-paginated fallback)
// --------------------------------------------------
func (h *Handler) ListAllFriends(c *gin.Context) {
	ownerID := c.GetString("userID")

	list, err := h.service.ListAllFriends(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch friends"})
		return
	}

	c.JSON(http.StatusOK, h.withReceipts(c, ownerID, list))
}

// --------------------------------------------------
// Remove friend
// --------------------------------------------------
func (h *Handler) RemoveFriend(c *gin.Context) {
	err := h.service.RemoveFriend(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove friend"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "friend removed"})
}

// withReceipts attaches each friend's receipt summaries. A summary
// failure degrades to an empty list; the roster itself still loads.
func (h *Handler) withReceipts(c *gin.Context, ownerID string, list []*Friend) []friendResponse {
	out := make([]friendResponse, len(list))
	for i, friend := range list {
		summaries := []core.ReceiptSummary{}
		if h.receipts != nil {
			got, err := h.receipts.SummariesForFriend(c.Request.Context(), ownerID, friend.ID)
			if err != nil {
				log.Printf("friend receipts lookup failed friend=%s: %v", friend.ID, err)
			} else if got != nil {
				summaries = got
			}
		}
		out[i] = friendResponse{Friend: friend, Receipts: summaries}
	}
	return out
}
