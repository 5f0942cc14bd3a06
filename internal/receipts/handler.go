package receipts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"splittab/internal/split"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type receiptRequest struct {
	Name          string              `json:"name"`
	ExpectedTotal string              `json:"expected_total"`
	Tax           string              `json:"tax"`
	Tip           string              `json:"tip"`
	Participants  []string            `json:"participants"`
	Items         []split.ReceiptItem `json:"items"`
}

func (req *receiptRequest) toReceipt(ownerID string) *Receipt {
	return &Receipt{
		OwnerID:       ownerID,
		Name:          req.Name,
		ExpectedTotal: req.ExpectedTotal,
		Tax:           req.Tax,
		Tip:           req.Tip,
		Participants:  req.Participants,
		Items:         req.Items,
	}
}

// --------------------------------------------------
// Create receipt
// --------------------------------------------------
func (h *Handler) CreateReceipt(c *gin.Context) {
	var req receiptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	receipt := req.toReceipt(c.GetString("userID"))

	validation, err := h.service.CreateReceipt(c.Request.Context(), receipt)
	if err != nil {
		status := http.StatusInternalServerError
		if isValidationError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"receipt":    receipt,
		"validation": validation,
	})
}

// --------------------------------------------------
// Get receipt with computed bills
// --------------------------------------------------
func (h *Handler) GetReceipt(c *gin.Context) {
	receipt, bills, err := h.service.GetReceipt(
		c.Request.Context(),
		c.GetString("userID"),
		c.Param("id"),
	)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"receipt": receipt,
		"bills":   bills,
	})
}

// --------------------------------------------------
// Update receipt
// --------------------------------------------------
func (h *Handler) UpdateReceipt(c *gin.Context) {
	var req receiptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	receipt := req.toReceipt(c.GetString("userID"))
	receipt.ID = c.Param("id")

	validation, err := h.service.UpdateReceipt(c.Request.Context(), receipt)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"receipt":    receipt,
		"validation": validation,
	})
}

// --------------------------------------------------
// Final amounts
// --------------------------------------------------
// 400 with "no assigned items" is a defined condition here, not a
// server fault: clients show it as an empty split.
func (h *Handler) FinalAmounts(c *gin.Context) {
	amounts, err := h.service.FinalAmounts(
		c.Request.Context(),
		c.GetString("userID"),
		c.Param("id"),
	)
	if err != nil {
		if errors.Is(err, ErrNoAssignedItems) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, amounts)
}

// --------------------------------------------------
// Participant roster for a receipt
// --------------------------------------------------
func (h *Handler) ReceiptFriends(c *gin.Context) {
	refs, err := h.service.ReceiptFriends(
		c.Request.Context(),
		c.GetString("userID"),
		c.Param("id"),
	)
	if err != nil {
		h.fail(c, err)
		return
	}

	roster := make([]gin.H, len(refs))
	for i, ref := range refs {
		roster[i] = gin.H{"id": ref.Seq, "name": ref.Name}
	}
	c.JSON(http.StatusOK, roster)
}

// --------------------------------------------------
// Change calculation
// --------------------------------------------------
func (h *Handler) CalculateChange(c *gin.Context) {
	var req struct {
		FriendID   int64  `json:"friendId"`
		AmountPaid string `json:"amountPaid"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	change, err := h.service.CalculateChange(
		c.Request.Context(),
		c.GetString("userID"),
		c.Param("id"),
		req.FriendID,
		req.AmountPaid,
	)
	if err != nil {
		switch {
		case errors.Is(err, split.ErrInvalidTender),
			errors.Is(err, ErrNoAssignedItems),
			errors.Is(err, ErrFriendNotOnReceipt):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.fail(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"change": change})
}

// --------------------------------------------------
// Plain-text rendering (share/export)
// --------------------------------------------------
func (h *Handler) RenderReceipt(c *gin.Context) {
	text, err := h.service.RenderText(
		c.Request.Context(),
		c.GetString("userID"),
		c.Param("id"),
	)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.String(http.StatusOK, text)
}

// --------------------------------------------------
// Upload receipt image
// --------------------------------------------------
func (h *Handler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("receipt_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "receipt_image is required"})
		return
	}
	defer file.Close()

	url, err := h.service.AttachImage(
		c.Request.Context(),
		c.GetString("userID"),
		c.Param("id"),
		file,
		header.Filename,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image_url": url})
}

// --------------------------------------------------
// error mapping
// --------------------------------------------------

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrMissingName) ||
		errors.Is(err, ErrNoItems) ||
		errors.Is(err, ErrNoParticipants)
}
