package billing

import (
	"errors"
	"net/http"
	"strconv"

	"social-app/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

// MyPayments lists the caller's payment records, newest first.
func (h *Handler) MyPayments(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	recs, err := h.store.ByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}
	if len(recs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No payments found for this user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": recs})
}

// AllPayments is the admin-facing paginated listing. Defaults: page 1,
// limit 10. Owner info rides along with credentials stripped by the model's
// serialization.
func (h *Handler) AllPayments(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	result, err := h.store.Page(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}
	if len(result.Docs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No payments found"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// PaymentStatus reports the current status for one charge.
func (h *Handler) PaymentStatus(c *gin.Context) {
	chargeID := c.Query("chargeId")
	if chargeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chargeId is required"})
		return
	}

	rec, err := h.store.ByChargeID(c.Request.Context(), chargeID)
	if err != nil {
		if errors.Is(err, payments.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": rec.Status})
}

// CompletePayment is the administrative override: it forces a record into
// the completed terminal state regardless of where the provider left it.
func (h *Handler) CompletePayment(c *gin.Context) {
	chargeID := c.Param("chargeId")

	if err := h.store.Complete(c.Request.Context(), chargeID); err != nil {
		if errors.Is(err, payments.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"chargeId": chargeID, "status": payments.StatusCompleted})
}
