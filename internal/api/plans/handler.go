package plans

import (
	"net/http"

	"social-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

// ListPlans exposes the static plan table so clients can render checkout
// options without hardcoding codes.
func ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": plans.All()})
}
