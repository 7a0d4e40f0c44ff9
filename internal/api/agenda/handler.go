package agenda

import (
	"net/http"

	"social-app/database"
	"social-app/internal/domain/agenda"

	"github.com/gin-gonic/gin"
)

// POST /agenda
func CreateEntry(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		Location string   `json:"location"`
		Title    string   `json:"title"`
		Duration *float64 `json:"duration"`
		Time     string   `json:"time"`
		Date     string   `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		// a non-numeric duration fails JSON binding here
		c.JSON(http.StatusBadRequest, gin.H{"error": "The duration must be a valid number of hours."})
		return
	}
	if body.Location == "" || body.Title == "" || body.Duration == nil || body.Time == "" || body.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}
	if *body.Duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The duration must be a valid number of hours."})
		return
	}

	entry := agenda.Entry{
		UserID:   userID,
		Location: body.Location,
		Title:    body.Title,
		Duration: *body.Duration,
		Time:     body.Time,
		Date:     body.Date,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create agenda entry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Successfully created record in the agenda.",
		"agenda":  entry,
	})
}

// GET /agenda — the caller's meetings grouped by date, ascending.
func ListByDate(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var entries []agenda.Entry
	err := database.DB.
		Where("user_id = ?", userID).
		Order("date ASC, time ASC").
		Find(&entries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load agenda"})
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No meetings found for the user."})
		return
	}

	type dateGroup struct {
		Date     string         `json:"date"`
		Meetings []agenda.Entry `json:"meetings"`
	}

	var groups []dateGroup
	for _, e := range entries {
		if len(groups) == 0 || groups[len(groups)-1].Date != e.Date {
			groups = append(groups, dateGroup{Date: e.Date})
		}
		groups[len(groups)-1].Meetings = append(groups[len(groups)-1].Meetings, e)
	}

	c.JSON(http.StatusOK, gin.H{"agenda": groups})
}
