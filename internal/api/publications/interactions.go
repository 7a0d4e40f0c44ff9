package publications

import (
	"errors"
	"net/http"
	"strconv"

	"social-app/database"
	"social-app/internal/domain/publications"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func publicationID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publication id"})
		return 0, false
	}
	return uint(id), true
}

// POST /publications/:id/like — toggles; the denormalized counter moves in
// the same transaction as the like row.
func ToggleLike(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	pubID, ok := publicationID(c)
	if !ok {
		return
	}

	var pub publications.Publication
	if err := database.DB.First(&pub, pubID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Publication not found"})
		return
	}

	liked := false
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var like publications.Like
		err := tx.Where("publication_id = ? AND user_id = ?", pubID, userID).First(&like).Error
		switch {
		case err == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			return tx.Model(&publications.Publication{}).
				Where("id = ? AND likes > 0", pubID).
				UpdateColumn("likes", gorm.Expr("likes - 1")).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			if err := tx.Create(&publications.Like{PublicationID: pubID, UserID: userID}).Error; err != nil {
				return err
			}
			return tx.Model(&publications.Publication{}).
				Where("id = ?", pubID).
				UpdateColumn("likes", gorm.Expr("likes + 1")).Error
		default:
			return err
		}
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// POST /publications/:id/comment
func AddComment(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	pubID, ok := publicationID(c)
	if !ok {
		return
	}

	var body struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	var pub publications.Publication
	if err := database.DB.First(&pub, pubID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Publication not found"})
		return
	}

	comment := publications.Comment{
		PublicationID: pubID,
		UserID:        userID,
		Text:          body.Text,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// POST /publications/:id/save — toggle, mirrors the like toggle.
func ToggleSave(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	pubID, ok := publicationID(c)
	if !ok {
		return
	}

	var pub publications.Publication
	if err := database.DB.First(&pub, pubID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Publication not found"})
		return
	}

	var saved publications.SavedPublication
	err := database.DB.Where("user_id = ? AND publication_id = ?", userID, pubID).First(&saved).Error
	switch {
	case err == nil:
		if err := database.DB.Delete(&saved).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsave publication"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"saved": false})
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry := publications.SavedPublication{UserID: userID, PublicationID: pubID}
		if err := database.DB.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save publication"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"saved": true})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle save"})
	}
}

// GET /publications/saved
func ListSaved(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var saved []publications.SavedPublication
	err := database.DB.
		Preload("Publication.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load saved publications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// GET /suggestions — publications flagged as suggested, newest first.
func ListSuggestions(c *gin.Context) {
	var pubs []publications.Publication
	err := database.DB.
		Preload("User").
		Where("suggested = ?", true).
		Order("created_at DESC").
		Limit(20).
		Find(&pubs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load suggestions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": pubs})
}
