package publications

import (
	"net/http"
	"strconv"

	"social-app/database"
	"social-app/internal/domain/publications"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func pageParams(c *gin.Context) (page, limit int, ok bool) {
	var err error
	page, err = strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return 0, 0, false
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return 0, 0, false
	}
	return page, limit, true
}

// POST /publications
func CreatePublication(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var body struct {
		Text string `json:"text"`
		File string `json:"file"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || (body.Text == "" && body.File == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A publication needs text or a file"})
		return
	}

	pub := publications.Publication{
		UserID: userID,
		Text:   body.Text,
		File:   body.File,
	}
	if err := database.DB.Create(&pub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create publication"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"publication": pub})
}

// GET /publications — global feed, newest first, paginated.
func ListPublications(c *gin.Context) {
	page, limit, ok := pageParams(c)
	if !ok {
		return
	}

	listPublicationPage(c, database.DB.Model(&publications.Publication{}), page, limit)
}

// GET /publications/user/:id
func ListUserPublications(c *gin.Context) {
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil || targetID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	page, limit, ok := pageParams(c)
	if !ok {
		return
	}

	q := database.DB.Model(&publications.Publication{}).Where("user_id = ?", targetID)
	listPublicationPage(c, q, page, limit)
}

func listPublicationPage(c *gin.Context, q *gorm.DB, page, limit int) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load publications"})
		return
	}

	var pubs []publications.Publication
	err := q.Session(&gorm.Session{}).
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&pubs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load publications"})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{
		"docs":       pubs,
		"totalDocs":  total,
		"limit":      limit,
		"page":       page,
		"totalPages": totalPages,
	})
}

// GET /publications/:id
func GetPublication(c *gin.Context) {
	var pub publications.Publication
	err := database.DB.
		Preload("User").
		Preload("Comments.User").
		First(&pub, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Publication not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"publication": pub})
}

// DELETE /publications/:id — owners delete their own, admins anything.
func DeletePublication(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var pub publications.Publication
	if err := database.DB.First(&pub, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Publication not found"})
		return
	}

	if pub.UserID != userID && c.GetString("role") != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your publication"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("publication_id = ?", pub.ID).Delete(&publications.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("publication_id = ?", pub.ID).Delete(&publications.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("publication_id = ?", pub.ID).Delete(&publications.SavedPublication{}).Error; err != nil {
			return err
		}
		return tx.Delete(&pub).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete publication"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Publication deleted"})
}
