package publications

import (
	"time"

	"social-app/internal/domain/users"
)

type Publication struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    uint        `gorm:"not null;index:idx_publications_user_id" json:"userId"`
	User      *users.User `json:"user,omitempty"`
	Text      string      `json:"text"`
	File      string      `json:"file"`
	Likes     int64       `gorm:"not null;default:0" json:"likes"`
	Suggested bool        `gorm:"not null;default:false" json:"suggested"`
	CreatedAt time.Time   `json:"createdAt"`

	Comments []Comment `json:"comments,omitempty"`
}

type Comment struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	PublicationID uint        `gorm:"not null;index:idx_comments_publication_id" json:"publicationId"`
	UserID        uint        `gorm:"not null" json:"userId"`
	User          *users.User `json:"user,omitempty"`
	Text          string      `json:"text"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// Like rows enforce one like per user per publication; the counter on
// Publication is denormalized for cheap feed rendering.
type Like struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PublicationID uint      `gorm:"not null;uniqueIndex:idx_likes_pub_user" json:"publicationId"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_likes_pub_user" json:"userId"`
	CreatedAt     time.Time `json:"createdAt"`
}

type SavedPublication struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	UserID        uint         `gorm:"not null;uniqueIndex:idx_saved_user_pub" json:"userId"`
	PublicationID uint         `gorm:"not null;uniqueIndex:idx_saved_user_pub" json:"publicationId"`
	Publication   *Publication `json:"publication,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}
