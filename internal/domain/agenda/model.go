package agenda

import "time"

// Entry is one scheduled meeting. Duration is hours.
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_agenda_user_id" json:"userId"`
	Location  string    `json:"location"`
	Title     string    `json:"title"`
	Duration  float64   `json:"duration"`
	Time      string    `json:"time"`
	Date      string    `gorm:"index:idx_agenda_date" json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Entry) TableName() string {
	return "agenda_entries"
}
