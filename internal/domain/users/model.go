package users

import (
	"time"
)

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `json:"name"`
	Surname      string  `json:"surname"`
	Nick         string  `gorm:"not null;uniqueIndex:idx_users_nick" json:"nick"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password     *string `json:"-"`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`
	Role         string  `json:"role"`
	Bio          string  `json:"bio"`
	Image        string  `json:"image"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// PublicProfile is the denormalized owner shape embedded in listings.
// Credentials and bookkeeping fields never leave the server.
type PublicProfile struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Nick    string `json:"nick"`
	Image   string `json:"image"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Nick:    u.Nick,
		Image:   u.Image,
	}
}
