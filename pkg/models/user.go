package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	UID          string    `bun:",pk" json:"uid"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	DisplayName  *string   `json:"display_name"`
	PhotoURL     *string   `json:"photo_url"`
	LastSignInAt time.Time `json:"last_sign_in_at"`
}

// Name returns the display name, falling back to the uid.
func (u *User) Name() string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	return u.UID
}
