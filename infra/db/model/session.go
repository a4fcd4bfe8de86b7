package model

import "time"

type Session struct {
	Token     string    `gorm:"primary_key;size:128" json:"token"`
	Username  string    `gorm:"size:100;not null" json:"username"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
