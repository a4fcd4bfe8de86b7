package dao

import (
	"context"
	"errors"
	"time"

	"github.com/kahawa/coffee-balancing/appctx"
	"github.com/kahawa/coffee-balancing/infra/db/model"

	"github.com/jinzhu/gorm"
)

var (
	ErrNoSession      = errors.New("no active session")
	ErrSessionExpired = errors.New("session expired")
)

// CurrentUser resolves the request's session token to a username. Called
// once per report load; a failure aborts the load with an auth error.
func (d *dao) CurrentUser(ctx context.Context) (string, error) {
	token := appctx.Token(ctx)
	if token == "" {
		return "", ErrNoSession
	}

	var session model.Session
	if err := d.db.Where("token = ?", token).First(&session).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return "", ErrNoSession
		}
		return "", err
	}

	if session.ExpiresAt.Before(time.Now()) {
		return "", ErrSessionExpired
	}
	return session.Username, nil
}
