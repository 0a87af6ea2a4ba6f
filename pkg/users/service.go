package users

import (
	"context"
	"database/sql"
	"time"

	"github.com/marqueehq/marquee/pkg/errcodes"
	"github.com/marqueehq/marquee/pkg/identity"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Service persists the profiles of users who have signed in.
type Service struct {
	db *bun.DB
}

// NewService creates a new users service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

// RecordSignIn creates or refreshes the profile for id and stamps the sign-in
// time.
func (s *Service) RecordSignIn(ctx context.Context, id *identity.Identity) (*models.User, error) {
	now := time.Now().UTC()
	user := &models.User{
		UID:          id.UID,
		CreatedAt:    now,
		UpdatedAt:    now,
		DisplayName:  id.DisplayName,
		PhotoURL:     id.PhotoURL,
		LastSignInAt: now,
	}

	_, err := s.db.NewInsert().
		Model(user).
		On("CONFLICT (uid) DO UPDATE").
		Set("display_name = EXCLUDED.display_name").
		Set("photo_url = EXCLUDED.photo_url").
		Set("updated_at = EXCLUDED.updated_at").
		Set("last_sign_in_at = EXCLUDED.last_sign_in_at").
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return s.Retrieve(ctx, id.UID)
}

// Retrieve returns the profile for uid.
func (s *Service) Retrieve(ctx context.Context, uid string) (*models.User, error) {
	user := &models.User{}
	err := s.db.NewSelect().
		Model(user).
		Where("u.uid = ?", uid).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("User")
		}
		return nil, errors.WithStack(err)
	}
	return user, nil
}
