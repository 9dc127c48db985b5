package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/schoolportal/internal/app/models"
	appRepos "github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/auth"
)

// DemoPassword is the password of every demo account
const DemoPassword = "password"

var demoUsers = []struct {
	name string
	role appModels.RoleType
}{
	{"teacher", appModels.RoleTeacher},
	{"student", appModels.RoleStudent},
	{"parent", appModels.RoleParent},
}

// CreateDefaultData creates the demo accounts and a sample event if they don't exist.
// Errors are collected so one failing row does not stop the rest.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, bcryptCost int, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (demo users, sample event)...")
	var finalErr error

	hashedPassword, err := auth.HashPassword(DemoPassword, bcryptCost)
	if err != nil {
		return err
	}

	for _, demo := range demoUsers {
		user := &appModels.User{Name: demo.name, Password: hashedPassword, RoleType: demo.role}
		err := repos.UserRepository.Create(ctx, user)
		switch {
		case errors.Is(err, apperrors.ErrUserAlreadyExists):
			lgr.Debug().Str("name", demo.name).Msg("Demo user already exists, skipping creation")
		case err != nil:
			lgr.Error().Err(err).Str("name", demo.name).Msg("Error creating demo user")
			finalErr = errors.Join(finalErr, err)
		default:
			lgr.Info().Int64("userID", user.ID).Str("name", demo.name).Msg("Demo user created")
		}
	}

	count, err := repos.EventRepository.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting events")
		finalErr = errors.Join(finalErr, err)
	} else if count == 0 {
		start := time.Now().UTC().AddDate(0, 0, 7).Truncate(24 * time.Hour).Add(9 * time.Hour)
		event := &appModels.Event{Title: "Parent-teacher meeting", Date: start}
		if err := repos.EventRepository.Create(ctx, event); err != nil {
			lgr.Error().Err(err).Msg("Error creating sample event")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Int64("eventID", event.ID).Msg("Sample event created")
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
