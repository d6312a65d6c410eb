package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/messagely/internal/server/models"
)

// Repository is the storage boundary for user records. Lookups that miss
// return common.ErrorNotFound; a taken username on Create returns
// common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetPasswordHash(ctx context.Context, username string) (string, error)
	TouchLastLogin(ctx context.Context, username string, at time.Time) (*models.User, error)
	List(ctx context.Context) ([]models.UserSummary, error)
	Get(ctx context.Context, username string) (*models.User, error)
}
