package messages

import (
	"context"
	"time"

	"github.com/dmitrijs2005/messagely/internal/server/models"
)

// Repository is the storage boundary for messages. Counterpart identity is
// joined from the users table on every read.
type Repository interface {
	Create(ctx context.Context, msg *models.Message) (*models.Message, error)
	Get(ctx context.Context, id string) (*models.MessageDetail, error)
	MarkRead(ctx context.Context, id string, at time.Time) (time.Time, error)
	ListFrom(ctx context.Context, username string) ([]models.SentMessage, error)
	ListTo(ctx context.Context, username string) ([]models.ReceivedMessage, error)
}
