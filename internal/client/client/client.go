package client

import (
	"context"

	"github.com/dmitrijs2005/messagely/internal/client/models"
)

type Client interface {
	Close() error
	SetAccessToken(token string)
	Register(ctx context.Context, r *models.Registration) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (*models.UserDetail, error)
	MessagesFrom(ctx context.Context, username string) ([]models.Message, error)
	MessagesTo(ctx context.Context, username string) ([]models.Message, error)
	Send(ctx context.Context, to, body string) (*models.Message, error)
	GetMessage(ctx context.Context, id string) (*models.Message, error)
	MarkRead(ctx context.Context, id string) (*models.Message, error)
}
