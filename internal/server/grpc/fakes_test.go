package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/logging"
	"github.com/dmitrijs2005/messagely/internal/server/models"
)

// ---- fakes ----

type fakeAuth struct {
	token string
	err   error

	gotReg models.Registration
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (string, error) {
	return f.token, f.err
}
func (f *fakeAuth) RegisterAndLogin(ctx context.Context, r models.Registration) (string, error) {
	f.gotReg = r
	return f.token, f.err
}

type fakeUsers struct {
	list   []models.UserSummary
	detail *models.UserDetail
	err    error
}

func (f *fakeUsers) List(ctx context.Context) ([]models.UserSummary, error) { return f.list, f.err }
func (f *fakeUsers) Get(ctx context.Context, username string) (*models.UserDetail, error) {
	return f.detail, f.err
}

type fakeMessages struct {
	from   []models.SentMessage
	to     []models.ReceivedMessage
	sent   *models.Message
	detail *models.MessageDetail
	err    error

	gotFrom   string
	gotCaller string
}

func (f *fakeMessages) MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error) {
	return f.from, f.err
}
func (f *fakeMessages) MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error) {
	return f.to, f.err
}
func (f *fakeMessages) Send(ctx context.Context, from, to, body string) (*models.Message, error) {
	f.gotFrom = from
	return f.sent, f.err
}
func (f *fakeMessages) Get(ctx context.Context, caller, id string) (*models.MessageDetail, error) {
	f.gotCaller = caller
	return f.detail, f.err
}
func (f *fakeMessages) MarkRead(ctx context.Context, caller, id string) (*models.MessageDetail, error) {
	f.gotCaller = caller
	return f.detail, f.err
}

// fakeTokens accepts "tok-<username>".
type fakeTokens struct{}

func (fakeTokens) Verify(token string) (string, error) {
	switch {
	case token == "expired":
		return "", common.ErrTokenExpired
	case len(token) > 4 && token[:4] == "tok-":
		return token[4:], nil
	}
	return "", common.ErrInvalidToken
}

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newServer(a authSvc, u userSvc, m messageSvc) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, a, u, m, fakeTokens{})
}

func asCaller(username string) context.Context {
	return context.WithValue(context.Background(), UsernameKey, username)
}
