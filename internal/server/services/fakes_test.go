package services

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/dbx"
	"github.com/dmitrijs2005/messagely/internal/server/auth"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	messagesrepo "github.com/dmitrijs2005/messagely/internal/server/repositories/messages"
	usersrepo "github.com/dmitrijs2005/messagely/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newHasher(t *testing.T) *auth.BcryptHasher {
	t.Helper()
	h, err := auth.NewBcryptHasher(bcrypt.MinCost, 4)
	if err != nil {
		t.Fatalf("NewBcryptHasher error: %v", err)
	}
	return h
}

// stepClock returns strictly increasing times, one second apart.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		cur = cur.Add(time.Second)
		return cur
	}
}

// memStore is an in-memory stand-in for the users and messages tables.
type memStore struct {
	mu       sync.Mutex
	users    map[string]models.User
	messages map[string]models.Message

	// forced failures
	usersErr    error
	touchErr    error
	messagesErr error
	markReadErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]models.User{},
		messages: map[string]models.Message{},
	}
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.usersErr != nil {
		return nil, r.s.usersErr
	}
	if _, ok := r.s.users[u.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}
	r.s.users[u.Username] = *u
	out := *u
	return &out, nil
}

func (r memUsers) GetPasswordHash(_ context.Context, username string) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.usersErr != nil {
		return "", r.s.usersErr
	}
	u, ok := r.s.users[username]
	if !ok {
		return "", common.ErrorNotFound
	}
	return u.PasswordHash, nil
}

func (r memUsers) TouchLastLogin(_ context.Context, username string, at time.Time) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.usersErr != nil {
		return nil, r.s.usersErr
	}
	if r.s.touchErr != nil {
		return nil, r.s.touchErr
	}
	u, ok := r.s.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u.LastLoginAt = at
	r.s.users[username] = u
	return &u, nil
}

func (r memUsers) List(context.Context) ([]models.UserSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.usersErr != nil {
		return nil, r.s.usersErr
	}
	out := make([]models.UserSummary, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, summary(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r memUsers) Get(_ context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.usersErr != nil {
		return nil, r.s.usersErr
	}
	u, ok := r.s.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func summary(u models.User) models.UserSummary {
	return models.UserSummary{Username: u.Username, FirstName: u.FirstName, LastName: u.LastName, Phone: u.Phone}
}

type memMessages struct{ s *memStore }

func (r memMessages) Create(_ context.Context, m *models.Message) (*models.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.messagesErr != nil {
		return nil, r.s.messagesErr
	}
	if _, ok := r.s.users[m.FromUsername]; !ok {
		return nil, common.ErrorInvalidReference
	}
	if _, ok := r.s.users[m.ToUsername]; !ok {
		return nil, common.ErrorInvalidReference
	}
	r.s.messages[m.ID] = *m
	out := *m
	return &out, nil
}

func (r memMessages) Get(_ context.Context, id string) (*models.MessageDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.messagesErr != nil {
		return nil, r.s.messagesErr
	}
	m, ok := r.s.messages[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &models.MessageDetail{
		ID:       m.ID,
		FromUser: summary(r.s.users[m.FromUsername]),
		ToUser:   summary(r.s.users[m.ToUsername]),
		Body:     m.Body,
		SentAt:   m.SentAt,
		ReadAt:   m.ReadAt,
	}, nil
}

func (r memMessages) MarkRead(_ context.Context, id string, at time.Time) (time.Time, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.markReadErr != nil {
		return time.Time{}, r.s.markReadErr
	}
	m, ok := r.s.messages[id]
	if !ok || m.ReadAt != nil {
		return time.Time{}, common.ErrorNotFound
	}
	m.ReadAt = &at
	r.s.messages[id] = m
	return at, nil
}

func (r memMessages) ListFrom(_ context.Context, username string) ([]models.SentMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.messagesErr != nil {
		return nil, r.s.messagesErr
	}
	out := []models.SentMessage{}
	for _, m := range r.sorted() {
		if m.FromUsername == username {
			out = append(out, models.SentMessage{
				ID: m.ID, ToUser: summary(r.s.users[m.ToUsername]), Body: m.Body, SentAt: m.SentAt, ReadAt: m.ReadAt,
			})
		}
	}
	return out, nil
}

func (r memMessages) ListTo(_ context.Context, username string) ([]models.ReceivedMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.messagesErr != nil {
		return nil, r.s.messagesErr
	}
	out := []models.ReceivedMessage{}
	for _, m := range r.sorted() {
		if m.ToUsername == username {
			out = append(out, models.ReceivedMessage{
				ID: m.ID, FromUser: summary(r.s.users[m.FromUsername]), Body: m.Body, SentAt: m.SentAt, ReadAt: m.ReadAt,
			})
		}
	}
	return out, nil
}

// sorted must be called with mu held.
func (r memMessages) sorted() []models.Message {
	out := make([]models.Message, 0, len(r.s.messages))
	for _, m := range r.s.messages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SentAt.Equal(out[j].SentAt) {
			return out[i].SentAt.Before(out[j].SentAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

type fakeRepoManager struct {
	store *memStore
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return memUsers{m.store} }
func (m *fakeRepoManager) Messages(dbx.DBTX) messagesrepo.Repository    { return memMessages{m.store} }

var errBoom = errors.New("boom")
