package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/dbx"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/dmitrijs2005/messagely/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// MessageService owns message records. Views of a message always carry the
// current identity of the other party, read from the users table.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
	newID       func() string
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{
		db:          db,
		repomanager: m,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}

// MessagesFrom lists every message sent by username, each with its recipient.
func (s *MessageService) MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error) {
	repo := s.repomanager.Messages(s.db)
	list, err := repo.ListFrom(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: error listing sent messages: %v", common.ErrStorage, err)
	}
	return list, nil
}

// MessagesTo lists every message received by username, each with its sender.
func (s *MessageService) MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error) {
	repo := s.repomanager.Messages(s.db)
	list, err := repo.ListTo(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: error listing received messages: %v", common.ErrStorage, err)
	}
	return list, nil
}

// Send stores a message from one user to another (possibly the same user).
func (s *MessageService) Send(ctx context.Context, from, to, body string) (*models.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: message body is required", common.ErrValidation)
	}
	if to == "" {
		return nil, fmt.Errorf("%w: recipient is required", common.ErrValidation)
	}

	msg := &models.Message{
		ID:           s.newID(),
		FromUsername: from,
		ToUsername:   to,
		Body:         body,
		SentAt:       s.now(),
	}

	repo := s.repomanager.Messages(s.db)
	stored, err := repo.Create(ctx, msg)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidReference) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: error creating message: %v", common.ErrStorage, err)
	}
	return stored, nil
}

// Get returns a message to its sender or recipient.
func (s *MessageService) Get(ctx context.Context, caller, id string) (*models.MessageDetail, error) {
	msg, err := s.get(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if msg.FromUser.Username != caller && msg.ToUser.Username != caller {
		return nil, common.ErrForbidden
	}
	return msg, nil
}

// MarkRead records that the recipient read the message. read_at is set once;
// later calls return the message unchanged.
func (s *MessageService) MarkRead(ctx context.Context, caller, id string) (*models.MessageDetail, error) {
	var result *models.MessageDetail

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		msg, err := s.get(ctx, tx, id)
		if err != nil {
			return err
		}
		if msg.ToUser.Username != caller {
			return common.ErrForbidden
		}
		if msg.ReadAt != nil {
			result = msg
			return nil
		}

		readAt, err := s.repomanager.Messages(tx).MarkRead(ctx, id, s.now())
		if errors.Is(err, common.ErrorNotFound) {
			// read concurrently; report what is stored
			msg, err = s.get(ctx, tx, id)
			result = msg
			return err
		}
		if err != nil {
			return fmt.Errorf("%w: error marking message read: %v", common.ErrStorage, err)
		}

		msg.ReadAt = &readAt
		result = msg
		return nil
	})
	if err != nil {
		if isKnown(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	return result, nil
}

func (s *MessageService) get(ctx context.Context, db dbx.DBTX, id string) (*models.MessageDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrMessageNotFound
	}

	msg, err := s.repomanager.Messages(db).Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrMessageNotFound
		}
		return nil, fmt.Errorf("%w: error fetching message: %v", common.ErrStorage, err)
	}
	return msg, nil
}

func isKnown(err error) bool {
	for _, target := range []error{common.ErrMessageNotFound, common.ErrForbidden, common.ErrStorage} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
