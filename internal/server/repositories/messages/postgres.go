// Package messages stores messages and reads them back joined with the
// identity of the other party.
package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/dbx"
	"github.com/dmitrijs2005/messagely/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts msg. An unknown sender or recipient yields
// common.ErrorInvalidReference.
func (r *PostgresRepository) Create(ctx context.Context, msg *models.Message) (*models.Message, error) {
	query :=
		`INSERT INTO messages (id, from_username, to_username, body, sent_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, from_username, to_username, body, sent_at, read_at
		 `

	stored := &models.Message{}
	var readAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, msg.ID, msg.FromUsername, msg.ToUsername, msg.Body, msg.SentAt).
		Scan(&stored.ID, &stored.FromUsername, &stored.ToUsername, &stored.Body, &stored.SentAt, &readAt)

	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return nil, common.ErrorInvalidReference
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	stored.ReadAt = nullTime(readAt)

	return stored, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.MessageDetail, error) {
	query :=
		`SELECT m.id,
		        m.from_username, f.first_name, f.last_name, f.phone,
		        m.to_username, t.first_name, t.last_name, t.phone,
		        m.body, m.sent_at, m.read_at
		 FROM messages AS m
		 JOIN users AS f ON m.from_username = f.username
		 JOIN users AS t ON m.to_username = t.username
		 WHERE m.id = $1
		 `

	msg := &models.MessageDetail{}
	var readAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&msg.ID,
		&msg.FromUser.Username, &msg.FromUser.FirstName, &msg.FromUser.LastName, &msg.FromUser.Phone,
		&msg.ToUser.Username, &msg.ToUser.FirstName, &msg.ToUser.LastName, &msg.ToUser.Phone,
		&msg.Body, &msg.SentAt, &readAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	msg.ReadAt = nullTime(readAt)

	return msg, nil
}

// MarkRead stamps read_at on an unread message and returns the stored value.
// A missing or already-read message yields common.ErrorNotFound.
func (r *PostgresRepository) MarkRead(ctx context.Context, id string, at time.Time) (time.Time, error) {
	query :=
		`UPDATE messages SET read_at = $2
		 WHERE id = $1 AND read_at IS NULL
		 RETURNING read_at
		 `

	var readAt time.Time
	err := r.db.QueryRowContext(ctx, query, id, at).Scan(&readAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, common.ErrorNotFound
		}
		return time.Time{}, fmt.Errorf("db error: %w", err)
	}

	return readAt, nil
}

func (r *PostgresRepository) ListFrom(ctx context.Context, username string) ([]models.SentMessage, error) {
	query :=
		`SELECT m.id, m.to_username, t.first_name, t.last_name, t.phone, m.body, m.sent_at, m.read_at
		 FROM messages AS m
		 JOIN users AS t ON m.to_username = t.username
		 WHERE m.from_username = $1
		 ORDER BY m.sent_at, m.id
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.SentMessage, 0)
	for rows.Next() {
		var m models.SentMessage
		var readAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.ToUser.Username, &m.ToUser.FirstName, &m.ToUser.LastName, &m.ToUser.Phone,
			&m.Body, &m.SentAt, &readAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		m.ReadAt = nullTime(readAt)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) ListTo(ctx context.Context, username string) ([]models.ReceivedMessage, error) {
	query :=
		`SELECT m.id, m.from_username, f.first_name, f.last_name, f.phone, m.body, m.sent_at, m.read_at
		 FROM messages AS m
		 JOIN users AS f ON m.from_username = f.username
		 WHERE m.to_username = $1
		 ORDER BY m.sent_at, m.id
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.ReceivedMessage, 0)
	for rows.Next() {
		var m models.ReceivedMessage
		var readAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.FromUser.Username, &m.FromUser.FirstName, &m.FromUser.LastName, &m.FromUser.Phone,
			&m.Body, &m.SentAt, &readAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		m.ReadAt = nullTime(readAt)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
