package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/portfolio-site/internal/apperror"
	"github.com/rocketscienceinc/portfolio-site/internal/entity"
)

type ContactRepository interface {
	Save(ctx context.Context, msg *entity.ContactMessage) error
	Find(ctx context.Context, id int64) (*entity.ContactMessage, error)
	Recent(ctx context.Context, limit int) ([]entity.ContactMessage, error)
}

type contactRepository struct {
	conn *sql.DB
}

func NewContactRepository(conn *sql.DB) ContactRepository {
	return &contactRepository{
		conn: conn,
	}
}

func (that *contactRepository) Save(ctx context.Context, msg *entity.ContactMessage) error {
	query := `INSERT INTO contact_messages (name, email, subject, message, session_id, received_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	res, err := that.conn.ExecContext(ctx, query,
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.SessionID, msg.ReceivedAt.UTC())
	if err != nil {
		return fmt.Errorf("can't save contact message: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("can't read contact message id: %w", err)
	}
	msg.ID = id

	return nil
}

func (that *contactRepository) Find(ctx context.Context, id int64) (*entity.ContactMessage, error) {
	query := `SELECT id, name, email, subject, message, session_id, received_at
		FROM contact_messages WHERE id = ?`

	var msg entity.ContactMessage

	err := that.conn.QueryRowContext(ctx, query, id).Scan(
		&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.SessionID, &msg.ReceivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find contact message: %w", err)
	}

	return &msg, nil
}

func (that *contactRepository) Recent(ctx context.Context, limit int) ([]entity.ContactMessage, error) {
	query := `SELECT id, name, email, subject, message, session_id, received_at
		FROM contact_messages ORDER BY id DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]entity.ContactMessage, 0, limit)
	for rows.Next() {
		var msg entity.ContactMessage
		if err = rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.SessionID, &msg.ReceivedAt); err != nil {
			return nil, fmt.Errorf("can't scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list contact messages: %w", err)
	}

	return messages, nil
}
