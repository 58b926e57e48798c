package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/portfolio-site/internal/apperror"
	"github.com/rocketscienceinc/portfolio-site/internal/entity"
)

const defaultRecentLimit = 20

type contactRepo interface {
	Save(ctx context.Context, msg *entity.ContactMessage) error
	Recent(ctx context.Context, limit int) ([]entity.ContactMessage, error)
	Find(ctx context.Context, id int64) (*entity.ContactMessage, error)
}

// ContactUseCase accepts contact form submissions. Without an inbox the submission is only
// acknowledged and logged.
type ContactUseCase struct {
	logger *slog.Logger
	inbox  contactRepo
	now    func() time.Time
}

// NewContactUseCase - inbox may be nil.
func NewContactUseCase(logger *slog.Logger, inbox contactRepo) *ContactUseCase {
	return &ContactUseCase{
		logger: logger.With("component", "contact"),
		inbox:  inbox,
		now:    time.Now,
	}
}

func (that *ContactUseCase) Submit(ctx context.Context, msg *entity.ContactMessage) error {
	log := that.logger.With("method", "Submit")

	msg.ReceivedAt = that.now().UTC()

	if that.inbox == nil {
		log.Info("contact message received", "email", msg.Email, "subject", msg.Subject, "recorded", false)
		return nil
	}

	if err := that.inbox.Save(ctx, msg); err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}

	log.Info("contact message received", "id", msg.ID, "email", msg.Email, "subject", msg.Subject, "recorded", true)

	return nil
}

// Recent lists the latest recorded messages, newest first. It is empty without an inbox.
func (that *ContactUseCase) Recent(ctx context.Context, limit int) ([]entity.ContactMessage, error) {
	if that.inbox == nil {
		return []entity.ContactMessage{}, nil
	}

	if limit <= 0 {
		limit = defaultRecentLimit
	}

	messages, err := that.inbox.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}

	return messages, nil
}

// Message - one recorded message by id. Without an inbox nothing is ever found.
func (that *ContactUseCase) Message(ctx context.Context, id int64) (*entity.ContactMessage, error) {
	if that.inbox == nil {
		return nil, apperror.ErrNotFound
	}

	msg, err := that.inbox.Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find contact message %d: %w", id, err)
	}

	return msg, nil
}
