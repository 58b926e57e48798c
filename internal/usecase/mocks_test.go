package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/portfolio-site/internal/entity"
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (entity.Game, error) {
	args := that.Called(ctx, id)
	return args.Get(0).(entity.Game), args.Error(1)
}

type mockContactRepo struct {
	mock.Mock
}

func (that *mockContactRepo) Save(ctx context.Context, msg *entity.ContactMessage) error {
	args := that.Called(ctx, msg)
	return args.Error(0)
}

func (that *mockContactRepo) Recent(ctx context.Context, limit int) ([]entity.ContactMessage, error) {
	args := that.Called(ctx, limit)

	messages, _ := args.Get(0).([]entity.ContactMessage)
	return messages, args.Error(1)
}

func (that *mockContactRepo) Find(ctx context.Context, id int64) (*entity.ContactMessage, error) {
	args := that.Called(ctx, id)

	msg, _ := args.Get(0).(*entity.ContactMessage)
	return msg, args.Error(1)
}
