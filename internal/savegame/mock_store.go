package savegame

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Mansion_Go/internal/domain"
)

// MockStore is a mock implementation of the Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Save(ctx context.Context, state *domain.SaveState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockStore) Load(ctx context.Context) (*domain.SaveState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaveState), args.Error(1)
}
