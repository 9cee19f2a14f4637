package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	"CityNotes-App/internal/domain/model"
)

// MockCitiesRepository CitiesRepository のモック
type MockCitiesRepository struct {
	mock.Mock
}

func (m *MockCitiesRepository) List(ctx context.Context) ([]model.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.City), args.Error(1)
}

func (m *MockCitiesRepository) GetByID(ctx context.Context, id string) (*model.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

func (m *MockCitiesRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCitiesRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCitiesRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCitiesRepository) Create(ctx context.Context, city *model.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCitiesRepository) Update(ctx context.Context, city *model.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCitiesRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNotesRepository NotesRepository のモック
type MockNotesRepository struct {
	mock.Mock
}

func (m *MockNotesRepository) ListByCity(ctx context.Context, cityID string) ([]model.Note, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *MockNotesRepository) GetByCity(ctx context.Context, cityID string, noteID int64) (*model.Note, error) {
	args := m.Called(ctx, cityID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNotesRepository) Create(ctx context.Context, note *model.Note) (int, error) {
	args := m.Called(ctx, note)
	return args.Int(0), args.Error(1)
}

func (m *MockNotesRepository) Update(ctx context.Context, note *model.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNotesRepository) Delete(ctx context.Context, cityID string, noteID int64) (int, error) {
	args := m.Called(ctx, cityID, noteID)
	return args.Int(0), args.Error(1)
}
