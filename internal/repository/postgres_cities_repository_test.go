package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CityNotes-App/internal/domain/model"
	"CityNotes-App/internal/infrastructure/database"
)

const squareJSON = `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}`

var cityRowColumns = []string{
	"id", "name", "name_arabic", "population", "area",
	"description", "geometry", "created_at", "updated_at", "note_count",
}

func newMockClient(t *testing.T) (*database.PostgreSQLClient, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &database.PostgreSQLClient{DB: db}, mock
}

func TestPostgresCitiesRepository_List(t *testing.T) {
	client, mock := newMockClient(t)
	repo := NewPostgresCitiesRepository(client)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(cityRowColumns).
		AddRow("11111111-1111-1111-1111-111111111111", "Alexandria", "الإسكندرية", int64(5200000), 2679.0, "coast", []byte(squareJSON), now, now, int64(1)).
		AddRow("22222222-2222-2222-2222-222222222222", "Cairo", "القاهرة", nil, nil, "", []byte(squareJSON), now, now, int64(2))

	mock.ExpectQuery(`SELECT (.+) FROM cities c ORDER BY c\.name ASC, c\.id ASC`).WillReturnRows(rows)

	cities, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cities, 2)

	assert.Equal(t, "Alexandria", cities[0].Name)
	require.NotNil(t, cities[0].Population)
	assert.Equal(t, int64(5200000), *cities[0].Population)
	assert.Equal(t, 1, cities[0].NoteCount)
	assert.Equal(t, model.GeometryPolygon, cities[0].Geometry.Type())

	assert.Equal(t, "Cairo", cities[1].Name)
	assert.Nil(t, cities[1].Population)
	assert.Nil(t, cities[1].Area)
	assert.Equal(t, 2, cities[1].NoteCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCitiesRepository_List_StoreFailure(t *testing.T) {
	client, mock := newMockClient(t)
	repo := NewPostgresCitiesRepository(client)

	mock.ExpectQuery(`FROM cities c`).WillReturnError(errors.New("connection refused"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrStoreFailure))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCitiesRepository_GetByID(t *testing.T) {
	id := "11111111-1111-1111-1111-111111111111"

	t.Run("見つかる", func(t *testing.T) {
		client, mock := newMockClient(t)
		repo := NewPostgresCitiesRepository(client)
		now := time.Now().UTC()

		mock.ExpectQuery(`FROM cities c WHERE c\.id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(cityRowColumns).
				AddRow(id, "Luxor", "الأقصر", int64(506000), 416.0, "temples", []byte(squareJSON), now, now, int64(2)))

		city, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Luxor", city.Name)
		assert.Equal(t, 2, city.NoteCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("存在しない", func(t *testing.T) {
		client, mock := newMockClient(t)
		repo := NewPostgresCitiesRepository(client)

		mock.ExpectQuery(`FROM cities c WHERE c\.id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(cityRowColumns))

		_, err := repo.GetByID(context.Background(), id)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UUIDとして不正な値", func(t *testing.T) {
		client, mock := newMockClient(t)
		repo := NewPostgresCitiesRepository(client)

		mock.ExpectQuery(`FROM cities c WHERE c\.id = \$1`).
			WithArgs("nonexistent-id").
			WillReturnError(&pq.Error{Code: "22P02", Message: "invalid input syntax for type uuid"})

		_, err := repo.GetByID(context.Background(), "nonexistent-id")
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}

func TestPostgresCitiesRepository_Create(t *testing.T) {
	client, mock := newMockClient(t)
	repo := NewPostgresCitiesRepository(client)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	population := int64(100)

	city := &model.City{
		ID:         "33333333-3333-3333-3333-333333333333",
		Name:       "Test City",
		Population: &population,
		Geometry:   model.NewPolygonGeometry(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cities (id,name,name_arabic,population,area,description,geometry)")).
		WithArgs(city.ID, "Test City", "", int64(100), nil, "", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	require.NoError(t, repo.Create(context.Background(), city))
	assert.Equal(t, created, city.CreatedAt)
	assert.Equal(t, 0, city.NoteCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCitiesRepository_Update_NotFound(t *testing.T) {
	client, mock := newMockClient(t)
	repo := NewPostgresCitiesRepository(client)

	city := &model.City{
		ID:       "44444444-4444-4444-4444-444444444444",
		Name:     "Renamed",
		Geometry: model.NewPolygonGeometry(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}),
	}

	mock.ExpectQuery(`UPDATE cities SET name = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at", "count"}))

	err := repo.Update(context.Background(), city)
	assert.True(t, errors.Is(err, model.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCitiesRepository_Delete(t *testing.T) {
	id := "55555555-5555-5555-5555-555555555555"

	t.Run("削除成功", func(t *testing.T) {
		client, mock := newMockClient(t)
		repo := NewPostgresCitiesRepository(client)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cities WHERE id = $1")).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("存在しない", func(t *testing.T) {
		client, mock := newMockClient(t)
		repo := NewPostgresCitiesRepository(client)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cities WHERE id = $1")).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), id)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}

func TestPostgresCitiesRepository_CountAndExists(t *testing.T) {
	client, mock := newMockClient(t)
	repo := NewPostgresCitiesRepository(client)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM cities")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(6)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS ( SELECT 1 FROM cities WHERE name = $1 )")).
		WithArgs("Cairo").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	exists, err := repo.ExistsByName(context.Background(), "Cairo")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}
