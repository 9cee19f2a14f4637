package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"CityNotes-App/internal/domain/model"
	"CityNotes-App/internal/domain/repository"
	"CityNotes-App/internal/infrastructure/database"
)

const noteCountColumn = "(SELECT COUNT(*) FROM notes n WHERE n.city_id = c.id) AS note_count"

var cityColumns = []string{
	"c.id", "c.name", "c.name_arabic", "c.population", "c.area",
	"c.description", "c.geometry", "c.created_at", "c.updated_at",
	noteCountColumn,
}

type PostgresCitiesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresCitiesRepository(client *database.PostgreSQLClient) repository.CitiesRepository {
	return &PostgresCitiesRepository{
		client: client,
	}
}

// scanCity cityColumns の順で1行を読み込む
func scanCity(row rowScanner) (*model.City, error) {
	var (
		city       model.City
		population sql.NullInt64
		area       sql.NullFloat64
	)
	err := row.Scan(&city.ID, &city.Name, &city.NameArabic, &population, &area,
		&city.Description, &city.Geometry, &city.CreatedAt, &city.UpdatedAt, &city.NoteCount)
	if err != nil {
		return nil, err
	}

	if population.Valid {
		city.Population = &population.Int64
	}
	if area.Valid {
		city.Area = &area.Float64
	}
	return &city, nil
}

func (r *PostgresCitiesRepository) List(ctx context.Context) ([]model.City, error) {
	query, args, err := psql.Select(cityColumns...).
		From("cities c").
		OrderBy("c.name ASC", "c.id ASC").
		ToSql()
	if err != nil {
		return nil, translateError("都市一覧クエリの構築失敗", err)
	}

	rows, err := r.client.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError("都市一覧の取得失敗", err)
	}
	defer rows.Close()

	cities := []model.City{}
	for rows.Next() {
		city, err := scanCity(rows)
		if err != nil {
			return nil, translateError("都市データスキャンエラー", err)
		}
		cities = append(cities, *city)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("行イテレーション中のエラー", err)
	}

	return cities, nil
}

func (r *PostgresCitiesRepository) GetByID(ctx context.Context, id string) (*model.City, error) {
	query, args, err := psql.Select(cityColumns...).
		From("cities c").
		Where(sq.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, translateError("都市取得クエリの構築失敗", err)
	}

	city, err := scanCity(r.client.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError("都市ID "+id+" の取得失敗", err)
	}
	return city, nil
}

func (r *PostgresCitiesRepository) Exists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, sq.Eq{"id": id})
}

func (r *PostgresCitiesRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, sq.Eq{"name": name})
}

func (r *PostgresCitiesRepository) exists(ctx context.Context, where sq.Eq) (bool, error) {
	query, args, err := psql.Select("1").
		Prefix("SELECT EXISTS (").
		From("cities").
		Where(where).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, translateError("存在確認クエリの構築失敗", err)
	}

	var exists bool
	if err := r.client.DB.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, translateError("都市の存在確認失敗", err)
	}
	return exists, nil
}

func (r *PostgresCitiesRepository) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From("cities").ToSql()
	if err != nil {
		return 0, translateError("件数クエリの構築失敗", err)
	}

	var count int
	if err := r.client.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, translateError("都市件数の取得失敗", err)
	}
	return count, nil
}

func (r *PostgresCitiesRepository) Create(ctx context.Context, city *model.City) error {
	query, args, err := psql.Insert("cities").
		Columns("id", "name", "name_arabic", "population", "area", "description", "geometry").
		Values(city.ID, city.Name, city.NameArabic, city.Population, city.Area, city.Description, city.Geometry).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return translateError("都市作成クエリの構築失敗", err)
	}

	if err := r.client.DB.QueryRowContext(ctx, query, args...).Scan(&city.CreatedAt, &city.UpdatedAt); err != nil {
		return translateError("都市データの作成失敗", err)
	}
	city.NoteCount = 0
	return nil
}

func (r *PostgresCitiesRepository) Update(ctx context.Context, city *model.City) error {
	query, args, err := psql.Update("cities").
		Set("name", city.Name).
		Set("name_arabic", city.NameArabic).
		Set("population", city.Population).
		Set("area", city.Area).
		Set("description", city.Description).
		Set("geometry", city.Geometry).
		Where(sq.Eq{"id": city.ID}).
		Suffix("RETURNING created_at, updated_at, (SELECT COUNT(*) FROM notes n WHERE n.city_id = cities.id)").
		ToSql()
	if err != nil {
		return translateError("都市更新クエリの構築失敗", err)
	}

	err = r.client.DB.QueryRowContext(ctx, query, args...).Scan(&city.CreatedAt, &city.UpdatedAt, &city.NoteCount)
	if err != nil {
		return translateError("都市ID "+city.ID+" の更新失敗", err)
	}
	return nil
}

func (r *PostgresCitiesRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("cities").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return translateError("都市削除クエリの構築失敗", err)
	}

	result, err := r.client.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError("都市ID "+id+" の削除失敗", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return translateError("削除件数の取得失敗", err)
	}
	if affected == 0 {
		return translateError("都市ID "+id+" の削除失敗", sql.ErrNoRows)
	}
	return nil
}
