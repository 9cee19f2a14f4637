package repository

import (
	"context"

	"CityNotes-App/internal/domain/model"
)

// CitiesRepository 都市の永続化
// 取得系は NoteCount を埋めて返す
type CitiesRepository interface {
	List(ctx context.Context) ([]model.City, error)
	GetByID(ctx context.Context, id string) (*model.City, error)
	Exists(ctx context.Context, id string) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, city *model.City) error
	Update(ctx context.Context, city *model.City) error
	// Delete 都市を削除する（ノートは外部キーのカスケードで削除される）
	Delete(ctx context.Context, id string) error
}
