package repository

import (
	"context"

	"CityNotes-App/internal/domain/model"
)

// NotesRepository ノートの永続化
// すべての操作は所有する都市IDでスコープされる
type NotesRepository interface {
	ListByCity(ctx context.Context, cityID string) ([]model.Note, error)
	GetByCity(ctx context.Context, cityID string, noteID int64) (*model.Note, error)
	// Create ノートを作成し、同一トランザクション内で数えた親都市のノート件数を返す
	Create(ctx context.Context, note *model.Note) (int, error)
	Update(ctx context.Context, note *model.Note) error
	// Delete ノートを削除し、同一トランザクション内で数えた親都市のノート件数を返す
	Delete(ctx context.Context, cityID string, noteID int64) (int, error)
}
