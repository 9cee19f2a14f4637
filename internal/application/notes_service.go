package application

import (
	"context"
	"fmt"

	"CityNotes-App/internal/domain/model"
	"CityNotes-App/internal/domain/repository"
	"CityNotes-App/internal/infrastructure/metrics"
)

// NotesService 都市に紐づくノートのビジネスロジックを提供するサービス
// すべての操作は所有都市でスコープされる
type NotesService interface {
	// ListNotes 都市のノートを新しい順で取得
	ListNotes(ctx context.Context, cityID string) ([]model.Note, error)

	// GetNote 都市のノートを1件取得
	GetNote(ctx context.Context, cityID string, noteID int64) (*model.Note, error)

	// CreateNote ノートを作成し、親都市の最新件数を返す
	CreateNote(ctx context.Context, cityID string, in *model.NoteInput) (*model.NoteWithCity, error)

	// UpdateNote ノートのタイトルと本文を更新
	UpdateNote(ctx context.Context, cityID string, noteID int64, in *model.NoteInput) (*model.Note, error)

	// DeleteNote ノートを削除し、親都市の最新件数を返す
	DeleteNote(ctx context.Context, cityID string, noteID int64) (*model.DeleteNoteResponse, error)
}

// notesServiceImpl NotesServiceの実装
type notesServiceImpl struct {
	citiesRepo repository.CitiesRepository
	notesRepo  repository.NotesRepository
}

// NewNotesService NotesServiceの新しいインスタンスを作成
func NewNotesService(citiesRepo repository.CitiesRepository, notesRepo repository.NotesRepository) NotesService {
	return &notesServiceImpl{
		citiesRepo: citiesRepo,
		notesRepo:  notesRepo,
	}
}

func (s *notesServiceImpl) ListNotes(ctx context.Context, cityID string) ([]model.Note, error) {
	if err := s.ensureCity(ctx, cityID); err != nil {
		return nil, err
	}

	notes, err := s.notesRepo.ListByCity(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("ノート一覧の取得に失敗: %w", err)
	}
	return notes, nil
}

func (s *notesServiceImpl) GetNote(ctx context.Context, cityID string, noteID int64) (*model.Note, error) {
	if err := validateNoteRef(cityID, noteID); err != nil {
		return nil, err
	}

	note, err := s.notesRepo.GetByCity(ctx, cityID, noteID)
	if err != nil {
		return nil, fmt.Errorf("ノートの取得に失敗: %w", err)
	}
	return note, nil
}

func (s *notesServiceImpl) CreateNote(ctx context.Context, cityID string, in *model.NoteInput) (*model.NoteWithCity, error) {
	if err := s.ensureCity(ctx, cityID); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("リクエストの検証失敗: %w", err)
	}

	note := &model.Note{
		Title:   in.Title,
		Content: in.Content,
		CityID:  cityID,
	}
	count, err := s.notesRepo.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("ノートの作成に失敗: %w", err)
	}
	metrics.NotesWrittenTotal.WithLabelValues(metrics.OpCreate).Inc()

	return &model.NoteWithCity{
		Note: *note,
		City: model.CityNoteCount{ID: cityID, NoteCount: count},
	}, nil
}

func (s *notesServiceImpl) UpdateNote(ctx context.Context, cityID string, noteID int64, in *model.NoteInput) (*model.Note, error) {
	if err := validateNoteRef(cityID, noteID); err != nil {
		return nil, err
	}
	// 所有都市でスコープしたノートが見つかってから本文を検証する
	if _, err := s.notesRepo.GetByCity(ctx, cityID, noteID); err != nil {
		return nil, fmt.Errorf("ノートの取得に失敗: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("リクエストの検証失敗: %w", err)
	}

	note := &model.Note{
		ID:      noteID,
		Title:   in.Title,
		Content: in.Content,
		CityID:  cityID,
	}
	if err := s.notesRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("ノートの更新に失敗: %w", err)
	}
	metrics.NotesWrittenTotal.WithLabelValues(metrics.OpUpdate).Inc()
	return note, nil
}

func (s *notesServiceImpl) DeleteNote(ctx context.Context, cityID string, noteID int64) (*model.DeleteNoteResponse, error) {
	if err := validateNoteRef(cityID, noteID); err != nil {
		return nil, err
	}

	count, err := s.notesRepo.Delete(ctx, cityID, noteID)
	if err != nil {
		return nil, fmt.Errorf("ノートの削除に失敗: %w", err)
	}
	metrics.NotesWrittenTotal.WithLabelValues(metrics.OpDelete).Inc()

	return &model.DeleteNoteResponse{
		Message: "Note deleted successfully",
		City:    model.CityNoteCount{ID: cityID, NoteCount: count},
	}, nil
}

// ensureCity 都市IDの形式と存在を確認する
func (s *notesServiceImpl) ensureCity(ctx context.Context, cityID string) error {
	if err := validateCityID(cityID); err != nil {
		return err
	}
	exists, err := s.citiesRepo.Exists(ctx, cityID)
	if err != nil {
		return fmt.Errorf("都市の存在確認に失敗: %w", err)
	}
	if !exists {
		return fmt.Errorf("都市ID %s: %w", cityID, model.ErrNotFound)
	}
	return nil
}

func validateNoteRef(cityID string, noteID int64) error {
	if err := validateCityID(cityID); err != nil {
		return err
	}
	if noteID <= 0 {
		return fmt.Errorf("ノートID %d: %w", noteID, model.ErrNotFound)
	}
	return nil
}
