package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"CityNotes-App/internal/domain/helper"
	"CityNotes-App/internal/domain/model"
	"CityNotes-App/internal/domain/repository"
)

// CitiesService 都市の参照・登録に関するビジネスロジックを提供するサービス
type CitiesService interface {
	// ListCities 全都市を名前順で取得（ノート件数付き）
	ListCities(ctx context.Context) ([]model.CitySummary, error)

	// GetCity 都市の詳細とノート一覧を取得
	GetCity(ctx context.Context, id string) (*model.CityDetail, error)

	// CreateCity 都市を新規作成
	CreateCity(ctx context.Context, in *model.CityInput) (*model.CitySummary, error)

	// UpdateCity 都市のレコード全体を置き換える
	UpdateCity(ctx context.Context, id string, in *model.CityInput) (*model.CitySummary, error)

	// DeleteCity 都市とそのノートを削除
	DeleteCity(ctx context.Context, id string) error

	// CityFeatures 地図レイヤー用の FeatureCollection を取得
	CityFeatures(ctx context.Context) (*geojson.FeatureCollection, error)
}

// citiesServiceImpl CitiesServiceの実装
type citiesServiceImpl struct {
	citiesRepo repository.CitiesRepository
	notesRepo  repository.NotesRepository
}

// NewCitiesService CitiesServiceの新しいインスタンスを作成
func NewCitiesService(citiesRepo repository.CitiesRepository, notesRepo repository.NotesRepository) CitiesService {
	return &citiesServiceImpl{
		citiesRepo: citiesRepo,
		notesRepo:  notesRepo,
	}
}

func (s *citiesServiceImpl) ListCities(ctx context.Context) ([]model.CitySummary, error) {
	cities, err := s.citiesRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("都市一覧の取得に失敗: %w", err)
	}

	summaries := make([]model.CitySummary, 0, len(cities))
	for i := range cities {
		summaries = append(summaries, cities[i].Summary())
	}
	return summaries, nil
}

func (s *citiesServiceImpl) GetCity(ctx context.Context, id string) (*model.CityDetail, error) {
	if err := validateCityID(id); err != nil {
		return nil, err
	}

	city, err := s.citiesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("都市の取得に失敗: %w", err)
	}
	notes, err := s.notesRepo.ListByCity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("都市のノート取得に失敗: %w", err)
	}

	return &model.CityDetail{
		CitySummary: city.Summary(),
		Notes:       notes,
	}, nil
}

func (s *citiesServiceImpl) CreateCity(ctx context.Context, in *model.CityInput) (*model.CitySummary, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("リクエストの検証失敗: %w", err)
	}

	city := &model.City{ID: uuid.New().String()}
	in.ApplyTo(city)
	if err := s.citiesRepo.Create(ctx, city); err != nil {
		return nil, fmt.Errorf("都市の作成に失敗: %w", err)
	}

	summary := city.Summary()
	return &summary, nil
}

func (s *citiesServiceImpl) UpdateCity(ctx context.Context, id string, in *model.CityInput) (*model.CitySummary, error) {
	if err := validateCityID(id); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("リクエストの検証失敗: %w", err)
	}

	city := &model.City{ID: id}
	in.ApplyTo(city)
	if err := s.citiesRepo.Update(ctx, city); err != nil {
		return nil, fmt.Errorf("都市の更新に失敗: %w", err)
	}

	summary := city.Summary()
	return &summary, nil
}

func (s *citiesServiceImpl) DeleteCity(ctx context.Context, id string) error {
	if err := validateCityID(id); err != nil {
		return err
	}
	if err := s.citiesRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("都市の削除に失敗: %w", err)
	}
	return nil
}

func (s *citiesServiceImpl) CityFeatures(ctx context.Context) (*geojson.FeatureCollection, error) {
	cities, err := s.citiesRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("地図レイヤーの取得に失敗: %w", err)
	}
	return helper.CitiesToFeatureCollection(cities), nil
}

// validateCityID UUIDとして解釈できないIDは存在しない都市として扱う
func validateCityID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("都市ID %q: %w", id, model.ErrNotFound)
	}
	return nil
}
