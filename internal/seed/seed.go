package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"CityNotes-App/internal/domain/model"
	"CityNotes-App/internal/domain/repository"
)

// Result シード処理の結果
type Result struct {
	Skipped       bool // 既存データがあり投入しなかった
	Existing      int  // スキップ時の既存都市数
	CitiesCreated int
	NotesCreated  int
}

// Seeder 参照データ（エジプトの6都市とサンプルノート）を投入する
type Seeder struct {
	citiesRepo repository.CitiesRepository
	notesRepo  repository.NotesRepository
	logger     *zap.Logger
}

// NewSeeder Seederの新しいインスタンスを作成
func NewSeeder(citiesRepo repository.CitiesRepository, notesRepo repository.NotesRepository, logger *zap.Logger) *Seeder {
	return &Seeder{
		citiesRepo: citiesRepo,
		notesRepo:  notesRepo,
		logger:     logger,
	}
}

// Run 都市が1件もない場合のみ参照データを投入する
// 途中でエラーが起きた場合はそこで中断し、投入済みのデータは残る
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	existing, err := s.citiesRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("既存都市数の取得に失敗: %w", err)
	}
	if existing > 0 {
		s.logger.Info("既存データがあるためシードをスキップ", zap.Int("cities", existing))
		return &Result{Skipped: true, Existing: existing}, nil
	}

	s.logger.Info("シード開始", zap.Int("cities", len(referenceCities)))
	result := &Result{}
	for _, ref := range referenceCities {
		city := ref.city()
		if err := s.citiesRepo.Create(ctx, city); err != nil {
			return result, fmt.Errorf("都市 %s の作成に失敗: %w", ref.Name, err)
		}
		result.CitiesCreated++
		s.logger.Info("都市を作成", zap.String("name", city.Name), zap.String("id", city.ID))

		for _, n := range ref.Notes {
			note := &model.Note{Title: n.Title, Content: n.Content, CityID: city.ID}
			if _, err := s.notesRepo.Create(ctx, note); err != nil {
				return result, fmt.Errorf("都市 %s のノート %q の作成に失敗: %w", ref.Name, n.Title, err)
			}
			result.NotesCreated++
		}
	}

	s.logger.Info("シード完了",
		zap.Int("cities_created", result.CitiesCreated),
		zap.Int("notes_created", result.NotesCreated),
	)
	return result, nil
}

func (r referenceCity) city() *model.City {
	population := r.Population
	area := r.Area
	return &model.City{
		ID:          uuid.New().String(),
		Name:        r.Name,
		NameArabic:  r.NameArabic,
		Population:  &population,
		Area:        &area,
		Description: r.Description,
		Geometry:    model.NewPolygonGeometry(r.Boundary),
	}
}
