package seed

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"CityNotes-App/internal/domain/helper"
	"CityNotes-App/internal/domain/model"
	"CityNotes-App/internal/domain/repository"
)

// ImportResult 境界データ取り込みの結果
type ImportResult struct {
	Created int
	Skipped []SkippedFeature
}

// SkippedFeature 取り込まなかった Feature とその理由
type SkippedFeature struct {
	Index  int
	Name   string
	Reason string
}

// Importer 行政境界の FeatureCollection から都市を作成する
type Importer struct {
	citiesRepo repository.CitiesRepository
	logger     *zap.Logger
}

// NewImporter Importerの新しいインスタンスを作成
func NewImporter(citiesRepo repository.CitiesRepository, logger *zap.Logger) *Importer {
	return &Importer{
		citiesRepo: citiesRepo,
		logger:     logger,
	}
}

// Import FeatureCollection を読み込み、まだ登録されていない都市を作成する
// 名前やジオメトリが不正な Feature と同名の都市が既にある Feature はスキップする
func (im *Importer) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("境界データの読み込みに失敗: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("FeatureCollectionの解析に失敗: %w", model.NewValidationError("body", err.Error()))
	}

	result := &ImportResult{}
	for i, f := range fc.Features {
		in, err := helper.FeatureToCityInput(f)
		if err != nil {
			result.skip(i, "", err.Error())
			im.logger.Warn("不正なFeatureをスキップ", zap.Int("index", i), zap.Error(err))
			continue
		}

		exists, err := im.citiesRepo.ExistsByName(ctx, in.Name)
		if err != nil {
			return result, fmt.Errorf("都市 %s の存在確認に失敗: %w", in.Name, err)
		}
		if exists {
			result.skip(i, in.Name, "already exists")
			continue
		}

		city := &model.City{ID: uuid.New().String()}
		in.ApplyTo(city)
		if err := im.citiesRepo.Create(ctx, city); err != nil {
			return result, fmt.Errorf("都市 %s の作成に失敗: %w", in.Name, err)
		}
		result.Created++
		im.logger.Info("境界データから都市を作成", zap.String("name", city.Name), zap.String("id", city.ID))
	}
	return result, nil
}

func (r *ImportResult) skip(index int, name, reason string) {
	r.Skipped = append(r.Skipped, SkippedFeature{Index: index, Name: name, Reason: reason})
}
