package model

import (
	"strings"
	"time"
)

// City 地図上に境界ポリゴンとして表示される都市
type City struct {
	ID          string    `json:"id"`                   // ユニークな都市ID (UUID)
	Name        string    `json:"name"`                 // 表示名（ラテン文字）
	NameArabic  string    `json:"nameArabic"`           // 表示名（アラビア文字、空可）
	Population  *int64    `json:"population,omitempty"` // 人口（NULLABLE）
	Area        *float64  `json:"area,omitempty"`       // 面積 km²（NULLABLE）
	Description string    `json:"description"`          // 説明文
	Geometry    Geometry  `json:"geometry"`             // 境界（Polygon / MultiPolygon）
	NoteCount   int       `json:"noteCount"`            // ノート件数
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CitySummary 一覧・作成レスポンス用に地図表示の派生値を付けた都市
type CitySummary struct {
	City
	Centroid Centroid   `json:"centroid"`
	BBox     [4]float64 `json:"bbox"`
}

// CityDetail 詳細レスポンス（ノート一覧を含む）
type CityDetail struct {
	CitySummary
	Notes []Note `json:"notes"`
}

// Summary CitySummary に変換
func (c *City) Summary() CitySummary {
	return CitySummary{
		City:     *c,
		Centroid: c.Geometry.Centroid(),
		BBox:     c.Geometry.BBox(),
	}
}

// CityInput 都市の作成・置換リクエスト
type CityInput struct {
	Name        string    `json:"name"`
	NameArabic  string    `json:"nameArabic"`
	Population  *int64    `json:"population"`
	Area        *float64  `json:"area"`
	Description string    `json:"description"`
	Geometry    *Geometry `json:"geometry"`
}

// Validate 必須項目と値の範囲をチェック
func (in *CityInput) Validate() error {
	if in == nil {
		return NewValidationError("body", "request body is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError("name", "name is required")
	}
	if in.Geometry == nil || in.Geometry.IsZero() {
		return NewValidationError("geometry", "geometry is required")
	}
	if err := in.Geometry.Validate(); err != nil {
		return err
	}
	if in.Population != nil && *in.Population < 0 {
		return NewValidationError("population", "population must not be negative")
	}
	if in.Area != nil && *in.Area < 0 {
		return NewValidationError("area", "area must not be negative")
	}
	return nil
}

// ApplyTo 入力値で都市レコード全体を置き換える
func (in *CityInput) ApplyTo(c *City) {
	c.Name = strings.TrimSpace(in.Name)
	c.NameArabic = strings.TrimSpace(in.NameArabic)
	c.Population = in.Population
	c.Area = in.Area
	c.Description = in.Description
	c.Geometry = *in.Geometry
}
