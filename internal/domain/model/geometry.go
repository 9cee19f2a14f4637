package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeometryType 都市境界として受け付けるGeoJSONジオメトリの種別
type GeometryType string

const (
	GeometryPolygon      GeometryType = "Polygon"
	GeometryMultiPolygon GeometryType = "MultiPolygon"
)

// リングの最小頂点数（閉じるための点を含む）
const minRingPoints = 4

// 境界が空の場合に使う地図の中心（エジプト中央）
var defaultMapCenter = Centroid{Longitude: 30.8025, Latitude: 26.8206}

// Geometry 都市境界（Polygon または MultiPolygon）
// 内部では orb のジオメトリを保持し、JSON と JSONB カラムとの相互変換を行う
type Geometry struct {
	shape orb.Geometry
}

// Centroid 地図上のポップアップ表示位置
type Centroid struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// NewPolygonGeometry orb.Polygon から Geometry を作成
func NewPolygonGeometry(p orb.Polygon) Geometry {
	return Geometry{shape: p}
}

// NewMultiPolygonGeometry orb.MultiPolygon から Geometry を作成
func NewMultiPolygonGeometry(mp orb.MultiPolygon) Geometry {
	return Geometry{shape: mp}
}

// ParseGeometry GeoJSON ジオメトリをパースする
// Polygon / MultiPolygon 以外の種別はバリデーションエラーになる
func ParseGeometry(data []byte) (Geometry, error) {
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return Geometry{}, NewValidationError("geometry", "invalid GeoJSON geometry: "+err.Error())
	}

	switch shape := g.Coordinates.(type) {
	case orb.Polygon:
		return Geometry{shape: shape}, nil
	case orb.MultiPolygon:
		return Geometry{shape: shape}, nil
	default:
		return Geometry{}, NewValidationError("geometry", fmt.Sprintf("type must be Polygon or MultiPolygon, got %q", g.Type))
	}
}

// Type ジオメトリ種別を返す（空の場合は空文字）
func (g Geometry) Type() GeometryType {
	switch g.shape.(type) {
	case orb.Polygon:
		return GeometryPolygon
	case orb.MultiPolygon:
		return GeometryMultiPolygon
	}
	return ""
}

// IsZero ジオメトリが未設定かどうか
func (g Geometry) IsZero() bool {
	return g.shape == nil
}

// Orb 内部の orb.Geometry を返す
func (g Geometry) Orb() orb.Geometry {
	return g.shape
}

// Polygons Polygon / MultiPolygon を構成するポリゴンの一覧
func (g Geometry) Polygons() []orb.Polygon {
	switch shape := g.shape.(type) {
	case orb.Polygon:
		return []orb.Polygon{shape}
	case orb.MultiPolygon:
		return []orb.Polygon(shape)
	}
	return nil
}

// Validate リングの構造と座標範囲を検証する
func (g Geometry) Validate() error {
	polygons := g.Polygons()
	if len(polygons) == 0 {
		return NewValidationError("geometry", "geometry is required and must contain at least one polygon")
	}

	for pi, polygon := range polygons {
		if len(polygon) == 0 {
			return NewValidationError("geometry", fmt.Sprintf("polygon %d has no rings", pi))
		}
		for ri, ring := range polygon {
			if len(ring) < minRingPoints {
				return NewValidationError("geometry", fmt.Sprintf("polygon %d ring %d must have at least %d positions", pi, ri, minRingPoints))
			}
			if !ring.Closed() {
				return NewValidationError("geometry", fmt.Sprintf("polygon %d ring %d is not closed (first and last positions differ)", pi, ri))
			}
			for _, p := range ring {
				if p.Lon() < -180 || p.Lon() > 180 || p.Lat() < -90 || p.Lat() > 90 {
					return NewValidationError("geometry", fmt.Sprintf("polygon %d ring %d has out-of-range position [%g, %g]", pi, ri, p.Lon(), p.Lat()))
				}
			}
		}
	}
	return nil
}

// Centroid 最初のポリゴンの外周リングの座標平均
// 閉じるための最終点も平均に含める
func (g Geometry) Centroid() Centroid {
	polygons := g.Polygons()
	if len(polygons) == 0 || len(polygons[0]) == 0 || len(polygons[0][0]) == 0 {
		return defaultMapCenter
	}

	outer := polygons[0][0]
	var sumLng, sumLat float64
	for _, p := range outer {
		sumLng += p.Lon()
		sumLat += p.Lat()
	}
	n := float64(len(outer))
	return Centroid{Longitude: sumLng / n, Latitude: sumLat / n}
}

// Bound 全リングを含む境界ボックス
func (g Geometry) Bound() orb.Bound {
	if g.shape == nil {
		return orb.Bound{}
	}
	return g.shape.Bound()
}

// BBox GeoJSON の bbox 形式 [minLng, minLat, maxLng, maxLat]
func (g Geometry) BBox() [4]float64 {
	b := g.Bound()
	return [4]float64{b.Min.Lon(), b.Min.Lat(), b.Max.Lon(), b.Max.Lat()}
}

// MarshalJSON GeoJSON ジオメトリとして出力
func (g Geometry) MarshalJSON() ([]byte, error) {
	if g.shape == nil {
		return []byte("null"), nil
	}
	return geojson.NewGeometry(g.shape).MarshalJSON()
}

// UnmarshalJSON GeoJSON ジオメトリを読み込む
func (g *Geometry) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*g = Geometry{}
		return nil
	}
	parsed, err := ParseGeometry(data)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Value JSONB カラムへの書き込み
func (g Geometry) Value() (driver.Value, error) {
	if g.shape == nil {
		return nil, nil
	}
	data, err := g.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan JSONB カラムからの読み込み
func (g *Geometry) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*g = Geometry{}
		return nil
	case []byte:
		return g.UnmarshalJSON(v)
	case string:
		return g.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("geometry: cannot scan %T", src)
	}
}

var (
	_ json.Marshaler   = Geometry{}
	_ json.Unmarshaler = (*Geometry)(nil)
	_ driver.Valuer    = Geometry{}
)
