package helper

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"CityNotes-App/internal/domain/model"
)

// 境界データで「値なし」を表すプレースホルダ
const missingPropertyValue = "NA"

// 境界データの名前プロパティ（優先順）
var (
	nameKeys       = []string{"name", "NAME_1"}
	arabicNameKeys = []string{"name_ar", "NL_NAME_1"}
)

// CityToFeature 都市を地図レイヤー用の GeoJSON Feature に変換する
func CityToFeature(city *model.City) *geojson.Feature {
	f := geojson.NewFeature(city.Geometry.Orb())
	f.ID = city.ID
	f.BBox = geojson.NewBBox(city.Geometry.Bound())
	f.Properties["name"] = city.Name
	f.Properties["nameArabic"] = city.NameArabic
	f.Properties["noteCount"] = city.NoteCount
	f.Properties["centroid"] = city.Geometry.Centroid()
	return f
}

// CitiesToFeatureCollection 都市一覧を FeatureCollection にまとめる
// 境界が未設定の都市は地図に描けないため含めない
func CitiesToFeatureCollection(cities []model.City) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := range cities {
		if cities[i].Geometry.IsZero() {
			continue
		}
		fc.Append(CityToFeature(&cities[i]))
	}
	return fc
}

// GeometryFromOrb orb のジオメトリを都市境界に変換する
func GeometryFromOrb(g orb.Geometry) (model.Geometry, error) {
	switch shape := g.(type) {
	case orb.Polygon:
		return model.NewPolygonGeometry(shape), nil
	case orb.MultiPolygon:
		return model.NewMultiPolygonGeometry(shape), nil
	case nil:
		return model.Geometry{}, model.NewValidationError("geometry", "geometry is required")
	default:
		return model.Geometry{}, model.NewValidationError("geometry", fmt.Sprintf("type must be Polygon or MultiPolygon, got %q", g.GeoJSONType()))
	}
}

// FeatureToCityInput 行政境界の Feature を都市の作成リクエストに変換する
// 名前は name または NAME_1、アラビア語名は name_ar または NL_NAME_1 から取得する
func FeatureToCityInput(f *geojson.Feature) (*model.CityInput, error) {
	name := firstProperty(f.Properties, nameKeys)
	if name == "" {
		return nil, model.NewValidationError("name", "feature has no name property")
	}

	geometry, err := GeometryFromOrb(f.Geometry)
	if err != nil {
		return nil, err
	}

	in := &model.CityInput{
		Name:       name,
		NameArabic: firstProperty(f.Properties, arabicNameKeys),
		Geometry:   &geometry,
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

func firstProperty(props geojson.Properties, keys []string) string {
	for _, key := range keys {
		v, ok := props[key].(string)
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		if v != "" && v != missingPropertyValue {
			return v
		}
	}
	return ""
}
