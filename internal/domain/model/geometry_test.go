package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cairoPolygon = `{"type":"Polygon","coordinates":[[[31.2357,29.9844],[31.3557,29.9844],[31.3557,30.1244],[31.2357,30.1244],[31.2357,29.9844]]]}`

func TestParseGeometry(t *testing.T) {
	t.Run("Polygon", func(t *testing.T) {
		g, err := ParseGeometry([]byte(cairoPolygon))
		require.NoError(t, err)
		assert.Equal(t, GeometryPolygon, g.Type())
		require.Len(t, g.Polygons(), 1)
		assert.NoError(t, g.Validate())
	})

	t.Run("MultiPolygon", func(t *testing.T) {
		data := `{"type":"MultiPolygon","coordinates":[
			[[[0,0],[1,0],[1,1],[0,1],[0,0]]],
			[[[10,10],[11,10],[11,11],[10,11],[10,10]]]
		]}`
		g, err := ParseGeometry([]byte(data))
		require.NoError(t, err)
		assert.Equal(t, GeometryMultiPolygon, g.Type())
		assert.Len(t, g.Polygons(), 2)
		assert.NoError(t, g.Validate())
	})

	t.Run("Pointは受け付けない", func(t *testing.T) {
		_, err := ParseGeometry([]byte(`{"type":"Point","coordinates":[31.2,30.0]}`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("不正なJSON", func(t *testing.T) {
		_, err := ParseGeometry([]byte(`{"type":`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestGeometry_Validate(t *testing.T) {
	tests := []struct {
		name  string
		geom  Geometry
		valid bool
	}{
		{
			name:  "閉じた四角形",
			geom:  NewPolygonGeometry(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}),
			valid: true,
		},
		{
			name:  "最小の三角形リング",
			geom:  NewPolygonGeometry(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}),
			valid: true,
		},
		{
			name: "閉じていないリング",
			geom: NewPolygonGeometry(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}),
		},
		{
			name: "頂点が足りないリング",
			geom: NewPolygonGeometry(orb.Polygon{{{0, 0}, {1, 0}, {0, 0}}}),
		},
		{
			name: "リングのないポリゴン",
			geom: NewPolygonGeometry(orb.Polygon{}),
		},
		{
			name: "範囲外の経度",
			geom: NewPolygonGeometry(orb.Polygon{{{0, 0}, {181, 0}, {181, 1}, {0, 0}}}),
		},
		{
			name: "穴のリングが閉じていない",
			geom: NewMultiPolygonGeometry(orb.MultiPolygon{{
				{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
				{{1, 1}, {2, 1}, {2, 2}, {1, 2}},
			}}),
		},
		{
			name: "空のジオメトリ",
			geom: Geometry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.geom.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "geometry", vErr.Field)
		})
	}
}

func TestGeometry_Centroid(t *testing.T) {
	t.Run("外周リングの座標平均（閉じる点を含む）", func(t *testing.T) {
		g := NewPolygonGeometry(orb.Polygon{{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}})
		c := g.Centroid()
		assert.InDelta(t, 0.8, c.Longitude, 1e-9)
		assert.InDelta(t, 0.8, c.Latitude, 1e-9)
	})

	t.Run("MultiPolygonは最初のポリゴンを使う", func(t *testing.T) {
		g := NewMultiPolygonGeometry(orb.MultiPolygon{
			{{{10, 10}, {10, 10}, {10, 10}, {10, 10}}},
			{{{50, 50}, {51, 50}, {51, 51}, {50, 50}}},
		})
		c := g.Centroid()
		assert.Equal(t, Centroid{Longitude: 10, Latitude: 10}, c)
	})

	t.Run("空の場合は既定の地図中心", func(t *testing.T) {
		assert.Equal(t, defaultMapCenter, Geometry{}.Centroid())
	})
}

func TestGeometry_BBox(t *testing.T) {
	g, err := ParseGeometry([]byte(cairoPolygon))
	require.NoError(t, err)
	assert.Equal(t, [4]float64{31.2357, 29.9844, 31.3557, 30.1244}, g.BBox())
}

func TestGeometry_JSONAndSQL(t *testing.T) {
	var in CityInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Cairo","geometry":`+cairoPolygon+`}`), &in))
	require.NotNil(t, in.Geometry)
	assert.Equal(t, GeometryPolygon, in.Geometry.Type())

	value, err := in.Geometry.Value()
	require.NoError(t, err)
	stored, ok := value.(string)
	require.True(t, ok)
	assert.JSONEq(t, cairoPolygon, stored)

	var scanned Geometry
	require.NoError(t, scanned.Scan([]byte(stored)))
	assert.Equal(t, in.Geometry.BBox(), scanned.BBox())

	var null Geometry
	require.NoError(t, json.Unmarshal([]byte(`null`), &null))
	assert.True(t, null.IsZero())

	assert.Error(t, scanned.Scan(42))
}
