package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeList(t *testing.T) {
	t.Run("WellFormed", func(t *testing.T) {
		data := []byte(`[
			{"id":"p1","title":"Rose Serum","price":24.5,"stock":10},
			{"id":"p2","title":"Matte Lipstick","price":"12","stock":"3"}
		]`)

		ps, dropped, err := DecodeList[ProductV1](data)
		require.NoError(t, err)
		assert.Zero(t, dropped)
		require.Len(t, ps, 2)
		assert.Equal(t, Number(12), ps[1].Price)
		assert.Equal(t, 3, ps[1].StockOrDefault())
	})

	t.Run("DropsMalformedElements", func(t *testing.T) {
		data := []byte(`[
			{"id":"p1","title":"Rose Serum","price":24.5},
			{"title":"no id","price":5},
			{"id":"p3","title":"Free","price":0},
			"not an object",
			{"id":"p4","title":"Night Cream","price":"oops"}
		]`)

		ps, dropped, err := DecodeList[ProductV1](data)
		require.NoError(t, err)
		assert.Equal(t, 4, dropped)
		require.Len(t, ps, 1)
		assert.Equal(t, "p1", ps[0].ID)
	})

	t.Run("NonArrayFails", func(t *testing.T) {
		for _, data := range []string{`{"id":"p1"}`, `not json`, `42`} {
			_, _, err := DecodeList[ProductV1]([]byte(data))
			assert.ErrorIs(t, err, ErrNotArray, data)
		}
	})

	t.Run("EmptyArray", func(t *testing.T) {
		ps, dropped, err := DecodeList[ProductV1]([]byte(`[]`))
		require.NoError(t, err)
		assert.Zero(t, dropped)
		assert.Empty(t, ps)
	})
}

func TestDecodeRecord(t *testing.T) {
	t.Run("WellFormed", func(t *testing.T) {
		s, ok := DecodeRecord[SessionV1]([]byte(
			`{"name":"Mira","email":"mira@example.com","role":"admin"}`,
		))
		require.True(t, ok)
		assert.Equal(t, "mira@example.com", s.Email)
	})

	t.Run("MalformedIsAbsent", func(t *testing.T) {
		_, ok := DecodeRecord[SessionV1]([]byte(`{"role":"root"}`))
		assert.False(t, ok)

		_, ok = DecodeRecord[SessionV1]([]byte(`nope`))
		assert.False(t, ok)
	})
}

func TestOrderLegacyIDs(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"Canonical", `{"id":"o1","status":"PENDING"}`, "o1"},
		{"LegacyOrderID", `{"orderId":"o2","status":"PENDING"}`, "o2"},
		{"LegacyCode", `{"code":"o3","status":"PENDING"}`, "o3"},
		{"LegacyMongo", `{"_id":"o4","status":"PENDING"}`, "o4"},
		{"CanonicalWins", `{"id":"o5","orderId":"legacy","status":"PENDING"}`, "o5"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			os, dropped, err := DecodeList[OrderV1]([]byte("[" + tc.data + "]"))
			require.NoError(t, err)
			require.Zero(t, dropped)
			require.Len(t, os, 1)
			assert.Equal(t, tc.want, os[0].CanonicalID())
		})
	}

	t.Run("NoIDAtAllIsDropped", func(t *testing.T) {
		_, dropped, err := DecodeList[OrderV1]([]byte(`[{"status":"PENDING"}]`))
		require.NoError(t, err)
		assert.Equal(t, 1, dropped)
	})

	t.Run("UnknownStatusIsDropped", func(t *testing.T) {
		_, dropped, err := DecodeList[OrderV1]([]byte(`[{"id":"o1","status":"ARCHIVED"}]`))
		require.NoError(t, err)
		assert.Equal(t, 1, dropped)
	})
}
