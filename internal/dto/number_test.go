package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	cases := []struct {
		raw  string
		want Number
	}{
		{`10`, "10"},
		{`"10"`, "10"},
		{`" 29.7 "`, "29.7"},
		{`null`, ""},
		{`""`, ""},
		{`"lots"`, "lots"},
	}
	for _, tc := range cases {
		var n Number
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &n), tc.raw)
		assert.Equal(t, tc.want, n, tc.raw)
	}
}

func TestNumberIsPositiveInt(t *testing.T) {
	assert.True(t, Number("10").IsPositiveInt())
	assert.True(t, Number("1").IsPositiveInt())
	assert.False(t, Number("0").IsPositiveInt())
	assert.False(t, Number("-3").IsPositiveInt())
	assert.False(t, Number("2.5").IsPositiveInt())
	assert.False(t, Number("lots").IsPositiveInt())
	assert.False(t, Number("").IsPositiveInt())
}

func TestNumberPresent(t *testing.T) {
	assert.False(t, Number("").Present())
	assert.True(t, Number("0").Present())
}
