package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateUnmarshal(t *testing.T) {
	valid := map[string]int{
		`4`:     4,
		`"4"`:   4,
		`" 7 "`: 7,
		`-2`:    -2,
		`3.0`:   3,
	}
	for in, want := range valid {
		var c coordinate
		require.NoError(t, json.Unmarshal([]byte(in), &c), in)
		assert.Equal(t, coordinate(want), c, in)
	}

	for _, in := range []string{`"abc"`, `""`, `4.9`, `"3.7"`, `"NaN"`, `"Inf"`, `1e300`, `true`, `[]`} {
		var c coordinate
		assert.Error(t, json.Unmarshal([]byte(in), &c), in)
	}
}

func TestFlexIntUnmarshal(t *testing.T) {
	cases := map[string]flexInt{
		`25`:     25,
		`"30"`:   30,
		`12.7`:   12,
		`"abc"`:  0,
		`""`:     0,
		`"NaN"`:  0,
		`1e300`:  2147483647,
		`-1e300`: -2147483648,
	}
	for in, want := range cases {
		var f flexInt
		require.NoError(t, json.Unmarshal([]byte(in), &f), in)
		assert.Equal(t, want, f, in)
	}
}
