package ijson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Start  int   `json:"start"`
	End    int   `json:"end"`
	Values []int `json:"values"`
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample{Start: -3, End: 3, Values: []int{-1, 2}}, false))
	assert.Equal(t, "{\"start\":-3,\"end\":3,\"values\":[-1,2]}\n", buf.String())

	var got sample
	require.NoError(t, Decode(buf.Bytes(), &got))
	assert.Equal(t, []int{-1, 2}, got.Values)
}

func TestPretty(t *testing.T) {
	out, err := Pretty(map[string]int{"n": 5})
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"n\": 5\n}", out)
}
