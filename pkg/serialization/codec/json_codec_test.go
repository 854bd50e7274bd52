package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Zeta  string            `json:"zeta"`
	Alpha uint32            `json:"alpha"`
	Tags  map[string]string `json:"tags"`
}

func TestJSONCodecCanonical(t *testing.T) {
	c := NewJSONCodec()

	b, err := c.Marshal(record{Zeta: "z", Alpha: 1, Tags: map[string]string{"b": "2", "a": "1"}})
	require.NoError(t, err)
	// keys sorted at every level, no insignificant whitespace
	assert.Equal(t, `{"alpha":1,"tags":{"a":"1","b":"2"},"zeta":"z"}`, string(b))

	var out record
	require.NoError(t, c.Unmarshal(b, &out))
	assert.Equal(t, "z", out.Zeta)
	assert.Equal(t, "1", out.Tags["a"])
}

func TestJSONCodecStrict(t *testing.T) {
	data := []byte(`{"alpha":1,"unexpected":true}`)

	var lenient record
	require.NoError(t, NewJSONCodec().Unmarshal(data, &lenient))

	var strict record
	assert.Error(t, (&JSONCodec{Strict: true}).Unmarshal(data, &strict))
}
