package codec_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userstore/internal/codec"
)

type profile struct {
	Name  string   `json:"name" yaml:"name"`
	Score int      `json:"score" yaml:"score"`
	Tags  []string `json:"tags" yaml:"tags"`
}

func allCodecs() map[string]codec.Codec[profile] {
	return map[string]codec.Codec[profile]{
		"json":        codec.JSON[profile]{},
		"yaml":        codec.YAML[profile]{},
		"framed-json": codec.Framed[profile]{Inner: codec.JSON[profile]{}},
		"framed-yaml": codec.Framed[profile]{Inner: codec.YAML[profile]{}},
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	want := profile{Name: "alice", Score: 42, Tags: []string{"admin", "ops"}}
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, c.Encode(&buf, want))

			got, err := c.Decode(&buf)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCodecs_EmptyInputFails(t *testing.T) {
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			_, err := c.Decode(bytes.NewReader(nil))
			assert.Error(t, err)
		})
	}
}

func TestJSON_RejectsTrailingData(t *testing.T) {
	_, err := codec.JSON[profile]{}.Decode(bytes.NewReader([]byte(`{"name":"a"} {"name":"b"}`)))
	assert.Error(t, err)
}

func TestJSON_RejectsTruncatedDocument(t *testing.T) {
	_, err := codec.JSON[profile]{}.Decode(bytes.NewReader([]byte(`{"name":"a",`)))
	assert.Error(t, err)
}

func TestFramed_DetectsCorruption(t *testing.T) {
	c := codec.Framed[profile]{Inner: codec.JSON[profile]{}}
	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, profile{Name: "bob", Score: 7}))
	good := buf.Bytes()

	tests := []struct {
		name   string
		mutate func([]byte) []byte
	}{
		{name: "truncated", mutate: func(b []byte) []byte { return b[:len(b)-5] }},
		{name: "too short", mutate: func(b []byte) []byte { return b[:6] }},
		{name: "trailing byte", mutate: func(b []byte) []byte { return append(b, 0) }},
		{name: "bad magic", mutate: func(b []byte) []byte { b[0] = 'X'; return b }},
		{name: "flipped payload bit", mutate: func(b []byte) []byte { b[10] ^= 0x01; return b }},
		{name: "flipped checksum bit", mutate: func(b []byte) []byte { b[len(b)-1] ^= 0x80; return b }},
		{name: "garbage", mutate: func([]byte) []byte { return []byte("this is not a frame at all, not even close") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.mutate(append([]byte(nil), good...))
			_, err := c.Decode(bytes.NewReader(b))
			assert.ErrorIs(t, err, codec.ErrCorruptFrame)
		})
	}
}

func TestByName(t *testing.T) {
	c, err := codec.ByName[profile]("yaml", true)
	require.NoError(t, err)
	assert.IsType(t, codec.Framed[profile]{}, c)

	c, err = codec.ByName[profile]("", false)
	require.NoError(t, err)
	assert.IsType(t, codec.JSON[profile]{}, c)

	_, err = codec.ByName[profile]("gob", false)
	assert.Error(t, err)
}

func TestJSON_KeepsLargeIntegersExact(t *testing.T) {
	c := codec.JSON[any]{}

	v, err := c.Decode(bytes.NewReader([]byte(`{"id": 9007199254740993}`)))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": json.Number("9007199254740993")}, v)

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, v))
	assert.Contains(t, buf.String(), `"id": 9007199254740993`)
}
