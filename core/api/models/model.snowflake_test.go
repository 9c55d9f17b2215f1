package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SnowflakeID
		wantErr bool
	}{
		{"chuỗi thập phân", `"1386802873436733563"`, "1386802873436733563", false},
		{"số nguyên nhỏ", `1234`, "1234", false},
		{"null", `null`, "", false},
		{"chuỗi rỗng", `""`, "", false},
		{"số thực", `12.5`, "", true},
		{"số âm", `-5`, "", true},
		{"boolean", `true`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id SnowflakeID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestSnowflakeID_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(SnowflakeID("1386802873436733563"))
	require.NoError(t, err)
	assert.Equal(t, `"1386802873436733563"`, string(out))

	// Rỗng serialize thành null, không phải ""
	out, err = json.Marshal(SnowflakeID(""))
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestSnowflakeID_StringPtr(t *testing.T) {
	id := SnowflakeID("1234")
	ptr := id.StringPtr()
	require.NotNil(t, ptr)
	assert.Equal(t, "1234", *ptr)

	assert.Nil(t, SnowflakeID("").StringPtr())
}

func TestSnowflakeID_Valid(t *testing.T) {
	assert.True(t, SnowflakeID("1386802873436733563").Valid())
	assert.False(t, SnowflakeID("").Valid())
	assert.False(t, SnowflakeID("abc").Valid())
	assert.False(t, SnowflakeID("12a34").Valid())
}
