package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugKey(t *testing.T) {
	assert.Equal(t, "media-team", SlugKey("Media Team"))
	assert.Equal(t, "media-team", SlugKey("  Media   Team  "))
	assert.Equal(t, "marketing", SlugKey("Marketing"))
	assert.Equal(t, "", SlugKey(""))
}

func TestUniqueStrings(t *testing.T) {
	got := UniqueStrings([]string{"b", "a", "b", "", "c", "a"})
	assert.Equal(t, []string{"a", "b", "c"}, got)

	assert.Empty(t, UniqueStrings(nil))
	assert.Empty(t, UniqueStrings([]string{"", ""}))
}

func TestContainsString(t *testing.T) {
	values := []string{"1165706299393183754", "42"}
	assert.True(t, ContainsString(values, "42"))
	assert.False(t, ContainsString(values, "7"))
	assert.False(t, ContainsString(nil, "7"))
}
