package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToAPIStatus(t *testing.T) {
	assert.Equal(t, StatusInQueue, ToAPIStatus("📥 In Queue"))
	assert.Equal(t, StatusAwaitingPosting, ToAPIStatus("⏳ Awaiting Posting"))
	// Alias cũ vẫn ánh xạ về AWAITING_POSTING
	assert.Equal(t, StatusAwaitingPosting, ToAPIStatus("⏳ Awaiting Approval"))
	// Enum tự ánh xạ
	assert.Equal(t, StatusDone, ToAPIStatus(StatusDone))
	// Giá trị chưa biết đi qua nguyên vẹn
	assert.Equal(t, "SOMETHING_NEW", ToAPIStatus("SOMETHING_NEW"))
}

func TestToDisplayStatus(t *testing.T) {
	assert.Equal(t, "📥 In Queue", ToDisplayStatus(StatusInQueue))
	assert.Equal(t, "🚫 Blocked", ToDisplayStatus(StatusBlocked))
	assert.Equal(t, "SOMETHING_NEW", ToDisplayStatus("SOMETHING_NEW"))
}

func TestStatusRoundTrip(t *testing.T) {
	for _, api := range CanonicalStatuses() {
		display := ToDisplayStatus(api)
		assert.NotEqual(t, api, display, "mỗi enum phải có dạng hiển thị riêng")
		assert.Equal(t, api, ToAPIStatus(display))
	}
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "#28a745", StatusColor(StatusDone))
	assert.Equal(t, "#28a745", StatusColor("✅ Done"))
	// Trạng thái chưa biết dùng màu mặc định
	assert.Equal(t, "#6c757d", StatusColor("SOMETHING_NEW"))
}

func TestTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus("✅ Done"))
	assert.True(t, IsTerminalStatus(StatusBlocked))
	assert.False(t, IsTerminalStatus("🔄 In Progress"))
	assert.True(t, IsDoneStatus(StatusDone))
	assert.False(t, IsDoneStatus(StatusBlocked))
	assert.True(t, IsBlockedStatus("🚫 Blocked"))
}

func TestFormatRequestType(t *testing.T) {
	assert.Equal(t, "General", FormatRequestType(""))
	assert.Equal(t, "📱 POST", FormatRequestType("POST"))
	assert.Equal(t, "📹 REEL", FormatRequestType("REEL"))
	assert.Equal(t, "STORY", FormatRequestType("STORY"))
}
