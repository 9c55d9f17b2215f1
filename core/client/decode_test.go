package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msa_center/core/api/models"
	"msa_center/core/common"
)

func TestRepairLargeIDs_ScalarField(t *testing.T) {
	raw := []byte(`{"channelID": 1386802873436733563, "title": "Test"}`)

	fixed := RepairLargeIDs(raw)

	assert.Contains(t, string(fixed), `"channelID":"1386802873436733563"`)
	assert.Contains(t, string(fixed), `"title": "Test"`)
}

func TestRepairLargeIDs_AllKnownFields(t *testing.T) {
	raw := []byte(`{
		"channelID": 1386802873436733563,
		"requesterID": 987654321098765432,
		"assignedToID": 111111111111111111,
		"additionalAsigneeID": 222222222222222222,
		"requesterDepartmentID": 333333333333333333,
		"requesterDepartmentid": 444444444444444444,
		"guildId": 1165706299393183754
	}`)

	fixed := string(RepairLargeIDs(raw))

	assert.Contains(t, fixed, `"channelID":"1386802873436733563"`)
	assert.Contains(t, fixed, `"requesterID":"987654321098765432"`)
	assert.Contains(t, fixed, `"assignedToID":"111111111111111111"`)
	assert.Contains(t, fixed, `"additionalAsigneeID":"222222222222222222"`)
	assert.Contains(t, fixed, `"requesterDepartmentID":"333333333333333333"`)
	assert.Contains(t, fixed, `"requesterDepartmentid":"444444444444444444"`)
	assert.Contains(t, fixed, `"guildId":"1165706299393183754"`)
}

func TestRepairLargeIDs_ShortNumberUntouched(t *testing.T) {
	// Dưới 15 chữ số vẫn biểu diễn chính xác được trong double
	raw := []byte(`{"channelID": 12345678901234, "count": 7}`)

	fixed := RepairLargeIDs(raw)

	assert.Equal(t, string(raw), string(fixed))
}

func TestRepairLargeIDs_NonIDFieldUntouched(t *testing.T) {
	// Số lớn ở field ngoài danh sách ID không được đụng tới
	raw := []byte(`{"viewCount": 123456789012345678}`)

	fixed := RepairLargeIDs(raw)

	assert.Equal(t, string(raw), string(fixed))
}

func TestRepairLargeIDs_ArrayElements(t *testing.T) {
	raw := []byte(`{"roleId": [123456789012345678, 987654321098765432]}`)

	fixed := RepairLargeIDs(raw)

	assert.Equal(t, `{"roleId":["123456789012345678","987654321098765432"]}`, string(fixed))
}

func TestRepairLargeIDs_ArrayAlreadyQuoted(t *testing.T) {
	// Phần tử đã là chuỗi không được quote hai lần
	raw := []byte(`{"userId": ["123456789012345678", 987654321098765432]}`)

	fixed := RepairLargeIDs(raw)

	assert.Equal(t, `{"userId":["123456789012345678","987654321098765432"]}`, string(fixed))
}

func TestRepairLargeIDs_NullAndStringValues(t *testing.T) {
	raw := []byte(`{"assignedToID": null, "requesterID": "123456789012345678"}`)

	fixed := RepairLargeIDs(raw)

	assert.Equal(t, string(raw), string(fixed))
}

func TestDecodeResponse_PreservesPrecision(t *testing.T) {
	// Giá trị này bị float64 làm tròn thành ...564 nếu parse trực tiếp
	raw := []byte(`{"channelID": 1386802873436733563, "title": "Post", "status": "IN_QUEUE"}`)

	var req models.MarketingRequest
	err := DecodeResponse(200, raw, &req)

	require.NoError(t, err)
	assert.Equal(t, models.SnowflakeID("1386802873436733563"), req.ChannelID)
	assert.Equal(t, "Post", req.Title)
}

func TestDecodeResponse_ShortNumericID(t *testing.T) {
	// ID ngắn vẫn tới dưới dạng số, SnowflakeID nhận cả hai dạng
	raw := []byte(`{"channelID": 1234, "requesterID": null}`)

	var req models.MarketingRequest
	err := DecodeResponse(200, raw, &req)

	require.NoError(t, err)
	assert.Equal(t, models.SnowflakeID("1234"), req.ChannelID)
	assert.True(t, req.RequesterID.IsZero())
}

func TestDecodeResponse_MalformedKeepsOriginalBody(t *testing.T) {
	raw := []byte(`<html>502 Bad Gateway</html>`)

	var req models.MarketingRequest
	err := DecodeResponse(502, raw, &req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrMalformedResponse))

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	details, ok := customErr.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 502, details["backendStatus"])
	assert.Contains(t, details["rawBody"], "502 Bad Gateway")
}

func TestDecodeResponse_EmptyBodyOrNilTarget(t *testing.T) {
	assert.NoError(t, DecodeResponse(200, nil, &struct{}{}))
	assert.NoError(t, DecodeResponse(200, []byte(`{}`), nil))
}
