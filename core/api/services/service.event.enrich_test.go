package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msa_center/core/api/dto"
	"msa_center/core/api/models"
	"msa_center/core/common"
)

// fakeDirectory đếm số call và trả tên theo map cấu hình sẵn
type fakeDirectory struct {
	users dto.BulkLookupResult
	roles dto.BulkLookupResult

	userCalls int
	roleCalls int
	userIDs   []string
	roleIDs   []string

	userErr error
	roleErr error
}

func (f *fakeDirectory) BulkLookupUsers(ctx context.Context, ids []string) (dto.BulkLookupResult, error) {
	f.userCalls++
	f.userIDs = ids
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.users, nil
}

func (f *fakeDirectory) BulkLookupRoles(ctx context.Context, ids []string) (dto.BulkLookupResult, error) {
	f.roleCalls++
	f.roleIDs = ids
	if f.roleErr != nil {
		return nil, f.roleErr
	}
	return f.roles, nil
}

func strPtr(s string) *string { return &s }

func TestEnrichEvents_OneBulkCallPerIDSet(t *testing.T) {
	dir := &fakeDirectory{
		users: dto.BulkLookupResult{"1": "Alice", "2": "Bob"},
		roles: dto.BulkLookupResult{"10": "Media Team"},
	}
	svc := NewEnrichService(dir)

	events := []*models.Event{
		{RequesterID: strPtr("1"), AssignedToID: strPtr("2"), RequesterDepartmentID: strPtr("10")},
		{RequesterID: strPtr("2"), AdditionalAssigneeID: strPtr("1"), RequesterDepartmentID: strPtr("10")},
		{RequesterID: strPtr("1"), RequesterDepartmentID: strPtr("10")},
	}

	err := svc.EnrichEvents(context.Background(), events)

	require.NoError(t, err)
	// Đúng một call mỗi loại, bất kể số event
	assert.Equal(t, 1, dir.userCalls)
	assert.Equal(t, 1, dir.roleCalls)
	// ID đã dedupe và sort
	assert.Equal(t, []string{"1", "2"}, dir.userIDs)
	assert.Equal(t, []string{"10"}, dir.roleIDs)

	assert.Equal(t, "Alice", *events[0].RequesterName)
	assert.Equal(t, "Bob", *events[0].AssignedToName)
	assert.Equal(t, "Alice", *events[1].AdditionalAssigneeName)
	assert.Equal(t, "Media Team", *events[0].RequesterDepartmentName)
	assert.Equal(t, "Media Team", events[0].Department)
	assert.Equal(t, "media-team", events[0].DepartmentKey)
}

func TestEnrichEvents_MissingIDFallbackLabel(t *testing.T) {
	dir := &fakeDirectory{
		users: dto.BulkLookupResult{"1": "Alice"},
		roles: dto.BulkLookupResult{},
	}
	svc := NewEnrichService(dir)

	events := []*models.Event{
		{RequesterID: strPtr("1"), AssignedToID: strPtr("999"), RequesterDepartmentID: strPtr("55")},
	}

	err := svc.EnrichEvents(context.Background(), events)

	require.NoError(t, err)
	assert.Equal(t, "Alice", *events[0].RequesterName)
	assert.Equal(t, "User 999", *events[0].AssignedToName)
	assert.Equal(t, "Role 55", *events[0].RequesterDepartmentName)
	assert.Equal(t, "Role 55", events[0].Department)
	assert.Equal(t, "role-55", events[0].DepartmentKey)
}

func TestEnrichEvents_LookupFailureIsPartial(t *testing.T) {
	dir := &fakeDirectory{
		roles:   dto.BulkLookupResult{"10": "Media Team"},
		userErr: errors.New("backend down"),
	}
	svc := NewEnrichService(dir)

	events := []*models.Event{
		{RequesterID: strPtr("1"), RequesterDepartmentID: strPtr("10")},
	}

	err := svc.EnrichEvents(context.Background(), events)

	// Lỗi partial: batch vẫn dùng được với nhãn fallback
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrEnrichmentPartial))
	assert.Equal(t, "User 1", *events[0].RequesterName)
	assert.Equal(t, "Media Team", *events[0].RequesterDepartmentName)
}

func TestEnrichEvents_NilIDsStayNil(t *testing.T) {
	dir := &fakeDirectory{}
	svc := NewEnrichService(dir)

	events := []*models.Event{{Title: "no ids", Department: models.DefaultDepartment, DepartmentKey: models.DefaultDepartmentKey}}

	err := svc.EnrichEvents(context.Background(), events)

	require.NoError(t, err)
	// Không có ID nào thì không call mạng
	assert.Equal(t, 0, dir.userCalls)
	assert.Equal(t, 0, dir.roleCalls)
	assert.Nil(t, events[0].RequesterName)
	assert.Equal(t, models.DefaultDepartment, events[0].Department)
}

func TestEnrichEvents_Idempotent(t *testing.T) {
	dir := &fakeDirectory{
		users: dto.BulkLookupResult{"1": "Alice"},
		roles: dto.BulkLookupResult{"10": "Media Team"},
	}
	svc := NewEnrichService(dir)

	events := []*models.Event{
		{RequesterID: strPtr("1"), RequesterDepartmentID: strPtr("10")},
	}

	require.NoError(t, svc.EnrichEvents(context.Background(), events))
	firstName := *events[0].RequesterName
	firstKey := events[0].DepartmentKey

	require.NoError(t, svc.EnrichEvents(context.Background(), events))

	assert.Equal(t, firstName, *events[0].RequesterName)
	assert.Equal(t, firstKey, events[0].DepartmentKey)
}

func TestEnrichEvents_EmptyBatch(t *testing.T) {
	dir := &fakeDirectory{}
	svc := NewEnrichService(dir)

	assert.NoError(t, svc.EnrichEvents(context.Background(), nil))
	assert.Equal(t, 0, dir.userCalls)
}
