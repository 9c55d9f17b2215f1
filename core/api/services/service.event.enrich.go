package services

import (
	"context"

	"msa_center/core/api/dto"
	"msa_center/core/api/models"
	"msa_center/core/common"
	"msa_center/core/logger"
	"msa_center/core/utility"
)

// DiscordDirectory là nguồn tra cứu tên hiển thị Discord (user và role)
// Implement bởi client.ApiClient; interface để test với fake
type DiscordDirectory interface {
	BulkLookupUsers(ctx context.Context, ids []string) (dto.BulkLookupResult, error)
	BulkLookupRoles(ctx context.Context, ids []string) (dto.BulkLookupResult, error)
}

// EnrichService điền tên hiển thị cho batch event đã chuẩn hóa
// Bất biến: mỗi batch tối đa một call bulk user + một call bulk role,
// bất kể batch có bao nhiêu event
type EnrichService struct {
	directory DiscordDirectory
}

// NewEnrichService tạo service enrichment mới
func NewEnrichService(directory DiscordDirectory) *EnrichService {
	return &EnrichService{directory: directory}
}

// EnrichEvents resolve tên cho toàn bộ user ID và department role ID trong
// batch. Tra cứu thất bại không làm hỏng batch: mọi event vẫn nhận nhãn
// fallback ("User {id}", "Role {id}") và hàm trả ErrEnrichmentPartial để
// caller log. Gọi lại trên batch đã enrich cho kết quả y hệt
func (s *EnrichService) EnrichEvents(ctx context.Context, events []*models.Event) error {
	if len(events) == 0 {
		return nil
	}

	userIDs := make([]string, 0, len(events)*3)
	roleIDs := make([]string, 0, len(events))
	for _, e := range events {
		userIDs = appendID(userIDs, e.RequesterID)
		userIDs = appendID(userIDs, e.AssignedToID)
		userIDs = appendID(userIDs, e.AdditionalAssigneeID)
		roleIDs = appendID(roleIDs, e.RequesterDepartmentID)
	}
	userIDs = utility.UniqueStrings(userIDs)
	roleIDs = utility.UniqueStrings(roleIDs)

	var partial bool

	userNames := dto.BulkLookupResult{}
	if len(userIDs) > 0 {
		names, err := s.directory.BulkLookupUsers(ctx, userIDs)
		if err != nil {
			logger.GetAppLogger().WithError(err).WithField("count", len(userIDs)).Warn("Bulk user lookup failed, dùng nhãn ID")
			partial = true
		} else {
			userNames = names
		}
	}

	roleNames := dto.BulkLookupResult{}
	if len(roleIDs) > 0 {
		names, err := s.directory.BulkLookupRoles(ctx, roleIDs)
		if err != nil {
			logger.GetAppLogger().WithError(err).WithField("count", len(roleIDs)).Warn("Bulk role lookup failed, dùng nhãn ID")
			partial = true
		} else {
			roleNames = names
		}
	}

	for _, e := range events {
		e.RequesterName = resolveName(e.RequesterID, userNames, "User")
		e.AssignedToName = resolveName(e.AssignedToID, userNames, "User")
		e.AdditionalAssigneeName = resolveName(e.AdditionalAssigneeID, userNames, "User")

		e.RequesterDepartmentName = resolveName(e.RequesterDepartmentID, roleNames, "Role")
		if e.RequesterDepartmentName != nil {
			e.Department = *e.RequesterDepartmentName
			e.DepartmentKey = departmentSlug(*e.RequesterDepartmentName)
		}
	}

	if partial {
		return common.ErrEnrichmentPartial
	}
	return nil
}

// appendID gom ID khác null vào danh sách tra cứu
func appendID(ids []string, id *string) []string {
	if id == nil || *id == "" {
		return ids
	}
	return append(ids, *id)
}

// resolveName tra tên theo ID: có trong map thì lấy tên, không thì nhãn
// "{kind} {id}". ID null trả null để render layer tự chọn sentinel
func resolveName(id *string, names dto.BulkLookupResult, kind string) *string {
	if id == nil || *id == "" {
		return nil
	}
	if name, ok := names[*id]; ok && name != "" {
		return &name
	}
	fallback := kind + " " + *id
	return &fallback
}
