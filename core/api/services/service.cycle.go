package services

import (
	"context"
	"time"

	"msa_center/core/api/dto"
	"msa_center/core/logger"
	"msa_center/core/utility"
)

// CycleInfoSource là nguồn cycle-info từ backend workload API
// Implement bởi client.ApiClient
type CycleInfoSource interface {
	GetCycleInfo(ctx context.Context) (*dto.CycleInfo, error)
}

// CycleService tính toán chu kỳ development 14 ngày
// Mốc epoch là ngày bắt đầu chu kỳ số 0; mọi ngày trước epoch rơi vào
// chu kỳ số âm (floor division, không truncate về 0)
type CycleService struct {
	epoch      time.Time // midnight local
	lengthDays int
	source     CycleInfoSource
}

// NewCycleService tạo service với mốc epoch YYYY-MM-DD và độ dài chu kỳ
func NewCycleService(epochDate string, lengthDays int, source CycleInfoSource) (*CycleService, error) {
	epoch, err := utility.ParseLocalDate(epochDate)
	if err != nil {
		return nil, err
	}
	if lengthDays <= 0 {
		lengthDays = 14
	}
	return &CycleService{
		epoch:      utility.NormalizeLocalMidnight(epoch),
		lengthDays: lengthDays,
		source:     source,
	}, nil
}

// CycleNumberOf trả về số thứ tự chu kỳ chứa ngày t (0-indexed từ epoch)
// Ngày trước epoch cho số âm: floor(-1/14) = -1, không phải 0
func (s *CycleService) CycleNumberOf(t time.Time) int {
	days := utility.DaysBetween(s.epoch, t)
	return floorDiv(days, s.lengthDays)
}

// CycleBounds trả về khoảng ngày [start, end] inclusive của chu kỳ số n
func (s *CycleService) CycleBounds(n int) (time.Time, time.Time) {
	start := utility.AddDaysLocal(s.epoch, n*s.lengthDays)
	end := utility.AddDaysLocal(start, s.lengthDays-1)
	return start, end
}

// Highlight phân loại ba pha chu kỳ quanh một ngày tham chiếu
// Chiều xuôi: ngày tham chiếu thuộc pha request, production và posting là
// hai chu kỳ kế tiếp. Chiều ngược (reversed): ngày tham chiếu thuộc pha
// posting, request và production là hai chu kỳ trước đó
func (s *CycleService) Highlight(ref time.Time, reversed bool) dto.CycleHighlight {
	n := s.CycleNumberOf(ref)

	requestN, productionN, postingN := n, n+1, n+2
	if reversed {
		requestN, productionN, postingN = n-2, n-1, n
	}

	return dto.CycleHighlight{
		ReferenceDate: utility.FormatLocalYMD(utility.NormalizeLocalMidnight(ref)),
		Reversed:      reversed,
		Request:       s.window(requestN),
		Production:    s.window(productionN),
		Posting:       s.window(postingN),
	}
}

// NextCycleAfter suy ra chu kỳ development kế tiếp từ chu kỳ hiện tại
// Chu kỳ mới bắt đầu sau khi cửa sổ posting 14 ngày của chu kỳ hiện tại
// khép lại: devEnd + 14 ngày posting + 1 ngày
func (s *CycleService) NextCycleAfter(current *dto.DevelopmentCycle) (*dto.DevelopmentCycle, error) {
	devEnd, err := utility.ParseLocalDate(current.DevelopmentEnd)
	if err != nil {
		return nil, err
	}
	nextStart := utility.AddDaysLocal(devEnd, s.lengthDays+1)
	nextEnd := utility.AddDaysLocal(nextStart, s.lengthDays-1)
	return &dto.DevelopmentCycle{
		CycleNumber:      current.CycleNumber + 1,
		DevelopmentStart: utility.FormatLocalYMD(nextStart),
		DevelopmentEnd:   utility.FormatLocalYMD(nextEnd),
	}, nil
}

// LocalCycleInfo tính cycle-info thuần local khi backend không có dữ liệu
// CycleNumber hiển thị 1-indexed (chu kỳ chứa epoch là chu kỳ 1)
func (s *CycleService) LocalCycleInfo(today time.Time) *dto.CycleInfo {
	n := s.CycleNumberOf(today)
	start, end := s.CycleBounds(n)

	current := &dto.DevelopmentCycle{
		CycleNumber:      n + 1,
		DevelopmentStart: utility.FormatLocalYMD(start),
		DevelopmentEnd:   utility.FormatLocalYMD(end),
	}
	next, err := s.NextCycleAfter(current)
	if err != nil {
		next = nil
	}
	return &dto.CycleInfo{
		CurrentDevelopmentCycle: current,
		NextDevelopmentCycle:    next,
	}
}

// Resolve lấy cycle-info từ backend, thiếu phần nào tự tính phần đó
// Backend lỗi hoặc trả rỗng thì dùng toàn bộ tính toán local, không propagate lỗi
func (s *CycleService) Resolve(ctx context.Context, today time.Time) *dto.CycleInfo {
	if s.source != nil {
		info, err := s.source.GetCycleInfo(ctx)
		if err == nil && info != nil && info.CurrentDevelopmentCycle != nil {
			if info.NextDevelopmentCycle == nil {
				if next, derr := s.NextCycleAfter(info.CurrentDevelopmentCycle); derr == nil {
					info.NextDevelopmentCycle = next
				}
			}
			return info
		}
		if err != nil {
			logger.GetAppLogger().WithError(err).Warn("Cycle-info backend không khả dụng, dùng tính toán local")
		}
	}
	return s.LocalCycleInfo(today)
}

// Progress tính tiến độ của một chu kỳ so với ngày today
// daysElapsed là số ngày đã trôi qua kể từ ngày bắt đầu (ngày đầu tiên = 0);
// mọi giá trị clamp vào [0, totalDays]
func (s *CycleService) Progress(cycle *dto.DevelopmentCycle, today time.Time) (*dto.CycleProgress, error) {
	start, err := utility.ParseLocalDate(cycle.DevelopmentStart)
	if err != nil {
		return nil, err
	}
	end, err := utility.ParseLocalDate(cycle.DevelopmentEnd)
	if err != nil {
		return nil, err
	}

	total := utility.DaysBetween(start, end) + 1
	elapsed := utility.DaysBetween(start, today)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > total {
		elapsed = total
	}

	percent := 0
	if total > 0 {
		percent = elapsed * 100 / total
	}

	return &dto.CycleProgress{
		TotalDays:     total,
		DaysElapsed:   elapsed,
		DaysRemaining: total - elapsed,
		Percent:       percent,
	}, nil
}

// window build CycleWindow cho chu kỳ số n
func (s *CycleService) window(n int) *dto.CycleWindow {
	start, end := s.CycleBounds(n)
	return &dto.CycleWindow{
		CycleNumber: n,
		Start:       utility.FormatLocalYMD(start),
		End:         utility.FormatLocalYMD(end),
	}
}

// floorDiv chia lấy sàn: -1/14 → -1 thay vì 0 như phép chia nguyên của Go
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
