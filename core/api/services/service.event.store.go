package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"msa_center/core/api/models"
	"msa_center/core/common"
	"msa_center/core/logger"
)

// RequestSource là nguồn dữ liệu request thô. Implement bởi client.ApiClient
type RequestSource interface {
	GetAllRequests(ctx context.Context) ([]models.MarketingRequest, error)
}

// loadCall đại diện một lượt fetch đang chạy, các caller đến sau chờ chung
type loadCall struct {
	done   chan struct{}
	events []*models.Event
	err    error
}

// EventStore giữ collection event chuẩn hóa trong bộ nhớ
// Bất biến:
//   - LoadAll trùng thời điểm chia chung một network call (coalescing)
//   - ForceRefresh luôn fetch mới; khi nhiều refresh đan xen, kết quả của
//     lượt bắt đầu sau thắng (last-write-wins theo seq)
//   - Snapshot trả slice copy, caller mutate thoải mái không ảnh hưởng store
type EventStore struct {
	source   RequestSource
	enricher *EnrichService

	mu           sync.Mutex
	events       []*models.Event
	loaded       bool
	loadedAt     time.Time
	seq          uint64 // cấp phát cho mỗi lượt fetch
	installedSeq uint64 // seq của dữ liệu đang giữ
	inflight     *loadCall
}

// NewEventStore tạo store mới, chưa load gì
func NewEventStore(source RequestSource, enricher *EnrichService) *EventStore {
	return &EventStore{source: source, enricher: enricher}
}

// LoadAll trả về collection event, fetch lần đầu nếu chưa có
// Nhiều goroutine gọi đồng thời khi chưa load chỉ sinh đúng một network call
func (s *EventStore) LoadAll(ctx context.Context) ([]*models.Event, error) {
	s.mu.Lock()
	if s.loaded {
		events := copyEvents(s.events)
		s.mu.Unlock()
		return events, nil
	}

	if s.inflight != nil {
		call := s.inflight
		s.mu.Unlock()
		select {
		case <-call.done:
			if call.err != nil {
				return nil, call.err
			}
			return copyEvents(call.events), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	call := &loadCall{done: make(chan struct{})}
	s.inflight = call
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	events, err := s.fetch(ctx)

	s.mu.Lock()
	s.inflight = nil
	if err == nil {
		s.install(seq, events)
	}
	s.mu.Unlock()

	call.events = events
	call.err = err
	close(call.done)

	if err != nil {
		return nil, err
	}
	return copyEvents(events), nil
}

// ForceRefresh bỏ qua cache, fetch mới từ backend
// Lỗi fetch giữ nguyên dữ liệu cũ trong store
func (s *EventStore) ForceRefresh(ctx context.Context) ([]*models.Event, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	events, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.install(seq, events)
	s.mu.Unlock()

	return copyEvents(events), nil
}

// Snapshot trả về copy của dữ liệu hiện có mà không fetch
// Trả nil nếu chưa load lần nào
func (s *EventStore) Snapshot() []*models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return nil
	}
	return copyEvents(s.events)
}

// LoadedAt trả về thời điểm dữ liệu hiện tại được install (zero nếu chưa load)
func (s *EventStore) LoadedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadedAt
}

// fetch lấy request thô, chuẩn hóa và enrich thành batch event hoàn chỉnh
// Enrichment thất bại một phần không chặn batch, chỉ log
func (s *EventStore) fetch(ctx context.Context) ([]*models.Event, error) {
	requests, err := s.source.GetAllRequests(ctx)
	if err != nil {
		return nil, err
	}

	events := TransformAll(requests)
	if s.enricher != nil {
		if err := s.enricher.EnrichEvents(ctx, events); err != nil {
			if errors.Is(err, common.ErrEnrichmentPartial) {
				logger.GetAppLogger().WithField("events", len(events)).Warn(common.MsgEnrichmentFailed)
			} else {
				return nil, err
			}
		}
	}
	return events, nil
}

// install ghi batch mới vào store nếu nó không cũ hơn dữ liệu đang giữ
// Gọi khi đang giữ s.mu
func (s *EventStore) install(seq uint64, events []*models.Event) {
	if seq < s.installedSeq {
		// Một lượt refresh bắt đầu sau đã ghi trước, bỏ kết quả cũ
		return
	}
	s.installedSeq = seq
	s.events = events
	s.loaded = true
	s.loadedAt = time.Now()
}

// copyEvents copy slice để caller không chạm vào backing array của store
func copyEvents(events []*models.Event) []*models.Event {
	out := make([]*models.Event, len(events))
	copy(out, events)
	return out
}
