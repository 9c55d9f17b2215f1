package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msa_center/core/api/models"
)

// fakeSource trả danh sách request cố định, đếm số lần gọi
// release != nil thì block cho tới khi channel đóng (giả lập network chậm)
type fakeSource struct {
	mu       sync.Mutex
	requests []models.MarketingRequest
	err      error
	calls    int32
	release  chan struct{}
}

func (f *fakeSource) GetAllRequests(ctx context.Context) ([]models.MarketingRequest, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.MarketingRequest, len(f.requests))
	copy(out, f.requests)
	return out, nil
}

func (f *fakeSource) setRequests(requests []models.MarketingRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = requests
}

func threeRequests() []models.MarketingRequest {
	return []models.MarketingRequest{
		{ChannelID: "1", Title: "a", Status: "IN_QUEUE"},
		{ChannelID: "2", Title: "b", Status: "DONE"},
		{ChannelID: "3", Title: "c", Status: "IN_PROGRESS"},
	}
}

func TestLoadAll_CoalescesConcurrentCalls(t *testing.T) {
	source := &fakeSource{
		requests: threeRequests(),
		release:  make(chan struct{}),
	}
	store := NewEventStore(source, nil)

	var wg sync.WaitGroup
	results := make([][]*models.Event, 5)
	errs := make([]error, 5)

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = store.LoadAll(context.Background())
		}(i)
	}

	// Chờ fetch đầu tiên bắt đầu rồi thả cho tất cả cùng hoàn thành
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&source.calls) == 1
	}, time.Second, 5*time.Millisecond)
	close(source.release)
	wg.Wait()

	// 5 caller, đúng 1 network call
	assert.Equal(t, int32(1), atomic.LoadInt32(&source.calls))
	for i := 0; i < 5; i++ {
		require.NoError(t, errs[i])
		assert.Len(t, results[i], 3)
	}
}

func TestLoadAll_CachesAfterFirstFetch(t *testing.T) {
	source := &fakeSource{requests: threeRequests()}
	store := NewEventStore(source, nil)

	_, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	_, err = store.LoadAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&source.calls))
}

func TestForceRefresh_AlwaysFetches(t *testing.T) {
	source := &fakeSource{requests: threeRequests()}
	store := NewEventStore(source, nil)

	_, err := store.LoadAll(context.Background())
	require.NoError(t, err)

	source.setRequests([]models.MarketingRequest{{ChannelID: "9", Title: "new", Status: "IN_QUEUE"}})

	events, err := store.ForceRefresh(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "new", events[0].Title)

	// Cache đã thay, LoadAll thấy dữ liệu mới mà không fetch thêm
	cached, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&source.calls))
}

// sequencedSource trả payload riêng cho từng lượt gọi; lượt có gate sẽ
// block cho tới khi channel tương ứng đóng (giả lập response về trễ)
type sequencedSource struct {
	responses map[int32][]models.MarketingRequest
	gates     map[int32]chan struct{}
	calls     int32
}

func (f *sequencedSource) GetAllRequests(ctx context.Context) ([]models.MarketingRequest, error) {
	n := atomic.AddInt32(&f.calls, 1)
	if gate := f.gates[n]; gate != nil {
		<-gate
	}
	return f.responses[n], nil
}

func TestForceRefresh_StaleInflightLoadDiscarded(t *testing.T) {
	slow := make(chan struct{})
	source := &sequencedSource{
		responses: map[int32][]models.MarketingRequest{
			1: threeRequests(),
			2: {{ChannelID: "9", Title: "fresh", Status: "IN_QUEUE"}},
		},
		gates: map[int32]chan struct{}{1: slow},
	}
	store := NewEventStore(source, nil)

	// Lượt load đầu treo trên network
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = store.LoadAll(context.Background())
	}()
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&source.calls) == 1
	}, time.Second, 5*time.Millisecond)

	// Một refresh bắt đầu sau nhưng hoàn thành trước
	events, err := store.ForceRefresh(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)

	// Thả lượt cũ: kết quả về sau nhưng seq nhỏ hơn nên bị bỏ,
	// store giữ dữ liệu của lượt mới
	close(slow)
	wg.Wait()

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "fresh", snapshot[0].Title)
	assert.Equal(t, int32(2), atomic.LoadInt32(&source.calls))
}

func TestForceRefresh_ErrorKeepsOldData(t *testing.T) {
	source := &fakeSource{requests: threeRequests()}
	store := NewEventStore(source, nil)

	_, err := store.LoadAll(context.Background())
	require.NoError(t, err)

	source.mu.Lock()
	source.err = errors.New("backend down")
	source.mu.Unlock()

	_, err = store.ForceRefresh(context.Background())
	require.Error(t, err)

	// Dữ liệu cũ vẫn còn
	snapshot := store.Snapshot()
	assert.Len(t, snapshot, 3)
}

func TestSnapshot_NilBeforeLoad(t *testing.T) {
	store := NewEventStore(&fakeSource{}, nil)
	assert.Nil(t, store.Snapshot())
	assert.True(t, store.LoadedAt().IsZero())
}

func TestSnapshot_IsACopy(t *testing.T) {
	source := &fakeSource{requests: threeRequests()}
	store := NewEventStore(source, nil)

	_, err := store.LoadAll(context.Background())
	require.NoError(t, err)

	first := store.Snapshot()
	first[0] = nil // Mutate copy của caller

	second := store.Snapshot()
	require.NotNil(t, second[0])
	assert.Equal(t, "a", second[0].Title)
}

func TestLoadAll_ErrorNotCached(t *testing.T) {
	source := &fakeSource{err: errors.New("backend down")}
	store := NewEventStore(source, nil)

	_, err := store.LoadAll(context.Background())
	require.Error(t, err)

	// Lỗi không được cache: lần gọi sau thử fetch lại
	source.mu.Lock()
	source.err = nil
	source.requests = threeRequests()
	source.mu.Unlock()

	events, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 3)
	assert.Equal(t, int32(2), atomic.LoadInt32(&source.calls))
}
