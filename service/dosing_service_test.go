package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nrt-dosing/domain"
	"nrt-dosing/repository"
)

type MockCache struct {
	mu       sync.Mutex
	Data     map[string]string
	GetCalls int
	SetCalls int
	ForceErr bool
}

func newMockCache() *MockCache {
	return &MockCache{Data: make(map[string]string)}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	if m.ForceErr {
		return "", false
	}
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	if m.ForceErr {
		return errors.New("cache unavailable")
	}
	m.Data[key] = value
	return nil
}

func TestRecommend_CachesResolvedDosing(t *testing.T) {
	cache := newMockCache()
	svc := NewDosingService(cache, nil)
	ctx := context.Background()

	first, err := svc.Recommend(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.SetCalls)
	assert.Contains(t, cache.Data, "recommendation:25")

	second, err := svc.Recommend(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.SetCalls, "second call should be served from cache")
	assert.Equal(t, first, second)
	assert.Equal(t, ResolveDosing(25), second)
}

func TestRecommend_CacheFailureIsNotFatal(t *testing.T) {
	cache := newMockCache()
	cache.ForceErr = true
	svc := NewDosingService(cache, nil)

	rec, err := svc.Recommend(context.Background(), 60)
	require.NoError(t, err)
	assert.True(t, rec.SupervisionRequired)
	assert.Equal(t, 1, cache.SetCalls)
}

func TestRecommend_IgnoresUndecodableCacheEntry(t *testing.T) {
	cache := newMockCache()
	cache.Data["recommendation:30"] = "not msgpack \xc1"
	svc := NewDosingService(cache, nil)

	rec, err := svc.Recommend(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, ResolveDosing(30), rec)

	decoded, err := repository.DecodeRecommendation(cache.Data["recommendation:30"])
	require.NoError(t, err)
	assert.Equal(t, rec, decoded)
}

func TestRecommend_RejectsOutOfRange(t *testing.T) {
	svc := NewDosingService(repository.NewMemoryCache(), nil)

	for _, cigs := range []int{0, -5, 201} {
		_, err := svc.Recommend(context.Background(), cigs)
		assert.ErrorIs(t, err, ErrInvalidCigarettes, "cigs=%d", cigs)
	}
}

func TestRecommend_ConcurrentCallers(t *testing.T) {
	cache := repository.NewMemoryCache()
	svc := NewDosingService(cache, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(cigs int) {
			defer wg.Done()
			rec, err := svc.Recommend(context.Background(), cigs)
			assert.NoError(t, err)
			assert.Equal(t, cigs, rec.CigarettesPerDay)
		}(i%10 + 1)
	}
	wg.Wait()

	assert.Equal(t, 10, cache.Len())
}

func TestCalculateFromIntake(t *testing.T) {
	svc := NewDosingService(repository.NewMemoryCache(), nil)
	ctx := context.Background()

	result, err := svc.CalculateFromIntake(ctx, domain.IntakeInput{Amount: 1.5, Unit: domain.UnitPacksPerDay})
	require.NoError(t, err)
	require.True(t, result.HasResult())
	assert.Equal(t, 30, *result.DerivedCigarettesPerDay)
	assert.Equal(t, 45, result.Recommendation.EstimatedNicotineNeedMg)
	assert.Equal(t, "1-2 x 21mg", result.Recommendation.PatchRecommendation)
	assert.False(t, result.Recommendation.SupervisionRequired)
}

func TestCalculateFromIntake_ClampsHighIntake(t *testing.T) {
	svc := NewDosingService(repository.NewMemoryCache(), nil)

	result, err := svc.CalculateFromIntake(context.Background(),
		domain.IntakeInput{Amount: 17.5, Unit: domain.UnitPacksPerDay})
	require.NoError(t, err)
	require.True(t, result.HasResult())
	assert.Equal(t, 200, *result.DerivedCigarettesPerDay)
	assert.Equal(t, 200, result.Recommendation.CigarettesPerDay)
	assert.True(t, result.Recommendation.SupervisionRequired)
}

func TestCalculateFromIntake_NoResult(t *testing.T) {
	svc := NewDosingService(repository.NewMemoryCache(), nil)

	inputs := []domain.IntakeInput{
		{Amount: -1, Unit: domain.UnitCigarettesPerDay},
		{Amount: 0.4, Unit: domain.UnitCigarettesPerDay},
		{Amount: 0, Unit: domain.UnitPacksPerDay},
		{Amount: 1, Unit: domain.UnitCartonsPerCustom,
			CustomPeriod: &domain.CustomPeriod{Amount: 0, Unit: domain.PeriodWeeks}},
	}
	for _, input := range inputs {
		result, err := svc.CalculateFromIntake(context.Background(), input)
		require.NoError(t, err)
		assert.False(t, result.HasResult(), "input=%+v", input)
		assert.Nil(t, result.Recommendation)
	}
}

func TestCalculateFromIntake_OverflowClampsToMaximum(t *testing.T) {
	svc := NewDosingService(repository.NewMemoryCache(), nil)

	inputs := []domain.IntakeInput{
		{Amount: 1e308, Unit: domain.UnitPacksPerDay},
		{Amount: 1e308, Unit: domain.UnitCartonsPerOneWeek},
		{Amount: 1, Unit: domain.UnitCartonsPerCustom,
			CustomPeriod: &domain.CustomPeriod{Amount: 1e-320, Unit: domain.PeriodDays}},
	}
	for _, input := range inputs {
		result, err := svc.CalculateFromIntake(context.Background(), input)
		require.NoError(t, err)
		require.True(t, result.HasResult(), "input=%+v", input)
		assert.Equal(t, MaxCigarettesPerDay, *result.DerivedCigarettesPerDay)
		assert.Equal(t, MaxCigarettesPerDay, result.Recommendation.CigarettesPerDay)
		assert.True(t, result.Recommendation.SupervisionRequired)
	}
}
