package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"nrt-dosing/domain"
	"nrt-dosing/repository"
)

var ErrInvalidCigarettes = errors.New("invalid cigarettes per day")

type DosingService struct {
	cache  repository.CacheRepository
	logger *zap.Logger
	group  singleflight.Group
}

// NewDosingService creates a DosingService backed by the given cache.
func NewDosingService(cache repository.CacheRepository, logger *zap.Logger) *DosingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DosingService{cache: cache, logger: logger}
}

// CalculateFromIntake converts the intake, derives cigarettes per day and
// resolves the dosing. An intake that cannot be converted yields an empty
// result and a nil error.
func (s *DosingService) CalculateFromIntake(
	ctx context.Context,
	input domain.IntakeInput,
) (domain.IntakeResult, error) {

	raw, ok := ConvertToCigarettesPerDay(input)
	if !ok {
		s.logger.Debug("intake not convertible",
			zap.Float64("amount", input.Amount),
			zap.String("unit", string(input.Unit)))
		return domain.IntakeResult{}, nil
	}

	cigarettes, ok := DeriveCigarettesPerDay(raw)
	if !ok {
		s.logger.Debug("intake rounds to no result", zap.Float64("raw", raw))
		return domain.IntakeResult{}, nil
	}

	rec, err := s.Recommend(ctx, cigarettes)
	if err != nil {
		return domain.IntakeResult{}, fmt.Errorf("calculate from intake: %w", err)
	}

	return domain.IntakeResult{
		DerivedCigarettesPerDay: &cigarettes,
		Recommendation:          &rec,
	}, nil
}

// Recommend resolves the dosing for an already derived value. Cache errors
// are logged and do not fail the call.
func (s *DosingService) Recommend(
	ctx context.Context,
	cigarettesPerDay int,
) (domain.DosingRecommendation, error) {

	if cigarettesPerDay < MinCigarettesPerDay || cigarettesPerDay > MaxCigarettesPerDay {
		return domain.DosingRecommendation{}, fmt.Errorf(
			"%w: %d outside %d-%d",
			ErrInvalidCigarettes, cigarettesPerDay, MinCigarettesPerDay, MaxCigarettesPerDay)
	}

	key := cacheKey(cigarettesPerDay)

	if cached, ok := s.cache.Get(ctx, key); ok {
		rec, err := repository.DecodeRecommendation(cached)
		if err == nil {
			s.logger.Debug("recommendation cache hit", zap.String("key", key))
			return rec, nil
		}
		s.logger.Warn("discarding cached recommendation", zap.String("key", key), zap.Error(err))
	}

	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		rec := ResolveDosing(cigarettesPerDay)

		encoded, err := repository.EncodeRecommendation(rec)
		if err != nil {
			s.logger.Warn("failed to encode recommendation", zap.Error(err))
			return rec, nil
		}
		if err := s.cache.Set(ctx, key, encoded); err != nil {
			s.logger.Warn("failed to cache recommendation", zap.String("key", key), zap.Error(err))
		}
		return rec, nil
	})

	return v.(domain.DosingRecommendation), nil
}

func (s *DosingService) DosingTable() []domain.DosingBucket {
	return DosingTable()
}

func (s *DosingService) HeavySmokerTable() []domain.HeavySmokerRow {
	return HeavySmokerTable()
}

func cacheKey(cigarettesPerDay int) string {
	return "recommendation:" + strconv.Itoa(cigarettesPerDay)
}
