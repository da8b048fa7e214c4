package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-spot-reservation/internal/domain/event"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/spot"
	redisinfra "github.com/sanosuguru/go-spot-reservation/internal/infrastructure/redis"
	"github.com/sanosuguru/go-spot-reservation/internal/pkg/logger"
)

const (
	spotCacheTTL = 30 * time.Second
)

type SpotService struct {
	spotRepo  spot.Repository
	eventRepo event.Repository
	cache     *redisinfra.SpotCache
}

func NewSpotService(sr spot.Repository, er event.Repository, cache *redisinfra.SpotCache) *SpotService {
	return &SpotService{spotRepo: sr, eventRepo: er, cache: cache}
}

type CreateSpotInput struct {
	EventID string
	Name    string
}

// CreateSpot は新しいスポットを作成する
// イベントの存在と同名スポットの不在を事前に確認する
func (s *SpotService) CreateSpot(ctx context.Context, input CreateSpotInput) (*spot.Spot, error) {
	if _, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		return nil, err
	}
	if _, err := s.spotRepo.GetByEventIDAndName(ctx, input.EventID, input.Name); err == nil {
		return nil, spot.ErrSpotAlreadyExists
	} else if !errors.Is(err, spot.ErrSpotNotFound) {
		return nil, fmt.Errorf("スポット確認に失敗: %w", err)
	}
	sp := spot.NewSpot(input.EventID, input.Name)
	if err := sp.Validate(); err != nil {
		return nil, err
	}
	if err := s.spotRepo.Create(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

type CreateBulkSpotsInput struct {
	EventID string
	Prefix  string
	Count   int
}

// CreateBulkSpots は連番のスポットをまとめて作成する
func (s *SpotService) CreateBulkSpots(ctx context.Context, input CreateBulkSpotsInput) ([]*spot.Spot, error) {
	if _, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		return nil, err
	}
	spots := make([]*spot.Spot, 0, input.Count)
	for i := 1; i <= input.Count; i++ {
		name := fmt.Sprintf("%s%d", input.Prefix, i)
		sp := spot.NewSpot(input.EventID, name)
		if err := sp.Validate(); err != nil {
			return nil, err
		}
		if err := s.spotRepo.Create(ctx, sp); err != nil {
			return nil, err
		}
		spots = append(spots, sp)
	}
	return spots, nil
}

func (s *SpotService) GetSpot(ctx context.Context, id string) (*spot.Spot, error) {
	return s.spotRepo.GetByID(ctx, id)
}

func (s *SpotService) GetSpotsByEvent(ctx context.Context, eventID string) ([]*spot.Spot, error) {
	return s.spotRepo.GetByEventID(ctx, eventID)
}

type UpdateSpotInput struct {
	ID   string
	Name string
}

func (s *SpotService) UpdateSpot(ctx context.Context, input UpdateSpotInput) (*spot.Spot, error) {
	sp, err := s.spotRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	sp.Name = input.Name
	if err := sp.Validate(); err != nil {
		return nil, err
	}
	if err := s.spotRepo.Update(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *SpotService) DeleteSpot(ctx context.Context, id string) error {
	return s.spotRepo.Delete(ctx, id)
}

func (s *SpotService) CountAvailableSpots(ctx context.Context, eventID string) (int, error) {
	// キャッシュから取得を試みる
	if s.cache != nil {
		count, err := s.cache.GetAvailableCount(ctx, eventID)
		if err == nil {
			logger.Debug("キャッシュヒット", zap.String("event_id", eventID), zap.Int("count", count))
			return count, nil
		}
		if !errors.Is(err, redisinfra.ErrCacheMiss) {
			logger.Warn("キャッシュ取得エラー", zap.Error(err))
		}
	}

	// DBから取得
	count, err := s.spotRepo.CountAvailableByEventID(ctx, eventID)
	if err != nil {
		return 0, err
	}

	// キャッシュに保存
	if s.cache != nil {
		if cacheErr := s.cache.SetAvailableCount(ctx, eventID, count, spotCacheTTL); cacheErr != nil {
			logger.Warn("キャッシュ保存エラー", zap.Error(cacheErr))
		}
	}

	return count, nil
}
