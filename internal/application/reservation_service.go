package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-spot-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/spot"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/ticket"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/transaction"
	"github.com/sanosuguru/go-spot-reservation/internal/infrastructure/postgres"
	redisinfra "github.com/sanosuguru/go-spot-reservation/internal/infrastructure/redis"
	"github.com/sanosuguru/go-spot-reservation/internal/pkg/logger"
	"github.com/sanosuguru/go-spot-reservation/internal/pkg/metrics"
)

// ReservationService はスポット予約のコーディネーター
// 存在確認・予約状態への遷移・履歴追記・チケット発行を
// 1つのトランザクションで実行する
type ReservationService struct {
	txManager   transaction.Manager
	spotRepo    spot.Repository
	historyRepo reservation.LedgerRepository
	ticketRepo  ticket.Repository
	cache       *redisinfra.SpotCache
	metrics     *metrics.Metrics
}

func NewReservationService(
	tm transaction.Manager,
	sr spot.Repository,
	hr reservation.LedgerRepository,
	tr ticket.Repository,
	cache *redisinfra.SpotCache,
	m *metrics.Metrics,
) *ReservationService {
	return &ReservationService{
		txManager:   tm,
		spotRepo:    sr,
		historyRepo: hr,
		ticketRepo:  tr,
		cache:       cache,
		metrics:     m,
	}
}

type ReserveSpotsInput struct {
	EventID    string
	SpotNames  []string
	TicketKind string
	Email      string
}

// ReserveSpots は要求されたスポット名の集合を全件予約し、チケットを発行する
// 全件成功するか、1件も予約されないかのどちらかになる（部分成功なし）
// 競合した2つのリクエストのうち成功するのは最大1つで、敗者は
// spot.ErrSpotsAlreadyReserved を受け取る
func (s *ReservationService) ReserveSpots(ctx context.Context, input ReserveSpotsInput) ([]*ticket.Ticket, error) {
	// 共有状態に触れる前の入力検証
	if len(input.SpotNames) == 0 {
		s.recordReservation("invalid")
		return nil, reservation.ErrSpotNamesRequired
	}
	kind, err := ticket.ParseKind(input.TicketKind)
	if err != nil {
		s.recordReservation("invalid")
		return nil, err
	}

	// 重複した名前は同一スポットに解決される（重複は拒否しない）
	names := dedupeNames(input.SpotNames)

	// 解決フェーズ：名前からスポットを引き、欠落を件数比較で検出する
	spots, err := s.spotRepo.GetByNames(ctx, input.EventID, names)
	if err != nil {
		s.recordReservation("error")
		return nil, fmt.Errorf("スポット検索に失敗: %w", err)
	}
	if len(spots) != len(names) {
		found := make(map[string]bool, len(spots))
		for _, sp := range spots {
			found[sp.Name] = true
		}
		var missing []string
		for _, name := range names {
			if !found[name] {
				missing = append(missing, name)
			}
		}
		s.recordReservation("not_found")
		return nil, &reservation.SpotsNotFoundError{Names: missing}
	}

	start := time.Now()

	// トランザクションフェーズ：履歴追記 → 状態遷移 → チケット発行
	tickets, err := s.reserveInTx(ctx, spots, kind, input.Email)
	if err != nil {
		if errors.Is(err, spot.ErrSpotsAlreadyReserved) {
			s.recordReservation("conflict")
			return nil, spot.ErrSpotsAlreadyReserved
		}
		s.recordReservation("error")
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ReservationDuration.Observe(time.Since(start).Seconds())
		s.metrics.ReservedSpotsPerRequest.Observe(float64(len(tickets)))
	}
	s.recordReservation("success")

	// 成功後に空き数キャッシュを無効化する（失敗してもリクエストは成功扱い）
	if s.cache != nil {
		if cacheErr := s.cache.Invalidate(ctx, input.EventID); cacheErr != nil {
			logger.Warn("キャッシュ無効化エラー", zap.Error(cacheErr))
		}
	}

	return tickets, nil
}

// reserveInTx は予約の書き込みをすべて1つのトランザクションで実行する
// どこかで失敗した場合はロールバックし、履歴・状態・チケットの
// いずれも残らない
func (s *ReservationService) reserveInTx(ctx context.Context, spots []*spot.Spot, kind ticket.Kind, email string) ([]*ticket.Ticket, error) {
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback()

	entries := make([]*reservation.HistoryEntry, len(spots))
	for i, sp := range spots {
		entries[i] = reservation.NewHistoryEntry(sp.ID, kind, email)
	}
	if err := s.historyRepo.AppendBatch(ctx, tx, entries); err != nil {
		return nil, err
	}

	spotIDs := make([]string, len(spots))
	for i, sp := range spots {
		spotIDs[i] = sp.ID
	}
	if err := s.spotRepo.ReserveSpots(ctx, tx, spotIDs); err != nil {
		return nil, err
	}

	tickets := make([]*ticket.Ticket, len(spots))
	for i, sp := range spots {
		t := ticket.NewTicket(sp.ID, kind, email)
		if err := s.ticketRepo.Create(ctx, tx, t); err != nil {
			if errors.Is(err, ticket.ErrSpotAlreadyTicketed) {
				return nil, spot.ErrSpotsAlreadyReserved
			}
			return nil, err
		}
		tickets[i] = t
	}

	if err := tx.Commit(); err != nil {
		// コミット時に検出された一意性制約違反・直列化失敗も競合として扱う
		if postgres.IsConflict(err) {
			return nil, spot.ErrSpotsAlreadyReserved
		}
		return nil, fmt.Errorf("コミットに失敗: %w", err)
	}
	return tickets, nil
}

// GetTicket はIDからチケットを取得する
func (s *ReservationService) GetTicket(ctx context.Context, id string) (*ticket.Ticket, error) {
	return s.ticketRepo.GetByID(ctx, id)
}

// GetTicketsByEmail は購入者のチケット一覧を取得する
func (s *ReservationService) GetTicketsByEmail(ctx context.Context, email string, limit, offset int) ([]*ticket.Ticket, error) {
	limit, offset = clampPage(limit, offset)
	return s.ticketRepo.GetByEmail(ctx, email, limit, offset)
}

// GetSpotHistory はスポットの予約履歴を取得する
func (s *ReservationService) GetSpotHistory(ctx context.Context, spotID string) ([]*reservation.HistoryEntry, error) {
	return s.historyRepo.GetBySpotID(ctx, spotID)
}

func (s *ReservationService) recordReservation(status string) {
	if s.metrics != nil {
		s.metrics.ReservationsTotal.WithLabelValues(status).Inc()
	}
}

// dedupeNames は順序を保ちながら重複した名前を取り除く
func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}
	return result
}
