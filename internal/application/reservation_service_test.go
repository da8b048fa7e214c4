//go:build integration
// +build integration

package application

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-spot-reservation/internal/config"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-spot-reservation/internal/domain/spot"
	"github.com/sanosuguru/go-spot-reservation/internal/infrastructure/postgres"
)

func setupTestEnv(t *testing.T) (*ReservationService, *SpotService, *EventService, func()) {
	cfg := config.Load()

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		t.Skipf("DB接続エラー: %v", err)
	}

	eventRepo := postgres.NewEventRepository(db)
	spotRepo := postgres.NewSpotRepository(db)
	historyRepo := postgres.NewReservationHistoryRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	txManager := postgres.NewTxManager(db)

	eventService := NewEventService(eventRepo)
	spotService := NewSpotService(spotRepo, eventRepo, nil)
	reservationService := NewReservationService(txManager, spotRepo, historyRepo, ticketRepo, nil, nil)

	cleanup := func() {
		db.Exec("DELETE FROM tickets")
		db.Exec("DELETE FROM reservation_history")
		db.Exec("DELETE FROM spots")
		db.Exec("DELETE FROM events")
		db.Close()
	}

	return reservationService, spotService, eventService, cleanup
}

func createTestEvent(t *testing.T, eventService *EventService, spotService *SpotService, spotCount int) (string, []string) {
	ctx := context.Background()

	ev, err := eventService.CreateEvent(ctx, CreateEventInput{
		Name:        "テストイベント",
		Description: "統合テスト用",
		Date:        time.Now().Add(24 * time.Hour),
		Price:       5000,
	})
	require.NoError(t, err)

	spots, err := spotService.CreateBulkSpots(ctx, CreateBulkSpotsInput{
		EventID: ev.ID, Prefix: "A-", Count: spotCount,
	})
	require.NoError(t, err)
	require.Len(t, spots, spotCount)

	names := make([]string, spotCount)
	for i, sp := range spots {
		names[i] = sp.Name
	}
	return ev.ID, names
}

func TestConcurrentReservation(t *testing.T) {
	reservationService, spotService, eventService, cleanup := setupTestEnv(t)
	defer cleanup()

	ctx := context.Background()
	eventID, names := createTestEvent(t, eventService, spotService, 1)

	t.Run("10並行リクエストで勝者は最大1つ", func(t *testing.T) {
		const numGoroutines = 10
		var successCount int32
		var conflictCount int32
		var wg sync.WaitGroup

		for i := 0; i < numGoroutines; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_, err := reservationService.ReserveSpots(ctx, ReserveSpotsInput{
					EventID:    eventID,
					SpotNames:  names,
					TicketKind: "full",
					Email:      fmt.Sprintf("user-%d@example.com", n),
				})
				if err == nil {
					atomic.AddInt32(&successCount, 1)
				} else {
					assert.ErrorIs(t, err, spot.ErrSpotsAlreadyReserved)
					atomic.AddInt32(&conflictCount, 1)
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, int32(1), successCount, "成功は1つだけ")
		assert.Equal(t, int32(numGoroutines-1), conflictCount, "残りは全て競合")
	})
}

func TestConcurrentReservation_OverlappingSets(t *testing.T) {
	reservationService, spotService, eventService, cleanup := setupTestEnv(t)
	defer cleanup()

	ctx := context.Background()
	eventID, names := createTestEvent(t, eventService, spotService, 3)

	// {A-1, A-2} と {A-2, A-3} は A-2 を共有するため、両方は成功できない
	setA := []string{names[0], names[1]}
	setB := []string{names[1], names[2]}

	var successCount int32
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, err := reservationService.ReserveSpots(ctx, ReserveSpotsInput{
			EventID: eventID, SpotNames: setA, TicketKind: "full", Email: "a@example.com",
		})
		if err == nil {
			atomic.AddInt32(&successCount, 1)
		}
	}()
	go func() {
		defer wg.Done()
		_, err := reservationService.ReserveSpots(ctx, ReserveSpotsInput{
			EventID: eventID, SpotNames: setB, TicketKind: "half", Email: "b@example.com",
		})
		if err == nil {
			atomic.AddInt32(&successCount, 1)
		}
	}()
	wg.Wait()

	// 共有スポットがあるため成功は最大1つ
	assert.LessOrEqual(t, successCount, int32(1))

	// 敗者側のスポットは available のまま残る（部分予約なし）
	count, err := spotService.CountAvailableSpots(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, 3-2*int(successCount), count)
}

func TestSequentialReservation_SecondAttemptFails(t *testing.T) {
	reservationService, spotService, eventService, cleanup := setupTestEnv(t)
	defer cleanup()

	ctx := context.Background()
	eventID, names := createTestEvent(t, eventService, spotService, 2)

	// 1回目は成功
	tickets, err := reservationService.ReserveSpots(ctx, ReserveSpotsInput{
		EventID: eventID, SpotNames: names, TicketKind: "full", Email: "first@example.com",
	})
	require.NoError(t, err)
	require.Len(t, tickets, 2)

	// 同じスポットへの2回目は必ず競合する
	_, err = reservationService.ReserveSpots(ctx, ReserveSpotsInput{
		EventID: eventID, SpotNames: names, TicketKind: "half", Email: "second@example.com",
	})
	assert.ErrorIs(t, err, spot.ErrSpotsAlreadyReserved)

	// 3回目も同様
	_, err = reservationService.ReserveSpots(ctx, ReserveSpotsInput{
		EventID: eventID, SpotNames: names[:1], TicketKind: "full", Email: "third@example.com",
	})
	assert.ErrorIs(t, err, spot.ErrSpotsAlreadyReserved)
}

func TestReservation_AllOrNothing(t *testing.T) {
	reservationService, spotService, eventService, cleanup := setupTestEnv(t)
	defer cleanup()

	ctx := context.Background()
	eventID, names := createTestEvent(t, eventService, spotService, 3)

	// A-1 を先に予約しておく
	_, err := reservationService.ReserveSpots(ctx, ReserveSpotsInput{
		EventID: eventID, SpotNames: names[:1], TicketKind: "full", Email: "first@example.com",
	})
	require.NoError(t, err)

	// A-1 を含む3件の要求は全体が失敗し、A-2/A-3 は予約されない
	_, err = reservationService.ReserveSpots(ctx, ReserveSpotsInput{
		EventID: eventID, SpotNames: names, TicketKind: "full", Email: "second@example.com",
	})
	assert.ErrorIs(t, err, spot.ErrSpotsAlreadyReserved)

	count, err := spotService.CountAvailableSpots(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "失敗したリクエストのスポットは予約されない")
}

func TestReservation_MissingSpotNames(t *testing.T) {
	reservationService, spotService, eventService, cleanup := setupTestEnv(t)
	defer cleanup()

	ctx := context.Background()
	eventID, names := createTestEvent(t, eventService, spotService, 1)

	_, err := reservationService.ReserveSpots(ctx, ReserveSpotsInput{
		EventID:    eventID,
		SpotNames:  []string{names[0], "Z-99", "Z-100"},
		TicketKind: "full",
		Email:      "user@example.com",
	})

	require.Error(t, err)
	notFound, ok := reservation.AsSpotsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Z-99", "Z-100"}, notFound.Names)

	// 失敗したリクエストは履歴もチケットも残さない
	count, err := spotService.CountAvailableSpots(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
