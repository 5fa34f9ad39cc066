package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"courtside/models"
	"courtside/services/availability"
	"courtside/utils"
)

// Slot grids are cached briefly; any reserve, cancel, payment settlement or
// block mutation for the court+date invalidates the entry.
const gridCacheTTL = 30 * time.Second

// gridGranularities are the step sizes the service serves. invalidateGrid
// drops exactly these keys, so any granularity served must be listed here.
var gridGranularities = []int{30, 60}

func gridCacheKey(courtID string, date time.Time, granularity int) string {
	return fmt.Sprintf("grid:%s:%s:%d", courtID, date.Format("2006-01-02"), granularity)
}

// SlotGrid returns the discretized schedule view for a court on a date,
// serving from cache when fresh.
func (s *DefaultBookingService) SlotGrid(ctx context.Context, courtID string, date time.Time, granularity int) (models.SlotGrid, error) {
	if granularity <= 0 {
		granularity = availability.DefaultGranularity
	}
	supported := false
	for _, g := range gridGranularities {
		if granularity == g {
			supported = true
			break
		}
	}
	if !supported {
		return models.SlotGrid{}, availability.NewValidationError(
			"unsupported granularity %d: must be one of %v", granularity, gridGranularities)
	}

	if s.CacheClient != nil {
		if cached, err := s.CacheClient.Get(ctx, gridCacheKey(courtID, date, granularity)).Result(); err == nil {
			var grid models.SlotGrid
			if err := json.Unmarshal([]byte(cached), &grid); err == nil {
				return grid, nil
			}
		}
	}

	court, err := s.CourtRepo.GetCourtByID(ctx, courtID)
	if err != nil {
		return models.SlotGrid{}, err
	}
	in, err := s.courtInputs(ctx, court, date)
	if err != nil {
		return models.SlotGrid{}, err
	}
	grid, err := availability.GenerateSlotGrid(in, date, granularity)
	if err != nil {
		return models.SlotGrid{}, err
	}

	if s.CacheClient != nil {
		if data, err := json.Marshal(grid); err == nil {
			if err := s.CacheClient.Set(ctx, gridCacheKey(courtID, date, granularity), data, gridCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache slot grid",
					zap.String("courtID", courtID), zap.Error(err))
			}
		}
	}
	return grid, nil
}

// invalidateGrid drops every cached granularity for the court+date.
func (s *DefaultBookingService) invalidateGrid(ctx context.Context, courtID string, date time.Time) {
	if s.CacheClient == nil {
		return
	}
	for _, granularity := range gridGranularities {
		if err := s.CacheClient.Del(ctx, gridCacheKey(courtID, date, granularity)).Err(); err != nil {
			utils.GetLogger().Warn("failed to invalidate slot grid cache",
				zap.String("courtID", courtID), zap.Error(err))
		}
	}
}
