package queries

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/services"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

type GetDeliveryStatsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetDeliveryStatsQueryHandler(db *gorm.DB) GetDeliveryStatsQueryHandler {
	return GetDeliveryStatsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle buckets parcels by creation day. Appointed counts parcels still Pending or
// On The Way; TotalAppointed counts every parcel of the day.
// Returns NotFound when there are no parcels at all.
func (h GetDeliveryStatsQueryHandler) Handle(ctx context.Context, query GetDeliveryStatsQuery) (DeliveryStats, error) {
	if err := query.Validate(); err != nil {
		return DeliveryStats{}, err
	}
	if err := h.policy.Authorize(query.Actor(), services.OpViewStatsSeries); err != nil {
		return DeliveryStats{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT created_at, status
		FROM parcels
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return DeliveryStats{}, err
	}
	defer rows.Close()

	stats := DeliveryStats{Days: make([]DayStats, 0)}
	var current *DayStats
	for rows.Next() {
		var createdAt time.Time
		var status int
		if err = rows.Scan(&createdAt, &status); err != nil {
			return DeliveryStats{}, err
		}

		day := now.With(createdAt.UTC()).BeginningOfDay().Format(time.DateOnly)
		if current == nil || current.Date != day {
			stats.Days = append(stats.Days, DayStats{Date: day})
			current = &stats.Days[len(stats.Days)-1]
		}

		current.TotalAppointed++
		switch parcel.Status(status) {
		case parcel.Pending, parcel.OnTheWay:
			current.Appointed++
		case parcel.Delivered:
			current.Delivered++
		case parcel.Unknown, parcel.Returned, parcel.Cancelled:
		}
	}
	if err = rows.Err(); err != nil {
		return DeliveryStats{}, err
	}

	if len(stats.Days) == 0 {
		return DeliveryStats{}, noResults("statistics", "no statistics data available")
	}
	return stats, nil
}
