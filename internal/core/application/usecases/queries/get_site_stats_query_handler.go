package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/parcel"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// GetSiteStatsQueryHandler computes the totals on read with three concurrent counts.
type GetSiteStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetSiteStatsQueryHandler(db *gorm.DB) GetSiteStatsQueryHandler {
	return GetSiteStatsQueryHandler{db: db}
}

func (h GetSiteStatsQueryHandler) Handle(ctx context.Context, query GetSiteStatsQuery) (SiteStats, error) {
	if err := query.Validate(); err != nil {
		return SiteStats{}, err
	}

	var stats SiteStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return h.db.WithContext(gctx).Table("users").Count(&stats.TotalUsers).Error
	})
	g.Go(func() error {
		return h.db.WithContext(gctx).Table("parcels").Count(&stats.TotalPackages).Error
	})
	g.Go(func() error {
		return h.db.WithContext(gctx).Table("parcels").
			Where("status = ?", int(parcel.Delivered)).
			Count(&stats.TotalPackagesDelivered).Error
	})
	if err := g.Wait(); err != nil {
		return SiteStats{}, err
	}
	return stats, nil
}
