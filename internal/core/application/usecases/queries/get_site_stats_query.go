package queries

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetSiteStatsQueryIsNotConstructed = errors.New(
		"GetSiteStatsQuery must be created via NewGetSiteStatsQuery constructor",
	)
)

// GetSiteStatsQuery reads the public landing-page totals. It needs no actor.
type GetSiteStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSiteStatsQuery() GetSiteStatsQuery {
	return GetSiteStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSiteStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetSiteStatsQueryIsNotConstructed)
}

type SiteStats struct {
	TotalUsers             int64
	TotalPackages          int64
	TotalPackagesDelivered int64
}
