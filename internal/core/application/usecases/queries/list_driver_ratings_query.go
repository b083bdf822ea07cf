package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrListDriverRatingsQueryIsNotConstructed = errors.New(
		"ListDriverRatingsQuery must be created via NewListDriverRatingsQuery constructor",
	)
)

// ListDriverRatingsQuery lists the ratings received by the calling driver, newest first.
type ListDriverRatingsQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewListDriverRatingsQuery(actor kernel.Actor) (ListDriverRatingsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListDriverRatingsQuery{}, err
	}
	return ListDriverRatingsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDriverRatingsQuery) Validate() error {
	return q.guard.Validate(ErrListDriverRatingsQueryIsNotConstructed)
}

func (q ListDriverRatingsQuery) Actor() kernel.Actor {
	return q.actor
}

// RatingView is a rating with its author's display identity.
type RatingView struct {
	ID            kernel.UUID
	ParcelID      kernel.UUID
	CustomerID    kernel.UUID
	CustomerName  string
	CustomerPhoto string
	Rating        int
	Comment       string
	CreatedAt     time.Time
}
