package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/rating"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrSubmitRatingCommandIsNotConstructed = errors.New(
	"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
)

// SubmitRatingCommand rates the driver who delivered a parcel. The rating is
// built and validated up front; the handler only decides whether it may be stored.
type SubmitRatingCommand struct {
	actor  kernel.Actor
	rating *rating.Rating

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand validates ids, the score range and the comment length.
// A nil score means the client sent none.
func NewSubmitRatingCommand(
	actor kernel.Actor,
	driverID, parcelID string,
	score *int,
	comment string,
) (SubmitRatingCommand, error) {
	if err := actor.Validate(); err != nil {
		return SubmitRatingCommand{}, err
	}

	driver, err := parseID("driverId", driverID)
	if err != nil {
		return SubmitRatingCommand{}, err
	}
	p, err := parseID("packageId", parcelID)
	if err != nil {
		return SubmitRatingCommand{}, err
	}
	if score == nil {
		return SubmitRatingCommand{}, errs.NewValueIsRequiredError("rating")
	}

	r, err := rating.NewRating(kernel.NewUUID(), actor.ID(), driver, p, *score, comment)
	if err != nil {
		return SubmitRatingCommand{}, err
	}

	return SubmitRatingCommand{
		actor:  actor,
		rating: r,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

func (c SubmitRatingCommand) Actor() kernel.Actor {
	return c.actor
}

func (c SubmitRatingCommand) Rating() *rating.Rating {
	return c.rating
}
