// Package rating models a customer's one-off score of the driver who delivered their parcel.
package rating

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

const (
	MinScore         = 1
	MaxScore         = 5
	MaxCommentLength = 1000
)

var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

// Rating joins (customer, driver, parcel) to a 1..5 score. At most one exists per
// (customer, parcel); it is never edited once stored.
type Rating struct {
	id         kernel.UUID
	customerID kernel.UUID
	driverID   kernel.UUID
	parcelID   kernel.UUID
	score      int
	comment    string
	ratedAt    time.Time

	isConstructed bool
}

// NewRating validates ids and score. Missing ids are reported as invalid input
// together with the score, so one call surfaces every problem.
func NewRating(id, customerID, driverID, parcelID kernel.UUID, score int, comment string) (*Rating, error) {
	r := &Rating{
		comment:       strings.TrimSpace(comment),
		ratedAt:       time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(&r.id, "id", id),
		r.setID(&r.customerID, "customerId", customerID),
		r.setID(&r.driverID, "driverId", driverID),
		r.setID(&r.parcelID, "packageId", parcelID),
		r.setScore(score),
		r.validateComment(),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRating rebuilds a stored rating.
func RestoreRating(
	id, customerID, driverID, parcelID kernel.UUID,
	score int,
	comment string,
	ratedAt time.Time,
) (*Rating, error) {
	r, err := NewRating(id, customerID, driverID, parcelID, score, comment)
	if err != nil {
		return nil, err
	}
	r.ratedAt = ratedAt
	return r, nil
}

func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

func (r *Rating) ID() kernel.UUID {
	return r.id
}

func (r *Rating) CustomerID() kernel.UUID {
	return r.customerID
}

func (r *Rating) DriverID() kernel.UUID {
	return r.driverID
}

func (r *Rating) ParcelID() kernel.UUID {
	return r.parcelID
}

func (r *Rating) Score() int {
	return r.score
}

func (r *Rating) Comment() string {
	return r.comment
}

func (r *Rating) RatedAt() time.Time {
	return r.ratedAt
}

func (r *Rating) setID(dst *kernel.UUID, name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	*dst = id
	return nil
}

func (r *Rating) setScore(score int) error {
	if score < MinScore || score > MaxScore {
		return errs.NewValueIsOutOfRangeError("rating", score, MinScore, MaxScore)
	}
	r.score = score
	return nil
}

func (r *Rating) validateComment() error {
	if n := utf8.RuneCountInString(r.comment); n > MaxCommentLength {
		return errs.NewValueIsInvalidErrorWithCause("comment",
			fmt.Errorf("%d characters exceeds the limit of %d", n, MaxCommentLength))
	}
	return nil
}
