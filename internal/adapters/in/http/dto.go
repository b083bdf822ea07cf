package http

import (
	"strings"
	"time"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/rating"
)

type createParcelRequest struct {
	UserID     string `json:"userId"     validate:"omitempty,uuid"`
	CustomerID string `json:"customerId" validate:"omitempty,uuid"`

	SenderFirstName   string `json:"senderFirstName"`
	SenderLastName    string `json:"senderLastName"`
	SenderEmail       string `json:"senderEmail"       validate:"omitempty,email"`
	SenderPhone       string `json:"senderPhone"`
	ReceiverFirstName string `json:"receiverFirstName"`
	ReceiverLastName  string `json:"receiverLastName"`
	ReceiverEmail     string `json:"receiverEmail"     validate:"omitempty,email"`
	ReceiverPhone     string `json:"receiverPhone"`

	PackageType     string   `json:"packageType"`
	PackageWeight   *float64 `json:"packageWeight"`
	DeliveryAddress string   `json:"deliveryAddress"`
	DeliveryLat     *float64 `json:"deliveryLat"`
	DeliveryLng     *float64 `json:"deliveryLng"`
	Cost            *float64 `json:"cost"`

	RequestedDeliveryDate   string `json:"requestedDeliveryDate"`
	ApproximateDeliveryDate string `json:"approximateDeliveryDate"`
}

func (r createParcelRequest) toInput() commands.CreateParcelInput {
	customerID := r.CustomerID
	if strings.TrimSpace(customerID) == "" {
		customerID = r.UserID
	}
	return commands.CreateParcelInput{
		CustomerID: customerID,
		Sender: parcel.Contact{
			FirstName: r.SenderFirstName,
			LastName:  r.SenderLastName,
			Email:     r.SenderEmail,
			Phone:     r.SenderPhone,
		},
		Receiver: parcel.Contact{
			FirstName: r.ReceiverFirstName,
			LastName:  r.ReceiverLastName,
			Email:     r.ReceiverEmail,
			Phone:     r.ReceiverPhone,
		},
		PackageType:             r.PackageType,
		PackageWeight:           r.PackageWeight,
		DeliveryAddress:         r.DeliveryAddress,
		DeliveryLat:             r.DeliveryLat,
		DeliveryLng:             r.DeliveryLng,
		Cost:                    r.Cost,
		RequestedDeliveryDate:   r.RequestedDeliveryDate,
		ApproximateDeliveryDate: r.ApproximateDeliveryDate,
	}
}

// editParcelRequest lists the only fields an edit may touch. Anything else in
// the body, such as status or ownership, is ignored.
type editParcelRequest struct {
	SenderFirstName   *string `json:"senderFirstName"`
	SenderLastName    *string `json:"senderLastName"`
	SenderEmail       *string `json:"senderEmail"       validate:"omitempty,email"`
	SenderPhone       *string `json:"senderPhone"`
	ReceiverFirstName *string `json:"receiverFirstName"`
	ReceiverLastName  *string `json:"receiverLastName"`
	ReceiverEmail     *string `json:"receiverEmail"     validate:"omitempty,email"`
	ReceiverPhone     *string `json:"receiverPhone"`

	PackageType     *string  `json:"packageType"`
	PackageWeight   *float64 `json:"packageWeight"`
	DeliveryAddress *string  `json:"deliveryAddress"`
	DeliveryLat     *float64 `json:"deliveryLat"`
	DeliveryLng     *float64 `json:"deliveryLng"`
	Cost            *float64 `json:"cost"`

	RequestedDeliveryDate   *string `json:"requestedDeliveryDate"`
	ApproximateDeliveryDate *string `json:"approximateDeliveryDate"`
}

func (r editParcelRequest) toPatch() (parcel.Patch, error) {
	patch := parcel.Patch{
		SenderFirstName:   r.SenderFirstName,
		SenderLastName:    r.SenderLastName,
		SenderEmail:       r.SenderEmail,
		SenderPhone:       r.SenderPhone,
		ReceiverFirstName: r.ReceiverFirstName,
		ReceiverLastName:  r.ReceiverLastName,
		ReceiverEmail:     r.ReceiverEmail,
		ReceiverPhone:     r.ReceiverPhone,
		PackageType:       r.PackageType,
		PackageWeight:     r.PackageWeight,
		DeliveryAddress:   r.DeliveryAddress,
		DeliveryLat:       r.DeliveryLat,
		DeliveryLng:       r.DeliveryLng,
		Cost:              r.Cost,
	}

	var err error
	if patch.RequestedDeliveryDate, err = optionalDate("requestedDeliveryDate", r.RequestedDeliveryDate); err != nil {
		return parcel.Patch{}, err
	}
	if patch.ApproximateDeliveryDate, err = optionalDate("approximateDeliveryDate", r.ApproximateDeliveryDate); err != nil {
		return parcel.Patch{}, err
	}
	return patch, nil
}

func optionalDate(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := parcel.ParseDate(field, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type assignDriverRequest struct {
	DriverID     string `json:"driverId"`
	DeliveryDate string `json:"deliveryDate"`
}

type ratingRequest struct {
	DriverID  string `json:"driverId"`
	PackageID string `json:"packageId"`
	Rating    *int   `json:"rating"`
	Comment   string `json:"comment"`
}

type initiatePaymentRequest struct {
	PackageID string   `json:"packageId"`
	Price     *float64 `json:"price"`
}

type confirmPaymentRequest struct {
	PaymentID string `json:"paymentId" validate:"required"`
}

type contactResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func newContactResponse(c parcel.Contact) contactResponse {
	return contactResponse{FirstName: c.FirstName, LastName: c.LastName, Email: c.Email, Phone: c.Phone}
}

type parcelResponse struct {
	ID                 string          `json:"id"`
	CustomerID         string          `json:"customerId"`
	CustomerName       string          `json:"customerName,omitempty"`
	DeliveryDriverID   *string         `json:"deliveryDriverId"`
	DeliveryDriverName string          `json:"deliveryDriverName,omitempty"`
	Sender             contactResponse `json:"sender"`
	Receiver           contactResponse `json:"receiver"`

	PackageType     string  `json:"packageType"`
	PackageWeight   float64 `json:"packageWeight"`
	DeliveryAddress string  `json:"deliveryAddress"`
	DeliveryLat     float64 `json:"deliveryLat"`
	DeliveryLng     float64 `json:"deliveryLng"`
	Cost            float64 `json:"cost"`

	RequestedDeliveryDate   time.Time  `json:"requestedDeliveryDate"`
	ApproximateDeliveryDate *time.Time `json:"approximateDeliveryDate"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentID     string `json:"paymentId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newParcelResponse(v queries.ParcelView) parcelResponse {
	var driverID *string
	if v.DriverID != nil {
		id := v.DriverID.String()
		driverID = &id
	}
	return parcelResponse{
		ID:                      v.ID.String(),
		CustomerID:              v.CustomerID.String(),
		CustomerName:            v.CustomerName,
		DeliveryDriverID:        driverID,
		DeliveryDriverName:      v.DriverName,
		Sender:                  newContactResponse(v.Sender),
		Receiver:                newContactResponse(v.Receiver),
		PackageType:             v.PackageType,
		PackageWeight:           v.PackageWeight,
		DeliveryAddress:         v.DeliveryAddress,
		DeliveryLat:             v.DeliveryLat,
		DeliveryLng:             v.DeliveryLng,
		Cost:                    v.Cost,
		RequestedDeliveryDate:   v.RequestedDeliveryDate,
		ApproximateDeliveryDate: v.ApproximateDeliveryDate,
		Status:                  v.Status.String(),
		PaymentStatus:           v.PaymentStatus.String(),
		PaymentID:               v.PaymentID,
		CreatedAt:               v.CreatedAt,
		UpdatedAt:               v.UpdatedAt,
	}
}

func newParcelResponses(views []queries.ParcelView) []parcelResponse {
	out := make([]parcelResponse, len(views))
	for i, v := range views {
		out[i] = newParcelResponse(v)
	}
	return out
}

type statusEventResponse struct {
	From      string    `json:"from,omitempty"`
	To        string    `json:"to"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
}

func newStatusEventResponses(events []queries.StatusEventView) []statusEventResponse {
	out := make([]statusEventResponse, len(events))
	for i, e := range events {
		out[i] = statusEventResponse{
			To:        e.To.String(),
			ChangedBy: e.ChangedBy.String(),
			ChangedAt: e.ChangedAt,
		}
		if e.From != parcel.Unknown {
			out[i].From = e.From.String()
		}
	}
	return out
}

type ratingResponse struct {
	ID            string    `json:"id"`
	PackageID     string    `json:"packageId"`
	DriverID      string    `json:"driverId,omitempty"`
	CustomerID    string    `json:"customerId"`
	CustomerName  string    `json:"customerName,omitempty"`
	CustomerPhoto string    `json:"customerPhoto,omitempty"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newSubmittedRatingResponse(r *rating.Rating) ratingResponse {
	return ratingResponse{
		ID:         r.ID().String(),
		PackageID:  r.ParcelID().String(),
		DriverID:   r.DriverID().String(),
		CustomerID: r.CustomerID().String(),
		Rating:     r.Score(),
		Comment:    r.Comment(),
		CreatedAt:  r.RatedAt(),
	}
}

func newRatingResponses(views []queries.RatingView) []ratingResponse {
	out := make([]ratingResponse, len(views))
	for i, v := range views {
		out[i] = ratingResponse{
			ID:            v.ID.String(),
			PackageID:     v.ParcelID.String(),
			CustomerID:    v.CustomerID.String(),
			CustomerName:  v.CustomerName,
			CustomerPhoto: v.CustomerPhoto,
			Rating:        v.Rating,
			Comment:       v.Comment,
			CreatedAt:     v.CreatedAt,
		}
	}
	return out
}

type paymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type siteStatsResponse struct {
	TotalUsers             int64 `json:"totalUsers"`
	TotalPackages          int64 `json:"totalPackages"`
	TotalPackagesDelivered int64 `json:"totalPackagesDelivered"`
}

type topDriverResponse struct {
	DriverID               string  `json:"driverId"`
	Name                   string  `json:"name"`
	Photo                  string  `json:"photo,omitempty"`
	TotalPackagesDelivered int64   `json:"totalPackagesDelivered"`
	AverageRating          float64 `json:"averageRating"`
}

func newTopDriverResponses(views []queries.TopDriverView) []topDriverResponse {
	out := make([]topDriverResponse, len(views))
	for i, v := range views {
		out[i] = topDriverResponse{
			DriverID:               v.DriverID.String(),
			Name:                   v.Name,
			Photo:                  v.Photo,
			TotalPackagesDelivered: v.TotalPackagesDelivered,
			AverageRating:          v.AverageRating,
		}
	}
	return out
}

type dayStatsResponse struct {
	Date           string `json:"date"`
	TotalAppointed int64  `json:"totalAppointed"`
	Appointed      int64  `json:"appointed"`
	Delivered      int64  `json:"delivered"`
}

func newDayStatsResponses(days []queries.DayStats) []dayStatsResponse {
	out := make([]dayStatsResponse, len(days))
	for i, d := range days {
		out[i] = dayStatsResponse(d)
	}
	return out
}

type driverResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Photo       string    `json:"photo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Deliveries  int64     `json:"deliveries"`
	TotalEarned float64   `json:"totalEarned"`
}

func newDriverResponses(views []queries.DriverView) []driverResponse {
	out := make([]driverResponse, len(views))
	for i, v := range views {
		out[i] = driverResponse{
			ID:          v.ID.String(),
			Name:        v.Name,
			Email:       v.Email,
			Photo:       v.Photo,
			CreatedAt:   v.CreatedAt,
			Deliveries:  v.Deliveries,
			TotalEarned: v.TotalEarned,
		}
	}
	return out
}
