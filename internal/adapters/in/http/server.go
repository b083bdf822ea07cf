package http

import (
	"net/http"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateParcel    commands.CreateParcelCommandHandler
	EditParcel      commands.EditParcelCommandHandler
	ChangeStatus    commands.ChangeParcelStatusCommandHandler
	AssignDriver    commands.AssignDriverCommandHandler
	CancelParcel    commands.CancelParcelCommandHandler
	SubmitRating    commands.SubmitRatingCommandHandler
	InitiatePayment commands.InitiatePaymentCommandHandler
	ConfirmPayment  commands.ConfirmPaymentCommandHandler

	GetParcel            queries.GetParcelQueryHandler
	GetParcelHistory     queries.GetParcelHistoryQueryHandler
	ListCustomerParcels  queries.ListCustomerParcelsQueryHandler
	ListParcels          queries.ListParcelsQueryHandler
	ListDriverDeliveries queries.ListDriverDeliveriesQueryHandler
	FilterParcelsByDate  queries.FilterParcelsByDateQueryHandler
	ListDriverRatings    queries.ListDriverRatingsQueryHandler
	ListDeliveryDrivers  queries.ListDeliveryDriversQueryHandler
	GetSiteStats         queries.GetSiteStatsQueryHandler
	GetTopDrivers        queries.GetTopDriversQueryHandler
	GetDeliveryStats     queries.GetDeliveryStatsQueryHandler
}

// Server adapts HTTP requests to commands and queries. Mutations answer with
// the parcel as re-read through GetParcel.
type Server struct {
	h      Handlers
	policy services.AccessPolicy
}

func NewServer(h Handlers) *Server {
	return &Server{h: h, policy: services.NewAccessPolicy()}
}

// CreateParcel handles POST /package.
func (s *Server) CreateParcel(c echo.Context) error {
	var req createParcelRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}

	actor := actorFrom(c)
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(actor, id, req.toInput())
	if err != nil {
		return err
	}
	if err := s.h.CreateParcel.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithParcel(c, http.StatusCreated, "Package created successfully", actor, id)
}

// EditParcel handles PUT /package/:id.
func (s *Server) EditParcel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req editParcelRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	patch, err := req.toPatch()
	if err != nil {
		return err
	}

	actor := actorFrom(c)
	cmd, err := commands.NewEditParcelCommand(actor, id, patch)
	if err != nil {
		return err
	}
	if err := s.h.EditParcel.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithParcel(c, http.StatusOK, "Package updated successfully", actor, id)
}

// ChangeParcelStatus handles PATCH /package/:id/status.
func (s *Server) ChangeParcelStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req changeStatusRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	target, err := parcel.StatusFromString(req.Status)
	if err != nil {
		return err
	}

	actor := actorFrom(c)
	cmd, err := commands.NewChangeParcelStatusCommand(actor, id, target)
	if err != nil {
		return err
	}
	if err := s.h.ChangeStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithParcel(c, http.StatusOK, "Package status updated successfully", actor, id)
}

// AssignDriver handles PATCH /package/assign/:id.
func (s *Server) AssignDriver(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req assignDriverRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}

	actor := actorFrom(c)
	cmd, err := commands.NewAssignDriverCommand(actor, id, req.DriverID, req.DeliveryDate)
	if err != nil {
		return err
	}
	if err := s.h.AssignDriver.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithParcel(c, http.StatusOK, "Delivery driver assigned successfully", actor, id)
}

// CancelParcel handles DELETE /package/cancel/:id.
func (s *Server) CancelParcel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	actor := actorFrom(c)
	cmd, err := commands.NewCancelParcelCommand(actor, id)
	if err != nil {
		return err
	}
	if err := s.h.CancelParcel.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithParcel(c, http.StatusOK, "Package cancelled successfully", actor, id)
}

// SubmitRating handles POST /package/ratings.
func (s *Server) SubmitRating(c echo.Context) error {
	var req ratingRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSubmitRatingCommand(actorFrom(c), req.DriverID, req.PackageID, req.Rating, req.Comment)
	if err != nil {
		return err
	}
	submitted, err := s.h.SubmitRating.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, ok("Rating submitted successfully", newSubmittedRatingResponse(submitted)))
}

// InitiatePayment handles POST /package/initiate-payment.
func (s *Server) InitiatePayment(c echo.Context) error {
	var req initiatePaymentRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewInitiatePaymentCommand(actorFrom(c), req.PackageID, req.Price)
	if err != nil {
		return err
	}
	result, err := s.h.InitiatePayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok("Payment initiated", paymentIntentResponse{
		ClientSecret:    result.ClientSecret,
		PaymentIntentID: result.PaymentIntentID,
	}))
}

// ConfirmPayment handles POST /package/payment/:packageId.
func (s *Server) ConfirmPayment(c echo.Context) error {
	id, err := pathID(c, "packageId")
	if err != nil {
		return err
	}
	var req confirmPaymentRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}

	actor := actorFrom(c)
	cmd, err := commands.NewConfirmPaymentCommand(actor, id, req.PaymentID)
	if err != nil {
		return err
	}
	if err := s.h.ConfirmPayment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithParcel(c, http.StatusOK, "Payment confirmed successfully", actor, id)
}

// GetParcel handles GET /package/:id.
func (s *Server) GetParcel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return s.respondWithParcel(c, http.StatusOK, "Package retrieved successfully", actorFrom(c), id)
}

// GetParcelHistory handles GET /package/:id/history.
func (s *Server) GetParcelHistory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetParcelHistoryQuery(actorFrom(c), id)
	if err != nil {
		return err
	}
	events, err := s.h.GetParcelHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okList("Package history retrieved successfully", newStatusEventResponses(events)))
}

// ListCustomerParcels handles GET /package/mine/:customerId.
func (s *Server) ListCustomerParcels(c echo.Context) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return err
	}
	page, err := pageParams(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListCustomerParcelsQuery(actorFrom(c), customerID, page)
	if err != nil {
		return err
	}
	views, err := s.h.ListCustomerParcels.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okList("Packages retrieved successfully", newParcelResponses(views)))
}

// ListParcels handles GET /package.
func (s *Server) ListParcels(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}
	filter, err := parcelFilterParams(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListParcelsQuery(actorFrom(c), filter, page)
	if err != nil {
		return err
	}
	views, err := s.h.ListParcels.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okList("Packages retrieved successfully", newParcelResponses(views)))
}

// ListDriverDeliveries handles GET /package/deliveries.
func (s *Server) ListDriverDeliveries(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListDriverDeliveriesQuery(actorFrom(c), page)
	if err != nil {
		return err
	}
	views, err := s.h.ListDriverDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okList("Deliveries retrieved successfully", newParcelResponses(views)))
}

// FilterParcelsByDate handles GET /package/filter.
func (s *Server) FilterParcelsByDate(c echo.Context) error {
	var dateFrom, dateTo *string
	if err := queryParam(c, "dateFrom", &dateFrom); err != nil {
		return err
	}
	if err := queryParam(c, "dateTo", &dateTo); err != nil {
		return err
	}

	query, err := queries.NewFilterParcelsByDateQuery(actorFrom(c), valueOf(dateFrom), valueOf(dateTo))
	if err != nil {
		return err
	}
	views, err := s.h.FilterParcelsByDate.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okList("Packages retrieved successfully", newParcelResponses(views)))
}

// ListDriverRatings handles GET /package/ratings.
func (s *Server) ListDriverRatings(c echo.Context) error {
	query, err := queries.NewListDriverRatingsQuery(actorFrom(c))
	if err != nil {
		return err
	}
	views, err := s.h.ListDriverRatings.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okList("Ratings retrieved successfully", newRatingResponses(views)))
}

// ListDeliveryDrivers handles GET /package/drivers.
func (s *Server) ListDeliveryDrivers(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListDeliveryDriversQuery(actorFrom(c), page)
	if err != nil {
		return err
	}
	roster, err := s.h.ListDeliveryDrivers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	body := okList("Delivery drivers retrieved successfully", newDriverResponses(roster.Drivers))
	body.Total = &roster.Total
	return c.JSON(http.StatusOK, body)
}

// GetSiteStats handles GET /package/site-stats.
func (s *Server) GetSiteStats(c echo.Context) error {
	stats, err := s.h.GetSiteStats.Handle(c.Request().Context(), queries.NewGetSiteStatsQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok("Site stats retrieved successfully", siteStatsResponse(stats)))
}

// GetTopDrivers handles GET /package/top-delivery-drivers.
func (s *Server) GetTopDrivers(c echo.Context) error {
	views, err := s.h.GetTopDrivers.Handle(c.Request().Context(), queries.NewGetTopDriversQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okList("Top delivery drivers retrieved successfully", newTopDriverResponses(views)))
}

// GetDeliveryStats handles GET /package/stats-data.
func (s *Server) GetDeliveryStats(c echo.Context) error {
	query, err := queries.NewGetDeliveryStatsQuery(actorFrom(c))
	if err != nil {
		return err
	}
	stats, err := s.h.GetDeliveryStats.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, okList("Stats retrieved successfully", newDayStatsResponses(stats.Days)))
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, ok("ok", nil))
}

func (s *Server) bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return err
	}
	return c.Validate(dst)
}

func (s *Server) respondWithParcel(c echo.Context, status int, message string, actor kernel.Actor, id kernel.UUID) error {
	query, err := queries.NewGetParcelQuery(actor, id)
	if err != nil {
		return err
	}
	view, err := s.h.GetParcel.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, ok(message, newParcelResponse(view)))
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
