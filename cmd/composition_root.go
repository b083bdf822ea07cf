package cmd

import (
	"context"
	"log/slog"

	"parcelhub/api"
	httpin "parcelhub/internal/adapters/in/http"
	"parcelhub/internal/adapters/out/paymentgateway"
	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	gateway    ports.PaymentGateway
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	gateway, err := paymentgateway.NewClient(paymentgateway.Config{
		BaseURL:   cfg.PaymentGatewayURL,
		SecretKey: cfg.PaymentGatewaySecretKey,
	}, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    gateway,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) paymentSettings() commands.PaymentSettings {
	return commands.PaymentSettings{
		Currency:            c.cfg.PaymentCurrency,
		Timeout:             c.cfg.PaymentTimeout,
		VerifyConfirmations: c.cfg.PaymentVerifyConfirmations,
	}
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateEditParcelCommandHandler() commands.EditParcelCommandHandler {
	return commands.NewEditParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateChangeParcelStatusCommandHandler() commands.ChangeParcelStatusCommandHandler {
	return commands.NewChangeParcelStatusCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateCancelParcelCommandHandler() commands.CancelParcelCommandHandler {
	return commands.NewCancelParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateSubmitRatingCommandHandler() commands.SubmitRatingCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRatingCommandHandler(f)
}

func (c *CompositionRoot) CreateInitiatePaymentCommandHandler() commands.InitiatePaymentCommandHandler {
	return commands.NewInitiatePaymentCommandHandler(c.gateway, c.paymentSettings())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPaymentCommandHandler(f, c.gateway, c.paymentSettings())
}

func (c *CompositionRoot) CreateFindLateParcelsQueryHandler() queries.FindLateParcelsQueryHandler {
	return queries.NewFindLateParcelsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers wires every use case served over HTTP.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateParcel:    c.CreateCreateParcelCommandHandler(),
		EditParcel:      c.CreateEditParcelCommandHandler(),
		ChangeStatus:    c.CreateChangeParcelStatusCommandHandler(),
		AssignDriver:    c.CreateAssignDriverCommandHandler(),
		CancelParcel:    c.CreateCancelParcelCommandHandler(),
		SubmitRating:    c.CreateSubmitRatingCommandHandler(),
		InitiatePayment: c.CreateInitiatePaymentCommandHandler(),
		ConfirmPayment:  c.CreateConfirmPaymentCommandHandler(),

		GetParcel:            queries.NewGetParcelQueryHandler(c.gormDB),
		GetParcelHistory:     queries.NewGetParcelHistoryQueryHandler(c.gormDB),
		ListCustomerParcels:  queries.NewListCustomerParcelsQueryHandler(c.gormDB),
		ListParcels:          queries.NewListParcelsQueryHandler(c.gormDB),
		ListDriverDeliveries: queries.NewListDriverDeliveriesQueryHandler(c.gormDB),
		FilterParcelsByDate:  queries.NewFilterParcelsByDateQueryHandler(c.gormDB),
		ListDriverRatings:    queries.NewListDriverRatingsQueryHandler(c.gormDB),
		ListDeliveryDrivers:  queries.NewListDeliveryDriversQueryHandler(c.gormDB),
		GetSiteStats:         queries.NewGetSiteStatsQueryHandler(c.gormDB),
		GetTopDrivers:        queries.NewGetTopDriversQueryHandler(c.gormDB),
		GetDeliveryStats:     queries.NewGetDeliveryStatsQueryHandler(c.gormDB),
	}
}

// CreateEcho builds the HTTP edge and publishes the API document for /swagger.
func (c *CompositionRoot) CreateEcho(ctx context.Context) (*echo.Echo, error) {
	contract, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := api.RegisterSwagger(contract); err != nil {
		return nil, err
	}

	return httpin.NewEcho(httpin.NewServer(c.CreateHTTPHandlers()), httpin.Config{
		JWTSecret: []byte(c.cfg.JWTSecret),
		RateLimit: c.cfg.RateLimitRPS,
		Contract:  contract,
		Logger:    c.logger,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateFindLateParcelsQueryHandler(), jobs.Schedules{
		OverdueDeliveries: c.cfg.OverdueDeliveriesCron,
		StalePending:      c.cfg.StalePendingCron,
	}, c.logger)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
