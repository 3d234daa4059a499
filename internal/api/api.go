package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/gfssolutions/solar-api/internal/api/controller"
	"github.com/gfssolutions/solar-api/internal/pkg/constants"
	"github.com/gfssolutions/solar-api/internal/pkg/mailer"
	"github.com/gfssolutions/solar-api/internal/pkg/store"
	"github.com/gfssolutions/solar-api/internal/service/lead"
	"github.com/gfssolutions/solar-api/internal/service/simulation"
)

type APIService struct {
	router            *echo.Echo
	leadService       *lead.Service
	simulationService *simulation.Service
}

func (svc *APIService) Serve(addr string) error {
	return svc.router.Start(addr)
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store, m mailer.Mailer) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{viper.GetString(constants.ViperKeySiteOrigin)},
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"Content-Type"},
	}))

	svc.leadService = lead.NewService(store, m, lead.Options{
		NotifyTo: viper.GetString(constants.ViperKeyLeadToEmail),
		From:     viper.GetString(constants.ViperKeyLeadFromEmail),
	})
	svc.simulationService = simulation.NewService()

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.leadService, svc.simulationService)

	leads := api.Group("/leads")
	leads.POST("", cntrl.SubmitLead)
	leads.POST("/steps", cntrl.ValidateLeadStep)

	simulations := api.Group("/simulations")
	simulations.POST("", cntrl.Simulate)

	estimates := api.Group("/estimates")
	estimates.POST("/quick", cntrl.QuickEstimate)

	return svc, nil
}
