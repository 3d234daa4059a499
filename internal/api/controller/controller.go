package controller

import (
	"github.com/gfssolutions/solar-api/internal/service/lead"
	"github.com/gfssolutions/solar-api/internal/service/simulation"
)

type Controller struct {
	leadService       *lead.Service
	simulationService *simulation.Service
}

func NewController(leadService *lead.Service, simulationService *simulation.Service) *Controller {
	return &Controller{leadService: leadService, simulationService: simulationService}
}
