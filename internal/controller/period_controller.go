package controller

import (
	"net/http"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/service"
	"github.com/gin-gonic/gin"
)

type PeriodController struct {
	periodSvc service.PeriodService
	classSvc  service.ClassService
}

func NewPeriodController(periodSvc service.PeriodService, classSvc service.ClassService) *PeriodController {
	return &PeriodController{periodSvc: periodSvc, classSvc: classSvc}
}

// Create godoc
// @Summary Open a period for a company
// @Tags periods
// @Accept json
// @Produce json
// @Param period body dto.PeriodRequest true "Period data"
// @Success 201 {object} model.Period
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /periods [post]
func (ctrl *PeriodController) Create(c *gin.Context) {
	var req dto.PeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	period, err := ctrl.periodSvc.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, period)
}

// Get godoc
// @Summary Get a period by ID
// @Tags periods
// @Produce json
// @Param id path int true "Period ID"
// @Success 200 {object} model.Period
// @Failure 404 {object} dto.ErrorResponse "Period not found"
// @Router /periods/{id} [get]
func (ctrl *PeriodController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	period, err := ctrl.periodSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, period)
}

// List godoc
// @Summary List all periods
// @Tags periods
// @Produce json
// @Success 200 {array} model.Period
// @Router /periods [get]
func (ctrl *PeriodController) List(c *gin.Context) {
	periods, err := ctrl.periodSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, periods)
}

// Update godoc
// @Summary Update a period
// @Description Updates period metadata, including opening or closing it via the active flag
// @Tags periods
// @Accept json
// @Produce json
// @Param id path int true "Period ID"
// @Param period body dto.PeriodRequest true "Period data"
// @Success 200 {object} model.Period
// @Failure 404 {object} dto.ErrorResponse "Period not found"
// @Router /periods/{id} [put]
func (ctrl *PeriodController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.PeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	period, err := ctrl.periodSvc.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, period)
}

// Delete godoc
// @Summary Delete a period
// @Tags periods
// @Param id path int true "Period ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Period not found"
// @Router /periods/{id} [delete]
func (ctrl *PeriodController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.periodSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListClasses godoc
// @Summary List classes of a period
// @Description Optionally filter by class type with the type query param
// @Tags periods
// @Produce json
// @Param id path int true "Period ID"
// @Param type query string false "Class type (induction, training, documentation)"
// @Success 200 {array} model.Class
// @Router /periods/{id}/classes [get]
func (ctrl *PeriodController) ListClasses(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	classType := c.Query("type")
	var (
		classes interface{}
		err     error
	)
	if classType != "" {
		classes, err = ctrl.classSvc.ListByPeriodAndType(id, classType)
	} else {
		classes, err = ctrl.classSvc.ListByPeriod(id)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}
