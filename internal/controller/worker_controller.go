package controller

import (
	"net/http"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/service"
	"github.com/gin-gonic/gin"
)

type WorkerController struct {
	workerSvc     service.WorkerService
	enrollmentSvc service.EnrollmentService
	fileSvc       service.FileService
}

func NewWorkerController(workerSvc service.WorkerService, enrollmentSvc service.EnrollmentService, fileSvc service.FileService) *WorkerController {
	return &WorkerController{workerSvc: workerSvc, enrollmentSvc: enrollmentSvc, fileSvc: fileSvc}
}

// Create godoc
// @Summary Register a worker
// @Description Registers the worker and a login account whose username and initial password are the DNI
// @Tags workers
// @Accept json
// @Produce json
// @Param worker body dto.WorkerRequest true "Worker data"
// @Success 201 {object} model.Worker
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /workers [post]
func (ctrl *WorkerController) Create(c *gin.Context) {
	var req dto.WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	worker, err := ctrl.workerSvc.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, worker)
}

// Get godoc
// @Summary Get a worker by ID
// @Tags workers
// @Produce json
// @Param id path int true "Worker ID"
// @Success 200 {object} model.Worker
// @Failure 404 {object} dto.ErrorResponse "Worker not found"
// @Router /workers/{id} [get]
func (ctrl *WorkerController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	worker, err := ctrl.workerSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, worker)
}

// GetByDNI godoc
// @Summary Look up a worker by DNI
// @Tags workers
// @Produce json
// @Param dni path string true "Worker DNI"
// @Success 200 {object} model.Worker
// @Failure 404 {object} dto.ErrorResponse "Worker not found"
// @Router /workers/dni/{dni} [get]
func (ctrl *WorkerController) GetByDNI(c *gin.Context) {
	dni := c.Param("dni")
	if dni == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "dni is required"})
		return
	}
	worker, err := ctrl.workerSvc.GetByDNI(dni)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, worker)
}

// Update godoc
// @Summary Update a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param id path int true "Worker ID"
// @Param worker body dto.WorkerRequest true "Worker data"
// @Success 200 {object} model.Worker
// @Failure 404 {object} dto.ErrorResponse "Worker not found"
// @Router /workers/{id} [put]
func (ctrl *WorkerController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	worker, err := ctrl.workerSvc.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, worker)
}

// Delete godoc
// @Summary Delete a worker
// @Tags workers
// @Param id path int true "Worker ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Worker not found"
// @Router /workers/{id} [delete]
func (ctrl *WorkerController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.workerSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListEnrollments godoc
// @Summary List enrollments of a worker
// @Tags workers
// @Produce json
// @Param id path int true "Worker ID"
// @Success 200 {array} model.Enrollment
// @Router /workers/{id}/enrollments [get]
func (ctrl *WorkerController) ListEnrollments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	enrollments, err := ctrl.enrollmentSvc.ListByWorker(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

// ListDeliveries godoc
// @Summary List file deliveries of a worker
// @Tags workers
// @Produce json
// @Param id path int true "Worker ID"
// @Success 200 {array} model.FileDelivery
// @Router /workers/{id}/deliveries [get]
func (ctrl *WorkerController) ListDeliveries(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deliveries, err := ctrl.fileSvc.ListDeliveriesByWorker(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliveries)
}
