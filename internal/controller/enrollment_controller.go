package controller

import (
	"net/http"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/service"
	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	enrollmentSvc service.EnrollmentService
}

func NewEnrollmentController(enrollmentSvc service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentSvc: enrollmentSvc}
}

// Create godoc
// @Summary Enroll a worker in a class
// @Description Binds a worker to a class with an attempt allowance
// @Tags enrollments
// @Accept json
// @Produce json
// @Param enrollment body dto.EnrollmentRequest true "Enrollment data"
// @Success 201 {object} model.Enrollment
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Class or worker not found"
// @Router /enrollments [post]
func (ctrl *EnrollmentController) Create(c *gin.Context) {
	var req dto.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	enrollment, err := ctrl.enrollmentSvc.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

// Get godoc
// @Summary Get an enrollment with its class and worker
// @Tags enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} model.Enrollment
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [get]
func (ctrl *EnrollmentController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	enrollment, err := ctrl.enrollmentSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// ListByClass godoc
// @Summary List enrollments of a class
// @Tags enrollments
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {array} model.Enrollment
// @Router /classes/{id}/enrollments [get]
func (ctrl *EnrollmentController) ListByClass(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	enrollments, err := ctrl.enrollmentSvc.ListByClass(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

// Update godoc
// @Summary Update an enrollment
// @Description Mainly used to adjust the attempt allowance
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param enrollment body dto.EnrollmentRequest true "Enrollment data"
// @Success 200 {object} model.Enrollment
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [put]
func (ctrl *EnrollmentController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	enrollment, err := ctrl.enrollmentSvc.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// Delete godoc
// @Summary Delete an enrollment
// @Tags enrollments
// @Param id path int true "Enrollment ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [delete]
func (ctrl *EnrollmentController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.enrollmentSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
