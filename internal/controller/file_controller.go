package controller

import (
	"net/http"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/service"
	"github.com/gin-gonic/gin"
)

type FileController struct {
	fileSvc   service.FileService
	reportSvc service.ReportService
}

func NewFileController(fileSvc service.FileService, reportSvc service.ReportService) *FileController {
	return &FileController{fileSvc: fileSvc, reportSvc: reportSvc}
}

// Create godoc
// @Summary Attach a documentation file to a class
// @Tags files
// @Accept json
// @Produce json
// @Param file body dto.ClassFileRequest true "File metadata"
// @Success 201 {object} model.ClassFile
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /files [post]
func (ctrl *FileController) Create(c *gin.Context) {
	var req dto.ClassFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	file, err := ctrl.fileSvc.CreateFile(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, file)
}

// Get godoc
// @Summary Get a class file by ID
// @Tags files
// @Produce json
// @Param id path int true "File ID"
// @Success 200 {object} model.ClassFile
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Router /files/{id} [get]
func (ctrl *FileController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	file, err := ctrl.fileSvc.GetFile(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, file)
}

// Update godoc
// @Summary Update a class file
// @Tags files
// @Accept json
// @Produce json
// @Param id path int true "File ID"
// @Param file body dto.ClassFileRequest true "File metadata"
// @Success 200 {object} model.ClassFile
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Router /files/{id} [put]
func (ctrl *FileController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ClassFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	file, err := ctrl.fileSvc.UpdateFile(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, file)
}

// Delete godoc
// @Summary Delete a class file
// @Tags files
// @Param id path int true "File ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Router /files/{id} [delete]
func (ctrl *FileController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.fileSvc.DeleteFile(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Assign godoc
// @Summary Assign a file to a worker
// @Description Creates the delivery row tracked for download and acceptance
// @Tags files
// @Accept json
// @Produce json
// @Param delivery body dto.FileDeliveryRequest true "File and worker"
// @Success 201 {object} model.FileDelivery
// @Failure 404 {object} dto.ErrorResponse "File or worker not found"
// @Router /deliveries [post]
func (ctrl *FileController) Assign(c *gin.Context) {
	var req dto.FileDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	delivery, err := ctrl.fileSvc.AssignFile(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, delivery)
}

// SetFlags godoc
// @Summary Flag a delivery as downloaded or accepted
// @Description Flags only move forward; omitted fields are untouched
// @Tags files
// @Accept json
// @Produce json
// @Param id path int true "Delivery ID"
// @Param flags body dto.FileDeliveryFlagRequest true "Flags to set"
// @Success 200 {object} model.FileDelivery
// @Failure 404 {object} dto.ErrorResponse "Delivery not found"
// @Router /deliveries/{id} [patch]
func (ctrl *FileController) SetFlags(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.FileDeliveryFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	delivery, err := ctrl.fileSvc.SetDeliveryFlags(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, delivery)
}

// Report godoc
// @Summary Delivery report for a file
// @Tags reports
// @Produce json
// @Param id path int true "File ID"
// @Success 200 {object} dto.FileReportDTO
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Router /files/{id}/report [get]
func (ctrl *FileController) Report(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, err := ctrl.reportSvc.DocumentationReport(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
