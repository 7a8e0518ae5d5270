package controller

import (
	"fmt"
	"net/http"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/service"
	"github.com/gin-gonic/gin"
)

type ClassController struct {
	classSvc  service.ClassService
	bankSvc   service.BankService
	fileSvc   service.FileService
	reportSvc service.ReportService
}

func NewClassController(
	classSvc service.ClassService,
	bankSvc service.BankService,
	fileSvc service.FileService,
	reportSvc service.ReportService,
) *ClassController {
	return &ClassController{classSvc: classSvc, bankSvc: bankSvc, fileSvc: fileSvc, reportSvc: reportSvc}
}

// Create godoc
// @Summary Create a class in a period
// @Tags classes
// @Accept json
// @Produce json
// @Param class body dto.ClassRequest true "Class data"
// @Success 201 {object} model.Class
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Period not found"
// @Router /classes [post]
func (ctrl *ClassController) Create(c *gin.Context) {
	var req dto.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	class, err := ctrl.classSvc.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, class)
}

// Get godoc
// @Summary Get a class by ID with its period
// @Tags classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} model.Class
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /classes/{id} [get]
func (ctrl *ClassController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	class, err := ctrl.classSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

// List godoc
// @Summary List all classes
// @Tags classes
// @Produce json
// @Success 200 {array} model.Class
// @Router /classes [get]
func (ctrl *ClassController) List(c *gin.Context) {
	classes, err := ctrl.classSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// Update godoc
// @Summary Update a class
// @Tags classes
// @Accept json
// @Produce json
// @Param id path int true "Class ID"
// @Param class body dto.ClassRequest true "Class data"
// @Success 200 {object} model.Class
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /classes/{id} [put]
func (ctrl *ClassController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	class, err := ctrl.classSvc.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

// Delete godoc
// @Summary Delete a class
// @Tags classes
// @Param id path int true "Class ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /classes/{id} [delete]
func (ctrl *ClassController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.classSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBank godoc
// @Summary Get the question bank of a class
// @Tags classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} model.QuestionBank
// @Failure 404 {object} dto.ErrorResponse "No bank for this class"
// @Router /classes/{id}/bank [get]
func (ctrl *ClassController) GetBank(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	bank, err := ctrl.bankSvc.GetBankByClass(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bank)
}

// ListFiles godoc
// @Summary List documentation files of a class
// @Tags classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {array} model.ClassFile
// @Router /classes/{id}/files [get]
func (ctrl *ClassController) ListFiles(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	files, err := ctrl.fileSvc.ListFilesByClass(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

// Report godoc
// @Summary Outcome report for a class
// @Tags reports
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} dto.ClassReportDTO
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /classes/{id}/report [get]
func (ctrl *ClassController) Report(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, err := ctrl.reportSvc.TrainingReport(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ReportXLSX godoc
// @Summary Download the class report as an XLSX workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Class ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /classes/{id}/report.xlsx [get]
func (ctrl *ClassController) ReportXLSX(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	data, err := ctrl.reportSvc.ClassReportXLSX(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="class-%d-report.xlsx"`, id))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
