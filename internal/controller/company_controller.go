package controller

import (
	"net/http"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type CompanyController struct {
	companySvc service.CompanyService
	periodSvc  service.PeriodService
	workerSvc  service.WorkerService
	importSvc  service.ImportService
	reportSvc  service.ReportService
}

func NewCompanyController(
	companySvc service.CompanyService,
	periodSvc service.PeriodService,
	workerSvc service.WorkerService,
	importSvc service.ImportService,
	reportSvc service.ReportService,
) *CompanyController {
	return &CompanyController{
		companySvc: companySvc,
		periodSvc:  periodSvc,
		workerSvc:  workerSvc,
		importSvc:  importSvc,
		reportSvc:  reportSvc,
	}
}

// Create godoc
// @Summary Register a company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CompanyRequest true "Company data"
// @Success 201 {object} model.Company
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [post]
func (ctrl *CompanyController) Create(c *gin.Context) {
	var req dto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CompanyRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	company, err := ctrl.companySvc.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

// Get godoc
// @Summary Get a company by ID
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} model.Company
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{id} [get]
func (ctrl *CompanyController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	company, err := ctrl.companySvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// List godoc
// @Summary List all companies
// @Tags companies
// @Produce json
// @Success 200 {array} model.Company
// @Router /companies [get]
func (ctrl *CompanyController) List(c *gin.Context) {
	companies, err := ctrl.companySvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// Update godoc
// @Summary Update a company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param company body dto.CompanyRequest true "Company data"
// @Success 200 {object} model.Company
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{id} [put]
func (ctrl *CompanyController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	company, err := ctrl.companySvc.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// Delete godoc
// @Summary Delete a company
// @Tags companies
// @Param id path int true "Company ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{id} [delete]
func (ctrl *CompanyController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.companySvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPeriods godoc
// @Summary List periods of a company
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {array} model.Period
// @Router /companies/{id}/periods [get]
func (ctrl *CompanyController) ListPeriods(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	periods, err := ctrl.periodSvc.ListByCompany(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, periods)
}

// ListWorkers godoc
// @Summary List workers of a company
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {array} model.Worker
// @Router /companies/{id}/workers [get]
func (ctrl *CompanyController) ListWorkers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	workers, err := ctrl.workerSvc.ListByCompany(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workers)
}

// ImportWorkers godoc
// @Summary Import a worker roster from XLSX
// @Description Uploads a spreadsheet and registers one worker (plus login) per row
// @Tags companies
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Company ID"
// @Param file formData file true "XLSX roster"
// @Success 201 {array} model.Worker
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Router /companies/{id}/workers/import [post]
func (ctrl *CompanyController) ImportWorkers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "file is required"})
		return
	}
	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "cannot read uploaded file"})
		return
	}
	defer f.Close()

	workers, err := ctrl.importSvc.ImportWorkers(id, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workers)
}

// InductionReport godoc
// @Summary Induction outcome report for a company
// @Tags reports
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} dto.CompanyReportDTO
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /companies/{id}/reports/induction [get]
func (ctrl *CompanyController) InductionReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, err := ctrl.reportSvc.InductionReport(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
