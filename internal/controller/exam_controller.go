package controller

import (
	"net/http"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	examSvc service.ExamService
}

func NewExamController(examSvc service.ExamService) *ExamController {
	return &ExamController{examSvc: examSvc}
}

// Start godoc
// @Summary Start or resume an exam attempt
// @Description Returns the pending attempt if one exists, otherwise draws a fresh random question set. Answers never include correctness flags.
// @Tags exams
// @Accept json
// @Produce json
// @Param request body dto.StartExamRequest true "Enrollment to examine"
// @Success 200 {object} dto.ExamAttemptDTO
// @Failure 400 {object} dto.ErrorResponse "Attempt limit reached"
// @Failure 404 {object} dto.ErrorResponse "Enrollment or question bank not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/start [post]
func (ctrl *ExamController) Start(c *gin.Context) {
	var req dto.StartExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind StartExamRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	attempt, err := ctrl.examSvc.StartOrContinueAttempt(req.EnrollmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempt)
}

// Solve godoc
// @Summary Submit answers and grade the attempt
// @Description One-shot grading; a graded attempt cannot be resubmitted. Approval issues a certificate.
// @Tags exams
// @Accept json
// @Produce json
// @Param submission body dto.SolveExamRequest true "Chosen answers"
// @Success 200 {object} dto.ExamAttemptDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already graded"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/solve [post]
func (ctrl *ExamController) Solve(c *gin.Context) {
	var req dto.SolveExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SolveExamRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	attempt, err := ctrl.examSvc.GradeAttempt(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempt)
}

// Latest godoc
// @Summary Latest attempt of an enrollment
// @Tags exams
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.ExamAttemptDTO
// @Failure 404 {object} dto.ErrorResponse "No attempts yet"
// @Router /exams/enrollments/{id}/latest [get]
func (ctrl *ExamController) Latest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	attempt, err := ctrl.examSvc.LatestAttempt(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempt)
}

// MarkCertificateDownloaded godoc
// @Summary Mark the attempt's certificate as downloaded
// @Tags exams
// @Param id path int true "Attempt ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Attempt or certificate not found"
// @Router /exams/attempts/{id}/certificate-downloaded [patch]
func (ctrl *ExamController) MarkCertificateDownloaded(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.examSvc.MarkCertificateDownloaded(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
