package controller

import (
	"net/http"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/service"
	"github.com/gin-gonic/gin"
)

type BankController struct {
	bankSvc   service.BankService
	importSvc service.ImportService
}

func NewBankController(bankSvc service.BankService, importSvc service.ImportService) *BankController {
	return &BankController{bankSvc: bankSvc, importSvc: importSvc}
}

// CreateBank godoc
// @Summary Create a question bank for a class
// @Tags banks
// @Accept json
// @Produce json
// @Param bank body dto.QuestionBankRequest true "Bank data"
// @Success 201 {object} model.QuestionBank
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /banks [post]
func (ctrl *BankController) CreateBank(c *gin.Context) {
	var req dto.QuestionBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	bank, err := ctrl.bankSvc.CreateBank(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bank)
}

// GetBank godoc
// @Summary Get a question bank with its questions
// @Tags banks
// @Produce json
// @Param id path int true "Bank ID"
// @Success 200 {object} model.QuestionBank
// @Failure 404 {object} dto.ErrorResponse "Bank not found"
// @Router /banks/{id} [get]
func (ctrl *BankController) GetBank(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	bank, err := ctrl.bankSvc.GetBank(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bank)
}

// DeleteBank godoc
// @Summary Delete a question bank
// @Tags banks
// @Param id path int true "Bank ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Bank not found"
// @Router /banks/{id} [delete]
func (ctrl *BankController) DeleteBank(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.bankSvc.DeleteBank(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportQuestions godoc
// @Summary Import questions into a bank from XLSX
// @Description One question per row: text, index of the correct answer (1-4), then the four answer texts
// @Tags banks
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Bank ID"
// @Param file formData file true "XLSX question sheet"
// @Success 201 {object} model.QuestionBank
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Failure 404 {object} dto.ErrorResponse "Bank not found"
// @Router /banks/{id}/import [post]
func (ctrl *BankController) ImportQuestions(c *gin.Context) {
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

	bank, err := ctrl.importSvc.ImportQuestionBank(id, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bank)
}

// CreateQuestion godoc
// @Summary Author a question with its four answers
// @Tags banks
// @Accept json
// @Produce json
// @Param question body dto.QuestionRequest true "Question with exactly one correct answer"
// @Success 201 {object} model.Question
// @Failure 400 {object} dto.ErrorResponse "Invalid answer set"
// @Failure 404 {object} dto.ErrorResponse "Bank not found"
// @Router /questions [post]
func (ctrl *BankController) CreateQuestion(c *gin.Context) {
	var req dto.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	question, err := ctrl.bankSvc.CreateQuestion(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary Update a question and its answers
// @Tags banks
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionRequest true "Updated question data"
// @Success 200 {object} model.Question
// @Failure 400 {object} dto.ErrorResponse "Invalid answer set"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [put]
func (ctrl *BankController) UpdateQuestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	question, err := ctrl.bankSvc.UpdateQuestion(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags banks
// @Param id path int true "Question ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [delete]
func (ctrl *BankController) DeleteQuestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.bankSvc.DeleteQuestion(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
