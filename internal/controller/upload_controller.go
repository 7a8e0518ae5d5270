package controller

import (
	"net/http"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/service"
	"github.com/gin-gonic/gin"
)

type UploadController struct {
	uploadSvc service.UploadService
}

func NewUploadController(uploadSvc service.UploadService) *UploadController {
	return &UploadController{uploadSvc: uploadSvc}
}

// Upload godoc
// @Summary Upload a file
// @Description Stores the file under a random name; kind selects the bucket (files, signatures, logos)
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param kind path string true "Upload kind" Enums(files, signatures, logos)
// @Param file formData file true "File to store"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file or unknown kind"
// @Failure 500 {object} dto.ErrorResponse "Storage error"
// @Router /uploads/{kind} [post]
func (ctrl *UploadController) Upload(c *gin.Context) {
	kind := service.UploadKind(c.Param("kind"))

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "file is required"})
		return
	}

	url, err := ctrl.uploadSvc.Store(kind, header)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.UploadResponse{Filename: header.Filename, URL: url})
}
