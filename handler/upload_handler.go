package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/policy-insights-be/service"
	"github.com/tieubaoca/policy-insights-be/types"
)

type UploadHandler struct {
	policyService *service.PolicyService
}

func NewUploadHandler(policyService *service.PolicyService) *UploadHandler {
	return &UploadHandler{
		policyService: policyService,
	}
}

// HandleUploadPolicy persists a policy PDF into the library.
func (h *UploadHandler) HandleUploadPolicy(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid file",
		})
		return
	}
	defer file.Close()

	const maxSize = 10 << 20
	if header.Size > maxSize {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "File too large",
		})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Could not read uploaded file",
		})
		return
	}

	storedName, err := h.policyService.Save(header.Filename, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.UploadResponse{
			FileName: storedName,
		},
	})
}
