package handler

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/policy-insights-be/service"
	"github.com/tieubaoca/policy-insights-be/types"
)

type PolicyHandler struct {
	policyService  *service.PolicyService
	insightService *service.InsightService
}

func NewPolicyHandler(policyService *service.PolicyService, insightService *service.InsightService) *PolicyHandler {
	return &PolicyHandler{
		policyService:  policyService,
		insightService: insightService,
	}
}

// HandleList returns the policy library with display names.
func (h *PolicyHandler) HandleList(c *gin.Context) {
	policies, err := h.policyService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   policies,
	})
}

// HandleServeFile streams a stored policy PDF inline.
func (h *PolicyHandler) HandleServeFile(c *gin.Context) {
	requestedName := c.Query("file")
	if requestedName == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "File parameter is required",
		})
		return
	}
	if filepath.Ext(requestedName) != ".pdf" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Only PDF files are allowed",
		})
		return
	}

	path, err := h.policyService.Path(requestedName)
	if err != nil {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "File not found",
		})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s", requestedName))
	c.File(path)
}

// HandleSummarize returns a five-bullet summary of a stored policy.
// Summaries are not written to the query log.
func (h *PolicyHandler) HandleSummarize(c *gin.Context) {
	var req types.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	text, err := h.policyService.LoadText(req.Policy)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	summary, ok := h.insightService.Summarize(c.Request.Context(), text)
	c.JSON(http.StatusOK, types.DataResponse{
		Status: ok,
		Data: types.SummarizeResponse{
			Policy:  req.Policy,
			Summary: summary,
		},
	})
}
