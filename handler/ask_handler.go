package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/policy-insights-be/service"
	"github.com/tieubaoca/policy-insights-be/types"
)

type AskHandler struct {
	insightService *service.InsightService
	policyService  *service.PolicyService
	pdfService     *service.PDFService
}

func NewAskHandler(
	insightService *service.InsightService,
	policyService *service.PolicyService,
	pdfService *service.PDFService,
) *AskHandler {
	return &AskHandler{
		insightService: insightService,
		policyService:  policyService,
		pdfService:     pdfService,
	}
}

// HandleAsk answers a question about a stored policy, or a general HR
// question when no policy is named. Every exchange is logged, including
// completion failures (tagged ok=false).
func (h *AskHandler) HandleAsk(c *gin.Context) {
	var req types.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	contextName := types.ContextGeneral
	contextText := ""
	if req.Policy != "" {
		text, err := h.policyService.LoadText(req.Policy)
		if err != nil {
			status := http.StatusUnprocessableEntity
			if !errors.Is(err, service.ErrDocumentRead) {
				status = http.StatusNotFound
			}
			c.JSON(status, types.DataResponse{
				Status:  false,
				Message: err.Error(),
			})
			return
		}
		contextName = req.Policy
		contextText = text
	}

	h.answer(c, contextName, contextText, req.Question)
}

// HandleAskUpload answers a question about a transiently uploaded PDF. The
// document bytes live only for this request and are never persisted.
func (h *AskHandler) HandleAskUpload(c *gin.Context) {
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

	var contextText string
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".pdf":
		contextText, err = h.pdfService.ExtractBytes(data)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, types.DataResponse{
				Status:  false,
				Message: "Could not read the uploaded file. Please upload a valid PDF.",
			})
			return
		}
	case ".txt":
		contextText = string(data)
	default:
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Only PDF and plain-text files are allowed",
		})
		return
	}

	h.answer(c, header.Filename, contextText, c.Request.FormValue("question"))
}

// HandleFAQs generates FAQ-style pairs from every logged question.
func (h *AskHandler) HandleFAQs(c *gin.Context) {
	faqs, ok, err := h.insightService.GenerateFAQs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: ok,
		Data: types.FAQResponse{
			FAQs: faqs,
		},
	})
}

func (h *AskHandler) answer(c *gin.Context, contextName, contextText, question string) {
	record, err := h.insightService.Ask(c.Request.Context(), contextName, contextText, question)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuestion) {
			c.JSON(http.StatusBadRequest, types.DataResponse{
				Status:  false,
				Message: "Please enter a question.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.AskResponse{
			Context:  record.Context,
			Question: record.Question,
			Answer:   record.Answer,
			OK:       record.OK,
		},
	})
}
