package handler

import (
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/springpad/doc-parser/dto"
	"github.com/springpad/doc-parser/service"

	"github.com/gin-gonic/gin"
)

type StatementHandler struct {
	statementService *service.StatementService

	lastRecord   *dto.StatementRecord
	lastRecordMu sync.RWMutex
}

func NewStatementHandler(statementService *service.StatementService) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
	}
}

// ParseStatement handles the POST /statement/parse endpoint
func (h *StatementHandler) ParseStatement(c *gin.Context) {
	log.Println("Received statement parse request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	request := &dto.StatementParseRequest{
		File:     fileHeader,
		Password: c.PostForm("password"),
		Mode:     dto.ParseMode(c.PostForm("mode")),
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	pdfData, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
		return
	}

	response, err := h.statementService.ParseDocument(c.Request.Context(), pdfData, request.Password, request.Mode)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to parse statement", err)
		return
	}

	if response.Record != nil {
		h.lastRecordMu.Lock()
		h.lastRecord = response.Record
		h.lastRecordMu.Unlock()
	}

	log.Printf("Statement parse completed (mode=%s, pages=%d)", response.Mode, response.Pages)
	c.JSON(http.StatusOK, response)
}

// ParseText handles the POST /statement/parse-text endpoint, running the
// engine on already-extracted page text.
func (h *StatementHandler) ParseText(c *gin.Context) {
	var request dto.ParseTextRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	record := h.statementService.ParseText(request.Text)

	h.lastRecordMu.Lock()
	h.lastRecord = &record
	h.lastRecordMu.Unlock()

	c.JSON(http.StatusOK, record)
}

// Latest returns the last parsed record held in memory.
func (h *StatementHandler) Latest(c *gin.Context) {
	h.lastRecordMu.RLock()
	record := h.lastRecord
	h.lastRecordMu.RUnlock()

	if record == nil {
		h.sendError(c, http.StatusNotFound, "No statement parsed yet", nil)
		return
	}
	c.JSON(http.StatusOK, record)
}

// sendError sends a structured error response
func (h *StatementHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "PARSE_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
