package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/springpad/doc-parser/client"
	"github.com/springpad/doc-parser/dto"
	"github.com/springpad/doc-parser/utils"
)

// StatementService orchestrates document decoding and extraction. The
// pattern engine is the default path; the LLM path is selected per
// request and never mixes with it.
type StatementService struct {
	pdfProcessor PDFProcessor
	llmClient    *client.LLMClient
}

func NewStatementService(pdfProcessor PDFProcessor, llmClient *client.LLMClient) *StatementService {
	return &StatementService{
		pdfProcessor: pdfProcessor,
		llmClient:    llmClient,
	}
}

// ParseDocument decodes an uploaded CAS PDF and extracts a statement
// record from its text.
func (s *StatementService) ParseDocument(ctx context.Context, pdfData []byte, password string, mode dto.ParseMode) (*dto.StatementParseResponse, error) {
	pages, err := s.pdfProcessor.ExtractPageTexts(pdfData, password)
	if err != nil {
		return nil, fmt.Errorf("document decoding failed: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no text could be extracted from the document")
	}
	text := strings.Join(pages, "\n")

	response := &dto.StatementParseResponse{
		Mode:        mode,
		Pages:       len(pages),
		ProcessedAt: time.Now().Format(time.RFC3339),
	}

	if mode == dto.ModeLLM {
		rawJSON, err := s.llmClient.FormatStatement(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("LLM formatting failed: %w", err)
		}
		response.RawJSON = rawJSON
		return response, nil
	}

	record := utils.ParseStatement(text)
	log.Printf("Statement parsed: %d funds, document_type set: %t",
		record.PortfolioSummary.Len(), record.DocumentType != nil)

	response.Record = &record
	return response, nil
}

// ParseText runs the extraction core on already-extracted plain text.
func (s *StatementService) ParseText(text string) dto.StatementRecord {
	return utils.ParseStatement(text)
}
