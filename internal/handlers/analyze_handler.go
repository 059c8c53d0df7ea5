package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/ats-analyzer/internal/models"
	"alfredoptarigan/ats-analyzer/internal/services"
)

type AnalyzeHandler struct {
	atsService     services.ATSService
	advisorService services.AdvisorService
	storageService services.StorageService
	pdfParser      services.PDFParserService
	maxFileSize    int64
}

func NewAnalyzeHandler(
	atsService services.ATSService,
	advisorService services.AdvisorService,
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		atsService:     atsService,
		advisorService: advisorService,
		storageService: storageService,
		pdfParser:      pdfParser,
		maxFileSize:    maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze. It accepts a resume as either an
// uploaded PDF (resume_file) or plain text (resume_text) plus the JD text,
// scores the pair, and attaches LLM advice. Advice failures never fail the
// response; only a scoring-engine infrastructure fault does.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	jdText := c.FormValue("jd_text")
	if strings.TrimSpace(jdText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jd_text is required",
		})
	}

	resumeText, err := h.resumeText(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	ctx := c.UserContext()

	log.Println("🔄 Scoring resume against JD...")
	report, err := h.atsService.CalculateATSAnalysis(ctx, resumeText, jdText)
	if err != nil {
		if errors.Is(err, services.ErrScoringUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "scoring temporarily unavailable",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to analyze resume: %v", err),
		})
	}

	log.Println("🤖 Generating career advice...")
	advice := h.advisorService.GenerateAdvice(ctx, resumeText, jdText, report.MissingSkills)

	return c.JSON(models.AnalyzeResponse{
		ID:            uuid.New().String(),
		ATSReport:     *report,
		AdvicePayload: *advice,
	})
}

// resumeText reads the resume either from the resume_text form value or by
// saving, parsing and deleting an uploaded resume_file PDF.
func (h *AnalyzeHandler) resumeText(c *fiber.Ctx) (string, error) {
	if text := c.FormValue("resume_text"); strings.TrimSpace(text) != "" {
		return text, nil
	}

	file, err := c.FormFile("resume_file")
	if err != nil {
		return "", fmt.Errorf("either resume_text or resume_file is required")
	}

	if file.Size > h.maxFileSize {
		return "", fmt.Errorf("resume file too large. Max size: %d bytes", h.maxFileSize)
	}

	filePath, err := h.storageService.SaveResume(file)
	if err != nil {
		return "", fmt.Errorf("failed to save resume file: %v", err)
	}
	defer func() {
		if err := h.storageService.DeleteFile(filePath); err != nil {
			log.Printf("⚠️  Failed to delete uploaded resume: %v\n", err)
		}
	}()

	text, err := h.pdfParser.ExtractText(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from PDF: %v", err)
	}

	return text, nil
}
