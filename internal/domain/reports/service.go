package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"worklog/internal/domain/dashboard"
)

type Evaluator interface {
	Evaluation(ctx context.Context, now time.Time) (dashboard.Evaluation, error)
}

type Service struct {
	evaluator Evaluator
	outputDir string
}

func NewService(evaluator Evaluator, outputDir string) *Service {
	if outputDir == "" {
		outputDir = "storage/reports"
	}
	return &Service{evaluator: evaluator, outputDir: outputDir}
}

// GenerateEvaluationPDF renders the current evaluation window to a PDF file
// and returns its path.
func (s *Service) GenerateEvaluationPDF(ctx context.Context, now time.Time) (string, error) {
	evaluation, err := s.evaluator.Evaluation(ctx, now)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(s.outputDir, "evaluation-"+uuid.NewString()+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Performance Evaluation")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	if len(evaluation.Weeks) > 0 {
		pdf.Cell(0, 8, fmt.Sprintf("Window: %s to %s", evaluation.Weeks[0], evaluation.Weeks[len(evaluation.Weeks)-1]))
		pdf.Ln(7)
	}
	mode := "raw total (no active weight profile)"
	if evaluation.Weighted {
		mode = "weighted by " + evaluation.WeightProfileName
	}
	pdf.Cell(0, 8, fmt.Sprintf("Score: %.1f (%s)", evaluation.AggregateScore, mode))
	pdf.Ln(7)
	if evaluation.HasTarget {
		pdf.Cell(0, 8, fmt.Sprintf("Band: %s (target %s)", evaluation.Band, evaluation.TargetName))
	} else {
		pdf.Cell(0, 8, "Band: no active target")
	}
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Dimension breakdown")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range evaluation.Breakdown {
		pdf.Cell(0, 7, fmt.Sprintf("%-8s %5d pts  %5.1f%%  weight %.2f", row.Dimension, row.Points, row.Share, row.Weight))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Insights")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, insight := range evaluation.Insights {
		pdf.MultiCell(0, 6, "- "+insight, "", "L", false)
		pdf.Ln(1)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
