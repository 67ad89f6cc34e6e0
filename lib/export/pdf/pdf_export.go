package pdfexport

import (
	"bytes"
	"fmt"
	"hr-pipeline/models"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 7.0
)

// GenerateScorecard формирует карту оценки кандидата по всем пройденным собеседованиям.
// Используются встроенные шрифты pdf, текст переводится в cp1252
func GenerateScorecard(rec models.Candidate, stages []models.PipelineStage) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateScorecard panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(fmt.Sprintf("Scorecard - %v", rec.Name)), false)
	pdf.AddPage()

	// заголовок
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, tr(rec.Name), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 11)
	writeLine(pdf, tr, "Position", rec.Job)
	writeLine(pdf, tr, "Current stage", stageTitle(stages, rec.Status))
	writeLine(pdf, tr, "Score", fmt.Sprintf("%v", rec.Score))
	writeLine(pdf, tr, "Qualification", strings.Join(rec.Metrics, ", "))
	if rec.Interviewer != nil {
		writeLine(pdf, tr, "Interviewer", *rec.Interviewer)
	}
	pdf.Ln(lineHeight)

	stageIDs := models.OrderedResultStages(rec.InterviewResults, stages)
	if len(stageIDs) == 0 {
		pdf.SetFont(fontFamily, "I", 11)
		pdf.CellFormat(0, lineHeight, tr("No interview results yet"), "", 1, "L", false, 0, "")
	}
	for _, stageID := range stageIDs {
		writeResult(pdf, tr, stageTitle(stages, stageID), rec.InterviewResults[stageID])
	}
	if pdf.Error() != nil {
		return nil, errors.Wrap(pdf.Error(), "ошибка формирования pdf")
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return buf.Bytes(), nil
}

func writeLine(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont(fontFamily, "B", 11)
	pdf.CellFormat(40, lineHeight, tr(label+":"), "", 0, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 11)
	pdf.CellFormat(0, lineHeight, tr(value), "", 1, "L", false, 0, "")
}

func writeResult(pdf *fpdf.Fpdf, tr func(string) string, title string, result models.InterviewResult) {
	pdf.SetFont(fontFamily, "B", 12)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(0, lineHeight+1, tr(fmt.Sprintf("%v - %v", title, strings.ToUpper(string(result.Result)))), "1", 1, "L", true, 0, "")
	pdf.SetFont(fontFamily, "", 11)
	for _, criterion := range models.ScorecardCriteria {
		rating, ok := result.Scorecard.Ratings[criterion]
		if !ok {
			continue
		}
		pdf.CellFormat(60, lineHeight, tr(criterion), "LR", 0, "L", false, 0, "")
		pdf.CellFormat(0, lineHeight, fmt.Sprintf("%v / 5", rating), "R", 1, "L", false, 0, "")
	}
	if result.Scorecard.Comments != "" {
		pdf.MultiCell(0, lineHeight, tr(result.Scorecard.Comments), "LRB", "L", false)
	} else {
		pdf.CellFormat(0, 0, "", "T", 1, "L", false, 0, "")
	}
	pdf.Ln(lineHeight / 2)
}

func stageTitle(stages []models.PipelineStage, stageID models.StageID) string {
	for _, stage := range stages {
		if stage.ID == stageID {
			return stage.Title
		}
	}
	return string(stageID)
}
