package xlsexport

import (
	"bytes"
	"hr-pipeline/models"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCandidateList(list []models.Candidate, stages []models.PipelineStage) (*bytes.Buffer, error)
}

func NewHandler() Provider {
	return impl{}
}

type impl struct{}

const boardSheetName = "Воронка"

var candidateHeaders = []string{"ФИО", "Вакансия", "Этап", "Баллы", "Квалификация", "Интервьюер", "Дней на этапе", "Результаты"}

func (i impl) ExportCandidateList(list []models.Candidate, stages []models.PipelineStage) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeCandidateData(f, sheet, list, stages, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, boardSheetName); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа в xlsx")
	}
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []models.Candidate, stages []models.PipelineStage, row int) (int, error) {
	titles := stageTitles(stages)
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.Name,
			item.Job,
			stageTitle(titles, item.Status),
			item.Score,
			strings.Join(item.Metrics, ", "),
			item.GetInterviewer(),
			item.TimeInStage,
			resultsSummary(item, stages, titles),
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

func stageTitles(stages []models.PipelineStage) map[models.StageID]string {
	titles := map[models.StageID]string{
		models.NewStatus:      "Новый",
		models.RejectedStatus: "Отклонён",
	}
	for _, stage := range stages {
		titles[stage.ID] = stage.Title
	}
	return titles
}

func stageTitle(titles map[models.StageID]string, stageID models.StageID) string {
	if title, ok := titles[stageID]; ok {
		return title
	}
	return string(stageID)
}

// resultsSummary - результаты в порядке этапов воронки, этапы вне воронки в конце
func resultsSummary(item models.Candidate, stages []models.PipelineStage, titles map[models.StageID]string) string {
	if len(item.InterviewResults) == 0 {
		return ""
	}
	parts := []string{}
	for _, stageID := range models.OrderedResultStages(item.InterviewResults, stages) {
		parts = append(parts, stageTitle(titles, stageID)+": "+string(item.InterviewResults[stageID].Result))
	}
	return strings.Join(parts, "; ")
}
