package pipelineapimodels

import (
	"hr-pipeline/models"
	"strings"

	"github.com/pkg/errors"
)

type AssignInterviewer struct {
	Name string `json:"name"` // ФИО интервьюера
}

func (r AssignInterviewer) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указан интервьюер")
	}
	return nil
}

// InterviewResult - результат собеседования. Значение result проверяется в хендлере,
// некорректное значение игнорируется без ошибки
type InterviewResult struct {
	StageID models.StageID `json:"stage_id"` // этап, по которому выставлен результат
	Result  string         `json:"result"`   // pass/fail
}

func (r InterviewResult) Validate() error {
	if r.StageID == "" {
		return errors.New("не указан этап")
	}
	return nil
}

type MutationResult struct {
	Applied   bool              `json:"applied"`             // изменение применено
	Candidate *models.Candidate `json:"candidate,omitempty"` // запись после изменения
}

type BoardColumn struct {
	Stage      models.PipelineStage `json:"stage"`
	Candidates []models.Candidate   `json:"candidates"`
}

type Board struct {
	New      []models.Candidate `json:"new"`
	Columns  []BoardColumn      `json:"columns"`
	Rejected []models.Candidate `json:"rejected"`
}
