package models

import "slices"

type PipelineStage struct {
	ID    StageID `json:"id"`
	Title string  `json:"title"`
}

// StaffRecord - сотрудник регионального офиса (HO), назначается интервьюером
type StaffRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	EmployeeID  string `json:"employeeId"`
	Designation string `json:"designation"`
	Region      string `json:"region"`
}

// OrderedResultStages - этапы, по которым есть результаты, в порядке воронки;
// этапы вне воронки идут в конце по алфавиту
func OrderedResultStages(results map[StageID]InterviewResult, stages []PipelineStage) []StageID {
	ordered := make([]StageID, 0, len(results))
	known := map[StageID]bool{}
	for _, stage := range stages {
		known[stage.ID] = true
		if _, ok := results[stage.ID]; ok {
			ordered = append(ordered, stage.ID)
		}
	}
	extra := []StageID{}
	for stageID := range results {
		if !known[stageID] {
			extra = append(extra, stageID)
		}
	}
	slices.Sort(extra)
	return append(ordered, extra...)
}
