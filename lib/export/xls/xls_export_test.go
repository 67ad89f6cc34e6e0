package xlsexport

import (
	"hr-pipeline/models"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportCandidateList(t *testing.T) {
	stages := []models.PipelineStage{
		{ID: models.ShortlistedStage, Title: "Shortlisted"},
		{ID: models.TechnicalTestStage, Title: "Technical Test"},
	}
	interviewer := "Amit Patel"
	list := []models.Candidate{
		{
			ID: 1, Name: "Priya Singh", Score: 91, Metrics: []string{"Arduino", "M.Tech"},
			Status: models.TechnicalTestStage, Job: "Robotics Instructor Level2", TimeInStage: 2,
			Interviewer: &interviewer,
			InterviewResults: map[models.StageID]models.InterviewResult{
				"phone-screen":          {Result: models.PassVerdict},
				models.ShortlistedStage: {Result: models.PassVerdict},
			},
		},
		{ID: 2, Name: "seema aggarwal", Score: 48, Status: models.NewStatus, Job: "Robotics instructor Level1"},
	}

	t.Run(`export check`, func(t *testing.T) {
		buf, err := NewHandler().ExportCandidateList(list, stages)
		require.Nil(t, err)
		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		rows, err := f.GetRows(boardSheetName)
		require.Nil(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, candidateHeaders, rows[0])
		require.Equal(t, []string{"Priya Singh", "Robotics Instructor Level2", "Technical Test", "91", "Arduino, M.Tech", "Amit Patel", "2", "Shortlisted: pass; phone-screen: pass"}, rows[1])
		require.Equal(t, "Новый", rows[2][2])
	})

	t.Run(`empty list has only header`, func(t *testing.T) {
		buf, err := NewHandler().ExportCandidateList(nil, stages)
		require.Nil(t, err)
		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()
		rows, err := f.GetRows(boardSheetName)
		require.Nil(t, err)
		require.Len(t, rows, 1)
	})
}
