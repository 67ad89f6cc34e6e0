package pdfexport

import (
	"bytes"
	"hr-pipeline/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateScorecard(t *testing.T) {
	stages := []models.PipelineStage{
		{ID: models.TechnicalTestStage, Title: "Technical Test"},
		{ID: models.TechnicalInterviewStage, Title: "Technical Interview"},
	}

	t.Run(`candidate with results`, func(t *testing.T) {
		rec := models.Candidate{
			ID: 8, Name: "Priya Singh", Score: 91, Metrics: []string{"Arduino"}, Job: "Robotics Instructor Level2",
			Status: models.TechnicalInterviewStage,
			InterviewResults: map[models.StageID]models.InterviewResult{
				models.TechnicalTestStage: {
					Result: models.PassVerdict,
					Scorecard: models.Scorecard{
						Ratings:  map[string]int{models.TechnicalSkillCriterion: 5, models.ProblemSolvingCriterion: 4, models.CommunicationCriterion: 3},
						Comments: "Strong candidate, good fit for the role.",
					},
				},
			},
		}
		file, err := GenerateScorecard(rec, stages)
		require.Nil(t, err)
		require.True(t, bytes.HasPrefix(file, []byte("%PDF-")))
	})

	t.Run(`candidate without results`, func(t *testing.T) {
		file, err := GenerateScorecard(models.Candidate{ID: 1, Name: "Harish sharma", Status: models.NewStatus}, stages)
		require.Nil(t, err)
		require.NotEmpty(t, file)
	})
}
