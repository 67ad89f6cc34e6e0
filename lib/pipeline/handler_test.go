package pipelinehandler

import (
	"hr-pipeline/models"
	wsmodels "hr-pipeline/models/ws"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type publisherMock struct {
	mu       sync.Mutex
	messages []wsmodels.ServerMessage
}

func (p *publisherMock) SendMessage(msg wsmodels.ServerMessage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
}

func (p *publisherMock) codes() []wsmodels.MessageCode {
	p.mu.Lock()
	defer p.mu.Unlock()
	codes := []wsmodels.MessageCode{}
	for _, msg := range p.messages {
		codes = append(codes, msg.Code)
	}
	return codes
}

type mailerMock struct {
	configured bool
	sent       chan string
}

func (m *mailerMock) SendEMail(to, subject, message string) error {
	m.sent <- to
	return nil
}

func (m *mailerMock) IsConfigured() bool {
	return m.configured
}

func fixedScorer(rating int) ScoreFunc {
	return func(string) int {
		return rating
	}
}

func TestPipelineViews(t *testing.T) {
	t.Run(`seeded views check`, func(t *testing.T) {
		h := NewSeededHandler()
		require.Len(t, h.Candidates(), 11)
		require.Len(t, h.NewCandidates(), 3)
		require.Empty(t, h.ShortlistedCandidates())
		require.Empty(t, h.RejectedCandidates())

		list := h.CandidatesByStage(models.TechnicalTestStage)
		require.Len(t, list, 2)
		require.Equal(t, 8, list[0].ID)
		require.Equal(t, 9, list[1].ID)

		require.Empty(t, h.CandidatesByStage("unknown-stage"))
		require.Len(t, h.Stages(), 7)
		require.Len(t, h.Staff(), 6)
	})

	t.Run(`board check`, func(t *testing.T) {
		h := NewSeededHandler()
		board := h.Board()
		require.Len(t, board.New, 3)
		require.Empty(t, board.Rejected)
		require.Len(t, board.Columns, len(DefaultStages))
		for idx, column := range board.Columns {
			require.Equal(t, DefaultStages[idx].ID, column.Stage.ID)
		}
		require.Len(t, board.Columns[2].Candidates, 2) // technical-interview
		require.Len(t, board.Columns[6].Candidates, 1) // hired
	})

	t.Run(`views return copies`, func(t *testing.T) {
		h := NewSeededHandler()
		list := h.NewCandidates()
		list[0].Name = "changed"
		list[0].Metrics[0] = "changed"
		rec, found := h.Candidate(list[0].ID)
		require.True(t, found)
		require.Equal(t, "Harish sharma", rec.Name)
		require.Equal(t, "5+ YoE(T)", rec.Metrics[0])
	})
}

func TestPipelineStatusChange(t *testing.T) {
	t.Run(`shortlist changes only status`, func(t *testing.T) {
		h := NewSeededHandler()
		for _, before := range h.Candidates() {
			after, applied := h.ShortlistCandidate(before.ID)
			require.True(t, applied)
			require.Equal(t, models.ShortlistedStage, after.Status)
			expected := before.Clone()
			expected.Status = models.ShortlistedStage
			require.Equal(t, expected, after)
		}
		require.Len(t, h.ShortlistedCandidates(), 11)
		require.Empty(t, h.NewCandidates())
	})

	t.Run(`reject changes only status`, func(t *testing.T) {
		h := NewSeededHandler()
		for _, before := range h.Candidates() {
			after, applied := h.RejectCandidate(before.ID)
			require.True(t, applied)
			expected := before.Clone()
			expected.Status = models.RejectedStatus
			require.Equal(t, expected, after)
		}
		require.Len(t, h.RejectedCandidates(), 11)
	})

	t.Run(`unknown id leaves catalog unchanged`, func(t *testing.T) {
		publisher := &publisherMock{}
		h := NewSeededHandler(WithPublisher(publisher))
		before := h.Candidates()

		_, applied := h.ShortlistCandidate(100)
		require.False(t, applied)
		_, applied = h.RejectCandidate(100)
		require.False(t, applied)
		_, applied = h.AssignInterviewer(100, "Rajesh Kumar")
		require.False(t, applied)
		_, applied = h.SetInterviewResult(100, models.TechnicalTestStage, "pass")
		require.False(t, applied)

		require.Equal(t, before, h.Candidates())
		require.Empty(t, publisher.codes())
	})

	t.Run(`events are published`, func(t *testing.T) {
		publisher := &publisherMock{}
		h := NewSeededHandler(WithPublisher(publisher))
		h.ShortlistCandidate(1)
		h.RejectCandidate(2)
		h.AssignInterviewer(1, "Deepa Iyer")
		require.Equal(t, []wsmodels.MessageCode{
			wsmodels.CandidateShortlistedCode,
			wsmodels.CandidateRejectedCode,
			wsmodels.InterviewerAssignedCode,
		}, publisher.codes())
		require.Equal(t, 1, publisher.messages[0].CandidateID)
		require.Equal(t, 2, publisher.messages[1].CandidateID)
	})
}

func TestAssignInterviewer(t *testing.T) {
	t.Run(`assign any name`, func(t *testing.T) {
		h := NewSeededHandler()
		rec, applied := h.AssignInterviewer(1, "Somebody Unknown")
		require.True(t, applied)
		require.NotNil(t, rec.Interviewer)
		require.Equal(t, "Somebody Unknown", *rec.Interviewer)

		rec, applied = h.AssignInterviewer(4, "Deepa Iyer")
		require.True(t, applied)
		require.Equal(t, "Deepa Iyer", rec.GetInterviewer())
		require.Equal(t, models.BehavioralInterviewStage, rec.Status)
	})
}

func TestSetInterviewResult(t *testing.T) {
	t.Run(`pass moves to next stage`, func(t *testing.T) {
		publisher := &publisherMock{}
		h := NewSeededHandler(WithScorer(fixedScorer(4)), WithPublisher(publisher))
		before, _ := h.Candidate(10)
		require.NotNil(t, before.Interviewer)

		rec, applied := h.SetInterviewResult(10, models.TechnicalInterviewStage, "pass")
		require.True(t, applied)
		require.Equal(t, models.BehavioralInterviewStage, rec.Status)
		require.Nil(t, rec.Interviewer)
		result, ok := rec.InterviewResults[models.TechnicalInterviewStage]
		require.True(t, ok)
		require.Equal(t, models.PassVerdict, result.Result)
		require.Equal(t, passComment, result.Scorecard.Comments)
		require.Equal(t, map[string]int{
			models.TechnicalSkillCriterion: 4,
			models.ProblemSolvingCriterion: 4,
			models.CommunicationCriterion:  4,
		}, result.Scorecard.Ratings)
		require.Equal(t, before.Score, rec.Score)
		require.Equal(t, before.TimeInStage, rec.TimeInStage)

		stored, _ := h.Candidate(10)
		require.Equal(t, rec, stored)
		require.Equal(t, []wsmodels.MessageCode{wsmodels.InterviewResultCode, wsmodels.StageChangedCode}, publisher.codes())
	})

	t.Run(`pass on last stage keeps stage`, func(t *testing.T) {
		h := NewSeededHandler()
		rec, applied := h.SetInterviewResult(7, models.HiredStage, "pass")
		require.True(t, applied)
		require.Equal(t, models.HiredStage, rec.Status)
		require.Equal(t, models.PassVerdict, rec.InterviewResults[models.HiredStage].Result)
	})

	t.Run(`pass on unknown stage records result without moving`, func(t *testing.T) {
		h := NewSeededHandler()
		rec, applied := h.SetInterviewResult(1, "phone-screen", "pass")
		require.True(t, applied)
		require.Equal(t, models.NewStatus, rec.Status)
		require.Contains(t, rec.InterviewResults, models.StageID("phone-screen"))
	})

	t.Run(`fail keeps stage and interviewer`, func(t *testing.T) {
		h := NewSeededHandler(WithScorer(fixedScorer(3)))
		rec, applied := h.SetInterviewResult(10, models.TechnicalInterviewStage, "fail")
		require.True(t, applied)
		require.Equal(t, models.TechnicalInterviewStage, rec.Status)
		require.Equal(t, "Rajesh Kumar", rec.GetInterviewer())
		require.Equal(t, models.FailVerdict, rec.InterviewResults[models.TechnicalInterviewStage].Result)
		require.Equal(t, failComment, rec.InterviewResults[models.TechnicalInterviewStage].Scorecard.Comments)
	})

	t.Run(`invalid result changes nothing`, func(t *testing.T) {
		publisher := &publisherMock{}
		h := NewSeededHandler(WithPublisher(publisher))
		before := h.Candidates()
		for _, result := range []string{"maybe", "", "PASS", "Fail", " pass"} {
			rec, applied := h.SetInterviewResult(10, models.TechnicalInterviewStage, result)
			require.False(t, applied)
			require.Equal(t, before[9], rec)
		}
		require.Equal(t, before, h.Candidates())
		require.Empty(t, publisher.codes())
	})

	t.Run(`results only grow`, func(t *testing.T) {
		h := NewSeededHandler()
		h.SetInterviewResult(4, models.BehavioralInterviewStage, "pass")
		rec, _ := h.SetInterviewResult(4, models.CommunicationInterviewStage, "fail")
		require.Len(t, rec.InterviewResults, 2)
		require.Equal(t, models.CommunicationInterviewStage, rec.Status)

		rec, _ = h.SetInterviewResult(4, models.CommunicationInterviewStage, "pass")
		require.Len(t, rec.InterviewResults, 2)
		require.Equal(t, models.PassVerdict, rec.InterviewResults[models.CommunicationInterviewStage].Result)
		require.Equal(t, models.DemoStage, rec.Status)
	})

	t.Run(`random ratings stay in range`, func(t *testing.T) {
		h := NewSeededHandler()
		for n := 0; n < 50; n++ {
			rec, applied := h.SetInterviewResult(9, models.TechnicalTestStage, "fail")
			require.True(t, applied)
			ratings := rec.InterviewResults[models.TechnicalTestStage].Scorecard.Ratings
			require.Len(t, ratings, 3)
			for _, rating := range ratings {
				require.GreaterOrEqual(t, rating, 3)
				require.LessOrEqual(t, rating, 5)
			}
		}
	})

	t.Run(`walk through the whole pipeline`, func(t *testing.T) {
		h := NewSeededHandler()
		_, applied := h.ShortlistCandidate(1)
		require.True(t, applied)
		for idx, stage := range DefaultStages[:len(DefaultStages)-1] {
			h.AssignInterviewer(1, "Amit Patel")
			rec, applied := h.SetInterviewResult(1, stage.ID, "pass")
			require.True(t, applied)
			require.Equal(t, DefaultStages[idx+1].ID, rec.Status)
			require.Nil(t, rec.Interviewer)
		}
		rec, _ := h.Candidate(1)
		require.Equal(t, models.HiredStage, rec.Status)
		require.Len(t, rec.InterviewResults, len(DefaultStages)-1)
	})
}

func TestScorecard(t *testing.T) {
	t.Run(`ratings are clamped`, func(t *testing.T) {
		card := newScorecard(fixedScorer(10), models.PassVerdict)
		for _, rating := range card.Ratings {
			require.Equal(t, 5, rating)
		}
		card = newScorecard(fixedScorer(0), models.FailVerdict)
		for _, rating := range card.Ratings {
			require.Equal(t, 3, rating)
		}
		require.Equal(t, failComment, card.Comments)
	})
}

func TestHiredNotification(t *testing.T) {
	t.Run(`mail on reaching hired`, func(t *testing.T) {
		mailer := &mailerMock{configured: true, sent: make(chan string, 1)}
		h := NewSeededHandler(WithScorer(fixedScorer(5)), WithMailer(mailer, "hiring@example.com"))
		rec, applied := h.SetInterviewResult(6, models.DemoStage, "pass")
		require.True(t, applied)
		require.Equal(t, models.HiredStage, rec.Status)
		select {
		case to := <-mailer.sent:
			require.Equal(t, "hiring@example.com", to)
		case <-time.After(time.Second):
			require.Fail(t, "уведомление о найме не отправлено")
		}
	})
	t.Run(`no mail before hired`, func(t *testing.T) {
		mailer := &mailerMock{configured: true, sent: make(chan string, 1)}
		h := NewSeededHandler(WithScorer(fixedScorer(5)), WithMailer(mailer, "hiring@example.com"))
		rec, applied := h.SetInterviewResult(8, models.TechnicalTestStage, "pass")
		require.True(t, applied)
		require.Equal(t, models.TechnicalInterviewStage, rec.Status)
		require.Empty(t, mailer.sent)
	})
}
