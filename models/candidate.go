package models

import (
	"maps"
	"slices"
)

type StageID string

const (
	// псевдо-этапы вне воронки
	NewStatus      StageID = "new"
	RejectedStatus StageID = "rejected"

	ShortlistedStage            StageID = "shortlisted"
	TechnicalTestStage          StageID = "technical-test"
	TechnicalInterviewStage     StageID = "technical-interview"
	BehavioralInterviewStage    StageID = "behavioral-interview"
	CommunicationInterviewStage StageID = "communication-interview"
	DemoStage                   StageID = "demo"
	HiredStage                  StageID = "hired"
)

type Candidate struct {
	ID               int                         `json:"id"`
	Name             string                      `json:"name"`
	Score            int                         `json:"score"`
	Metrics          []string                    `json:"metrics"`
	Status           StageID                     `json:"status"`
	Job              string                      `json:"job"`
	TimeInStage      int                         `json:"timeInStage"`
	Interviewer      *string                     `json:"interviewer"`
	InterviewResults map[StageID]InterviewResult `json:"interviewResults"`
}

// Clone возвращает полную копию записи, изменения копии не видны в оригинале
func (c Candidate) Clone() Candidate {
	rec := c
	rec.Metrics = slices.Clone(c.Metrics)
	if c.Interviewer != nil {
		interviewer := *c.Interviewer
		rec.Interviewer = &interviewer
	}
	rec.InterviewResults = make(map[StageID]InterviewResult, len(c.InterviewResults))
	for stageID, result := range c.InterviewResults {
		rec.InterviewResults[stageID] = result.Clone()
	}
	return rec
}

func (c Candidate) GetInterviewer() string {
	if c.Interviewer == nil {
		return ""
	}
	return *c.Interviewer
}

type Verdict string

const (
	PassVerdict Verdict = "pass"
	FailVerdict Verdict = "fail"
)

// ParseVerdict допускает только pass и fail, без приведения регистра
func ParseVerdict(value string) (Verdict, bool) {
	switch Verdict(value) {
	case PassVerdict, FailVerdict:
		return Verdict(value), true
	}
	return "", false
}

type InterviewResult struct {
	Result    Verdict   `json:"result"`
	Scorecard Scorecard `json:"scorecardData"`
}

func (r InterviewResult) Clone() InterviewResult {
	return InterviewResult{
		Result: r.Result,
		Scorecard: Scorecard{
			Ratings:  maps.Clone(r.Scorecard.Ratings),
			Comments: r.Scorecard.Comments,
		},
	}
}

const (
	TechnicalSkillCriterion = "Technical Skill"
	ProblemSolvingCriterion = "Problem Solving"
	CommunicationCriterion  = "Communication"
)

var ScorecardCriteria = []string{TechnicalSkillCriterion, ProblemSolvingCriterion, CommunicationCriterion}

type Scorecard struct {
	Ratings  map[string]int `json:"ratings,omitempty"`
	Comments string         `json:"comments,omitempty"`
}
