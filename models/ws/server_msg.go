package wsmodels

type MessageCode string

const (
	CandidateShortlistedCode MessageCode = "CANDIDATE_SHORTLISTED"
	CandidateRejectedCode    MessageCode = "CANDIDATE_REJECTED"
	InterviewerAssignedCode  MessageCode = "INTERVIEWER_ASSIGNED"
	InterviewResultCode      MessageCode = "INTERVIEW_RESULT"
	StageChangedCode         MessageCode = "STAGE_CHANGED"
)

type ServerMessage struct {
	Time        string      `json:"time"`         // время события
	Code        MessageCode `json:"code"`         // код события
	Msg         string      `json:"msg"`          // текст события
	CandidateID int         `json:"candidate_id"` // кандидат, по которому произошло событие
}
