package pipelinehandler

import (
	"fmt"
	pipelinestore "hr-pipeline/lib/pipeline/store"
	"hr-pipeline/lib/smtp"
	"hr-pipeline/models"
	pipelineapimodels "hr-pipeline/models/api/pipeline"
	wsmodels "hr-pipeline/models/ws"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Candidates() []models.Candidate
	Candidate(id int) (rec models.Candidate, found bool)
	NewCandidates() []models.Candidate
	ShortlistedCandidates() []models.Candidate
	RejectedCandidates() []models.Candidate
	CandidatesByStage(stageID models.StageID) []models.Candidate
	Stages() []models.PipelineStage
	Staff() []models.StaffRecord
	Board() pipelineapimodels.Board

	// Изменения: неизвестный кандидат или некорректный результат не считаются ошибкой,
	// applied=false и каталог остаётся прежним
	ShortlistCandidate(id int) (rec models.Candidate, applied bool)
	RejectCandidate(id int) (rec models.Candidate, applied bool)
	AssignInterviewer(id int, interviewerName string) (rec models.Candidate, applied bool)
	SetInterviewResult(id int, stageID models.StageID, result string) (rec models.Candidate, applied bool)
}

// EventPublisher получает события по изменению кандидатов (websocket хаб)
type EventPublisher interface {
	SendMessage(msg wsmodels.ServerMessage)
}

type Option func(i *impl)

func WithScorer(scorer ScoreFunc) Option {
	return func(i *impl) {
		i.score = scorer
	}
}

func WithPublisher(publisher EventPublisher) Option {
	return func(i *impl) {
		i.publisher = publisher
	}
}

func WithMailer(mailer smtp.Provider, hiringEmail string) Option {
	return func(i *impl) {
		i.mailer = mailer
		i.hiringEmail = hiringEmail
	}
}

func NewHandler(store pipelinestore.Provider, opts ...Option) Provider {
	i := &impl{
		store: store,
		score: RandomScorer(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// NewSeededHandler - воронка со стартовым каталогом
func NewSeededHandler(opts ...Option) Provider {
	return NewHandler(pipelinestore.NewInstance(SeedCandidates(), DefaultStages, DefaultStaff), opts...)
}

type impl struct {
	store       pipelinestore.Provider
	score       ScoreFunc
	publisher   EventPublisher
	mailer      smtp.Provider
	hiringEmail string
}

func (i *impl) Candidates() []models.Candidate {
	return i.store.List()
}

func (i *impl) Candidate(id int) (models.Candidate, bool) {
	return i.store.GetByID(id)
}

func (i *impl) NewCandidates() []models.Candidate {
	return i.store.ListByStatus(models.NewStatus)
}

func (i *impl) ShortlistedCandidates() []models.Candidate {
	return i.store.ListByStatus(models.ShortlistedStage)
}

func (i *impl) RejectedCandidates() []models.Candidate {
	return i.store.ListByStatus(models.RejectedStatus)
}

func (i *impl) CandidatesByStage(stageID models.StageID) []models.Candidate {
	return i.store.ListByStatus(stageID)
}

func (i *impl) Stages() []models.PipelineStage {
	return i.store.Stages()
}

func (i *impl) Staff() []models.StaffRecord {
	return i.store.Staff()
}

func (i *impl) Board() pipelineapimodels.Board {
	list := i.store.List()
	board := pipelineapimodels.Board{
		New:      filterByStatus(list, models.NewStatus),
		Rejected: filterByStatus(list, models.RejectedStatus),
	}
	for _, stage := range i.store.Stages() {
		board.Columns = append(board.Columns, pipelineapimodels.BoardColumn{
			Stage:      stage,
			Candidates: filterByStatus(list, stage.ID),
		})
	}
	return board
}

func (i *impl) ShortlistCandidate(id int) (models.Candidate, bool) {
	return i.changeStatus(id, models.ShortlistedStage, wsmodels.CandidateShortlistedCode)
}

func (i *impl) RejectCandidate(id int) (models.Candidate, bool) {
	return i.changeStatus(id, models.RejectedStatus, wsmodels.CandidateRejectedCode)
}

func (i *impl) AssignInterviewer(id int, interviewerName string) (models.Candidate, bool) {
	logger := i.getLogger(id)
	rec, applied := i.store.Update(id, func(rec *models.Candidate) bool {
		rec.Interviewer = &interviewerName
		return true
	})
	if !applied {
		logger.Debug("кандидат не найден, интервьюер не назначен")
		return rec, false
	}
	logger.WithField("interviewer", interviewerName).Info("назначен интервьюер")
	i.publish(rec, wsmodels.InterviewerAssignedCode, fmt.Sprintf("Кандидату %v назначен интервьюер %v", rec.Name, interviewerName))
	return rec, true
}

func (i *impl) SetInterviewResult(id int, stageID models.StageID, result string) (models.Candidate, bool) {
	logger := i.getLogger(id).
		WithField("stage_id", stageID)
	verdict, ok := models.ParseVerdict(result)
	if !ok {
		logger.WithField("result", result).Debug("некорректный результат собеседования, изменение пропущено")
		rec, _ := i.store.GetByID(id)
		return rec, false
	}
	nextStage, hasNext := i.nextStage(stageID)
	prevStatus := models.StageID("")
	rec, applied := i.store.Update(id, func(rec *models.Candidate) bool {
		prevStatus = rec.Status
		if rec.InterviewResults == nil {
			rec.InterviewResults = map[models.StageID]models.InterviewResult{}
		}
		rec.InterviewResults[stageID] = models.InterviewResult{
			Result:    verdict,
			Scorecard: newScorecard(i.score, verdict),
		}
		if verdict == models.PassVerdict && hasNext {
			rec.Status = nextStage.ID
			// интервьюер назначается заново на следующем этапе
			rec.Interviewer = nil
		}
		return true
	})
	if !applied {
		logger.Debug("кандидат не найден, результат не сохранён")
		return rec, false
	}
	logger.WithField("result", verdict).Info("сохранён результат собеседования")
	i.publish(rec, wsmodels.InterviewResultCode, fmt.Sprintf("Кандидат %v: результат этапа %v - %v", rec.Name, stageID, verdict))
	if rec.Status != prevStatus {
		i.publish(rec, wsmodels.StageChangedCode, fmt.Sprintf("Кандидат %v переведён на этап %v", rec.Name, nextStage.Title))
		if rec.Status == models.HiredStage {
			i.notifyHired(rec)
		}
	}
	return rec, true
}

func (i *impl) changeStatus(id int, status models.StageID, code wsmodels.MessageCode) (models.Candidate, bool) {
	logger := i.getLogger(id).
		WithField("status", status)
	rec, applied := i.store.Update(id, func(rec *models.Candidate) bool {
		rec.Status = status
		return true
	})
	if !applied {
		logger.Debug("кандидат не найден, статус не изменён")
		return rec, false
	}
	logger.Info("статус кандидата изменён")
	i.publish(rec, code, fmt.Sprintf("Кандидат %v переведён в статус %v", rec.Name, status))
	return rec, true
}

// nextStage возвращает этап, следующий за stageID; для последнего и неизвестного этапа перехода нет
func (i *impl) nextStage(stageID models.StageID) (models.PipelineStage, bool) {
	stages := i.store.Stages()
	idx := slices.IndexFunc(stages, func(stage models.PipelineStage) bool {
		return stage.ID == stageID
	})
	if idx == -1 || idx >= len(stages)-1 {
		return models.PipelineStage{}, false
	}
	return stages[idx+1], true
}

func (i *impl) publish(rec models.Candidate, code wsmodels.MessageCode, msg string) {
	if i.publisher == nil {
		return
	}
	i.publisher.SendMessage(wsmodels.ServerMessage{
		Time:        time.Now().Format("02.01.2006 15:04:05"),
		Code:        code,
		Msg:         msg,
		CandidateID: rec.ID,
	})
}

func (i *impl) notifyHired(rec models.Candidate) {
	if i.mailer == nil || i.hiringEmail == "" {
		return
	}
	go func(rec models.Candidate) {
		msg := fmt.Sprintf("Кандидат %v прошёл все этапы отбора на позицию %v (баллы: %v)", rec.Name, rec.Job, rec.Score)
		err := i.mailer.SendEMail(i.hiringEmail, "Кандидат принят", msg)
		if err != nil {
			i.getLogger(rec.ID).WithError(err).Error("не удалось отправить уведомление о найме")
		}
	}(rec)
}

func (i *impl) getLogger(candidateID int) *log.Entry {
	return log.WithField("candidate_id", candidateID)
}

func filterByStatus(list []models.Candidate, status models.StageID) []models.Candidate {
	result := []models.Candidate{}
	for _, rec := range list {
		if rec.Status == status {
			result = append(result, rec)
		}
	}
	return result
}
