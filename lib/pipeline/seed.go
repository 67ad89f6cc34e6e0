package pipelinehandler

import "hr-pipeline/models"

// DefaultStages - порядок этапов воронки, следующий этап определяется позицией в списке
var DefaultStages = []models.PipelineStage{
	{ID: models.ShortlistedStage, Title: "Shortlisted"},
	{ID: models.TechnicalTestStage, Title: "Technical Test"},
	{ID: models.TechnicalInterviewStage, Title: "Technical Interview"},
	{ID: models.BehavioralInterviewStage, Title: "Behavioral Interview"},
	{ID: models.CommunicationInterviewStage, Title: "Communication Interview"},
	{ID: models.DemoStage, Title: "Demo"},
	{ID: models.HiredStage, Title: "Offer/Hired"},
}

var DefaultStaff = []models.StaffRecord{
	{ID: "HO-001", Name: "Rajesh Kumar", EmployeeID: "E1001", Designation: "Regional Head", Region: "North"},
	{ID: "HO-002", Name: "Sunita Sharma", EmployeeID: "E1002", Designation: "Regional Manager", Region: "North"},
	{ID: "HO-003", Name: "Amit Patel", EmployeeID: "E2001", Designation: "Regional Head", Region: "Middle"},
	{ID: "HO-004", Name: "Priya Verma", EmployeeID: "E2002", Designation: "Operations Lead", Region: "Middle"},
	{ID: "HO-005", Name: "Suresh Menon", EmployeeID: "E3001", Designation: "Regional Head", Region: "South"},
	{ID: "HO-006", Name: "Deepa Iyer", EmployeeID: "E3002", Designation: "Regional Coordinator", Region: "South"},
}

func interviewer(name string) *string {
	return &name
}

func verdictOnly(stageID models.StageID, verdict models.Verdict) map[models.StageID]models.InterviewResult {
	return map[models.StageID]models.InterviewResult{
		stageID: {Result: verdict},
	}
}

// SeedCandidates - стартовый каталог кандидатов, состояние сбрасывается при перезапуске
func SeedCandidates() []models.Candidate {
	return []models.Candidate{
		// на скрининге
		{ID: 1, Name: "Harish sharma", Score: 92, Metrics: []string{"5+ YoE(T)", "Python", "M.Sc."}, Status: models.NewStatus, Job: "Robotics Instructor Level1", TimeInStage: 2},
		{ID: 2, Name: "Nikhil chabra", Score: 75, Metrics: []string{"3 YoE(O)", "Java", "B.Sc."}, Status: models.NewStatus, Job: "Robotics Instructor Level2", TimeInStage: 3},
		{ID: 3, Name: "seema aggarwal", Score: 48, Metrics: []string{"1 YoE(T)", "HTML", "Diploma"}, Status: models.NewStatus, Job: "Robotics instructor Level1", TimeInStage: 1},
		// уже в воронке
		{ID: 4, Name: "Ananya Gupta", Score: 85, Metrics: []string{"2 YoE(O)", "Salesforce", "MBA"}, Status: models.BehavioralInterviewStage, Job: "BDA", TimeInStage: 4, Interviewer: interviewer("Sunita Sharma"), InterviewResults: verdictOnly(models.BehavioralInterviewStage, models.PassVerdict)},
		{ID: 5, Name: "Aditya Kumar", Score: 82, Metrics: []string{"4 YoE(O)", "Recruitment", "MBA-HR"}, Status: models.CommunicationInterviewStage, Job: "HR", TimeInStage: 2},
		{ID: 6, Name: "Isha Verma", Score: 80, Metrics: []string{"3 YoE(O)", "Vue.js", "B.Tech"}, Status: models.DemoStage, Job: "Product Developer", TimeInStage: 5, Interviewer: interviewer("Amit Patel"), InterviewResults: verdictOnly(models.DemoStage, models.FailVerdict)},
		{ID: 7, Name: "Rohan Mehta", Score: 78, Metrics: []string{"5+ YoE(T)", "Management", "M.Lib"}, Status: models.HiredStage, Job: "Library teacher", TimeInStage: 1},
		{ID: 8, Name: "Priya Singh", Score: 91, Metrics: []string{"4 YoE(T)", "Arduino", "M.Tech"}, Status: models.TechnicalTestStage, Job: "Robotics Instructor Level2", TimeInStage: 2},
		{ID: 9, Name: "Karan Malhotra", Score: 88, Metrics: []string{"3 YoE(T)", "EdTech", "M.A."}, Status: models.TechnicalTestStage, Job: "Academic Coordinator", TimeInStage: 1},
		{ID: 10, Name: "Sneha Reddy", Score: 90, Metrics: []string{"5 YoE(T)", "Python", "M.Sc."}, Status: models.TechnicalInterviewStage, Job: "Robotics Instructor Level1", TimeInStage: 3, Interviewer: interviewer("Rajesh Kumar")},
		{ID: 11, Name: "Vikram Rathod", Score: 86, Metrics: []string{"8+ YoE(O)", "PMP", "B.E."}, Status: models.TechnicalInterviewStage, Job: "Manager", TimeInStage: 4},
	}
}
