package navigation

import (
	sessionhandler "hr-pipeline/lib/session"
	"hr-pipeline/models"
)

// Route - экран клиентского приложения и условия входа на него
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
	Role         models.UserRole
}

func public(path, name string) Route {
	return Route{Path: path, Name: name}
}

func restricted(path, name string, role models.UserRole) Route {
	return Route{Path: path, Name: name, RequiresAuth: true, Role: role}
}

// DefaultRoutes - таблица экранов приложения
var DefaultRoutes = []Route{
	public("/", "Home"),
	public(sessionhandler.LoginRoute, "Login"),
	public("/signup", "Signup"),
	public("/vacancy", "VacancyList"),
	public("/job-posting", "JobPosting"),
	public("/apply", "ApplyForm"),
	public("/hr/screening", "ScreeningPage"),
	restricted("/hr/hiring-pipeline", "HiringPipeline", models.HRRole),
	public("/onboarding", "OnboardingPage"),
	public("/training", "TrainingPage"),
	public("/reporting", "ReportingPage"),
	public("/expense", "ExpenseManagement"),
	public(sessionhandler.AdminDashboardRoute, "AdminDashboard"),
	restricted(sessionhandler.HRDashboardRoute, "HRDashboard", models.HRRole),
	restricted("/hr/leave-management", "HRLeavePage", models.HRRole),
	restricted("/hr/interviews", "InterviewDetailsPage", models.HRRole),
	restricted(sessionhandler.CandidateDashboardRoute, "CandidateDashboard", models.CandidateRole),
	restricted("/candidate/ai-enhancement", "ProfileEnhacement", models.CandidateRole),
	restricted("/candidate/candidate-profile", "ResumeProfile", models.CandidateRole),
	restricted("/candidate/courses", "CandidateCoursePage", models.CandidateRole),
	restricted("/candidate/job-recommend", "CandidateJobRecommendations", models.CandidateRole),
	restricted("/candidate/job-search", "CandidateJobSearch", models.CandidateRole),
	restricted("/candidate/vacancies", "CandidateVacanciesPage", models.CandidateRole),
	restricted("/candidate/applications", "CandidateApplicationsPage", models.CandidateRole),
	restricted("/candidate/upskilling", "CandidateUpskillingPage", models.CandidateRole),
	restricted("/candidate/performance", "CandidatePerformance", models.CandidateRole),
	restricted("/candidate/apply-leave", "CandidateLeavePage", models.CandidateRole),
	restricted("/candidate/take-test", "CandidateTakeTest", "Candidate"),
	restricted("/manager/dashboard", "ManagerDashboard", models.ManagerRole),
	restricted(sessionhandler.ManagerDashboardRoute, "ManagerDashboardHome", models.ManagerRole),
	restricted("/bda/dashboard", "BDADashboard", models.BDARole),
	restricted("/ho/dashboard", "HODashboard", models.HORole),
	restricted("/hr/candidates/{id}", "CandidateCard", models.HRRole),
}
