package sessionhandler

import (
	"context"
	profileclient "hr-pipeline/lib/session/profile-client"
	"hr-pipeline/models"
	sessionapimodels "hr-pipeline/models/api/session"
	"strings"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	LoginRoute              = "/login"
	CandidateDashboardRoute = "/candidateDashboard"
	HRDashboardRoute        = "/hrDashboard"
	ManagerDashboardRoute   = "/managerDashboard"
	AdminDashboardRoute     = "/adminDashboard"
)

const profileNameField = "name"

var dashboardRoutes = map[models.UserRole]string{
	models.CandidateRole: CandidateDashboardRoute,
	models.HRRole:        HRDashboardRoute,
	models.ManagerRole:   ManagerDashboardRoute,
	models.AdminRole:     AdminDashboardRoute,
}

// TokenStorage - долговременное хранилище токена доступа
type TokenStorage interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Remove(ctx context.Context) error
}

// Provider - сессия текущего пользователя консоли: токен, профиль и роль
type Provider interface {
	Login(ctx context.Context, token string) error
	// FetchUser загружает профиль по токену. Ошибка не возвращается: при неудаче сессия
	// сбрасывается через Logout
	FetchUser(ctx context.Context)
	HasAccess(requiredRoles ...string) bool
	Logout()
	IsAuthenticated() bool
	DashboardRoute() string
	Role() models.UserRole
	User() models.UserProfile
	Snapshot() sessionapimodels.SessionView
}

// NewHandler восстанавливает токен из хранилища, профиль не запрашивается до FetchUser
func NewHandler(ctx context.Context, storage TokenStorage, profiles profileclient.Provider) Provider {
	i := &impl{
		storage:  storage,
		profiles: profiles,
	}
	token, err := storage.Load(ctx)
	if err != nil {
		log.WithError(err).Error("не удалось восстановить токен сессии")
	}
	if token != "" {
		i.token = &token
	}
	return i
}

type impl struct {
	mu       sync.RWMutex
	storage  TokenStorage
	profiles profileclient.Provider

	token *string
	user  models.UserProfile
	role  models.UserRole
}

func (i *impl) Login(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("пустой токен")
	}
	if err := i.storage.Save(ctx, token); err != nil {
		return errors.Wrap(err, "не удалось сохранить токен сессии")
	}
	i.mu.Lock()
	i.token = &token
	i.user = nil
	i.role = ""
	i.mu.Unlock()
	i.FetchUser(ctx)
	return nil
}

func (i *impl) FetchUser(ctx context.Context) {
	i.mu.RLock()
	token := i.token
	i.mu.RUnlock()
	if token == nil {
		return
	}
	profile, err := i.profiles.Me(ctx, *token)
	if err != nil {
		log.WithError(err).Error("Auth: не удалось получить профиль пользователя")
		// сессию сбрасываем, только если за время запроса не было нового входа
		if i.clear(*token) {
			i.removeStoredToken()
		}
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.token == nil || *i.token != *token {
		// за время запроса сессия сменилась
		return
	}
	i.user = profile
	i.role = models.NormalizeRole(profile.RoleName())
	log.WithField("role", i.role).Info("профиль пользователя загружен")
}

func (i *impl) HasAccess(requiredRoles ...string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.role == "" {
		return false
	}
	for _, role := range requiredRoles {
		if i.role.Is(role) {
			return true
		}
	}
	return false
}

func (i *impl) Logout() {
	i.clear("")
	i.removeStoredToken()
}

func (i *impl) IsAuthenticated() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.token != nil
}

func (i *impl) DashboardRoute() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return dashboardRoute(i.role)
}

func (i *impl) Role() models.UserRole {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.role
}

func (i *impl) User() models.UserProfile {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.user
}

func (i *impl) Snapshot() sessionapimodels.SessionView {
	i.mu.RLock()
	defer i.mu.RUnlock()
	view := sessionapimodels.SessionView{
		IsAuthenticated: i.token != nil,
		Role:            i.role,
		User:            i.user,
		UserName:        i.user.GetString(profileNameField),
		DashboardRoute:  dashboardRoute(i.role),
	}
	if i.role != "" {
		view.RoleName = i.role.ToHuman()
	}
	return view
}

// clear сбрасывает сессию. Если задан onlyToken, сброс выполняется только для этого токена
func (i *impl) clear(onlyToken string) (cleared bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if onlyToken != "" && (i.token == nil || *i.token != onlyToken) {
		return false
	}
	i.token = nil
	i.user = nil
	i.role = ""
	return true
}

func (i *impl) removeStoredToken() {
	if err := i.storage.Remove(context.Background()); err != nil {
		log.WithError(err).Error("не удалось удалить токен из хранилища")
	}
}

func dashboardRoute(role models.UserRole) string {
	if route, ok := dashboardRoutes[models.NormalizeRole(string(role))]; ok {
		return route
	}
	return LoginRoute
}
