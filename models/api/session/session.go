package sessionapimodels

import (
	"hr-pipeline/models"
	"strings"

	"github.com/pkg/errors"
)

type Login struct {
	Token string `json:"token"` // access token, выданный сервисом авторизации
}

func (r Login) Validate() error {
	if strings.TrimSpace(r.Token) == "" {
		return errors.New("не указан токен")
	}
	return nil
}

type AccessCheck struct {
	Roles []string `json:"roles"`
}

func (r AccessCheck) Validate() error {
	if len(r.Roles) == 0 {
		return errors.New("не указаны роли")
	}
	return nil
}

type SessionView struct {
	IsAuthenticated bool               `json:"is_authenticated"`
	Role            models.UserRole    `json:"role,omitempty"`
	RoleName        string             `json:"role_name,omitempty"`
	User            models.UserProfile `json:"user,omitempty"`
	UserName        string             `json:"user_name,omitempty"`
	DashboardRoute  string             `json:"dashboard_route"`
}

type RouteView struct {
	Path         string          `json:"path"`
	Name         string          `json:"name"`
	RequiresAuth bool            `json:"requires_auth"`
	Role         models.UserRole `json:"role,omitempty"`
}

type ResolveResult struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}
