package models

import "strings"

type UserRole string

const (
	CandidateRole UserRole = "candidate"
	HRRole        UserRole = "hr"
	ManagerRole   UserRole = "manager"
	AdminRole     UserRole = "admin"
	BDARole       UserRole = "bda"
	HORole        UserRole = "ho"
)

// роли с доступом к доске подбора
var (
	PipelineReadRoles  = []string{string(HRRole), string(ManagerRole), string(AdminRole), string(HORole)}
	PipelineWriteRoles = []string{string(HRRole), string(AdminRole)}
)

var roleHumanName = map[UserRole]string{
	CandidateRole: "Кандидат",
	HRRole:        "HR",
	ManagerRole:   "Руководитель",
	AdminRole:     "Администратор",
	BDARole:       "Менеджер по развитию",
	HORole:        "Региональный офис",
}

// NormalizeRole приводит роль к виду, в котором она хранится в сессии
func NormalizeRole(role string) UserRole {
	return UserRole(strings.ToLower(strings.TrimSpace(role)))
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) Is(role string) bool {
	return r != "" && strings.EqualFold(string(r), role)
}

// UserProfile - профиль пользователя, как его вернул сервис авторизации
type UserProfile map[string]interface{}

const profileRoleField = "role_name"

func (p UserProfile) RoleName() string {
	if p == nil {
		return ""
	}
	role, ok := p[profileRoleField].(string)
	if !ok {
		return ""
	}
	return role
}

func (p UserProfile) GetString(field string) string {
	if p == nil {
		return ""
	}
	value, ok := p[field].(string)
	if !ok {
		return ""
	}
	return value
}
