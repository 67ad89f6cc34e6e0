package navigation

import (
	sessionhandler "hr-pipeline/lib/session"
	"hr-pipeline/models"
	sessionapimodels "hr-pipeline/models/api/session"
	"regexp"
	"strings"
)

// Session - то, что навигации нужно знать о текущей сессии
type Session interface {
	IsAuthenticated() bool
	HasAccess(requiredRoles ...string) bool
	DashboardRoute() string
}

type Provider interface {
	// Resolve решает, можно ли открыть экран, и куда перенаправить, если нельзя
	Resolve(path string, session Session) sessionapimodels.ResolveResult
	MenuFor(session Session) []Route
}

func NewHandler(routes []Route) Provider {
	i := &impl{
		exact: map[string]Route{},
	}
	for _, route := range routes {
		i.add(route)
	}
	return i
}

type impl struct {
	routes   []Route
	exact    map[string]Route // Точные совпадения
	patterns []patternRoute   // Regexp правила
}

type patternRoute struct {
	pattern *regexp.Regexp
	route   Route
}

func (i *impl) add(route Route) {
	route.Path = normalizePath(route.Path)
	i.routes = append(i.routes, route)
	if isExactPath(route.Path) {
		i.exact[route.Path] = route
		return
	}
	pattern := pathToRegex(route.Path)
	if pattern == nil {
		// Если не удалось скомпилировать, добавляем как точное совпадение
		i.exact[route.Path] = route
		return
	}
	i.patterns = append(i.patterns, patternRoute{pattern: pattern, route: route})
}

func (i *impl) Resolve(path string, session Session) sessionapimodels.ResolveResult {
	route, found := i.find(path)
	if !found {
		return sessionapimodels.ResolveResult{Allowed: true}
	}
	return check(route, session)
}

func (i *impl) MenuFor(session Session) []Route {
	menu := []Route{}
	for _, route := range i.routes {
		if check(route, session).Allowed {
			menu = append(menu, route)
		}
	}
	return menu
}

func (i *impl) find(path string) (Route, bool) {
	path = normalizePath(path)
	if route, ok := i.exact[path]; ok {
		return route, true
	}
	for _, patternRule := range i.patterns {
		if patternRule.pattern.MatchString(path) {
			return patternRule.route, true
		}
	}
	return Route{}, false
}

func check(route Route, session Session) sessionapimodels.ResolveResult {
	if route.RequiresAuth && !session.IsAuthenticated() {
		return sessionapimodels.ResolveResult{Redirect: sessionhandler.LoginRoute}
	}
	if route.Role != "" && !session.HasAccess(string(route.Role)) {
		redirect := session.DashboardRoute()
		if normalizePath(redirect) == route.Path {
			redirect = sessionhandler.LoginRoute
		}
		return sessionapimodels.ResolveResult{Redirect: redirect}
	}
	return sessionapimodels.ResolveResult{Allowed: true}
}

func ToView(routes []Route) []sessionapimodels.RouteView {
	result := make([]sessionapimodels.RouteView, 0, len(routes))
	for _, route := range routes {
		result = append(result, sessionapimodels.RouteView{
			Path:         route.Path,
			Name:         route.Name,
			RequiresAuth: route.RequiresAuth,
			Role:         models.NormalizeRole(string(route.Role)),
		})
	}
	return result
}

func isExactPath(path string) bool {
	return !strings.Contains(path, "{")
}

func pathToRegex(path string) *regexp.Regexp {
	// Экранируем специальные символы
	pattern := regexp.QuoteMeta(path)

	// Заменяем экранированные { и } на оригинальные для обработки параметров
	pattern = strings.ReplaceAll(pattern, "\\{", "{")
	pattern = strings.ReplaceAll(pattern, "\\}", "}")

	// Заменяем {param}
	pattern = regexp.MustCompile(`\{[^}]+?\}`).ReplaceAllString(pattern, `([^/]+)`)
	pattern = "^" + pattern + "$"

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}
	return regex
}

func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i != -1 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}
