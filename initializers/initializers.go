package initializers

import (
	"context"
	"hr-pipeline/config"
	"hr-pipeline/fiberlog"
	xlsexport "hr-pipeline/lib/export/xls"
	"hr-pipeline/lib/navigation"
	pipelinehandler "hr-pipeline/lib/pipeline"
	sessionhandler "hr-pipeline/lib/session"
	profileclient "hr-pipeline/lib/session/profile-client"
	tokenstore "hr-pipeline/lib/session/token-store"
	"hr-pipeline/lib/smtp"
	connectionhub "hr-pipeline/lib/ws/hub/connection-hub"
	"time"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

// Services - сервисы приложения, собранные при старте
type Services struct {
	TokenStore tokenstore.Provider
	Session    sessionhandler.Provider
	Hub        connectionhub.Provider
	Smtp       smtp.Provider
	Pipeline   pipelinehandler.Provider
	Navigation navigation.Provider
	Xls        xlsexport.Provider
}

func InitAllServices(ctx context.Context) *Services {
	LoggerConfig = InitLogger()
	config.InitConfig()

	services := &Services{
		TokenStore: InitTokenStore(),
		Hub:        connectionhub.NewHub(),
		Smtp:       InitSmtp(),
		Navigation: navigation.NewHandler(navigation.DefaultRoutes),
		Xls:        xlsexport.NewHandler(),
	}
	services.Session = sessionhandler.NewHandler(ctx, services.TokenStore, initProfileProvider())
	// профиль восстановленной сессии подтягиваем сразу, при ошибке сессия сбрасывается
	services.Session.FetchUser(ctx)
	services.Pipeline = pipelinehandler.NewSeededHandler(
		pipelinehandler.WithPublisher(services.Hub),
		pipelinehandler.WithMailer(services.Smtp, config.Conf.Notify.HiringEmail),
	)
	return services
}

func (s *Services) Close() {
	if err := s.TokenStore.Close(); err != nil {
		log.WithError(err).Error("ошибка закрытия хранилища токена")
	}
}

func InitTokenStore() tokenstore.Provider {
	store, err := tokenstore.Open(config.Conf.Auth.TokenStoragePath)
	if err != nil {
		panic(err.Error())
	}
	return store
}

func initProfileProvider() profileclient.Provider {
	if config.Conf.Auth.ProfileURL != "" {
		timeout := time.Duration(config.Conf.Auth.RequestTimeoutMs) * time.Millisecond
		return profileclient.NewHttpProvider(config.Conf.Auth.ProfileURL, timeout)
	}
	if config.Conf.Auth.JWTSecret == "" {
		log.Warn("не задан ни адрес профиля, ни секрет JWT: вход в консоль будет невозможен")
	}
	return profileclient.NewJwtProvider(config.Conf.Auth.JWTSecret)
}
