package initializers

import (
	"hr-pipeline/config"
	"hr-pipeline/lib/smtp"

	log "github.com/sirupsen/logrus"
)

func InitSmtp() smtp.Provider {
	tlsEnabled := config.Conf.Smtp.TLSEnabled == nil || *config.Conf.Smtp.TLSEnabled
	provider := smtp.NewInstance(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, tlsEnabled)
	if !provider.IsConfigured() {
		log.Warn("SMTP не настроен, уведомления о найме отправляться не будут")
	}
	return provider
}
