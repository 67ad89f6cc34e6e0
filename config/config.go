package config

import (
	"os"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr  string `default:"" env:"APP_HOST"`
		Port        int    `default:"8080"  env:"APP_PORT"`
		SwaggerFile string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
	}
	Auth struct {
		// адрес получения профиля текущего пользователя, если пусто - профиль берётся из JWT
		ProfileURL       string `default:"" env:"AUTH_PROFILE_URL"`
		JWTSecret        string `default:"" env:"AUTH_JWT_SECRET"`
		TokenStoragePath string `default:"./session.db" env:"AUTH_TOKEN_STORAGE_PATH"`
		RequestTimeoutMs int    `default:"5000" env:"AUTH_REQUEST_TIMEOUT_MS"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	Notify struct {
		HiringEmail string `default:"" env:"NOTIFY_HIRING_EMAIL"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err = godotenv.Load(); err != nil {
			log.WithError(err).Warn("не удалось загрузить .env")
		}
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
