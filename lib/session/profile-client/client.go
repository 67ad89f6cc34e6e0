package profileclient

import (
	"context"
	"encoding/json"
	"fmt"
	"hr-pipeline/models"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provider - получение профиля текущего пользователя по токену доступа.
// Любая ошибка означает, что профиль получить не удалось
type Provider interface {
	Me(ctx context.Context, accessToken string) (models.UserProfile, error)
}

func NewHttpProvider(profileURL string, timeout time.Duration) Provider {
	return &httpImpl{
		profileURL: profileURL,
		client:     &http.Client{Timeout: timeout},
	}
}

type httpImpl struct {
	profileURL string
	client     *http.Client
}

func (i httpImpl) Me(ctx context.Context, accessToken string) (models.UserProfile, error) {
	logger := log.
		WithField("external_request", i.profileURL)
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, i.profileURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования запроса профиля")
	}
	r.Header.Add("Accept", "application/json")
	r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", accessToken))
	response, err := i.client.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса профиля")
		return nil, errors.Wrap(err, "ошибка отправки запроса профиля")
	}
	defer response.Body.Close()
	logger = logger.WithField("status_code", response.StatusCode)
	body, err := io.ReadAll(response.Body)
	if err != nil {
		logger.WithError(err).Error("ошибка чтения ответа")
		return nil, errors.Wrap(err, "ошибка чтения ответа")
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		logger.WithField("response_body", string(body)).Error("Некорректный запрос профиля")
		return nil, errors.Errorf("Некорректный запрос профиля. Статус: %v", response.StatusCode)
	}
	profile := models.UserProfile{}
	if err = json.Unmarshal(body, &profile); err != nil {
		logger.WithError(err).Error("ошибка сериализации ответа")
		return nil, errors.Wrap(err, "ошибка сериализации ответа")
	}
	return profile, nil
}
