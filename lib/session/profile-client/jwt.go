package profileclient

import (
	"context"
	"hr-pipeline/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// NewJwtProvider строит профиль из claims подписанного HS256 токена, без обращения к сервису авторизации
func NewJwtProvider(secret string) Provider {
	return &jwtImpl{
		secret: []byte(secret),
	}
}

type jwtImpl struct {
	secret []byte
}

func (i jwtImpl) Me(_ context.Context, accessToken string) (models.UserProfile, error) {
	if len(i.secret) == 0 {
		return nil, errors.New("не задан ключ проверки токена")
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "некорректный токен")
	}
	profile := models.UserProfile{}
	for key, value := range claims {
		profile[key] = value
	}
	// в токенах сервиса авторизации роль лежит в claim role
	if profile.RoleName() == "" {
		if role, ok := claims["role"].(string); ok {
			profile["role_name"] = role
		}
	}
	return profile, nil
}
