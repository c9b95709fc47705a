package app

import (
	"strings"
	"time"

	"github.com/Digital-Coach-Women/APP-API/internal/pkg/logger"
	"github.com/Digital-Coach-Women/APP-API/internal/utils"
)

type Config struct {
	Port              string
	ServiceName       string
	AllowOrigins      []string
	JWTSecretKey      string
	AccessTokenTTL    time.Duration
	RefreshTokenTTL   time.Duration
	RedisAddr         string
	RedisKeyPrefix    string
	AutoFinishCourses bool
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "", log)
	var allowOrigins []string
	if origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				allowOrigins = append(allowOrigins, o)
			}
		}
	}
	return Config{
		Port:              utils.GetEnv("PORT", "8080", log),
		ServiceName:       utils.GetEnv("SERVICE_NAME", "app-api", log),
		AllowOrigins:      allowOrigins,
		JWTSecretKey:      jwtSecretKey,
		AccessTokenTTL:    time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL:   time.Duration(refreshTokenTTLSeconds) * time.Second,
		RedisAddr:         utils.GetEnv("REDIS_ADDR", "localhost:6379", log),
		RedisKeyPrefix:    utils.GetEnv("REDIS_KEY_PREFIX", "chats", log),
		AutoFinishCourses: utils.GetEnvAsBool("AUTO_FINISH_COURSES", false, log),
	}
}
