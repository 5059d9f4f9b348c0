package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	MongoURI       string
	MongoDB        string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	GeocoderRegion string
	ImageBase      string
	ImageKey       string
	ImageRPS       int
	SessionTTL     time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":3000"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		MongoURI:       env("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        env("MONGO_DB", "yelpcamp"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		GeocoderRegion: env("GEOCODER_REGION", ""),
		ImageBase:      env("IMAGE_BASE_URL", "https://api.imagehost.test/v1"),
		ImageKey:       env("IMAGE_API_KEY", ""),
		ImageRPS:       atoi("IMAGE_RPS", 5),
		SessionTTL:     time.Duration(atoi("SESSION_TTL_HOURS", 24*7)) * time.Hour,
	}
	if c.ImageKey == "" {
		log.Warn().Msg("IMAGE_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
