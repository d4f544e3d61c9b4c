package app

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/services"
	"github.com/laingsimon/courage-scores/internal/utils"
)

type Config struct {
	Addr           string                `yaml:"addr"`
	JWTSecretKey   string                `yaml:"jwtSecret"`
	RedisAddr      string                `yaml:"redisAddr"`
	RedisChannel   string                `yaml:"redisChannel"`
	AllowedOrigins []string              `yaml:"allowedOrigins"`
	Sayg           services.SaygDefaults `yaml:"sayg"`
}

// LoadConfig reads the optional yaml config file then applies environment
// overrides on top.
func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Addr:         ":8080",
		JWTSecretKey: "defaultsecret",
		Sayg: services.SaygDefaults{
			StartingScore: 501,
			NumberOfLegs:  5,
		},
	}

	path := utils.GetEnv("CONFIG_FILE", "", log)
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Warn("Could not read config file, using defaults", "path", path, "error", err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Warn("Could not parse config file, using defaults", "path", path, "error", err)
		}
	}

	cfg.Addr = utils.GetEnv("ADDR", cfg.Addr, log)
	cfg.JWTSecretKey = utils.GetEnv("JWT_SECRET_KEY", cfg.JWTSecretKey, log)
	cfg.RedisAddr = utils.GetEnv("REDIS_ADDR", cfg.RedisAddr, log)
	cfg.RedisChannel = utils.GetEnv("REDIS_CHANNEL", cfg.RedisChannel, log)
	cfg.Sayg.StartingScore = utils.GetEnvAsInt("SAYG_STARTING_SCORE", cfg.Sayg.StartingScore, log)
	cfg.Sayg.NumberOfLegs = utils.GetEnvAsInt("SAYG_NUMBER_OF_LEGS", cfg.Sayg.NumberOfLegs, log)
	return cfg
}
