package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Service  ServiceConfig  `mapstructure:"service"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Sessions SessionsConfig `mapstructure:"sessions"`
	Scanner  ScannerConfig  `mapstructure:"scanner"`
}

type ServiceConfig struct {
	Port           string        `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"readTimeout"`
	WriteTimeout   time.Duration `mapstructure:"writeTimeout"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"`
}

type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	ToFile   bool   `mapstructure:"toFile"`
	FilePath string `mapstructure:"filePath"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtSecret"`
}

type SessionsConfig struct {
	IdleTimeout time.Duration `mapstructure:"idleTimeout"`
	SweepSpec   string        `mapstructure:"sweepSpec"`
}

// ScannerConfig drives the simulated QR scan.
type ScannerConfig struct {
	Delay         time.Duration `mapstructure:"delay"`
	SimulatedCode string        `mapstructure:"simulatedCode"`
}

const envPrefix = "INVENTARIO"

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.port", "8000")
	v.SetDefault("service.readTimeout", 30*time.Second)
	v.SetDefault("service.writeTimeout", 30*time.Second)
	v.SetDefault("service.requestTimeout", 10*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.toFile", false)
	v.SetDefault("logging.filePath", "inventario.log")
	v.SetDefault("auth.jwtSecret", "inventario-dev-secret")
	v.SetDefault("sessions.idleTimeout", 30*time.Minute)
	v.SetDefault("sessions.sweepSpec", "@every 1m")
	v.SetDefault("scanner.delay", 2*time.Second)
	v.SetDefault("scanner.simulatedCode", "UMSS-00123")
}

// LoadConfig reads settings/appsettings.yaml and, when env is set, merges
// appsettings.<env>.yaml on top. Environment variables prefixed with
// INVENTARIO_ override any key (INVENTARIO_SERVICE_PORT -> service.port).
func LoadConfig(path string, env string) (*Config, error) {
	var cfg Config

	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName("appsettings")
	v.SetConfigType("yaml")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	if env != "" {
		v.SetConfigName("appsettings." + env)
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
