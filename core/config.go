package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address         string
		DebugHost       string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	DatabaseConfig struct {
		Engine     string
		Host       string
		Port       string
		Name       string
		User       string
		Password   string
		DisableTLS bool
	}

	RedisConfig struct {
		Addr     string
		Password string
		DB       int
	}

	StorageConfig struct {
		Backend    string // memory | sqlite | postgres | redis
		KeyPrefix  string
		SQLitePath string
		Database   DatabaseConfig
		Redis      RedisConfig
	}

	Config struct {
		Env          string
		Build        string
		AppName      string
		Debug        bool
		TestMode     bool
		ActorID      string
		RollbarToken string
		Server       ServerConfig
		Storage      StorageConfig
	}
)

func (dbc DatabaseConfig) Address() string {
	if dbc.Port == "" {
		return dbc.Host
	}
	return dbc.Host + ":" + dbc.Port
}

// NewConfig reads the configuration from the environment.
// Variables are prefixed with the current ENV, e.g. DEV_STORAGE_BACKEND.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("build", "dev")
	v.SetDefault("appName", "GenMo")
	v.SetDefault("actorID", "admin-1")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.debugHost", ":4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("storage.backend", "sqlite")
	v.SetDefault("storage.keyPrefix", "genmo")
	v.SetDefault("storage.sqlitePath", "genmo.db")
	v.SetDefault("storage.database.engine", "postgres")
	v.SetDefault("storage.database.host", "localhost")
	v.SetDefault("storage.database.port", "5432")
	v.SetDefault("storage.database.name", "genmo")
	v.SetDefault("storage.database.user", "genmo")
	v.SetDefault("storage.database.password", "")
	v.SetDefault("storage.database.disableTLS", true)
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		Env:          env,
		Build:        v.GetString("build"),
		AppName:      v.GetString("appName"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		ActorID:      v.GetString("actorID"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Address:         v.GetString("server.address"),
			DebugHost:       v.GetString("server.debugHost"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  v.GetBool("server.disableReqLogs"),
		},
		Storage: StorageConfig{
			Backend:    strings.ToLower(v.GetString("storage.backend")),
			KeyPrefix:  v.GetString("storage.keyPrefix"),
			SQLitePath: v.GetString("storage.sqlitePath"),
			Database: DatabaseConfig{
				Engine:     v.GetString("storage.database.engine"),
				Host:       v.GetString("storage.database.host"),
				Port:       v.GetString("storage.database.port"),
				Name:       v.GetString("storage.database.name"),
				User:       v.GetString("storage.database.user"),
				Password:   v.GetString("storage.database.password"),
				DisableTLS: v.GetBool("storage.database.disableTLS"),
			},
			Redis: RedisConfig{
				Addr:     v.GetString("storage.redis.addr"),
				Password: v.GetString("storage.redis.password"),
				DB:       v.GetInt("storage.redis.db"),
			},
		},
	}
}
