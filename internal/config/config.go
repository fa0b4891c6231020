package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the process reads from its environment. It is
// built once at startup and passed explicitly; nothing reads env after Load.
type Config struct {
	Env       string
	Port      int
	MongoURI  string
	MongoDB   string
	AdminUser string
	AdminPass string
	StaticDir string
	UploadDir string
	VideoDir  string

	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", 5500)
	v.SetDefault("MONGO_DB", "site")
	v.SetDefault("STATIC_DIR", ".")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("VIDEO_DIR", "videos")
	v.SetDefault("SHUTDOWN_SECONDS", 15)

	cfg := &Config{
		Env:       v.GetString("APP_ENV"),
		Port:      v.GetInt("PORT"),
		MongoURI:  v.GetString("MONGO_URI"),
		MongoDB:   v.GetString("MONGO_DB"),
		AdminUser: v.GetString("ADMIN_USER"),
		AdminPass: v.GetString("ADMIN_PASS"),
		StaticDir: v.GetString("STATIC_DIR"),
		UploadDir: v.GetString("UPLOAD_DIR"),
		VideoDir:  v.GetString("VIDEO_DIR"),

		ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_SECONDS")) * time.Second,
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI missing")
	}
	return cfg, nil
}
