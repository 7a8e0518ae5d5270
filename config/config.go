package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Storage  Storage
}

type Server struct {
	Port          string
	PublicBaseURL string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Auth struct {
	JWTSecret     string
	TokenLifetime int // seconds
}

type Storage struct {
	CertificateDir string
	UploadDir      string
	SignatureDir   string
	LogoDir        string
	TemplateDir    string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("TOKEN_LIFETIME", 3600)
	viper.SetDefault("CERTIFICATE_DIR", "uploads/certificates")
	viper.SetDefault("UPLOAD_DIR", "uploads/files")
	viper.SetDefault("SIGNATURE_DIR", "uploads/signatures")
	viper.SetDefault("LOGO_DIR", "uploads/logos")
	viper.SetDefault("TEMPLATE_DIR", "templates")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.PublicBaseURL = viper.GetString("PUBLIC_BASE_URL")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.TokenLifetime = viper.GetInt("TOKEN_LIFETIME")

	config.Storage.CertificateDir = viper.GetString("CERTIFICATE_DIR")
	config.Storage.UploadDir = viper.GetString("UPLOAD_DIR")
	config.Storage.SignatureDir = viper.GetString("SIGNATURE_DIR")
	config.Storage.LogoDir = viper.GetString("LOGO_DIR")
	config.Storage.TemplateDir = viper.GetString("TEMPLATE_DIR")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
