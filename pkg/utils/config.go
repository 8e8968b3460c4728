package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Notifier NotifierConfig
	Twilio   TwilioConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type NotifierConfig struct {
	HorizonDays int
	SeedPlans   bool
}

type TwilioConfig struct {
	Enabled      bool
	AccountSID   string
	AuthToken    string
	WhatsAppFrom string
	BaseURL      string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("NOTIFY_HORIZON_DAYS", 3)
	viper.SetDefault("SEED_PLANS", true)
	viper.SetDefault("TWILIO_ENABLED", false)
	viper.SetDefault("TWILIO_WHATSAPP_FROM", "whatsapp:+14155238886")
	viper.SetDefault("TWILIO_BASE_URL", "https://api.twilio.com")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Notifier: NotifierConfig{
			HorizonDays: viper.GetInt("NOTIFY_HORIZON_DAYS"),
			SeedPlans:   viper.GetBool("SEED_PLANS"),
		},
		Twilio: TwilioConfig{
			Enabled:      viper.GetBool("TWILIO_ENABLED"),
			AccountSID:   viper.GetString("TWILIO_ACCOUNT_SID"),
			AuthToken:    viper.GetString("TWILIO_AUTH_TOKEN"),
			WhatsAppFrom: viper.GetString("TWILIO_WHATSAPP_FROM"),
			BaseURL:      viper.GetString("TWILIO_BASE_URL"),
		},
	}

	return config, nil
}
