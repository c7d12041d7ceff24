package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Application
	AppPort   string `yaml:"APP_PORT"`
	AppURL    string `yaml:"APP_URL"`
	JWTSecret string `yaml:"JWT_SECRET"`
	Timezone  string `yaml:"TIMEZONE"`
	LogLevel  string `yaml:"LOG_LEVEL"`
	LogFormat string `yaml:"LOG_FORMAT"`

	// Fridge capacity used for space usage estimation
	FridgeCapacity string `yaml:"FRIDGE_CAPACITY"`

	// LINE Messaging API configuration
	LineChannelSecret      string `yaml:"LINE_CHANNEL_SECRET"`
	LineChannelAccessToken string `yaml:"LINE_CHANNEL_ACCESS_TOKEN"`
	LiffID                 string `yaml:"LIFF_ID"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("LINE_CHANNEL_SECRET", config.LineChannelSecret)
	os.Setenv("LINE_CHANNEL_ACCESS_TOKEN", config.LineChannelAccessToken)
}

// TimezoneName returns the configured IANA timezone, defaulting to
// Asia/Taipei when the config leaves it blank.
func TimezoneName() string {
	if config.Timezone != "" {
		return config.Timezone
	}
	return "Asia/Taipei"
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "JWT_SECRET":
		return config.JWTSecret
	case "TIMEZONE":
		return config.Timezone
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_FORMAT":
		return config.LogFormat
	case "FRIDGE_CAPACITY":
		return config.FridgeCapacity
	case "LINE_CHANNEL_SECRET":
		return config.LineChannelSecret
	case "LINE_CHANNEL_ACCESS_TOKEN":
		return config.LineChannelAccessToken
	case "LIFF_ID":
		return config.LiffID
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	default:
		return ""
	}
}
