package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisJobsDB    int    `mapstructure:"REDIS_JOBS_DB"`

	// Third-party API credentials.
	StripeKey       string `mapstructure:"STRIPE_KEY"`
	GoogleAPIKey    string `mapstructure:"GOOGLE_API_KEY"`
	RecaptchaSecret string `mapstructure:"RECAPTCHA_SECRET"`
	MailAPIKey      string `mapstructure:"MAIL_API_KEY"`
	MailSender      string `mapstructure:"MAIL_SENDER"`

	// Back-office admin credentials.
	AdminEmail        string `mapstructure:"ADMIN_EMAIL"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	// Pricing overrides. Zero means "use the built-in default"; the
	// pricing service resolves these into a Rates value at startup.
	BaseServiceFee    float64 `mapstructure:"BASE_SERVICE_FEE"`
	DistanceRatePerKm float64 `mapstructure:"DISTANCE_RATE_PER_KM"`
	BasicTierRate     float64 `mapstructure:"BASIC_TIER_RATE"`
	PremiumTierRate   float64 `mapstructure:"PREMIUM_TIER_RATE"`
	WhiteGloveRate    float64 `mapstructure:"WHITE_GLOVE_TIER_RATE"`
	GSTRate           float64 `mapstructure:"GST_RATE"`
	QSTRate           float64 `mapstructure:"QST_RATE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_JOBS_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("RECAPTCHA_SECRET", "")
	viper.SetDefault("MAIL_API_KEY", "")
	viper.SetDefault("MAIL_SENDER", "bookings@haulify.app")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
