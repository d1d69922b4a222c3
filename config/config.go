package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	SMS      SMSConfig
	Sheets   SheetsConfig
	ML       MLConfig
	Reminder ReminderConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SMSConfig selects and configures the outbound SMS gateway.
// Provider is "twilio", "africastalking" or "noop".
type SMSConfig struct {
	Provider string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	TwilioBaseURL    string

	ATAPIKey   string
	ATUsername string
	ATBaseURL  string
}

// SheetsConfig holds the published CSV export URLs used as analytics sources.
type SheetsConfig struct {
	OvarianDataURL   string
	InventoryDataURL string
	TreatmentDataURL string
	CacheTTL         time.Duration
}

type MLConfig struct {
	PredictURL string
	ChatURL    string
}

type ReminderConfig struct {
	DispatchEnabled  bool
	DispatchInterval time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	sheetCacheTTL, err := time.ParseDuration(viper.GetString("SHEET_CACHE_TTL"))
	if err != nil {
		sheetCacheTTL = 5 * time.Minute
	}

	dispatchInterval, err := time.ParseDuration(viper.GetString("REMINDER_DISPATCH_INTERVAL"))
	if err != nil {
		dispatchInterval = time.Minute
	}

	smsProvider := viper.GetString("SMS_PROVIDER")
	if smsProvider == "" {
		smsProvider = "noop"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		SMS: SMSConfig{
			Provider:         smsProvider,
			TwilioAccountSID: viper.GetString("TWILIO_ACCOUNT_SID"),
			TwilioAuthToken:  viper.GetString("TWILIO_AUTH_TOKEN"),
			TwilioFromNumber: viper.GetString("TWILIO_PHONE_NUMBER"),
			TwilioBaseURL:    viper.GetString("TWILIO_BASE_URL"),
			ATAPIKey:         viper.GetString("AT_API_KEY"),
			ATUsername:       viper.GetString("AT_USERNAME"),
			ATBaseURL:        viper.GetString("AT_BASE_URL"),
		},
		Sheets: SheetsConfig{
			OvarianDataURL:   viper.GetString("SHEET_OVARIAN_DATA_URL"),
			InventoryDataURL: viper.GetString("SHEET_INVENTORY_DATA_URL"),
			TreatmentDataURL: viper.GetString("SHEET_TREATMENT_DATA_URL"),
			CacheTTL:         sheetCacheTTL,
		},
		ML: MLConfig{
			PredictURL: viper.GetString("ML_PREDICT_URL"),
			ChatURL:    viper.GetString("ML_CHAT_URL"),
		},
		Reminder: ReminderConfig{
			DispatchEnabled:  viper.GetBool("REMINDER_DISPATCH_ENABLED"),
			DispatchInterval: dispatchInterval,
		},
	}

	return config, nil
}
