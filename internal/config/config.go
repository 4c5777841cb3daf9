package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
)

type Config struct {
	App struct {
		Port        string   `mapstructure:"port"`
		Env         string   `mapstructure:"env"`
		BaseURL     string   `mapstructure:"base_url"`
		CORSOrigins []string `mapstructure:"cors_origins"`
	} `mapstructure:"app"`
	Portfolio struct {
		Source           string        `mapstructure:"source"`
		LoadDelay        time.Duration `mapstructure:"load_delay"`
		HeaderOffset     float64       `mapstructure:"header_offset"`
		PlaceholderImage string        `mapstructure:"placeholder_image"`
	} `mapstructure:"portfolio"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr           string        `mapstructure:"addr"`
		Password       string        `mapstructure:"password"`
		ResumeTTL      time.Duration `mapstructure:"resume_ttl"`
		ResumeWarmCron string        `mapstructure:"resume_warm_cron"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret         string        `mapstructure:"jwt_secret"`
		TokenLifespan     time.Duration `mapstructure:"token_lifespan"`
		OwnerEmail        string        `mapstructure:"owner_email"`
		OwnerPasswordHash string        `mapstructure:"owner_password_hash"`
		LoginPerMinute    float64       `mapstructure:"login_per_minute"`
		LoginBurst        int           `mapstructure:"login_burst"`
	} `mapstructure:"auth"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
		Folder    string `mapstructure:"folder"`
	} `mapstructure:"cloudinary"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
}

// CloudinaryEnabled reports whether media credentials are configured.
func (c Config) CloudinaryEnabled() bool {
	return c.Cloudinary.CloudName != "" && c.Cloudinary.ApiKey != "" && c.Cloudinary.ApiSecret != ""
}

// LoadConfig reads .env, then config.yaml from the given directories (the
// working directory when none are given), then environment overrides.
func LoadConfig(paths ...string) (cfg Config, err error) {

	if len(paths) == 0 {
		paths = []string{"."}
	}

	for _, p := range paths {
		if loadErr := godotenv.Load(strings.TrimSuffix(p, "/") + "/.env"); loadErr == nil {
			break
		}
	}

	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if readErr := v.ReadInConfig(); readErr != nil {
		log.Printf("note: config.yaml not found, using defaults and environment. Error: %v", readErr)
	}

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.base_url", "APP_BASE_URL")
	v.BindEnv("app.cors_origins", "APP_CORS_ORIGINS")
	v.BindEnv("portfolio.source", "PORTFOLIO_SOURCE")
	v.BindEnv("portfolio.load_delay", "PORTFOLIO_LOAD_DELAY")
	v.BindEnv("portfolio.header_offset", "PORTFOLIO_HEADER_OFFSET")
	v.BindEnv("portfolio.placeholder_image", "PORTFOLIO_PLACEHOLDER_IMAGE")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.resume_ttl", "REDIS_RESUME_TTL")
	v.BindEnv("redis.resume_warm_cron", "REDIS_RESUME_WARM_CRON")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")
	v.BindEnv("auth.owner_email", "OWNER_EMAIL")
	v.BindEnv("auth.owner_password_hash", "OWNER_PASSWORD_HASH")
	v.BindEnv("auth.login_per_minute", "AUTH_LOGIN_PER_MINUTE")
	v.BindEnv("auth.login_burst", "AUTH_LOGIN_BURST")

	v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")
	v.BindEnv("cloudinary.folder", "CLOUDINARY_FOLDER")
	v.BindEnv("jaeger.otlp_endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")

	err = v.Unmarshal(&cfg)
	return
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.base_url", "http://localhost:8080")
	v.SetDefault("portfolio.source", SourceStatic)
	v.SetDefault("portfolio.load_delay", 500*time.Millisecond)
	v.SetDefault("portfolio.header_offset", 100)
	v.SetDefault("portfolio.placeholder_image", "/static/placeholder.svg")
	v.SetDefault("redis.resume_ttl", 24*time.Hour)
	// resume cache keys roll over at midnight
	v.SetDefault("redis.resume_warm_cron", "5 0 0 * * *")
	v.SetDefault("auth.token_lifespan", time.Hour)
	v.SetDefault("auth.login_per_minute", 10)
	v.SetDefault("auth.login_burst", 5)
	v.SetDefault("cloudinary.folder", "portfolio")
}
