package configs

import (
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Postgres `mapstructure:"postgres"`
	WhatsApp `mapstructure:"whatsapp"`
	Session  `mapstructure:"session"`
	Redis    `mapstructure:"redis"`
	Catalog  `mapstructure:"catalog"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`

	MaxIdleConns    int `mapstructure:"max_idle_conns"`
	MaxOpenConns    int `mapstructure:"max_open_conns"`
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime"` // minutes
}

// WhatsApp struct - Cloud API credentials and message templates
type WhatsApp struct {
	GraphAPIToken   string  `mapstructure:"graph_api_token"`
	VerifyToken     string  `mapstructure:"verify_token"`
	BaseURL         string  `mapstructure:"base_url"`
	APIVersion      string  `mapstructure:"api_version"`
	Timeout         int     `mapstructure:"timeout"`    // seconds
	RateLimit       float64 `mapstructure:"rate_limit"` // outbound calls per second, 0 = unlimited
	Burst           int     `mapstructure:"burst"`
	LanguageCode    string  `mapstructure:"language_code"`
	WelcomeTemplate string  `mapstructure:"welcome_template"`
	ProductTemplate string  `mapstructure:"product_template"`
}

// Session struct - Conversation session storage
type Session struct {
	Driver    string `mapstructure:"driver"` // memory | redis
	KeyPrefix string `mapstructure:"key_prefix"`
}

// Redis struct
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Catalog struct - Where products come from and which image each card shows
type Catalog struct {
	Source string         `mapstructure:"source"` // postgres | file
	Path   string         `mapstructure:"path"`
	Images []CatalogImage `mapstructure:"images"`
}

// CatalogImage struct
type CatalogImage struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	name := "config"
	if env != "" {
		name = "config." + env
	}
	viper.SetConfigName(name)
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()
	err := viper.ReadInConfig()
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || env == "" {
			panic(err)
		}
		// Fall back to the base file when no per-environment file exists
		viper.SetConfigName("config")
		if err := viper.ReadInConfig(); err != nil {
			panic(err)
		}
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Println("Config file has changed: ", e.Name)
	})
	config = Config{}
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}

func setDefaults() {
	viper.SetDefault("app.port", "3000")
	viper.SetDefault("postgres.max_idle_conns", 10)
	viper.SetDefault("postgres.max_open_conns", 100)
	viper.SetDefault("postgres.conn_max_lifetime", 120)
	viper.SetDefault("whatsapp.base_url", "https://graph.facebook.com")
	viper.SetDefault("whatsapp.api_version", "v19.0")
	viper.SetDefault("whatsapp.timeout", 30)
	viper.SetDefault("whatsapp.language_code", "en_US")
	viper.SetDefault("whatsapp.welcome_template", "welcome_custom")
	viper.SetDefault("whatsapp.product_template", "product_display_template")
	viper.SetDefault("session.driver", "memory")
	viper.SetDefault("session.key_prefix", "leadbot:session:")
	viper.SetDefault("catalog.source", "postgres")
}
