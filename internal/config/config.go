package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Platform              string `mapstructure:"PLATFORM"`
	ChannelList           string `mapstructure:"YT_CHANNEL_LIST"`
	OutputPath            string `mapstructure:"OUTPUT_PATH"`
	CrawlerMaxVideosCount int    `mapstructure:"CRAWLER_MAX_VIDEOS_COUNT"`
	MaxConcurrencyNum     int    `mapstructure:"MAX_CONCURRENCY_NUM"`
	CrawlerMaxSleepSec    int    `mapstructure:"CRAWLER_MAX_SLEEP_SEC"`

	DataDir        string `mapstructure:"DATA_DIR"`
	StoreBackend   string `mapstructure:"STORE_BACKEND"`
	SaveDataOption string `mapstructure:"SAVE_DATA_OPTION"`
	SQLitePath     string `mapstructure:"SQLITE_PATH"`
	MySQLDSN       string `mapstructure:"MYSQL_DSN"`
	PostgresDSN    string `mapstructure:"POSTGRES_DSN"`
	MongoURI       string `mapstructure:"MONGO_URI"`
	MongoDB        string `mapstructure:"MONGO_DB"`

	CacheBackend       string `mapstructure:"CACHE_BACKEND"`
	CacheDefaultTTLSec int    `mapstructure:"CACHE_DEFAULT_TTL_SEC"`
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisDB            int    `mapstructure:"REDIS_DB"`
	RedisKeyPrefix     string `mapstructure:"REDIS_KEY_PREFIX"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	HttpTimeoutSec       int    `mapstructure:"HTTP_TIMEOUT_SEC"`
	HttpRetryCount       int    `mapstructure:"HTTP_RETRY_COUNT"`
	HttpRetryBaseDelayMs int    `mapstructure:"HTTP_RETRY_BASE_DELAY_MS"`
	HttpRetryMaxDelayMs  int    `mapstructure:"HTTP_RETRY_MAX_DELAY_MS"`
	UserAgent            string `mapstructure:"USER_AGENT"`
	AcceptLanguage       string `mapstructure:"ACCEPT_LANGUAGE"`
	Cookies              string `mapstructure:"COOKIES"`
}

var AppConfig Config

func LoadConfig(path string) error {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("PLATFORM", "youtube")
	viper.SetDefault("YT_CHANNEL_LIST", "")
	viper.SetDefault("OUTPUT_PATH", "")
	viper.SetDefault("CRAWLER_MAX_VIDEOS_COUNT", 0)
	viper.SetDefault("MAX_CONCURRENCY_NUM", 1)
	viper.SetDefault("CRAWLER_MAX_SLEEP_SEC", 1)
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("STORE_BACKEND", "none")
	viper.SetDefault("SAVE_DATA_OPTION", "json")
	viper.SetDefault("SQLITE_PATH", "data/channel_crawler.db")
	viper.SetDefault("MYSQL_DSN", "")
	viper.SetDefault("POSTGRES_DSN", "")
	viper.SetDefault("MONGO_URI", "")
	viper.SetDefault("MONGO_DB", "channel_crawler")
	viper.SetDefault("CACHE_BACKEND", "none")
	viper.SetDefault("CACHE_DEFAULT_TTL_SEC", 600)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_KEY_PREFIX", "channel_crawler:")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("HTTP_TIMEOUT_SEC", 60)
	viper.SetDefault("HTTP_RETRY_COUNT", 3)
	viper.SetDefault("HTTP_RETRY_BASE_DELAY_MS", 500)
	viper.SetDefault("HTTP_RETRY_MAX_DELAY_MS", 4000)
	viper.SetDefault("USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	viper.SetDefault("ACCEPT_LANGUAGE", "en-US,en;q=0.9")
	viper.SetDefault("COOKIES", "")

	viper.SetEnvPrefix("CHANNEL_CRAWLER")
	viper.AutomaticEnv()

	// If no config file found, just use defaults/env
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return err
	}
	Normalize(&AppConfig)
	return nil
}

func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.Platform = strings.ToLower(strings.TrimSpace(cfg.Platform))
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	cfg.CacheBackend = strings.ToLower(strings.TrimSpace(cfg.CacheBackend))
	cfg.SaveDataOption = strings.ToLower(strings.TrimSpace(cfg.SaveDataOption))
	if cfg.SaveDataOption == "excel" {
		cfg.SaveDataOption = "xlsx"
	}
}
