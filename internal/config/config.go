package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config アプリケーション全体の設定
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig HTTPサーバーの設定
type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

// Addr ListenAndServe に渡すアドレス
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// DatabaseConfig PostgreSQL接続の設定
type DatabaseConfig struct {
	URL            string
	MaxOpenConns   int
	MaxIdleConns   int
	ConnectRetries int
	RetryInterval  time.Duration
}

// LogConfig ログ出力の設定
type LogConfig struct {
	Level  string
	Format string
}

// Load .envファイルと環境変数から設定を読み込む
// .envが存在しない場合は環境変数のみを使用する
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv 環境変数のみから設定を構築する
func FromEnv() (*Config, error) {
	dsn, err := databaseURLFromEnv()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			GinMode:         getEnv("GIN_MODE", "release"),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			URL:            dsn,
			MaxOpenConns:   getInt("PG_MAX_OPEN_CONNS", 25),
			MaxIdleConns:   getInt("PG_MAX_IDLE_CONNS", 10),
			ConnectRetries: getInt("DB_CONNECT_RETRIES", 5),
			RetryInterval:  getDuration("DB_CONNECT_RETRY_INTERVAL", 2*time.Second),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
	}
	return cfg, nil
}

// databaseURLFromEnv 接続文字列を決定する
// 優先順位: DATABASE_URL > SUPABASE_URL + SUPABASE_DB_PASSWORD > PG_*
func databaseURLFromEnv() (string, error) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v, nil
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabasePassword := os.Getenv("SUPABASE_DB_PASSWORD")
	if supabaseURL != "" && supabasePassword != "" {
		u, err := url.Parse(supabaseURL)
		if err != nil || u.Host == "" {
			return "", fmt.Errorf("SUPABASE_URLの形式が正しくありません: %s", supabaseURL)
		}
		// Supabaseのプーラー(ポート6543)経由で接続
		return fmt.Sprintf(
			"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
			u.Host, supabasePassword,
		), nil
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   getEnv("PG_HOST", "localhost") + ":" + getEnv("PG_PORT", "5432"),
		Path:   "/" + getEnv("PG_DB", "citynotes"),
	}
	user := getEnv("PG_USER", "postgres")
	if pass := os.Getenv("PG_PASSWORD"); pass != "" {
		u.User = url.UserPassword(user, pass)
	} else {
		u.User = url.User(user)
	}
	u.RawQuery = "sslmode=" + getEnv("PG_SSLMODE", "disable")
	return u.String(), nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
