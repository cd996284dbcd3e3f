package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/itchan-dev/forum/shared/domain"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Locale               string        `yaml:"locale" validate:"required,oneof=id en"`
	DeletedCommentMarker string        `yaml:"deleted_comment_marker"`
	DeletedReplyMarker   string        `yaml:"deleted_reply_marker"`
	LikeCountConcurrency int           `yaml:"like_count_concurrency" validate:"required,min=1"`
	JwtTTL               time.Duration `yaml:"jwt_ttl" validate:"required"` // seconds
	HttpPort             int           `yaml:"http_port"`
	AllowedOrigins       []string      `yaml:"allowed_origins"`
	Hsts                 bool          `yaml:"hsts"` // only behind HTTPS
	RunMigrations        bool          `yaml:"run_migrations"`
	LogLevel             string        `yaml:"log_level"`
	LogJSON              bool          `yaml:"log_json"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key" validate:"required"`
}

var defaultMarkers = map[string]domain.RedactionMarkers{
	"id": {Comment: "**komentar telah dihapus**", Reply: "**balasan telah dihapus**"},
	"en": {Comment: "**comment has been deleted**", Reply: "**reply has been deleted**"},
}

// RedactionMarkers returns configured markers, falling back to the locale defaults.
func (p *Public) RedactionMarkers() domain.RedactionMarkers {
	m := defaultMarkers[p.Locale]
	if p.DeletedCommentMarker != "" {
		m.Comment = p.DeletedCommentMarker
	}
	if p.DeletedReplyMarker != "" {
		m.Reply = p.DeletedReplyMarker
	}
	return m
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL * time.Second
}

func (c *Config) Port() int {
	if c.Public.HttpPort == 0 {
		return 8080
	}
	return c.Public.HttpPort
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	if err := Validate(cfg); err != nil {
		panic(err.Error())
	}
	return cfg
}

// Validate checks required fields and value ranges.
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
