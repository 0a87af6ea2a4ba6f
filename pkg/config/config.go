package config

import (
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type Config struct {
	// Server
	ServerHost string `koanf:"server_host" default:"0.0.0.0"`
	ServerPort int    `koanf:"server_port" default:"3689"`
	Hostname   string `koanf:"-"`

	// Database
	DatabaseFilePath          string        `koanf:"database_file_path" validate:"required"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count" default:"5"`
	DatabaseConnectRetryDelay time.Duration `koanf:"database_connect_retry_delay" default:"2s"`
	DatabaseBusyTimeout       time.Duration `koanf:"database_busy_timeout" default:"5s"`

	// Auth
	JWTSecret            string `koanf:"jwt_secret" validate:"required"`
	IdentityTokenInfoURL string `koanf:"identity_token_info_url" default:"https://oauth2.googleapis.com/tokeninfo"`
	IdentityClientID     string `koanf:"identity_client_id"`

	// Catalog
	CatalogAPIURL      string        `koanf:"catalog_api_url" default:"https://api.themoviedb.org/3"`
	CatalogAPIKey      string        `koanf:"catalog_api_key" validate:"required"`
	CatalogImageURL    string        `koanf:"catalog_image_url" default:"https://image.tmdb.org/t/p"`
	CatalogCacheTTL    time.Duration `koanf:"catalog_cache_ttl" default:"1h"`
	CatalogTimeout     time.Duration `koanf:"catalog_timeout" default:"10s"`
	CachePruneInterval time.Duration `koanf:"cache_prune_interval" default:"15m"`

	// Streaming embeds
	MovieEmbedURL string `koanf:"movie_embed_url"`
	TVEmbedURL    string `koanf:"tv_embed_url"`

	// View sessions
	SessionCapacity int           `koanf:"session_capacity" default:"10000"`
	SessionTTL      time.Duration `koanf:"session_ttl" default:"24h"`
}

const (
	configFileENV     = "CONFIG_FILE"
	defaultConfigFile = "/config/marquee.yaml"
)

// New loads the configuration. Precedence, lowest to highest: struct defaults,
// the YAML file at $CONFIG_FILE, then environment variables named after the
// upper-cased keys (e.g. SERVER_PORT).
func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.WithStack(err)
	}
	cfg.Hostname = hostname

	k := koanf.New(".")

	path := os.Getenv(configFileENV)
	if path == "" {
		path = defaultConfigFile
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "failed to load config file %s", path)
	}

	// Only pick up variables that map onto known keys so unrelated ones such
	// as PATH never reach the decoder.
	known := knownKeys()
	err = k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if _, ok := known[key]; !ok {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := validateRequired(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewForTest returns a config suitable for tests: in-memory database and
// placeholder secrets.
func NewForTest() *Config {
	cfg := &Config{}
	_ = defaults.Set(cfg)
	cfg.ServerHost = "127.0.0.1"
	cfg.DatabaseFilePath = ":memory:"
	cfg.JWTSecret = "test-jwt-secret"
	cfg.CatalogAPIKey = "test-api-key"
	return cfg
}

func knownKeys() map[string]struct{} {
	keys := map[string]struct{}{}
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("koanf")
		if tag == "" || tag == "-" {
			continue
		}
		keys[tag] = struct{}{}
	}
	return keys
}

func validateRequired(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.WithStack(err)
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := toSnakeCase(fe.StructField())
		missing = append(missing, fmt.Sprintf("%s (%s)", strings.ToUpper(key), key))
	}
	return errors.Errorf("missing required config: %s", strings.Join(missing, ", "))
}

func toSnakeCase(s string) string {
	// strcase splits acronyms like "JWTSecret" into "jwt_secret", matching the
	// koanf tags.
	return strcase.ToSnake(s)
}
