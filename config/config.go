package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "8MB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// Featured images travel inline as data URLs, so the limit is generous.
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Firebase selects the remote backend when a project is configured
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// LocalStore is the fallback backend
	LocalStore *LocalStoreConfig `json:"localStore" yaml:"localStore"`

	// Operators are the local-mode dashboard accounts
	Operators []OperatorConfig `json:"operators" yaml:"operators"`

	// SessionTTL bounds local-mode operator tokens
	SessionTTL time.Duration `json:"sessionTtl" yaml:"sessionTtl"`

	// EmailRelay configuration for customer status emails
	EmailRelay *EmailRelayConfig `json:"emailRelay" yaml:"emailRelay"`

	// Tracking configuration for public links and QR labels
	Tracking *TrackingConfig `json:"tracking" yaml:"tracking"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Backup configuration for scheduled exports
	Backup *BackupConfig `json:"backup" yaml:"backup"`

	// Audit configuration for the shipment event worker
	Audit *AuditConfig `json:"audit" yaml:"audit"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// File enables a rotated log file next to stdout when set.
	File       string `json:"file" yaml:"file"`
	MaxSizeMB  int    `json:"maxSizeMb" yaml:"maxSizeMb"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
}

// FirebaseConfig defines the remote document store and identity provider
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	Collection      string `json:"collection" yaml:"collection"`
	// AdminAllowlist limits dashboard access by email. Empty admits every
	// signed-in operator.
	AdminAllowlist []string `json:"adminAllowlist" yaml:"adminAllowlist"`
}

// Enabled reports whether the remote backend should be used
func (c *FirebaseConfig) Enabled() bool {
	return c != nil && strings.TrimSpace(c.ProjectID) != ""
}

// LocalStoreConfig defines the single-key local store
type LocalStoreConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. file:///var/lib/shiptrack
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Key       string `json:"key" yaml:"key"`
	SeedDemo  bool   `json:"seedDemo" yaml:"seedDemo"`
}

// OperatorConfig is one local-mode operator account
type OperatorConfig struct {
	Email        string `json:"email" yaml:"email"`
	PasswordHash string `json:"passwordHash" yaml:"passwordHash"`
}

// EmailRelayConfig defines the EmailJS REST relay
type EmailRelayConfig struct {
	Endpoint   string        `json:"endpoint" yaml:"endpoint"`
	ServiceID  string        `json:"serviceId" yaml:"serviceId"`
	TemplateID string        `json:"templateId" yaml:"templateId"`
	PublicKey  string        `json:"publicKey" yaml:"publicKey"`
	PrivateKey string        `json:"privateKey" yaml:"privateKey"`
	FromEmail  string        `json:"fromEmail" yaml:"fromEmail"`
	FromName   string        `json:"fromName" yaml:"fromName"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
}

// TrackingConfig defines public tracking link and QR label settings
type TrackingConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	QRSize  int    `json:"qrSize" yaml:"qrSize"`
	QRLevel string `json:"qrLevel" yaml:"qrLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// BackupConfig defines scheduled export backups
type BackupConfig struct {
	// Schedule is a standard 5-field cron expression; empty disables backups
	Schedule string `json:"schedule" yaml:"schedule"`
	// BucketURL defaults to the local store bucket when empty
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

// AuditConfig defines where the event worker writes its audit trail
type AuditConfig struct {
	// Port the worker listens on; the API keeps http.port
	Port      int    `json:"port" yaml:"port"`
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Operators from OPERATOR_0_EMAIL, OPERATOR_0_PASSWORDHASH, ... extend the file list
	cfg.Operators = append(cfg.Operators, buildOperatorsFromEnv()...)

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildOperatorsFromEnv builds local operator accounts from environment variables.
// Environment variable format: OPERATOR_{index}_{field}
// Example: OPERATOR_0_EMAIL, OPERATOR_0_PASSWORDHASH
func buildOperatorsFromEnv() []OperatorConfig {
	var operators []OperatorConfig

	for i := 0; ; i++ {
		prefix := "OPERATOR_" + strconv.Itoa(i) + "_"

		email := os.Getenv(prefix + "EMAIL")
		hash := os.Getenv(prefix + "PASSWORDHASH")
		if email == "" || hash == "" {
			break
		}

		operators = append(operators, OperatorConfig{
			Email:        email,
			PasswordHash: hash,
		})
	}

	return operators
}
