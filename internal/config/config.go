// Package config contains utilities for loading configs
package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/forkfeed/forkfeed/internal/password"
)

const (
	configFilePath     = "/data/forkfeed.yaml"
	appSecretBytes     = 32
	appSecretFilePerms = 0o600
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

// Store drivers for uploaded images.
const (
	StoreDriverLocal = "local"
	StoreDriverS3    = "s3"
)

const (
	DefaultMaxUploadBytes = 5 << 20 // 5 MiB
	DefaultWebpQuality    = 80
)

type AdminPassword string

func (a AdminPassword) Validate() error {
	return password.ValidatePassword(string(a))
}

type AppSecretValue string

func (a *AppSecretValue) Validate() error {
	if a == nil {
		return errors.New("secret should not be nil")
	}
	if len([]byte(*a)) < appSecretBytes {
		return errors.New("secret should be at least 32 bytes")
	}
	return nil
}

func splitFieldList(param string) []string {
	// "A,B,C" or "A B C"
	param = strings.ReplaceAll(param, " ", ",")
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// allOrNothing succeeds only when all listed fields of the parent struct are
// zero-valued or all are non-zero. Field names come from the tag parameter,
// e.g. `validate:"allOrNothing=A,B,C"`.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true // nothing to validate
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := splitFieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	hasZero := false
	hasNonZero := false

	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false // field name typo / not found
		}

		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}

		if f.IsZero() {
			hasZero = true
		} else {
			hasNonZero = true
		}

		if hasZero && hasNonZero {
			return false
		}
	}

	return true
}

func registerAllOrNothing(v *validator.Validate) {
	_ = v.RegisterValidation("allOrNothing", allOrNothing)
}

type selfValidator interface {
	Validate() error
}

// validateFn dispatches to the field's own Validate method.
func validateFn(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.CanInterface() {
		if v, ok := f.Interface().(selfValidator); ok {
			return v.Validate() == nil
		}
	}
	if f.CanAddr() && f.Addr().CanInterface() {
		if v, ok := f.Addr().Interface().(selfValidator); ok {
			return v.Validate() == nil
		}
	}
	return false
}

func registerValidateFn(v *validator.Validate) {
	_ = v.RegisterValidation("validateFn", validateFn)
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		if e.Tag() == "allOrNothing" {
			// Extract the struct name from the namespace
			// e.g., "Config.S3.Validate" -> "S3"
			namespace := e.Namespace()
			parts := strings.Split(namespace, ".")
			var structName string
			//nolint:mnd
			if len(parts) >= 2 {
				structName = parts[len(parts)-2]
			}

			var fields string
			switch structName {
			case "Database":
				fields = "Port, Host, Database, User, and Password"
			case "S3":
				fields = "Endpoint, AccessKey, SecretKey, and Bucket"
			case "Admin":
				fields = "Email and Password"
			default:
				fields = "all related fields"
			}

			return fmt.Errorf(
				"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
				structName, fields)
		}
	}

	return err
}

type AppSecret struct {
	Value   *AppSecretValue `yaml:"value" validate:"omitempty,validateFn"`
	Path    string          `yaml:"path" validate:"omitempty,filepath"`
	Version string          `yaml:"version"`
}

type Database struct {
	Port     uint16 `yaml:"port"`
	Host     string `yaml:"host" validate:"omitempty,hostname_rfc1123"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Port Host Database User Password"`
}

// Uploads configures the image store.
type Uploads struct {
	Driver         string `yaml:"driver" validate:"omitempty,oneof=local s3"`
	Volume         string `yaml:"volume"`
	URLPrefix      string `yaml:"url_prefix"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" validate:"omitempty,gt=0"`
	WebpQuality    int    `yaml:"webp_quality" validate:"omitempty,gt=0,lte=100"`
}

type S3 struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Endpoint AccessKey SecretKey Bucket"`
}

type Admin struct {
	Email    string        `yaml:"email" validate:"omitempty,email"`
	Password AdminPassword `yaml:"password" validate:"omitempty,validateFn"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Email Password"`
}

// Revalidate configures the webhook notified after content changes.
type Revalidate struct {
	URL    string `yaml:"url" validate:"omitempty,url"`
	Secret string `yaml:"secret"`
}

type Config struct {
	AppSecret  AppSecret  `yaml:"app_secret"`
	Admin      Admin      `yaml:"admin"`
	Uploads    Uploads    `yaml:"uploads"`
	S3         S3         `yaml:"s3"`
	Database   Database   `yaml:"database"`
	Revalidate Revalidate `yaml:"revalidate"`
	HostOrigin string     `yaml:"host_origin" validate:"url"`
	Env        string     `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
}

func newAppSecret() (string, error) {
	token := make([]byte, appSecretBytes)
	if _, err := rand.Reader.Read(token); err != nil {
		return "", fmt.Errorf("creating app secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(token), nil
}

func loadAppSecret(config *Config) error {
	if config.AppSecret.Value != nil {
		return nil
	}

	var secret string
	if f1, err := os.Lstat(config.AppSecret.Path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking secret path: %w", err)
		}

		file, err := os.OpenFile(config.AppSecret.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, appSecretFilePerms)
		if err != nil {
			return fmt.Errorf("creating secret file: %w", err)
		}
		defer func() { _ = file.Close() }()

		secret, err = newAppSecret()
		if err != nil {
			return fmt.Errorf("generating new app secret: %w", err)
		}

		if _, err := file.WriteString(secret); err != nil {
			return fmt.Errorf("writing secret file: %w", err)
		}
	} else {
		if f1.IsDir() {
			return fmt.Errorf("expected file, got directory at %q", config.AppSecret.Path)
		}
		data, err := os.ReadFile(config.AppSecret.Path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		secret = string(data)
	}
	val := AppSecretValue(secret)
	config.AppSecret.Value = &val
	return nil
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func loadConfigFromEnv() (Config, error) {
	environment := loadWithDefault("ENV", EnvDev)
	hostOrigin := loadWithDefault("HOST_ORIGIN", "http://localhost:8080")

	// AppSecret
	appSecretValue := AppSecretValue(loadWithDefault("APP_SECRET", ""))
	appSecretPath := loadWithDefault("APP_SECRET_PATH", "/data/secret")
	appSecretVersion := loadWithDefault("APP_SECRET_VERSION", "1")

	// Database
	databasePort := loadWithDefault("DATABASE_PORT", "5432")
	databaseHost := loadWithDefault("DATABASE_HOST", "localhost")
	databaseDatabase := loadWithDefault("DATABASE", "")
	databaseUser := loadWithDefault("DATABASE_USER", "")
	databasePassword := loadWithDefault("DATABASE_PASSWORD", "")

	// Uploads
	uploadsDriver := loadWithDefault("UPLOADS_DRIVER", StoreDriverLocal)
	uploadsVolume := loadWithDefault("UPLOADS_VOLUME", "/data/uploads")
	uploadsURLPrefix := loadWithDefault("UPLOADS_URL_PREFIX", "/uploads")
	maxUploadBytes := loadWithDefault("UPLOADS_MAX_BYTES", "")
	webpQuality := loadWithDefault("UPLOADS_WEBP_QUALITY", "")

	// S3
	s3Endpoint := loadWithDefault("S3_ENDPOINT", "")
	s3AccessKey := loadWithDefault("S3_ACCESS_KEY", "")
	s3SecretKey := loadWithDefault("S3_SECRET_KEY", "")
	s3Bucket := loadWithDefault("S3_BUCKET", "")
	s3UseSSL := loadWithDefault("S3_USE_SSL", "false")

	// Revalidate
	revalidateURL := loadWithDefault("REVALIDATE_URL", "")
	revalidateSecret := loadWithDefault("REVALIDATE_SECRET", "")

	// Admin
	adminEmail := loadWithDefault("ADMIN_EMAIL", "")
	adminPassword := AdminPassword(loadWithDefault("ADMIN_PASSWORD", ""))

	conf := Config{
		HostOrigin: hostOrigin,
		Env:        environment,
	}

	// Load App Secret
	conf.AppSecret = AppSecret{
		Path:    appSecretPath,
		Version: appSecretVersion,
	}
	if appSecretValue == "" {
		conf.AppSecret.Value = nil
	} else {
		conf.AppSecret.Value = &appSecretValue
	}

	// Load Database
	conf.Database = Database{
		Host:     databaseHost,
		Database: databaseDatabase,
		User:     databaseUser,
		Password: databasePassword,
	}
	if port, err := strconv.ParseUint(databasePort, 10, 16); err != nil {
		return conf, fmt.Errorf("invalid DATABASE_PORT (%q): %w", databasePort, err)
	} else {
		conf.Database.Port = uint16(port)
	}

	// Load uploads
	conf.Uploads = Uploads{
		Driver:         uploadsDriver,
		Volume:         uploadsVolume,
		URLPrefix:      uploadsURLPrefix,
		MaxUploadBytes: DefaultMaxUploadBytes,
		WebpQuality:    DefaultWebpQuality,
	}
	if maxUploadBytes != "" {
		b, err := strconv.ParseInt(maxUploadBytes, 10, 64)
		if err != nil {
			return conf, fmt.Errorf("invalid UPLOADS_MAX_BYTES (%q): %w", maxUploadBytes, err)
		}
		conf.Uploads.MaxUploadBytes = b
	}
	if webpQuality != "" {
		q, err := strconv.Atoi(webpQuality)
		if err != nil {
			return conf, fmt.Errorf("invalid UPLOADS_WEBP_QUALITY (%q): %w", webpQuality, err)
		}
		conf.Uploads.WebpQuality = q
	}

	// Load S3
	conf.S3 = S3{
		Endpoint:  s3Endpoint,
		AccessKey: s3AccessKey,
		SecretKey: s3SecretKey,
		Bucket:    s3Bucket,
	}
	if b, err := strconv.ParseBool(s3UseSSL); err != nil {
		return conf, fmt.Errorf("invalid S3_USE_SSL (%q): %w", s3UseSSL, err)
	} else {
		conf.S3.UseSSL = b
	}

	// Load revalidate
	conf.Revalidate = Revalidate{
		URL:    revalidateURL,
		Secret: revalidateSecret,
	}

	// Load Admin
	conf.Admin = Admin{
		Email:    adminEmail,
		Password: adminPassword,
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	registerAllOrNothing(validate)
	registerValidateFn(validate)
	if err := validate.Struct(conf); err != nil {
		return conf, formatValidationError(err)
	}

	if err := loadAppSecret(&conf); err != nil {
		return conf, fmt.Errorf("loading app secret: %w", err)
	}

	return conf, nil
}

func loadConfigFromFile(path string) (Config, error) {
	// Read file
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	// Unmarshal into config
	var config Config
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Set defaults
	if config.AppSecret.Path == "" {
		config.AppSecret.Path = "/data/secret"
	}
	if config.AppSecret.Version == "" {
		config.AppSecret.Version = "1"
	}
	if config.Env == "" {
		config.Env = EnvDev
	}
	if config.HostOrigin == "" {
		config.HostOrigin = "http://localhost:8080"
	}
	if config.Database.Host == "" {
		config.Database.Host = "localhost"
	}
	if config.Database.Port == 0 {
		config.Database.Port = 5432
	}
	if config.Uploads.Driver == "" {
		config.Uploads.Driver = StoreDriverLocal
	}
	if config.Uploads.Volume == "" {
		config.Uploads.Volume = "/data/uploads"
	}
	if config.Uploads.URLPrefix == "" {
		config.Uploads.URLPrefix = "/uploads"
	}
	if config.Uploads.MaxUploadBytes == 0 {
		config.Uploads.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if config.Uploads.WebpQuality == 0 {
		config.Uploads.WebpQuality = DefaultWebpQuality
	}

	// Validate config
	validate := validator.New(validator.WithRequiredStructEnabled())
	registerAllOrNothing(validate)
	registerValidateFn(validate)
	if err := validate.Struct(config); err != nil {
		return Config{}, formatValidationError(err)
	}

	if err := loadAppSecret(&config); err != nil {
		return Config{}, fmt.Errorf("loading app secret: %w", err)
	}

	return config, nil
}

func configFileExists(path string) bool {
	f, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return !f.IsDir()
}

func LoadConfig() (Config, error) {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	if configFileExists(configFilePath) {
		return loadConfigFromFile(configFilePath)
	}

	return loadConfigFromEnv()
}
