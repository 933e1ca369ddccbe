package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testSecret = "this-is-a-very-long-secret-key-with-more-than-32-bytes"

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*testing.T)
		wantError bool
		validate  func(*testing.T, *Config)
	}{
		{
			name: "all defaults",
			setup: func(t *testing.T) {
				t.Setenv("APP_SECRET", testSecret)
				t.Setenv("DATABASE_USER", "testuser")
				t.Setenv("DATABASE_PASSWORD", "testpass")
				t.Setenv("DATABASE", "testdb")
			},
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvDev {
					t.Errorf("expected Env %q, got %q", EnvDev, c.Env)
				}
				if c.HostOrigin != "http://localhost:8080" {
					t.Errorf("expected HostOrigin %q, got %q", "http://localhost:8080", c.HostOrigin)
				}
				if c.Database.Port != 5432 {
					t.Errorf("expected Database.Port 5432, got %d", c.Database.Port)
				}
				if c.Database.Host != "localhost" {
					t.Errorf("expected Database.Host %q, got %q", "localhost", c.Database.Host)
				}
				if c.Uploads.Driver != StoreDriverLocal {
					t.Errorf("expected Uploads.Driver %q, got %q", StoreDriverLocal, c.Uploads.Driver)
				}
				if c.Uploads.Volume != "/data/uploads" {
					t.Errorf("expected Uploads.Volume %q, got %q", "/data/uploads", c.Uploads.Volume)
				}
				if c.Uploads.URLPrefix != "/uploads" {
					t.Errorf("expected Uploads.URLPrefix %q, got %q", "/uploads", c.Uploads.URLPrefix)
				}
				if c.Uploads.MaxUploadBytes != DefaultMaxUploadBytes {
					t.Errorf("expected Uploads.MaxUploadBytes %d, got %d", DefaultMaxUploadBytes, c.Uploads.MaxUploadBytes)
				}
				if c.Uploads.WebpQuality != DefaultWebpQuality {
					t.Errorf("expected Uploads.WebpQuality %d, got %d", DefaultWebpQuality, c.Uploads.WebpQuality)
				}
				if c.AppSecret.Value == nil {
					t.Error("expected AppSecret.Value to be set, got nil")
				}
			},
		},
		{
			name: "custom environment values",
			setup: func(t *testing.T) {
				t.Setenv("ENV", "PROD")
				t.Setenv("HOST_ORIGIN", "https://forkfeed.example.com")
				t.Setenv("APP_SECRET", testSecret)
				t.Setenv("APP_SECRET_VERSION", "2")
				t.Setenv("DATABASE_USER", "customuser")
				t.Setenv("DATABASE_PASSWORD", "custompass")
				t.Setenv("DATABASE", "customdb")
				t.Setenv("DATABASE_HOST", "db.example.com")
				t.Setenv("DATABASE_PORT", "5433")
				t.Setenv("UPLOADS_DRIVER", "s3")
				t.Setenv("UPLOADS_MAX_BYTES", "1048576")
				t.Setenv("UPLOADS_WEBP_QUALITY", "60")
				t.Setenv("S3_ENDPOINT", "s3.example.com")
				t.Setenv("S3_ACCESS_KEY", "access")
				t.Setenv("S3_SECRET_KEY", "secret")
				t.Setenv("S3_BUCKET", "forkfeed")
				t.Setenv("S3_USE_SSL", "true")
				t.Setenv("REVALIDATE_URL", "https://forkfeed.example.com/api/revalidate")
				t.Setenv("REVALIDATE_SECRET", "hook-secret")
			},
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvProd {
					t.Errorf("expected Env %q, got %q", EnvProd, c.Env)
				}
				if c.Database.Port != 5433 {
					t.Errorf("expected Database.Port 5433, got %d", c.Database.Port)
				}
				if c.Uploads.Driver != StoreDriverS3 {
					t.Errorf("expected Uploads.Driver %q, got %q", StoreDriverS3, c.Uploads.Driver)
				}
				if c.Uploads.MaxUploadBytes != 1048576 {
					t.Errorf("expected Uploads.MaxUploadBytes 1048576, got %d", c.Uploads.MaxUploadBytes)
				}
				if c.Uploads.WebpQuality != 60 {
					t.Errorf("expected Uploads.WebpQuality 60, got %d", c.Uploads.WebpQuality)
				}
				if !c.S3.UseSSL {
					t.Error("expected S3.UseSSL true")
				}
				if c.S3.Bucket != "forkfeed" {
					t.Errorf("expected S3.Bucket %q, got %q", "forkfeed", c.S3.Bucket)
				}
				if c.Revalidate.URL != "https://forkfeed.example.com/api/revalidate" {
					t.Errorf("unexpected Revalidate.URL %q", c.Revalidate.URL)
				}
				if c.AppSecret.Version != "2" {
					t.Errorf("expected AppSecret.Version %q, got %q", "2", c.AppSecret.Version)
				}
			},
		},
		{
			name: "invalid database port",
			setup: func(t *testing.T) {
				t.Setenv("APP_SECRET", testSecret)
				t.Setenv("DATABASE_USER", "testuser")
				t.Setenv("DATABASE_PASSWORD", "testpass")
				t.Setenv("DATABASE", "testdb")
				t.Setenv("DATABASE_PORT", "not-a-port")
			},
			wantError: true,
		},
		{
			name: "invalid uploads driver",
			setup: func(t *testing.T) {
				t.Setenv("APP_SECRET", testSecret)
				t.Setenv("DATABASE_USER", "testuser")
				t.Setenv("DATABASE_PASSWORD", "testpass")
				t.Setenv("DATABASE", "testdb")
				t.Setenv("UPLOADS_DRIVER", "ftp")
			},
			wantError: true,
		},
		{
			name: "invalid max upload bytes",
			setup: func(t *testing.T) {
				t.Setenv("APP_SECRET", testSecret)
				t.Setenv("DATABASE_USER", "testuser")
				t.Setenv("DATABASE_PASSWORD", "testpass")
				t.Setenv("DATABASE", "testdb")
				t.Setenv("UPLOADS_MAX_BYTES", "lots")
			},
			wantError: true,
		},
		{
			name: "incomplete s3 config",
			setup: func(t *testing.T) {
				t.Setenv("APP_SECRET", testSecret)
				t.Setenv("DATABASE_USER", "testuser")
				t.Setenv("DATABASE_PASSWORD", "testpass")
				t.Setenv("DATABASE", "testdb")
				t.Setenv("S3_ENDPOINT", "s3.example.com")
				// Access key, secret key and bucket missing.
			},
			wantError: true,
		},
		{
			name: "incomplete database config",
			setup: func(t *testing.T) {
				t.Setenv("APP_SECRET", testSecret)
				t.Setenv("DATABASE_USER", "testuser")
				// Password and database name missing.
			},
			wantError: true,
		},
		{
			name: "app secret generated at path",
			setup: func(t *testing.T) {
				t.Setenv("APP_SECRET_PATH", filepath.Join(t.TempDir(), "secret"))
				t.Setenv("DATABASE_USER", "testuser")
				t.Setenv("DATABASE_PASSWORD", "testpass")
				t.Setenv("DATABASE", "testdb")
			},
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.AppSecret.Value == nil {
					t.Fatal("expected AppSecret.Value to be generated")
				}
				data, err := os.ReadFile(c.AppSecret.Path)
				if err != nil {
					t.Fatalf("failed to read generated secret file: %v", err)
				}
				if string(data) != string(*c.AppSecret.Value) {
					t.Error("secret file content does not match loaded value")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			conf, err := loadConfigFromEnv()
			if tt.wantError {
				if err == nil {
					t.Fatal("loadConfigFromEnv() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfigFromEnv() error = %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, &conf)
			}
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forkfeed.yaml")
	contents := `
app_secret:
  value: ` + testSecret + `
host_origin: https://forkfeed.example.com
env: PROD
database:
  host: db.example.com
  port: 5433
  database: forkfeed
  user: forkfeed
  password: hunter222222
uploads:
  driver: local
  volume: /srv/uploads
  max_upload_bytes: 2097152
revalidate:
  url: https://forkfeed.example.com/api/revalidate
  secret: hook-secret
`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	conf, err := loadConfigFromFile(path)
	if err != nil {
		t.Fatalf("loadConfigFromFile() error = %v", err)
	}

	if conf.Env != EnvProd {
		t.Errorf("Env = %q, want %q", conf.Env, EnvProd)
	}
	if conf.Database.Host != "db.example.com" {
		t.Errorf("Database.Host = %q, want %q", conf.Database.Host, "db.example.com")
	}
	if conf.Uploads.Volume != "/srv/uploads" {
		t.Errorf("Uploads.Volume = %q, want %q", conf.Uploads.Volume, "/srv/uploads")
	}
	if conf.Uploads.MaxUploadBytes != 2097152 {
		t.Errorf("Uploads.MaxUploadBytes = %d, want 2097152", conf.Uploads.MaxUploadBytes)
	}
	// Defaults fill unset fields.
	if conf.Uploads.URLPrefix != "/uploads" {
		t.Errorf("Uploads.URLPrefix = %q, want default %q", conf.Uploads.URLPrefix, "/uploads")
	}
	if conf.Uploads.WebpQuality != DefaultWebpQuality {
		t.Errorf("Uploads.WebpQuality = %d, want default %d", conf.Uploads.WebpQuality, DefaultWebpQuality)
	}
	if conf.Revalidate.Secret != "hook-secret" {
		t.Errorf("Revalidate.Secret = %q, want %q", conf.Revalidate.Secret, "hook-secret")
	}
}

func TestLoadConfigFromFile_Missing(t *testing.T) {
	if _, err := loadConfigFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("loadConfigFromFile() succeeded for missing file, want error")
	}
}
