// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"fmt"
	"net/mail"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forkfeed/forkfeed/internal/argon2id"
	"github.com/forkfeed/forkfeed/internal/config"
	"github.com/forkfeed/forkfeed/internal/database"
	"github.com/forkfeed/forkfeed/internal/env"
	"github.com/forkfeed/forkfeed/internal/filestore"
	"github.com/forkfeed/forkfeed/internal/password"
	"github.com/forkfeed/forkfeed/internal/role"
)

// Database connects to Postgres and ensures the schema exists.
func Database(ctx context.Context, conf config.Config) (*database.Database, error) {
	if conf.Database.User == "" {
		return nil, NewConfigValueMissingError("database.user")
	}
	if conf.Database.Password == "" {
		return nil, NewConfigValueMissingError("database.password")
	}
	if conf.Database.Database == "" {
		return nil, NewConfigValueMissingError("database.database")
	}
	dbString := fmt.Sprintf("postgresql://%s:%s@%s:%d/%s",
		conf.Database.User, conf.Database.Password,
		conf.Database.Host, conf.Database.Port, conf.Database.Database)

	pool, err := pgxpool.New(ctx, dbString)
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	return db, nil
}

// ImageStore builds the image store named by the uploads driver config.
func ImageStore(ctx context.Context, conf config.Config) (filestore.Store, error) {
	urlPrefix := conf.Uploads.URLPrefix
	if urlPrefix == "" {
		urlPrefix = filestore.DefaultURLPrefix
	}

	switch conf.Uploads.Driver {
	case config.StoreDriverS3:
		if conf.S3.Endpoint == "" {
			return nil, NewConfigValueMissingError("s3.endpoint")
		}
		return filestore.NewS3(ctx, filestore.S3Config{
			Endpoint:  conf.S3.Endpoint,
			AccessKey: conf.S3.AccessKey,
			SecretKey: conf.S3.SecretKey,
			Bucket:    conf.S3.Bucket,
			UseSSL:    conf.S3.UseSSL,
			URLPrefix: urlPrefix,
			Host:      conf.HostOrigin,
		})
	case config.StoreDriverLocal, "":
		if conf.Uploads.Volume == "" {
			return nil, NewConfigValueMissingError("uploads.volume")
		}
		volume, err := filepath.Abs(conf.Uploads.Volume)
		if err != nil {
			return nil, fmt.Errorf("resolving uploads volume: %w", err)
		}
		return filestore.NewLocal(volume, urlPrefix, conf.HostOrigin), nil
	default:
		return nil, fmt.Errorf("unknown uploads driver %q", conf.Uploads.Driver)
	}
}

// Admin sets up an admin user if one does not exist. Requires env.Database.
func Admin(ctx context.Context, environment *env.Env) error {
	adminEmail := string(environment.Config.Admin.Email)
	adminPassword := string(environment.Config.Admin.Password)
	if adminEmail == "" || adminPassword == "" {
		environment.Logger.Info("admin email and password not configured, skipping admin setup")
		return nil
	}

	// Validate email and password
	if _, err := mail.ParseAddress(adminEmail); err != nil {
		return fmt.Errorf("parsing admin email: %w", err)
	}
	if err := password.ValidatePassword(adminPassword); err != nil {
		return fmt.Errorf("validating admin password: %w", err)
	}

	// Check admin count
	count, err := environment.Database.GetAdminCount(ctx)
	if err != nil {
		return fmt.Errorf("getting admin count: %w", err)
	}
	if count > 0 {
		environment.Logger.Info("admin already setup, skipping setup")
		return nil
	}

	hashedPassword, err := argon2id.EncodeHash(adminPassword, argon2id.DefaultParams)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	if _, err := environment.Database.CreateUser(ctx, database.CreateUserParams{
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         role.RoleAdmin.String(),
	}); err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	environment.Logger.Info("admin user created")
	return nil
}
