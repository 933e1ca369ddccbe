package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Setting keys for the site custom-code snippets.
const (
	SettingHeaderCode = "custom_code_header"
	SettingBodyCode   = "custom_code_body"
	SettingFooterCode = "custom_code_footer"
	SettingAdsTxt     = "ads_txt"
	SettingRobotsTxt  = "robots_txt"
)

// GetSetting returns the stored value, or the empty string when the key has
// never been written.
func (db *Database) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := db.pool.QueryRow(ctx,
		`SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return value, err
}

func (db *Database) UpsertSetting(ctx context.Context, key, value string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	return err
}
