package repository

import (
	"context"
	"fmt"

	"naija-aroma/internal/models"
)

const settingColumns = `key, value, created_at, updated_at`

// ListSettings returns all settings ordered by key.
func (s *Store) ListSettings(ctx context.Context) ([]*models.Setting, error) {
	rows, err := s.db.Pool.Query(ctx,
		`SELECT `+settingColumns+` FROM settings ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []*models.Setting
	for rows.Next() {
		setting, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, setting)
	}
	return settings, rows.Err()
}

// GetSetting returns the setting or nil when absent.
func (s *Store) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	row := s.db.Pool.QueryRow(ctx,
		`SELECT `+settingColumns+` FROM settings WHERE key = $1`, key)
	setting, err := scanSetting(row)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return setting, nil
}

// UpsertSetting creates the key or overwrites its value.
func (s *Store) UpsertSetting(ctx context.Context, key, value string) (*models.Setting, error) {
	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING `+settingColumns,
		key, value)
	setting, err := scanSetting(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert setting: %w", err)
	}
	return setting, nil
}

func scanSetting(row rowScanner) (*models.Setting, error) {
	var st models.Setting
	err := row.Scan(&st.Key, &st.Value, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
