// File: internal/database/check.go
package database

import (
	"context"
	"fmt"
)

// CheckReport 連線檢查結果
type CheckReport struct {
	SelectOne   int
	TableExists bool
	RowCount    int64
}

// Check 依序執行 ping、SELECT 1、users 資料表存在檢查與筆數統計
func Check(ctx context.Context, db DB) (*CheckReport, error) {
	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("Check ping: %w", err)
	}

	r := &CheckReport{}
	if err := db.QueryRow(ctx, `SELECT 1`).Scan(&r.SelectOne); err != nil {
		return nil, fmt.Errorf("Check select: %w", err)
	}

	if err := db.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_name = 'users'
		)`,
	).Scan(&r.TableExists); err != nil {
		return nil, fmt.Errorf("Check table: %w", err)
	}
	if !r.TableExists {
		return r, nil
	}

	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&r.RowCount); err != nil {
		return nil, fmt.Errorf("Check count: %w", err)
	}
	return r, nil
}
