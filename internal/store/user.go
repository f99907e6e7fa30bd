package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"user-service/internal/database"
	"user-service/internal/model"
)

const userColumns = `id, name, email, active, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Active,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser 新增使用者，active 固定為 TRUE
func CreateUser(ctx context.Context, db database.DB, name, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, active)
		 VALUES ($1, $2, TRUE)
		 RETURNING `+userColumns,
		name,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// GetUserByID 查無資料時回傳 (nil, nil)
func GetUserByID(ctx context.Context, db database.DB, id int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1`,
		id,
	)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// ListUsers 依建立時間新到舊排序，同時間以 id 大者在前
func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers scan: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers rows: %w", err)
	}
	return users, nil
}

// DeleteUser 回傳是否真的刪除了一筆資料
func DeleteUser(ctx context.Context, db database.DB, id int) (bool, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("DeleteUser: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
