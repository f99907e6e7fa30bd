package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"user-service/internal/database"
	"user-service/internal/model"
)

// buildUserUpdate 只 SET patch 中有值的欄位，順序固定 name, email, active
func buildUserUpdate(id int, p model.UserPatch) (string, []any) {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.Active != nil {
		add("active", *p.Active)
	}
	args = append(args, id)
	sql := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), userColumns,
	)
	return sql, args
}

// UpdateUser 部分更新；patch 全空時等同 GetUserByID。查無資料回傳 (nil, nil)
func UpdateUser(ctx context.Context, db database.DB, id int, p model.UserPatch) (*model.User, error) {
	if p.IsEmpty() {
		return GetUserByID(ctx, db, id)
	}

	sql, args := buildUserUpdate(id, p)
	u, err := scanUser(db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateUser: %w", err)
	}
	return u, nil
}
