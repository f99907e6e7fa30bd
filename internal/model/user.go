// File: internal/model/user.go
package model

import "time"

type User struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// UserPatch 部分更新；nil 欄位維持原值
type UserPatch struct {
	Name   *string
	Email  *string
	Active *bool
}

func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Active == nil
}
