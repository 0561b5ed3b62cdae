package entity

import (
	"database/sql"
	"time"
)

// Member represents the member table: a staff account with a role code.
type Member struct {
	ID           int            `db:"id"`
	UserName     string         `db:"user_name"`
	Nickname     sql.NullString `db:"nickname"`
	Email        sql.NullString `db:"email"`
	RoleCode     string         `db:"role_code"`
	Active       bool           `db:"active"`
	PasswordHash string         `db:"password_hash"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// MemberInsert is the writable subset of Member.
type MemberInsert struct {
	UserName     string
	Nickname     string
	Email        string
	RoleCode     string
	Active       bool
	PasswordHash string
}
