package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/printline/printline-manager/internal/entity"
	gerr "github.com/printline/printline-manager/internal/errors"
)

// AddMember inserts a staff account. A taken username surfaces as
// gerr.ErrUsernameTaken.
func (ms *MYSQLStore) AddMember(ctx context.Context, m *entity.MemberInsert) (int, error) {
	query := `
	INSERT INTO member (user_name, nickname, email, role_code, active, password_hash)
	VALUES (:userName, :nickname, :email, :roleCode, :active, :passwordHash)`
	id, err := ExecNamedLastId(ctx, ms.db, query, map[string]any{
		"userName":     m.UserName,
		"nickname":     m.Nickname,
		"email":        m.Email,
		"roleCode":     m.RoleCode,
		"active":       m.Active,
		"passwordHash": m.PasswordHash,
	})
	if err != nil {
		if ms.IsErrDuplicate(err) {
			return 0, gerr.ErrUsernameTaken
		}
		return 0, fmt.Errorf("can't add member: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) GetMemberByUsername(ctx context.Context, username string) (*entity.Member, error) {
	query := `SELECT * FROM member WHERE user_name = :userName`
	m, err := QueryNamedOne[entity.Member](ctx, ms.db, query, map[string]any{
		"userName": username,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (ms *MYSQLStore) GetMemberById(ctx context.Context, id int) (*entity.Member, error) {
	query := `SELECT * FROM member WHERE id = :id`
	m, err := QueryNamedOne[entity.Member](ctx, ms.db, query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (ms *MYSQLStore) ListMembers(ctx context.Context, activeOnly bool) ([]entity.Member, error) {
	query := `SELECT * FROM member ORDER BY user_name`
	params := map[string]any{}
	if activeOnly {
		query = `SELECT * FROM member WHERE active = :active ORDER BY user_name`
		params["active"] = true
	}
	return QueryListNamed[entity.Member](ctx, ms.db, query, params)
}

func (ms *MYSQLStore) UpdateMember(ctx context.Context, id int, m *entity.MemberInsert) error {
	query := `
	UPDATE member
	SET nickname = :nickname,
		email = :email,
		role_code = :roleCode,
		active = :active
	WHERE id = :id`
	return ExecNamed(ctx, ms.db, query, map[string]any{
		"id":       id,
		"nickname": m.Nickname,
		"email":    m.Email,
		"roleCode": m.RoleCode,
		"active":   m.Active,
	})
}

func (ms *MYSQLStore) ChangePassword(ctx context.Context, username, newHash string) error {
	query := `UPDATE member SET password_hash = :hash WHERE user_name = :userName`
	return ExecNamed(ctx, ms.db, query, map[string]any{
		"userName": username,
		"hash":     newHash,
	})
}

func (ms *MYSQLStore) SetMemberActive(ctx context.Context, id int, active bool) error {
	query := `UPDATE member SET active = :active WHERE id = :id`
	return ExecNamed(ctx, ms.db, query, map[string]any{
		"id":     id,
		"active": active,
	})
}
