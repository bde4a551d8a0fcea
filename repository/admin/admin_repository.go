package admin

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/course-platform/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AdminRepository interface {
	Create(ctx context.Context, entity *model.AdminEntity) (*model.AdminEntity, error)
	Get(ctx context.Context, filter *model.AdminFilter) (*model.AdminEntity, error)
	List(ctx context.Context) ([]model.AdminEntity, error)
	Delete(ctx context.Context, id uint64) error
	UpdateFullName(ctx context.Context, id uint64, fullName string) error
	UpdatePasswordHash(ctx context.Context, id uint64, hash string) error
	TouchLastLogin(ctx context.Context, id uint64) error
}

func NewAdminRepository(conn *sqlx.DB) AdminRepository {
	return &SQL{conn: conn}
}

const getAdminBase = `SELECT id, username, password_hash, full_name, created_by, created_at, last_login_at FROM admins WHERE true`

func (s *SQL) Create(ctx context.Context, data *model.AdminEntity) (*model.AdminEntity, error) {
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO admins (username, password_hash, full_name, created_by, created_at) VALUES (?, ?, ?, ?, NOW())",
		data.Username, data.PasswordHash, data.FullName, data.CreatedBy)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.AdminFilter) (*model.AdminEntity, error) {
	query := getAdminBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}

	var entity model.AdminEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.AdminEntity, error) {
	var admins []model.AdminEntity
	err := s.conn.SelectContext(ctx, &admins, getAdminBase+" ORDER BY created_at")
	return admins, err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM admins WHERE id = ?", id)
	return err
}

func (s *SQL) UpdateFullName(ctx context.Context, id uint64, fullName string) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE admins SET full_name = ? WHERE id = ?", fullName, id)
	return err
}

func (s *SQL) UpdatePasswordHash(ctx context.Context, id uint64, hash string) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE admins SET password_hash = ? WHERE id = ?", hash, id)
	return err
}

func (s *SQL) TouchLastLogin(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE admins SET last_login_at = NOW() WHERE id = ?", id)
	return err
}
