package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/tieubaoca/policy-insights-be/database"
	"github.com/tieubaoca/policy-insights-be/types"
)

var ErrUserNotFound = errors.New("user not found")

type userRepo struct {
	db *sql.DB
}

func NewUserRepo(store *database.Store) database.UserStore {
	return &userRepo{
		db: store.DB(),
	}
}

func (r *userRepo) CreateUser(ctx context.Context, user *types.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password, full_name, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.Password, user.FullName, user.Role, user.CreateAt, user.UpdateAt)
	return err
}

func (r *userRepo) GetUser(ctx context.Context, id string) (*types.User, error) {
	return r.getUserBy(ctx, "id", id)
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	return r.getUserBy(ctx, "username", username)
}

func (r *userRepo) getUserBy(ctx context.Context, column, value string) (*types.User, error) {
	var user types.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password, full_name, role, created_at, updated_at
		FROM users WHERE `+column+` = ?`, value).
		Scan(&user.ID, &user.Username, &user.Password, &user.FullName, &user.Role, &user.CreateAt, &user.UpdateAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UpdateUser(ctx context.Context, user *types.User) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET username = ?, password = ?, full_name = ?, role = ?, updated_at = ?
		WHERE id = ?`,
		user.Username, user.Password, user.FullName, user.Role, user.UpdateAt, user.ID)
	return err
}

func (r *userRepo) DeleteUser(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}

func (r *userRepo) PaginateUser(ctx context.Context, page, limit int64) ([]*types.User, int64, error) {
	if page < 1 {
		page = 1
	}
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, password, full_name, role, created_at, updated_at
		FROM users ORDER BY created_at ASC LIMIT ? OFFSET ?`, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]*types.User, 0)
	for rows.Next() {
		var user types.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.FullName, &user.Role, &user.CreateAt, &user.UpdateAt); err != nil {
			return nil, 0, err
		}
		users = append(users, &user)
	}
	return users, total, rows.Err()
}
