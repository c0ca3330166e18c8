package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"employee-system/internal/entities"
	apperrors "employee-system/pkg/errors"
)

const userColumns = "id, fio, email, password_hash, role, office_id, created_at"

type UserRepositoryInterface interface {
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func (r *UserRepository) findUser(ctx context.Context, pred sq.Eq) (*entities.User, error) {
	query, args, err := psql.Select(userColumns).From("users").Where(pred).ToSql()
	if err != nil {
		return nil, err
	}

	var user entities.User
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Fio,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.OfficeID,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	return r.findUser(ctx, sq.Eq{"id": id})
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email})
}
