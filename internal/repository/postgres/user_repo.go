package postgres

import (
	"club-membership-service/internal/domain"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	sync.Mutex

	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

func (ur *UserRepo) Save(ctx context.Context, user *domain.User) error {
	saveUserQuery := `
		INSERT INTO users (user_id, user_name, is_premium)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET
			user_name = EXCLUDED.user_name,
			is_premium = EXCLUDED.is_premium
	`

	_, err := ur.db.Exec(ctx, saveUserQuery, user.ID().String(), user.Name().String(), user.IsPremium().Bool())
	if err != nil {
		return fmt.Errorf("save user %s: %w", user.ID(), err)
	}

	return nil
}

func (ur *UserRepo) UserByName(ctx context.Context, name domain.UserName) (*domain.User, error) {
	userByNameQuery := `
		SELECT user_id, user_name, is_premium
		FROM users
		WHERE user_name = $1
		ORDER BY user_id
		LIMIT 1
	`

	return scanUser(ur.db.QueryRow(ctx, userByNameQuery, name.String()))
}

func (ur *UserRepo) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	userByIDQuery := `
		SELECT user_id, user_name, is_premium
		FROM users
		WHERE user_id = $1
	`

	return scanUser(ur.db.QueryRow(ctx, userByIDQuery, id.String()))
}

func (ur *UserRepo) Delete(ctx context.Context, id domain.UserID) error {
	if _, err := ur.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id.String()); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}

	return nil
}

func (ur *UserRepo) UsersByIDs(ctx context.Context, ids []domain.UserID) ([]*domain.User, error) {
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}

	rawIDs := make([]string, len(ids))
	for i, id := range ids {
		rawIDs[i] = id.String()
	}

	usersByIDsQuery := `
		SELECT user_id, user_name, is_premium
		FROM users
		WHERE user_id = ANY($1)
	`

	rows, err := ur.db.Query(ctx, usersByIDsQuery, rawIDs)
	if err != nil {
		return nil, fmt.Errorf("batch find users: %w", err)
	}
	defer rows.Close()

	found := make(map[string]*domain.User, len(ids))
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		found[user.ID().String()] = user
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("batch find users: %w", err)
	}

	users := make([]*domain.User, 0, len(ids))
	for _, id := range rawIDs {
		if user, ok := found[id]; ok {
			users = append(users, user)
		}
	}

	return users, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		rawID     string
		rawName   string
		isPremium bool
	)

	if err := row.Scan(&rawID, &rawName, &isPremium); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	id, err := domain.NewUserID(rawID)
	if err != nil {
		return nil, err
	}

	name, err := domain.NewUserName(rawName)
	if err != nil {
		return nil, err
	}

	return domain.NewUser(id, name, domain.NewUserIsPremium(isPremium))
}
