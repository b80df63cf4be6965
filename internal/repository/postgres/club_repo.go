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

type ClubRepo struct {
	sync.Mutex

	db *pgxpool.Pool
}

func NewClubRepo(db *pgxpool.Pool) *ClubRepo {
	return &ClubRepo{
		db: db,
	}
}

const selectClubQuery = `
	SELECT
		c.club_id,
		c.club_name,
		c.owner_id,
		COALESCE(ARRAY_AGG(cm.user_id ORDER BY cm.position) FILTER (WHERE cm.user_id IS NOT NULL), '{}') AS members
	FROM clubs c
	LEFT JOIN club_members cm ON c.club_id = cm.club_id
`

func (cr *ClubRepo) Save(ctx context.Context, club *domain.Club) error {
	tx, err := cr.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	saveClubQuery := `
		INSERT INTO clubs (club_id, club_name, owner_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (club_id) DO UPDATE
		SET
			club_name = EXCLUDED.club_name,
			owner_id = EXCLUDED.owner_id
	`

	clubID := club.ID().String()
	if _, err := tx.Exec(ctx, saveClubQuery, clubID, club.Name().String(), club.OwnerID().String()); err != nil {
		return fmt.Errorf("save club %s: %w", clubID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM club_members WHERE club_id = $1`, clubID); err != nil {
		return fmt.Errorf("reset members of club %s: %w", clubID, err)
	}

	members := club.Members()
	if len(members) > 0 {
		insertMemberQuery := `
			INSERT INTO club_members (club_id, position, user_id)
			VALUES ($1, $2, $3)
		`

		batch := &pgx.Batch{}
		for position, memberID := range members {
			batch.Queue(insertMemberQuery, clubID, position, memberID.String())
		}

		batchRes := tx.SendBatch(ctx, batch)
		if err := batchRes.Close(); err != nil {
			return fmt.Errorf("save members of club %s: %w", clubID, err)
		}
	}

	return tx.Commit(ctx)
}

func (cr *ClubRepo) ClubByName(ctx context.Context, name domain.ClubName) (*domain.Club, error) {
	clubByNameQuery := selectClubQuery + `
		WHERE c.club_name = $1
		GROUP BY c.club_id
		ORDER BY c.created_at, c.club_id
		LIMIT 1
	`

	return scanClub(cr.db.QueryRow(ctx, clubByNameQuery, name.String()))
}

func (cr *ClubRepo) ClubByID(ctx context.Context, id domain.ClubID) (*domain.Club, error) {
	clubByIDQuery := selectClubQuery + `
		WHERE c.club_id = $1
		GROUP BY c.club_id
	`

	return scanClub(cr.db.QueryRow(ctx, clubByIDQuery, id.String()))
}

func (cr *ClubRepo) Clubs(ctx context.Context) ([]*domain.Club, error) {
	allClubsQuery := selectClubQuery + `
		GROUP BY c.club_id
		ORDER BY c.created_at, c.club_id
	`

	rows, err := cr.db.Query(ctx, allClubsQuery)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	defer rows.Close()

	clubs := []*domain.Club{}
	for rows.Next() {
		club, err := scanClub(rows)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}

	return clubs, nil
}

func scanClub(row pgx.Row) (*domain.Club, error) {
	var (
		rawID      string
		rawName    string
		rawOwnerID string
		rawMembers []string
	)

	if err := row.Scan(&rawID, &rawName, &rawOwnerID, &rawMembers); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	id, err := domain.NewClubID(rawID)
	if err != nil {
		return nil, err
	}

	name, err := domain.NewClubName(rawName)
	if err != nil {
		return nil, err
	}

	ownerID, err := domain.NewUserID(rawOwnerID)
	if err != nil {
		return nil, err
	}

	members := make([]domain.UserID, len(rawMembers))
	for i, m := range rawMembers {
		if members[i], err = domain.NewUserID(m); err != nil {
			return nil, err
		}
	}

	return domain.NewClub(id, name, ownerID, members)
}
