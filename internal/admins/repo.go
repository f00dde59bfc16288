// Admin accounts: a separate identity namespace from transporter companies.
package admins

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("admin not found")

// Admin mirrors the admins table.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Repo struct {
	pg *pgxpool.Pool
}

func NewRepo(pg *pgxpool.Pool) *Repo {
	return &Repo{pg: pg}
}

func (r *Repo) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	const q = `
SELECT id, email, password_hash, name, created_at, updated_at
FROM admins
WHERE email = $1
LIMIT 1`
	return scanAdmin(r.pg.QueryRow(ctx, q, strings.ToLower(email)))
}

func (r *Repo) FindByID(ctx context.Context, id string) (*Admin, error) {
	const q = `
SELECT id, email, password_hash, name, created_at, updated_at
FROM admins
WHERE id = $1
LIMIT 1`
	return scanAdmin(r.pg.QueryRow(ctx, q, id))
}

func scanAdmin(row pgx.Row) (*Admin, error) {
	var a Admin
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
