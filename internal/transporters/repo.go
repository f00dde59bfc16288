package transporters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cargomatters/backend/internal/domain"
)

var (
	ErrNotFound   = errors.New("transporter not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Repo persists transporter aggregates. The fleet and the note list live in
// JSONB columns on the transporter row, so every mutation of a company and
// its vehicles is a single-row (atomic) write.
type Repo struct {
	pg *pgxpool.Pool
}

func NewRepo(pg *pgxpool.Pool) *Repo {
	return &Repo{pg: pg}
}

const transporterColumns = `
  id, transporter_id, company_name, contact_person, email, password_hash,
  primary_phone, alt_phone, gst_number, pan_number, address, operating_states,
  website, documents, vehicles, vehicles_count, notes, status,
  rejection_reason, rejected_at, reminded_at, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanTransporter(row scanner) (*Transporter, error) {
	var t Transporter
	var documents, vehicles, notes []byte
	err := row.Scan(
		&t.ID, &t.TransporterID, &t.CompanyName, &t.ContactPerson, &t.Email, &t.PasswordHash,
		&t.PrimaryPhone, &t.AltPhone, &t.GSTNumber, &t.PANNumber, &t.Address, &t.OperatingStates,
		&t.Website, &documents, &vehicles, &t.VehiclesCount, &notes, &t.Status,
		&t.RejectionReason, &t.RejectedAt, &t.RemindedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(documents, &t.Documents); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}
	if err := json.Unmarshal(vehicles, &t.Vehicles); err != nil {
		return nil, fmt.Errorf("decode vehicles: %w", err)
	}
	if err := json.Unmarshal(notes, &t.Notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	if t.Vehicles == nil {
		t.Vehicles = []Vehicle{}
	}
	if t.Notes == nil {
		t.Notes = []Note{}
	}
	if t.OperatingStates == nil {
		t.OperatingStates = []string{}
	}
	return &t, nil
}

// Create inserts a new transporter row; a duplicate email maps to ErrEmailTaken.
func (r *Repo) Create(ctx context.Context, t *Transporter) error {
	const q = `
INSERT INTO transporters (
  transporter_id, company_name, contact_person, email, password_hash,
  primary_phone, operating_states, documents, vehicles, vehicles_count, notes, status
)
VALUES ($1, $2, $3, $4, $5, $6, '{}', '{}', '[]', 0, '[]', $7)
RETURNING id, created_at, updated_at`
	err := r.pg.QueryRow(ctx, q,
		t.TransporterID, t.CompanyName, t.ContactPerson, t.Email, t.PasswordHash,
		t.PrimaryPhone, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "email") {
			return ErrEmailTaken
		}
		return err
	}
	t.OperatingStates = []string{}
	t.Vehicles = []Vehicle{}
	t.Notes = []Note{}
	return nil
}

func (r *Repo) FindByEmail(ctx context.Context, email string) (*Transporter, error) {
	q := `SELECT` + transporterColumns + ` FROM transporters WHERE email = $1 LIMIT 1`
	return scanTransporter(r.pg.QueryRow(ctx, q, strings.ToLower(email)))
}

func (r *Repo) FindByID(ctx context.Context, id string) (*Transporter, error) {
	q := `SELECT` + transporterColumns + ` FROM transporters WHERE id = $1 LIMIT 1`
	return scanTransporter(r.pg.QueryRow(ctx, q, id))
}

// LastTransporterID returns the lexicographically greatest allocated id, or
// "" when the table is empty. Zero-padding keeps string order numeric.
func (r *Repo) LastTransporterID(ctx context.Context) (string, error) {
	const q = `SELECT transporter_id FROM transporters ORDER BY transporter_id DESC LIMIT 1`
	var id string
	err := r.pg.QueryRow(ctx, q).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return id, err
}

// ProfileUpdate is a partial profile overwrite; nil fields keep the stored
// value. Documents carries only the links to overwrite (merged into the
// stored JSONB, never clearing by omission).
type ProfileUpdate struct {
	CompanyName     *string
	ContactPerson   *string
	PrimaryPhone    *string
	AltPhone        *string
	GSTNumber       *string
	PANNumber       *string
	Address         *string
	Website         *string
	OperatingStates []string
	Documents       map[string]string
}

func (r *Repo) UpdateProfile(ctx context.Context, id string, u ProfileUpdate) error {
	if u.Documents == nil {
		u.Documents = map[string]string{}
	}
	docs, err := json.Marshal(u.Documents)
	if err != nil {
		return err
	}
	const q = `
UPDATE transporters
SET company_name   = COALESCE($2, company_name),
    contact_person = COALESCE($3, contact_person),
    primary_phone  = COALESCE($4, primary_phone),
    alt_phone      = COALESCE($5, alt_phone),
    gst_number     = COALESCE($6, gst_number),
    pan_number     = COALESCE($7, pan_number),
    address        = COALESCE($8, address),
    website        = COALESCE($9, website),
    operating_states = COALESCE($10, operating_states),
    documents      = documents || $11::jsonb,
    updated_at     = now()
WHERE id = $1`
	tag, err := r.pg.Exec(ctx, q, id,
		u.CompanyName, u.ContactPerson, u.PrimaryPhone, u.AltPhone,
		u.GSTNumber, u.PANNumber, u.Address, u.Website,
		u.OperatingStates, docs,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceVehicles writes the whole fleet back; vehicles_count is recomputed
// from the JSON array length in the same statement, so the cached count can
// never drift from the list.
func (r *Repo) ReplaceVehicles(ctx context.Context, id string, fleet []Vehicle) error {
	if fleet == nil {
		fleet = []Vehicle{}
	}
	b, err := json.Marshal(fleet)
	if err != nil {
		return err
	}
	const q = `
UPDATE transporters
SET vehicles = $2::jsonb,
    vehicles_count = jsonb_array_length($2::jsonb),
    updated_at = now()
WHERE id = $1`
	tag, err := r.pg.Exec(ctx, q, id, b)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) AddNote(ctx context.Context, id string, n Note) error {
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	const q = `
UPDATE transporters
SET notes = notes || $2::jsonb,
    updated_at = now()
WHERE id = $1`
	tag, err := r.pg.Exec(ctx, q, id, b)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus commits a workflow transition. Rejection records the timestamp
// and reason; any other target state clears both.
func (r *Repo) SetStatus(ctx context.Context, id string, status domain.Status, reason string) error {
	const q = `
UPDATE transporters
SET status = $2,
    rejected_at = CASE WHEN $2 = 'Rejected' THEN now() ELSE NULL END,
    rejection_reason = CASE WHEN $2 = 'Rejected' THEN $3 ELSE '' END,
    updated_at = now()
WHERE id = $1`
	tag, err := r.pg.Exec(ctx, q, id, status, reason)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Filter selects transporters for the admin list and export views.
type Filter struct {
	Search          string
	Status          string
	OperatingStates []string
	VehicleType     string
	VehicleCountMin *int
	VehicleCountMax *int
	DateFrom        *time.Time
	DateTo          *time.Time
	Page            int
	Limit           int
}

func buildFilter(f Filter) (where string, args []any) {
	var conds []string
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.Search != "" {
		p := next("%" + f.Search + "%")
		conds = append(conds, fmt.Sprintf(
			"(company_name ILIKE %[1]s OR contact_person ILIKE %[1]s OR gst_number ILIKE %[1]s OR primary_phone ILIKE %[1]s OR email ILIKE %[1]s)", p))
	}
	if f.Status != "" {
		conds = append(conds, "status = "+next(f.Status))
	}
	if len(f.OperatingStates) > 0 {
		conds = append(conds, "operating_states && "+next(f.OperatingStates))
	}
	if f.VehicleType != "" {
		probe, _ := json.Marshal([]map[string]string{{"vehicleType": f.VehicleType}})
		conds = append(conds, "vehicles @> "+next(probe)+"::jsonb")
	}
	if f.VehicleCountMin != nil {
		conds = append(conds, "vehicles_count >= "+next(*f.VehicleCountMin))
	}
	if f.VehicleCountMax != nil {
		conds = append(conds, "vehicles_count <= "+next(*f.VehicleCountMax))
	}
	if f.DateFrom != nil {
		conds = append(conds, "created_at >= "+next(*f.DateFrom))
	}
	if f.DateTo != nil {
		conds = append(conds, "created_at <= "+next(*f.DateTo))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns a created_at-descending page of matching transporters plus
// the total match count for pagination.
func (r *Repo) List(ctx context.Context, f Filter) ([]Transporter, int, error) {
	where, args := buildFilter(f)

	var total int
	if err := r.pg.QueryRow(ctx, "SELECT count(*) FROM transporters"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := "SELECT" + transporterColumns + " FROM transporters" + where + " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
		if f.Page > 1 {
			args = append(args, (f.Page-1)*f.Limit)
			q += fmt.Sprintf(" OFFSET $%d", len(args))
		}
	}

	rows, err := r.pg.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]Transporter, 0, f.Limit)
	for rows.Next() {
		t, err := scanTransporter(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *t)
	}
	return items, total, rows.Err()
}

// FindNeedingReminder returns companies with an empty fleet, created before
// the cutoff and never reminded.
func (r *Repo) FindNeedingReminder(ctx context.Context, cutoff time.Time) ([]Transporter, error) {
	q := "SELECT" + transporterColumns + ` FROM transporters
WHERE vehicles_count = 0 AND created_at <= $1 AND reminded_at IS NULL
ORDER BY created_at ASC`
	rows, err := r.pg.Query(ctx, q, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Transporter
	for rows.Next() {
		t, err := scanTransporter(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// ClaimReminder marks a company as reminded, but only if no other sweep got
// there first (conditional update, so overlapping sweeps cannot both claim).
func (r *Repo) ClaimReminder(ctx context.Context, id string) (bool, error) {
	const q = `UPDATE transporters SET reminded_at = now() WHERE id = $1 AND reminded_at IS NULL`
	tag, err := r.pg.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
