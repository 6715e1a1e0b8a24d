// Package profile persists user profiles: the per-seller configuration a
// feed generation runs against (source sheet, image hosting, listing
// defaults, marketplace policy names).
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rosie-yoon/ebaybulk/internal/feed"
)

// ErrNotFound is returned when a profile id does not resolve.
var ErrNotFound = errors.New("profile not found")

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Profile is one seller configuration record.
type Profile struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	GoogleSheetID       string    `json:"googleSheetId"`
	ImageDomain         string    `json:"imageDomain"`
	ImageURLPattern     string    `json:"imageUrlPattern"`
	DefaultQuantity     int       `json:"defaultQuantity"`
	DefaultDescription  string    `json:"defaultDescription"`
	ShippingProfileName string    `json:"shippingProfileName"`
	ReturnProfileName   string    `json:"returnProfileName"`
	PaymentProfileName  string    `json:"paymentProfileName"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Settings returns the read-only snapshot the conversion engine consumes.
func (p Profile) Settings() feed.Settings {
	return feed.Settings{
		ImageDomain:         p.ImageDomain,
		ImageURLPattern:     p.ImageURLPattern,
		DefaultQuantity:     p.DefaultQuantity,
		DefaultDescription:  p.DefaultDescription,
		ShippingProfileName: p.ShippingProfileName,
		ReturnProfileName:   p.ReturnProfileName,
		PaymentProfileName:  p.PaymentProfileName,
	}
}

// Params carries the writable profile fields for create and update.
type Params struct {
	Name                string `json:"name"`
	GoogleSheetID       string `json:"googleSheetId"`
	ImageDomain         string `json:"imageDomain"`
	ImageURLPattern     string `json:"imageUrlPattern"`
	DefaultQuantity     int    `json:"defaultQuantity"`
	DefaultDescription  string `json:"defaultDescription"`
	ShippingProfileName string `json:"shippingProfileName"`
	ReturnProfileName   string `json:"returnProfileName"`
	PaymentProfileName  string `json:"paymentProfileName"`
}

// Validate checks the fields a generation cannot run without.
func (p Params) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.GoogleSheetID == "" {
		return errors.New("googleSheetId is required")
	}
	if p.DefaultQuantity < 0 {
		return errors.New("defaultQuantity must be non-negative")
	}
	return nil
}

// Store provides profile CRUD on PostgreSQL.
type Store struct {
	db DBTX
}

// NewStore creates a Store backed by the given pool or transaction.
func NewStore(db DBTX) *Store {
	return &Store{db: db}
}

const profileColumns = `id, name, google_sheet_id, image_domain, image_url_pattern,
	default_quantity, default_description, shipping_profile_name,
	return_profile_name, payment_profile_name, created_at`

func scanProfile(row pgx.Row) (Profile, error) {
	var p Profile
	err := row.Scan(
		&p.ID, &p.Name, &p.GoogleSheetID, &p.ImageDomain, &p.ImageURLPattern,
		&p.DefaultQuantity, &p.DefaultDescription, &p.ShippingProfileName,
		&p.ReturnProfileName, &p.PaymentProfileName, &p.CreatedAt,
	)
	return p, err
}

// Get fetches a single profile by id. Returns ErrNotFound for unknown ids.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Profile, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)

	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// List returns all profiles ordered by creation time.
func (s *Store) List(ctx context.Context) ([]Profile, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Create inserts a new profile and returns it with its generated id.
func (s *Store) Create(ctx context.Context, params Params) (Profile, error) {
	if err := params.Validate(); err != nil {
		return Profile{}, err
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO profiles (
			id, name, google_sheet_id, image_domain, image_url_pattern,
			default_quantity, default_description, shipping_profile_name,
			return_profile_name, payment_profile_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+profileColumns,
		uuid.New(), params.Name, params.GoogleSheetID, params.ImageDomain,
		params.ImageURLPattern, params.DefaultQuantity, params.DefaultDescription,
		params.ShippingProfileName, params.ReturnProfileName, params.PaymentProfileName,
	)

	p, err := scanProfile(row)
	if err != nil {
		return Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return p, nil
}

// Update overwrites the writable fields of an existing profile.
func (s *Store) Update(ctx context.Context, id uuid.UUID, params Params) (Profile, error) {
	if err := params.Validate(); err != nil {
		return Profile{}, err
	}

	row := s.db.QueryRow(ctx, `
		UPDATE profiles SET
			name = $2, google_sheet_id = $3, image_domain = $4,
			image_url_pattern = $5, default_quantity = $6,
			default_description = $7, shipping_profile_name = $8,
			return_profile_name = $9, payment_profile_name = $10
		WHERE id = $1
		RETURNING `+profileColumns,
		id, params.Name, params.GoogleSheetID, params.ImageDomain,
		params.ImageURLPattern, params.DefaultQuantity, params.DefaultDescription,
		params.ShippingProfileName, params.ReturnProfileName, params.PaymentProfileName,
	)

	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

// Delete removes a profile. Returns ErrNotFound if the id does not exist.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
