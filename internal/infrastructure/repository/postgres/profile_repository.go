package postgres

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/onboarding"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/profile"
	qb "github.com/riskibarqy/ubuntu-explorer/internal/platform/querybuilder"
)

const profileTable = "onboarding_profiles"

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Insert appends p. A repeated public id is ignored so retried writes stay
// idempotent.
func (r *ProfileRepository) Insert(ctx context.Context, p profile.Profile) error {
	interests := pq.StringArray(append([]string{}, p.Interests...))
	insertModel := profileInsertModel{
		PublicID:         strings.TrimSpace(p.ID),
		SessionID:        strings.TrimSpace(p.SessionID),
		Role:             string(p.Role),
		Email:            strings.TrimSpace(p.Email),
		DisplayName:      strings.TrimSpace(p.Name),
		Interests:        interests,
		Country:          optionalString(p.Country),
		BusinessName:     optionalString(p.BusinessName),
		BusinessCategory: optionalString(p.BusinessCategory),
		BusinessLocation: optionalString(p.BusinessLocation),
		ClientIP:         optionalString(p.ClientIP),
		CountryHint:      optionalString(strings.ToUpper(p.CountryHint)),
		CreatedAt:        p.CreatedAt.UTC(),
	}

	query, args, err := qb.InsertModel(profileTable, insertModel, "ON CONFLICT (public_id) DO NOTHING")
	if err != nil {
		return errors.Wrap(err, "build insert profile query")
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "insert profile %s", p.ID)
	}
	return nil
}

func (r *ProfileRepository) ListRecent(ctx context.Context, limit int) ([]profile.Profile, error) {
	query, args, err := qb.Select(qb.Columns(profileTableModel{})...).
		From(profileTable).
		OrderBy("created_at DESC", "public_id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list profiles query")
	}

	var rows []profileTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list profiles")
	}

	out := make([]profile.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, profileFromRow(row))
	}
	return out, nil
}

func profileFromRow(row profileTableModel) profile.Profile {
	return profile.Profile{
		ID:               row.PublicID,
		SessionID:        row.SessionID,
		Role:             onboarding.Role(row.Role),
		Email:            row.Email,
		Name:             row.DisplayName,
		Interests:        append([]string(nil), row.Interests...),
		Country:          row.Country.String,
		BusinessName:     row.BusinessName.String,
		BusinessCategory: row.BusinessCategory.String,
		BusinessLocation: row.BusinessLocation.String,
		ClientIP:         row.ClientIP.String,
		CountryHint:      row.CountryHint.String,
		CreatedAt:        row.CreatedAt,
	}
}
