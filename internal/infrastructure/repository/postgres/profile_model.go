package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type profileTableModel struct {
	PublicID         string         `db:"public_id"`
	SessionID        string         `db:"session_id"`
	Role             string         `db:"role"`
	Email            string         `db:"email"`
	DisplayName      string         `db:"display_name"`
	Interests        pq.StringArray `db:"interests"`
	Country          sql.NullString `db:"country"`
	BusinessName     sql.NullString `db:"business_name"`
	BusinessCategory sql.NullString `db:"business_category"`
	BusinessLocation sql.NullString `db:"business_location"`
	ClientIP         sql.NullString `db:"client_ip"`
	CountryHint      sql.NullString `db:"country_hint"`
	CreatedAt        time.Time      `db:"created_at"`
}

type profileInsertModel struct {
	PublicID         string         `db:"public_id"`
	SessionID        string         `db:"session_id"`
	Role             string         `db:"role"`
	Email            string         `db:"email"`
	DisplayName      string         `db:"display_name"`
	Interests        pq.StringArray `db:"interests"`
	Country          *string        `db:"country"`
	BusinessName     *string        `db:"business_name"`
	BusinessCategory *string        `db:"business_category"`
	BusinessLocation *string        `db:"business_location"`
	ClientIP         *string        `db:"client_ip"`
	CountryHint      *string        `db:"country_hint"`
	CreatedAt        time.Time      `db:"created_at"`
}
