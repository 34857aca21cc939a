package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/onboarding"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/profile"
)

func setupProfileRepo(t *testing.T) (*ProfileRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewProfileRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestProfileRepository_Insert(t *testing.T) {
	repo, mock := setupProfileRepo(t)
	createdAt := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO onboarding_profiles (public_id, session_id, role")).
		WithArgs(
			"p-1", "s-1", "business", "joe@example.com", "Joe",
			sqlmock.AnyArg(),
			nil, "Joe's Tours", "tour", "Cape Town",
			"203.0.113.9", "ZA",
			createdAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), profile.Profile{
		ID:               "p-1",
		SessionID:        "s-1",
		Role:             onboarding.RoleBusiness,
		Email:            "joe@example.com",
		Name:             "Joe",
		BusinessName:     "Joe's Tours",
		BusinessCategory: "tour",
		BusinessLocation: "Cape Town",
		ClientIP:         "203.0.113.9",
		CountryHint:      "za",
		CreatedAt:        createdAt,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_ListRecent(t *testing.T) {
	repo, mock := setupProfileRepo(t)
	createdAt := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"public_id", "session_id", "role", "email", "display_name", "interests",
		"country", "business_name", "business_category", "business_location",
		"client_ip", "country_hint", "created_at",
	}).AddRow(
		"p-1", "s-1", "traveler", "t@example.com", "Thandi", "{food,nature}",
		"south-africa", nil, nil, nil,
		nil, "ZA", createdAt,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM onboarding_profiles ORDER BY created_at DESC, public_id DESC LIMIT 5")).
		WillReturnRows(rows)

	items, err := repo.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, onboarding.RoleTraveler, items[0].Role)
	require.Equal(t, []string{"food", "nature"}, items[0].Interests)
	require.Equal(t, "south-africa", items[0].Country)
	require.Empty(t, items[0].BusinessName)
	require.NoError(t, mock.ExpectationsWereMet())
}
