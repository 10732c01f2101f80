package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	repo "github.com/darshakkanani/Honeypot-Setup-sub001/internal/dashboard/repository/postgres"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttackCounts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresAttackRepository(mock)
	ctx := context.Background()

	t.Run("total attacks", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM attacks`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1247)))

		count, err := r.TotalAttacks(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1247), count)
	})

	t.Run("unique attackers", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(DISTINCT source_ip\) FROM attacks`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(89)))

		count, err := r.UniqueAttackers(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(89), count)
	})

	t.Run("attacks since", func(t *testing.T) {
		since := time.Now().Truncate(24 * time.Hour)
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM attacks WHERE timestamp`).
			WithArgs(since).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(156)))

		count, err := r.AttacksSince(ctx, since)
		require.NoError(t, err)
		assert.Equal(t, int64(156), count)
	})

	t.Run("count by severity", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM attacks WHERE severity`).
			WithArgs("CRITICAL").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(23)))

		count, err := r.CountBySeverity(ctx, "CRITICAL")
		require.NoError(t, err)
		assert.Equal(t, int64(23), count)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM attacks`).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.TotalAttacks(ctx)
		assert.Error(t, err)
	})
}

func TestRecentAttacks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresAttackRepository(mock)
	ctx := context.Background()
	columns := []string{"id", "source_ip", "attack_type", "severity", "target_port", "timestamp", "country", "country_code"}

	t.Run("success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM attacks a").
			WithArgs(10).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("a-1", "203.0.113.42", "SSH_BRUTE_FORCE", "HIGH", 22, now, "China", "CN").
				AddRow("a-2", "192.0.2.9", "PORT_SCAN", "LOW", 443, now.Add(-time.Minute), "", ""))

		records, err := r.RecentAttacks(ctx, 10)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "SSH_BRUTE_FORCE", records[0].AttackType)
		assert.Equal(t, "CN", records[0].CountryCode)
		// Missing geolocation join comes back as empty strings, not NULLs.
		assert.Empty(t, records[1].Country)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM attacks a").
			WithArgs(10).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.RecentAttacks(ctx, 10)
		assert.Error(t, err)
	})
}

func TestTopCountries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresAttackRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT g.country, g.country_code").
			WithArgs(10).
			WillReturnRows(pgxmock.NewRows([]string{"country", "country_code", "attack_count"}).
				AddRow("China", "CN", int64(412)).
				AddRow("Russia", "RU", int64(287)))

		counts, err := r.TopCountries(ctx, 10)
		require.NoError(t, err)
		require.Len(t, counts, 2)
		assert.Equal(t, "China", counts[0].Country)
		assert.Equal(t, int64(412), counts[0].Count)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT g.country, g.country_code").
			WithArgs(10).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.TopCountries(ctx, 10)
		assert.Error(t, err)
	})
}
