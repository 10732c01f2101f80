package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/dashboard/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresAttackRepository struct {
	db PgxIface
}

func NewPostgresAttackRepository(db PgxIface) *PostgresAttackRepository {
	return &PostgresAttackRepository{db: db}
}

func (r *PostgresAttackRepository) TotalAttacks(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM attacks;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attacks: %w", err)
	}

	return count, nil
}

func (r *PostgresAttackRepository) UniqueAttackers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(DISTINCT source_ip) FROM attacks;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unique attackers: %w", err)
	}

	return count, nil
}

func (r *PostgresAttackRepository) AttacksSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM attacks WHERE timestamp >= $1;`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attacks since %s: %w", since.Format(time.RFC3339), err)
	}

	return count, nil
}

func (r *PostgresAttackRepository) CountBySeverity(ctx context.Context, severity string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM attacks WHERE severity = $1;`, severity).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s attacks: %w", severity, err)
	}

	return count, nil
}

func (r *PostgresAttackRepository) RecentAttacks(ctx context.Context, limit int) ([]domain.AttackRecord, error) {
	query := `
		SELECT a.id, a.source_ip, a.attack_type, a.severity, a.target_port, a.timestamp,
		       COALESCE(g.country, ''), COALESCE(g.country_code, '')
		FROM attacks a
		LEFT JOIN ip_geolocation g ON g.ip = a.source_ip
		ORDER BY a.timestamp DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent attacks: %w", err)
	}
	defer rows.Close()

	var records []domain.AttackRecord
	for rows.Next() {
		var rec domain.AttackRecord
		err := rows.Scan(&rec.ID, &rec.SourceIP, &rec.AttackType, &rec.Severity,
			&rec.TargetPort, &rec.Timestamp, &rec.Country, &rec.CountryCode)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attack record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent attacks: %w", err)
	}

	return records, nil
}

func (r *PostgresAttackRepository) TopCountries(ctx context.Context, limit int) ([]domain.CountryCount, error) {
	query := `
		SELECT g.country, g.country_code, COUNT(*) AS attack_count
		FROM attacks a
		JOIN ip_geolocation g ON g.ip = a.source_ip
		GROUP BY g.country, g.country_code
		ORDER BY attack_count DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top countries: %w", err)
	}
	defer rows.Close()

	var counts []domain.CountryCount
	for rows.Next() {
		var c domain.CountryCount
		if err := rows.Scan(&c.Country, &c.CountryCode, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan country count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read top countries: %w", err)
	}

	return counts, nil
}
