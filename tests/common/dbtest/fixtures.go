//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestRoomType(t *testing.T, db DBLike, name string, totalRooms int) uuid.UUID {
	t.Helper()

	roomTypeID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO room_types (id, name, total_rooms) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING",
		roomTypeID, name, totalRooms)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM room_types WHERE name = $1", name).Scan(&roomTypeID)
	}

	return roomTypeID
}

func CreateTestPackage(t *testing.T, db DBLike, roomTypeID uuid.UUID, code, name string, basePrice float64) uuid.UUID {
	t.Helper()

	packageID := uuid.New()
	ctx := context.Background()
	start := time.Now().AddDate(0, 0, 1)
	end := start.AddDate(0, 3, 0)

	_, err := db.Exec(ctx, `INSERT INTO room_packages (id, code, name, room_type_id, base_price, capacity, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, 2, $6, $7)`,
		packageID, code, name, roomTypeID, basePrice, start, end)
	require.NoError(t, err)

	return packageID
}

// CreateTestPackageWithWindow inserts a package with an explicit offer window,
// for tests that filter by stay or discount dates.
func CreateTestPackageWithWindow(t *testing.T, db DBLike, roomTypeID uuid.UUID, code, name string, basePrice float64, start, end time.Time) uuid.UUID {
	t.Helper()

	packageID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO room_packages (id, code, name, room_type_id, base_price, capacity, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, 2, $6, $7)`,
		packageID, code, name, roomTypeID, basePrice, start, end)
	require.NoError(t, err)

	return packageID
}

func CreateTestBooking(t *testing.T, db DBLike, packageID, userID uuid.UUID, checkIn, checkOut time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO bookings (id, package_id, user_id, check_in_date, check_out_date, guest_name, guest_email, guest_phone, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, 'Jamie Rivera', 'jamie@example.com', '+1-555-0100', 600, $6)`,
		bookingID, packageID, userID, checkIn, checkOut, status)
	require.NoError(t, err)

	return bookingID
}

func CreateTestDiscount(t *testing.T, db DBLike, code, name, kind string, value float64, start, end time.Time, packageIDs ...uuid.UUID) uuid.UUID {
	t.Helper()

	discountID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO discounts (id, code, name, kind, value, start_date, end_date) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		discountID, code, name, kind, value, start, end)
	require.NoError(t, err)

	for _, packageID := range packageIDs {
		_, err := db.Exec(ctx, "INSERT INTO discount_packages (discount_id, package_id) VALUES ($1, $2)", discountID, packageID)
		require.NoError(t, err)
	}

	return discountID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO room_types (id, name, total_rooms) VALUES
		    (gen_random_uuid(), 'Standard Double', 10),
		    (gen_random_uuid(), 'Deluxe Suite', 4)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
