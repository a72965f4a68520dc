package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testModel struct {
	ID   int
	Name string
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&testModel{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}

func TestPing(t *testing.T) {
	db := newTestDB(t)
	client := &Client{conn: db}
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected ping error: %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if IsUniqueViolation(nil, "") {
		t.Fatal("nil error must not be a unique violation")
	}

	pgxErr := &pgconn.PgError{Code: "23505", ConstraintName: "products_sku_key"}
	if !IsUniqueViolation(pgxErr, "") {
		t.Fatal("expected SQLSTATE 23505 detection")
	}
	if !IsUniqueViolation(pgxErr, "products_sku_key") {
		t.Fatal("expected constraint name match")
	}
	if IsUniqueViolation(pgxErr, "other_constraint") {
		t.Fatal("unexpected match for unrelated constraint")
	}
	wrapped := fmt.Errorf("creating product: %w", pgxErr)
	if !IsUniqueViolation(wrapped, "products_sku_key") {
		t.Fatal("expected detection through wrapping")
	}

	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "products_supplier_fk"}
	if IsUniqueViolation(fkErr, "") || IsUniqueViolation(fkErr, "products_supplier_fk") {
		t.Fatal("foreign key violation must never match")
	}

	pqErr := &pq.Error{Code: "23505", Constraint: "products_supplier_item_code_key"}
	if !IsUniqueViolation(pqErr, "products_supplier_item_code_key") {
		t.Fatal("expected lib/pq constraint match")
	}
	if IsUniqueViolation(&pq.Error{Code: "40001"}, "") {
		t.Fatal("serialization failure must not match")
	}

	sqliteErr := errors.New("UNIQUE constraint failed: products.sku")
	if !IsUniqueViolation(sqliteErr, "") {
		t.Fatal("expected sqlite message fallback")
	}
	if !IsUniqueViolation(sqliteErr, "products.sku") {
		t.Fatal("expected sqlite constraint text match")
	}
	if IsUniqueViolation(errors.New("connection refused"), "products_sku_key") {
		t.Fatal("unrelated error must not match even with a name")
	}
}
