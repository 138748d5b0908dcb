package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func setupPostgresMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	store := NewPostgresStore(db)
	cleanup := func() { db.Close() }
	return store, mock, cleanup
}

func TestPostgresStore_Get_Present(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM site_kv WHERE key = $1`)).
		WithArgs("adminData").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"heroImages":[]}`))

	v, ok, err := store.Get(context.Background(), "adminData")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || v != `{"heroImages":[]}` {
		t.Errorf("Get = %q ok=%v; want stored value", v, ok)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresStore_Get_Absent(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM site_kv WHERE key = $1`)).
		WithArgs("adminAuth").
		WillReturnError(sql.ErrNoRows)

	_, ok, err := store.Get(context.Background(), "adminAuth")
	if err != nil {
		t.Fatalf("absent key should not be an error, got %v", err)
	}
	if ok {
		t.Error("absent key reported present")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresStore_Get_Error(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM site_kv WHERE key = $1`)).
		WithArgs("adminData").
		WillReturnError(errors.New("query failed"))

	if _, _, err := store.Get(context.Background(), "adminData"); err == nil {
		t.Error("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresStore_Set(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO site_kv (key, value) VALUES ($1, $2)`)).
		WithArgs("adminUser", `{"username":"admin","password":"admin"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Set(context.Background(), "adminUser", `{"username":"admin","password":"admin"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresStore_Delete(t *testing.T) {
	store, mock, cleanup := setupPostgresMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM site_kv WHERE key = $1`)).
		WithArgs("adminAuth").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := store.Delete(context.Background(), "adminAuth"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
