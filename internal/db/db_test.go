package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestExtractDBName(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/project_center?sslmode=disable": "project_center",
		"host=localhost user=u dbname=tracker sslmode=disable":         "tracker",
	}
	for conn, want := range cases {
		got, err := extractDBName(conn)
		if err != nil {
			t.Fatalf("extractDBName(%q): %v", conn, err)
		}
		if got != want {
			t.Fatalf("expected %q got %q", want, got)
		}
	}
	if _, err := extractDBName("postgres://u:p@localhost:5432"); err == nil {
		t.Fatalf("expected error for URL without a database")
	}
}

func TestReplaceDBName(t *testing.T) {
	got, err := replaceDBName("postgres://u:p@localhost:5432/project_center?sslmode=disable", "postgres")
	if err != nil {
		t.Fatalf("replaceDBName: %v", err)
	}
	if got != "postgres://u:p@localhost:5432/postgres?sslmode=disable" {
		t.Fatalf("unexpected url %q", got)
	}

	got, _ = replaceDBName("host=h dbname=tracker", "postgres")
	if got != "host=h dbname=postgres" {
		t.Fatalf("unexpected dsn %q", got)
	}
}

func TestCreateIfMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM pg_database").WithArgs("project_center").WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`CREATE DATABASE "project_center"`).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := createIfMissing(db, "project_center"); err != nil {
		t.Fatalf("createIfMissing: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateIfMissingSkipsExisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM pg_database").WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	if err := createIfMissing(db, "project_center"); err != nil {
		t.Fatalf("createIfMissing: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestHealthy(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectPing()
	if !Healthy(context.Background(), db) {
		t.Fatalf("expected healthy")
	}
	mock.ExpectPing().WillReturnError(errors.New("down"))
	if Healthy(context.Background(), db) {
		t.Fatalf("expected unhealthy")
	}
	if Healthy(context.Background(), nil) {
		t.Fatalf("expected nil db to be unhealthy")
	}
}
