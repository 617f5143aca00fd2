package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/JaimeStill/attest/pkg/repository"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func scanName(s repository.Scanner) (string, error) {
	var name string
	err := s.Scan(&name)
	return name, err
}

func TestWithTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		got, err := repository.WithTx(context.Background(), db, func(*sql.Tx) (int, error) {
			return 7, nil
		})
		if err != nil || got != 7 {
			t.Errorf("WithTx() = %d, %v; want 7, nil", got, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		got, err := repository.WithTx(context.Background(), db, func(*sql.Tx) (int, error) {
			return 7, boom
		})
		if !errors.Is(err, boom) || got != 0 {
			t.Errorf("WithTx() = %d, %v; want 0, boom", got, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}

func TestLockOne(t *testing.T) {
	tests := []struct {
		name string
		of   []string
		want string
	}{
		{"whole row", nil, `SELECT name FROM public.books b WHERE b.id = \$1 FOR UPDATE$`},
		{"named aliases", []string{"r"}, `FOR UPDATE OF r$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectBegin()
			mock.ExpectQuery(tt.want).
				WithArgs(1).
				WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Dune"))
			mock.ExpectCommit()

			got, err := repository.WithTx(context.Background(), db, func(tx *sql.Tx) (string, error) {
				return repository.LockOne(context.Background(), tx, "SELECT name FROM public.books b WHERE b.id = $1", []any{1}, scanName, tt.of...)
			})
			if err != nil || got != "Dune" {
				t.Errorf("LockOne() = %q, %v; want Dune, nil", got, err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestQueryManyEmpty(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT name").WillReturnRows(sqlmock.NewRows([]string{"name"}))

	got, err := repository.QueryMany(context.Background(), db, "SELECT name FROM books", nil, scanName)
	if err != nil {
		t.Fatalf("QueryMany() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("QueryMany() = %#v, want empty non-nil slice", got)
	}
}

func TestExecExpectOne(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("DELETE FROM books").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM books").WillReturnResult(sqlmock.NewResult(0, 1))

	ctx := context.Background()
	if err := repository.ExecExpectOne(ctx, db, "DELETE FROM books WHERE id = $1", 1); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("no rows affected: err = %v, want sql.ErrNoRows", err)
	}
	if err := repository.ExecExpectOne(ctx, db, "DELETE FROM books WHERE id = $1", 2); err != nil {
		t.Errorf("one row affected: err = %v", err)
	}
}
