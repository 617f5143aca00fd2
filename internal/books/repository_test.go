package books_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/JaimeStill/attest/internal/books"
	"github.com/JaimeStill/attest/pkg/faults"
)

var bookColumns = []string{
	"id", "title", "author", "isbn", "description", "published_year", "created_at", "updated_at",
}

func newRepo(t *testing.T) (books.System, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return books.New(db, discard(), testPagination), mock
}

func bookRow(id uuid.UUID, title, author, isbn string) *sqlmock.Rows {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(bookColumns).AddRow(id.String(), title, author, isbn, "", 1999, now, now)
}

func TestFindByISBNMissing(t *testing.T) {
	sys, mock := newRepo(t)

	mock.ExpectQuery(`WHERE b.isbn = \$1`).
		WithArgs("978-0").
		WillReturnRows(sqlmock.NewRows(bookColumns))

	_, err := sys.FindByISBN(context.Background(), " 978-0 ")
	if !errors.Is(err, faults.ErrNotFound) {
		t.Errorf("err = %v, want not found", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateDuplicateISBN(t *testing.T) {
	sys, mock := newRepo(t)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM public.books b WHERE b.isbn = \$1\)`).
		WithArgs("978-0").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := sys.Create(context.Background(), books.CreateCommand{
		Title:  "Dune",
		Author: "Frank Herbert",
		ISBN:   "978-0 ",
	})
	if !errors.Is(err, faults.ErrAlreadyExists) {
		t.Errorf("err = %v, want already exists", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateRequiresTitle(t *testing.T) {
	sys, _ := newRepo(t)

	_, err := sys.Create(context.Background(), books.CreateCommand{Author: "Frank Herbert", ISBN: "978-0"})
	if !errors.Is(err, faults.ErrInvalidInput) {
		t.Errorf("err = %v, want invalid input", err)
	}
}

func TestUpdateOverwritesPresentFields(t *testing.T) {
	sys, mock := newRepo(t)
	id := uuid.New()
	title := "Dune Messiah"

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE b.id = \$1 FOR UPDATE`).
		WithArgs(id).
		WillReturnRows(bookRow(id, "Dune", "Frank Herbert", "978-0"))
	mock.ExpectQuery("UPDATE books").
		WithArgs("Dune Messiah", "Frank Herbert", "978-0", "", sqlmock.AnyArg(), id).
		WillReturnRows(bookRow(id, "Dune Messiah", "Frank Herbert", "978-0"))
	mock.ExpectCommit()

	b, err := sys.Update(context.Background(), id, books.UpdateCommand{Title: &title})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if b.Title != "Dune Messiah" || b.Author != "Frank Herbert" {
		t.Errorf("book = %+v", b)
	}
	if b.PublishedYear == nil || *b.PublishedYear != 1999 {
		t.Errorf("published year = %v, want 1999", b.PublishedYear)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateISBNConflict(t *testing.T) {
	sys, mock := newRepo(t)
	id := uuid.New()
	isbn := "978-1"

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(id).
		WillReturnRows(bookRow(id, "Dune", "Frank Herbert", "978-0"))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("978-1", id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := sys.Update(context.Background(), id, books.UpdateCommand{ISBN: &isbn})
	if !errors.Is(err, faults.ErrAlreadyExists) {
		t.Errorf("err = %v, want already exists", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
