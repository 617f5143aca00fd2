package books

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/pkg/faults"
	"github.com/JaimeStill/attest/pkg/pagination"
	"github.com/JaimeStill/attest/pkg/query"
	"github.com/JaimeStill/attest/pkg/repository"
	"github.com/JaimeStill/attest/pkg/validation"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a book repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "books"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Book], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Author", "ISBN")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count books: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanBook)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Book, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	b, err := repository.QueryOne(ctx, r.db, q, args, scanBook)
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}
	return &b, nil
}

func (r *repo) FindByISBN(ctx context.Context, isbn string) (*Book, error) {
	isbn = strings.TrimSpace(isbn)
	q, args := query.NewBuilder(projection).BuildSingle("ISBN", isbn)

	b, err := repository.QueryOne(ctx, r.db, q, args, scanBook)
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, isbn), nil)
	}
	return &b, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Book, error) {
	cmd.ISBN = strings.TrimSpace(cmd.ISBN)
	if err := validation.Struct(cmd); err != nil {
		return nil, faults.InvalidInput(entity, cmd.ISBN, err.Error())
	}

	if err := r.ensureUnique(ctx, uuid.Nil, cmd.ISBN); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO books(title, author, isbn, description, published_year)
		VALUES ($1, $2, $3, $4, $5)
		` + returning

	args := []any{cmd.Title, cmd.Author, cmd.ISBN, cmd.Description, cmd.PublishedYear}

	b, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Book, error) {
		return repository.QueryOne(ctx, tx, q, args, scanBook)
	})
	if err != nil {
		return nil, repository.MapError(err, nil, faults.AlreadyExists(entity, cmd.ISBN))
	}

	r.logger.Info("book created", "id", b.ID, "isbn", b.ISBN)
	return &b, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Book, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, faults.InvalidInput(entity, id.String(), err.Error())
	}

	b, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Book, error) {
		q, args := query.NewBuilder(projection).BuildSingle("ID", id)
		current, err := repository.LockOne(ctx, tx, q, args, scanBook)
		if err != nil {
			return Book{}, err
		}

		if cmd.ISBN != nil && *cmd.ISBN != current.ISBN {
			if err := r.ensureUnique(ctx, id, *cmd.ISBN); err != nil {
				return Book{}, err
			}
		}

		cmd.apply(&current)

		update := `
			UPDATE books
			SET title = $1, author = $2, isbn = $3, description = $4,
				published_year = $5, updated_at = NOW()
			WHERE id = $6
			` + returning

		return repository.QueryOne(ctx, tx, update, []any{
			current.Title,
			current.Author,
			current.ISBN,
			current.Description,
			current.PublishedYear,
			id,
		}, scanBook)
	})
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), faults.AlreadyExists(entity, id.String()))
	}

	r.logger.Info("book updated", "id", b.ID)
	return &b, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, "DELETE FROM books WHERE id = $1", id)
	})
	if err != nil {
		return repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}

	r.logger.Info("book deleted", "id", id)
	return nil
}

func (r *repo) ensureUnique(ctx context.Context, self uuid.UUID, isbn string) error {
	qb := query.NewBuilder(projection).WhereEquals("ISBN", isbn)
	if self != uuid.Nil {
		qb.WhereNot("ID", self)
	}

	q, args := qb.BuildExists()
	exists, err := repository.Exists(ctx, r.db, q, args...)
	if err != nil {
		return fmt.Errorf("check book isbn: %w", err)
	}
	if exists {
		return faults.AlreadyExists(entity, isbn)
	}
	return nil
}
