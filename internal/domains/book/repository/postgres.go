package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"autores-backend/internal/domains/book/model"
	"autores-backend/pkg/cache"
	"autores-backend/pkg/database"
	"autores-backend/pkg/logger"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type bookRepository struct {
	db    *pgxpool.Pool
	cache cache.Cache
}

// NewBookRepository creates the postgres book repository. The cache handle
// is only used for invalidation: book writes change the nested views served
// from the author cache, so those entries must not outlive the write.
func NewBookRepository(db *pgxpool.Pool, cacheClient cache.Cache) RepositoryInterface {
	return &bookRepository{
		db:    db,
		cache: cacheClient,
	}
}

func (r *bookRepository) GetAll(ctx context.Context) ([]model.BookResponse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, publication_date
		FROM books
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := make([]model.BookResponse, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var b model.BookResponse
		if err := rows.Scan(&b.ID, &b.Title, &b.PublicationDate); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		b.Authors = make([]model.AuthorRef, 0)
		b.Comments = make([]model.CommentRef, 0)
		books = append(books, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	if err := r.attachChildren(ctx, books, ids); err != nil {
		return nil, err
	}

	return books, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*model.BookResponse, error) {
	var b model.BookResponse
	err := r.db.QueryRow(ctx, `
		SELECT id, title, publication_date
		FROM books
		WHERE id = $1`, id).Scan(&b.ID, &b.Title, &b.PublicationDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to query book %d: %w", id, err)
	}
	b.Authors = make([]model.AuthorRef, 0)
	b.Comments = make([]model.CommentRef, 0)

	books := []model.BookResponse{b}
	if err := r.attachChildren(ctx, books, []int64{id}); err != nil {
		return nil, err
	}

	return &books[0], nil
}

func (r *bookRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}

func (r *bookRepository) Create(ctx context.Context, book *model.Book, links []model.AuthorLink) (*model.Book, error) {
	created, err := database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (*model.Book, error) {
		var out model.Book
		err := tx.QueryRow(ctx, `
			INSERT INTO books (title, publication_date)
			VALUES ($1, $2)
			RETURNING id, title, publication_date`,
			book.Title, book.PublicationDate,
		).Scan(&out.ID, &out.Title, &out.PublicationDate)
		if err != nil {
			return nil, fmt.Errorf("failed to insert book: %w", err)
		}

		if err := insertLinks(ctx, tx, out.ID, links); err != nil {
			return nil, err
		}

		return &out, nil
	})
	if err != nil {
		return nil, mapLinkError(err)
	}

	r.invalidateAuthorViews(ctx)
	return created, nil
}

// Update replaces the book row and its entire authorship list atomically.
// Links are rewritten wholesale; positions always come out dense from 0.
func (r *bookRepository) Update(ctx context.Context, book *model.Book, links []model.AuthorLink) error {
	err := database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE books
			SET title = $1, publication_date = $2
			WHERE id = $3`,
			book.Title, book.PublicationDate, book.ID)
		if err != nil {
			return fmt.Errorf("failed to update book %d: %w", book.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrBookNotFound
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM book_authors WHERE book_id = $1`, book.ID); err != nil {
			return fmt.Errorf("failed to clear authorship links: %w", err)
		}

		return insertLinks(ctx, tx, book.ID, links)
	})
	if err != nil {
		return mapLinkError(err)
	}

	r.invalidateAuthorViews(ctx)
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	r.invalidateAuthorViews(ctx)
	return nil
}

// attachChildren fills Authors (ordered by link position) and Comments for
// the given books. The slices and the id list are index-aligned.
func (r *bookRepository) attachChildren(ctx context.Context, books []model.BookResponse, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	rows, err := r.db.Query(ctx, `
		SELECT ba.book_id, a.id, a.name
		FROM book_authors ba
		JOIN authors a ON a.id = ba.author_id
		WHERE ba.book_id = ANY($1)
		ORDER BY ba.book_id, ba.position`, ids)
	if err != nil {
		return fmt.Errorf("failed to query authorship links: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookID int64
		var ref model.AuthorRef
		if err := rows.Scan(&bookID, &ref.ID, &ref.Name); err != nil {
			return fmt.Errorf("failed to scan authorship link: %w", err)
		}
		i := index[bookID]
		books[i].Authors = append(books[i].Authors, ref)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate authorship links: %w", err)
	}

	commentRows, err := r.db.Query(ctx, `
		SELECT book_id, id, content
		FROM comments
		WHERE book_id = ANY($1)
		ORDER BY book_id, id`, ids)
	if err != nil {
		return fmt.Errorf("failed to query comments: %w", err)
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var bookID int64
		var ref model.CommentRef
		if err := commentRows.Scan(&bookID, &ref.ID, &ref.Content); err != nil {
			return fmt.Errorf("failed to scan comment: %w", err)
		}
		i := index[bookID]
		books[i].Comments = append(books[i].Comments, ref)
	}
	if err := commentRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate comments: %w", err)
	}

	return nil
}

func insertLinks(ctx context.Context, tx pgx.Tx, bookID int64, links []model.AuthorLink) error {
	for _, link := range links {
		if _, err := tx.Exec(ctx, `
			INSERT INTO book_authors (author_id, book_id, position)
			VALUES ($1, $2, $3)`,
			link.AuthorID, bookID, link.Position); err != nil {
			return fmt.Errorf("failed to insert authorship link: %w", err)
		}
	}
	return nil
}

// mapLinkError translates constraint failures on book_authors into domain
// errors. The composite primary key rejects duplicated author ids and the
// foreign key rejects ids that vanished between validation and commit.
func mapLinkError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return model.ErrDuplicateAuthorID
		case pgForeignKeyViolation:
			return model.ErrUnknownAuthorID
		}
	}
	return err
}

// invalidateAuthorViews drops cached author details, which embed book and
// authorship data. Cache failures are logged and ignored; the database is
// the source of truth.
func (r *bookRepository) invalidateAuthorViews(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.DeletePattern(ctx, "author:*"); err != nil {
		logger.Warn("failed to invalidate author cache after book write", err)
	}
}
