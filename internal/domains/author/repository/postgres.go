package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"autores-backend/internal/domains/author/model"
	"autores-backend/pkg/cache"
)

// postgresRepository implements RepositoryInterface on pgxpool, with a
// read-through cache on the detail view.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute
)

// Create inserts a new author and returns it with the generated id.
func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (name)
        VALUES ($1)
        RETURNING id, name
    `

	var created model.Author
	err := r.pool.QueryRow(ctx, query, a.Name).Scan(&created.ID, &created.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

// GetByID retrieves the author detail view: the author plus every book
// they appear in, each book carrying its full author list sorted by link
// position.
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.AuthorDetailResponse, error) {
	cacheKey := fmt.Sprintf("%s%d", authorCacheKeyPrefix, id)

	var detail model.AuthorDetailResponse
	if found, err := r.cache.Get(ctx, cacheKey, &detail); err == nil && found {
		return &detail, nil
	}

	query := `SELECT id, name FROM authors WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(&detail.ID, &detail.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	graphs, err := r.loadBookGraphs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	detail.Books = graphs[id]

	r.cache.Set(ctx, cacheKey, detail, cacheTTL)

	return &detail, nil
}

// GetAll returns every author with a shallow list of their books.
func (r *postgresRepository) GetAll(ctx context.Context) ([]model.AuthorResponse, error) {
	query := `
        SELECT a.id, a.name, b.id, b.title
        FROM authors a
        LEFT JOIN book_authors ba ON ba.author_id = a.id
        LEFT JOIN books b ON b.id = ba.book_id
        ORDER BY a.id, ba.position
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []model.AuthorResponse{}
	index := map[int64]int{}

	for rows.Next() {
		var (
			authorID   int64
			authorName string
			bookID     *int64
			bookTitle  *string
		)
		if err := rows.Scan(&authorID, &authorName, &bookID, &bookTitle); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}

		pos, seen := index[authorID]
		if !seen {
			authors = append(authors, model.AuthorResponse{
				ID:    authorID,
				Name:  authorName,
				Books: []model.BookSummary{},
			})
			pos = len(authors) - 1
			index[authorID] = pos
		}

		if bookID != nil {
			authors[pos].Books = append(authors[pos].Books, model.BookSummary{
				ID:    *bookID,
				Title: *bookTitle,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

// SearchByName performs a case-sensitive substring match over names.
func (r *postgresRepository) SearchByName(ctx context.Context, substring string) ([]model.AuthorDetailResponse, error) {
	query := `
        SELECT id, name
        FROM authors
        WHERE strpos(name, $1) > 0
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query, substring)
	if err != nil {
		return nil, fmt.Errorf("failed to search authors: %w", err)
	}
	defer rows.Close()

	var results []model.AuthorDetailResponse
	var ids []int64

	for rows.Next() {
		var detail model.AuthorDetailResponse
		if err := rows.Scan(&detail.ID, &detail.Name); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		detail.Books = []model.NestedBook{}
		results = append(results, detail)
		ids = append(ids, detail.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search results: %w", err)
	}

	if len(ids) == 0 {
		return results, nil
	}

	graphs, err := r.loadBookGraphs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range results {
		if books, ok := graphs[results[i].ID]; ok {
			results[i].Books = books
		}
	}

	return results, nil
}

// Update fully replaces the author's mutable fields.
func (r *postgresRepository) Update(ctx context.Context, a *model.Author) error {
	query := `UPDATE authors SET name = $1 WHERE id = $2`

	cmdTag, err := r.pool.Exec(ctx, query, a.Name, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	r.invalidate(ctx)

	return nil
}

// Delete removes an author by id.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM authors WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	r.invalidate(ctx)

	return nil
}

// ExistsByID is a lightweight existence query.
func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}

// FilterExisting returns the subset of ids that name an existing author.
func (r *postgresRepository) FilterExisting(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	existing := map[int64]struct{}{}
	if len(ids) == 0 {
		return existing, nil
	}

	query := `SELECT id FROM authors WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to filter author ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan author id: %w", err)
		}
		existing[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author ids: %w", err)
	}

	return existing, nil
}

// loadBookGraphs loads, for each requested author, their books with each
// book's complete author list. Link rows are re-sorted by position here;
// storage order is never trusted.
func (r *postgresRepository) loadBookGraphs(ctx context.Context, authorIDs []int64) (map[int64][]model.NestedBook, error) {
	query := `
        SELECT ba.author_id, b.id, b.title, ca.author_id, a2.name
        FROM book_authors ba
        JOIN books b ON b.id = ba.book_id
        JOIN book_authors ca ON ca.book_id = b.id
        JOIN authors a2 ON a2.id = ca.author_id
        WHERE ba.author_id = ANY($1)
        ORDER BY ba.author_id, b.id, ca.position
    `

	rows, err := r.pool.Query(ctx, query, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load book graphs: %w", err)
	}
	defer rows.Close()

	graphs := map[int64][]model.NestedBook{}
	bookIndex := map[[2]int64]int{} // (owner, book) -> index in graphs[owner]

	for rows.Next() {
		var (
			ownerID    int64
			bookID     int64
			bookTitle  string
			coAuthorID int64
			coAuthor   string
		)
		if err := rows.Scan(&ownerID, &bookID, &bookTitle, &coAuthorID, &coAuthor); err != nil {
			return nil, fmt.Errorf("failed to scan book graph: %w", err)
		}

		key := [2]int64{ownerID, bookID}
		pos, seen := bookIndex[key]
		if !seen {
			graphs[ownerID] = append(graphs[ownerID], model.NestedBook{
				ID:      bookID,
				Title:   bookTitle,
				Authors: []model.AuthorRef{},
			})
			pos = len(graphs[ownerID]) - 1
			bookIndex[key] = pos
		}

		graphs[ownerID][pos].Authors = append(graphs[ownerID][pos].Authors, model.AuthorRef{
			ID:   coAuthorID,
			Name: coAuthor,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book graphs: %w", err)
	}

	return graphs, nil
}

// invalidate drops every cached author detail. Name changes ripple into
// other authors' nested views, so per-key invalidation is not enough.
func (r *postgresRepository) invalidate(ctx context.Context) {
	r.cache.DeletePattern(ctx, authorCacheKeyPrefix+"*")
}
