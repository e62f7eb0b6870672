package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"autores-backend/internal/domains/comment/model"
)

type commentRepository struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) RepositoryInterface {
	return &commentRepository{
		db: db,
	}
}

func (r *commentRepository) ListByBook(ctx context.Context, bookID int64) ([]model.CommentResponse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, content
		FROM comments
		WHERE book_id = $1
		ORDER BY id`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for book %d: %w", bookID, err)
	}
	defer rows.Close()

	comments := make([]model.CommentResponse, 0)
	for rows.Next() {
		var c model.CommentResponse
		if err := rows.Scan(&c.ID, &c.Content); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	var out model.Comment
	err := r.db.QueryRow(ctx, `
		INSERT INTO comments (content, book_id)
		VALUES ($1, $2)
		RETURNING id, content, book_id`,
		comment.Content, comment.BookID,
	).Scan(&out.ID, &out.Content, &out.BookID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return &out, nil
}

// Update matches on both comment id and book id, so a comment cannot be
// edited through another book's route.
func (r *commentRepository) Update(ctx context.Context, comment *model.Comment) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE comments
		SET content = $1
		WHERE id = $2 AND book_id = $3`,
		comment.Content, comment.ID, comment.BookID)
	if err != nil {
		return fmt.Errorf("failed to update comment %d: %w", comment.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}
