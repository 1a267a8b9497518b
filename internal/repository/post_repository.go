package repository

import (
	"context"
	"errors"
	"fmt"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PostRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPostRepo(db *pgxpool.Pool) *PostRepo {
	return &PostRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PostRepo) SavePost(ctx context.Context, post models.Post) (uuid.UUID, error) {
	const op = "repository.PostRepo.SavePost"

	query, args, err := r.sb.Insert("posts").
		Columns("title", "slug", "excerpt", "content", "image", "published", "author_id").
		Values(post.Title, post.Slug, post.Excerpt, post.Content, post.Image, post.Published, post.AuthorID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *PostRepo) UpdatePost(ctx context.Context, post models.Post) error {
	const op = "repository.PostRepo.UpdatePost"

	query, args, err := r.sb.Update("posts").
		Set("title", post.Title).
		Set("slug", post.Slug).
		Set("excerpt", post.Excerpt).
		Set("content", post.Content).
		Set("image", post.Image).
		Set("published", post.Published).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrPostNotFound)
	}

	return nil
}

func (r *PostRepo) DeletePost(ctx context.Context, postID uuid.UUID) error {
	const op = "repository.PostRepo.DeletePost"

	query, args, err := r.sb.Delete("posts").
		Where(sq.Eq{"id": postID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrPostNotFound)
	}

	return nil
}

var postColumns = []string{
	"p.id", "p.title", "p.slug", "p.excerpt", "p.content", "p.image",
	"p.published", "p.author_id", "u.name", "p.created_at", "p.updated_at",
}

func scanPost(row interface{ Scan(...any) error }) (models.Post, error) {
	var (
		post       models.Post
		authorName *string
	)
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.Image,
		&post.Published,
		&post.AuthorID,
		&authorName,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if authorName != nil {
		post.AuthorName = *authorName
	}
	return post, err
}

func (r *PostRepo) GetPostByID(ctx context.Context, postID uuid.UUID) (models.Post, error) {
	const op = "repository.PostRepo.GetPostByID"

	query, args, err := r.sb.Select(postColumns...).
		From("posts p").
		LeftJoin("users u ON u.id = p.author_id").
		Where(sq.Eq{"p.id": postID}).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	post, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Post{}, fmt.Errorf("%s: %w", op, storage.ErrPostNotFound)
		}
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

func (r *PostRepo) GetPostBySlug(ctx context.Context, slug string) (models.Post, error) {
	const op = "repository.PostRepo.GetPostBySlug"

	query, args, err := r.sb.Select(postColumns...).
		From("posts p").
		LeftJoin("users u ON u.id = p.author_id").
		Where(sq.Eq{"p.slug": slug}).
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	post, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Post{}, fmt.Errorf("%s: %w", op, storage.ErrPostNotFound)
		}
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

// GetPosts returns one page of posts newest first plus the total count.
// publishedOnly hides drafts from the public blog; the admin listing passes
// false and sees everything.
func (r *PostRepo) GetPosts(ctx context.Context, publishedOnly bool, page, perPage int) ([]models.Post, int, error) {
	const op = "repository.PostRepo.GetPosts"

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	countBuilder := r.sb.Select("COUNT(*)").From("posts p")
	if publishedOnly {
		countBuilder = countBuilder.Where(sq.Eq{"p.published": true})
	}

	query, args, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var totalCount int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	queryBuilder := r.sb.Select(postColumns...).
		From("posts p").
		LeftJoin("users u ON u.id = p.author_id")
	if publishedOnly {
		queryBuilder = queryBuilder.Where(sq.Eq{"p.published": true})
	}

	query, args, err = queryBuilder.
		OrderBy("p.created_at DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		posts = append(posts, post)
	}

	return posts, totalCount, nil
}
