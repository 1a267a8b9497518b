package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/lib/logger/sl"
	"premium_motors/internal/repository"
	"premium_motors/internal/storage"
	"premium_motors/internal/transport/http/dto"

	"github.com/google/uuid"
)

type PostService struct {
	log  *slog.Logger
	repo repository.PostRepository
}

func NewPostService(log *slog.Logger, repo repository.PostRepository) *PostService {
	return &PostService{
		log:  log,
		repo: repo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	const op = "service.PostService.CreatePost"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", post.Slug),
	)

	if err := s.checkSlug(ctx, post.Slug, uuid.Nil); err != nil {
		log.Warn("slug rejected", sl.Err(err))
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SavePost(ctx, post)
	if err != nil {
		log.Error("failed to save post", sl.Err(err))
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	saved, err := s.repo.GetPostByID(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("post created", slog.String("id", id.String()))

	return saved, nil
}

func (s *PostService) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	const op = "service.PostService.UpdatePost"

	log := s.log.With(
		slog.String("op", op),
		slog.String("post_id", post.ID.String()),
	)

	if err := s.checkSlug(ctx, post.Slug, post.ID); err != nil {
		log.Warn("slug rejected", sl.Err(err))
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.UpdatePost(ctx, post); err != nil {
		log.Error("failed to update post", sl.Err(err))
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.GetPostByID(ctx, post.ID)
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("post updated")

	return updated, nil
}

// checkSlug enforces slug uniqueness. selfID excludes the post being updated
// so an unchanged slug is not a conflict.
func (s *PostService) checkSlug(ctx context.Context, slug string, selfID uuid.UUID) error {
	existing, err := s.repo.GetPostBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			return nil
		}
		return err
	}

	if existing.ID != selfID {
		return storage.ErrSlugExists
	}

	return nil
}

func (s *PostService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	const op = "service.PostService.DeletePost"

	if err := s.repo.DeletePost(ctx, postID); err != nil {
		s.log.Error("failed to delete post", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *PostService) GetPostByID(ctx context.Context, postID uuid.UUID) (models.Post, error) {
	const op = "service.PostService.GetPostByID"

	post, err := s.repo.GetPostByID(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

// GetPublishedPostBySlug is the public article endpoint; drafts stay hidden
// even when the slug is guessed.
func (s *PostService) GetPublishedPostBySlug(ctx context.Context, slug string) (models.Post, error) {
	const op = "service.PostService.GetPublishedPostBySlug"

	post, err := s.repo.GetPostBySlug(ctx, slug)
	if err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", op, err)
	}

	if !post.Published {
		return models.Post{}, fmt.Errorf("%s: %w", op, storage.ErrPostNotFound)
	}

	return post, nil
}

func (s *PostService) GetPosts(ctx context.Context, publishedOnly bool, page, perPage int) (*dto.PostListResponse, error) {
	const op = "service.PostService.GetPosts"

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	posts, totalCount, err := s.repo.GetPosts(ctx, publishedOnly, page, perPage)
	if err != nil {
		s.log.Error("failed to get posts", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if posts == nil {
		posts = []models.Post{}
	}

	totalPages := (totalCount + perPage - 1) / perPage

	return &dto.PostListResponse{
		Posts: posts,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      perPage,
			TotalCount: totalCount,
			TotalPages: totalPages,
			HasMore:    page < totalPages,
		},
	}, nil
}
