package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) SavePost(ctx context.Context, post models.Post) (uuid.UUID, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockPostRepository) UpdatePost(ctx context.Context, post models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) DeletePost(ctx context.Context, postID uuid.UUID) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostRepository) GetPostByID(ctx context.Context, postID uuid.UUID) (models.Post, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(models.Post), args.Error(1)
}

func (m *MockPostRepository) GetPostBySlug(ctx context.Context, slug string) (models.Post, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.Post), args.Error(1)
}

func (m *MockPostRepository) GetPosts(ctx context.Context, publishedOnly bool, page, perPage int) ([]models.Post, int, error) {
	args := m.Called(ctx, publishedOnly, page, perPage)
	return args.Get(0).([]models.Post), args.Int(1), args.Error(2)
}

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()

	post := models.Post{
		Title: "Novidades da semana",
		Slug:  "novidades-da-semana",
	}

	t.Run("successful creation", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(slog.Default(), repo)

		repo.On("GetPostBySlug", ctx, post.Slug).
			Return(models.Post{}, storage.ErrPostNotFound).Once()
		repo.On("SavePost", ctx, post).Return(postID, nil).Once()
		repo.On("GetPostByID", ctx, postID).
			Return(models.Post{ID: postID, Title: post.Title, Slug: post.Slug}, nil).Once()

		saved, err := service.CreatePost(ctx, post)

		assert.NoError(t, err)
		assert.Equal(t, postID, saved.ID)
		repo.AssertExpectations(t)
	})

	t.Run("slug already taken", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(slog.Default(), repo)

		repo.On("GetPostBySlug", ctx, post.Slug).
			Return(models.Post{ID: uuid.New(), Slug: post.Slug}, nil).Once()

		_, err := service.CreatePost(ctx, post)

		assert.ErrorIs(t, err, storage.ErrSlugExists)
		repo.AssertNotCalled(t, "SavePost", mock.Anything, mock.Anything)
	})

	t.Run("slug check error", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(slog.Default(), repo)

		repo.On("GetPostBySlug", ctx, post.Slug).
			Return(models.Post{}, errors.New("db down")).Once()

		_, err := service.CreatePost(ctx, post)

		assert.Error(t, err)
		repo.AssertNotCalled(t, "SavePost", mock.Anything, mock.Anything)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()

	post := models.Post{
		ID:    postID,
		Title: "Novidades da semana",
		Slug:  "novidades-da-semana",
	}

	t.Run("own slug is not a conflict", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(slog.Default(), repo)

		repo.On("GetPostBySlug", ctx, post.Slug).
			Return(models.Post{ID: postID, Slug: post.Slug}, nil).Once()
		repo.On("UpdatePost", ctx, post).Return(nil).Once()
		repo.On("GetPostByID", ctx, postID).Return(post, nil).Once()

		updated, err := service.UpdatePost(ctx, post)

		assert.NoError(t, err)
		assert.Equal(t, postID, updated.ID)
		repo.AssertExpectations(t)
	})

	t.Run("slug owned by another post", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(slog.Default(), repo)

		repo.On("GetPostBySlug", ctx, post.Slug).
			Return(models.Post{ID: uuid.New(), Slug: post.Slug}, nil).Once()

		_, err := service.UpdatePost(ctx, post)

		assert.ErrorIs(t, err, storage.ErrSlugExists)
		repo.AssertNotCalled(t, "UpdatePost", mock.Anything, mock.Anything)
	})
}

func TestPostService_GetPublishedPostBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("published post", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(slog.Default(), repo)

		repo.On("GetPostBySlug", ctx, "meu-post").
			Return(models.Post{Slug: "meu-post", Published: true}, nil).Once()

		post, err := service.GetPublishedPostBySlug(ctx, "meu-post")

		assert.NoError(t, err)
		assert.True(t, post.Published)
	})

	t.Run("draft stays hidden", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(slog.Default(), repo)

		repo.On("GetPostBySlug", ctx, "rascunho").
			Return(models.Post{Slug: "rascunho", Published: false}, nil).Once()

		_, err := service.GetPublishedPostBySlug(ctx, "rascunho")

		assert.ErrorIs(t, err, storage.ErrPostNotFound)
	})
}

func TestPostService_GetPosts(t *testing.T) {
	ctx := context.Background()

	posts := []models.Post{
		{ID: uuid.New(), Title: "Post 1", Published: true},
		{ID: uuid.New(), Title: "Post 2", Published: true},
	}

	t.Run("paged listing", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(slog.Default(), repo)

		repo.On("GetPosts", ctx, true, 1, 10).Return(posts, 15, nil).Once()

		resp, err := service.GetPosts(ctx, true, 0, 0)

		assert.NoError(t, err)
		assert.Len(t, resp.Posts, 2)
		assert.Equal(t, 15, resp.Pagination.TotalCount)
		assert.Equal(t, 2, resp.Pagination.TotalPages)
		assert.True(t, resp.Pagination.HasMore)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockPostRepository)
		service := NewPostService(slog.Default(), repo)

		repo.On("GetPosts", ctx, false, 1, 10).
			Return([]models.Post(nil), 0, errors.New("db down")).Once()

		_, err := service.GetPosts(ctx, false, 1, 10)

		assert.Error(t, err)
	})
}
