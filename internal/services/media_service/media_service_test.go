package services

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/textproto"
	"testing"

	"premium_motors/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

func (m *MockFileStorage) BaseURL() string {
	args := m.Called()
	return args.String(0)
}

func fileHeader(filename, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: filename,
		Size:     size,
		Header: textproto.MIMEHeader{
			"Content-Type": []string{contentType},
		},
	}
}

const maxSize = 5 << 20

func TestMediaService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		file        *multipart.FileHeader
		mockSetup   func(fs *MockFileStorage)
		expectedErr error
		expectedURL string
	}{
		{
			name: "successful upload",
			file: fileHeader("car.jpg", "image/jpeg", 1024),
			mockSetup: func(fs *MockFileStorage) {
				fs.On("Save", ctx, mock.Anything).
					Return("/uploads/cars/123-abc.jpg", nil).Once()
			},
			expectedURL: "/uploads/cars/123-abc.jpg",
		},
		{
			name:        "file too large",
			file:        fileHeader("huge.png", "image/png", maxSize+1),
			mockSetup:   func(fs *MockFileStorage) {},
			expectedErr: storage.ErrFileTooLarge,
		},
		{
			name:        "rejected content type",
			file:        fileHeader("malware.exe", "application/octet-stream", 1024),
			mockSetup:   func(fs *MockFileStorage) {},
			expectedErr: storage.ErrInvalidFileType,
		},
		{
			name: "webp is allowed",
			file: fileHeader("car.webp", "image/webp", 1024),
			mockSetup: func(fs *MockFileStorage) {
				fs.On("Save", ctx, mock.Anything).
					Return("/uploads/cars/456-def.webp", nil).Once()
			},
			expectedURL: "/uploads/cars/456-def.webp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := new(MockFileStorage)
			service := NewMediaService(slog.Default(), fs, maxSize)
			tt.mockSetup(fs)

			resp, err := service.Upload(ctx, tt.file)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, resp)
				fs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedURL, resp.URL)
				assert.Equal(t, tt.file.Filename, resp.Filename)
			}

			fs.AssertExpectations(t)
		})
	}
}

func TestMediaService_Upload_StorageError(t *testing.T) {
	ctx := context.Background()

	fs := new(MockFileStorage)
	service := NewMediaService(slog.Default(), fs, maxSize)

	fs.On("Save", ctx, mock.Anything).
		Return("", errors.New("disk full")).Once()

	_, err := service.Upload(ctx, fileHeader("car.jpg", "image/jpeg", 1024))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
