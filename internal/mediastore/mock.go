package mediastore

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"
)

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadFile(ctx context.Context, header *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, header)
	return args.String(0), args.Error(1)
}

func (m *MockUploader) UploadURL(ctx context.Context, rawURL string) (string, error) {
	args := m.Called(ctx, rawURL)
	return args.String(0), args.Error(1)
}
