package mediastore

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

var ErrUploadFailed = errors.New("media upload failed")

// Uploader resolves either a client-uploaded file or a pre-existing remote
// URL into a durable public URL.
type Uploader interface {
	UploadFile(ctx context.Context, header *multipart.FileHeader) (string, error)
	UploadURL(ctx context.Context, rawURL string) (string, error)
}

type MediaStore struct {
	client   *oss.Client
	bucket   string
	endpoint string
}
