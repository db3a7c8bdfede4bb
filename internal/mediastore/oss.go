package mediastore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/google/uuid"
)

const maxMediaSize int64 = 10 << 20 // 10MB

func New(endpoint, region, bucket string) (*MediaStore, error) {
	provider := credentials.NewEnvironmentVariableCredentialsProvider()
	cfg := oss.LoadDefaultConfig().WithCredentialsProvider(provider).
		WithEndpoint(endpoint).WithRegion(region)

	return &MediaStore{
		client:   oss.NewClient(cfg),
		bucket:   bucket,
		endpoint: endpoint,
	}, nil
}

// UploadFile stores a multipart upload and returns its public URL.
func (s *MediaStore) UploadFile(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if header == nil || header.Size <= 0 || header.Size > maxMediaSize {
		return "", fmt.Errorf("%w: invalid file size", ErrUploadFailed)
	}

	f, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer f.Close()

	// sniff the content type from the first 512 bytes, then rewind
	head := make([]byte, 512)
	n, _ := f.Read(head)
	contentType := http.DetectContentType(head[:n])
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return s.put(ctx, io.LimitReader(f, maxMediaSize+1), contentType)
}

// UploadURL fetches a remote file and stores a copy, returning the public
// URL of the copy.
func (s *MediaStore) UploadURL(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: fetching %s returned status %d", ErrUploadFailed, rawURL, res.StatusCode)
	}

	// buffer the body so an oversized file fails instead of being stored truncated
	body, err := io.ReadAll(io.LimitReader(res.Body, maxMediaSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if int64(len(body)) > maxMediaSize {
		return "", fmt.Errorf("%w: remote file exceeds %d bytes", ErrUploadFailed, maxMediaSize)
	}

	return s.put(ctx, bytes.NewReader(body), res.Header.Get("Content-Type"))
}

func (s *MediaStore) put(ctx context.Context, body io.Reader, contentType string) (string, error) {
	key := objectKey(contentType)

	_, err := s.client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(s.bucket),
		Key:         oss.Ptr(key),
		Body:        body,
		ContentType: oss.Ptr(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return fmt.Sprintf("https://%s.%s/%s", s.bucket, s.endpoint, key), nil
}

func objectKey(contentType string) string {
	ext := ".bin"
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	}

	return fmt.Sprintf("blog/%s/%s%s", time.Now().Format("2006/01/02"), uuid.NewString(), ext)
}
