package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Uploader pushes product images to MinIO and hands back the hosted URL.
// Product handlers are the only callers; the checkout core never touches it.
type Uploader struct {
	client   *minio.Client
	endpoint string
	bucket   string
}

func NewUploaderFromEnv() *Uploader {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️ MINIO_ENDPOINT not set, image uploads disabled")
		return &Uploader{}
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		log.Println("⚠️ MinIO not configured:", err)
		return &Uploader{}
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "products"
	}

	log.Println("✅ Connected to MinIO:", endpoint)
	return &Uploader{client: client, endpoint: endpoint, bucket: bucket}
}

// UploadImage accepts either an already-hosted URL, which is returned
// unchanged, or image bytes as a data URI / raw base64, which are uploaded
// and replaced by the object's URL.
func (u *Uploader) UploadImage(ctx context.Context, payload string) (string, error) {
	if strings.HasPrefix(payload, "http://") || strings.HasPrefix(payload, "https://") {
		return payload, nil
	}

	if u.client == nil {
		return "", fmt.Errorf("asset store not configured")
	}

	data, contentType, err := decodeImagePayload(payload)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("products/%s%s", uuid.NewString(), extensionFor(contentType))
	_, err = u.client.PutObject(ctx, u.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	return fmt.Sprintf("http://%s/%s/%s", u.endpoint, u.bucket, objectName), nil
}

func decodeImagePayload(payload string) ([]byte, string, error) {
	contentType := "image/jpeg"

	if strings.HasPrefix(payload, "data:") {
		meta, b64, found := strings.Cut(payload, ",")
		if !found {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		contentType = strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64")
		payload = b64
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode image payload: %w", err)
	}
	return data, contentType, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
