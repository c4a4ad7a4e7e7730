// Package storage хранит фотографии сотрудников в S3-совместимом бакете.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const (
	// MaxImageSize - максимальный размер загружаемого файла
	MaxImageSize = 5 << 20

	keyPrefix = "responders/"
)

var (
	ErrUnsupportedImage = errors.New("only PNG and JPEG images are accepted")
	ErrImageTooLarge    = errors.New("image exceeds the size limit")
	ErrImageNotFound    = errors.New("image not found")
)

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
}

// Object - сохраненное изображение, открытое на чтение
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// MinioImageStore хранит изображения в бакете MinIO
type MinioImageStore struct {
	client *minio.Client
	bucket string
	logger *logrus.Logger
}

// Options - параметры подключения к MinIO
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// NewMinioImageStore подключается к MinIO и создает бакет, если его нет
func NewMinioImageStore(ctx context.Context, opts Options, logger *logrus.Logger) (*MinioImageStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("error checking bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", opts.Bucket, err)
		}
		logger.WithField("bucket", opts.Bucket).Info("Image bucket created")
	}

	return &MinioImageStore{client: client, bucket: opts.Bucket, logger: logger}, nil
}

// DetectImage проверяет размер и содержимое, возвращает тип содержимого и расширение файла
func DetectImage(data []byte) (contentType, ext string, err error) {
	if len(data) == 0 {
		return "", "", ErrUnsupportedImage
	}
	if len(data) > MaxImageSize {
		return "", "", ErrImageTooLarge
	}
	contentType = http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", "", fmt.Errorf("%w: got %s", ErrUnsupportedImage, contentType)
	}
	return contentType, ext, nil
}

// ValidKey сообщает, мог ли такой ключ быть выдан этим хранилищем
func ValidKey(key string) bool {
	name, ok := strings.CutPrefix(key, keyPrefix)
	if !ok {
		return false
	}
	id, ext, ok := strings.Cut(name, ".")
	if !ok || (ext != "png" && ext != "jpg") {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// Put сохраняет PNG или JPEG и возвращает ключ объекта
func (s *MinioImageStore) Put(ctx context.Context, data []byte) (string, error) {
	contentType, ext, err := DetectImage(data)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s%s.%s", keyPrefix, uuid.New(), ext)

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"key": key, "size": len(data)}).Info("Image stored")
	return key, nil
}

// Get открывает сохраненное изображение, Body закрывает вызывающий
func (s *MinioImageStore) Get(ctx context.Context, key string) (Object, error) {
	if !ValidKey(key) {
		return Object{}, ErrImageNotFound
	}
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return Object{}, ErrImageNotFound
		}
		return Object{}, fmt.Errorf("failed to stat image: %w", err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return Object{}, fmt.Errorf("failed to get image: %w", err)
	}
	return Object{Body: obj, ContentType: info.ContentType, Size: info.Size}, nil
}
