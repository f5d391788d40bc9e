package service

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/minio"
	"Kiosque/internal/pkg/util"
	"bytes"
	"context"
	"image/jpeg"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const thumbnailWidth = 480

type MediaService interface {
	Upload(ctx context.Context, filename string, size int64, reader io.ReadSeeker) (*dto.MediaUploadResultDTO, error)
}

type MediaServiceImpl struct{}

func NewMediaService() MediaService {
	return &MediaServiceImpl{}
}

// Upload 校验 MIME 后上传，图片额外生成缩略图
func (s *MediaServiceImpl) Upload(ctx context.Context, filename string, size int64, reader io.ReadSeeker) (*dto.MediaUploadResultDTO, error) {
	contentType, err := util.GetSafeContentType(reader)
	if err != nil {
		return nil, err
	}

	isImage := strings.HasPrefix(contentType, consts.MimePrefixImage)
	isVideo := strings.HasPrefix(contentType, consts.MimePrefixVideo)
	if !isImage && !isVideo {
		return nil, ErrFileNotSupported
	}

	ext := path.Ext(filename)
	objectName := time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	fileKey, err := minio.UploadFile(ctx, objectName, reader, size, contentType)
	if err != nil {
		log.ErrorContext(ctx, "MinIO upload failed", "err", err)
		return nil, UnExpectedError
	}

	result := &dto.MediaUploadResultDTO{
		URL:      minio.GetPublicURL(fileKey),
		MimeType: contentType,
	}

	if isImage {
		if thumbKey, err := s.uploadThumbnail(ctx, objectName, reader); err == nil {
			result.ThumbnailURL = minio.GetPublicURL(thumbKey)
		} else {
			log.WarnContext(ctx, "thumbnail generation failed", "object", objectName, "err", err)
		}
	}
	return result, nil
}

func (s *MediaServiceImpl) uploadThumbnail(ctx context.Context, objectName string, reader io.ReadSeeker) (string, error) {
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return "", err
	}

	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(jpeg.DefaultQuality)); err != nil {
		return "", err
	}

	thumbName := strings.TrimSuffix(objectName, path.Ext(objectName)) + "_thumb.jpg"
	return minio.UploadFile(ctx, thumbName, &buf, int64(buf.Len()), "image/jpeg")
}
