package media_storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type cloudinaryAdapter struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger logger.Logger
}

func NewCloudinaryAdapter(cfg config.Config, log logger.Logger) (service.Uploader, error) {

	if !cfg.CloudinaryEnabled() {
		return nil, fmt.Errorf("cloudinary credentials have not been configured")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}

	log.Info("Connect Cloudinary successfully.", zap.String("cloud_name", cfg.Cloudinary.CloudName))
	return &cloudinaryAdapter{cld: cld, folder: cfg.Cloudinary.Folder, logger: log}, nil
}

func (a *cloudinaryAdapter) Upload(ctx context.Context, file io.Reader, publicID string) (string, error) {
	uploadParams := uploader.UploadParams{
		PublicID:     publicID,
		Folder:       a.folder,
		ResourceType: "raw",
	}
	result, err := a.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rejected upload: %s", result.Error.Message)
	}
	return result.SecureURL, nil
}

func (a *cloudinaryAdapter) Delete(ctx context.Context, publicID string) error {
	_, err := a.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "raw",
	})
	if err != nil {
		return fmt.Errorf("failed to delete cloudinary: %w", err)
	}
	return nil
}

// ImageURL turns a Cloudinary public id into a face-cropped delivery URL.
func (a *cloudinaryAdapter) ImageURL(ref string, width, height int) string {
	if ref == "" || isDirectURL(ref) {
		return ref
	}
	img, err := a.cld.Image(ref)
	if err != nil {
		a.logger.Warn("Failed to build image asset", zap.String("public_id", ref), zap.Error(err))
		return ""
	}
	img.Transformation = fmt.Sprintf("c_fill,g_face,w_%d,h_%d,q_auto,f_auto", width, height)
	u, err := img.String()
	if err != nil {
		a.logger.Warn("Failed to build image URL", zap.String("public_id", ref), zap.Error(err))
		return ""
	}
	return u
}

type localAdapter struct{}

// NewLocalAdapter is used when Cloudinary is not configured. Image references
// pass through untouched and uploads report the service as unavailable.
func NewLocalAdapter() service.Uploader {
	return localAdapter{}
}

func (localAdapter) Upload(context.Context, io.Reader, string) (string, error) {
	return "", apperror.NewUnavailable("media storage is not configured", nil)
}

func (localAdapter) Delete(context.Context, string) error {
	return apperror.NewUnavailable("media storage is not configured", nil)
}

func (localAdapter) ImageURL(ref string, _, _ int) string {
	if isDirectURL(ref) {
		return ref
	}
	return ""
}

func isDirectURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "/")
}
