package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// ImageService handles image processing and storage operations
type ImageService struct {
	storage StorageService
}

// NewImageService creates a new image service
func NewImageService(storage StorageService) *ImageService {
	return &ImageService{storage: storage}
}

// ImageVariantConfig defines the configuration for image variants
type ImageVariantConfig struct {
	Name   string
	Width  int
	Height int
	Fit    imaging.ResampleFilter
}

// Default image variants for menu photography
var DefaultImageVariants = []ImageVariantConfig{
	{Name: "thumbnail", Width: 150, Height: 150, Fit: imaging.Lanczos},
	{Name: "medium", Width: 400, Height: 300, Fit: imaging.Lanczos},
	{Name: "large", Width: 800, Height: 600, Fit: imaging.Lanczos},
}

const jpegQuality = 85

// UploadImage processes an uploaded image and stores the original plus
// resized variants. It returns metadata for everything it stored.
func (s *ImageService) UploadImage(ctx context.Context, reader io.Reader, filename string) (*ImageUploadResult, error) {
	imageData, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if !isValidImageFormat(format) {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	keyPrefix := generateImageKey(filename)
	bounds := img.Bounds()

	originalData, err := encodeImage(img, format)
	if err != nil {
		return nil, fmt.Errorf("failed to process original image: %w", err)
	}

	originalKey := fmt.Sprintf("%s/original.%s", keyPrefix, format)
	originalURL, err := s.storage.Upload(ctx, originalKey, bytes.NewReader(originalData), getContentType(format), int64(len(originalData)))
	if err != nil {
		return nil, fmt.Errorf("failed to upload original image: %w", err)
	}

	original := ImageMetadata{
		Key:         originalKey,
		URL:         originalURL,
		Size:        int64(len(originalData)),
		ContentType: getContentType(format),
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		UploadedAt:  time.Now(),
	}

	variants := make([]ImageVariant, 0, len(DefaultImageVariants))
	for _, config := range DefaultImageVariants {
		variant, err := s.createImageVariant(ctx, img, keyPrefix, config, format)
		if err != nil {
			// One failed variant should not sink the whole upload.
			log.Printf("failed to create variant %s: %v", config.Name, err)
			continue
		}
		variants = append(variants, *variant)
	}

	return &ImageUploadResult{
		Original: original,
		Variants: variants,
	}, nil
}

// DeleteImage removes the original and all variants for a key prefix
func (s *ImageService) DeleteImage(ctx context.Context, keyPrefix string) error {
	keys := []string{fmt.Sprintf("%s/original.jpeg", keyPrefix), fmt.Sprintf("%s/original.png", keyPrefix)}
	for _, config := range DefaultImageVariants {
		keys = append(keys,
			fmt.Sprintf("%s/%s.jpeg", keyPrefix, config.Name),
			fmt.Sprintf("%s/%s.png", keyPrefix, config.Name),
		)
	}

	var lastErr error
	for _, key := range keys {
		exists, err := s.storage.Exists(ctx, key)
		if err != nil {
			// A failed existence check may be hiding an object; report it
			// so the caller does not think the prefix is gone.
			lastErr = fmt.Errorf("failed to check %s: %w", key, err)
			continue
		}
		if !exists {
			continue
		}
		if err := s.storage.Delete(ctx, key); err != nil {
			lastErr = err
		}
	}

	return lastErr
}

// createImageVariant creates a resized variant of the image
func (s *ImageService) createImageVariant(ctx context.Context, img image.Image, keyPrefix string, config ImageVariantConfig, format string) (*ImageVariant, error) {
	resized := imaging.Fit(img, config.Width, config.Height, config.Fit)

	imageData, err := encodeImage(resized, format)
	if err != nil {
		return nil, fmt.Errorf("failed to process variant image: %w", err)
	}

	variantKey := fmt.Sprintf("%s/%s.%s", keyPrefix, config.Name, format)
	variantURL, err := s.storage.Upload(ctx, variantKey, bytes.NewReader(imageData), getContentType(format), int64(len(imageData)))
	if err != nil {
		return nil, fmt.Errorf("failed to upload variant: %w", err)
	}

	bounds := resized.Bounds()

	return &ImageVariant{
		Name:   config.Name,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Key:    variantKey,
		URL:    variantURL,
	}, nil
}

func encodeImage(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case "jpeg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, err
		}
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported encode format: %s", format)
	}

	return buf.Bytes(), nil
}

func isValidImageFormat(format string) bool {
	switch format {
	case "jpeg", "png":
		return true
	}
	return false
}

func getContentType(format string) string {
	switch format {
	case "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	}
	return "application/octet-stream"
}

// generateImageKey builds a unique storage key prefix for an upload
func generateImageKey(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.ToLower(strings.ReplaceAll(base, " ", "-"))
	if base == "" || base == "." {
		base = "image"
	}
	return fmt.Sprintf("foods/%s-%s", base, uuid.NewString()[:8])
}
