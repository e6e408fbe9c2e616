package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"food-ordering-platform/internal/config"
)

// StorageFactory creates storage services with proper fallback configuration
type StorageFactory struct {
	config *config.Config
}

// NewStorageFactory creates a new storage factory
func NewStorageFactory(cfg *config.Config) *StorageFactory {
	return &StorageFactory{config: cfg}
}

// UploadsDir is where fallback storage keeps files on disk. The server
// serves it under /uploads/.
const UploadsDir = "uploads"

// CreateStorageService creates a storage service with R2 primary and local fallback
func (f *StorageFactory) CreateStorageService() (StorageService, error) {
	r2Service, r2Err := NewR2Service(f.config.R2)

	fallbackURL := fmt.Sprintf("%s/%s", f.config.Server.BaseURL, UploadsDir)
	fallbackService := NewFallbackStorageService(filepath.Join(".", UploadsDir), fallbackURL)

	if r2Err != nil {
		log.Printf("warning: R2 service unavailable, using fallback storage only: %v", r2Err)
		return fallbackService, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := r2Service.HealthCheck(ctx); err != nil {
		log.Printf("warning: R2 health check failed, using fallback storage only: %v", err)
		return fallbackService, nil
	}

	log.Println("R2 storage service initialized")
	return NewStorageServiceWithFallback(r2Service, fallbackService), nil
}

// CreateImageService creates an image service with the configured storage
func (f *StorageFactory) CreateImageService() (*ImageService, error) {
	storage, err := f.CreateStorageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create storage service: %w", err)
	}

	return NewImageService(storage), nil
}

// SetupR2Bucket initializes the R2 bucket
func (f *StorageFactory) SetupR2Bucket() error {
	r2Service, err := NewR2Service(f.config.R2)
	if err != nil {
		return fmt.Errorf("failed to create R2 service: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := r2Service.CreateBucket(ctx); err != nil {
		return fmt.Errorf("failed to create R2 bucket: %w", err)
	}

	log.Printf("R2 bucket %q configured", f.config.R2.BucketName)
	return nil
}
