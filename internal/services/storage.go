package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type StorageService interface {
	SaveFile(file *multipart.FileHeader, ownerID, fileType string) (string, string, error)
	GetFilePath(ownerID, filename string) string
	DeleteFile(ownerID, filename string) error
	Cleanup(filePath string)
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
	maxSize    int64
}

func NewStorageService(uploadPath string, maxSize int64) StorageService {
	return &storageService{
		uploadPath: uploadPath,
		maxSize:    maxSize,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveFile stores an uploaded PDF under the owner's directory. Only PDF
// uploads up to the configured size are accepted.
func (s *storageService) SaveFile(file *multipart.FileHeader, ownerID, fileType string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return "", "", fmt.Errorf("invalid file extension: %s", ext)
	}

	if file.Size > s.maxSize {
		return "", "", fmt.Errorf("file too large: %d bytes exceeds maximum of %d bytes", file.Size, s.maxSize)
	}

	ownerDir := filepath.Join(s.uploadPath, ownerID)
	if err := os.MkdirAll(ownerDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create owner directory: %w", err)
	}

	uniqueFilename := fmt.Sprintf("%s_%s%s", fileType, uuid.New().String(), ext)
	filePath := filepath.Join(ownerDir, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

func (s *storageService) GetFilePath(ownerID, filename string) string {
	return filepath.Join(s.uploadPath, ownerID, filename)
}

func (s *storageService) DeleteFile(ownerID, filename string) error {
	filePath := s.GetFilePath(ownerID, filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Cleanup removes a request-scoped temporary file. It runs on every exit
// path of a generation request and must never fail the request itself.
func (s *storageService) Cleanup(filePath string) {
	if filePath == "" {
		return
	}
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️  File cleanup error for %s: %v", filePath, err)
	}
}
