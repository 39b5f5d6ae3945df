package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"careerconnect/internal/model"
	"careerconnect/internal/repository"
	"careerconnect/internal/utils"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrResumeNotFound    = errors.New("no resume on file")
	ErrInvalidFileFormat = errors.New("invalid file format. only .pdf, .doc, .docx, .txt are allowed")
	ErrFileSizeExceeded  = errors.New("file size exceeds limit")
	ErrEmptyFilename     = errors.New("uploaded file has no usable filename")
)

const MaxResumeSize = 5 * 1024 * 1024 // 5MB

// ProfileService covers the jobseeker-facing account operations: the free-text
// profile used for match scanning and the single on-file resume.
type ProfileService interface {
	GetUser(ctx context.Context, id int) (*model.User, error)
	UpdateProfile(ctx context.Context, id int, profile string) error
	// SubmitApplication stores the uploaded resume and overwrites the user's
	// resume filename. A user has exactly one resume on file; a later upload
	// replaces the earlier one.
	SubmitApplication(ctx context.Context, userID int, file *multipart.FileHeader) (string, error)
	// ResumePath returns the on-disk path and stored filename of the user's resume
	ResumePath(ctx context.Context, userID int) (string, string, error)
}

type profileService struct {
	userRepo   repository.UserRepository
	uploadsDir string
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo repository.UserRepository, uploadsDir string) ProfileService {
	return &profileService{userRepo: userRepo, uploadsDir: uploadsDir}
}

// GetUser loads a user by id
func (s *profileService) GetUser(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile overwrites the user's profile text
func (s *profileService) UpdateProfile(ctx context.Context, id int, profile string) error {
	if err := s.userRepo.UpdateProfile(ctx, id, profile); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func (s *profileService) SubmitApplication(ctx context.Context, userID int, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxResumeSize {
		return "", ErrFileSizeExceeded
	}

	fileName := utils.SanitizeFilename(fileHeader.Filename)
	if fileName == "" {
		return "", ErrEmptyFilename
	}

	ext := filepath.Ext(fileName)
	allowedExts := map[string]bool{".pdf": true, ".doc": true, ".docx": true, ".txt": true}
	if !allowedExts[strings.ToLower(ext)] {
		return "", ErrInvalidFileFormat
	}

	// Per-user subdirectory, so two users uploading the same filename can
	// never overwrite each other.
	userUploadsDir := filepath.Join(s.uploadsDir, "resumes", strconv.Itoa(userID))
	if err := os.MkdirAll(userUploadsDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filePath := filepath.Join(userUploadsDir, fileName)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file on server: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	if err := s.userRepo.UpdateResume(ctx, userID, fileName); err != nil {
		os.Remove(filePath) // Attempt to clean up
		return "", fmt.Errorf("failed to update user with resume filename: %w", err)
	}

	return fileName, nil
}

func (s *profileService) ResumePath(ctx context.Context, userID int) (string, string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to load user for resume retrieval: %w", err)
	}
	if user == nil {
		return "", "", ErrUserNotFound
	}
	if user.Resume == nil || *user.Resume == "" {
		return "", "", ErrResumeNotFound
	}

	fileName := filepath.Base(*user.Resume)
	fullPath := filepath.Join(s.uploadsDir, "resumes", strconv.Itoa(userID), fileName)
	return fullPath, fileName, nil
}
