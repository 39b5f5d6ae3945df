package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"careerconnect/internal/model"
	"careerconnect/internal/repository/mocks"
	"careerconnect/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a real multipart.FileHeader the way gin would hand it
// to the service
func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["resume"][0]
}

func TestProfileService_SubmitApplication_SavesAndRecordsFilename(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	uploadsDir := t.TempDir()
	profileService := service.NewProfileService(mockUserRepo, uploadsDir)
	ctx := context.Background()

	mockUserRepo.On("UpdateResume", ctx, 7, "my_resume.pdf").Return(nil).Once()

	filename, err := profileService.SubmitApplication(ctx, 7, makeFileHeader(t, "my resume.pdf", "cv body"))

	require.NoError(t, err)
	assert.Equal(t, "my_resume.pdf", filename)

	saved, err := os.ReadFile(filepath.Join(uploadsDir, "resumes", "7", "my_resume.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "cv body", string(saved))
	mockUserRepo.AssertExpectations(t)
}

// A second upload by the same user overwrites the stored file rather than
// keeping both.
func TestProfileService_SubmitApplication_SecondUploadOverwrites(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	uploadsDir := t.TempDir()
	profileService := service.NewProfileService(mockUserRepo, uploadsDir)
	ctx := context.Background()

	mockUserRepo.On("UpdateResume", ctx, 7, "cv.pdf").Return(nil).Twice()

	_, err := profileService.SubmitApplication(ctx, 7, makeFileHeader(t, "cv.pdf", "first"))
	require.NoError(t, err)
	_, err = profileService.SubmitApplication(ctx, 7, makeFileHeader(t, "cv.pdf", "second"))
	require.NoError(t, err)

	saved, err := os.ReadFile(filepath.Join(uploadsDir, "resumes", "7", "cv.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(saved))
	mockUserRepo.AssertExpectations(t)
}

// Same filename from two different users lands in two different directories.
func TestProfileService_SubmitApplication_PerUserNamespacing(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	uploadsDir := t.TempDir()
	profileService := service.NewProfileService(mockUserRepo, uploadsDir)
	ctx := context.Background()

	mockUserRepo.On("UpdateResume", ctx, mock.AnythingOfType("int"), "cv.pdf").Return(nil).Twice()

	_, err := profileService.SubmitApplication(ctx, 1, makeFileHeader(t, "cv.pdf", "from user one"))
	require.NoError(t, err)
	_, err = profileService.SubmitApplication(ctx, 2, makeFileHeader(t, "cv.pdf", "from user two"))
	require.NoError(t, err)

	one, err := os.ReadFile(filepath.Join(uploadsDir, "resumes", "1", "cv.pdf"))
	require.NoError(t, err)
	two, err := os.ReadFile(filepath.Join(uploadsDir, "resumes", "2", "cv.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "from user one", string(one))
	assert.Equal(t, "from user two", string(two))
}

func TestProfileService_SubmitApplication_RejectsBadExtension(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	profileService := service.NewProfileService(mockUserRepo, t.TempDir())

	_, err := profileService.SubmitApplication(context.Background(), 7, makeFileHeader(t, "malware.exe", "nope"))

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidFileFormat)
	mockUserRepo.AssertNotCalled(t, "UpdateResume", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_SubmitApplication_StripsPathComponents(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	uploadsDir := t.TempDir()
	profileService := service.NewProfileService(mockUserRepo, uploadsDir)
	ctx := context.Background()

	mockUserRepo.On("UpdateResume", ctx, 7, "cv.pdf").Return(nil).Once()

	filename, err := profileService.SubmitApplication(ctx, 7, makeFileHeader(t, "../../cv.pdf", "body"))

	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", filename)
	_, err = os.Stat(filepath.Join(uploadsDir, "resumes", "7", "cv.pdf"))
	assert.NoError(t, err)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	profileService := service.NewProfileService(mockUserRepo, t.TempDir())
	ctx := context.Background()

	mockUserRepo.On("UpdateProfile", ctx, 3, "experienced engineer").Return(nil).Once()

	err := profileService.UpdateProfile(ctx, 3, "experienced engineer")

	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}

func TestProfileService_ResumePath(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	uploadsDir := t.TempDir()
	profileService := service.NewProfileService(mockUserRepo, uploadsDir)
	ctx := context.Background()

	resume := "cv.pdf"
	mockUserRepo.On("FindByID", ctx, 7).Return(&model.User{ID: 7, Resume: &resume}, nil).Once()

	path, name, err := profileService.ResumePath(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", name)
	assert.Equal(t, filepath.Join(uploadsDir, "resumes", "7", "cv.pdf"), path)
}

func TestProfileService_ResumePath_NoResume(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	profileService := service.NewProfileService(mockUserRepo, t.TempDir())
	ctx := context.Background()

	mockUserRepo.On("FindByID", ctx, 7).Return(&model.User{ID: 7}, nil).Once()

	_, _, err := profileService.ResumePath(ctx, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrResumeNotFound)
}

func TestProfileService_SubmitApplication_TooLarge(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	profileService := service.NewProfileService(mockUserRepo, t.TempDir())

	big := strings.Repeat("x", service.MaxResumeSize+1)
	_, err := profileService.SubmitApplication(context.Background(), 7, makeFileHeader(t, "cv.pdf", big))

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrFileSizeExceeded)
}
