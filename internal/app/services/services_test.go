package services_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/db"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/filestorage"
)

type fixture struct {
	repos    *repositories.Repositories
	storage  *filestorage.LocalStorage
	services *services.Services
	dir      string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gormDB, err := db.NewMemorySQLite()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	dir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(dir, false)
	require.NoError(t, err)

	repos := repositories.NewGormRepositories(gormDB)
	return &fixture{
		repos:    repos,
		storage:  storage,
		services: services.NewServices(repos, storage, bcrypt.MinCost, zerolog.Nop()),
		dir:      dir,
	}
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	authService := f.services.AuthService

	user, err := authService.Register(ctx, &dto.RegisterRequest{Name: "olena", Password: "secret", Role: "teacher"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleTeacher, user.RoleType)
	assert.NotEqual(t, "secret", user.Password)

	stored, err := f.repos.UserRepository.GetByName(ctx, "olena")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")))

	loggedIn, err := authService.Login(ctx, &dto.LoginRequest{Name: "olena", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	resolved, err := authService.ResolveUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "olena", resolved.Name)
}

func TestAuthService_RegisterDuplicateLeavesSingleRow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.services.AuthService.Register(ctx, &dto.RegisterRequest{Name: "ivan", Password: "a", Role: "student"})
	require.NoError(t, err)

	_, err = f.services.AuthService.Register(ctx, &dto.RegisterRequest{Name: "ivan", Password: "b", Role: "parent"})
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)

	users, err := f.repos.UserRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleStudent, users[0].RoleType)
}

func TestAuthService_RegisterRequiresNameAndPassword(t *testing.T) {
	f := newFixture(t)

	for _, req := range []dto.RegisterRequest{{Password: "x"}, {Name: "x"}} {
		_, err := f.services.AuthService.Register(context.Background(), &req)
		assert.ErrorIs(t, err, apperrors.ErrCredentialsRequired)
	}
}

func TestAuthService_KeepsNameAndRoleAsSubmitted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.services.AuthService.Register(ctx, &dto.RegisterRequest{Name: "alice", Password: "x", Role: "teacher"})
	require.NoError(t, err)

	padded, err := f.services.AuthService.Register(ctx, &dto.RegisterRequest{Name: " alice ", Password: "y", Role: "teacher "})
	require.NoError(t, err)
	assert.Equal(t, " alice ", padded.Name)
	assert.Equal(t, models.RoleType("teacher "), padded.RoleType)
	assert.Equal(t, "WELCOME!", padded.RoleType.Greeting())

	_, err = f.services.AuthService.Login(ctx, &dto.LoginRequest{Name: "alice", Password: "y"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	user, err := f.services.AuthService.Login(ctx, &dto.LoginRequest{Name: " alice ", Password: "y"})
	require.NoError(t, err)
	assert.Equal(t, padded.ID, user.ID)
}

func TestAuthService_RegisterAllowsEmptyRole(t *testing.T) {
	f := newFixture(t)

	user, err := f.services.AuthService.Register(context.Background(), &dto.RegisterRequest{Name: "guest", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "WELCOME!", user.RoleType.Greeting())
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.services.AuthService.Register(ctx, &dto.RegisterRequest{Name: "maria", Password: "right", Role: "parent"})
	require.NoError(t, err)

	cases := []dto.LoginRequest{
		{Name: "maria", Password: "wrong"},
		{Name: "nobody", Password: "right"},
		{Name: "", Password: ""},
	}
	for _, req := range cases {
		_, err := f.services.AuthService.Login(ctx, &req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, req.Name)
	}
}

func TestAuthService_ResolveUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.AuthService.ResolveUser(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestEventService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	eventService := newFixture(t).services.EventService

	events, err := eventService.ListEvents(ctx)
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)

	created, err := eventService.CreateEvent(ctx, &dto.EventRequest{Title: "Exam", Date: "2025-06-01 09:00:00"})
	require.NoError(t, err)
	assert.Equal(t, "Exam", created.Title)
	assert.Equal(t, "2025-06-01 09:00:00", created.Date)

	updated, err := eventService.UpdateEvent(ctx, created.ID, &dto.EventRequest{Title: "Final exam", Date: "2025-06-02 10:30:00"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "2025-06-02 10:30:00", updated.Date)

	got, err := eventService.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)

	require.NoError(t, eventService.DeleteEvent(ctx, created.ID))
	assert.ErrorIs(t, eventService.DeleteEvent(ctx, created.ID), apperrors.ErrEventNotFound)

	events, err = eventService.ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventService_StoresTitleVerbatim(t *testing.T) {
	ctx := context.Background()
	eventService := newFixture(t).services.EventService

	for _, title := range []string{"  Exam  ", "   ", strings.Repeat("long ", 40)} {
		created, err := eventService.CreateEvent(ctx, &dto.EventRequest{Title: title, Date: "2025-06-01 09:00:00"})
		require.NoError(t, err)
		assert.Equal(t, title, created.Title)

		got, err := eventService.GetEvent(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, title, got.Title)
	}
}

func TestEventService_RejectsBadInput(t *testing.T) {
	ctx := context.Background()
	eventService := newFixture(t).services.EventService

	_, err := eventService.CreateEvent(ctx, &dto.EventRequest{Title: "Exam", Date: "01.06.2025"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEventDate)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = eventService.CreateEvent(ctx, &dto.EventRequest{Title: "", Date: "2025-06-01 09:00:00"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = eventService.UpdateEvent(ctx, 42, &dto.EventRequest{Title: "x", Date: "2025-06-01 09:00:00"})
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestFileService_UploadDownloadList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fileService := f.services.FileService

	uploaded, err := fileService.Upload(ctx, fileHeader(t, "Timetable 2025.txt", []byte("mon: math")))
	require.NoError(t, err)
	assert.NotZero(t, uploaded.ID)
	assert.Equal(t, "timetable-2025.txt", uploaded.FileName)
	assert.EqualValues(t, 9, uploaded.FileSize)
	assert.Equal(t, dto.DownloadPath(uploaded.ID), uploaded.DownloadURL)

	file, path, err := fileService.Download(ctx, uploaded.ID)
	require.NoError(t, err)
	assert.Equal(t, "timetable-2025.txt", file.FileName)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mon: math", string(content))

	files, err := fileService.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, uploaded.ID, files[0].ID)
}

func TestFileService_DownloadErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, _, err := f.services.FileService.Download(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)

	uploaded, err := f.services.FileService.Upload(ctx, fileHeader(t, "gone.txt", []byte("bye")))
	require.NoError(t, err)
	file, err := f.repos.FileRepository.GetByID(ctx, uploaded.ID)
	require.NoError(t, err)
	require.NoError(t, f.storage.Delete(file.StoredName))

	_, _, err = f.services.FileService.Download(ctx, uploaded.ID)
	assert.ErrorIs(t, err, apperrors.ErrBlobMissing)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestFileService_UploadRejectsUnusableName(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.FileService.Upload(context.Background(), fileHeader(t, "???", []byte("x")))
	assert.ErrorIs(t, err, apperrors.ErrInvalidFilename)

	files, err := f.services.FileService.ListFiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
}

type failingFileRepo struct {
	repositories.FileRepository
}

func (failingFileRepo) Create(context.Context, *models.File) error {
	return errors.New("disk quota exceeded")
}

func TestFileService_UploadRemovesBlobWhenRowFails(t *testing.T) {
	dir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(dir, false)
	require.NoError(t, err)

	fileService := services.NewFileService(failingFileRepo{}, storage, zerolog.Nop())
	_, err = fileService.Upload(context.Background(), fileHeader(t, "notes.txt", []byte("x")))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, name := range []string{"a", "b"} {
		_, err := f.services.AuthService.Register(ctx, &dto.RegisterRequest{Name: name, Password: "x"})
		require.NoError(t, err)
	}

	users, err := f.services.UserService.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].Name)
	assert.Equal(t, "b", users[1].Name)
}
