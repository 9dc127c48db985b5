package services

import (
	"github.com/rs/zerolog"

	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/pkg/filestorage"
	"github.com/yigit/schoolportal/internal/pkg/logger"
)

// Services holds the application services
type Services struct {
	AuthService  AuthService
	EventService EventService
	FileService  FileService
	UserService  UserService
}

// NewServices wires the services over the repositories and file storage
func NewServices(repos *repositories.Repositories, storage filestorage.FileStorage, bcryptCost int, lgr zerolog.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(repos.UserRepository, bcryptCost, logger.WithComponent(lgr, "auth_service")),
		EventService: NewEventService(repos.EventRepository, logger.WithComponent(lgr, "event_service")),
		FileService:  NewFileService(repos.FileRepository, storage, logger.WithComponent(lgr, "file_service")),
		UserService:  NewUserService(repos.UserRepository),
	}
}
