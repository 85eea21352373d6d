package cmd

import (
	"organizer/internal/handlers"
	"organizer/internal/services"
)

type Server struct {
	AuthService    services.AuthService
	AuthHandler    *handlers.AuthHandler
	BoxService     services.BoxService
	BoxHandler     *handlers.BoxHandler
	PhotoService   services.PhotoService
	PhotoHandler   *handlers.PhotoHandler
	ScanHandler    *handlers.ScanHandler
	CodeService    services.CodeService
	QRService      services.QRService
	LookupService  services.LookupService
	LogService     services.LogService
	JanitorService *services.Janitor
}

func NewServer(
	authService services.AuthService,
	authHandler *handlers.AuthHandler,
	boxService services.BoxService,
	boxHandler *handlers.BoxHandler,
	photoService services.PhotoService,
	photoHandler *handlers.PhotoHandler,
	scanHandler *handlers.ScanHandler,
	codeService services.CodeService,
	qrService services.QRService,
	lookupService services.LookupService,
	logService services.LogService,
	janitorService *services.Janitor,
) *Server {
	return &Server{
		AuthService:    authService,
		AuthHandler:    authHandler,
		BoxService:     boxService,
		BoxHandler:     boxHandler,
		PhotoService:   photoService,
		PhotoHandler:   photoHandler,
		ScanHandler:    scanHandler,
		CodeService:    codeService,
		QRService:      qrService,
		LookupService:  lookupService,
		LogService:     logService,
		JanitorService: janitorService,
	}
}
