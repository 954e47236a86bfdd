package handler

import "gestion-talento/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Project      *ProjectHandler
	Workload     *WorkloadHandler
	Notification *NotificationHandler
	Profile      *ProfileHandler
	Certificate  *CertificateHandler
	Engine       *EngineHandler
	Dashboard    *DashboardHandler
	Audit        *AuditHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Project:      NewProjectHandler(services.Project),
		Workload:     NewWorkloadHandler(services.Workload),
		Notification: NewNotificationHandler(services.Notification),
		Profile:      NewProfileHandler(services.Profile),
		Certificate:  NewCertificateHandler(services.Certificate),
		Engine:       NewEngineHandler(services.Sweep, services.Retention, services.Audit),
		Dashboard:    NewDashboardHandler(services.Dashboard),
		Audit:        NewAuditHandler(services.Audit),
	}
}
