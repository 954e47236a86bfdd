package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"gestion-talento/internal/config"
	"gestion-talento/internal/repository"
	"gestion-talento/internal/service/audit"
	"gestion-talento/internal/service/auth"
	"gestion-talento/internal/service/authz"
	"gestion-talento/internal/service/certificate"
	"gestion-talento/internal/service/dashboard"
	"gestion-talento/internal/service/email"
	"gestion-talento/internal/service/notification"
	"gestion-talento/internal/service/profile"
	"gestion-talento/internal/service/project"
	"gestion-talento/internal/service/retention"
	"gestion-talento/internal/service/sweep"
	"gestion-talento/internal/service/user"
	"gestion-talento/internal/service/workload"
)

type Services struct {
	Auth         auth.Service
	Authz        authz.Service
	User         user.Service
	Project      project.Service
	Workload     workload.Service
	Notification notification.Service
	Sweep        sweep.Service
	Retention    retention.Service
	Profile      profile.Service
	Certificate  certificate.Service
	Email        email.Service
	Audit        audit.Service
	Dashboard    dashboard.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	authzService := authz.NewService(repos.Level)
	notificationService := notification.NewService(repos.Notification)
	sweepService := sweep.NewService(repos.Project, repos.Assignment, repos.Notification, repos.User, emailService, cfg.DeadlineWindows)
	retentionService := retention.NewService(repos.Notification, cfg.RetentionDays)
	authService := auth.NewService(repos.User, repos.Session, emailService, sweepService, cfg)
	userService := user.NewService(repos.User, repos.Level, notificationService)
	projectService := project.NewService(repos.Project, repos.Assignment, repos.User)
	workloadService := workload.NewService(repos.User, repos.Assignment, repos.Workload)
	profileService := profile.NewService(repos.Skill, repos.Experience)
	certificateService := certificate.NewService(repos.Certificate, minioClient, cfg)
	auditService := audit.NewService(repos.AuditLog)
	dashboardService := dashboard.NewService(repos.User, repos.Project, repos.Workload, redis, cfg.DeadlineWindows)

	return &Services{
		Auth:         authService,
		Authz:        authzService,
		User:         userService,
		Project:      projectService,
		Workload:     workloadService,
		Notification: notificationService,
		Sweep:        sweepService,
		Retention:    retentionService,
		Profile:      profileService,
		Certificate:  certificateService,
		Email:        emailService,
		Audit:        auditService,
		Dashboard:    dashboardService,
	}
}
