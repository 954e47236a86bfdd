package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Level        LevelRepository
	Project      ProjectRepository
	Assignment   AssignmentRepository
	Workload     WorkloadRepository
	Notification NotificationRepository
	Certificate  CertificateRepository
	Skill        SkillRepository
	Experience   ExperienceRepository
	AuditLog     AuditLogRepository
	Session      SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Level:        NewLevelRepository(db),
		Project:      NewProjectRepository(db),
		Assignment:   NewAssignmentRepository(db),
		Workload:     NewWorkloadRepository(db),
		Notification: NewNotificationRepository(db),
		Certificate:  NewCertificateRepository(db),
		Skill:        NewSkillRepository(db),
		Experience:   NewExperienceRepository(db),
		AuditLog:     NewAuditLogRepository(db),
		Session:      NewSessionRepository(db),
	}
}
