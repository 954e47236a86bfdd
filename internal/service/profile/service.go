// Package profile covers the plain-CRUD side of an employee profile:
// skills and experience entries. All operations are owner-scoped.
package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/repository"
)

type Service interface {
	AddSkill(ctx context.Context, userID uuid.UUID, input domain.SkillInput) (*domain.Skill, error)
	UpdateSkill(ctx context.Context, userID, skillID uuid.UUID, input domain.SkillInput) (*domain.Skill, error)
	ListSkills(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error)
	DeleteSkill(ctx context.Context, userID, skillID uuid.UUID) error

	AddExperience(ctx context.Context, userID uuid.UUID, input domain.ExperienceInput) (*domain.ExperienceEntry, error)
	UpdateExperience(ctx context.Context, userID, entryID uuid.UUID, input domain.ExperienceInput) (*domain.ExperienceEntry, error)
	ListExperience(ctx context.Context, userID uuid.UUID) ([]domain.ExperienceEntry, error)
	DeleteExperience(ctx context.Context, userID, entryID uuid.UUID) error
}

type service struct {
	skillRepo      repository.SkillRepository
	experienceRepo repository.ExperienceRepository
}

func NewService(skillRepo repository.SkillRepository, experienceRepo repository.ExperienceRepository) Service {
	return &service{
		skillRepo:      skillRepo,
		experienceRepo: experienceRepo,
	}
}

func (s *service) AddSkill(ctx context.Context, userID uuid.UUID, input domain.SkillInput) (*domain.Skill, error) {
	if input.Proficiency < 1 || input.Proficiency > 5 {
		return nil, fmt.Errorf("proficiency must be 1..5: %w", domain.ErrInvalidArgument)
	}

	skill := &domain.Skill{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        input.Name,
		Proficiency: input.Proficiency,
		Years:       input.Years,
	}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *service) UpdateSkill(ctx context.Context, userID, skillID uuid.UUID, input domain.SkillInput) (*domain.Skill, error) {
	skill, err := s.ownedSkill(ctx, userID, skillID)
	if err != nil {
		return nil, err
	}
	if input.Proficiency < 1 || input.Proficiency > 5 {
		return nil, fmt.Errorf("proficiency must be 1..5: %w", domain.ErrInvalidArgument)
	}

	skill.Name = input.Name
	skill.Proficiency = input.Proficiency
	skill.Years = input.Years
	if err := s.skillRepo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *service) ListSkills(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	return s.skillRepo.ListByUser(ctx, userID)
}

func (s *service) DeleteSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	if _, err := s.ownedSkill(ctx, userID, skillID); err != nil {
		return err
	}
	return s.skillRepo.Delete(ctx, skillID)
}

func (s *service) AddExperience(ctx context.Context, userID uuid.UUID, input domain.ExperienceInput) (*domain.ExperienceEntry, error) {
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("end date before start date: %w", domain.ErrInvalidArgument)
	}

	entry := &domain.ExperienceEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Company:   input.Company,
		Title:     input.Title,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Summary:   input.Summary,
	}
	if err := s.experienceRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) UpdateExperience(ctx context.Context, userID, entryID uuid.UUID, input domain.ExperienceInput) (*domain.ExperienceEntry, error) {
	entry, err := s.ownedExperience(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("end date before start date: %w", domain.ErrInvalidArgument)
	}

	entry.Company = input.Company
	entry.Title = input.Title
	entry.StartDate = input.StartDate
	entry.EndDate = input.EndDate
	entry.Summary = input.Summary
	if err := s.experienceRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) ListExperience(ctx context.Context, userID uuid.UUID) ([]domain.ExperienceEntry, error) {
	return s.experienceRepo.ListByUser(ctx, userID)
}

func (s *service) DeleteExperience(ctx context.Context, userID, entryID uuid.UUID) error {
	if _, err := s.ownedExperience(ctx, userID, entryID); err != nil {
		return err
	}
	return s.experienceRepo.Delete(ctx, entryID)
}

func (s *service) ownedSkill(ctx context.Context, userID, skillID uuid.UUID) (*domain.Skill, error) {
	skill, err := s.skillRepo.GetByID(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, fmt.Errorf("skill %s: %w", skillID, domain.ErrNotFound)
	}
	if skill.UserID != userID {
		return nil, fmt.Errorf("skill %s belongs to another user: %w", skillID, domain.ErrForbidden)
	}
	return skill, nil
}

func (s *service) ownedExperience(ctx context.Context, userID, entryID uuid.UUID) (*domain.ExperienceEntry, error) {
	entry, err := s.experienceRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("experience entry %s: %w", entryID, domain.ErrNotFound)
	}
	if entry.UserID != userID {
		return nil, fmt.Errorf("experience entry %s belongs to another user: %w", entryID, domain.ErrForbidden)
	}
	return entry, nil
}
