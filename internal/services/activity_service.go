package services

import (
	"context"
	"log"

	"reactivities/internal/models/domain_models"
	"reactivities/internal/repositories"
	"reactivities/pkg/utils"
)

type ActivityServiceInterface interface {
	ListActivities(ctx context.Context) ([]*domain_models.Activity, error)
	GetActivity(ctx context.Context, id string) (*domain_models.Activity, error)
	CreateActivity(ctx context.Context, activity *domain_models.Activity, host domain_models.Attendee) error
	UpdateActivity(ctx context.Context, activity *domain_models.Activity) error
	DeleteActivity(ctx context.Context, id string) error
	Attend(ctx context.Context, id string, attendee domain_models.Attendee) error
	Unattend(ctx context.Context, id string, username string) error
}

type ActivityService struct {
	activityRepo repositories.ActivityRepositoryInterface
}

func NewActivityService(activityRepo repositories.ActivityRepositoryInterface) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
	}
}

func (s *ActivityService) ListActivities(ctx context.Context) ([]*domain_models.Activity, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing activities: %v", err)
		return nil, err
	}
	return activities, nil
}

func (s *ActivityService) GetActivity(ctx context.Context, id string) (*domain_models.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching activity: %v", err)
		return nil, err
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	return activity, nil
}

// CreateActivity stores the entity with the creator as its only attendee,
// host flag set. Attendees supplied by the caller are ignored.
func (s *ActivityService) CreateActivity(ctx context.Context, activity *domain_models.Activity, host domain_models.Attendee) error {
	host.IsHost = true
	activity.Attendees = []domain_models.Attendee{host}

	if err := s.activityRepo.Insert(ctx, activity); err != nil {
		log.Printf("Error creating activity: %v", err)
		return err
	}
	return nil
}

// UpdateActivity replaces the descriptive fields but keeps the stored
// attendee list; membership changes only flow through Attend/Unattend.
func (s *ActivityService) UpdateActivity(ctx context.Context, activity *domain_models.Activity) error {
	existing, err := s.activityRepo.GetByID(ctx, activity.ID)
	if err != nil {
		log.Printf("Error fetching activity: %v", err)
		return err
	}
	if existing == nil {
		return utils.ErrActivityNotFound
	}

	activity.Attendees = existing.Attendees
	if err := s.activityRepo.Update(ctx, activity); err != nil {
		log.Printf("Error updating activity: %v", err)
		return err
	}
	return nil
}

func (s *ActivityService) DeleteActivity(ctx context.Context, id string) error {
	existing, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching activity: %v", err)
		return err
	}
	if existing == nil {
		return utils.ErrActivityNotFound
	}

	if err := s.activityRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting activity: %v", err)
		return err
	}
	return nil
}

func (s *ActivityService) Attend(ctx context.Context, id string, attendee domain_models.Attendee) error {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching activity: %v", err)
		return err
	}
	if activity == nil {
		return utils.ErrActivityNotFound
	}
	if activity.HasAttendee(attendee.Username) {
		return utils.ErrAlreadyAttending
	}

	attendee.IsHost = false
	activity.Attendees = append(activity.Attendees, attendee)

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		log.Printf("Error updating activity: %v", err)
		return err
	}
	return nil
}

func (s *ActivityService) Unattend(ctx context.Context, id string, username string) error {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching activity: %v", err)
		return err
	}
	if activity == nil {
		return utils.ErrActivityNotFound
	}
	if !activity.HasAttendee(username) {
		return utils.ErrNotAttending
	}

	kept := make([]domain_models.Attendee, 0, len(activity.Attendees))
	for _, attendee := range activity.Attendees {
		if attendee.Username == username {
			if attendee.IsHost {
				return utils.ErrHostCannotLeave
			}
			continue
		}
		kept = append(kept, attendee)
	}
	activity.Attendees = kept

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		log.Printf("Error updating activity: %v", err)
		return err
	}
	return nil
}
