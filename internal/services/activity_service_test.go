package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"reactivities/internal/models/domain_models"
	"reactivities/internal/repositories"
	"reactivities/pkg/utils"
)

func newActivityService() ActivityServiceInterface {
	return NewActivityService(repositories.NewActivityRepository())
}

func hostAttendee() domain_models.Attendee {
	return domain_models.Attendee{Username: "bob", DisplayName: "Bob"}
}

func TestCreateActivitySetsSingleHostAttendee(t *testing.T) {
	service := newActivityService()
	ctx := context.Background()

	activity := &domain_models.Activity{
		ID: "a1", Title: "Run", Date: time.Now(),
		Attendees: []domain_models.Attendee{{Username: "stowaway"}},
	}
	require.NoError(t, service.CreateActivity(ctx, activity, hostAttendee()))

	stored, err := service.GetActivity(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, stored.Attendees, 1)
	require.Equal(t, "bob", stored.Attendees[0].Username)
	require.True(t, stored.Attendees[0].IsHost)
}

func TestGetActivityMissingReturnsNotFound(t *testing.T) {
	service := newActivityService()

	_, err := service.GetActivity(context.Background(), "missing")
	require.ErrorIs(t, err, utils.ErrActivityNotFound)
}

func TestUpdateActivityKeepsAttendees(t *testing.T) {
	service := newActivityService()
	ctx := context.Background()

	require.NoError(t, service.CreateActivity(ctx, &domain_models.Activity{ID: "a1", Title: "Old"}, hostAttendee()))
	require.NoError(t, service.Attend(ctx, "a1", domain_models.Attendee{Username: "jane"}))

	update := &domain_models.Activity{ID: "a1", Title: "New"}
	require.NoError(t, service.UpdateActivity(ctx, update))

	stored, err := service.GetActivity(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, "New", stored.Title)
	require.Len(t, stored.Attendees, 2)
}

func TestUpdateActivityMissingReturnsNotFound(t *testing.T) {
	service := newActivityService()

	err := service.UpdateActivity(context.Background(), &domain_models.Activity{ID: "missing"})
	require.ErrorIs(t, err, utils.ErrActivityNotFound)
}

func TestDeleteActivityRemovesEntry(t *testing.T) {
	service := newActivityService()
	ctx := context.Background()

	require.NoError(t, service.CreateActivity(ctx, &domain_models.Activity{ID: "a1"}, hostAttendee()))
	require.NoError(t, service.DeleteActivity(ctx, "a1"))

	_, err := service.GetActivity(ctx, "a1")
	require.ErrorIs(t, err, utils.ErrActivityNotFound)
}

func TestAttendRejectsDuplicates(t *testing.T) {
	service := newActivityService()
	ctx := context.Background()

	require.NoError(t, service.CreateActivity(ctx, &domain_models.Activity{ID: "a1"}, hostAttendee()))
	require.NoError(t, service.Attend(ctx, "a1", domain_models.Attendee{Username: "jane"}))

	err := service.Attend(ctx, "a1", domain_models.Attendee{Username: "jane"})
	require.ErrorIs(t, err, utils.ErrAlreadyAttending)
}

func TestAttendNeverGrantsHost(t *testing.T) {
	service := newActivityService()
	ctx := context.Background()

	require.NoError(t, service.CreateActivity(ctx, &domain_models.Activity{ID: "a1"}, hostAttendee()))
	require.NoError(t, service.Attend(ctx, "a1", domain_models.Attendee{Username: "jane", IsHost: true}))

	stored, err := service.GetActivity(ctx, "a1")
	require.NoError(t, err)
	for _, attendee := range stored.Attendees {
		if attendee.Username == "jane" {
			require.False(t, attendee.IsHost)
		}
	}
}

func TestUnattendRemovesAttendee(t *testing.T) {
	service := newActivityService()
	ctx := context.Background()

	require.NoError(t, service.CreateActivity(ctx, &domain_models.Activity{ID: "a1"}, hostAttendee()))
	require.NoError(t, service.Attend(ctx, "a1", domain_models.Attendee{Username: "jane"}))
	require.NoError(t, service.Unattend(ctx, "a1", "jane"))

	stored, err := service.GetActivity(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, stored.Attendees, 1)
	require.False(t, stored.HasAttendee("jane"))
}

func TestUnattendRejectsHostAndStrangers(t *testing.T) {
	service := newActivityService()
	ctx := context.Background()

	require.NoError(t, service.CreateActivity(ctx, &domain_models.Activity{ID: "a1"}, hostAttendee()))

	require.ErrorIs(t, service.Unattend(ctx, "a1", "bob"), utils.ErrHostCannotLeave)
	require.ErrorIs(t, service.Unattend(ctx, "a1", "jane"), utils.ErrNotAttending)
}
