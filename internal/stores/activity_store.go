package stores

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"reactivities/internal/models/domain_models"
	"reactivities/internal/models/response_models"
	"reactivities/internal/remote"
	"reactivities/pkg/memstore"
)

// CurrentUserProvider supplies the acting user. A non-nil user is a
// precondition of CreateActivity, AttendActivity and CancelAttendance;
// callers that violate it get the resulting panic, not a recovered error.
type CurrentUserProvider interface {
	CurrentUser() *domain_models.User
}

// ActivityStore orchestrates the activity registry against the remote
// service. Remote failures never escape its methods: create/attend/cancel
// report through the Notifier, everything else is logged diagnostically and
// the registry is left untouched.
type ActivityStoreInterface interface {
	LoadActivities(ctx context.Context)
	LoadActivity(ctx context.Context, id string) *domain_models.Activity
	CreateActivity(ctx context.Context, activity *domain_models.Activity)
	EditActivity(ctx context.Context, activity *domain_models.Activity)
	DeleteActivity(ctx context.Context, id string, target string)
	AttendActivity(ctx context.Context)
	CancelAttendance(ctx context.Context)

	SelectedActivity() *domain_models.Activity
	ClearActivity()
	ActivitiesByDate() []response_models.ActivityGroup

	IsInitialLoading() bool
	IsSubmitting() bool
	IsLoading() bool
	Target() string

	Subscribe(fn func()) (cancel func())
}

type ActivityStore struct {
	registry memstore.ActivityRegistry
	api      remote.ActivityAPIInterface
	users    CurrentUserProvider
	nav      Navigator
	notifier Notifier

	hub   *signalHub
	state *operationState

	mu       sync.RWMutex
	activity *domain_models.Activity
}

func NewActivityStore(
	registry memstore.ActivityRegistry,
	api remote.ActivityAPIInterface,
	users CurrentUserProvider,
	nav Navigator,
	notifier Notifier,
) ActivityStoreInterface {
	hub := newSignalHub()
	return &ActivityStore{
		registry: registry,
		api:      api,
		users:    users,
		nav:      nav,
		notifier: notifier,
		hub:      hub,
		state:    newOperationState(hub.publish),
	}
}

func (s *ActivityStore) LoadActivities(ctx context.Context) {
	s.state.setInitialLoading(true)
	defer s.state.setInitialLoading(false)

	activities, err := s.api.List(ctx)
	if err != nil {
		log.Printf("Error loading activities: %v", err)
		return
	}

	user := s.users.CurrentUser()
	for _, activity := range activities {
		deriveSessionFlags(activity, user)
		s.registry.Upsert(activity)
	}
	s.hub.publish()
}

// LoadActivity returns the activity for id, fetching it at most once per
// session: a registry hit short-circuits with no remote call. A nil result
// means the load failed, not an empty activity.
func (s *ActivityStore) LoadActivity(ctx context.Context, id string) *domain_models.Activity {
	if activity := s.registry.Get(id); activity != nil {
		s.selectActivity(activity)
		return activity
	}

	s.state.setInitialLoading(true)
	defer s.state.setInitialLoading(false)

	activity, err := s.api.Get(ctx, id)
	if err != nil {
		log.Printf("Error loading activity %s: %v", id, err)
		return nil
	}

	deriveSessionFlags(activity, s.users.CurrentUser())
	s.registry.Upsert(activity)
	s.selectActivity(activity)
	return activity
}

// CreateActivity submits the entity, assigning a fresh id when the caller
// left it empty. On success the current user becomes the sole attendee with
// the host flag set; whatever attendees the input carried are discarded.
func (s *ActivityStore) CreateActivity(ctx context.Context, activity *domain_models.Activity) {
	s.state.setSubmitting(true)
	defer s.state.setSubmitting(false)

	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}

	if err := s.api.Create(ctx, activity); err != nil {
		log.Printf("Error creating activity: %v", err)
		s.notifier.Error("Problem submitting data")
		return
	}

	attendee := s.users.CurrentUser().AsAttendee()
	attendee.IsHost = true
	activity.Attendees = []domain_models.Attendee{attendee}
	activity.IsHost = true
	activity.IsGoing = true
	s.registry.Upsert(activity)
	s.hub.publish()

	s.nav.Push("/activities/" + activity.ID)
}

func (s *ActivityStore) EditActivity(ctx context.Context, activity *domain_models.Activity) {
	s.state.setSubmitting(true)
	defer s.state.setSubmitting(false)

	if err := s.api.Update(ctx, activity); err != nil {
		log.Printf("Error editing activity %s: %v", activity.ID, err)
		return
	}

	s.registry.Upsert(activity)
	s.selectActivity(activity)

	s.nav.Push("/activities/" + activity.ID)
}

// DeleteActivity records target, the name of the control that triggered the
// delete, so the presentation layer can spin only that control.
func (s *ActivityStore) DeleteActivity(ctx context.Context, id string, target string) {
	s.state.setSubmitting(true)
	s.state.setTarget(target)
	defer func() {
		s.state.setSubmitting(false)
		s.state.setTarget("")
	}()

	if err := s.api.Delete(ctx, id); err != nil {
		log.Printf("Error deleting activity %s: %v", id, err)
		return
	}

	s.registry.Remove(id)
	s.hub.publish()
}

// AttendActivity joins the current user to the selected activity.
// Precondition: an activity is selected and a user is logged in.
func (s *ActivityStore) AttendActivity(ctx context.Context) {
	attendee := s.users.CurrentUser().AsAttendee()

	s.state.setLoading(true)
	defer s.state.setLoading(false)

	activity := s.SelectedActivity()
	if err := s.api.Attend(ctx, activity.ID); err != nil {
		log.Printf("Error attending activity %s: %v", activity.ID, err)
		s.notifier.Error("Problem signing up to activity")
		return
	}

	s.mu.Lock()
	activity.Attendees = append(activity.Attendees, attendee)
	activity.IsGoing = true
	s.mu.Unlock()

	s.registry.Upsert(activity)
	s.hub.publish()
}

// CancelAttendance is the mirror of AttendActivity: it removes the current
// user's attendee record from the selected activity by username.
func (s *ActivityStore) CancelAttendance(ctx context.Context) {
	user := s.users.CurrentUser()

	s.state.setLoading(true)
	defer s.state.setLoading(false)

	activity := s.SelectedActivity()
	if err := s.api.Unattend(ctx, activity.ID); err != nil {
		log.Printf("Error canceling attendance on %s: %v", activity.ID, err)
		s.notifier.Error("Problem canceling attendance")
		return
	}

	s.mu.Lock()
	kept := activity.Attendees[:0]
	for _, attendee := range activity.Attendees {
		if attendee.Username != user.Username {
			kept = append(kept, attendee)
		}
	}
	activity.Attendees = kept
	activity.IsGoing = false
	s.mu.Unlock()

	s.registry.Upsert(activity)
	s.hub.publish()
}

func (s *ActivityStore) SelectedActivity() *domain_models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activity
}

func (s *ActivityStore) ClearActivity() {
	s.mu.Lock()
	s.activity = nil
	s.mu.Unlock()
	s.hub.publish()
}

// ActivitiesByDate computes the date-grouped view from the live registry
// contents on every call.
func (s *ActivityStore) ActivitiesByDate() []response_models.ActivityGroup {
	return GroupActivitiesByDate(s.registry.ListAll())
}

func (s *ActivityStore) IsInitialLoading() bool { return s.state.InitialLoading() }
func (s *ActivityStore) IsSubmitting() bool     { return s.state.Submitting() }
func (s *ActivityStore) IsLoading() bool        { return s.state.Loading() }
func (s *ActivityStore) Target() string         { return s.state.Target() }

func (s *ActivityStore) Subscribe(fn func()) func() {
	return s.hub.subscribe(fn)
}

func (s *ActivityStore) selectActivity(activity *domain_models.Activity) {
	s.mu.Lock()
	s.activity = activity
	s.mu.Unlock()
	s.hub.publish()
}

// deriveSessionFlags recomputes the session-local IsGoing/IsHost flags for
// an activity relative to user. A nil user clears both.
func deriveSessionFlags(activity *domain_models.Activity, user *domain_models.User) {
	activity.IsGoing = false
	activity.IsHost = false
	if user == nil {
		return
	}
	for _, attendee := range activity.Attendees {
		if attendee.Username != user.Username {
			continue
		}
		activity.IsGoing = true
		if attendee.IsHost {
			activity.IsHost = true
		}
	}
}
