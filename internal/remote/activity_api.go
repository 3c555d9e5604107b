package remote

import (
	"context"
	"net/http"

	"reactivities/internal/models/domain_models"
)

// ActivityAPI is the remote activity service the client layer synchronizes
// against. Implementations may fail with transport or service errors; the
// stores decide what reaches the user.
type ActivityAPIInterface interface {
	List(ctx context.Context) ([]*domain_models.Activity, error)
	Get(ctx context.Context, id string) (*domain_models.Activity, error)
	Create(ctx context.Context, activity *domain_models.Activity) error
	Update(ctx context.Context, activity *domain_models.Activity) error
	Delete(ctx context.Context, id string) error
	Attend(ctx context.Context, id string) error
	Unattend(ctx context.Context, id string) error
}

type ActivityAPI struct {
	client *Client
}

func NewActivityAPI(client *Client) ActivityAPIInterface {
	return &ActivityAPI{client: client}
}

func (a *ActivityAPI) List(ctx context.Context) ([]*domain_models.Activity, error) {
	var activities []*domain_models.Activity
	if err := a.client.do(ctx, http.MethodGet, "/activities", nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (a *ActivityAPI) Get(ctx context.Context, id string) (*domain_models.Activity, error) {
	var activity domain_models.Activity
	if err := a.client.do(ctx, http.MethodGet, "/activities/"+id, nil, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (a *ActivityAPI) Create(ctx context.Context, activity *domain_models.Activity) error {
	return a.client.do(ctx, http.MethodPost, "/activities", activity, nil)
}

func (a *ActivityAPI) Update(ctx context.Context, activity *domain_models.Activity) error {
	return a.client.do(ctx, http.MethodPut, "/activities/"+activity.ID, activity, nil)
}

func (a *ActivityAPI) Delete(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodDelete, "/activities/"+id, nil, nil)
}

func (a *ActivityAPI) Attend(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodPost, "/activities/"+id+"/attend", nil, nil)
}

func (a *ActivityAPI) Unattend(ctx context.Context, id string) error {
	return a.client.do(ctx, http.MethodDelete, "/activities/"+id+"/attend", nil, nil)
}
