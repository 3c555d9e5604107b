package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reactivities/internal/models/domain_models"
	"reactivities/internal/services"
	"reactivities/pkg/utils"
)

type ActivitiesController struct {
	activityService services.ActivityServiceInterface
}

func NewActivitiesController(activityService services.ActivityServiceInterface) *ActivitiesController {
	return &ActivitiesController{
		activityService: activityService,
	}
}

func (a *ActivitiesController) ListActivities(c *gin.Context) {
	activities, err := a.activityService.ListActivities(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

func (a *ActivitiesController) GetActivity(c *gin.Context) {
	activityID := c.Param("id")
	if activityID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Activity ID is required")
		return
	}

	activity, err := a.activityService.GetActivity(c.Request.Context(), activityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity fetched successfully")
}

func (a *ActivitiesController) CreateActivity(c *gin.Context) {
	var activity domain_models.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}

	host := attendeeFromContext(c)
	if err := a.activityService.CreateActivity(c.Request.Context(), &activity, host); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity created successfully")
}

func (a *ActivitiesController) UpdateActivity(c *gin.Context) {
	var activity domain_models.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	activity.ID = c.Param("id")

	if err := a.activityService.UpdateActivity(c.Request.Context(), &activity); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

func (a *ActivitiesController) DeleteActivity(c *gin.Context) {
	if err := a.activityService.DeleteActivity(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity deleted successfully")
}

func (a *ActivitiesController) Attend(c *gin.Context) {
	attendee := attendeeFromContext(c)
	if err := a.activityService.Attend(c.Request.Context(), c.Param("id"), attendee); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Attendance recorded")
}

func (a *ActivitiesController) Unattend(c *gin.Context) {
	username := c.GetString("username")
	if err := a.activityService.Unattend(c.Request.Context(), c.Param("id"), username); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Attendance canceled")
}

// attendeeFromContext builds the attendee record for the authenticated user
// the JWT middleware stashed on the context.
func attendeeFromContext(c *gin.Context) domain_models.Attendee {
	user := &domain_models.User{
		Username:    c.GetString("username"),
		DisplayName: c.GetString("display_name"),
	}
	return user.AsAttendee()
}
