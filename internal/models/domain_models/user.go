package domain_models

type User struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Image       string `json:"image,omitempty"`
	Token       string `json:"token,omitempty"`
}

// AsAttendee synthesizes the attendee record used when this user joins or
// hosts an activity.
func (u *User) AsAttendee() Attendee {
	image := u.Image
	if image == "" {
		image = DefaultAttendeeImage
	}
	return Attendee{
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Image:       image,
	}
}
