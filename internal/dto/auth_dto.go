package dto

type LogoutResponse struct {
	LoggedOut bool `json:"logged_out"`
}
