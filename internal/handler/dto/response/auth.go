package response

type LoginResponse struct {
	AccessToken string              `json:"access_token"`
	Participant ParticipantResponse `json:"participant"`
}
