package request

type LoginRequest struct {
	AccessKey string `json:"access_key" binding:"required"`
}
