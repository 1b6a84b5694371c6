package request

type UpdateWishesRequest struct {
	Wishes     string `json:"wishes"`
	AntiWishes string `json:"anti_wishes"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
