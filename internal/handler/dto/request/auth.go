package request

type LoginRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}
