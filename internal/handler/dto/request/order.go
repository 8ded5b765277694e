package request

type PurchaseRequest struct {
	ServiceID   string `json:"service_id" binding:"required"`
	ServerIndex int    `json:"server_index" binding:"min=0"`
	ChatID      int64  `json:"chat_id" binding:"required"`
}
