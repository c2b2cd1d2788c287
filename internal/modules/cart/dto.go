package cart

type AddItemRequest struct {
	ItemType string `json:"itemType" binding:"required"`
	ItemID   int64  `json:"itemId" binding:"required"`
	Action   string `json:"action"`
	Quantity int    `json:"quantity"`
}

type RemoveItemRequest struct {
	Key string `json:"key" binding:"required"`
}
