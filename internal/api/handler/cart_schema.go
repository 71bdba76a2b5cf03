package handler

// --- Request / Response types ---

type addItemRequest struct {
	Src   string  `json:"src"   validate:"required"`
	Title string  `json:"title" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

type clearCartRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

type clearCartResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}
