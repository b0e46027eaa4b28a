package handler

// errorResponse is the standard error envelope on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// tokenResponse is shared by login and refresh.
type tokenResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// --- Catalog ---

// addProductRequest uses a pointer for price so that an absent field is
// distinguishable from zero; a non-numeric price fails binding outright.
type addProductRequest struct {
	Name  string   `json:"name"  validate:"required"`
	Price *float64 `json:"price" validate:"required,gte=0"`
}

// --- Orders ---

type createOrderRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}
