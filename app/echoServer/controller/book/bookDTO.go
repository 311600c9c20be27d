package book

// CreateBookReq requires every key to be present; empty strings are accepted.
type CreateBookReq struct {
	Title  *string `json:"title" validate:"required"`
	Author *string `json:"author" validate:"required"`
	ISBN   *string `json:"isbn" validate:"required"`
}

// UpdateBookReq is a partial update: omitted keys keep their stored value.
type UpdateBookReq struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	ISBN   *string `json:"isbn"`
}
