package member

// MemberReq is used for both create and update; updates overwrite both
// fields, so both are required either way.
type MemberReq struct {
	Name  *string `json:"name" validate:"required"`
	Email *string `json:"email" validate:"required"`
}
