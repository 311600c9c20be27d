package model

// LoginReq represents login payload
// swagger:model LoginReq
type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
