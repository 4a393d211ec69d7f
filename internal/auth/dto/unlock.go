package dto

type UnlockRequestInput struct {
	Email string `json:"email"`
}

type UnlockVerifyInput struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}
