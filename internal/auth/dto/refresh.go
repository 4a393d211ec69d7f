package dto

type RefreshInput struct {
	RefreshToken string `json:"-"`
	IPAddress    string `json:"-"`
}

type LogoutInput struct {
	RefreshToken string `json:"-"`
}
