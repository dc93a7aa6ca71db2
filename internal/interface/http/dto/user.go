package dto

// LoginRequest HTTP登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=50" example:"admin"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"password"`
}

// UserInfo 登录用户信息
type UserInfo struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"admin"`
	Role     string `json:"role" example:"ADMIN"`
}

// LoginResponse HTTP登录响应
type LoginResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in" example:"7200"` // Access Token过期时间（秒）
}

// RefreshTokenRequest HTTP刷新Token请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse HTTP刷新Token响应
type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
}
