package auth

type SessionResponse struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}
