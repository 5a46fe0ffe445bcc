package model

// SubUser is a back-office account managed by the main account holder.
type SubUser struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Avatar      string   `json:"avatar,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	IsActive    bool     `json:"isActive"`
}
