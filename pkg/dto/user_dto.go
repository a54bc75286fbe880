package dto

type UserDTO struct {
	ID        int    `json:"id"`
	SnsType   int    `json:"sns_type"`
	SnsID     string `json:"sns_id"`
	Name      string `json:"name"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

type RoleRequestDTO struct {
	RequestedRole string `json:"requested_role"`
	Message       string `json:"message"`
}

type ReviewRoleRequestDTO struct {
	Approve bool `json:"approve"`
}
