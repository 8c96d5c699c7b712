package response

import "cleanpro-api/internal/usecase/commands"

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: r.Token,
		Email:       r.Email,
		Role:        r.Role,
	}
}
