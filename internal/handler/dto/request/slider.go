package request

import "cleanpro-api/internal/usecase/commands"

type AddSliderImageRequest struct {
	URL     string `json:"url" binding:"required,url"`
	Caption string `json:"caption"`
}

type UpdateSliderImageRequest struct {
	Caption  string `json:"caption"`
	Position int    `json:"position" binding:"gte=0"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

func (r *UpdateSliderImageRequest) ToInput() commands.UpdateSliderImageInput {
	return commands.UpdateSliderImageInput{
		Caption:  r.Caption,
		Position: r.Position,
		IsActive: *r.IsActive,
	}
}
