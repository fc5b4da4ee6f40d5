package request

import (
	"strings"

	"agency_estimator/internal/domain/entities"
)

type BookConsultationRequest struct {
	Name    string `json:"name" binding:"required,max=120" example:"Asha Rao"`
	Email   string `json:"email" binding:"required,email" example:"asha@example.com"`
	Phone   string `json:"phone" binding:"omitempty,max=32" example:"+91 90000 00000"`
	Message string `json:"message" binding:"omitempty,max=2000" example:"Looking to launch before Diwali"`
}

func (r BookConsultationRequest) ToContact() entities.ContactDetails {
	return entities.ContactDetails{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Message: strings.TrimSpace(r.Message),
	}
}
