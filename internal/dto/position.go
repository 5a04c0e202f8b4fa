package dto

import "github.com/SscSPs/adaptation_plan_app/internal/core/domain"

// CreatePositionRequest defines data for creating a position.
type CreatePositionRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=4000"`
}

// PositionResponse defines data returned for a position.
type PositionResponse struct {
	PositionID  string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToPositionResponse converts domain.Position to DTO.
func ToPositionResponse(p *domain.Position) PositionResponse {
	return PositionResponse{
		PositionID:  p.PositionID,
		Name:        p.Name,
		Description: p.Description,
	}
}

// ToListPositionResponse converts a slice of domain.Position to DTOs.
func ToListPositionResponse(ps []domain.Position) []PositionResponse {
	list := make([]PositionResponse, len(ps))
	for i := range ps {
		list[i] = ToPositionResponse(&ps[i])
	}
	return list
}
