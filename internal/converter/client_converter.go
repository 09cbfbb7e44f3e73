package converter

import (
	"time"

	"coaching-practice-manager/internal/delivery/dto"
	"coaching-practice-manager/internal/domain/entity"
)

// ClientToResponse converts a Client entity to ClientResponse DTO
func ClientToResponse(client *entity.Client) *dto.ClientResponse {
	if client == nil {
		return nil
	}

	resp := &dto.ClientResponse{
		ID:         client.ID,
		FullName:   client.FullName,
		NationalID: client.NationalID,
		Email:      client.Email,
		Phone:      client.Phone,
		Notes:      client.Notes,
		Age:        client.Age(time.Now()),
		Gender:     string(client.Gender),
		Status:     string(client.Status),
		CreatedAt:  client.CreatedAt,
		UpdatedAt:  client.UpdatedAt,
	}
	if client.BirthDate != nil {
		resp.BirthDate = client.BirthDate.Format("2006-01-02")
	}
	return resp
}

func ClientsToResponses(clients []entity.Client) []dto.ClientResponse {
	responses := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, *ClientToResponse(&clients[i]))
	}
	return responses
}
