package converter

import (
	"coaching-practice-manager/internal/delivery/dto"
	"coaching-practice-manager/internal/domain/entity"
)

// SessionToResponse converts a ScheduledSession entity to SessionResponse DTO
func SessionToResponse(session *entity.ScheduledSession) *dto.SessionResponse {
	if session == nil {
		return nil
	}

	return &dto.SessionResponse{
		ID:          session.ID,
		ClientID:    session.ClientID,
		ClientName:  session.Client.FullName,
		PackageID:   session.PackageID,
		SessionDate: session.SessionDate.Format("2006-01-02"),
		SessionTime: session.SessionTime,
		Status:      string(session.Status),
		CreatedAt:   session.CreatedAt,
		UpdatedAt:   session.UpdatedAt,
	}
}

func SessionsToResponses(sessions []entity.ScheduledSession) []dto.SessionResponse {
	responses := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, *SessionToResponse(&sessions[i]))
	}
	return responses
}

func ConsumedSessionToResponse(session *entity.ConsumedSession) *dto.ConsumedSessionResponse {
	if session == nil {
		return nil
	}

	return &dto.ConsumedSessionResponse{
		ID:         session.ID,
		ClientID:   session.ClientID,
		PackageID:  session.PackageID,
		ConsumedAt: session.ConsumedAt,
		Note:       session.Note,
		Origin:     session.Origin,
	}
}

func ConsumedSessionsToResponses(sessions []entity.ConsumedSession) []dto.ConsumedSessionResponse {
	responses := make([]dto.ConsumedSessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, *ConsumedSessionToResponse(&sessions[i]))
	}
	return responses
}
