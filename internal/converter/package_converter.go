package converter

import (
	"coaching-practice-manager/internal/delivery/dto"
	"coaching-practice-manager/internal/domain/entity"
)

// PackageToResponse converts a SessionPackage entity to PackageResponse DTO
func PackageToResponse(pkg *entity.SessionPackage) *dto.PackageResponse {
	if pkg == nil {
		return nil
	}

	resp := &dto.PackageResponse{
		ID:            pkg.ID,
		ClientID:      pkg.ClientID,
		ClientName:    pkg.Client.FullName,
		TotalSessions: pkg.TotalSessions,
		UsedSessions:  pkg.UsedSessions,
		Remaining:     pkg.Remaining(),
		Status:        string(pkg.Status),
		Price:         pkg.Price,
		CreatedAt:     pkg.CreatedAt,
		UpdatedAt:     pkg.UpdatedAt,
	}
	if pkg.StartDate != nil {
		resp.StartDate = pkg.StartDate.Format("2006-01-02")
	}
	if pkg.ExpiryDate != nil {
		resp.ExpiryDate = pkg.ExpiryDate.Format("2006-01-02")
	}
	return resp
}

func PackagesToResponses(pkgs []entity.SessionPackage) []dto.PackageResponse {
	responses := make([]dto.PackageResponse, 0, len(pkgs))
	for i := range pkgs {
		responses = append(responses, *PackageToResponse(&pkgs[i]))
	}
	return responses
}
