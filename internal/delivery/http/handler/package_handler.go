package handler

import (
	"encoding/json"
	"net/http"

	"coaching-practice-manager/internal/delivery/dto"
	"coaching-practice-manager/internal/usecase"
	"coaching-practice-manager/pkg/response"
	"coaching-practice-manager/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PackageHandler struct {
	packageUsecase usecase.PackageUsecase
	validator      *validator.CustomValidator
}

func NewPackageHandler(packageUsecase usecase.PackageUsecase, validator *validator.CustomValidator) *PackageHandler {
	return &PackageHandler{
		packageUsecase: packageUsecase,
		validator:      validator,
	}
}

func (h *PackageHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pkg, err := h.packageUsecase.CreatePackage(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create package")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Package created successfully", pkg)
}

func (h *PackageHandler) GetAllPackages(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.packageUsecase.ListPackages(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get packages")
		return
	}

	response.Success(w, http.StatusOK, "Packages retrieved successfully", pkgs)
}

func (h *PackageHandler) GetClientPackages(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID, err := uuid.Parse(vars["clientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client ID", nil)
		return
	}

	pkgs, err := h.packageUsecase.ListClientPackages(r.Context(), clientID)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to get packages")
		}
		return
	}

	response.Success(w, http.StatusOK, "Packages retrieved successfully", pkgs)
}

// BurnSession consumes one session from a package
func (h *PackageHandler) BurnSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid package ID", nil)
		return
	}

	// Body is optional: a burn may carry a note
	var req dto.BurnSessionRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.packageUsecase.BurnSession(r.Context(), packageID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPackageNotFound:
			response.NotFound(w, "Package not found")
		case usecase.ErrPackageExhausted:
			response.Error(w, http.StatusConflict, "Package has no remaining sessions", nil)
		default:
			response.InternalServerError(w, "Failed to burn session")
		}
		return
	}

	response.Success(w, http.StatusOK, "Session burned successfully", result)
}

func (h *PackageHandler) ExtendExpiry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid package ID", nil)
		return
	}

	var req dto.ExtendExpiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pkg, err := h.packageUsecase.ExtendExpiry(r.Context(), packageID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPackageNotFound:
			response.NotFound(w, "Package not found")
		case usecase.ErrMissingExpiry, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Expiry date is required in YYYY-MM-DD format", nil)
		default:
			response.InternalServerError(w, "Failed to extend package")
		}
		return
	}

	response.Success(w, http.StatusOK, "Package extended successfully", pkg)
}

func (h *PackageHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid package ID", nil)
		return
	}

	if err := h.packageUsecase.DeletePackage(r.Context(), packageID); err != nil {
		switch err {
		case usecase.ErrPackageNotFound:
			response.NotFound(w, "Package not found")
		default:
			response.InternalServerError(w, "Failed to delete package")
		}
		return
	}

	response.Success(w, http.StatusOK, "Package deleted successfully", nil)
}
