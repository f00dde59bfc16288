// Company self-service: profile view and partial update.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cargomatters/backend/internal/middleware"
	"github.com/cargomatters/backend/internal/response"
	"github.com/cargomatters/backend/internal/transporters"
)

// GetCompany returns the authenticated company profile (without admin notes).
func GetCompany(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := svc.Get(c.Request.Context(), middleware.UserIDFrom(c.Request.Context()))
		if err != nil {
			respondError(c, err)
			return
		}
		t.Notes = nil
		response.Success(c, http.StatusOK, "", t)
	}
}

// UpdateCompanyRequest is the body for PUT /company. Absent fields keep
// their stored values; document links overwrite only when non-empty.
type UpdateCompanyRequest struct {
	CompanyName     *string  `json:"companyName"`
	ContactPerson   *string  `json:"contactPerson"`
	PrimaryPhone    *string  `json:"primaryPhone"`
	AltPhone        *string  `json:"altPhone"`
	GSTNumber       *string  `json:"gstNumber"`
	PANNumber       *string  `json:"panNumber"`
	Address         *string  `json:"address"`
	Website         *string  `json:"website"`
	OperatingStates []string `json:"operatingStates"`
	Documents       struct {
		GSTCertificateURL    string `json:"gstCertificateUrl"`
		PANCardURL           string `json:"panCardUrl"`
		AadhaarCardURL       string `json:"aadhaarCardUrl"`
		RegistrationProofURL string `json:"registrationProofUrl"`
	} `json:"documents"`
}

// UpdateCompany applies a partial profile update for the authenticated company.
func UpdateCompany(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCompanyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "invalid request body")
			return
		}
		t, err := svc.UpdateProfile(c.Request.Context(), middleware.UserIDFrom(c.Request.Context()), transporters.UpdateProfileInput{
			CompanyName:     req.CompanyName,
			ContactPerson:   req.ContactPerson,
			PrimaryPhone:    req.PrimaryPhone,
			AltPhone:        req.AltPhone,
			GSTNumber:       req.GSTNumber,
			PANNumber:       req.PANNumber,
			Address:         req.Address,
			Website:         req.Website,
			OperatingStates: req.OperatingStates,
			Documents: transporters.CompanyDocuments{
				GSTCertificateURL:    req.Documents.GSTCertificateURL,
				PANCardURL:           req.Documents.PANCardURL,
				AadhaarCardURL:       req.Documents.AadhaarCardURL,
				RegistrationProofURL: req.Documents.RegistrationProofURL,
			},
		})
		if err != nil {
			respondError(c, err)
			return
		}
		t.Notes = nil
		response.Success(c, http.StatusOK, "Company profile updated successfully", t)
	}
}
