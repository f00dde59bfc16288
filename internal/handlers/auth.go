// Company auth: self-service registration, login, current profile.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cargomatters/backend/internal/middleware"
	"github.com/cargomatters/backend/internal/response"
	"github.com/cargomatters/backend/internal/security"
	"github.com/cargomatters/backend/internal/transporters"
)

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	PrimaryPhone  string `json:"primaryPhone"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

// Register creates a new transporter company in Pending state.
func Register(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "invalid request body")
			return
		}
		t, err := svc.Register(c.Request.Context(), transporters.RegisterInput{
			CompanyName:   req.CompanyName,
			ContactPerson: req.ContactPerson,
			PrimaryPhone:  req.PrimaryPhone,
			Email:         req.Email,
			Password:      req.Password,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusCreated, "Registration successful! Please login to continue.", gin.H{
			"transporterId": t.TransporterID,
			"companyName":   t.CompanyName,
			"email":         t.Email,
		})
	}
}

// LoginRequest is the body for POST /auth/login and POST /admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a company and issues a bearer token.
func Login(svc *transporters.Service, jwtm *security.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			response.Error(c, http.StatusBadRequest, "email and password are required")
			return
		}
		t, err := svc.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		token, err := jwtm.Issue(security.TypeCompany, t.ID, t.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "Login successful", gin.H{
			"token": token,
			"company": gin.H{
				"id":            t.ID,
				"transporterId": t.TransporterID,
				"companyName":   t.CompanyName,
				"contactPerson": t.ContactPerson,
				"email":         t.Email,
				"vehiclesCount": t.VehiclesCount,
			},
		})
	}
}

// Me returns the authenticated company's profile.
func Me(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := svc.Get(c.Request.Context(), middleware.UserIDFrom(c.Request.Context()))
		if err != nil {
			respondError(c, err)
			return
		}
		t.Notes = nil // admin annotations are not exposed to companies
		response.Success(c, http.StatusOK, "", t)
	}
}
