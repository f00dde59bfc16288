// Fleet management for the authenticated company.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cargomatters/backend/internal/middleware"
	"github.com/cargomatters/backend/internal/response"
	"github.com/cargomatters/backend/internal/transporters"
)

// VehicleDocumentsRequest carries external document links; empty values are
// ignored on update.
type VehicleDocumentsRequest struct {
	RCURL        string `json:"rcUrl"`
	InsuranceURL string `json:"insuranceUrl"`
	PUCURL       string `json:"pucUrl"`
	FitnessURL   string `json:"fitnessUrl"`
}

// ListVehicles returns the company fleet.
func ListVehicles(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := svc.Get(c.Request.Context(), middleware.UserIDFrom(c.Request.Context()))
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "", t.Vehicles)
	}
}

// AddVehicleRequest is the body for POST /company/vehicles.
type AddVehicleRequest struct {
	RegistrationNumber string                  `json:"registrationNumber"`
	VehicleType        string                  `json:"vehicleType"`
	Capacity           string                  `json:"capacity"`
	ModelYear          int                     `json:"modelYear"`
	DriverName         string                  `json:"driverName"`
	DriverPhone        string                  `json:"driverPhone"`
	Availability       string                  `json:"availability"`
	Route              string                  `json:"route"`
	Permit             string                  `json:"permit"`
	ConsentToContact   bool                    `json:"consentToContact"`
	ConfirmAccuracy    bool                    `json:"confirmAccuracy"`
	Documents          VehicleDocumentsRequest `json:"documents"`
}

// AddVehicle appends a vehicle to the authenticated company's fleet.
func AddVehicle(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddVehicleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "invalid request body")
			return
		}
		v, err := svc.AddVehicle(c.Request.Context(), middleware.UserIDFrom(c.Request.Context()), transporters.AddVehicleInput{
			RegistrationNumber: req.RegistrationNumber,
			VehicleType:        req.VehicleType,
			Capacity:           req.Capacity,
			ModelYear:          req.ModelYear,
			DriverName:         req.DriverName,
			DriverPhone:        req.DriverPhone,
			Availability:       req.Availability,
			Route:              req.Route,
			Permit:             req.Permit,
			ConsentToContact:   req.ConsentToContact,
			ConfirmAccuracy:    req.ConfirmAccuracy,
			Documents: transporters.VehicleDocuments{
				RCURL:        req.Documents.RCURL,
				InsuranceURL: req.Documents.InsuranceURL,
				PUCURL:       req.Documents.PUCURL,
				FitnessURL:   req.Documents.FitnessURL,
			},
		})
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusCreated, "Vehicle added successfully", v)
	}
}

// UpdateVehicleRequest is the body for PUT /company/vehicles/:id. Pointer
// fields distinguish "absent" from "set to empty".
type UpdateVehicleRequest struct {
	RegistrationNumber string                  `json:"registrationNumber"`
	VehicleType        string                  `json:"vehicleType"`
	Capacity           string                  `json:"capacity"`
	ModelYear          int                     `json:"modelYear"`
	DriverName         *string                 `json:"driverName"`
	DriverPhone        *string                 `json:"driverPhone"`
	Availability       string                  `json:"availability"`
	Route              *string                 `json:"route"`
	Permit             *string                 `json:"permit"`
	Documents          VehicleDocumentsRequest `json:"documents"`
}

// UpdateVehicle applies a partial update to one vehicle.
func UpdateVehicle(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateVehicleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "invalid request body")
			return
		}
		v, err := svc.UpdateVehicle(c.Request.Context(), middleware.UserIDFrom(c.Request.Context()), c.Param("id"), transporters.UpdateVehicleInput{
			RegistrationNumber: req.RegistrationNumber,
			VehicleType:        req.VehicleType,
			Capacity:           req.Capacity,
			ModelYear:          req.ModelYear,
			DriverName:         req.DriverName,
			DriverPhone:        req.DriverPhone,
			Availability:       req.Availability,
			Route:              req.Route,
			Permit:             req.Permit,
			Documents: transporters.VehicleDocuments{
				RCURL:        req.Documents.RCURL,
				InsuranceURL: req.Documents.InsuranceURL,
				PUCURL:       req.Documents.PUCURL,
				FitnessURL:   req.Documents.FitnessURL,
			},
		})
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "Vehicle updated successfully", v)
	}
}

// DeleteVehicle removes one vehicle from the fleet.
func DeleteVehicle(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.DeleteVehicle(c.Request.Context(), middleware.UserIDFrom(c.Request.Context()), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "Vehicle deleted successfully", nil)
	}
}
