// Admin back office: login, transporter review, notes, status workflow,
// stats and CSV exports.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cargomatters/backend/internal/admins"
	"github.com/cargomatters/backend/internal/middleware"
	"github.com/cargomatters/backend/internal/response"
	"github.com/cargomatters/backend/internal/security"
	"github.com/cargomatters/backend/internal/transporters"
	"github.com/cargomatters/backend/internal/util"
)

// AdminLogin authenticates an admin account and issues a bearer token.
func AdminLogin(repo *admins.Repo, jwtm *security.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			response.Error(c, http.StatusBadRequest, "email and password are required")
			return
		}
		a, err := repo.FindByEmail(c.Request.Context(), req.Email)
		if err != nil || !util.ComparePassword(a.PasswordHash, req.Password) {
			response.Error(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		token, err := jwtm.Issue(security.TypeAdmin, a.ID, a.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "Login successful", gin.H{
			"token": token,
			"admin": gin.H{"id": a.ID, "email": a.Email, "name": a.Name},
		})
	}
}

func parseListFilter(c *gin.Context) transporters.Filter {
	f := transporters.Filter{
		Search:      c.Query("search"),
		Status:      c.Query("status"),
		VehicleType: c.Query("vehicleType"),
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	if raw := c.Query("operatingStates"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				f.OperatingStates = append(f.OperatingStates, s)
			}
		}
	}
	if v := c.Query("vehicleCountMin"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.VehicleCountMin = &n
		}
	}
	if v := c.Query("vehicleCountMax"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.VehicleCountMax = &n
		}
	}
	if v := c.Query("dateFrom"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.DateFrom = &t
		}
	}
	if v := c.Query("dateTo"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			f.DateTo = &end
		}
	}
	return f
}

// ListTransporters returns a filtered, paginated transporter page.
func ListTransporters(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := parseListFilter(c)
		items, total, err := svc.List(c.Request.Context(), f)
		if err != nil {
			respondError(c, err)
			return
		}
		for i := range items {
			items[i].PasswordHash = ""
		}
		response.Success(c, http.StatusOK, "", gin.H{
			"items": items,
			"total": total,
			"page":  f.Page,
			"limit": f.Limit,
		})
	}
}

// GetTransporter returns one full transporter aggregate.
func GetTransporter(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "", t)
	}
}

// SetStatusRequest is the body for PUT /transporters/:id/status.
type SetStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// SetTransporterStatus runs a workflow transition on one transporter.
func SetTransporterStatus(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "invalid request body")
			return
		}
		t, err := svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status, req.Reason)
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "Status updated", t)
	}
}

// AddNoteRequest is the body for POST /transporters/:id/notes.
type AddNoteRequest struct {
	Text string `json:"text"`
}

// AddTransporterNote appends an admin note to one transporter.
func AddTransporterNote(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "invalid request body")
			return
		}
		n, err := svc.AddNote(c.Request.Context(), c.Param("id"), middleware.UserIDFrom(c.Request.Context()), req.Text)
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "Note added successfully", n)
	}
}

// ExportTransporters streams a CSV attachment; type=companies (default)
// or type=vehicles, companies optionally filtered by status.
func ExportTransporters(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		exportType := c.DefaultQuery("type", "companies")

		var csv string
		var err error
		switch exportType {
		case "companies":
			csv, err = svc.ExportCompaniesCSV(c.Request.Context(), c.Query("status"))
		case "vehicles":
			csv, err = svc.ExportVehiclesCSV(c.Request.Context())
		default:
			response.Error(c, http.StatusBadRequest, "invalid export type")
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}

		filename := fmt.Sprintf("%s_%d.csv", exportType, time.Now().Unix())
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "text/csv", []byte(csv))
	}
}

// AdminStats returns the dashboard aggregate (cached).
func AdminStats(svc *transporters.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.GetStats(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "", stats)
	}
}
