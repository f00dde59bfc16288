package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cargomatters/backend/internal/security"
)

type fakeParser struct {
	claims *security.Claims
	err    error
}

func (p *fakeParser) Parse(string) (*security.Claims, error) {
	return p.claims, p.err
}

func authTestRouter(parser TokenParser, requiredType string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(parser, requiredType), func(c *gin.Context) {
		c.String(http.StatusOK, UserIDFrom(c.Request.Context()))
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	okParser := &fakeParser{claims: &security.Claims{UserID: "rec-1", Email: "a@b.com", Type: security.TypeCompany}}

	cases := []struct {
		name       string
		parser     TokenParser
		required   string
		header     string
		wantStatus int
	}{
		{"missing header", okParser, security.TypeCompany, "", http.StatusUnauthorized},
		{"not bearer", okParser, security.TypeCompany, "Basic abc", http.StatusUnauthorized},
		{"empty token", okParser, security.TypeCompany, "Bearer ", http.StatusUnauthorized},
		{"parse failure", &fakeParser{err: errors.New("bad token")}, security.TypeCompany, "Bearer x", http.StatusUnauthorized},
		{"wrong subject type", okParser, security.TypeAdmin, "Bearer x", http.StatusUnauthorized},
		{"ok", okParser, security.TypeCompany, "Bearer x", http.StatusOK},
		{"any type accepted when unset", okParser, "", "Bearer x", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := authTestRouter(tc.parser, tc.required)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set(HeaderAuthorization, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tc.wantStatus, w.Body.String())
			}
			if tc.wantStatus == http.StatusOK && w.Body.String() != "rec-1" {
				t.Fatalf("user id not propagated: %q", w.Body.String())
			}
		})
	}
}

func TestCronSecretMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/job", CronSecretMiddleware("s3cret"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/job", nil)
	req.Header.Set(HeaderAuthorization, "Bearer wrong")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong secret: status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/job", nil)
	req.Header.Set(HeaderAuthorization, "Bearer s3cret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("correct secret: status = %d", w.Code)
	}
}
