package httpserver

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	convocatoriaservice "pasantias/contexts/internship-program/convocatoria-service"
	evaluationengine "pasantias/contexts/internship-program/evaluation-engine"
	proposalservice "pasantias/contexts/internship-program/proposal-service"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(
		convocatoriaservice.NewInMemoryModule(nil, logger),
		proposalservice.NewInMemoryModule(nil, logger),
		evaluationengine.NewInMemoryModule(nil, logger),
		testSecret,
		logger,
		":0",
	)
}

func mintToken(t *testing.T, secret string, userID int64, role string) string {
	t.Helper()
	claims := principalClaims{
		UserID: userID,
		Name:   "Laura Medina",
		Email:  "lmedina@uni.edu",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestMutatingEndpointsRequireToken(t *testing.T) {
	server := newTestServer(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/convocatorias"},
		{http.MethodPost, "/propuestas"},
		{http.MethodPatch, "/propuestas/prop-1"},
		{http.MethodPut, "/propuestas/prop-1/estado"},
		{http.MethodPost, "/comentarios"},
		{http.MethodPatch, "/comentarios/comment-1"},
		{http.MethodDelete, "/comentarios/comment-1"},
		{http.MethodPost, "/propuestas/prop-1/aprobar"},
		{http.MethodPost, "/propuestas/prop-1/rechazar"},
		{http.MethodPost, "/propuestas/prop-1/solicitar-actualizacion"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without token, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestRejectsTokenSignedWithWrongSecret(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/propuestas/prop-1/aprobar", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "other-secret", 1, "tutor"))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for foreign signature, got %d", rec.Code)
	}
}

func TestRejectsMalformedAuthorizationHeader(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/convocatorias", nil)
	req.Header.Set("Authorization", mintToken(t, testSecret, 1, "admin"))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without Bearer prefix, got %d", rec.Code)
	}
}

func TestPublicReadsNeedNoToken(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/convocatorias/activa/estado", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on public status check, got %d", rec.Code)
	}
}

func TestCommentDeletionReturnsMethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodDelete, "/comentarios/comment-1", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, testSecret, 1, "tutor"))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for comment deletion, got %d", rec.Code)
	}
}
