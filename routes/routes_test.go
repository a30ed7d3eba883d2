package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(auth.NewTokenService("test-secret"))

	protected := []struct {
		method string
		path   string
	}{
		{"GET", "/sessions"},
		{"GET", "/profiles/me"},
		{"POST", "/profiles"},
		{"DELETE", "/profiles"},
		{"PUT", "/profiles/experience"},
		{"DELETE", "/profiles/experience/abc"},
		{"PUT", "/profiles/education"},
		{"DELETE", "/profiles/education/abc"},
		{"POST", "/posts"},
		{"GET", "/posts"},
		{"GET", "/posts/abc"},
		{"DELETE", "/posts/abc"},
		{"PUT", "/posts/like/abc"},
		{"PUT", "/posts/unlike/abc"},
		{"PUT", "/posts/comment/abc"},
		{"DELETE", "/posts/comment/abc/def"},
	}

	for _, route := range protected {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(route.method, route.path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
		assert.JSONEq(t, `{"msg":"No token, authorization denied"}`, w.Body.String())
	}
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(auth.NewTokenService("test-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"Endpoint not found"}`, w.Body.String())
}
