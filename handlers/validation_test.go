package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type errorBody struct {
	Errors []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
	Msg string `json:"msg"`
}

func perform(t *testing.T, handler gin.HandlerFunc, body string, setup func(*gin.Context)) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if setup != nil {
		setup(c)
	}

	handler(c)

	var parsed errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func errorMessages(body errorBody) []string {
	msgs := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		msgs = append(msgs, e.Msg)
	}
	return msgs
}

func asActor(c *gin.Context) {
	c.Set("userId", primitive.NewObjectID().Hex())
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "all fields missing",
			body: `{}`,
			want: []string{
				"Name is required",
				"Username is required",
				"Please include a valid email",
				"Please enter a password with 6 or more characters",
			},
		},
		{
			name: "short password",
			body: `{"name":"A","username":"a1","email":"a@x.com","password":"12345"}`,
			want: []string{"Please enter a password with 6 or more characters"},
		},
		{
			name: "malformed email",
			body: `{"name":"A","username":"a1","email":"not-an-email","password":"secret1"}`,
			want: []string{"Please include a valid email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := perform(t, Register, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, errorMessages(body))
		})
	}
}

func TestRegisterRejectsGarbageBody(t *testing.T) {
	w, body := perform(t, Register, `{"name":`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"Invalid request body"}, errorMessages(body))
}

func TestLoginValidation(t *testing.T) {
	w, body := perform(t, Login, `{"email":"bad","password":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"Please include a valid email", "Password is required"}, errorMessages(body))
}

func TestUpsertProfileValidation(t *testing.T) {
	w, body := perform(t, UpsertProfile, `{"company":"Acme"}`, asActor)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"Status is required", "Skills is required"}, errorMessages(body))
}

func TestAddExperienceValidation(t *testing.T) {
	w, body := perform(t, AddExperience, `{"location":"Remote"}`, asActor)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"Title is required", "Company is required", "From date is required"}, errorMessages(body))
}

func TestAddEducationValidation(t *testing.T) {
	w, body := perform(t, AddEducation, `{"year":2020}`, asActor)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"School is required", "Degree is required"}, errorMessages(body))
}

func TestCreatePostValidation(t *testing.T) {
	w, body := perform(t, CreatePost, `{"text":""}`, asActor)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"Text is required"}, errorMessages(body))
}

func TestActingUserIDRejectsMalformedIdentity(t *testing.T) {
	w, body := perform(t, GetCurrentUser, ``, func(c *gin.Context) {
		c.Set("userId", "not-an-object-id")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is not valid", body.Msg)
}

func TestGetPostMalformedID(t *testing.T) {
	w, body := perform(t, GetPost, ``, func(c *gin.Context) {
		asActor(c)
		c.Params = gin.Params{{Key: "id", Value: "not-hex"}}
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", body.Msg)
}

func TestDeleteExperienceMalformedID(t *testing.T) {
	w, body := perform(t, DeleteExperience, ``, func(c *gin.Context) {
		asActor(c)
		c.Params = gin.Params{{Key: "id", Value: "not-hex"}}
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Experience not found", body.Msg)
}

func TestGetProfileByUserMalformedID(t *testing.T) {
	w, body := perform(t, GetProfileByUser, ``, func(c *gin.Context) {
		c.Params = gin.Params{{Key: "userId", Value: "not-hex"}}
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Profile not found", body.Msg)
}
