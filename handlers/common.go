package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"devconnect/auth"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var tokens *auth.TokenService

// SetTokenService injects the token service at startup.
func SetTokenService(ts *auth.TokenService) {
	tokens = ts
}

const dbTimeout = 10 * time.Second

func dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

type fieldError struct {
	Msg string `json:"msg"`
}

// bindJSON binds the request body and, on validation failure, writes a 400
// with the {errors:[{msg}]} shape. messages maps struct field names to the
// per-field message texts.
func bindJSON(c *gin.Context, req interface{}, messages map[string]string) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			if msg, ok := messages[fe.Field()]; ok {
				out = append(out, fieldError{Msg: msg})
			} else {
				out = append(out, fieldError{Msg: fe.Field() + " is invalid"})
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": out})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"errors": []fieldError{{Msg: "Invalid request body"}}})
	return false
}

func validationError(c *gin.Context, msgs ...string) {
	out := make([]fieldError, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, fieldError{Msg: msg})
	}
	c.JSON(http.StatusBadRequest, gin.H{"errors": out})
}

// serverError logs the underlying failure and reports an opaque 500; no
// store or runtime detail reaches the caller.
func serverError(c *gin.Context, op string, err error) {
	log.Printf("[%s] %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
}

// actingUserID returns the authenticated identity set by the auth middleware.
func actingUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
		return primitive.NilObjectID, false
	}
	return userID, true
}
