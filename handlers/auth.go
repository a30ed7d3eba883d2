package handlers

import (
	"net/http"
	"time"

	"devconnect/database"
	"devconnect/gravatar"
	"devconnect/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

var registerMessages = map[string]string{
	"Name":     "Name is required",
	"Username": "Username is required",
	"Email":    "Please include a valid email",
	"Password": "Please enter a password with 6 or more characters",
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

var loginMessages = map[string]string{
	"Email":    "Please include a valid email",
	"Password": "Password is required",
}

// Register creates an account and returns a token for it. The email check
// runs before the username check, so when both collide the caller sees the
// email message.
func Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req, registerMessages) {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	err := database.Users.FindOne(ctx, bson.M{"email": req.Email}).Err()
	if err == nil {
		validationError(c, "Email address is already registered")
		return
	}
	if err != mongo.ErrNoDocuments {
		serverError(c, "Register", err)
		return
	}

	err = database.Users.FindOne(ctx, bson.M{"username": req.Username}).Err()
	if err == nil {
		validationError(c, "Username not available")
		return
	}
	if err != mongo.ErrNoDocuments {
		serverError(c, "Register", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		serverError(c, "Register", err)
		return
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
		Avatar:    gravatar.URL(req.Email),
		CreatedAt: time.Now().Unix(),
	}

	if _, err := database.Users.InsertOne(ctx, user); err != nil {
		serverError(c, "Register", err)
		return
	}

	token, err := tokens.Issue(user.ID.Hex())
	if err != nil {
		serverError(c, "Register", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Login verifies email and password. A missing account and a wrong password
// report the same generic message so callers cannot enumerate emails.
func Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req, loginMessages) {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		validationError(c, "Invalid credentials")
		return
	}
	if err != nil {
		serverError(c, "Login", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		validationError(c, "Invalid credentials")
		return
	}

	token, err := tokens.Issue(user.ID.Hex())
	if err != nil {
		serverError(c, "Login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetCurrentUser returns the caller's credential record minus the password,
// which the User model never serializes.
func GetCurrentUser(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	var user models.User
	err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		return
	}
	if err != nil {
		serverError(c, "GetCurrentUser", err)
		return
	}

	c.JSON(http.StatusOK, user)
}
