package handlers

import (
	"net/http"
	"time"

	"devconnect/database"
	"devconnect/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRequest struct {
	Text string `json:"text" binding:"required"`
}

var postMessages = map[string]string{
	"Text": "Text is required",
}

// findPost resolves a post id path param, writing a 404 for malformed ids
// and missing documents alike.
func findPost(c *gin.Context) (*models.Post, bool) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		return nil, false
	}

	ctx, cancel := dbContext()
	defer cancel()

	var post models.Post
	err = database.Posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		return nil, false
	}
	if err != nil {
		serverError(c, "findPost", err)
		return nil, false
	}
	return &post, true
}

// CreatePost stores a new post with the author's username and avatar copied
// from the current credential record. The copies are not kept in sync with
// later profile edits.
func CreatePost(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req PostRequest
	if !bindJSON(c, &req, postMessages) {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	var user models.User
	if err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		serverError(c, "CreatePost", err)
		return
	}

	post := models.Post{
		ID:        primitive.NewObjectID(),
		User:      userID,
		Text:      req.Text,
		Username:  user.Username,
		Avatar:    user.Avatar,
		Likes:     []models.Like{},
		Comments:  []models.Comment{},
		CreatedAt: time.Now().Unix(),
	}

	if _, err := database.Posts.InsertOne(ctx, post); err != nil {
		serverError(c, "CreatePost", err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func ListPosts(c *gin.Context) {
	ctx, cancel := dbContext()
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := database.Posts.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		serverError(c, "ListPosts", err)
		return
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		serverError(c, "ListPosts", err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func GetPost(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, post)
}

func DeletePost(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	post, ok := findPost(c)
	if !ok {
		return
	}

	if post.User != userID {
		c.JSON(http.StatusForbidden, gin.H{"msg": "User not authorized"})
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := database.Posts.DeleteOne(ctx, bson.M{"_id": post.ID}); err != nil {
		serverError(c, "DeletePost", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Post removed"})
}

// LikePost records a like unless the caller already has one on this post.
func LikePost(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	post, ok := findPost(c)
	if !ok {
		return
	}

	if post.LikeIndex(userID) >= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Post already liked"})
		return
	}

	like := models.Like{ID: primitive.NewObjectID(), User: userID}
	post.Likes = append([]models.Like{like}, post.Likes...)

	ctx, cancel := dbContext()
	defer cancel()

	update := bson.M{"$set": bson.M{"likes": post.Likes}}
	if _, err := database.Posts.UpdateOne(ctx, bson.M{"_id": post.ID}, update); err != nil {
		serverError(c, "LikePost", err)
		return
	}

	c.JSON(http.StatusOK, post.Likes)
}

func UnlikePost(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	post, ok := findPost(c)
	if !ok {
		return
	}

	idx := post.LikeIndex(userID)
	if idx < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Post has not yet been liked"})
		return
	}
	post.Likes = append(post.Likes[:idx], post.Likes[idx+1:]...)

	ctx, cancel := dbContext()
	defer cancel()

	update := bson.M{"$set": bson.M{"likes": post.Likes}}
	if _, err := database.Posts.UpdateOne(ctx, bson.M{"_id": post.ID}, update); err != nil {
		serverError(c, "UnlikePost", err)
		return
	}

	c.JSON(http.StatusOK, post.Likes)
}

func AddComment(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req PostRequest
	if !bindJSON(c, &req, postMessages) {
		return
	}

	post, ok := findPost(c)
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	var user models.User
	if err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		serverError(c, "AddComment", err)
		return
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		User:      userID,
		Text:      req.Text,
		Username:  user.Username,
		Avatar:    user.Avatar,
		CreatedAt: time.Now().Unix(),
	}
	post.Comments = append([]models.Comment{comment}, post.Comments...)

	update := bson.M{"$set": bson.M{"comments": post.Comments}}
	if _, err := database.Posts.UpdateOne(ctx, bson.M{"_id": post.ID}, update); err != nil {
		serverError(c, "AddComment", err)
		return
	}

	c.JSON(http.StatusOK, post.Comments)
}

func DeleteComment(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	post, ok := findPost(c)
	if !ok {
		return
	}

	commentID, err := primitive.ObjectIDFromHex(c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Comment not found"})
		return
	}

	idx := post.CommentIndex(commentID)
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Comment not found"})
		return
	}
	if post.Comments[idx].User != userID {
		c.JSON(http.StatusForbidden, gin.H{"msg": "User not authorized"})
		return
	}
	post.Comments = append(post.Comments[:idx], post.Comments[idx+1:]...)

	ctx, cancel := dbContext()
	defer cancel()

	update := bson.M{"$set": bson.M{"comments": post.Comments}}
	if _, err := database.Posts.UpdateOne(ctx, bson.M{"_id": post.ID}, update); err != nil {
		serverError(c, "DeleteComment", err)
		return
	}

	c.JSON(http.StatusOK, post.Comments)
}
