package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLikeIndex(t *testing.T) {
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	carol := primitive.NewObjectID()

	post := Post{Likes: []Like{
		{ID: primitive.NewObjectID(), User: alice},
		{ID: primitive.NewObjectID(), User: bob},
	}}

	assert.Equal(t, 0, post.LikeIndex(alice))
	assert.Equal(t, 1, post.LikeIndex(bob))
	assert.Equal(t, -1, post.LikeIndex(carol))
}

func TestLikeIndexEmpty(t *testing.T) {
	post := Post{}
	assert.Equal(t, -1, post.LikeIndex(primitive.NewObjectID()))
}

func TestCommentIndex(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	post := Post{Comments: []Comment{
		{ID: first, Text: "first"},
		{ID: second, Text: "second"},
	}}

	assert.Equal(t, 0, post.CommentIndex(first))
	assert.Equal(t, 1, post.CommentIndex(second))
	assert.Equal(t, -1, post.CommentIndex(primitive.NewObjectID()))
}
