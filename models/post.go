package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Text      string             `bson:"text" json:"text"`
	Username  string             `bson:"username" json:"username"` // copied from the author at creation
	Avatar    string             `bson:"avatar" json:"avatar"`     // copied from the author at creation
	Likes     []Like             `bson:"likes" json:"likes"`
	Comments  []Comment          `bson:"comments" json:"comments"`
	CreatedAt int64              `bson:"date" json:"date"`
}

type Like struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User primitive.ObjectID `bson:"user" json:"user"`
}

type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Text      string             `bson:"text" json:"text"`
	Username  string             `bson:"username" json:"username"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	CreatedAt int64              `bson:"date" json:"date"`
}

// LikeIndex returns the position of the like placed by userID, or -1 when the
// user has not liked the post.
func (p *Post) LikeIndex(userID primitive.ObjectID) int {
	for i, like := range p.Likes {
		if like.User == userID {
			return i
		}
	}
	return -1
}

// CommentIndex returns the position of the comment with the given id, or -1
// when no comment matches.
func (p *Post) CommentIndex(id primitive.ObjectID) int {
	for i, comment := range p.Comments {
		if comment.ID == id {
			return i
		}
	}
	return -1
}
