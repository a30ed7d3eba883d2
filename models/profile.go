package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Profile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User       primitive.ObjectID `bson:"user" json:"user"`
	Company    string             `bson:"company,omitempty" json:"company,omitempty"`
	Website    string             `bson:"website,omitempty" json:"website,omitempty"`
	Location   string             `bson:"location,omitempty" json:"location,omitempty"`
	Status     string             `bson:"status" json:"status"`
	Skills     []string           `bson:"skills" json:"skills"`
	Bio        string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Experience []Experience       `bson:"experience" json:"experience"`
	Education  []Education        `bson:"education" json:"education"`
	Social     *Social            `bson:"social,omitempty" json:"social,omitempty"`
	Owner      *UserRef           `bson:"-" json:"owner,omitempty"` // Populated in responses only
}

type Experience struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Company     string             `bson:"company" json:"company"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	From        int64              `bson:"from" json:"from"`
	To          int64              `bson:"to,omitempty" json:"to,omitempty"`
	Current     bool               `bson:"current" json:"current"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

type Education struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	School       string             `bson:"school" json:"school"`
	Degree       string             `bson:"degree" json:"degree"`
	FieldOfStudy string             `bson:"fieldOfStudy,omitempty" json:"fieldOfStudy,omitempty"`
	Year         int64              `bson:"year,omitempty" json:"year,omitempty"`
}

type Social struct {
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Youtube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
}

// ExperienceIndex returns the position of the experience entry with the given
// id, or -1 when no entry matches.
func (p *Profile) ExperienceIndex(id primitive.ObjectID) int {
	for i, exp := range p.Experience {
		if exp.ID == id {
			return i
		}
	}
	return -1
}

// EducationIndex returns the position of the education entry with the given
// id, or -1 when no entry matches.
func (p *Profile) EducationIndex(id primitive.ObjectID) int {
	for i, edu := range p.Education {
		if edu.ID == id {
			return i
		}
	}
	return -1
}
