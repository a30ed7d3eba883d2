package handlers

import (
	"context"
	"net/http"

	"devconnect/database"
	"devconnect/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileRequest struct {
	Company    string              `json:"company"`
	Website    string              `json:"website"`
	Location   string              `json:"location"`
	Status     string              `json:"status" binding:"required"`
	Skills     []string            `json:"skills" binding:"required"`
	Bio        string              `json:"bio"`
	Experience []models.Experience `json:"experience"`
	Education  []models.Education  `json:"education"`
	Social     *models.Social      `json:"social"`
}

var profileMessages = map[string]string{
	"Status": "Status is required",
	"Skills": "Skills is required",
}

type ExperienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        int64  `json:"from" binding:"required"`
	To          int64  `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

var experienceMessages = map[string]string{
	"Title":   "Title is required",
	"Company": "Company is required",
	"From":    "From date is required",
}

type EducationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldOfStudy"`
	Year         int64  `json:"year"`
}

var educationMessages = map[string]string{
	"School": "School is required",
	"Degree": "Degree is required",
}

// attachOwner populates the profile's owner view from the users collection.
// A missing owner document leaves the field unset rather than failing the
// whole response.
func attachOwner(ctx context.Context, profile *models.Profile) {
	var user models.User
	if err := database.Users.FindOne(ctx, bson.M{"_id": profile.User}).Decode(&user); err != nil {
		return
	}
	profile.Owner = &models.UserRef{ID: user.ID, Username: user.Username, Avatar: user.Avatar}
}

func GetMyProfile(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	var profile models.Profile
	err := database.Profiles.FindOne(ctx, bson.M{"user": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"msg": "There is currently no profile for this user"})
		return
	}
	if err != nil {
		serverError(c, "GetMyProfile", err)
		return
	}

	attachOwner(ctx, &profile)
	c.JSON(http.StatusOK, profile)
}

// UpsertProfile creates the caller's profile on first submission and updates
// the supplied top-level fields in place afterwards. Omitted optional fields
// keep their prior values; a supplied experience or education array replaces
// the stored one wholesale, unlike the dedicated append endpoints.
func UpsertProfile(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req ProfileRequest
	if !bindJSON(c, &req, profileMessages) {
		return
	}

	fields := bson.M{
		"status": req.Status,
		"skills": req.Skills,
	}
	if req.Company != "" {
		fields["company"] = req.Company
	}
	if req.Website != "" {
		fields["website"] = req.Website
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if req.Bio != "" {
		fields["bio"] = req.Bio
	}
	if req.Experience != nil {
		fields["experience"] = withExperienceIDs(req.Experience)
	}
	if req.Education != nil {
		fields["education"] = withEducationIDs(req.Education)
	}
	if req.Social != nil {
		fields["social"] = req.Social
	}

	ctx, cancel := dbContext()
	defer cancel()

	var existing models.Profile
	err := database.Profiles.FindOne(ctx, bson.M{"user": userID}).Decode(&existing)
	if err != nil && err != mongo.ErrNoDocuments {
		serverError(c, "UpsertProfile", err)
		return
	}

	if err == mongo.ErrNoDocuments {
		profile := models.Profile{
			ID:         primitive.NewObjectID(),
			User:       userID,
			Company:    req.Company,
			Website:    req.Website,
			Location:   req.Location,
			Status:     req.Status,
			Skills:     req.Skills,
			Bio:        req.Bio,
			Experience: withExperienceIDs(req.Experience),
			Education:  withEducationIDs(req.Education),
			Social:     req.Social,
		}
		if profile.Experience == nil {
			profile.Experience = []models.Experience{}
		}
		if profile.Education == nil {
			profile.Education = []models.Education{}
		}
		if _, err := database.Profiles.InsertOne(ctx, profile); err != nil {
			serverError(c, "UpsertProfile", err)
			return
		}
		c.JSON(http.StatusOK, profile)
		return
	}

	var updated models.Profile
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = database.Profiles.FindOneAndUpdate(ctx, bson.M{"user": userID}, bson.M{"$set": fields}, after).Decode(&updated)
	if err != nil {
		serverError(c, "UpsertProfile", err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// withExperienceIDs assigns sub-document ids to entries that arrived without
// one, so they can later be removed by id.
func withExperienceIDs(entries []models.Experience) []models.Experience {
	for i := range entries {
		if entries[i].ID.IsZero() {
			entries[i].ID = primitive.NewObjectID()
		}
	}
	return entries
}

func withEducationIDs(entries []models.Education) []models.Education {
	for i := range entries {
		if entries[i].ID.IsZero() {
			entries[i].ID = primitive.NewObjectID()
		}
	}
	return entries
}

func ListProfiles(c *gin.Context) {
	ctx, cancel := dbContext()
	defer cancel()

	cursor, err := database.Profiles.Find(ctx, bson.M{})
	if err != nil {
		serverError(c, "ListProfiles", err)
		return
	}
	defer cursor.Close(ctx)

	profiles := []models.Profile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		serverError(c, "ListProfiles", err)
		return
	}

	for i := range profiles {
		attachOwner(ctx, &profiles[i])
	}

	c.JSON(http.StatusOK, profiles)
}

func GetProfileByUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Profile not found"})
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	var profile models.Profile
	err = database.Profiles.FindOne(ctx, bson.M{"user": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Profile not found"})
		return
	}
	if err != nil {
		serverError(c, "GetProfileByUser", err)
		return
	}

	attachOwner(ctx, &profile)
	c.JSON(http.StatusOK, profile)
}

// DeleteAccount removes the caller's profile and credential record. Posts
// authored by the account are intentionally left in place; their author
// fields were denormalized at write time and stay readable.
func DeleteAccount(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := database.Profiles.DeleteOne(ctx, bson.M{"user": userID}); err != nil {
		serverError(c, "DeleteAccount", err)
		return
	}
	if _, err := database.Users.DeleteOne(ctx, bson.M{"_id": userID}); err != nil {
		serverError(c, "DeleteAccount", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User removed"})
}

func AddExperience(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req ExperienceRequest
	if !bindJSON(c, &req, experienceMessages) {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	var profile models.Profile
	err := database.Profiles.FindOne(ctx, bson.M{"user": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"msg": "There is currently no profile for this user"})
		return
	}
	if err != nil {
		serverError(c, "AddExperience", err)
		return
	}

	entry := models.Experience{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}

	// Most recent first
	profile.Experience = append([]models.Experience{entry}, profile.Experience...)

	update := bson.M{"$set": bson.M{"experience": profile.Experience}}
	if _, err := database.Profiles.UpdateOne(ctx, bson.M{"user": userID}, update); err != nil {
		serverError(c, "AddExperience", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func DeleteExperience(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	expID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Experience not found"})
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	var profile models.Profile
	err = database.Profiles.FindOne(ctx, bson.M{"user": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"msg": "There is currently no profile for this user"})
		return
	}
	if err != nil {
		serverError(c, "DeleteExperience", err)
		return
	}

	idx := profile.ExperienceIndex(expID)
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Experience not found"})
		return
	}
	profile.Experience = append(profile.Experience[:idx], profile.Experience[idx+1:]...)

	update := bson.M{"$set": bson.M{"experience": profile.Experience}}
	if _, err := database.Profiles.UpdateOne(ctx, bson.M{"user": userID}, update); err != nil {
		serverError(c, "DeleteExperience", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func AddEducation(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req EducationRequest
	if !bindJSON(c, &req, educationMessages) {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	var profile models.Profile
	err := database.Profiles.FindOne(ctx, bson.M{"user": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"msg": "There is currently no profile for this user"})
		return
	}
	if err != nil {
		serverError(c, "AddEducation", err)
		return
	}

	entry := models.Education{
		ID:           primitive.NewObjectID(),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		Year:         req.Year,
	}

	profile.Education = append([]models.Education{entry}, profile.Education...)

	update := bson.M{"$set": bson.M{"education": profile.Education}}
	if _, err := database.Profiles.UpdateOne(ctx, bson.M{"user": userID}, update); err != nil {
		serverError(c, "AddEducation", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func DeleteEducation(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	eduID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Education not found"})
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	var profile models.Profile
	err = database.Profiles.FindOne(ctx, bson.M{"user": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"msg": "There is currently no profile for this user"})
		return
	}
	if err != nil {
		serverError(c, "DeleteEducation", err)
		return
	}

	idx := profile.EducationIndex(eduID)
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Education not found"})
		return
	}
	profile.Education = append(profile.Education[:idx], profile.Education[idx+1:]...)

	update := bson.M{"$set": bson.M{"education": profile.Education}}
	if _, err := database.Profiles.UpdateOne(ctx, bson.M{"user": userID}, update); err != nil {
		serverError(c, "DeleteEducation", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
