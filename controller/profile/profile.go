package profile

import (
	"log"
	"net/http"
	"time"

	"matchapp/dto"
	"matchapp/middleware"
	"matchapp/model"
	"matchapp/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ProfileController(router *gin.Engine, profiles services.ProfileStore, users services.UserStore, prefs services.PreferenceStore, tokens *services.TokenService, uploads services.Uploader) {
	router.POST("/profile/create", middleware.SessionAuth(tokens), func(c *gin.Context) {
		CreateProfile(c, profiles, users)
	})
	router.GET("/profile/getAll/profiles", func(c *gin.Context) {
		GetAllProfiles(c, profiles)
	})
	router.GET("/profile/getAll/profile/:profileId", func(c *gin.Context) {
		GetProfileByID(c, profiles)
	})
	router.PUT("/profile/update/:profileId", middleware.SessionAuth(tokens), func(c *gin.Context) {
		UpdateProfile(c, profiles)
	})
	router.DELETE("/profile/delete/:profileId", middleware.SessionAuth(tokens), func(c *gin.Context) {
		DeleteProfile(c, profiles, users, prefs)
	})
	router.POST("/profile/upload/:profileId", middleware.SessionAuth(tokens), func(c *gin.Context) {
		UploadProfileImage(c, profiles, uploads)
	})
}

func CreateProfile(c *gin.Context, profiles services.ProfileStore, users services.UserStore) {
	userID := c.MustGet("userId").(string)

	var request dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dob, err := time.Parse("2006-01-02", request.DOB)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date of birth must be YYYY-MM-DD"})
		return
	}
	if age(dob) < 18 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Must be at least 18 years old"})
		return
	}
	switch request.Gender {
	case "Male", "Female", "Other":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid gender is required (Male/Female/Other)"})
		return
	}

	now := time.Now()
	profile := model.Profile{
		ProfileID:       uuid.New().String(),
		UserID:          userID,
		FirstName:       request.FirstName,
		LastName:        request.LastName,
		DOB:             dob,
		Gender:          request.Gender,
		Bio:             request.Bio,
		HeightFeet:      request.HeightFeet,
		MaritalStatusID: request.MaritalStatusID,
		ReligionID:      request.ReligionID,
		CommunityID:     request.CommunityID,
		MotherTongueID:  request.MotherTongueID,
		CountryID:       request.CountryID,
		CityID:          request.CityID,
		EducationID:     request.EducationID,
		ProfessionID:    request.ProfessionID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	ctx := c.Request.Context()
	if err := profiles.Create(ctx, &profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}
	if err := users.AddProfileID(ctx, userID, profile.ProfileID); err != nil {
		log.Printf("profile %s created but not linked to user %s: %v", profile.ProfileID, userID, err)
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Profile created successfully", "profile": profile})
}

func GetAllProfiles(c *gin.Context, profiles services.ProfileStore) {
	list, err := profiles.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(list), "profiles": list})
}

func GetProfileByID(c *gin.Context, profiles services.ProfileStore) {
	profile, err := profiles.GetByID(c.Request.Context(), c.Param("profileId"))
	if err != nil {
		if err == services.ErrProfileNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile found", "profile": profile})
}

func UpdateProfile(c *gin.Context, profiles services.ProfileStore) {
	userID := c.MustGet("userId").(string)
	profileID := c.Param("profileId")

	var request dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ctx := c.Request.Context()
	profile, err := profiles.GetByID(ctx, profileID)
	if err != nil {
		if err == services.ErrProfileNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up profile"})
		return
	}
	if profile.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this profile"})
		return
	}

	updates := profileUpdates(&request)
	if len(updates) == 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}

	if err := profiles.Update(ctx, profileID, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

func DeleteProfile(c *gin.Context, profiles services.ProfileStore, users services.UserStore, prefs services.PreferenceStore) {
	userID := c.MustGet("userId").(string)
	profileID := c.Param("profileId")

	ctx := c.Request.Context()
	profile, err := profiles.GetByID(ctx, profileID)
	if err != nil {
		if err == services.ErrProfileNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up profile"})
		return
	}

	if profile.UserID != userID {
		caller, err := users.GetByID(ctx, userID)
		if err != nil || !model.IsAdmin(caller.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this profile"})
			return
		}
	}

	if err := profiles.Delete(ctx, profileID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete profile"})
		return
	}
	// The ownership array shrinks with an atomic ArrayRemove, so a
	// concurrent profile creation cannot be lost.
	if err := users.RemoveProfileID(ctx, profile.UserID, profileID); err != nil {
		log.Printf("profile %s deleted but not unlinked from user %s: %v", profileID, profile.UserID, err)
	}
	if err := prefs.DeleteByProfile(ctx, profileID); err != nil {
		log.Printf("profile %s deleted but preferences cleanup failed: %v", profileID, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted successfully"})
}

func UploadProfileImage(c *gin.Context, profiles services.ProfileStore, uploads services.Uploader) {
	userID := c.MustGet("userId").(string)
	profileID := c.Param("profileId")

	ctx := c.Request.Context()
	profile, err := profiles.GetByID(ctx, profileID)
	if err != nil {
		if err == services.ErrProfileNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up profile"})
		return
	}
	if profile.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this profile"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	url, err := uploads.Store(ctx, file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload profile image"})
		return
	}
	if err := profiles.SetImage(ctx, profileID, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Upload Successfully", "url": url})
}

func age(dob time.Time) int {
	now := time.Now()
	years := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		years--
	}
	return years
}

func profileUpdates(request *dto.UpdateProfileRequest) []firestore.Update {
	updates := []firestore.Update{{Path: "updatedat", Value: time.Now()}}
	set := func(path, value string) {
		if value != "" {
			updates = append(updates, firestore.Update{Path: path, Value: value})
		}
	}
	set("firstname", request.FirstName)
	set("lastname", request.LastName)
	set("bio", request.Bio)
	set("heightfeet", request.HeightFeet)
	set("maritalstatusid", request.MaritalStatusID)
	set("religionid", request.ReligionID)
	set("communityid", request.CommunityID)
	set("mothertongueid", request.MotherTongueID)
	set("countryid", request.CountryID)
	set("cityid", request.CityID)
	set("educationid", request.EducationID)
	set("professionid", request.ProfessionID)
	return updates
}
