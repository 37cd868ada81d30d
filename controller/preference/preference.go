package preference

import (
	"net/http"
	"time"

	"matchapp/dto"
	"matchapp/middleware"
	"matchapp/model"
	"matchapp/services"

	"github.com/gin-gonic/gin"
)

func PreferenceController(router *gin.Engine, prefs services.PreferenceStore, profiles services.ProfileStore, tokens *services.TokenService) {
	router.PUT("/preference/:profileId", middleware.SessionAuth(tokens), func(c *gin.Context) {
		UpsertPreference(c, prefs, profiles)
	})
	router.GET("/preference/:profileId", func(c *gin.Context) {
		GetPreference(c, prefs)
	})
}

// UpsertPreference creates or replaces the partner preference of a profile
// the caller owns.
func UpsertPreference(c *gin.Context, prefs services.PreferenceStore, profiles services.ProfileStore) {
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

	var request dto.PreferenceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	pref := model.PartnerPreference{
		ProfileID:        profileID,
		AgeRange:         model.Range{Min: request.AgeRange.Min, Max: request.AgeRange.Max},
		HeightRange:      model.Range{Min: request.HeightRange.Min, Max: request.HeightRange.Max},
		MaritalStatusIDs: request.MaritalStatusIDs,
		ReligionIDs:      request.ReligionIDs,
		MotherTongueIDs:  request.MotherTongueIDs,
		CommunityIDs:     request.CommunityIDs,
		CountryIDs:       request.CountryIDs,
		EducationIDs:     request.EducationIDs,
		ProfessionIDs:    request.ProfessionIDs,
		UpdatedAt:        time.Now(),
	}
	if pref.AgeRange.Min == 0 {
		pref.AgeRange.Min = 18
	}
	if pref.AgeRange.Max == 0 {
		pref.AgeRange.Max = 100
	}

	created, err := prefs.Upsert(ctx, &pref)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}
	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Preferences created", "preference": pref})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preferences updated", "preference": pref})
}

func GetPreference(c *gin.Context, prefs services.PreferenceStore) {
	pref, err := prefs.GetByProfile(c.Request.Context(), c.Param("profileId"))
	if err != nil {
		if err == services.ErrPreferenceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Preferences not found for this profile"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up preferences"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preferences found", "preference": pref})
}
