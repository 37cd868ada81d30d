package lookup

import (
	"net/http"

	"matchapp/dto"
	"matchapp/middleware"
	"matchapp/model"
	"matchapp/services"

	"github.com/gin-gonic/gin"
)

// LookupController registers the same four handlers for every taxonomy
// kind in the closed set. Mutation is super admin only; reads are public.
func LookupController(router *gin.Engine, store services.LookupStore, users services.UserStore, tokens *services.TokenService) {
	superAdmin := middleware.RequireRole(users, model.RoleSuperAdmin)

	for _, kind := range services.LookupKinds {
		kind := kind
		router.POST("/"+kind.Path+"/create", middleware.SessionAuth(tokens), superAdmin, func(c *gin.Context) {
			CreateLookup(c, store, kind)
		})
		router.GET("/"+kind.Path+"/getAll", func(c *gin.Context) {
			GetAllLookups(c, store, kind)
		})
		router.PUT("/"+kind.Path+"/update/:id", middleware.SessionAuth(tokens), superAdmin, func(c *gin.Context) {
			UpdateLookup(c, store, kind)
		})
		router.DELETE("/"+kind.Path+"/delete/:id", middleware.SessionAuth(tokens), superAdmin, func(c *gin.Context) {
			DeleteLookup(c, store, kind)
		})
	}
}

func CreateLookup(c *gin.Context, store services.LookupStore, kind services.LookupKind) {
	var request dto.CreateLookupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	item, err := store.Create(c.Request.Context(), kind, request.Name, request.Description)
	if err != nil {
		if err == services.ErrNameTaken {
			c.JSON(http.StatusBadRequest, gin.H{"error": "This name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Created successfully", "item": item})
}

func GetAllLookups(c *gin.Context, store services.LookupStore, kind services.LookupKind) {
	items, err := store.List(c.Request.Context(), kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

func UpdateLookup(c *gin.Context, store services.LookupStore, kind services.LookupKind) {
	var request dto.UpdateLookupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := store.Update(c.Request.Context(), kind, c.Param("id"), request.Name, request.Description)
	if err != nil {
		if err == services.ErrLookupNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated successfully", "item": item})
}

func DeleteLookup(c *gin.Context, store services.LookupStore, kind services.LookupKind) {
	if err := store.Delete(c.Request.Context(), kind, c.Param("id")); err != nil {
		if err == services.ErrLookupNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
