package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hirescreen/middleware"
	"hirescreen/models"
	"hirescreen/utils"
)

type UserController struct {
	userModel *models.UserModel
}

func NewUserController(userModel *models.UserModel) *UserController {
	return &UserController{userModel: userModel}
}

func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, exists := ctx.Get(middleware.ContextUserID)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := c.userModel.GetByID(userID.(int))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to fetch user profile", err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Profile fetched", gin.H{
		"id":     user.ID,
		"email":  user.Email,
		"name":   user.Name,
		"role":   user.Role,
		"active": user.Active,
	})
}

// ListUsers is superadmin-only; routing enforces the role.
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userModel.List()
	if err != nil {
		utils.InternalServerError(ctx, "Failed to list users", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Users fetched", users)
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetUserActive activates or deactivates a recruiter account.
func (c *UserController) SetUserActive(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid user id", err)
		return
	}

	var req setActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(ctx, err)
		return
	}

	// A superadmin cannot lock themselves out.
	if callerID, _ := ctx.Get(middleware.ContextUserID); callerID == id && !*req.Active {
		utils.BadRequestError(ctx, "Cannot deactivate your own account", nil)
		return
	}

	if err := c.userModel.SetActive(id, *req.Active); err != nil {
		utils.InternalServerError(ctx, "Failed to update user", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "User updated", gin.H{"id": id, "active": *req.Active})
}
