package handlers

import (
	"net/http"
	"os"

	"github.com/evermore-weddings/api/internal/helpers"
	"github.com/evermore-weddings/api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/supabase-community/gotrue-go/types"
)

func SignUp(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		createdUser, err := u.SignUp(req.Email, req.Password)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		c.JSON(201, createdUser)
	}
}

func AuthenticateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error(), "message": "invalid request payload"})
			return
		}

		authResponse, err := u.AuthenticateUser(req.Email, req.Password)
		if err != nil {
			c.JSON(401, gin.H{"error": err.Error(), "message": "invalid email or password"})
			return
		}

		isProduction := os.Getenv("GIN_MODE") == "production"

		if tokenRes, ok := authResponse.(*types.TokenResponse); ok && tokenRes.AccessToken != "" {
			// Access token - expires in 1 hour (3600 seconds)
			c.SetCookie(
				"access_token",
				tokenRes.AccessToken,
				tokenRes.ExpiresIn,
				"/",
				"", // let Gin pick current domain
				isProduction,
				true,
			)

			// Refresh token - expires in 30 days
			c.SetCookie(
				"refresh_token",
				tokenRes.RefreshToken,
				3600*24*30,
				"/",
				"",
				isProduction,
				true,
			)

			// Return user info but not tokens
			c.JSON(200, gin.H{
				"user": tokenRes.User,
			})
			return
		}

		c.JSON(500, gin.H{"error": "invalid token response"})
	}
}

// Profile returns the authenticated user's identity plus whether the
// admin dashboard should be shown.
func Profile(u *services.UserService, access *services.AccessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userClaims, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		claims, ok := userClaims.(*helpers.SessionClaims)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user claims"})
			return
		}

		userId := claims.UserUUID()
		isAdmin := access.IsAdmin(c.Request.Context(), userId)

		accessToken, _ := c.Cookie("access_token")
		profile, err := u.GetProfile(c.Request.Context(), userId, accessToken)
		if err != nil {
			// Profile row may lag behind signup; identity still stands.
			c.JSON(200, gin.H{
				"user_id":  claims.UserID,
				"email":    claims.Email,
				"is_admin": isAdmin,
			})
			return
		}

		c.JSON(200, gin.H{
			"user_id":   claims.UserID,
			"email":     profile.Email,
			"full_name": profile.FullName,
			"phone":     profile.Phone,
			"is_admin":  isAdmin,
		})
	}
}
