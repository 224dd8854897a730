package api

import (
	"net/http"
	"time"

	"github.com/DenverRacingSocial/orientation-go/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// RepLoginHandler handles rep view authentication. This gate is cosmetic by
// contract: the shared password only unlocks the rep rendering, and no data
// route checks the issued token.
func RepLoginHandler(c *gin.Context) {
	var loginReq struct {
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if config.RepPassword == "" || loginReq.Password != config.RepPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	claims := jwt.MapClaims{
		"role": "rep",
		"type": "rep_auth",
	}

	token, err := GenerateJWT(claims, config.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}

	c.SetCookie(
		"rep_auth", // name
		token,      // value
		86400,      // maxAge (24 hours in seconds)
		"/",        // path
		"",         // domain (empty for current domain)
		false,      // secure (set to true in production with HTTPS)
		true,       // httpOnly
	)

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"role":   "rep",
		"token":  token,
	})
}

// GenerateJWT creates a JWT token with given claims
func GenerateJWT(claims jwt.MapClaims, jwtSecret string) (string, error) {
	// Set standard claims
	claims["iat"] = time.Now().UTC().Unix()
	claims["exp"] = time.Now().UTC().Add(24 * time.Hour).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
