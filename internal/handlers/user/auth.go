package user

import (
	"errors"
	"log"
	"net/http"
	"time"

	"zuri_back_end/internal/database"
	"zuri_back_end/internal/models"
	"zuri_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// Register crée un compte local. POST /api/auth/register
func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	user := models.User{
		ID:       gocql.TimeUUID().String(),
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     "customer",
	}

	// LWT sur l'email : l'échec d'application signifie "compte existant",
	// distinct de toute autre erreur.
	applied, err := session.Query(`INSERT INTO users (email, user_id, name, password, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?) IF NOT EXISTS`,
		user.Email, mustUUID(user.ID), user.Name, user.Password, user.Role, time.Now().UTC()).
		WithContext(c.Request.Context()).MapScanCAS(map[string]interface{}{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}
	if !applied {
		c.JSON(http.StatusConflict, gin.H{"error": "Un compte avec cet email existe déjà"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	log.Printf("✅ Compte créé: %s", user.Email)
	c.JSON(http.StatusCreated, gin.H{
		"token":  token,
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
		"role":   user.Role,
	})
}

// Login authentifie un compte local. POST /api/auth/login
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var user models.User
	var userID gocql.UUID
	err = session.Query(`SELECT user_id, name, password, role FROM users WHERE email = ?`, input.Email).
		WithContext(c.Request.Context()).
		Scan(&userID, &user.Name, &user.Password, &user.Role)
	if errors.Is(err, gocql.ErrNotFound) || (err == nil && !utils.CheckPassword(user.Password, input.Password)) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	user.ID = userID.String()
	user.Email = input.Email

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"userId": user.ID,
		"email":  user.Email,
		"name":   user.Name,
		"role":   user.Role,
	})
}

// Me retourne l'identité du token courant. GET /api/me
func Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"userId": c.GetString("user_id"),
		"email":  c.GetString("email"),
		"role":   c.GetString("role"),
	})
}

func mustUUID(s string) gocql.UUID {
	id, err := gocql.ParseUUID(s)
	if err != nil {
		panic("uuid invalide: " + s)
	}
	return id
}
