package newsletter

import (
	"log"
	"net/http"
	"strings"
	"time"

	"zuri_back_end/internal/database"
	"zuri_back_end/internal/models"
	"zuri_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// Subscribe inscrit un email à la newsletter. L'inscription existante
// n'est pas une erreur : on répond 200 "déjà inscrit" — le LWT rend le
// doublon distinguable de toute autre panne. POST /api/newsletter/subscribe
func Subscribe(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email invalide"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	sub := models.NewsletterSubscriber{Email: email, SubscribedAt: time.Now().UTC()}
	applied, err := session.Query(`INSERT INTO newsletter_subscribers (email, subscribed_at) VALUES (?, ?) IF NOT EXISTS`,
		sub.Email, sub.SubscribedAt).
		WithContext(c.Request.Context()).MapScanCAS(map[string]interface{}{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur inscription newsletter"})
		return
	}
	if !applied {
		c.JSON(http.StatusOK, gin.H{"message": "Vous êtes déjà inscrit(e) à la newsletter", "subscribed": true})
		return
	}

	// Email de bienvenue : best-effort, l'inscription est déjà actée.
	go func(to string) {
		if err := utils.SendMail(to, "Welcome to the Zuri list", utils.NewsletterWelcomeHTML(to)); err != nil {
			log.Printf("⚠️ Email de bienvenue non envoyé à %s: %v", to, err)
		}
	}(email)

	log.Printf("✅ Nouvel abonné newsletter: %s", email)
	c.JSON(http.StatusCreated, gin.H{"message": "Inscription confirmée !", "subscribed": true})
}

// Unsubscribe désinscrit un email. DELETE /api/newsletter/unsubscribe
func Unsubscribe(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email invalide"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`DELETE FROM newsletter_subscribers WHERE email = ?`, email).
		WithContext(c.Request.Context()).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur désinscription"})
		return
	}

	log.Printf("ℹ️ Désinscription newsletter: %s", email)
	c.JSON(http.StatusOK, gin.H{"message": "Désinscription effectuée", "subscribed": false})
}
