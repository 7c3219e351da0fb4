package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pages de politique de la boutique : contenu long, statique, servi tel
// quel au front. Contenu client en anglais (marchés NG/GH/ZA/US).
type Page struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Updated string `json:"updated"`
	Body    string `json:"body"`
}

var policyPages = map[string]Page{
	"privacy": {
		Slug:    "privacy",
		Title:   "Privacy Policy",
		Updated: "2026-05-02",
		Body: `<h2>Privacy Policy</h2>
<p>Zuri collects only the information needed to process your orders: your name, contact
details, shipping address and order history. Payment card details never reach our
servers — they are handled entirely by our payment provider.</p>
<p>We use your email address to send order confirmations and, if you opted in, our
newsletter. You can unsubscribe at any time from any newsletter email.</p>
<p>Your data is stored within our infrastructure and is never sold to third parties.
To request deletion of your account and data, contact support@zuri.shop.</p>`,
	},
	"shipping": {
		Slug:    "shipping",
		Title:   "Shipping Policy",
		Updated: "2026-05-02",
		Body: `<h2>Shipping Policy</h2>
<p>We currently ship to Nigeria, Ghana, South Africa and the United States. Standard
delivery takes 5–7 working days; express options are shown at checkout.</p>
<p>Shipping is free on all orders during our launch period. Once an order leaves our
studio you will receive a confirmation email with your order number — keep it, it is
the reference for all delivery enquiries.</p>`,
	},
	"returns": {
		Slug:    "returns",
		Title:   "Returns & Exchanges",
		Updated: "2026-03-18",
		Body: `<h2>Returns &amp; Exchanges</h2>
<p>Items can be returned within 14 days of delivery, unworn and with tags attached.
Start a return by replying to your order confirmation email with your order number.</p>
<p>Refunds are issued to the original payment method within 10 working days of the
returned items reaching us. Exchanges are free; return shipping for refunds is at the
customer's cost unless the item arrived damaged.</p>`,
	},
	"cookies": {
		Slug:    "cookies",
		Title:   "Cookie Policy",
		Updated: "2026-03-18",
		Body: `<h2>Cookie Policy</h2>
<p>We use strictly necessary cookies to keep your session and cart working, and
anonymous analytics cookies to understand how the shop is used. No advertising
trackers are set by this site.</p>
<p>You can clear or block cookies in your browser settings; the cart and sign-in will
stop working without the strictly necessary ones.</p>`,
	},
}

// List retourne les métadonnées des pages. GET /api/pages
func List(c *gin.Context) {
	out := []gin.H{}
	for _, slug := range []string{"privacy", "shipping", "returns", "cookies"} {
		p := policyPages[slug]
		out = append(out, gin.H{"slug": p.Slug, "title": p.Title, "updated": p.Updated})
	}
	c.JSON(http.StatusOK, gin.H{"pages": out})
}

// Get retourne une page complète. GET /api/pages/:slug
func Get(c *gin.Context) {
	page, ok := policyPages[c.Param("slug")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page introuvable"})
		return
	}
	c.JSON(http.StatusOK, page)
}
