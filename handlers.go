package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	scalargo "github.com/bdpiprava/scalar-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pricewise/pkg/api"
	"pricewise/pkg/catalog"
	"pricewise/pkg/httpx"
	"pricewise/pkg/insight"
	"pricewise/pkg/models"
	"pricewise/pkg/synth"
)

// Insight text for every product after the first in a result set.
const alternativeInsight = "Competitive alternative with solid features."

type app struct {
	catalog  *catalog.Catalog
	synth    *synth.Synthesizer
	insights *insight.Service
}

func newRouter(a *app) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.CORS())

	r.GET("/", a.rootHandler)
	r.GET("/health", a.healthHandler)
	r.GET("/docs", docsHandler)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/search", a.searchHandler)
		apiGroup.POST("/search/image", a.imageSearchHandler)
		apiGroup.GET("/products/:id", a.productHandler)
	}
	return r
}

func (a *app) searchHandler(c *gin.Context) {
	q := c.Query("q")
	if strings.TrimSpace(q) == "" {
		api.AbortBadRequest(c, "Query cannot be empty")
		return
	}

	templates := a.catalog.Match(q)
	insightText := a.insights.Insight(c.Request.Context(), q)

	products := make([]models.Product, 0, len(templates))
	for i, tpl := range templates {
		p := a.synth.Product(strconv.Itoa(i+1), tpl)
		if i == 0 {
			p.AIInsights = insightText
		} else {
			p.AIInsights = alternativeInsight
		}
		products = append(products, p)
	}

	c.JSON(http.StatusOK, models.SearchResponse{
		Products:     products,
		TotalResults: len(products),
		Query:        q,
	})
}

// visualTemplate backs image search. The uploaded bytes are not inspected
// by the mock logic; only their safe handling matters.
var visualTemplate = catalog.Template{
	Name:      "Product from Image - Premium",
	Image:     "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
	BasePrice: 249,
	Category:  "Electronics",
}

func (a *app) imageSearchHandler(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		api.AbortBadRequest(c, "Image file is required")
		return
	}

	tmpPath := filepath.Join(os.TempDir(), "pricewise-upload-"+uuid.NewString()+filepath.Ext(file.Filename))
	defer os.Remove(tmpPath)
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		api.AbortInternalServerError(c, err)
		return
	}

	analysis := a.insights.Insight(c.Request.Context(), "visual search")

	p := a.synth.Product("img-1", visualTemplate)
	p.AIInsights = "Image Analysis: " + truncateRunes(analysis, 100) + "..."

	c.JSON(http.StatusOK, models.SearchResponse{
		Products:     []models.Product{p},
		TotalResults: 1,
		Query:        "visual search",
	})
}

func (a *app) productHandler(c *gin.Context) {
	c.JSON(http.StatusOK, sampleProduct(c.Param("id")))
}

// sampleProduct is the fixed detail-view payload. Only the id is echoed
// from the request; nothing is looked up.
func sampleProduct(id string) models.Product {
	return models.Product{
		ID:    id,
		Name:  "Sony WH-1000XM5 Wireless Headphones",
		Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
		Prices: []models.PriceQuote{
			{Store: "Amazon", Price: 348, URL: "https://amazon.com", InStock: true},
			{Store: "Best Buy", Price: 379, URL: "https://bestbuy.com", InStock: true},
			{Store: "Walmart", Price: 359, URL: "https://walmart.com", InStock: false},
		},
		LowestPrice:  348,
		HighestPrice: 379,
		AveragePrice: 362,
		PriceHistory: []models.HistoryPoint{
			{Date: "2024-01-01", Price: 399},
			{Date: "2024-01-15", Price: 379},
			{Date: "2024-02-01", Price: 369},
			{Date: "2024-02-15", Price: 359},
			{Date: "2024-03-01", Price: 348},
		},
		AIInsights: "Price at 3-month low. Best time to buy! Consider XM4 for budget option.",
		Rating:     4.8,
		Reviews:    12453,
		Category:   "Electronics",
	}
}

func (a *app) rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "PriceWise API",
		"version": "1.0",
		"endpoints": []string{
			"GET /api/search?q={query}",
			"POST /api/search/image",
			"GET /api/products/{id}",
		},
	})
}

func (a *app) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func docsHandler(c *gin.Context) {
	html, err := scalargo.NewV2(
		scalargo.WithSpecDir("./"),
		scalargo.WithMetaDataOpts(
			scalargo.WithTitle("PriceWise API"),
		),
	)
	if err != nil {
		api.AbortInternalServerError(c, err)
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
