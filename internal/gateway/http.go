package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClassifyRequest is the body of POST /v1/classify.
type ClassifyRequest struct {
	Items []Request `json:"items" binding:"required,min=1,dive"`
}

// ClassifyResponse is the body of a successful classification call.
// Results are parallel to the request items.
type ClassifyResponse struct {
	Results []Result `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewRouter builds the gateway's HTTP surface around a Classifier.
func NewRouter(svc Classifier, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/v1/classify", func(c *gin.Context) {
		var req ClassifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		results, err := svc.Classify(c.Request.Context(), req.Items)
		if err != nil {
			log.Error("classification batch failed",
				zap.Int("items", len(req.Items)),
				zap.Error(err))
			c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, ClassifyResponse{Results: results})
	})

	return router
}
