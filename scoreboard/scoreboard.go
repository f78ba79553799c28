package scoreboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lixenwraith/cookie-jar/score"
)

var startTime = time.Now()

// SubmitRequest is the body of POST /api/v1/scores
type SubmitRequest struct {
	Score *int `json:"score" binding:"required"`
}

// Register mounts the scoreboard routes under /api/v1
func Register(router *gin.Engine, store score.Store, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", Health)
		v1.GET("/scores", ListScores(store, log))
		v1.POST("/scores", SubmitScore(store, log))
	}
}

// Health returns server health status
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "cookie-jar-scores",
		"uptime":  time.Since(startTime).String(),
	})
}

// ListScores returns the stored high scores, highest first
func ListScores(store score.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		scores, err := store.Load(c.Request.Context())
		if err != nil {
			log.Warn("failed to load high scores", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "score store unavailable"})
			return
		}
		if scores == nil {
			scores = []int{}
		}
		c.JSON(http.StatusOK, gin.H{"scores": scores})
	}
}

// SubmitScore records a finished game's score and returns the updated list
func SubmitScore(store score.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "body must be {\"score\": n}"})
			return
		}
		if *req.Score < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "score must be non-negative"})
			return
		}

		ctx := c.Request.Context()
		if err := store.Save(ctx, *req.Score); err != nil {
			log.Warn("failed to save score", zap.Int("score", *req.Score), zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "score store unavailable"})
			return
		}

		scores, err := store.Load(ctx)
		if err != nil {
			log.Warn("failed to load high scores", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "score store unavailable"})
			return
		}
		log.Info("score submitted", zap.Int("score", *req.Score))
		c.JSON(http.StatusCreated, gin.H{"scores": scores})
	}
}
