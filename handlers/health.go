package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"

	"mediq/utils"
)

// HealthHandler probes Mongo and Redis synchronously per request.
type HealthHandler struct {
	Mongo *mongo.Client
	Redis *redis.Client
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(mongoClient *mongo.Client, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{Mongo: mongoClient, Redis: redisClient}
}

func (h *HealthHandler) HealthHandler(c *gin.Context) {
	status := utils.CheckHealth(c.Request.Context(), h.Mongo, h.Redis)
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
