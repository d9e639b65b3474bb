package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/MOTAHAR124/AI-Trip-Planner/pkg/utils"
)

func HealthCheckHandler(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"status": "ok"}, "Service healthy")
}
