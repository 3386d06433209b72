package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gymtrackpage/hybridx/internal/service"
)

func SetupRoutes(r *gin.Engine, h *Handlers, adminKey string) {
	r.Use(RequestIDMiddleware())
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/schedule/preview", h.PreviewSchedule)

		apiGroup.POST("/users", h.CreateUser)
		apiGroup.POST("/users/:id/program", h.AssignProgram)
		apiGroup.GET("/users/:id/workouts/today", h.GetTodayWorkout)
		apiGroup.GET("/users/:id/progress", h.GetProgress)
		apiGroup.POST("/users/:id/progress/advance", h.AdvanceProgress)
		apiGroup.POST("/users/:id/completions", h.RecordCompletion)
		apiGroup.GET("/users/:id/completions", h.ListCompletions)
		apiGroup.GET("/users/:id/completions/weekly", h.ListWeeklyCompletions)

		apiGroup.GET("/programs", func(c *gin.Context) {
			programs, err := h.programs.ListPrograms()
			if err != nil {
				c.JSON(500, gin.H{"error": err.Error()})
				return
			}
			c.JSON(200, programs)
		})
		apiGroup.GET("/programs/:id/workouts", func(c *gin.Context) {
			programID, ok := parseID(c)
			if !ok {
				return
			}
			workouts, err := h.programs.ListWorkouts(programID)
			if err != nil {
				c.JSON(500, gin.H{"error": err.Error()})
				return
			}
			c.JSON(200, workouts)
		})
		apiGroup.GET("/categories", func(c *gin.Context) {
			cats, err := h.categories.ListCategories()
			if err != nil {
				c.JSON(500, gin.H{"error": err.Error()})
				return
			}
			c.JSON(200, cats)
		})
	}

	adminGroup := r.Group("/admin")
	adminGroup.Use(AdminAuthMiddleware(adminKey))
	{
		adminGroup.POST("/programs", h.CreateProgram)
		adminGroup.POST("/programs/:id/workouts", h.CreateWorkout)
		adminGroup.POST("/categories", func(c *gin.Context) {
			var req struct {
				Name        string `json:"name" binding:"required"`
				Description string `json:"description"`
				Type        string `json:"type"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
			cat, err := h.categories.CreateCategory(service.CreateCategoryDTO{
				Name:        req.Name,
				Description: req.Description,
				Type:        req.Type,
			})
			if err != nil {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
			c.JSON(201, cat)
		})
		adminGroup.GET("/users", func(c *gin.Context) {
			users, err := h.users.GetAllUsers()
			if err != nil {
				c.JSON(500, gin.H{"error": err.Error()})
				return
			}
			c.JSON(200, users)
		})
	}
}
