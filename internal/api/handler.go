package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gymtrackpage/hybridx/internal/models"
	"github.com/gymtrackpage/hybridx/internal/service"
	"gorm.io/gorm"
)

// Handlers содержит зависимости от сервисов
type Handlers struct {
	workouts    *service.WorkoutService
	completions *service.CompletionService
	programs    *service.ProgramService
	categories  *service.CategoryService
	users       *service.UserService
}

func NewHandlers(
	workouts *service.WorkoutService,
	completions *service.CompletionService,
	programs *service.ProgramService,
	categories *service.CategoryService,
	users *service.UserService,
) *Handlers {
	return &Handlers{
		workouts:    workouts,
		completions: completions,
		programs:    programs,
		categories:  categories,
		users:       users,
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "неверный ID"})
		return 0, false
	}
	return uint(id), true
}

// GetTodayWorkout - тренировка на сегодня.
// 200 — тренировка, 204 — в программе нет тренировок,
// 404 — программа не назначена.
func (h *Handlers) GetTodayWorkout(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	workout, err := h.workouts.ResolveToday(userID)
	switch {
	case errors.Is(err, service.ErrNoProgramAssigned):
		c.JSON(http.StatusNotFound, gin.H{"error": "no program assigned"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrProgressConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "try again"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	case workout == nil:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, workout)
	}
}

func (h *Handlers) GetProgress(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	progress, err := h.workouts.GetProgress(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "progress not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *Handlers) AdvanceProgress(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	progress, err := h.workouts.AdvanceProgress(userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "progress not found"})
	case errors.Is(err, service.ErrProgressConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "try again"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, progress)
	}
}

func (h *Handlers) RecordCompletion(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		WorkoutID   uint      `json:"workout_id" binding:"required"`
		CompletedAt time.Time `json:"completed_at"`
		Skipped     bool      `json:"skipped"`
		Notes       string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completion, err := h.completions.RecordCompletion(service.RecordCompletionDTO{
		UserID:      userID,
		WorkoutID:   req.WorkoutID,
		CompletedAt: req.CompletedAt,
		Skipped:     req.Skipped,
		Notes:       req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, completion)
}

func parseWindow(c *gin.Context) (from, to *time.Time, ok bool) {
	for _, q := range []struct {
		name string
		dst  **time.Time
	}{{"from", &from}, {"to", &to}} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad " + q.name + ": " + err.Error()})
			return nil, nil, false
		}
		*q.dst = &t
	}
	return from, to, true
}

func (h *Handlers) ListCompletions(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	completions, err := h.completions.ListCompletions(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, completions)
}

func (h *Handlers) ListWeeklyCompletions(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}
	if from == nil || to == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	completions, err := h.completions.ListWeeklyCompletions(userID, *from, *to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(completions),
		"completions": completions,
	})
}

// PreviewSchedule - расчёт фазы и позиции без записи прогресса
func (h *Handlers) PreviewSchedule(c *gin.Context) {
	durationWeeks, err := strconv.Atoi(c.Query("duration_weeks"))
	if err != nil || durationWeeks < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad duration_weeks"})
		return
	}

	var eventDate *time.Time
	if raw := c.Query("event_date"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad event_date: " + err.Error()})
			return
		}
		eventDate = &t
	}

	c.JSON(http.StatusOK, service.ComputeSchedule(time.Now(), durationWeeks, eventDate))
}

func (h *Handlers) CreateUser(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email" binding:"required"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.CreateUser(service.CreateUserDTO{Name: req.Name, Email: req.Email, Role: req.Role})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handlers) AssignProgram(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		ProgramID uint       `json:"program_id" binding:"required"`
		EventDate *time.Time `json:"event_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.AssignProgram(userID, service.AssignProgramDTO{
		ProgramID: req.ProgramID,
		EventDate: req.EventDate,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handlers) CreateProgram(c *gin.Context) {
	var req struct {
		Name             string `json:"name" binding:"required"`
		Description      string `json:"description"`
		Difficulty       string `json:"difficulty"`
		DurationWeeks    int    `json:"duration_weeks" binding:"required"`
		SessionsPerWeek  int    `json:"sessions_per_week"`
		CategoryID       *uint  `json:"category_id"`
		TargetEventWeeks *int   `json:"target_event_weeks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := h.programs.CreateProgram(service.CreateProgramDTO{
		Name:             req.Name,
		Description:      req.Description,
		Difficulty:       req.Difficulty,
		DurationWeeks:    req.DurationWeeks,
		SessionsPerWeek:  req.SessionsPerWeek,
		CategoryID:       req.CategoryID,
		TargetEventWeeks: req.TargetEventWeeks,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, program)
}

func (h *Handlers) CreateWorkout(c *gin.Context) {
	programID, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Week                     int                 `json:"week" binding:"required"`
		Day                      int                 `json:"day" binding:"required"`
		Name                     string              `json:"name" binding:"required"`
		Description              string              `json:"description"`
		EstimatedDurationMinutes int                 `json:"estimated_duration_minutes"`
		Exercises                models.ExerciseList `json:"exercises"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := h.programs.AddWorkout(service.CreateWorkoutDTO{
		ProgramID:                programID,
		Week:                     req.Week,
		Day:                      req.Day,
		Name:                     req.Name,
		Description:              req.Description,
		EstimatedDurationMinutes: req.EstimatedDurationMinutes,
		Exercises:                req.Exercises,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, workout)
}
