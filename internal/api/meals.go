package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/pageza/mealprep-ai/backend/internal/middleware"
	"github.com/pageza/mealprep-ai/backend/internal/service"
	"github.com/pageza/mealprep-ai/backend/internal/types"
)

const errNoIngredients = "At least one ingredient is required"

// MealHandler handles meal generation requests
type MealHandler struct {
	meals service.MealGenerator
	log   *logrus.Logger
}

// NewMealHandler creates a new MealHandler instance
func NewMealHandler(meals service.MealGenerator, log *logrus.Logger) *MealHandler {
	return &MealHandler{
		meals: meals,
		log:   log,
	}
}

// RegisterRoutes registers the meal routes
func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/generate-meals", h.GenerateMeals)
	router.GET("/health", h.Health)
}

// GenerateMeals handles POST /api/generate-meals
func (h *MealHandler) GenerateMeals(c *gin.Context) {
	var req types.MealRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		// A well-formed body without ingredients is reported as such, whatever else is wrong with it.
		if len(req.Ingredients) == 0 && !isMalformedJSON(err) {
			abortWithDetail(c, http.StatusBadRequest, errNoIngredients)
			return
		}
		abortWithDetail(c, http.StatusUnprocessableEntity, describeBindingError(err))
		return
	}

	if len(req.Ingredients) == 0 {
		abortWithDetail(c, http.StatusBadRequest, errNoIngredients)
		return
	}

	meals, err := h.meals.GenerateMeals(c.Request.Context(), &req)
	if err != nil {
		entry := h.log.WithError(err).WithField("request_id", middleware.GetRequestID(c))
		switch service.KindOf(err) {
		case service.KindInvalidInput:
			abortWithDetail(c, http.StatusBadRequest, err.Error())
		case service.KindUpstream:
			entry.Warn("meal generation failed")
			abortWithDetail(c, http.StatusInternalServerError, err.Error())
		default:
			entry.Error("Unexpected error")
			abortWithDetail(c, http.StatusInternalServerError, middleware.InternalErrorMessage)
		}
		return
	}

	c.JSON(http.StatusOK, types.MealResponse{Meals: meals})
}

// Health handles GET /api/health. It never touches the upstream API.
func (h *MealHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "MealPrep AI",
	})
}

func abortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, middleware.ErrorResponse{Detail: detail})
}

func isMalformedJSON(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

// describeBindingError turns binding failures into a caller-facing message naming each bad field
func describeBindingError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				msgs = append(msgs, field+" is required")
			case "min":
				msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
			case "max":
				msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
			default:
				msgs = append(msgs, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
			}
		}
		return strings.Join(msgs, "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type)
	}

	return "Invalid request body: " + err.Error()
}
