package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipes/backend/internal/middleware"
	"github.com/pageza/recipes/backend/internal/service"
	"github.com/pageza/recipes/backend/internal/types"
)

type RecipeHandler struct {
	recipes service.IRecipeService
	logger  *zap.Logger
}

func NewRecipeHandler(recipes service.IRecipeService, logger *zap.Logger) *RecipeHandler {
	useJSONFieldNames()
	return &RecipeHandler{
		recipes: recipes,
		logger:  logger,
	}
}

func (h *RecipeHandler) RegisterRoutes(router gin.IRouter) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("/", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/", h.CreateRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to fetch recipes", err)
		return
	}

	c.JSON(http.StatusOK, types.NewRecipeList(recipes))
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithValidation(c, FieldError{Field: "id", Message: "must be an integer"})
		return
	}
	if id <= 0 {
		abortWithDetail(c, http.StatusNotFound, detailRecipeNotFound)
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			abortWithDetail(c, http.StatusNotFound, detailRecipeNotFound)
			return
		}
		h.internalError(c, "Failed to fetch recipe", err)
		return
	}

	c.JSON(http.StatusOK, types.NewRecipe(recipe))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithValidation(c, bindingErrorDetails(err)...)
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), req.ToModel())
	if err != nil {
		h.internalError(c, "Failed to create recipe", err)
		return
	}

	c.JSON(http.StatusOK, types.NewRecipe(recipe))
}

func (h *RecipeHandler) internalError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg,
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.Error(err),
	)
	abortWithDetail(c, http.StatusInternalServerError, detailInternal)
}
