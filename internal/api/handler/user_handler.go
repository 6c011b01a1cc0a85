package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

type updateUserRequest struct {
	Name  string `json:"name" validate:"omitempty,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

type listUsersResponse struct {
	Data       []userResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// UserHandler handles HTTP requests for user accounts and their
// favorite crops and recipes.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// @Summary   List users
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Param     page   query  int  false  "Page number"
// @Param     limit  query  int  false  "Page size"
// @Success   200  {object}  listUsersResponse
// @Router    /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, info, err := h.service.List(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}
	data := make([]userResponse, 0, len(users))
	for i := range users {
		data = append(data, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, listUsersResponse{Data: data, Pagination: toPaginationResponse(info)})
}

// @Summary   Get a user by ID
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Param     id  path  string  true  "User ID"
// @Success   200  {object}  userResponse
// @Failure   404  {object}  errorResponse
// @Router    /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// @Summary   Update a user
// @Tags      users
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path  string             true  "User ID"
// @Param     body  body  updateUserRequest  true  "Fields to change"
// @Success   200  {object}  userResponse
// @Failure   404  {object}  errorResponse
// @Failure   409  {object}  errorResponse
// @Router    /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// @Summary   Delete a user
// @Tags      users
// @Security  BearerAuth
// @Param     id  path  string  true  "User ID"
// @Success   204
// @Failure   404  {object}  errorResponse
// @Router    /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary   List a user's favorite crops
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Param     id  path  string  true  "User ID"
// @Success   200  {array}  cropResponse
// @Failure   404  {object}  errorResponse
// @Router    /api/users/{id}/favorite-crops [get]
func (h *UserHandler) ListFavoriteCrops(c echo.Context) error {
	crops, err := h.service.ListFavoriteCrops(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	data := make([]cropResponse, 0, len(crops))
	for i := range crops {
		data = append(data, toCropResponse(&crops[i]))
	}
	return c.JSON(http.StatusOK, data)
}

// @Summary   Mark a crop as favorite
// @Tags      users
// @Security  BearerAuth
// @Param     id      path  string  true  "User ID"
// @Param     cropId  path  string  true  "Crop ID"
// @Success   204
// @Failure   404  {object}  errorResponse
// @Router    /api/users/{id}/favorite-crops/{cropId} [post]
func (h *UserHandler) AddFavoriteCrop(c echo.Context) error {
	if err := h.service.AddFavoriteCrop(c.Request().Context(), c.Param("id"), c.Param("cropId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary   Unmark a favorite crop
// @Tags      users
// @Security  BearerAuth
// @Param     id      path  string  true  "User ID"
// @Param     cropId  path  string  true  "Crop ID"
// @Success   204
// @Failure   404  {object}  errorResponse
// @Router    /api/users/{id}/favorite-crops/{cropId} [delete]
func (h *UserHandler) RemoveFavoriteCrop(c echo.Context) error {
	if err := h.service.RemoveFavoriteCrop(c.Request().Context(), c.Param("id"), c.Param("cropId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary   List a user's favorite recipes
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Param     id  path  string  true  "User ID"
// @Success   200  {array}  recipeResponse
// @Failure   404  {object}  errorResponse
// @Router    /api/users/{id}/favorite-recipes [get]
func (h *UserHandler) ListFavoriteRecipes(c echo.Context) error {
	recipes, err := h.service.ListFavoriteRecipes(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	data := make([]recipeResponse, 0, len(recipes))
	for i := range recipes {
		data = append(data, toRecipeResponse(&recipes[i]))
	}
	return c.JSON(http.StatusOK, data)
}

// @Summary   Mark a recipe as favorite
// @Tags      users
// @Security  BearerAuth
// @Param     id        path  string  true  "User ID"
// @Param     recipeId  path  string  true  "Recipe ID"
// @Success   204
// @Failure   404  {object}  errorResponse
// @Router    /api/users/{id}/favorite-recipes/{recipeId} [post]
func (h *UserHandler) AddFavoriteRecipe(c echo.Context) error {
	if err := h.service.AddFavoriteRecipe(c.Request().Context(), c.Param("id"), c.Param("recipeId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary   Unmark a favorite recipe
// @Tags      users
// @Security  BearerAuth
// @Param     id        path  string  true  "User ID"
// @Param     recipeId  path  string  true  "Recipe ID"
// @Success   204
// @Failure   404  {object}  errorResponse
// @Router    /api/users/{id}/favorite-recipes/{recipeId} [delete]
func (h *UserHandler) RemoveFavoriteRecipe(c echo.Context) error {
	if err := h.service.RemoveFavoriteRecipe(c.Request().Context(), c.Param("id"), c.Param("recipeId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
