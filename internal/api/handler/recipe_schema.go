package handler

import (
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/domain"
	"github.com/HeleenBonte/GardeningAppDeploy/internal/core/ports"
)

type recipeQuantityRequest struct {
	IngredientID  string  `json:"ingredient_id"  validate:"required"`
	MeasurementID string  `json:"measurement_id" validate:"required"`
	Quantity      float64 `json:"quantity"       validate:"required,gt=0"`
}

type recipeStepRequest struct {
	Description string `json:"description" validate:"required"`
}

type recipeRequest struct {
	Name        string                  `json:"name"        validate:"required,max=150"`
	AuthorID    string                  `json:"author_id"`
	Description string                  `json:"description"`
	PrepTime    string                  `json:"prep_time"`
	CookTime    string                  `json:"cook_time"`
	ImageURL    string                  `json:"image_url"`
	CourseID    string                  `json:"course_id"`
	CategoryID  string                  `json:"category_id"`
	Quantities  []recipeQuantityRequest `json:"quantities"  validate:"dive"`
	Steps       []recipeStepRequest     `json:"steps"       validate:"dive"`
}

func (r recipeRequest) toInput() ports.RecipeInput {
	in := ports.RecipeInput{
		Name:        r.Name,
		AuthorID:    r.AuthorID,
		Description: r.Description,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		ImageURL:    r.ImageURL,
		CourseID:    r.CourseID,
		CategoryID:  r.CategoryID,
	}
	for _, q := range r.Quantities {
		in.Quantities = append(in.Quantities, ports.RecipeQuantityInput{
			IngredientID:  q.IngredientID,
			MeasurementID: q.MeasurementID,
			Quantity:      q.Quantity,
		})
	}
	for _, st := range r.Steps {
		in.Steps = append(in.Steps, ports.RecipeStepInput{Description: st.Description})
	}
	return in
}

type recipeQuantityResponse struct {
	IngredientID  string  `json:"ingredient_id"`
	MeasurementID string  `json:"measurement_id"`
	Quantity      float64 `json:"quantity"`
}

type recipeStepResponse struct {
	Number      int    `json:"number"`
	Description string `json:"description"`
}

type recipeResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	AuthorID    string                   `json:"author_id,omitempty"`
	Description string                   `json:"description,omitempty"`
	PrepTime    string                   `json:"prep_time,omitempty"`
	CookTime    string                   `json:"cook_time,omitempty"`
	ImageURL    string                   `json:"image_url,omitempty"`
	CourseID    string                   `json:"course_id,omitempty"`
	CategoryID  string                   `json:"category_id,omitempty"`
	Quantities  []recipeQuantityResponse `json:"quantities"`
	Steps       []recipeStepResponse     `json:"steps"`
}

func toRecipeResponse(recipe *domain.Recipe) recipeResponse {
	resp := recipeResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		AuthorID:    recipe.AuthorID,
		Description: recipe.Description,
		PrepTime:    recipe.PrepTime,
		CookTime:    recipe.CookTime,
		ImageURL:    recipe.ImageURL,
		CourseID:    recipe.CourseID,
		CategoryID:  recipe.CategoryID,
		Quantities:  make([]recipeQuantityResponse, 0, len(recipe.Quantities)),
		Steps:       make([]recipeStepResponse, 0, len(recipe.Steps)),
	}
	for _, q := range recipe.Quantities {
		resp.Quantities = append(resp.Quantities, recipeQuantityResponse{
			IngredientID:  q.IngredientID,
			MeasurementID: q.MeasurementID,
			Quantity:      q.Quantity,
		})
	}
	for _, st := range recipe.Steps {
		resp.Steps = append(resp.Steps, recipeStepResponse{Number: st.Number, Description: st.Description})
	}
	return resp
}

type listRecipesResponse struct {
	Data       []recipeResponse   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toListRecipesResponse(recipes []domain.Recipe, info ports.PageInfo) listRecipesResponse {
	data := make([]recipeResponse, 0, len(recipes))
	for i := range recipes {
		data = append(data, toRecipeResponse(&recipes[i]))
	}
	return listRecipesResponse{Data: data, Pagination: toPaginationResponse(info)}
}
