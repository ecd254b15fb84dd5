package handler

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/middleware"
	"tradbazar/internal/usecase"
	"tradbazar/pkg/response"
	"tradbazar/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productRequest struct {
	Name           string  `json:"name" validate:"required"`
	Category       string  `json:"category" validate:"required"`
	Description    string  `json:"description"`
	Quantity       int     `json:"quantity" validate:"min=0"`
	Unit           string  `json:"unit" validate:"required"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	Image          string  `json:"image"`
	OriginDistrict string  `json:"origin_district"`
	OriginVillage  string  `json:"origin_village"`
	SellerStory    string  `json:"seller_story"`
	ProductType    string  `json:"product_type"`
}

func (r productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:           r.Name,
		Category:       r.Category,
		Description:    r.Description,
		Quantity:       r.Quantity,
		Unit:           r.Unit,
		Price:          r.Price,
		Image:          r.Image,
		OriginDistrict: r.OriginDistrict,
		OriginVillage:  r.OriginVillage,
		SellerStory:    r.SellerStory,
		ProductType:    r.ProductType,
	}
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), middleware.Email(c), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListPublicProducts(c.Request().Context(), c.QueryParam("category"), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) ListProductsByCategory(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListPublicProducts(c.Request().Context(), c.Param("name"), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListSellerProducts(c.Request().Context(), middleware.Email(c), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) ListAllProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.ListAllProducts(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), middleware.Email(c), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	role, _ := c.Get("role").(string)
	err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id"), middleware.Email(c), role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"deleted": true})
}

type verifyProductRequest struct {
	Status string `json:"status" validate:"required,oneof=verified rejected"`
}

func (h *ProductHandler) VerifyProduct(c echo.Context) error {
	var req verifyProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.VerifyProduct(c.Request().Context(), c.Param("id"), middleware.Email(c), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

type featuredRequest struct {
	Featured bool `json:"featured"`
}

func (h *ProductHandler) SetFeatured(c echo.Context) error {
	var req featuredRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.SetFeatured(c.Request().Context(), c.Param("id"), req.Featured)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

func (h *ProductHandler) SetAvailability(c echo.Context) error {
	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.SetAvailability(c.Request().Context(), c.Param("id"), middleware.Email(c), req.Available)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}
