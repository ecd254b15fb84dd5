package handler

import (
	"github.com/labstack/echo/v4"

	"tradbazar/internal/adapter/api/middleware"
	"tradbazar/internal/usecase"
	"tradbazar/pkg/response"
	"tradbazar/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type upsertUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Photo string `json:"photo"`
}

func (h *UserHandler) UpsertUser(c echo.Context) error {
	var req upsertUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpsertUser(c.Request().Context(), middleware.Email(c), usecase.UpsertUserInput{
		Name:  req.Name,
		Photo: req.Photo,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := h.userUseCase.GetUser(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetMyRole(c echo.Context) error {
	user, err := h.userUseCase.GetUser(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"role": user.Role})
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	users, total, err := h.userUseCase.ListUsers(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, pagination.Page, pagination.PageSize)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.userUseCase.DeleteUser(c.Request().Context(), c.Param("email")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"deleted": true})
}

type sellerRequestRequest struct {
	Phone       string `json:"phone" validate:"required"`
	ProductType string `json:"product_type" validate:"required"`
	Source      string `json:"source"`
	District    string `json:"district" validate:"required"`
}

func (h *UserHandler) SubmitSellerRequest(c echo.Context) error {
	var req sellerRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.SubmitSellerRequest(c.Request().Context(), middleware.Email(c), usecase.SellerRequestInput{
		Phone:       req.Phone,
		ProductType: req.ProductType,
		Source:      req.Source,
		District:    req.District,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user.SellerRequest)
}

func (h *UserHandler) ListSellerRequests(c echo.Context) error {
	users, err := h.userUseCase.ListPendingSellerRequests(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, users)
}

type reviewSellerRequestRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

func (h *UserHandler) ReviewSellerRequest(c echo.Context) error {
	var req reviewSellerRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.ReviewSellerRequest(c.Request().Context(), c.Param("email"), req.Action == "approve")
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
