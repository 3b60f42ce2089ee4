package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/model"
	"lingua/backend/internal/service"
)

type BusinessCardHandler struct {
	service service.BusinessCardService
}

type businessCardRequest struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type businessCardResponse struct {
	ID        int64  `json:"id,string"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	QRCode    string `json:"qr_code"`
	CreatedAt string `json:"created_at"`
}

type businessCardCreatedResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id,string"`
	QRCode  string `json:"qr_code"`
}

func NewBusinessCardHandler(service service.BusinessCardService) *BusinessCardHandler {
	return &BusinessCardHandler{service: service}
}

func (h *BusinessCardHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/business-card", h.Create)
	g.GET("/business-cards", h.List)
}

// Create godoc
// @Summary Create a business card and its QR code
// @Tags business-cards
// @Accept json
// @Produce json
// @Param request body businessCardRequest true "Card"
// @Success 201 {object} businessCardCreatedResponse
// @Failure 400 {object} errorResponse
// @Router /business-card [post]
func (h *BusinessCardHandler) Create(c echo.Context) error {
	var req businessCardRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request")
	}
	card, err := h.service.Create(c.Request().Context(), service.CardInput{
		Name:    req.Name,
		Title:   req.Title,
		Company: req.Company,
		Phone:   req.Phone,
		Email:   req.Email,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, businessCardCreatedResponse{Success: true, ID: card.ID, QRCode: card.QRCode})
}

// List godoc
// @Summary List business cards
// @Tags business-cards
// @Produce json
// @Success 200 {array} businessCardResponse
// @Router /business-cards [get]
func (h *BusinessCardHandler) List(c echo.Context) error {
	cards, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]businessCardResponse, 0, len(cards))
	for _, card := range cards {
		response = append(response, toBusinessCardResponse(card))
	}
	return c.JSON(http.StatusOK, response)
}

func toBusinessCardResponse(card model.BusinessCard) businessCardResponse {
	return businessCardResponse{
		ID:        card.ID,
		Name:      card.Name,
		Title:     card.Title,
		Company:   card.Company,
		Phone:     card.Phone,
		Email:     card.Email,
		QRCode:    card.QRCode,
		CreatedAt: card.CreatedAt.UTC().Format(time.RFC3339),
	}
}
