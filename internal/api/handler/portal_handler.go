package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthclaim/portal-api/internal/core/domain"
	"github.com/healthclaim/portal-api/internal/core/ports"
)

// PortalHandler serves the dashboard sample data.
type PortalHandler struct {
	service ports.PortalService
}

func NewPortalHandler(service ports.PortalService) *PortalHandler {
	return &PortalHandler{service: service}
}

type coverageResponse struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	InsuranceID string `json:"insuranceId"`
	Coverage    string `json:"coverage"`
	Expiry      string `json:"expiry"`
}

type claimResponse struct {
	ID          string `json:"id"`
	Provider    string `json:"provider"`
	Service     string `json:"service"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
}

type notificationResponse struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
	Time    string `json:"time"`
}

// PatientMe handles GET /patient/me.
//
// @Summary      Patient coverage summary
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  coverageResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /patient/me [get]
func (h *PortalHandler) PatientMe(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	s, err := h.service.CoverageSummary(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, coverageResponse{
		UserID:      s.UserID,
		Name:        s.Name,
		InsuranceID: s.InsuranceID,
		Coverage:    s.Coverage,
		Expiry:      s.Expiry,
	})
}

// Claims handles GET /patient/claims.
//
// @Summary      List claims
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   claimResponse
// @Failure      401  {object}  map[string]any
// @Router       /patient/claims [get]
func (h *PortalHandler) Claims(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	claims, err := h.service.ListClaims(c.Request().Context(), user)
	if err != nil {
		return err
	}

	out := make([]claimResponse, 0, len(claims))
	for _, cl := range claims {
		out = append(out, toClaimResponse(cl))
	}
	return c.JSON(http.StatusOK, out)
}

// Notifications handles GET /notifications.
//
// @Summary      List notifications
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   notificationResponse
// @Failure      401  {object}  map[string]any
// @Router       /notifications [get]
func (h *PortalHandler) Notifications(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	notes, err := h.service.ListNotifications(c.Request().Context(), user)
	if err != nil {
		return err
	}

	out := make([]notificationResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, notificationResponse{
			ID:      n.ID,
			Type:    string(n.Type),
			Title:   n.Title,
			Message: n.Message,
			Read:    n.Read,
			Time:    n.Time,
		})
	}
	return c.JSON(http.StatusOK, out)
}

func toClaimResponse(cl domain.Claim) claimResponse {
	return claimResponse{
		ID:          cl.ID,
		Provider:    cl.Provider,
		Service:     cl.Service,
		Amount:      cl.Amount,
		Status:      string(cl.Status),
		Date:        cl.Date,
		Description: cl.Description,
		Progress:    cl.Status.Progress(),
	}
}
