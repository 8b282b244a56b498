package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/navihub/navihub/internal/api/metrics"
	"github.com/navihub/navihub/internal/core/domain"
	"github.com/navihub/navihub/internal/core/ports"
)

// LinkHandler handles HTTP requests for directory links.
type LinkHandler struct {
	service ports.LinkService
}

func NewLinkHandler(service ports.LinkService) *LinkHandler {
	return &LinkHandler{service: service}
}

// List returns every link in the directory.
//
// @Summary      List links
// @Tags         links
// @Produce      json
// @Success      200  {array}  linkResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/links [get]
func (h *LinkHandler) List(c echo.Context) error {
	links, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newLinkListResponse(links))
}

// Create adds a new link to the directory.
//
// @Summary      Create a link
// @Tags         links
// @Accept       json
// @Produce      json
// @Param        body  body      linkRequest  true  "Link fields"
// @Success      200   {object}  linkResponse
// @Failure      403   {object}  map[string]string
// @Router       /api/links [post]
func (h *LinkHandler) Create(c echo.Context) error {
	req, err := bindLinkRequest(c)
	if err != nil {
		return err
	}

	link, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.LinkMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusOK, newLinkResponse(link))
}

// Update full-replaces every field of an existing link.
//
// @Summary      Update a link
// @Tags         links
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Link id"
// @Param        body  body      linkRequest  true  "Link fields"
// @Success      200   {object}  linkResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/links/{id} [put]
func (h *LinkHandler) Update(c echo.Context) error {
	id, err := linkID(c)
	if err != nil {
		return err
	}
	req, err := bindLinkRequest(c)
	if err != nil {
		return err
	}

	link, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	metrics.LinkMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, newLinkResponse(link))
}

// Delete removes a link permanently.
//
// @Summary      Delete a link
// @Tags         links
// @Produce      json
// @Param        id  path  int  true  "Link id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/links/{id} [delete]
func (h *LinkHandler) Delete(c echo.Context) error {
	id, err := linkID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.LinkMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "link deleted"})
}

func bindLinkRequest(c echo.Context) (*linkRequest, error) {
	var req linkRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}

func (r *linkRequest) toInput() ports.LinkInput {
	return ports.LinkInput{
		Name:        r.Name,
		Description: r.Description,
		URL:         r.URL,
		Icon:        r.Icon,
		Group:       r.Group,
	}
}

// linkID parses the numeric :id path parameter. A non-numeric id cannot
// reference any record, so it maps to the same not-found outcome as an
// absent one.
func linkID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrLinkNotFound
	}
	return id, nil
}
