package handler

import "github.com/navihub/navihub/internal/core/domain"

// Request/response types owned by the transport layer. They are kept separate
// from the domain types so the JSON contract is not coupled to internal
// changes.

// linkRequest is the payload for both create and update. Updates are full
// replacements, so the same shape serves both verbs.
type linkRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	URL         string `json:"url"         validate:"required"`
	Icon        string `json:"icon"`
	Group       string `json:"group"`
}

type linkResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	Group       string `json:"group"`
}

func newLinkResponse(l *domain.Link) linkResponse {
	return linkResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		URL:         l.URL,
		Icon:        l.Icon,
		Group:       l.Group,
	}
}

func newLinkListResponse(links []domain.Link) []linkResponse {
	out := make([]linkResponse, 0, len(links))
	for i := range links {
		out = append(out, newLinkResponse(&links[i]))
	}
	return out
}
