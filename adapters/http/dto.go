package http

import "github.com/khoahotran/portfolio/internal/domain/navigation"

type HealthResponse struct {
	Status string `json:"status"`
	Data   string `json:"data"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type NavigationResponse struct {
	Sections     []navigation.Section `json:"sections"`
	HeaderOffset float64              `json:"header_offset"`
}

// ActiveSectionRequest reports a scroll position and the measured top offset
// of each section present on the page.
type ActiveSectionRequest struct {
	ScrollY float64            `json:"scroll_y"`
	Tops    map[string]float64 `json:"tops" binding:"required"`
	Current string             `json:"current"`
}

type ActiveSectionResponse struct {
	Active  string `json:"active"`
	Changed bool   `json:"changed"`
}
