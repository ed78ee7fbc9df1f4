package handlers

import (
	"net/http"

	"github.com/likith1908/portfolio-api/internal/domain"
	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
)

func GetProfile(d deps.Deps) http.HandlerFunc {
	return getSingleton[domain.Profile](d, "Profile not found", d.Store.GetProfile)
}

func UpdateProfile(d deps.Deps) http.HandlerFunc {
	return replaceSingleton[domain.ProfilePatch](d,
		"Profile updated successfully",
		"Failed to update profile",
		d.Store.ReplaceProfile)
}
