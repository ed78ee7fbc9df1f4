package handlers

import (
	"net/http"

	"github.com/likith1908/portfolio-api/internal/domain"
	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
)

func GetSkills(d deps.Deps) http.HandlerFunc {
	return getSingleton[domain.Skills](d, "Skills data not found", d.Store.GetSkills)
}

func UpdateSkills(d deps.Deps) http.HandlerFunc {
	return replaceSingleton[domain.SkillsPatch](d,
		"Skills updated successfully",
		"Failed to update skills",
		d.Store.ReplaceSkills)
}
