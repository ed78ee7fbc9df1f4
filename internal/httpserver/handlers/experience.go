package handlers

import (
	"net/http"

	"github.com/likith1908/portfolio-api/internal/domain"
	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
)

const experienceLabel = "Experience record"

func ListExperience(d deps.Deps) http.HandlerFunc {
	return list(d, experienceLabel, d.Store.ListExperience)
}

func CreateExperience(d deps.Deps) http.HandlerFunc {
	return create[domain.ExperienceCreate](d, experienceLabel, d.Store.CreateExperience)
}

func UpdateExperience(d deps.Deps) http.HandlerFunc {
	return update[domain.ExperiencePatch](d, experienceLabel, d.Store.UpdateExperience)
}

func DeleteExperience(d deps.Deps) http.HandlerFunc {
	return remove(d, experienceLabel, d.Store.DeleteExperience)
}
