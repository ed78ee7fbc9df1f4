package handlers

import (
	"net/http"

	"github.com/likith1908/portfolio-api/internal/domain"
	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
)

const educationLabel = "Education record"

func ListEducation(d deps.Deps) http.HandlerFunc {
	return list(d, educationLabel, d.Store.ListEducation)
}

func CreateEducation(d deps.Deps) http.HandlerFunc {
	return create[domain.EducationCreate](d, educationLabel, d.Store.CreateEducation)
}

func UpdateEducation(d deps.Deps) http.HandlerFunc {
	return update[domain.EducationPatch](d, educationLabel, d.Store.UpdateEducation)
}

func DeleteEducation(d deps.Deps) http.HandlerFunc {
	return remove(d, educationLabel, d.Store.DeleteEducation)
}
