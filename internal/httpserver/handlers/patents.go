package handlers

import (
	"net/http"

	"github.com/likith1908/portfolio-api/internal/domain"
	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
)

const patentLabel = "Patent record"

func ListPatents(d deps.Deps) http.HandlerFunc {
	return list(d, patentLabel, d.Store.ListPatents)
}

func CreatePatent(d deps.Deps) http.HandlerFunc {
	return create[domain.PatentCreate](d, patentLabel, d.Store.CreatePatent)
}

func UpdatePatent(d deps.Deps) http.HandlerFunc {
	return update[domain.PatentPatch](d, patentLabel, d.Store.UpdatePatent)
}

func DeletePatent(d deps.Deps) http.HandlerFunc {
	return remove(d, patentLabel, d.Store.DeletePatent)
}
