package handlers

import (
	"net/http"

	"github.com/likith1908/portfolio-api/internal/domain"
	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
)

const certificationLabel = "Certification record"

func ListCertifications(d deps.Deps) http.HandlerFunc {
	return list(d, certificationLabel, d.Store.ListCertifications)
}

func CreateCertification(d deps.Deps) http.HandlerFunc {
	return create[domain.CertificationCreate](d, certificationLabel, d.Store.CreateCertification)
}

func UpdateCertification(d deps.Deps) http.HandlerFunc {
	return update[domain.CertificationPatch](d, certificationLabel, d.Store.UpdateCertification)
}

func DeleteCertification(d deps.Deps) http.HandlerFunc {
	return remove(d, certificationLabel, d.Store.DeleteCertification)
}
