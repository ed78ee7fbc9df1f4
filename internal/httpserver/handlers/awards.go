package handlers

import (
	"net/http"

	"github.com/likith1908/portfolio-api/internal/domain"
	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
)

const awardLabel = "Award record"

func ListAwards(d deps.Deps) http.HandlerFunc {
	return list(d, awardLabel, d.Store.ListAwards)
}

func CreateAward(d deps.Deps) http.HandlerFunc {
	return create[domain.AwardCreate](d, awardLabel, d.Store.CreateAward)
}

func UpdateAward(d deps.Deps) http.HandlerFunc {
	return update[domain.AwardPatch](d, awardLabel, d.Store.UpdateAward)
}

func DeleteAward(d deps.Deps) http.HandlerFunc {
	return remove(d, awardLabel, d.Store.DeleteAward)
}
