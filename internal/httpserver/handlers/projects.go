package handlers

import (
	"context"
	"net/http"

	"github.com/likith1908/portfolio-api/internal/domain"
	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
)

const projectLabel = "Project record"

// ListProjects supports an optional exact-match category filter via
// the "category" query parameter.
func ListProjects(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		fn := func(ctx context.Context) ([]domain.Project, error) {
			return d.Store.ListProjects(ctx, category)
		}
		list(d, projectLabel, fn)(w, r)
	}
}

func CreateProject(d deps.Deps) http.HandlerFunc {
	return create[domain.ProjectCreate](d, projectLabel, d.Store.CreateProject)
}

func UpdateProject(d deps.Deps) http.HandlerFunc {
	return update[domain.ProjectPatch](d, projectLabel, d.Store.UpdateProject)
}

func DeleteProject(d deps.Deps) http.HandlerFunc {
	return remove(d, projectLabel, d.Store.DeleteProject)
}
