package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/authz"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/domain"
)

func (a *App) ContributionsCreate(w http.ResponseWriter, r *http.Request) {
	caller, err := a.currentIdentity(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var in domain.ContributionInput
	if err := decode(r, &in); err != nil {
		a.fail(w, r, err)
		return
	}
	c := domain.PrepareContributionCreate(in, caller, a.now())
	res, err := a.Contributions.Insert(r.Context(), &c)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, res)
}

func (a *App) ContributionsByIssue(w http.ResponseWriter, r *http.Request) {
	items, err := a.Contributions.Find(r.Context(), domain.IssueContributionsQuery(chi.URLParam(r, "issueId")))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) MyContributions(w http.ResponseWriter, r *http.Request) {
	caller, err := a.currentIdentity(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	email := r.URL.Query().Get("email")
	if err := authz.RequireOwnedScope(caller, "email", email); err != nil {
		a.fail(w, r, err)
		return
	}
	items, err := a.Contributions.Find(r.Context(), domain.OwnedContributionsQuery(email))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, items)
}
