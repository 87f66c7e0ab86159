package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahmanshaon/A10-civic-clean-server/internal/authz"
	"github.com/rahmanshaon/A10-civic-clean-server/internal/domain"
)

func (a *App) IssuesList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Issues.Find(r.Context(), domain.IssueQuery{})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) IssuesRecent(w http.ResponseWriter, r *http.Request) {
	items, err := a.Issues.Find(r.Context(), domain.RecentIssuesQuery())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, items)
}

// IssuesGet writes the issue or a JSON null when it does not exist.
func (a *App) IssuesGet(w http.ResponseWriter, r *http.Request) {
	issue, err := a.Issues.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, issue)
}

func (a *App) IssuesCreate(w http.ResponseWriter, r *http.Request) {
	caller, err := a.currentIdentity(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var in domain.IssueInput
	if err := decode(r, &in); err != nil {
		a.fail(w, r, err)
		return
	}
	issue := domain.PrepareIssueCreate(in, caller, a.now())
	res, err := a.Issues.Insert(r.Context(), &issue)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, res)
}

// IssuesUpdate replaces the whitelisted fields of an issue. Any authenticated
// caller may update any issue.
func (a *App) IssuesUpdate(w http.ResponseWriter, r *http.Request) {
	if _, err := a.currentIdentity(r); err != nil {
		a.fail(w, r, err)
		return
	}
	var in domain.IssueInput
	if err := decode(r, &in); err != nil {
		a.fail(w, r, err)
		return
	}
	res, err := a.Issues.Update(r.Context(), chi.URLParam(r, "id"), domain.PrepareIssueUpdate(in, a.now()))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, res)
}

func (a *App) IssuesDelete(w http.ResponseWriter, r *http.Request) {
	if _, err := a.currentIdentity(r); err != nil {
		a.fail(w, r, err)
		return
	}
	res, err := a.Issues.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, res)
}

func (a *App) MyIssues(w http.ResponseWriter, r *http.Request) {
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
	items, err := a.Issues.Find(r.Context(), domain.OwnedIssuesQuery(email))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, items)
}
