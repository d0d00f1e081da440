package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dudaspaulo/gerador-de-walka/internal/audit"
	"github.com/dudaspaulo/gerador-de-walka/internal/hotsite"
	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

// MissingAssetsHeader carries the number of referenced images an export
// could not bundle.
const MissingAssetsHeader = "X-Walka-Missing-Assets"

// Deps holds what the project routes need.
type Deps struct {
	Store       *project.Store
	Generator   *hotsite.Generator
	Assets      hotsite.AssetSource // Optional; nil exports pages without images.
	Audit       *audit.Store        // Optional activity log.
	Logger      *zap.Logger
	ArchiveName string // Fallback archive name for projects without a slug.
}

// RegisterRoutes wires up the project and hotsite REST API endpoints.
func RegisterRoutes(r chi.Router, deps Deps) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.ArchiveName == "" {
		deps.ArchiveName = hotsite.DefaultArchiveName
	}
	h := &routeHandler{deps: deps}
	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", h.listProjects)
		r.Post("/", h.createProject)
		r.Get("/{id}", h.getProject)
		r.Delete("/{id}", h.deleteProject)
		r.Get("/{id}/diagnostics", h.diagnostics)
		r.Get("/{id}/export", h.export)
		r.Get("/{id}/preview", h.preview)
		r.Get("/{id}/preview/*", h.preview)
	})
}

type routeHandler struct {
	deps Deps
}

func (h *routeHandler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.deps.Store.List(r.Context())
	if err != nil {
		h.fail(w, http.StatusInternalServerError, "listing projects", err)
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *routeHandler) createProject(w http.ResponseWriter, r *http.Request) {
	var full project.Full
	if err := json.NewDecoder(r.Body).Decode(&full); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(full.Name) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	created, err := h.deps.Store.Create(r.Context(), full)
	if err != nil {
		h.fail(w, http.StatusInternalServerError, "creating project", err)
		return
	}
	h.deps.Logger.Info("project created", zap.String("id", created.ID), zap.String("slug", created.Slug))
	h.record(r.Context(), audit.Entry{
		Action:    audit.ActionProjectCreated,
		ProjectID: created.ID,
		Summary:   created.Name,
	})
	writeJSON(w, http.StatusCreated, created)
}

func (h *routeHandler) getProject(w http.ResponseWriter, r *http.Request) {
	full, ok := h.loadFull(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, full)
}

func (h *routeHandler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.deps.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		h.fail(w, http.StatusInternalServerError, "deleting project", err)
		return
	}
	h.record(r.Context(), audit.Entry{Action: audit.ActionProjectDeleted, ProjectID: id})
	w.WriteHeader(http.StatusNoContent)
}

func (h *routeHandler) diagnostics(w http.ResponseWriter, r *http.Request) {
	full, ok := h.loadFull(w, r)
	if !ok {
		return
	}
	warnings := hotsite.Diagnose(full)
	if warnings == nil {
		warnings = []hotsite.Warning{}
	}
	writeJSON(w, http.StatusOK, warnings)
}

// export builds the archive in memory so the missing-asset count can be sent
// as a header before the body.
func (h *routeHandler) export(w http.ResponseWriter, r *http.Request) {
	full, ok := h.loadFull(w, r)
	if !ok {
		return
	}
	artifacts, err := h.deps.Generator.Generate(full)
	if err != nil {
		h.fail(w, http.StatusInternalServerError, "generating hotsite", err)
		return
	}

	var buf bytes.Buffer
	res, err := hotsite.WriteArchive(r.Context(), &buf, artifacts, full, h.deps.Assets)
	if err != nil {
		h.fail(w, http.StatusInternalServerError, "writing archive", err)
		return
	}

	name := hotsite.ArchiveName(full, h.deps.ArchiveName)
	if len(res.Missing) > 0 {
		h.deps.Logger.Warn("export is missing assets",
			zap.String("id", full.ID),
			zap.Strings("missing", res.Missing),
		)
	}
	h.record(r.Context(), audit.Entry{
		Action:        audit.ActionHotsiteExported,
		ProjectID:     full.ID,
		Summary:       name,
		MissingAssets: res.Missing,
	})
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set(MissingAssetsHeader, strconv.Itoa(len(res.Missing)))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// preview serves the generated page and its files under the same layout the
// archive uses, so relative links resolve in a browser.
func (h *routeHandler) preview(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+chi.URLParam(r, "*")), "/")
	if name == "" {
		// Relative links need the trailing slash.
		if !strings.HasSuffix(r.URL.Path, "/") {
			http.Redirect(w, r, r.URL.Path+"/", http.StatusMovedPermanently)
			return
		}
		name = hotsite.EntryHTML
	}

	full, ok := h.loadFull(w, r)
	if !ok {
		return
	}

	switch name {
	case hotsite.EntryHTML, hotsite.EntryCSS, hotsite.EntryJS:
		artifacts, err := h.deps.Generator.Generate(full)
		if err != nil {
			h.fail(w, http.StatusInternalServerError, "generating hotsite", err)
			return
		}
		body := map[string]string{
			hotsite.EntryHTML: artifacts.HTML,
			hotsite.EntryCSS:  artifacts.CSS,
			hotsite.EntryJS:   artifacts.JS,
		}[name]
		w.Header().Set("Content-Type", contentType(name))
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, body)
		return
	case hotsite.EntryManifest:
		w.Header().Set("Content-Type", contentType(name))
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, hotsite.Manifest(full))
		return
	}

	if h.deps.Assets == nil {
		http.NotFound(w, r)
		return
	}
	rc, err := h.deps.Assets.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		h.fail(w, http.StatusInternalServerError, "opening asset", err)
		return
	}
	defer rc.Close()
	w.Header().Set("Content-Type", contentType(name))
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}

func (h *routeHandler) loadFull(w http.ResponseWriter, r *http.Request) (*project.Full, bool) {
	id := chi.URLParam(r, "id")
	full, err := h.deps.Store.GetFull(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("project %q not found", id)})
			return nil, false
		}
		h.fail(w, http.StatusInternalServerError, "loading project", err)
		return nil, false
	}
	return full, true
}

// record appends to the activity log; failures are logged, never returned.
func (h *routeHandler) record(ctx context.Context, e audit.Entry) {
	if h.deps.Audit == nil {
		return
	}
	e.ActorType = audit.ActorAPI
	if err := h.deps.Audit.Log(ctx, e); err != nil {
		h.deps.Logger.Warn("recording activity", zap.String("action", string(e.Action)), zap.Error(err))
	}
}

func (h *routeHandler) fail(w http.ResponseWriter, status int, action string, err error) {
	h.deps.Logger.Error(action, zap.Error(err))
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf("%s: %v", action, err)})
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
