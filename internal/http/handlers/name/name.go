// Package name contains the HTTP handlers for the name resource.
//
// Handlers follow the factory pattern: each exported function receives its
// dependencies once at route registration and returns the
// http.HandlerFunc that runs on every request.
//
//	r.Post("/", name.New(store, validate, m))
package name

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/names-api/internal/metrics"
	"github.com/aanand-mishra/names-api/internal/storage"
	"github.com/aanand-mishra/names-api/internal/types"
	"github.com/aanand-mishra/names-api/internal/utils/response"
)

// Messages returned to clients for the two classified failures.
const (
	MsgInvalidInput = "Invalid name or age."
	MsgNotFound     = "Name not found."
)

// BasePath is the route prefix; created records are located under it.
const BasePath = "/api/name"

var (
	errEmptyBody    = errors.New("request body is empty")
	errNullBody     = errors.New("request body must be a JSON object")
	errTrailingData = errors.New("request body must contain a single JSON object")
	errInvalidID    = errors.New("invalid id: must be an integer")
)

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/name
// Creates a record from the JSON request body.
//
// Request body (JSON):
//
//	{ "name": "Alice", "age": 30, "city": "Austin" }
//
// Success response (201 Created, Location: /api/name/1):
//
//	{ "id": 1, "name": "Alice", "age": 30, "city": "Austin" }
//
// Error responses:
//
//	400 Bad Request: empty or null body, malformed JSON, blank name,
//	                 age <= 0 or age > types.MaxAge
//	500 Internal   : database error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(s storage.Storage, validate *validator.Validate, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a name")

		candidate, err := decodeCandidate(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validate.Struct(candidate); err != nil {
			var validateErrs validator.ValidationErrors
			if !errors.As(err, &validateErrs) {
				writeInternal(w, "validate candidate", err)
				return
			}
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(MsgInvalidInput, validateErrs))
			return
		}

		created, err := s.CreateName(r.Context(), candidate.Record())
		if err != nil {
			writeInternal(w, "create name", err)
			return
		}

		m.IncrementRecordsCreated()
		slog.Info("name created", slog.Int64("id", created.ID))

		w.Header().Set("Location", fmt.Sprintf("%s/%d", BasePath, created.ID))
		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/name
// Returns every record in storage order; [] when there are none.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(s storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all names")

		names, err := s.GetNames(r.Context())
		if err != nil {
			writeInternal(w, "list names", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, names)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/name/{id}
//
// Error responses:
//
//	400 Bad Request: id is not an integer
//	404 Not Found  : no record with that id
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(s storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		slog.Info("getting a name", slog.Int64("id", id))

		n, err := s.GetNameByID(r.Context(), id)
		if err != nil {
			writeStorageError(w, "get name", id, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, n)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /api/name/{id}
// Writes only the usable fields of the body (see types.PatchFrom): blank
// strings, the "string" placeholder and ages outside 1..types.MaxAge leave
// the stored value untouched. A body with no usable field is a read.
//
// Request body (JSON):
//
//	{ "name": "string", "age": 31, "city": "string" }   (only age changes)
//
// Error responses:
//
//	400 Bad Request: invalid id, empty or null body, malformed JSON
//	404 Not Found  : no record with that id
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(s storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		slog.Info("updating a name", slog.Int64("id", id))

		candidate, err := decodeCandidate(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		patch := types.PatchFrom(candidate)
		if patch.Empty() {
			current, err := s.GetNameByID(r.Context(), id)
			if err != nil {
				writeStorageError(w, "get name", id, err)
				return
			}
			response.WriteJSON(w, http.StatusOK, current)
			return
		}

		updated, err := s.UpdateName(r.Context(), id, patch)
		if err != nil {
			writeStorageError(w, "update name", id, err)
			return
		}

		slog.Info("name updated", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /api/name/{id}
// Responds 204 No Content with an empty body.
//
// Error responses:
//
//	400 Bad Request: invalid id
//	404 Not Found  : no record with that id
//
// ─────────────────────────────────────────────────────────────────────────────
func Delete(s storage.Storage, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		slog.Info("deleting a name", slog.Int64("id", id))

		if err := s.DeleteNameByID(r.Context(), id); err != nil {
			writeStorageError(w, "delete name", id, err)
			return
		}

		m.IncrementRecordsDeleted()
		slog.Info("name deleted", slog.Int64("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// decodeCandidate reads exactly one JSON object from the body. A literal
// null decodes into a nil pointer and is rejected like an empty body.
func decodeCandidate(r *http.Request) (types.Candidate, error) {
	var c *types.Candidate

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&c)
	if errors.Is(err, io.EOF) {
		return types.Candidate{}, errEmptyBody
	}
	if err != nil {
		return types.Candidate{}, err
	}
	if c == nil {
		return types.Candidate{}, errNullBody
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return types.Candidate{}, errTrailingData
	}

	return *c, nil
}

// pathID parses {id}. On failure it writes the 400 response and returns false.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errInvalidID))
		return 0, false
	}
	return id, true
}

func writeStorageError(w http.ResponseWriter, op string, id int64, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		response.WriteJSON(w, http.StatusNotFound, response.Error(MsgNotFound))
		return
	}
	slog.Error("storage failure",
		slog.String("op", op),
		slog.Int64("id", id),
		slog.String("error", err.Error()))
	response.WriteJSON(w, http.StatusInternalServerError, response.Error(http.StatusText(http.StatusInternalServerError)))
}

func writeInternal(w http.ResponseWriter, op string, err error) {
	slog.Error("request failed",
		slog.String("op", op),
		slog.String("error", err.Error()))
	response.WriteJSON(w, http.StatusInternalServerError, response.Error(http.StatusText(http.StatusInternalServerError)))
}
