package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"byoma-backend/models"
	"byoma-backend/services"
	"byoma-backend/utils"
)

// Resource wires one entity's list/get/create/update/delete endpoints over
// its store. Every admin page used to carry this block by hand; it lives
// here once, parametrized by the entity type, its searchable fields and its
// status enumeration.
type Resource[T any] struct {
	Store        *services.Store[T]
	Statuses     *models.StatusSet // nil when the entity has no status column
	StatusOf     func(*T) string
	SearchFields func(*T) []string
	BeforeCreate func(*T) error           // optional payload check before insert
	Normalize    func(map[string]any) error // optional update-payload fixups (date parsing)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "identifiant invalide")
		return 0, false
	}
	return uint(id), true
}

func respondStoreError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, services.ErrNotFound) {
		code = http.StatusNotFound
	} else if errors.Is(err, services.ErrRoomTypeInUse) {
		code = http.StatusConflict
	}

	var storeErr *services.StoreError
	if errors.As(err, &storeErr) {
		utils.JSONError(c, code, storeErr.Message)
		return
	}
	utils.JSONError(c, code, err.Error())
}

// List returns all records, narrowed by the optional q (case-insensitive
// substring over the searchable fields) and status (exact match) query
// params. No pagination; the full filtered set returns every call.
func (r *Resource[T]) List(c *gin.Context) {
	records, err := r.Store.List()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	query := c.Query("q")
	status := c.Query("status")
	fieldsOf := r.SearchFields
	if fieldsOf == nil {
		fieldsOf = func(*T) []string { return nil }
	}
	records = utils.FilterRecords(records, query, status, fieldsOf, r.StatusOf)

	c.JSON(http.StatusOK, records)
}

func (r *Resource[T]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	record, err := r.Store.GetByID(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (r *Resource[T]) Create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "données invalides: "+err.Error())
		return
	}

	if r.Statuses != nil && r.StatusOf != nil {
		if s := r.StatusOf(&record); s != "" && !r.Statuses.Valid(s) {
			utils.JSONError(c, http.StatusBadRequest, "statut invalide: "+s)
			return
		}
	}
	if r.BeforeCreate != nil {
		if err := r.BeforeCreate(&record); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := r.Store.Create(&record); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// Update overwrites the named fields on one record. Nested array or object
// values are re-encoded as JSON text so they land intact in JSON columns;
// the read path normalizes them back into lists.
func (r *Resource[T]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "données invalides: "+err.Error())
		return
	}

	if status, present := fields["status"]; present && r.Statuses != nil {
		s, _ := status.(string)
		if !r.Statuses.Valid(s) {
			utils.JSONError(c, http.StatusBadRequest, "statut invalide")
			return
		}
	}
	if r.Normalize != nil {
		if err := r.Normalize(fields); err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	for key, value := range fields {
		switch value.(type) {
		case []any, map[string]any:
			encoded, err := json.Marshal(value)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "données invalides")
				return
			}
			fields[key] = string(encoded)
		}
	}

	record, err := r.Store.UpdateByID(id, fields)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (r *Resource[T]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := r.Store.DeleteByID(id); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// UpdateStatus assigns any value from the entity's enumeration, regardless
// of the record's current status. There is no transition table.
func (r *Resource[T]) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Status == "" {
		utils.JSONError(c, http.StatusBadRequest, "statut requis")
		return
	}
	if r.Statuses == nil || !r.Statuses.Valid(payload.Status) {
		utils.JSONError(c, http.StatusBadRequest, "statut invalide: "+payload.Status)
		return
	}

	record, err := r.Store.UpdateByID(id, map[string]any{r.Statuses.Column: payload.Status})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
