package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mingleton/dawson-rp/internal/catalog"
	"github.com/mingleton/dawson-rp/internal/domain"
)

// HandleGetTypes returns all item types
// @Summary List item types
// @Tags catalog
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/catalog/types [get]
func HandleGetTypes(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// ?name= narrows to a single type.
		if name := GetOptionalQueryParam(r, "name", ""); name != "" {
			t, ok := cat.TypeByName(name)
			if !ok {
				respondError(w, http.StatusNotFound, domain.ErrMsgUnknownType)
				return
			}
			respondJSON(w, http.StatusOK, t)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: cat.Types()})
	}
}

// HandleGetType returns one item type by id
// @Summary Get item type
// @Tags catalog
// @Produce json
// @Param id path int true "Type ID"
// @Success 200 {object} catalog.Type
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/catalog/types/{id} [get]
func HandleGetType(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}
		t, ok := cat.TypeByID(id)
		if !ok {
			respondError(w, http.StatusNotFound, domain.ErrMsgUnknownType)
			return
		}
		respondJSON(w, http.StatusOK, t)
	}
}

// HandleGetRarities returns all rarities
// @Summary List rarities
// @Tags catalog
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/catalog/rarities [get]
func HandleGetRarities(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if name := GetOptionalQueryParam(r, "name", ""); name != "" {
			rar, ok := cat.RarityByName(name)
			if !ok {
				respondError(w, http.StatusNotFound, domain.ErrMsgUnknownRarity)
				return
			}
			respondJSON(w, http.StatusOK, rar)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: cat.Rarities()})
	}
}

// HandleGetRarity returns one rarity by id
// @Summary Get rarity
// @Tags catalog
// @Produce json
// @Param id path int true "Rarity ID"
// @Success 200 {object} catalog.Rarity
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/catalog/rarities/{id} [get]
func HandleGetRarity(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}
		rar, ok := cat.RarityByID(id)
		if !ok {
			respondError(w, http.StatusNotFound, domain.ErrMsgUnknownRarity)
			return
		}
		respondJSON(w, http.StatusOK, rar)
	}
}
