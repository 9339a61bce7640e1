package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mingleton/dawson-rp/internal/inventory"
	"github.com/mingleton/dawson-rp/internal/metrics"
)

// CreateItemsRequest mints a stack of identical item units.
type CreateItemsRequest struct {
	OwnerID    int64          `json:"owner_id" validate:"required,gt=0"`
	Name       string         `json:"name" validate:"required,max=100"`
	TypeID     int            `json:"type_id" validate:"gte=0"`
	RarityID   int            `json:"rarity_id" validate:"gte=0"`
	Amount     int            `json:"amount" validate:"required,gte=1"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// TransferItemRequest reassigns one unit to a new owner.
type TransferItemRequest struct {
	NewOwnerID int64 `json:"new_owner_id" validate:"required,gt=0"`
}

// ItemActionRequest identifies the acting account for owner-checked actions.
type ItemActionRequest struct {
	AccountID int64 `json:"account_id" validate:"required,gt=0"`
}

// ItemsCreatedResponse lists the identifiers of freshly minted units.
type ItemsCreatedResponse struct {
	OwnerID int64       `json:"owner_id"`
	Name    string      `json:"name"`
	ItemIDs []uuid.UUID `json:"item_ids"`
}

// HandleCreateItems mints item units
// @Summary Create items
// @Description Mints a stack of identical units for an owner, bounded by the type's stack limit
// @Tags items
// @Accept json
// @Produce json
// @Param request body CreateItemsRequest true "Stack to mint"
// @Success 201 {object} ItemsCreatedResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items [post]
func HandleCreateItems(inventoryService inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateItemsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create items"); err != nil {
			return
		}

		ids, err := inventoryService.CreateStack(r.Context(), req.OwnerID, req.Name, req.TypeID, req.RarityID, req.Amount, req.Attributes)
		if err != nil {
			respondServiceError(w, r, "create items", err)
			return
		}

		metrics.ItemsCreated.WithLabelValues(strconv.Itoa(req.TypeID)).Add(float64(len(ids)))
		respondJSON(w, http.StatusCreated, ItemsCreatedResponse{
			OwnerID: req.OwnerID,
			Name:    req.Name,
			ItemIDs: ids,
		})
	}
}

// HandleGetItem returns one item unit
// @Summary Get item
// @Tags items
// @Produce json
// @Param id path string true "Item UUID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [get]
func HandleGetItem(inventoryService inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathUUID(r, w, "id")
		if !ok {
			return
		}

		item, err := inventoryService.GetItem(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get item", err)
			return
		}

		respondJSON(w, http.StatusOK, item)
	}
}

// HandleGetInventory returns an account's derived stacks
// @Summary Get inventory
// @Description Returns the account's non-dropped units grouped into stacks
// @Tags items
// @Produce json
// @Param account_id query int true "Account ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/inventory [get]
func HandleGetInventory(inventoryService inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := GetQueryParam(r, w, "account_id")
		if !ok {
			return
		}
		accountID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		stacks, err := inventoryService.GetInventory(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, "get inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: stacks})
	}
}

// HandleTransferItem reassigns one unit to a new owner
// @Summary Transfer item
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item UUID"
// @Param request body TransferItemRequest true "New owner"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id}/transfer [post]
func HandleTransferItem(inventoryService inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathUUID(r, w, "id")
		if !ok {
			return
		}

		var req TransferItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Transfer item"); err != nil {
			return
		}

		if err := inventoryService.TransferItem(r.Context(), id, req.NewOwnerID); err != nil {
			respondServiceError(w, r, "transfer item", err)
			return
		}

		metrics.ItemsTransferred.Inc()
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item transferred"})
	}
}

// HandleEquipItem marks a unit as worn
// @Summary Equip item
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item UUID"
// @Param request body ItemActionRequest true "Acting account"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/items/{id}/equip [post]
func HandleEquipItem(inventoryService inventory.Service) http.HandlerFunc {
	return itemAction(inventoryService.Equip, "equip item", "Item equipped")
}

// HandleUnequipItem clears the worn flag
// @Summary Unequip item
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item UUID"
// @Param request body ItemActionRequest true "Acting account"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/items/{id}/unequip [post]
func HandleUnequipItem(inventoryService inventory.Service) http.HandlerFunc {
	return itemAction(inventoryService.Unequip, "unequip item", "Item unequipped")
}

// HandleDropItem hides a unit from the owner's inventory
// @Summary Drop item
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item UUID"
// @Param request body ItemActionRequest true "Acting account"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/items/{id}/drop [post]
func HandleDropItem(inventoryService inventory.Service) http.HandlerFunc {
	return itemAction(inventoryService.Drop, "drop item", "Item dropped")
}

// HandleDeleteItem removes a unit permanently
// @Summary Delete item
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item UUID"
// @Param request body ItemActionRequest true "Acting account"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/items/{id} [delete]
func HandleDeleteItem(inventoryService inventory.Service) http.HandlerFunc {
	return itemAction(inventoryService.Delete, "delete item", "Item deleted")
}

// itemAction wraps the owner-checked single-unit operations that share a
// request shape.
func itemAction(action func(ctx context.Context, accountID int64, id uuid.UUID) error, opName, successMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathUUID(r, w, "id")
		if !ok {
			return
		}

		var req ItemActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
			return
		}

		if err := action(r.Context(), req.AccountID, id); err != nil {
			respondServiceError(w, r, opName, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: successMsg})
	}
}
