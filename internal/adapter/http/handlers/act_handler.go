package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stroyset/acts-service/internal/adapter/http/dto/request"
	"github.com/stroyset/acts-service/internal/adapter/http/dto/response"
	"github.com/stroyset/acts-service/internal/usecase"
	"github.com/stroyset/acts-service/pkg"
)

var (
	errInvalidKS2Payload = pkg.NewDomainErrorSimple("INVALID_KS2_INPUT", "Invalid KS-2 payload", http.StatusBadRequest)
	errUnknownAction     = pkg.NewDomainErrorSimple("UNKNOWN_ACTION", "Invalid action. Use 'preview' or 'create'", http.StatusBadRequest)
)

// ActHandler handles the action-discriminated KS-2 endpoint.
type ActHandler struct {
	allocation usecase.IAllocationUseCase
	acts       usecase.IActUseCase
}

func NewActHandler(allocation usecase.IAllocationUseCase, acts usecase.IActUseCase) *ActHandler {
	return &ActHandler{allocation: allocation, acts: acts}
}

// GenerateKS2 dispatches preview/create requests.
//
// @Summary      Preview or create a KS-2 act
// @Description  action=preview returns the allocation candidates; action=create persists a draft act and attaches the consumed work entries.
// @Tags         acts
// @Accept       json
// @Produce      json
// @Param        payload  body      request.KS2Request  true  "Action payload"
// @Success      200      {object}  response.PreviewResponse
// @Success      201      {object}  response.CreateActResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /acts/ks2 [post]
func (h *ActHandler) GenerateKS2(c *gin.Context) {
	var payload request.KS2Request
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidKS2Payload.HTTPStatus, errInvalidKS2Payload.ToHTTPError())
		return
	}

	switch payload.Action {
	case request.ActionPreview:
		h.preview(c, payload)
	case request.ActionCreate:
		h.create(c, payload)
	default:
		c.JSON(errUnknownAction.HTTPStatus, errUnknownAction.ToHTTPError())
	}
}

func (h *ActHandler) preview(c *gin.Context, payload request.KS2Request) {
	periodTo, err := payload.ResolvePeriodTo()
	if err != nil {
		c.JSON(errInvalidKS2Payload.HTTPStatus, errInvalidKS2Payload.ToHTTPError())
		return
	}

	result, err := h.allocation.Preview(c.Request.Context(), payload.ResolveContractID(), periodTo)
	if err != nil {
		appErr := mapActError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAllocationResult(result))
}

func (h *ActHandler) create(c *gin.Context, payload request.KS2Request) {
	periodTo, err := payload.ResolvePeriodTo()
	if err != nil {
		c.JSON(errInvalidKS2Payload.HTTPStatus, errInvalidKS2Payload.ToHTTPError())
		return
	}

	number, date, err := payload.ResolveActFields()
	if err != nil {
		appErr := mapActError(usecase.ErrMissingActFields)
		if errors.Is(err, request.ErrInvalidDate) {
			appErr = errInvalidKS2Payload
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.acts.Create(c.Request.Context(), usecase.CreateActCommand{
		ContractID: payload.ResolveContractID(),
		PeriodTo:   periodTo,
		ActNumber:  number,
		ActDate:    date,
	})
	if err != nil {
		appErr := mapActError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CreateActResponse{
		Success:    true,
		ActID:      created.ActID,
		ItemsCount: created.ItemsCount,
	})
}

func mapActError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingContractID):
		return pkg.NewDomainErrorSimple("MISSING_CONTRACT_ID", "contractId is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingActFields):
		return pkg.NewDomainErrorSimple("MISSING_ACT_FIELDS", "actNumber and actDate are required for creation", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoEligibleEntries):
		return pkg.NewDomainErrorSimple("NO_ELIGIBLE_ENTRIES", "No eligible work items found for KS-2", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
