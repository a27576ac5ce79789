package handlers

import (
	"errors"
	"net/http"

	request "domeo_docs/internal/adapter/http/dto/request"
	response "domeo_docs/internal/adapter/http/dto/response"
	"domeo_docs/internal/usecase"
	"domeo_docs/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)
)

// DocumentHandler handles HTTP requests for the document lifecycle engine.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// CreateDocument creates a document idempotently.
//
// @Summary  Create a document
// @Tags     documents
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateDocumentRequest true "creation payload"
// @Success  201 {object} response.CreateDocumentResponse "created"
// @Success  200 {object} response.CreateDocumentResponse "existing document reused"
// @Router   /documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var payload request.CreateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.CreateDocument(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if res.IsNew {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromCreateResult(res))
}

// GetDocument returns one document by id.
//
// @Summary  Get a document
// @Tags     documents
// @Produce  json
// @Param    id path string true "document id"
// @Success  200 {object} response.DocumentResponse
// @Router   /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// ChangeStatus applies one status transition.
//
// @Summary  Change document status
// @Tags     documents
// @Accept   json
// @Produce  json
// @Param    id path string true "document id"
// @Param    payload body request.ChangeStatusRequest true "target status"
// @Success  200 {object} response.DocumentResponse
// @Router   /documents/{id}/status [put]
func (h *DocumentHandler) ChangeStatus(c *gin.Context) {
	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// GetChain returns the full lineage of a document.
//
// @Summary  Get a document's lineage chain
// @Tags     documents
// @Produce  json
// @Param    id path string true "document id"
// @Success  200 {object} response.ChainResponse
// @Router   /documents/{id}/chain [get]
func (h *DocumentHandler) GetChain(c *gin.Context) {
	chain, err := h.usecase.GetChain(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChain(chain))
}

func mapDocumentError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	var conflictErr *usecase.ConflictError
	var transitionErr *usecase.InvalidTransitionError
	var preconditionErr *usecase.PreconditionError

	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrParentNotFound):
		return pkg.NewDomainErrorSimple("PARENT_NOT_FOUND", "Parent document not found", http.StatusNotFound)
	case errors.As(err, &conflictErr):
		return pkg.NewDomainErrorSimple("CONFLICT", conflictErr.Error(), http.StatusConflict)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", transitionErr.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &preconditionErr):
		return pkg.NewDomainErrorSimple("PRECONDITION_FAILED", preconditionErr.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
