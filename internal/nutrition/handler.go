package nutrition

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abduljamac/kcalpall/internal/llm"
)

// Archiver stores the raw label image alongside the extraction, so a
// bad parse can be rechecked against the photo later. Optional.
type Archiver interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

const (
	extractTimeout = 60 * time.Second
	storeTimeout   = 10 * time.Second
)

type Handler struct {
	service *Service
	model   llm.Client
	archive Archiver
}

func NewHandler(service *Service, model llm.Client, archive Archiver) *Handler {
	return &Handler{
		service: service,
		model:   model,
		archive: archive,
	}
}

type extractRequest struct {
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// --------------------------------------------------
// Extract a record from a label photo
// --------------------------------------------------
func (h *Handler) ExtractLabel(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_base64 is required"})
		return
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), extractTimeout)
	defer cancel()

	record, err := llm.ExtractRecord(ctx, h.model, req.ImageBase64, mimeType)

	// Archived after the model call, on its own deadline: a slow or
	// failing store must never change the extraction outcome.
	h.archiveImage(c.Request.Context(), req.ImageBase64, mimeType)
	if err != nil {
		var extractionErr *llm.ExtractionError
		if errors.As(err, &extractionErr) &&
			extractionErr.Reason == llm.ReasonModelCallFailed {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":  extractionErr.Error(),
				"reason": extractionErr.Reason,
			})
			return
		}

		// Parse failure: the record still goes back, with its error
		// field set and no servings, so the client can show something.
		reason := llm.ReasonInvalidJSON
		if errors.As(err, &extractionErr) {
			reason = extractionErr.Reason
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"record": record,
			"reason": reason,
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Best effort: an archive failure never fails the extraction.
func (h *Handler) archiveImage(ctx context.Context, imageBase64, mimeType string) {
	if h.archive == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	data, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		log.Printf("label archive skipped: bad base64: %v", err)
		return
	}

	key := fmt.Sprintf("labels/%s%s", uuid.New().String(), extForMime(mimeType))
	if _, err := h.archive.Put(ctx, key, data, mimeType); err != nil {
		log.Printf("label archive failed key=%s: %v", key, err)
	}
}

func extForMime(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

// --------------------------------------------------
// Save a record the user accepted
// --------------------------------------------------
func (h *Handler) SaveProduct(c *gin.Context) {
	var record llm.NutritionRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	result, err := h.service.Save(ctx, record)
	if err != nil {
		var storeErr *StoreError
		if errors.As(err, &storeErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":  storeErr.Error(),
				"reason": storeErr.Reason,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// --------------------------------------------------
// Read back a stored product with its servings
// --------------------------------------------------
func (h *Handler) GetProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	product, servings, err := h.service.Fetch(ctx, productID)
	if err != nil {
		var storeErr *StoreError
		if errors.As(err, &storeErr) && storeErr.Reason == ReasonNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":  "product not found",
				"reason": storeErr.Reason,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if servings == nil {
		servings = []Info{}
	}

	c.JSON(http.StatusOK, gin.H{
		"product":          product,
		"nutritional_info": servings,
	})
}
