package handlers

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bazaar/internal/domain"
	applog "bazaar/internal/log"
	"bazaar/internal/services"
)

const maxImageBytes = 5 << 20 // 5 MiB upload ceiling

type ProductHandler struct {
	Catalog    *services.CatalogService
	Moderation *services.ModerationService
	Reviews    *services.ReviewService
	UploadDir  string
}

// listingView decorates a listing with its derived moderation status, the
// shape the original API exposes on browse.
type listingView struct {
	domain.Listing
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func viewOf(l domain.Listing) listingView {
	return listingView{Listing: l, Status: l.Status(), Reason: l.RejectionReason}
}

func viewsOf(ls []domain.Listing) []listingView {
	out := make([]listingView, 0, len(ls))
	for _, l := range ls {
		out = append(out, viewOf(l))
	}
	return out
}

// List serves the public browse endpoint. approvedOnly=true narrows to
// approved listings. A valid admin bearer token (optional) enriches rows
// with the seller's username; anything else serves the base response.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	approvedOnly := c.Query("approvedOnly") == "true"
	isAdmin := false
	if claims, ok := ClaimsFrom(c); ok && claims.Role == domain.RoleAdmin {
		isAdmin = true
	}
	listings, err := h.Catalog.List(approvedOnly, isAdmin)
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(viewsOf(listings))
}

// Get serves a single listing with its reviews embedded.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	l, err := h.Catalog.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	revs, err := h.Reviews.ForListing(l.ID)
	if err != nil {
		applog.Error(c, "products.get.reviews.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch product"})
	}
	return c.JSON(struct {
		domain.Listing
		Reviews []domain.Review `json:"reviews"`
	}{l, revs})
}

// Create accepts a multipart seller upload. The image is optional; when
// present it must be an image content type within the size ceiling.
// Listings always start pending.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	claims, _ := ClaimsFrom(c)

	image := ""
	if file, err := c.FormFile("imageFile"); err == nil && file != nil {
		if file.Size > maxImageBytes {
			applog.Security(c, "upload.too.large", map[string]any{"size": file.Size})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Image exceeds 5MB limit"})
		}
		if !strings.HasPrefix(file.Header.Get(fiber.HeaderContentType), "image/") {
			applog.Security(c, "upload.bad.type", map[string]any{"type": file.Header.Get(fiber.HeaderContentType)})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Only image files are allowed!"})
		}
		name := uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(h.UploadDir, name)); err != nil {
			applog.Error(c, "upload.save.fail", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to store image"})
		}
		image = "/uploads/" + name
	}

	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	stock, _ := strconv.Atoi(c.FormValue("stock"))
	l, err := h.Catalog.Create(domain.Listing{
		Name:        c.FormValue("name"),
		Category:    c.FormValue("category"),
		Price:       price,
		Image:       image,
		Description: c.FormValue("description"),
		Stock:       stock,
	}, claims.ID)
	if err != nil {
		applog.Error(c, "products.create.fail", err, nil)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	applog.Audit(c, "products.create", map[string]any{"listing": l.ID, "seller": claims.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Awaiting admin approval", "product": viewOf(l)})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	claims, _ := ClaimsFrom(c)
	err := h.Catalog.Delete(claims, c.Params("id"))
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	case errors.Is(err, services.ErrNotOwner):
		applog.Security(c, "access.denied.listing.delete", map[string]any{"listing": c.Params("id"), "user": claims.ID})
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Not authorized to delete this product"})
	case err != nil:
		applog.Error(c, "products.delete.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete product"})
	}
	applog.Audit(c, "products.delete", map[string]any{"listing": c.Params("id")})
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// PatchStock is the admin numeric patch; it is independent of moderation
// state.
func (h *ProductHandler) PatchStock(c *fiber.Ctx) error {
	var body struct {
		Stock any `json:"stock"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid stock value"})
	}
	var stock int
	switch v := body.Stock.(type) {
	case float64:
		stock = int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid stock value"})
		}
		stock = n
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid stock value"})
	}

	l, err := h.Catalog.SetStock(c.Params("id"), stock)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		applog.Error(c, "products.stock.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update stock"})
	}
	applog.Audit(c, "products.stock", map[string]any{"listing": l.ID, "stock": stock})
	return c.JSON(fiber.Map{"message": "Stock updated", "product": l})
}

// PatchStatus drives the moderation state machine.
func (h *ProductHandler) PatchStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid status"})
	}
	err := h.Moderation.SetStatus(c.Params("id"), body.Status, body.Reason)
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid status"})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	case err != nil:
		applog.Error(c, "products.status.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update product status"})
	}
	applog.Audit(c, "products.status", map[string]any{"listing": c.Params("id"), "status": body.Status})
	return c.JSON(fiber.Map{"message": "Product " + body.Status})
}

// Pending serves the admin moderation queue.
func (h *ProductHandler) Pending(c *fiber.Ctx) error {
	listings, err := h.Moderation.Pending()
	if err != nil {
		applog.Error(c, "products.pending.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching pending products"})
	}
	return c.JSON(viewsOf(listings))
}

// Recommend lists approved listings from the same category.
func (h *ProductHandler) Recommend(c *fiber.Ctx) error {
	recs, err := h.Catalog.Recommend(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		applog.Error(c, "products.recommend.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch recommendations"})
	}
	return c.JSON(viewsOf(recs))
}
