package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wdpl/corporate-site-api/internal/models"
)

func TestTestimonialHandler_CreateWithPhoto(t *testing.T) {
	env := setupTestEnv(t)
	seedAdmin(t, env.db, "admin@wdpl.in", "supersecret")
	cookies := login(t, env.router, "admin@wdpl.in", "supersecret")

	// An older testimonial already exists.
	require.NoError(t, env.db.Create(&models.Testimonial{
		Name: "Earlier Client", Role: "CEO", Content: "Great work", Rating: 5,
		CreatedAt: time.Now().Add(-time.Hour),
	}).Error)

	w := doMultipart(t, env.router, http.MethodPost, "/api/admin/testimonials", map[string]string{
		"name":    "Priya Sharma",
		"role":    "Product Head, Acme",
		"content": "Delivered ahead of schedule.",
		"rating":  "4",
	}, []filePart{
		{field: "image", filename: "priya.jpg", content: "jpeg-bytes"},
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Testimonial
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "Priya Sharma", created.Name)
	require.Equal(t, 4, created.Rating)
	require.NotEmpty(t, created.ImageURL)

	// The new testimonial heads the public list.
	list := doJSON(t, env.router, http.MethodGet, "/api/testimonials", nil, nil)
	require.Equal(t, http.StatusOK, list.Code)

	var items []models.Testimonial
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &items))
	require.Len(t, items, 2)
	require.Equal(t, "Priya Sharma", items[0].Name)
	require.Equal(t, "Product Head, Acme", items[0].Role)
	require.Equal(t, "Delivered ahead of schedule.", items[0].Content)
	require.Equal(t, created.ImageURL, items[0].ImageURL)
}

func TestTestimonialHandler_RatingBounds(t *testing.T) {
	env := setupTestEnv(t)
	seedAdmin(t, env.db, "admin@wdpl.in", "supersecret")
	cookies := login(t, env.router, "admin@wdpl.in", "supersecret")

	for _, rating := range []string{"0", "6", "-1"} {
		w := doMultipart(t, env.router, http.MethodPost, "/api/admin/testimonials", map[string]string{
			"name":    "Out Of Range",
			"role":    "Reviewer",
			"content": "Some content",
			"rating":  rating,
		}, nil, cookies)
		require.Equal(t, http.StatusBadRequest, w.Code, "rating %s should be rejected", rating)
	}

	for _, rating := range []string{"1", "5"} {
		w := doMultipart(t, env.router, http.MethodPost, "/api/admin/testimonials", map[string]string{
			"name":    "Boundary " + rating,
			"role":    "Reviewer",
			"content": "Some content",
			"rating":  rating,
		}, nil, cookies)
		require.Equal(t, http.StatusCreated, w.Code, "rating %s should be accepted", rating)
	}
}

func TestTestimonialHandler_AllFieldsRequired(t *testing.T) {
	env := setupTestEnv(t)
	seedAdmin(t, env.db, "admin@wdpl.in", "supersecret")
	cookies := login(t, env.router, "admin@wdpl.in", "supersecret")

	w := doMultipart(t, env.router, http.MethodPost, "/api/admin/testimonials", map[string]string{
		"name":   "Missing Content",
		"role":   "Reviewer",
		"rating": "3",
	}, nil, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Testimonial{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestTestimonialHandler_UpdateKeepsPhotoWhenNoneUploaded(t *testing.T) {
	env := setupTestEnv(t)
	seedAdmin(t, env.db, "admin@wdpl.in", "supersecret")
	cookies := login(t, env.router, "admin@wdpl.in", "supersecret")

	created := doMultipart(t, env.router, http.MethodPost, "/api/admin/testimonials", map[string]string{
		"name":    "Original Name",
		"role":    "CTO",
		"content": "Solid engineering partner.",
		"rating":  "5",
	}, []filePart{
		{field: "image", filename: "photo.jpg", content: "jpeg-bytes"},
	}, cookies)
	require.Equal(t, http.StatusCreated, created.Code)

	var item models.Testimonial
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &item))

	updated := doMultipart(t, env.router, http.MethodPut,
		fmt.Sprintf("/api/admin/testimonials/%d", item.ID), map[string]string{
			"name":    "Updated Name",
			"role":    "CTO",
			"content": "Solid engineering partner.",
			"rating":  "5",
		}, nil, cookies)
	require.Equal(t, http.StatusOK, updated.Code)

	var after models.Testimonial
	require.NoError(t, json.Unmarshal(updated.Body.Bytes(), &after))
	require.Equal(t, "Updated Name", after.Name)
	require.Equal(t, item.ImageURL, after.ImageURL)
}

func TestTestimonialHandler_Delete(t *testing.T) {
	env := setupTestEnv(t)
	seedAdmin(t, env.db, "admin@wdpl.in", "supersecret")
	cookies := login(t, env.router, "admin@wdpl.in", "supersecret")

	item := models.Testimonial{Name: "Gone Soon", Role: "CEO", Content: "Fine", Rating: 3}
	require.NoError(t, env.db.Create(&item).Error)

	w := doJSON(t, env.router, http.MethodDelete,
		fmt.Sprintf("/api/admin/testimonials/%d", item.ID), nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Testimonial{}).Count(&count).Error)
	require.Zero(t, count)

	// Deleting it again reports not found.
	again := doJSON(t, env.router, http.MethodDelete,
		fmt.Sprintf("/api/admin/testimonials/%d", item.ID), nil, cookies)
	require.Equal(t, http.StatusNotFound, again.Code)
}
