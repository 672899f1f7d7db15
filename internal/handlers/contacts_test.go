package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wdpl/corporate-site-api/internal/models"
)

func TestContactHandler_SubmitAndAdminInbox(t *testing.T) {
	env := setupTestEnv(t)
	seedAdmin(t, env.db, "admin@wdpl.in", "supersecret")

	w := doJSON(t, env.router, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Prospect",
		"email":   "prospect@example.com",
		"phone":   "+91 98765 43210",
		"message": "We'd like a quote for a project.",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var stored []models.ContactSubmission
	require.NoError(t, env.db.Find(&stored).Error)
	require.Len(t, stored, 1)
	require.Equal(t, models.ContactStatusNew, stored[0].Status)
	require.NotEmpty(t, stored[0].ID)

	cookies := login(t, env.router, "admin@wdpl.in", "supersecret")
	list := doJSON(t, env.router, http.MethodGet, "/api/admin/contacts", nil, cookies)
	require.Equal(t, http.StatusOK, list.Code)

	var inbox []models.ContactSubmission
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &inbox))
	require.Len(t, inbox, 1)
	require.Equal(t, "Prospect", inbox[0].Name)
}

func TestContactHandler_SubmitRequiresCoreFields(t *testing.T) {
	env := setupTestEnv(t)

	// Phone is optional; name, email and message are not.
	ok := doJSON(t, env.router, http.MethodPost, "/api/contact", map[string]string{
		"name":    "No Phone",
		"email":   "nophone@example.com",
		"message": "Hello",
	}, nil)
	require.Equal(t, http.StatusCreated, ok.Code)

	missing := doJSON(t, env.router, http.MethodPost, "/api/contact", map[string]string{
		"name":  "No Message",
		"email": "nomessage@example.com",
	}, nil)
	require.Equal(t, http.StatusBadRequest, missing.Code)

	badEmail := doJSON(t, env.router, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Bad Email",
		"email":   "not-an-email",
		"message": "Hello",
	}, nil)
	require.Equal(t, http.StatusBadRequest, badEmail.Code)
}

func TestContactHandler_Delete(t *testing.T) {
	env := setupTestEnv(t)
	seedAdmin(t, env.db, "admin@wdpl.in", "supersecret")
	cookies := login(t, env.router, "admin@wdpl.in", "supersecret")

	sub := models.ContactSubmission{
		Name: "Spam", Email: "spam@example.com", Message: "buy now", Status: models.ContactStatusNew,
	}
	require.NoError(t, env.db.Create(&sub).Error)

	w := doJSON(t, env.router, http.MethodDelete, "/api/admin/contacts/"+sub.ID, nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.ContactSubmission{}).Count(&count).Error)
	require.Zero(t, count)

	// Deleting it again reports not found.
	again := doJSON(t, env.router, http.MethodDelete, "/api/admin/contacts/"+sub.ID, nil, cookies)
	require.Equal(t, http.StatusNotFound, again.Code)
}
