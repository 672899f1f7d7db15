package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wdpl/corporate-site-api/internal/models"
)

func TestSiteHandler_AboutTimelineOldestFirst(t *testing.T) {
	env := setupTestEnv(t)

	require.NoError(t, env.db.Create(&models.AboutMilestone{
		Year: "2021", Title: "First enterprise client",
	}).Error)
	require.NoError(t, env.db.Create(&models.AboutMilestone{
		Year: "2018", Title: "Company founded",
	}).Error)

	w := doJSON(t, env.router, http.MethodGet, "/api/about/timeline", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.AboutMilestone
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	require.Equal(t, "2018", items[0].Year)
	require.Equal(t, "2021", items[1].Year)
}
