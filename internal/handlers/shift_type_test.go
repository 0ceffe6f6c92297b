package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/markoco14/ennytime-sub000/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestShiftTypeHandler_CreateAndList(t *testing.T) {
	env := setupTestEnv(t)
	cookies := env.signupUser(t, "alice@example.com", "")

	w := env.doJSON(t, http.MethodPost, "/api/shift-types", map[string]string{
		"long_name": "Morning Shift",
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.ShiftTypeDTO
	decodeJSON(t, w, &created)
	require.Equal(t, "Morning Shift", created.LongName)
	require.Equal(t, "MS", created.ShortName)

	w = env.doJSON(t, http.MethodGet, "/api/shift-types", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		ShiftTypes []dto.ShiftTypeDTO `json:"shift_types"`
	}
	decodeJSON(t, w, &list)
	require.Len(t, list.ShiftTypes, 1)
	require.Equal(t, created.ID, list.ShiftTypes[0].ID)
}

func TestShiftTypeHandler_CreateEmptyName(t *testing.T) {
	env := setupTestEnv(t)
	cookies := env.signupUser(t, "alice@example.com", "")

	w := env.doJSON(t, http.MethodPost, "/api/shift-types", map[string]string{
		"long_name": "   ",
	}, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShiftTypeHandler_Rename(t *testing.T) {
	env := setupTestEnv(t)
	cookies := env.signupUser(t, "alice@example.com", "")

	w := env.doJSON(t, http.MethodPost, "/api/shift-types", map[string]string{
		"long_name": "Day",
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.ShiftTypeDTO
	decodeJSON(t, w, &created)

	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/shift-types/%d", created.ID), map[string]string{
		"long_name":  "Early Day",
		"short_name": "ED",
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var renamed dto.ShiftTypeDTO
	decodeJSON(t, w, &renamed)
	require.Equal(t, "Early Day", renamed.LongName)
	require.Equal(t, "ED", renamed.ShortName)
}

func TestShiftTypeHandler_Rename_OtherUsersType(t *testing.T) {
	env := setupTestEnv(t)
	ownerCookies := env.signupUser(t, "alice@example.com", "")
	otherCookies := env.signupUser(t, "bob@example.com", "")

	w := env.doJSON(t, http.MethodPost, "/api/shift-types", map[string]string{
		"long_name": "Day",
	}, ownerCookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.ShiftTypeDTO
	decodeJSON(t, w, &created)

	// Not the owner: same answer as a missing type.
	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/shift-types/%d", created.ID), map[string]string{
		"long_name":  "Hijacked",
		"short_name": "H",
	}, otherCookies)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestShiftTypeHandler_Delete_CatalogEmptySignal(t *testing.T) {
	env := setupTestEnv(t)
	cookies := env.signupUser(t, "alice@example.com", "")

	w := env.doJSON(t, http.MethodPost, "/api/shift-types", map[string]string{
		"long_name": "Day",
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.ShiftTypeDTO
	decodeJSON(t, w, &created)

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/shift-types/%d", created.ID), nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		CatalogEmpty bool `json:"catalog_empty"`
	}
	decodeJSON(t, w, &response)
	require.True(t, response.CatalogEmpty, "deleting the last type signals an empty catalog")
}
