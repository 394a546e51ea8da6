package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postCheck(t *testing.T, req checkRequest) (*httptest.ResponseRecorder, checkResponse) {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/check", bytes.NewReader(body))
	w := httptest.NewRecorder()

	checkHandler(w, r)

	var resp checkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCheckHandlerValidSource(t *testing.T) {
	w, resp := postCheck(t, checkRequest{
		Source:   "mod demo\n\nfn add(a: int, b: int) {\n    return a + b\n}",
		FileName: "demo.dog",
		FilePath: "demo.dog",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.OK)
	assert.Equal(t, "module_document", resp.RootLabel)
	assert.Empty(t, resp.Diagnostics)
}

func TestCheckHandlerInvalidSource(t *testing.T) {
	w, resp := postCheck(t, checkRequest{
		Source:   "}}}",
		FileName: "bad.dog",
		FilePath: "bad.dog",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, resp.OK)
	require.Len(t, resp.Diagnostics, 1)
	assert.Contains(t, resp.Diagnostics[0], "bad.dog")
}

func TestCheckHandlerRejectsMalformedJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/check", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	checkHandler(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckHandlerRejectsNonPost(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/check", nil)
	w := httptest.NewRecorder()

	checkHandler(w, r)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
