package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/auth"
	"github.com/oru-pavam-nair/BJPMission2025-sub002/loaders"
)

const acCSV = "Zone,Org District,AC,LSGE VS,LSGE Votes,GE VS,GE Votes,Target VS,Target Votes\n" +
	",,,2020,2020,2024,2024,2025,2025\n" +
	"Trivandrum,TVM City,Kazhakuttam,24.1%,45123,28.4%,52310,35%,64000\n"

func setupLookups(t *testing.T) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ac_wise_voteshare.csv" {
			w.Write([]byte(acCSV))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	lookups := loaders.New(loaders.NewFetcher(srv.URL), cache.New(cache.NoExpiration, 0))
	Init(lookups, auth.NewStore(auth.NewMemoryBackend()))
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestGetACVoteShareResolvesVariantSpelling(t *testing.T) {
	setupLookups(t)

	rec := postJSON(t, GetACVoteShare, VoteShareRequest{
		Zone:        "Thiruvananthapuram",
		OrgDistrict: "tvm city",
		AC:          "Kazhakkoottam",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ACVoteShareResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Found)
	assert.Equal(t, "loaded", resp.Status)
	assert.Equal(t, "35%", resp.Record.Target2025.VoteShare)
}

func TestGetACVoteShareMissIsEmptyNotError(t *testing.T) {
	setupLookups(t)

	rec := postJSON(t, GetACVoteShare, VoteShareRequest{
		Zone:        "Kannur",
		OrgDistrict: "Kannur North",
		AC:          "Thalassery",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ACVoteShareResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Found)
	assert.Nil(t, resp.Record)
}

func TestGetACVoteShareRejectsMalformedBody(t *testing.T) {
	setupLookups(t)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	GetACVoteShare(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetZonesListsLoadedZones(t *testing.T) {
	setupLookups(t)

	req := httptest.NewRequest(http.MethodGet, "/map/zones", nil)
	rec := httptest.NewRecorder()
	GetZones(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HierarchyResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "zone", resp.Level)
	assert.Equal(t, []string{"Thiruvananthapuram"}, resp.Names)
}
