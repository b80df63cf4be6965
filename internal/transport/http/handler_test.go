package http_test

import (
	"bytes"
	"club-membership-service/internal/domain"
	"club-membership-service/internal/repository/inmemory"
	"club-membership-service/internal/service"
	transport "club-membership-service/internal/transport/http"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnviroment struct {
	router http.Handler
}

func setup() testEnviroment {
	storage, _ := inmemory.NewStorage()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := inmemory.NewUserRepo(storage)
	clubRepo := inmemory.NewClubRepo(storage)

	userService := service.NewUserService(userRepo, domain.NewUUIDUserFactory(), logger)
	clubService := service.NewClubService(clubRepo, userRepo, domain.NewUUIDClubFactory(), logger)

	return testEnviroment{
		router: transport.NewHandler(userService, clubService, logger).RegisterRoutes(),
	}
}

func (e testEnviroment) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	return rec
}

type userBody struct {
	User struct {
		UserID    string `json:"user_id"`
		Name      string `json:"name"`
		IsPremium bool   `json:"is_premium"`
	} `json:"user"`
}

type clubBody struct {
	Club struct {
		ClubID  string   `json:"club_id"`
		Name    string   `json:"name"`
		OwnerID string   `json:"owner_id"`
		Members []string `json:"members"`
	} `json:"club"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))

	return v
}

func (e testEnviroment) registerUser(t *testing.T, name string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/user", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[userBody](t, rec).User.UserID
}

func (e testEnviroment) createClub(t *testing.T, ownerID, name string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/club", map[string]string{"name": name, "user_id": ownerID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[clubBody](t, rec).Club.ClubID
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	assert.Equal(t, status, rec.Code)
	assert.Equal(t, code, decode[transport.ErrorResponse](t, rec).Error.Code)
}

func TestHealth(t *testing.T) {
	e := setup()

	rec := e.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestUserLifecycle(t *testing.T) {
	e := setup()
	id := e.registerUser(t, "alice")

	rec := e.do(t, http.MethodGet, "/user/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decode[userBody](t, rec).User.Name)

	rec = e.do(t, http.MethodPut, "/user", map[string]string{"id": id, "name": "alicia"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alicia", decode[userBody](t, rec).User.Name)

	rec = e.do(t, http.MethodPost, "/user/"+id+"/upgrade", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[userBody](t, rec).User.IsPremium)

	rec = e.do(t, http.MethodPost, "/user/"+id+"/downgrade", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[userBody](t, rec).User.IsPremium)

	rec = e.do(t, http.MethodDelete, "/user/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = e.do(t, http.MethodDelete, "/user/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = e.do(t, http.MethodGet, "/user/"+id, nil)
	assertErrorCode(t, rec, http.StatusNotFound, "NOT_FOUND")
}

func TestUserErrors(t *testing.T) {
	e := setup()
	e.registerUser(t, "alice")

	rec := e.do(t, http.MethodPost, "/user", map[string]string{"name": "al"})
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")

	rec = e.do(t, http.MethodPost, "/user", map[string]string{"name": "alice"})
	assertErrorCode(t, rec, http.StatusConflict, "ALREADY_EXISTS")

	rec = e.do(t, http.MethodPost, "/user", "{not json")
	assertErrorCode(t, rec, http.StatusBadRequest, "BAD_REQUEST")

	rec = e.do(t, http.MethodPut, "/user", map[string]string{"id": "missing", "name": "bobby"})
	assertErrorCode(t, rec, http.StatusNotFound, "NOT_FOUND")
}

func TestClubScenario(t *testing.T) {
	e := setup()
	alice := e.registerUser(t, "alice")
	bob := e.registerUser(t, "bob")
	carol := e.registerUser(t, "carol")
	dave := e.registerUser(t, "dave")

	clubID := e.createClub(t, alice, "Chess Club")

	rec := e.do(t, http.MethodPost, "/club", map[string]string{"name": "Chess Club", "user_id": bob})
	assertErrorCode(t, rec, http.StatusConflict, "ALREADY_EXISTS")

	rec = e.do(t, http.MethodPost, "/club/"+clubID+"/members", map[string]string{"user_id": bob})
	require.Equal(t, http.StatusOK, rec.Code)
	club := decode[clubBody](t, rec).Club
	assert.Equal(t, alice, club.OwnerID)
	assert.Equal(t, []string{bob}, club.Members)

	rec = e.do(t, http.MethodGet, "/club/recommendations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"clubs":[]}`, rec.Body.String())

	rec = e.do(t, http.MethodPost, "/club/"+clubID+"/members", map[string]string{"user_id": carol})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(t, http.MethodPost, "/club/"+clubID+"/members", map[string]string{"user_id": dave})
	assertErrorCode(t, rec, http.StatusConflict, "CLUB_FULL")

	rec = e.do(t, http.MethodPost, "/club/missing/members", map[string]string{"user_id": dave})
	assertErrorCode(t, rec, http.StatusNotFound, "NOT_FOUND")

	rec = e.do(t, http.MethodGet, "/club/recommendations", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var recommendations struct {
		Clubs []struct {
			ClubID   string `json:"club_id"`
			ClubName string `json:"club_name"`
			OwnerID  string `json:"owner_id"`
		} `json:"clubs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recommendations))
	require.Len(t, recommendations.Clubs, 1)
	assert.Equal(t, clubID, recommendations.Clubs[0].ClubID)
	assert.Equal(t, "Chess Club", recommendations.Clubs[0].ClubName)
	assert.Equal(t, alice, recommendations.Clubs[0].OwnerID)
}
