package handlers_fiber

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jaimerodas/elixirschool/internal/entities"
	githubgw "github.com/jaimerodas/elixirschool/internal/gateway/github"
	"github.com/jaimerodas/elixirschool/internal/session"
	"github.com/jaimerodas/elixirschool/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ucMock struct{ mock.Mock }

func (m *ucMock) Resolve(ctx context.Context, login, token string) (entities.Verdict, error) {
	args := m.Called(ctx, login, token)
	return args.Get(0).(entities.Verdict), args.Error(1)
}

func (m *ucMock) RequestInvite(ctx context.Context, login, token, email string) (*entities.Invitation, error) {
	args := m.Called(ctx, login, token, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invitation), args.Error(1)
}

func (m *ucMock) Invitation(ctx context.Context, login string) (*entities.Invitation, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invitation), args.Error(1)
}

type memStore struct {
	sessions map[string]session.Session
	states   map[string]struct{}
}

var _ session.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		sessions: make(map[string]session.Session),
		states:   make(map[string]struct{}),
	}
}

func (s *memStore) Create(_ context.Context, sess session.Session) error {
	s.sessions[sess.ID] = sess
	return nil
}

func (s *memStore) Get(_ context.Context, id string) (*session.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func (s *memStore) SaveState(_ context.Context, state string) error {
	s.states[state] = struct{}{}
	return nil
}

func (s *memStore) ConsumeState(_ context.Context, state string) error {
	if _, ok := s.states[state]; !ok {
		return entities.ErrSessionNotFound
	}
	delete(s.states, state)
	return nil
}

type authStub struct {
	result *githubgw.AuthResult
	err    error
}

func (a *authStub) AuthCodeURL(state string) string {
	return "https://github.test/login/oauth/authorize?state=" + state
}

func (a *authStub) Exchange(_ context.Context, _ string) (*githubgw.AuthResult, error) {
	return a.result, a.err
}

func newTestApp(uc *ucMock, store session.Store, auth githubgw.Authenticator) *fiber.App {
	app := fiber.New()
	h := NewHandler(zap.NewNop().Sugar(), uc, store, auth, time.Hour)
	h.RegisterRoutes(app)
	return app
}

func seedSession(t *testing.T, store *memStore, login, token string) string {
	t.Helper()
	sess := session.Session{ID: "sess-1", Login: login, Token: token, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Create(context.Background(), sess))
	return sess.ID
}

func TestLoginRedirectsToGitHub(t *testing.T) {
	store := newMemStore()
	app := newTestApp(&ucMock{}, store, &authStub{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/auth/login", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	loc := resp.Header.Get("Location")
	require.True(t, strings.HasPrefix(loc, "https://github.test/login/oauth/authorize?state="))

	state := strings.TrimPrefix(loc, "https://github.test/login/oauth/authorize?state=")
	require.Contains(t, store.states, state)
}

func TestCallbackOpensSession(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.SaveState(context.Background(), "st-1"))

	auth := &authStub{result: &githubgw.AuthResult{Login: "alice", Token: "tok"}}
	app := newTestApp(&ucMock{}, store, auth)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/auth/callback?code=c&state=st-1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/eligibility", resp.Header.Get("Location"))

	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == middleware.CookieName {
			cookie = c.Value
		}
	}
	require.NotEmpty(t, cookie)

	sess, err := store.Get(context.Background(), cookie)
	require.NoError(t, err)
	require.Equal(t, "alice", sess.Login)
	require.Equal(t, "tok", sess.Token)

	// the state is single-use
	require.NotContains(t, store.states, "st-1")
}

func TestCallbackRejectsUnknownState(t *testing.T) {
	app := newTestApp(&ucMock{}, newMemStore(), &authStub{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/auth/callback?code=c&state=bogus", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEligibilityRequiresSession(t *testing.T) {
	app := newTestApp(&ucMock{}, newMemStore(), &authStub{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/eligibility", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetEligibility(t *testing.T) {
	store := newMemStore()
	id := seedSession(t, store, "alice", "tok")

	uc := &ucMock{}
	uc.On("Resolve", mock.Anything, "alice", "tok").
		Return(entities.Verdict{Eligible: true, Org: "acme", Repo: "site"}, nil).Once()

	app := newTestApp(uc, store, &authStub{})

	req := httptest.NewRequest(http.MethodGet, "/eligibility", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: id})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Login    string `json:"login"`
		Eligible bool   `json:"eligible"`
		Org      string `json:"org"`
		Repo     string `json:"repo"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "alice", body.Login)
	require.True(t, body.Eligible)
	require.Equal(t, "acme", body.Org)
	require.Equal(t, "site", body.Repo)

	uc.AssertExpectations(t)
}

func TestPostInvite(t *testing.T) {
	store := newMemStore()
	id := seedSession(t, store, "alice", "tok")

	uc := &ucMock{}
	uc.On("RequestInvite", mock.Anything, "alice", "tok", "alice@example.com").
		Return(&entities.Invitation{Login: "alice", Email: "alice@example.com", Org: "acme", Repo: "core"}, nil).Once()

	app := newTestApp(uc, store, &authStub{})

	req := httptest.NewRequest(http.MethodPost, "/invites", strings.NewReader(`{"email":"alice@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: id})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Invitation invitationResponse `json:"invitation"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "alice", body.Invitation.Login)
	require.Equal(t, "acme", body.Invitation.Org)

	uc.AssertExpectations(t)
}

func TestPostInviteNotEligible(t *testing.T) {
	store := newMemStore()
	id := seedSession(t, store, "carol", "tok")

	uc := &ucMock{}
	uc.On("RequestInvite", mock.Anything, "carol", "tok", "carol@example.com").
		Return(nil, entities.ErrNotEligible).Once()

	app := newTestApp(uc, store, &authStub{})

	req := httptest.NewRequest(http.MethodPost, "/invites", strings.NewReader(`{"email":"carol@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: id})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, CodeNotEligible, body.Error.Code)
}
