package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/user"
	"github.com/docrouter-ce/docrouter/pkg/blob"
	"github.com/docrouter-ce/docrouter/pkg/config"
	"github.com/docrouter-ce/docrouter/pkg/credit"
	"github.com/docrouter-ce/docrouter/pkg/crypto"
	"github.com/docrouter-ce/docrouter/pkg/database"
	"github.com/docrouter-ce/docrouter/pkg/intake"
	"github.com/docrouter-ce/docrouter/pkg/llm"
	"github.com/docrouter-ce/docrouter/pkg/models"
	"github.com/docrouter-ce/docrouter/pkg/pipeline"
	"github.com/docrouter-ce/docrouter/pkg/queue"
	"github.com/docrouter-ce/docrouter/pkg/services"
	testdb "github.com/docrouter-ce/docrouter/test/database"
)

const testSecret = "api-test-secret"

// stubChat satisfies llm.Client with a canned response.
type stubChat struct {
	response string
}

func (s *stubChat) Generate(ctx context.Context, in llm.GenerateInput) (string, llm.Usage, error) {
	return s.response, llm.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}, nil
}

type apiFixture struct {
	server *Server
	db     *database.Client
	blobs  *blob.Store
	svc    Services
	cipher *crypto.Cipher
	chat   *stubChat
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	cipher, err := crypto.New(testSecret)
	require.NoError(t, err)

	blobs := blob.NewStore(db.Client)
	q := queue.New(db.Client)
	converter := intake.NewConverter("soffice", filepath.Join(t.TempDir(), "convert.lock"))
	docs := services.NewDocumentService(db.Client, blobs, q, converter)

	svc := Services{
		Documents:     docs,
		Tags:          services.NewTagService(db.Client),
		Prompts:       services.NewPromptService(db.Client),
		Schemas:       services.NewSchemaService(db.Client),
		Results:       services.NewResultService(db.Client),
		Organizations: services.NewOrganizationService(db.Client),
		Users:         services.NewUserService(db.Client),
		Tokens:        services.NewTokenService(db.Client, cipher),
	}

	chat := &stubChat{response: `{"document_type":"letter","document_date":"","summary":"a letter"}`}
	orchestrator := pipeline.NewOrchestrator(db.Client, docs, blobs, chat, credit.NoopGate{}, cipher)
	artifacts := pipeline.NewArtifacts(blobs)

	cfg := &config.Config{Secret: testSecret, Queue: config.DefaultQueueConfig()}
	server := NewServer(cfg, db, nil, svc, orchestrator, artifacts)
	return &apiFixture{server: server, db: db, blobs: blobs, svc: svc, cipher: cipher, chat: chat}
}

func (f *apiFixture) createUser(t *testing.T, email string, role user.Role) *ent.User {
	t.Helper()
	u, err := f.db.Client.User.Create().
		SetEmail(email).
		SetName(email).
		SetPasswordHash("x").
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func (f *apiFixture) session(t *testing.T, u *ent.User) string {
	t.Helper()
	tok, err := signSessionToken(testSecret, u.ID, u.Email, time.Hour)
	require.NoError(t, err)
	return tok
}

func (f *apiFixture) createOrg(t *testing.T, u *ent.User, name string) *ent.Organization {
	t.Helper()
	org, err := f.svc.Organizations.Create(context.Background(), u.ID, false, name, models.OrgTypeTeam)
	require.NoError(t, err)
	return org
}

// do serves one request through the router. An empty bearer leaves the
// Authorization header unset.
func (f *apiFixture) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	f.server.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func errorDetailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var e errorDetail
	decodeBody(t, rec, &e)
	return e.Detail
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, healthStatusHealthy, resp.Status)
	assert.Equal(t, healthStatusHealthy, resp.Checks["database"].Status)
}

func TestSecurityHeaders(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestAuth_MissingCredentials(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/v0/orgs/org1/tags", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "missing bearer credentials", errorDetailOf(t, rec))

	rec = f.do(t, http.MethodGet, "/v0/orgs/org1/tags", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid or expired credentials", errorDetailOf(t, rec))
}

func TestAuth_TokenContextIsolation(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	u := f.createUser(t, "owner@example.com", user.RoleUser)
	org := f.createOrg(t, u, "Acme")
	other := f.createUser(t, "other@example.com", user.RoleUser)
	otherOrg := f.createOrg(t, other, "Other Corp")

	accTok, err := f.svc.Tokens.Create(ctx, u.ID, "", "personal", 0)
	require.NoError(t, err)
	orgTok, err := f.svc.Tokens.Create(ctx, u.ID, org.ID, "ci", 0)
	require.NoError(t, err)

	t.Run("account token on org endpoint", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/v0/orgs/"+org.ID+"/tags", accTok.Plaintext, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("account token on account endpoint", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/v0/account/organizations", accTok.Plaintext, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("org token on its organization", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/v0/orgs/"+org.ID+"/tags", orgTok.Plaintext, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("org token on a different organization", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/v0/orgs/"+otherOrg.ID+"/tags", orgTok.Plaintext, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "token is not valid for this organization", errorDetailOf(t, rec))
	})

	t.Run("org token on account endpoint", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/v0/account/organizations", orgTok.Plaintext, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "organization tokens cannot access account endpoints", errorDetailOf(t, rec))
	})
}

func TestAuth_Sessions(t *testing.T) {
	f := newAPIFixture(t)

	member := f.createUser(t, "member@example.com", user.RoleUser)
	org := f.createOrg(t, member, "Acme")
	outsider := f.createUser(t, "outsider@example.com", user.RoleUser)
	sysadmin := f.createUser(t, "root@example.com", user.RoleAdmin)

	t.Run("member session", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/v0/orgs/"+org.ID+"/tags", f.session(t, member), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-member session", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/v0/orgs/"+org.ID+"/tags", f.session(t, outsider), nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "user is not a member of this organization", errorDetailOf(t, rec))
	})

	t.Run("system admin bypasses membership", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/v0/orgs/"+org.ID+"/tags", f.session(t, sysadmin), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("session of a deleted user", func(t *testing.T) {
		ghost := f.createUser(t, "ghost@example.com", user.RoleUser)
		tok := f.session(t, ghost)
		require.NoError(t, f.db.Client.User.DeleteOneID(ghost.ID).Exec(context.Background()))

		rec := f.do(t, http.MethodGet, "/v0/account/organizations", tok, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired session", func(t *testing.T) {
		tok, err := signSessionToken(testSecret, member.ID, member.Email, -time.Minute)
		require.NoError(t, err)
		rec := f.do(t, http.MethodGet, "/v0/account/organizations", tok, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
