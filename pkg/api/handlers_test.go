package api

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docrouter-ce/docrouter/ent"
	"github.com/docrouter-ce/docrouter/ent/user"
	"github.com/docrouter-ce/docrouter/pkg/credit"
	"github.com/docrouter-ce/docrouter/pkg/models"
	"github.com/docrouter-ce/docrouter/pkg/ocr"
	"github.com/docrouter-ce/docrouter/pkg/pipeline"
	"github.com/docrouter-ce/docrouter/pkg/services"
)

// refuseAllGate denies every spend.
type refuseAllGate struct{}

func (refuseAllGate) Check(ctx context.Context, organizationID string, spus int) (bool, error) {
	return false, nil
}

func (refuseAllGate) Record(ctx context.Context, usage credit.Usage) error { return nil }

// memberFixture is an API fixture with one org member session ready to go.
type memberFixture struct {
	*apiFixture
	user    *ent.User
	org     *ent.Organization
	bearer  string
	orgBase string
}

func newMemberFixture(t *testing.T) *memberFixture {
	f := newAPIFixture(t)
	u := f.createUser(t, "member@example.com", user.RoleUser)
	org := f.createOrg(t, u, "Acme")
	return &memberFixture{
		apiFixture: f,
		user:       u,
		org:        org,
		bearer:     f.session(t, u),
		orgBase:    "/v0/orgs/" + org.ID,
	}
}

func TestTagEndpoints(t *testing.T) {
	f := newMemberFixture(t)

	var created TagResponse
	rec := f.do(t, http.MethodPost, f.orgBase+"/tags", f.bearer,
		services.TagRequest{Name: "invoices", Color: "#ff0000"})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, f.user.ID, created.CreatedBy)

	t.Run("validation error", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, f.orgBase+"/tags", f.bearer, services.TagRequest{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotEmpty(t, errorDetailOf(t, rec))
	})

	t.Run("duplicate name", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, f.orgBase+"/tags", f.bearer,
			services.TagRequest{Name: "invoices"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, f.orgBase+"/tags", f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Tags []TagResponse `json:"tags"`
		}
		decodeBody(t, rec, &resp)
		require.Len(t, resp.Tags, 1)
		assert.Equal(t, created.ID, resp.Tags[0].ID)
	})

	t.Run("get missing", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, f.orgBase+"/tags/nope", f.bearer, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "resource not found", errorDetailOf(t, rec))
	})

	t.Run("update and delete", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, f.orgBase+"/tags/"+created.ID, f.bearer,
			services.TagRequest{Name: "receipts"})
		require.Equal(t, http.StatusOK, rec.Code)
		var updated TagResponse
		decodeBody(t, rec, &updated)
		assert.Equal(t, "receipts", updated.Name)

		rec = f.do(t, http.MethodDelete, f.orgBase+"/tags/"+created.ID, f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		rec = f.do(t, http.MethodGet, f.orgBase+"/tags/"+created.ID, f.bearer, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTokenEndpoints(t *testing.T) {
	f := newMemberFixture(t)

	var created map[string]any
	rec := f.do(t, http.MethodPost, "/v0/account/access_tokens", f.bearer,
		CreateTokenRequest{Name: "personal"})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &created)
	plaintext, _ := created["token"].(string)
	require.True(t, strings.HasPrefix(plaintext, services.TokenPrefixAccount))

	t.Run("list omits token material", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/v0/account/access_tokens", f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			AccessTokens []map[string]any `json:"access_tokens"`
		}
		decodeBody(t, rec, &resp)
		require.Len(t, resp.AccessTokens, 1)
		assert.NotContains(t, resp.AccessTokens[0], "token")
	})

	t.Run("token organization resolution", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/v0/account/token/organization?token="+plaintext, f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp TokenOrganizationResponse
		decodeBody(t, rec, &resp)
		assert.Nil(t, resp.OrganizationID)

		orgTok, err := f.svc.Tokens.Create(context.Background(), f.user.ID, f.org.ID, "ci", 0)
		require.NoError(t, err)
		rec = f.do(t, http.MethodGet, "/v0/account/token/organization?token="+orgTok.Plaintext, f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeBody(t, rec, &resp)
		require.NotNil(t, resp.OrganizationID)
		assert.Equal(t, f.org.ID, *resp.OrganizationID)
	})

	t.Run("missing token parameter", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/v0/account/token/organization", f.bearer, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("org token lifecycle", func(t *testing.T) {
		var orgCreated map[string]any
		rec := f.do(t, http.MethodPost, f.orgBase+"/access_tokens", f.bearer,
			CreateTokenRequest{Name: "deploy", Lifetime: 3600})
		require.Equal(t, http.StatusOK, rec.Code)
		decodeBody(t, rec, &orgCreated)
		assert.True(t, strings.HasPrefix(orgCreated["token"].(string), services.TokenPrefixOrg))

		rec = f.do(t, http.MethodDelete, f.orgBase+"/access_tokens/"+orgCreated["id"].(string), f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOrganizationEndpoints(t *testing.T) {
	f := newMemberFixture(t)

	var created OrganizationResponse
	rec := f.do(t, http.MethodPost, "/v0/account/organizations", f.bearer,
		CreateOrganizationRequest{Name: "Side Project", Type: models.OrgTypeTeam})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &created)
	assert.Equal(t, models.OrgRoleAdmin, models.MemberRole(created.Members, f.user.ID))

	t.Run("enterprise needs system admin", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/v0/account/organizations", f.bearer,
			CreateOrganizationRequest{Name: "Big", Type: models.OrgTypeEnterprise})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/v0/account/organizations", f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Organizations []OrganizationResponse `json:"organizations"`
		}
		decodeBody(t, rec, &resp)
		assert.Len(t, resp.Organizations, 2)
	})

	t.Run("non-member sees not found", func(t *testing.T) {
		outsider := f.createUser(t, "outsider@example.com", user.RoleUser)
		rec := f.do(t, http.MethodGet, "/v0/account/organizations/"+created.ID, f.session(t, outsider), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-admin member cannot update", func(t *testing.T) {
		plain := f.createUser(t, "plain@example.com", user.RoleUser)
		members := append(created.Members, models.OrganizationMember{UserID: plain.ID, Role: models.OrgRoleUser})
		rec := f.do(t, http.MethodPut, "/v0/account/organizations/"+created.ID, f.bearer,
			services.OrganizationRequest{Members: &members})
		require.Equal(t, http.StatusOK, rec.Code)

		name := "Hijacked"
		rec = f.do(t, http.MethodPut, "/v0/account/organizations/"+created.ID, f.session(t, plain),
			services.OrganizationRequest{Name: &name})
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "organization admin required", errorDetailOf(t, rec))
	})

	t.Run("admin renames and deletes", func(t *testing.T) {
		name := "Renamed"
		rec := f.do(t, http.MethodPut, "/v0/account/organizations/"+created.ID, f.bearer,
			services.OrganizationRequest{Name: &name})
		require.Equal(t, http.StatusOK, rec.Code)
		var updated OrganizationResponse
		decodeBody(t, rec, &updated)
		assert.Equal(t, "Renamed", updated.Name)

		rec = f.do(t, http.MethodDelete, "/v0/account/organizations/"+created.ID, f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		rec = f.do(t, http.MethodGet, "/v0/account/organizations/"+created.ID, f.bearer, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func (f *memberFixture) uploadTxt(t *testing.T, name, body string) string {
	t.Helper()
	rec := f.do(t, http.MethodPost, f.orgBase+"/documents", f.bearer, UploadDocumentsRequest{
		Documents: []services.UploadRequest{{
			Name:    name,
			Content: base64.StdEncoding.EncodeToString([]byte(body)),
		}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp UploadDocumentsResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Documents, 1)
	return resp.Documents[0].DocumentID
}

func TestDocumentEndpoints(t *testing.T) {
	f := newMemberFixture(t)

	docID := f.uploadTxt(t, "notes.txt", "hello document")

	t.Run("empty upload list", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, f.orgBase+"/documents", f.bearer,
			UploadDocumentsRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, f.orgBase+"/documents", f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.ListDocumentsResponse
		decodeBody(t, rec, &resp)
		require.Len(t, resp.Documents, 1)
		assert.Equal(t, docID, resp.Documents[0].ID)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("get with content", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, f.orgBase+"/documents/"+docID, f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp DocumentContentResponse
		decodeBody(t, rec, &resp)
		raw, err := base64.StdEncoding.DecodeString(resp.Content)
		require.NoError(t, err)
		assert.Equal(t, "hello document", string(raw))
		assert.Equal(t, "original", resp.FileType)
	})

	t.Run("bad file type", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, f.orgBase+"/documents/"+docID+"?file_type=jpeg", f.bearer, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		name := "renamed.txt"
		rec := f.do(t, http.MethodPut, f.orgBase+"/documents/"+docID, f.bearer,
			services.UpdateRequest{Name: &name})
		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.DocumentResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "renamed.txt", resp.UserFileName)
	})

	t.Run("delete", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete, f.orgBase+"/documents/"+docID, f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		rec = f.do(t, http.MethodGet, f.orgBase+"/documents/"+docID, f.bearer, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOCREndpoints(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	docID := f.uploadTxt(t, "scan.txt", "raw upload")
	blocks := []ocr.Block{
		{ID: "b1", BlockType: "LINE", Text: "page one text", Page: 1},
		{ID: "b2", BlockType: "LINE", Text: "page two text", Page: 2},
	}
	require.NoError(t, pipeline.NewArtifacts(f.blobs).Save(ctx, docID, blocks))

	t.Run("blocks", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, f.orgBase+"/ocr/download/blocks/"+docID, f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var got []ocr.Block
		decodeBody(t, rec, &got)
		assert.Len(t, got, 2)
	})

	t.Run("full text", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, f.orgBase+"/ocr/download/text/"+docID, f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "page one text")
		assert.Contains(t, rec.Body.String(), "page two text")
	})

	t.Run("single page", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, f.orgBase+"/ocr/download/text/"+docID+"?page_num=1", f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "page two text")
		assert.NotContains(t, rec.Body.String(), "page one text")
	})

	t.Run("bad page number", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, f.orgBase+"/ocr/download/text/"+docID+"?page_num=-1", f.bearer, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("metadata", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, f.orgBase+"/ocr/download/metadata/"+docID, f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp OCRMetadataResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, 2, resp.NPages)
	})

	t.Run("artifacts of a missing document", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, f.orgBase+"/ocr/download/blocks/nope", f.bearer, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLLMEndpoints(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	// An enabled provider backing the stub client.
	token, err := f.cipher.Encrypt("sk-test")
	require.NoError(t, err)
	_, err = f.db.Client.LLMProvider.Create().
		SetName("openai").
		SetDisplayName("OpenAI").
		SetLitellmProvider("openai").
		SetEnabled(true).
		SetToken(token).
		Save(ctx)
	require.NoError(t, err)

	docID := f.uploadTxt(t, "letter.txt", "Dear reader")

	var result ResultResponse
	rec := f.do(t, http.MethodPost, f.orgBase+"/llm/run/"+docID, f.bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &result)
	assert.Equal(t, services.DefaultPromptRevID, result.PromptRevID)
	assert.JSONEq(t, f.chat.response, string(result.LLMResult))

	t.Run("get result", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, f.orgBase+"/llm/result/"+docID, f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var got ResultResponse
		decodeBody(t, rec, &got)
		assert.Equal(t, result.ID, got.ID)
	})

	t.Run("update rejects a changed key set", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, f.orgBase+"/llm/result/"+docID, f.bearer,
			map[string]any{"updated_llm_result": map[string]any{"unexpected": true}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update edits in place", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, f.orgBase+"/llm/result/"+docID, f.bearer, map[string]any{
			"updated_llm_result": map[string]any{
				"document_type": "memo", "document_date": "", "summary": "a letter",
			},
			"is_verified": true,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var got ResultResponse
		decodeBody(t, rec, &got)
		assert.True(t, got.IsEdited)
		assert.True(t, got.IsVerified)
	})

	t.Run("run refused without credit", func(t *testing.T) {
		broke := pipeline.NewOrchestrator(f.db.Client, f.svc.Documents, f.blobs,
			f.chat, refuseAllGate{}, f.cipher)
		prev := f.server.orchestrator
		f.server.orchestrator = broke
		defer func() { f.server.orchestrator = prev }()

		fresh := f.uploadTxt(t, "unpaid.txt", "Dear reader")
		rec := f.do(t, http.MethodPost, f.orgBase+"/llm/run/"+fresh, f.bearer, nil)
		require.Equal(t, http.StatusPaymentRequired, rec.Code)
		assert.Equal(t, "insufficient credits", errorDetailOf(t, rec))
	})

	t.Run("download latest results", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, f.orgBase+"/llm/results/"+docID+"/download", f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp DownloadResultsResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, docID, resp.DocumentID)
		assert.Len(t, resp.Results, 1)
	})

	t.Run("delete result", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete, f.orgBase+"/llm/result/"+docID, f.bearer, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		rec = f.do(t, http.MethodGet, f.orgBase+"/llm/result/"+docID, f.bearer, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("run against a missing document", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, f.orgBase+"/llm/run/nope", f.bearer, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
