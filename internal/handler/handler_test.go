package handler

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"health-advisor/internal/catalog"
	"health-advisor/internal/decision"
	"health-advisor/internal/model"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	r, err := decision.NewDefaultResolver(c)
	require.NoError(t, err)
	return New(c, r)
}

func do(h *Handler, method, path, body string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	h.Handle(&ctx)
	return &ctx
}

func decode(t *testing.T, ctx *fasthttp.RequestCtx, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), v))
}

func TestHealthz(t *testing.T) {
	ctx := do(newTestHandler(t), "GET", "/healthz", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, string(ctx.Response.Body()))
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))
}

func TestRouting(t *testing.T) {
	h := newTestHandler(t)

	ctx := do(h, "GET", "/nope", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	ctx = do(h, "GET", "/recommend", "")
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
	assert.Equal(t, "POST", string(ctx.Response.Header.Peek("Allow")))

	var errResp model.ErrorResponse
	decode(t, ctx, &errResp)
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, errResp.Status)
}

func TestQuestionsAndPackages(t *testing.T) {
	h := newTestHandler(t)

	var questions []model.Question
	decode(t, do(h, "GET", "/questions", ""), &questions)
	require.NotEmpty(t, questions)
	assert.Equal(t, "gender", questions[0].ID)

	var packages []model.Package
	decode(t, do(h, "GET", "/packages", ""), &packages)
	assert.Len(t, packages, catalog.PackageCount)
}

func TestVisible(t *testing.T) {
	h := newTestHandler(t)

	var all, female []model.Question
	decode(t, do(h, "POST", "/visible", `{"answers":{}}`), &all)
	decode(t, do(h, "POST", "/visible", `{"answers":{"gender":"female"}}`), &female)

	assert.Greater(t, len(female), len(all))
}

func TestRecommend(t *testing.T) {
	h := newTestHandler(t)

	ctx := do(h, "POST", "/recommend", `{"answers":{"gender":"male","digestiveSymptoms":["blood"]}}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp model.RecommendResponse
	decode(t, ctx, &resp)
	assert.Equal(t, "gi-combined", resp.Result.PackageSlug)
	assert.Equal(t, "blood_in_stool", resp.Result.ReasonKeys[0])
	assert.Contains(t, resp.Visible, "colonoscopyHistory")
}

func TestRecommendBadBody(t *testing.T) {
	ctx := do(newTestHandler(t), "POST", "/recommend", `{"answers":`)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestReplay(t *testing.T) {
	h := newTestHandler(t)

	ctx := do(h, "POST", "/sessions/replay", `{"actions":[]}`)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	body := `{"client_id":"c1","actions":[
		{"action_id":"1","action_name":"record_single_answer","action_properties":{"question_id":"gender","value":"female"}},
		{"action_id":"2","action_name":"next"}
	]}`
	ctx = do(h, "POST", "/sessions/replay", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp model.ReplayResponse
	decode(t, ctx, &resp)
	assert.Equal(t, model.OutcomeFailure, resp.ReplayMetadata.ReplayOutcome)
	require.Len(t, resp.ReplayResult.Messages, 1)
	assert.Equal(t, "CANNOT_PROCEED", resp.ReplayResult.Messages[0].Code)
	assert.Equal(t, "1", resp.ReplayResult.EndSession.ActionID)
	assert.Equal(t, "female", resp.ReplayResult.EndSession.Session.Answers.Value("gender"))
}

func TestAnswersMustFitQuestionModes(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name, path, body, want string
	}{
		{"single as list", "/recommend", `{"answers":{"age":["over60"],"checkupGoal":["deepest"]}}`, "question mode mismatch: age is single"},
		{"multi as scalar", "/recommend", `{"answers":{"digestiveSymptoms":"blood"}}`, "question mode mismatch: digestiveSymptoms is multiple"},
		{"unknown question", "/visible", `{"answers":{"shoeSize":"42"}}`, "unknown question: shoeSize"},
		{"unknown option", "/visible", `{"answers":{"gender":"other"}}`, `invalid option: gender has no option "other"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := do(h, "POST", tt.path, tt.body)
			require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

			var errResp model.ErrorResponse
			decode(t, ctx, &errResp)
			assert.Contains(t, errResp.Message, tt.want)
		})
	}
}
