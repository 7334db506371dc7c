package handler

import (
	"strings"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"health-advisor/internal/catalog"
	"health-advisor/internal/decision"
	"health-advisor/internal/engine"
	"health-advisor/internal/flow"
	"health-advisor/internal/logging"
	"health-advisor/internal/model"
)

// Handler serves the questionnaire catalog, one-shot recommendations and
// session replays. It holds no per-client state.
type Handler struct {
	catalog  *catalog.Catalog
	resolver *decision.Resolver
	engine   *engine.Engine
}

func New(c *catalog.Catalog, r *decision.Resolver) *Handler {
	return &Handler{
		catalog:  c,
		resolver: r,
		engine:   engine.New(flow.NewController(c, r)),
	}
}

type route struct {
	method string
	serve  func(*Handler, *fasthttp.RequestCtx)
}

var routes = map[string]route{
	"/healthz":         {fasthttp.MethodGet, (*Handler).handleHealth},
	"/questions":       {fasthttp.MethodGet, (*Handler).handleQuestions},
	"/packages":        {fasthttp.MethodGet, (*Handler).handlePackages},
	"/visible":         {fasthttp.MethodPost, (*Handler).handleVisible},
	"/recommend":       {fasthttp.MethodPost, (*Handler).handleRecommend},
	"/sessions/replay": {fasthttp.MethodPost, (*Handler).handleReplay},
}

// Handle is the fasthttp entry point.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	rt, ok := routes[string(ctx.Path())]
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
		return
	}
	if string(ctx.Method()) != rt.method {
		ctx.Response.Header.Set("Allow", rt.method)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	rt.serve(h, ctx)
}

func (h *Handler) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleQuestions(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, h.catalog.Questions)
}

func (h *Handler) handlePackages(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, h.catalog.Packages)
}

func (h *Handler) handleVisible(ctx *fasthttp.RequestCtx) {
	var req model.AnswersRequest
	if !h.decodeAnswers(ctx, &req) {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, flow.VisibleQuestions(h.catalog, req.Answers))
}

func (h *Handler) handleRecommend(ctx *fasthttp.RequestCtx) {
	var req model.AnswersRequest
	if !h.decodeAnswers(ctx, &req) {
		return
	}

	visible := flow.VisibleQuestions(h.catalog, req.Answers)
	ids := make([]string, len(visible))
	for i, q := range visible {
		ids[i] = q.ID
	}

	writeJSON(ctx, fasthttp.StatusOK, model.RecommendResponse{
		Result:  h.resolver.Resolve(req.Answers),
		Visible: ids,
	})
}

func (h *Handler) handleReplay(ctx *fasthttp.RequestCtx) {
	var req model.ReplayRequest
	if !decodeBody(ctx, &req) {
		return
	}
	if len(req.Actions) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one action is required")
		return
	}

	resp := h.engine.Process(&req)
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

// decodeAnswers decodes an answers body and rejects answers that do not
// fit the catalog, so every reader downstream sees one shape per question.
func (h *Handler) decodeAnswers(ctx *fasthttp.RequestCtx, req *model.AnswersRequest) bool {
	if !decodeBody(ctx, req) {
		return false
	}
	if err := flow.CheckAnswers(h.catalog, req.Answers); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid answers: "+strings.ReplaceAll(err.Error(), "\n", "; "))
		return false
	}
	return true
}

func decodeBody(ctx *fasthttp.RequestCtx, v interface{}) bool {
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Str("path", string(ctx.Path())).Msg("failed to encode response")
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
