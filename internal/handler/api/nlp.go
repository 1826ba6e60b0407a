package api

import (
	"errors"

	models "StratParse/internal/domain/models"
	"StratParse/internal/domain/service"
	"StratParse/internal/knowledge/indicators"
	"StratParse/internal/usecase"
	xhttp "StratParse/pkg/http"
	xlogger "StratParse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NLPHandler exposes the pipeline and knowledge base to the conversation
// layer over HTTP.
type NLPHandler struct {
	logger     *xlogger.Logger
	processor  *usecase.Processor
	contexts   service.ContextEngine
	knowledge  service.KnowledgeBase
	risk       service.RiskAssessor
	indicators *indicators.Database
}

func NewNLPHandler(
	logger *xlogger.Logger,
	processor *usecase.Processor,
	contexts service.ContextEngine,
	knowledge service.KnowledgeBase,
	risk service.RiskAssessor,
	db *indicators.Database,
) *NLPHandler {
	return &NLPHandler{
		logger:     logger,
		processor:  processor,
		contexts:   contexts,
		knowledge:  knowledge,
		risk:       risk,
		indicators: db,
	}
}

func (h *NLPHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/nlp/process", h.Process)
	g.GET("/conversations/:id", h.GetConversation)
	g.POST("/conversations/:id/response", h.Respond)
	g.POST("/conversations/:id/complete", h.Complete)
	g.DELETE("/conversations/:id", h.ClearConversation)
	g.POST("/knowledge/query", h.QueryKnowledge)
	g.GET("/knowledge/strategies/:type", h.StrategyKnowledge)
	g.DELETE("/knowledge/cache", h.InvalidateKnowledge)
	g.POST("/risk/assess", h.AssessRisk)
	g.POST("/risk/position-size", h.PositionSize)
	g.POST("/risk/reward", h.RiskReward)
	g.POST("/risk/completeness", h.Completeness)
	g.GET("/indicators/suggest", h.SuggestIndicators)
}

func (h *NLPHandler) Process(c echo.Context) error {
	req := &models.ProcessRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.processor.Process(c.Request().Context(), req.Text, req.ConversationID, req.UserID)
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError(verr.Reason).WithError(verr))
		}
		h.logger.Error("process usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *NLPHandler) GetConversation(c echo.Context) error {
	cc, ok := h.contexts.Snapshot(c.Param("id"))
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("conversation %s not found", c.Param("id")))
	}
	if since, ok := xhttp.ParseTime(c.QueryParam("since")); ok {
		kept := cc.History[:0]
		for _, e := range cc.History {
			if !e.Timestamp.Before(since) {
				kept = append(kept, e)
			}
		}
		cc.History = kept
	}
	return xhttp.SuccessResponse(c, cc)
}

func (h *NLPHandler) Respond(c echo.Context) error {
	req := &models.RespondRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	h.contexts.UpdateWithResponse(c.Param("id"), req.Text, req.Actions)
	return xhttp.NoContentResponse(c)
}

func (h *NLPHandler) Complete(c echo.Context) error {
	if !h.contexts.CompleteConversation(c.Param("id")) {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("conversation %s not found", c.Param("id")))
	}
	return xhttp.NoContentResponse(c)
}

func (h *NLPHandler) ClearConversation(c echo.Context) error {
	h.contexts.ClearConversation(c.Param("id"))
	return xhttp.NoContentResponse(c)
}

func (h *NLPHandler) QueryKnowledge(c echo.Context) error {
	req := &models.KnowledgeQueryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	answer, err := h.knowledge.Query(c.Request().Context(), models.KnowledgeQuery{
		Kind:         models.KnowledgeQueryKind(req.Kind),
		Keywords:     req.Keywords,
		Indicators:   req.Indicators,
		Conditions:   req.Conditions,
		StrategyType: models.StrategyType(req.StrategyType),
		Filter:       req.Filter,
	})
	if err != nil {
		h.logger.Error("knowledge query error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithError(err))
	}
	return xhttp.SuccessResponse(c, answer)
}

func (h *NLPHandler) InvalidateKnowledge(c echo.Context) error {
	if err := h.knowledge.Invalidate(c.Request().Context()); err != nil {
		h.logger.Error("knowledge invalidate error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.NoContentResponse(c)
}

func (h *NLPHandler) StrategyKnowledge(c echo.Context) error {
	sk, err := h.knowledge.StrategyKnowledge(c.Request().Context(), models.StrategyType(c.Param("type")))
	if err != nil {
		h.logger.Error("strategy knowledge error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, sk)
}

func (h *NLPHandler) AssessRisk(c echo.Context) error {
	req := &models.AssessRiskRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	assessment := h.risk.AssessRisk(models.StrategyType(req.StrategyType), req.Inputs)
	return xhttp.SuccessResponse(c, assessment)
}

func (h *NLPHandler) PositionSize(c echo.Context) error {
	req := &models.PositionSizeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res := h.risk.CalculatePositionSize(models.PositionSizeInput{
		AccountBalance:  req.AccountBalance,
		RiskPerTrade:    req.RiskPerTrade,
		StopDistancePct: req.StopDistancePct,
		VolatilityRatio: req.VolatilityRatio,
		Confidence:      req.Confidence,
		Correlation:     req.Correlation,
	})
	return xhttp.SuccessResponse(c, res)
}

func (h *NLPHandler) RiskReward(c echo.Context) error {
	req := &models.RiskRewardRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	analysis := h.risk.CalculateRiskReward(req.EntryPrice, req.StopLoss, req.TakeProfit, req.WinProbability)
	return xhttp.SuccessResponse(c, analysis)
}

func (h *NLPHandler) Completeness(c echo.Context) error {
	req := &models.CompletenessRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	report := h.risk.AssessStrategyCompleteness(models.StrategyType(req.StrategyType), req.Components)
	suggestions := h.risk.SuggestRiskComponents(models.StrategyType(req.StrategyType), req.Components)
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"report":      report,
		"suggestions": suggestions,
	})
}

func (h *NLPHandler) SuggestIndicators(c echo.Context) error {
	req := &models.SuggestIndicatorsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	suggestions := h.indicators.GetSuggestions(
		models.StrategyType(req.StrategyType),
		req.Existing,
		models.Difficulty(req.Level),
		req.MarketCondition,
		req.Timeframe,
	)
	if max := xhttp.ParseIntDefault(c.QueryParam("max"), 0); max > 0 && max < len(suggestions) {
		suggestions = suggestions[:max]
	}
	return xhttp.SuccessResponse(c, suggestions)
}
