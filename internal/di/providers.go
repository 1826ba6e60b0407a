package di

import (
	"fmt"
	"net"
	"strconv"

	"StratParse/internal/domain/service"
	"StratParse/internal/handler/api"
	"StratParse/internal/knowledge"
	"StratParse/internal/knowledge/indicators"
	"StratParse/internal/knowledge/patterns"
	"StratParse/internal/knowledge/risk"
	"StratParse/internal/nlp/conversation"
	"StratParse/internal/nlp/intent"
	"StratParse/internal/nlp/params"
	"StratParse/internal/nlp/tokenizer"
	"StratParse/internal/nlp/vocabulary"
	"StratParse/internal/usecase"
	"StratParse/pkg/cache"
	"StratParse/pkg/config"
	xhttp "StratParse/pkg/http"
	applogger "StratParse/pkg/logger"
	"StratParse/pkg/metrics"
	"StratParse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	format := cfg.Logging.Format
	if format == "" {
		format = "console"
	}
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: format,
		Output: "stdout",
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() service.Metrics {
	return metrics.New()
}

// ProvideVocabulary builds the trading vocabulary matcher.
func ProvideVocabulary() *vocabulary.Matcher {
	return vocabulary.NewMatcher()
}

// ProvideTokenizer creates the tokenizer over the vocabulary.
func ProvideTokenizer(cfg *config.Config, vocab *vocabulary.Matcher, log *applogger.Logger) service.Tokenizer {
	return tokenizer.New(vocab, tokenizer.Config{
		MinTokenLength: cfg.NLP.MinTokenLength,
		MaxTokenLength: cfg.NLP.MaxTokenLength,
	}, log)
}

// ProvidePatternLibrary creates the pattern matching facade.
func ProvidePatternLibrary(cfg *config.Config, log *applogger.Logger, m service.Metrics) *patterns.Library {
	return patterns.NewLibrary(log,
		patterns.WithCacheTTL(cfg.Cache.PatternTTL),
		patterns.WithCacheSize(cfg.Cache.MaxEntries),
		patterns.WithMetrics(m),
	)
}

// ProvideIntentExtractor creates the intent extractor over the pattern library.
func ProvideIntentExtractor(lib *patterns.Library, log *applogger.Logger) service.IntentExtractor {
	return intent.NewExtractor(lib, log)
}

// ProvideParameterExtractor creates the parameter extractor.
func ProvideParameterExtractor(log *applogger.Logger) service.ParameterExtractor {
	return params.NewExtractor(log)
}

// ProvideContextEngine creates the conversation context engine.
func ProvideContextEngine(cfg *config.Config, log *applogger.Logger, m service.Metrics) service.ContextEngine {
	return conversation.NewEngine(log,
		conversation.WithMaxHistory(cfg.NLP.MaxHistory),
		conversation.WithMetrics(m),
	)
}

// ProvideIndicatorDatabase creates the indicator catalog.
func ProvideIndicatorDatabase(log *applogger.Logger) *indicators.Database {
	return indicators.NewDatabase(log)
}

// ProvideRiskEngine creates the validated risk rule engine.
func ProvideRiskEngine(log *applogger.Logger) (*risk.Engine, error) {
	eng, err := risk.NewEngine(log)
	if err != nil {
		return nil, fmt.Errorf("risk engine: %w", err)
	}
	return eng, nil
}

// ProvideRiskAssessor exposes the engine behind the service interface.
func ProvideRiskAssessor(eng *risk.Engine) service.RiskAssessor {
	return eng
}

// ProvideRedisCache creates the optional redis layer; nil when disabled.
func ProvideRedisCache(cfg *config.Config) (*cache.RedisCache, error) {
	if !cfg.Cache.Redis.Enabled {
		return nil, nil
	}
	host, portStr, err := net.SplitHostPort(cfg.Cache.Redis.Addr)
	if err != nil {
		return nil, fmt.Errorf("redis addr: %w", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("redis port: %w", err)
	}
	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(host),
		cache.WithRedisPort(port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix("stratparse:"+cfg.Environment),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return rc, nil
}

// ProvideKnowledgeBase creates the unified knowledge query surface.
func ProvideKnowledgeBase(
	cfg *config.Config,
	lib *patterns.Library,
	db *indicators.Database,
	eng *risk.Engine,
	rc *cache.RedisCache,
	log *applogger.Logger,
	m service.Metrics,
) service.KnowledgeBase {
	opts := []knowledge.BaseOption{
		knowledge.WithTTL(cfg.Cache.KnowledgeTTL),
		knowledge.WithBaseMetrics(m),
	}
	if rc != nil {
		opts = append(opts, knowledge.WithRedis(rc))
	}
	return knowledge.NewBase(lib, db, eng, log, opts...)
}

// ProvideProcessor creates the pipeline orchestrator.
func ProvideProcessor(
	cfg *config.Config,
	tok service.Tokenizer,
	ie service.IntentExtractor,
	pe service.ParameterExtractor,
	ce service.ContextEngine,
	ra service.RiskAssessor,
	kb service.KnowledgeBase,
	log *applogger.Logger,
	m service.Metrics,
) *usecase.Processor {
	return usecase.NewProcessor(tok, ie, pe, ce, ra, kb, usecase.Config{
		MinConfidence:     cfg.NLP.MinConfidence,
		MaxInputLength:    cfg.NLP.MaxInputLength,
		MaxProcessingTime: cfg.NLP.MaxProcessingTime,
		FallbackEnabled:   cfg.NLP.FallbackEnabled,
		StrictValidation:  cfg.NLP.StrictValidation,
		MaxSuggestions:    cfg.NLP.MaxSuggestions,
	}, log, m)
}

// ProvideHandler creates the HTTP handler surface.
func ProvideHandler(
	log *applogger.Logger,
	proc *usecase.Processor,
	ce service.ContextEngine,
	kb service.KnowledgeBase,
	ra service.RiskAssessor,
	db *indicators.Database,
) xhttp.Handler {
	return api.NewNLPHandler(log, proc, ce, kb, ra, db)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, log *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, log, handler)
}
