//go:build wireinject
// +build wireinject

package di

import (
	"StratParse/pkg/config"
	"StratParse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// NLP pipeline
		ProvideVocabulary,
		ProvideTokenizer,
		ProvideIntentExtractor,
		ProvideParameterExtractor,
		ProvideContextEngine,

		// Knowledge base
		ProvidePatternLibrary,
		ProvideIndicatorDatabase,
		ProvideRiskEngine,
		ProvideRiskAssessor,
		ProvideRedisCache,
		ProvideKnowledgeBase,

		// Use case + HTTP surface
		ProvideProcessor,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
