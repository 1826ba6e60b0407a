package conversation

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"StratParse/internal/domain/models"
)

func rsiIntent() *models.TradingIntent {
	return &models.TradingIntent{
		StrategyType: models.StrategyMeanReversion,
		Indicators:   []string{"rsi"},
		Actions:      []string{"buy"},
		Confidence:   0.7,
	}
}

func TestPhaseProgression(t *testing.T) {
	e := NewEngine(nil)

	cc := e.UpdateWithInput("c1", "u1", "hello", nil, nil, nil)
	if cc.Flow.Phase != models.PhaseRequirementGathering {
		t.Fatalf("no strategy yet, expected requirement_gathering, got %s", cc.Flow.Phase)
	}

	cc = e.UpdateWithInput("c1", "u1", "rsi strategy", rsiIntent(), nil, nil)
	if cc.Flow.Phase != models.PhaseStrategyBuilding {
		t.Fatalf("expected strategy_building, got %s", cc.Flow.Phase)
	}

	params := models.StrategyParameters{"period": {Value: 14.0, Type: models.ParamNumber, Confidence: 0.8}}
	cc = e.UpdateWithInput("c1", "u1", "period 14", rsiIntent(), params, nil)
	if cc.Flow.Phase != models.PhaseOptimization {
		t.Fatalf("recent parameters mean optimization, got %s", cc.Flow.Phase)
	}

	// parameters age out of the recency window
	for i := 0; i < 3; i++ {
		cc = e.UpdateWithInput("c1", "u1", fmt.Sprintf("turn %d", i), rsiIntent(), nil, nil)
	}
	if cc.Flow.Phase != models.PhaseStrategyBuilding {
		t.Fatalf("stale parameters must drop back to strategy_building, got %s", cc.Flow.Phase)
	}
}

func TestCompletionOnlyExplicit(t *testing.T) {
	e := NewEngine(nil)
	e.UpdateWithInput("c1", "u1", "rsi strategy", rsiIntent(), nil, nil)

	if e.CompleteConversation("missing") {
		t.Fatalf("unknown conversation must not complete")
	}
	if !e.CompleteConversation("c1") {
		t.Fatalf("expected completion")
	}
	cc, _ := e.Snapshot("c1")
	if cc.Flow.Phase != models.PhaseCompletion {
		t.Fatalf("expected completion, got %s", cc.Flow.Phase)
	}

	// later turns never leave completion
	cc = e.UpdateWithInput("c1", "u1", "one more thing", rsiIntent(), nil, nil)
	if cc.Flow.Phase != models.PhaseCompletion {
		t.Fatalf("completion is terminal, got %s", cc.Flow.Phase)
	}
}

func TestResolveReferences(t *testing.T) {
	e := NewEngine(nil)
	if got := e.ResolveReferences("missing", "set it to 20"); got != "set it to 20" {
		t.Fatalf("unknown conversation must pass text through, got %q", got)
	}

	e.UpdateWithInput("c1", "u1", "use rsi", rsiIntent(), nil, nil)

	got := e.ResolveReferences("c1", "set it to 20")
	if got != "set rsi to 20" {
		t.Fatalf("pronoun must resolve to the last indicator, got %q", got)
	}

	got = e.ResolveReferences("c1", "make the strategy safer")
	if got != "make mean_reversion safer" {
		t.Fatalf("strategy reference must resolve, got %q", got)
	}
}

func TestResolveReferencesWholeWordOnly(t *testing.T) {
	e := NewEngine(nil)
	e.UpdateWithInput("c1", "u1", "use rsi", rsiIntent(), nil, nil)

	got := e.ResolveReferences("c1", "commit to it")
	if got != "commit to rsi" {
		t.Fatalf("expected whole-word replacement, got %q", got)
	}
}

func TestResolveReferencesMultiByteText(t *testing.T) {
	e := NewEngine(nil)
	e.UpdateWithInput("c1", "u1", "use rsi", rsiIntent(), nil, nil)

	got := e.ResolveReferences("c1", "İİİİİİ use it now")
	if got != "İİİİİİ use rsi now" {
		t.Fatalf("multi-byte text must survive resolution, got %q", got)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("resolution produced invalid UTF-8: %q", got)
	}
}

func TestMergeIntentAcrossTurns(t *testing.T) {
	e := NewEngine(nil)
	e.UpdateWithInput("c1", "u1", "rsi strategy", rsiIntent(), nil, nil)

	second := &models.TradingIntent{
		StrategyType: models.StrategyCustom,
		Indicators:   []string{"sma"},
		Actions:      []string{"sell"},
		Confidence:   0.2,
	}
	cc := e.UpdateWithInput("c1", "u1", "also add sma", second, nil, nil)

	if cc.CurrentStrategy.StrategyType != models.StrategyMeanReversion {
		t.Fatalf("custom must not overwrite a classified type, got %s", cc.CurrentStrategy.StrategyType)
	}
	if len(cc.CurrentStrategy.Indicators) != 2 {
		t.Fatalf("indicators must union, got %v", cc.CurrentStrategy.Indicators)
	}
	if len(cc.ActiveIndicators) != 2 {
		t.Fatalf("active indicators must accumulate, got %v", cc.ActiveIndicators)
	}
	if cc.CurrentStrategy.Confidence != 0.7 {
		t.Fatalf("confidence keeps the best value, got %v", cc.CurrentStrategy.Confidence)
	}
}

func TestHistoryCap(t *testing.T) {
	e := NewEngine(nil, WithMaxHistory(5))
	for i := 0; i < 12; i++ {
		e.UpdateWithInput("c1", "u1", fmt.Sprintf("turn %d", i), nil, nil, nil)
	}
	cc, ok := e.Snapshot("c1")
	if !ok {
		t.Fatalf("expected context")
	}
	if len(cc.History) != 5 {
		t.Fatalf("history must cap at 5, got %d", len(cc.History))
	}
	if cc.History[len(cc.History)-1].Text != "turn 11" {
		t.Fatalf("cap must keep the newest entries, got %q", cc.History[len(cc.History)-1].Text)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	e := NewEngine(nil)
	cc := e.UpdateWithInput("c1", "u1", "use rsi", rsiIntent(), nil, nil)

	cc.ActiveIndicators = append(cc.ActiveIndicators, "tampered")
	cc.References.Pronouns["it"] = "tampered"

	fresh, _ := e.Snapshot("c1")
	for _, id := range fresh.ActiveIndicators {
		if id == "tampered" {
			t.Fatalf("snapshot must not share slices with the engine")
		}
	}
	if fresh.References.Pronouns["it"] == "tampered" {
		t.Fatalf("snapshot must not share maps with the engine")
	}
}

func TestClearAndActive(t *testing.T) {
	e := NewEngine(nil)
	e.UpdateWithInput("c1", "u1", "x", nil, nil, nil)
	e.UpdateWithInput("c2", "u2", "y", nil, nil, nil)
	if n := e.ActiveConversations(); n != 2 {
		t.Fatalf("expected 2 active, got %d", n)
	}
	e.ClearConversation("c1")
	if n := e.ActiveConversations(); n != 1 {
		t.Fatalf("expected 1 after clear, got %d", n)
	}
	if _, ok := e.Snapshot("c1"); ok {
		t.Fatalf("cleared conversation must be gone")
	}
}

func TestUpdateWithResponse(t *testing.T) {
	e := NewEngine(nil)
	e.UpdateWithInput("c1", "u1", "use rsi", rsiIntent(), nil, nil)
	e.UpdateWithResponse("c1", "added rsi", []string{"indicator_added"})

	cc, _ := e.Snapshot("c1")
	if len(cc.History) != 2 || cc.History[1].Role != models.RoleAssistant {
		t.Fatalf("expected assistant entry, got %+v", cc.History)
	}
	if len(cc.Flow.CompletedSteps) != 1 || cc.Flow.CompletedSteps[0] != "indicator_added" {
		t.Fatalf("completed steps must record actions, got %v", cc.Flow.CompletedSteps)
	}
	// unknown conversations are ignored
	e.UpdateWithResponse("missing", "noop", nil)
}

func TestMentionTracking(t *testing.T) {
	e := NewEngine(nil)
	ents := []models.Entity{{Text: "RSI", Type: models.EntityIndicatorName, Value: "rsi", Confidence: 0.9}}
	e.UpdateWithInput("c1", "u1", "rsi please", nil, nil, ents)
	cc := e.UpdateWithInput("c1", "u1", "rsi again", nil, nil, ents)

	stat, ok := cc.References.Mentions["rsi"]
	if !ok || stat.Count != 2 {
		t.Fatalf("expected 2 mentions of rsi, got %+v", stat)
	}
}
