package main

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/semsarlabs/semsar/agent/agents/orchestrator"
	"github.com/semsarlabs/semsar/agent/catalog"
	contractx "github.com/semsarlabs/semsar/agent/contract"
	"github.com/semsarlabs/semsar/agent/funnel"
	"github.com/semsarlabs/semsar/agent/knowledge"
	llmx "github.com/semsarlabs/semsar/agent/llm"
	promptx "github.com/semsarlabs/semsar/agent/prompt"
	"github.com/semsarlabs/semsar/agent/rules"
	statex "github.com/semsarlabs/semsar/agent/state"
	configx "github.com/semsarlabs/semsar/pkg/config"
	"github.com/semsarlabs/semsar/pkg/crmhook"
	_ "github.com/semsarlabs/semsar/pkg/logger/autoload"
	openrouterx "github.com/semsarlabs/semsar/pkg/openrouter"
	serverx "github.com/semsarlabs/semsar/server"
)

type AppConfig struct {
	RulesPath          string `envconfig:"RULES_PATH" split_words:"true" default:"knowledge/rules.json"`
	CatalogCSVPath     string `envconfig:"CATALOG_CSV_PATH" split_words:"true" default:"knowledge/data/properties.csv"`
	BudgetMidThreshold int    `envconfig:"BUDGET_MID_THRESHOLD" split_words:"true" default:"500"`
	SessionStore       string `envconfig:"SESSION_STORE" split_words:"true" default:"memory"`
}

func main() {
	ctx := context.Background()

	appCfg := configx.MustNew[AppConfig]("")

	table := rules.LoadTable(appCfg.RulesPath)
	engine := rules.NewEngine(table, appCfg.BudgetMidThreshold)

	inventory := loadCatalog(ctx, appCfg.CatalogCSVPath)
	log.Info().Int("properties", inventory.Len()).Msg("property catalog loaded")

	retriever := knowledge.NewRetriever(inventory)
	decider := buildDecider(ctx)
	store := buildSessionStore(appCfg.SessionStore)

	agent, err := orchestrator.New(store, retriever, decider, engine)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build orchestrator")
	}

	var leads contractx.LeadPublisher
	crmCfg := configx.MustNew[crmhook.Config]("CRM_WEBHOOK")
	if crmCfg.Enabled() {
		leads = crmhook.MustNew(*crmCfg)
		log.Info().Msg("crm lead handoff enabled")
	}

	serverCfg := configx.MustNew[serverx.Config]("HTTP")
	srv := serverx.New(agent, leads, *serverCfg)

	log.Info().Str("addr", serverCfg.Addr).Msg("semsar listening")
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}

// loadCatalog prefers Postgres when a DSN is configured, else the CSV
// snapshot. Either source degrades to an empty catalog on failure.
func loadCatalog(ctx context.Context, csvPath string) *catalog.Catalog {
	pgCfg := configx.MustNew[catalog.PostgresConfig]("CATALOG_PG")
	if strings.TrimSpace(pgCfg.DSN) != "" {
		source, err := catalog.NewPostgresSource(*pgCfg)
		if err != nil {
			log.Warn().Err(err).Msg("postgres catalog unavailable, falling back to csv")
			return catalog.LoadCSV(csvPath)
		}
		defer source.Close()
		return source.Load(ctx)
	}
	return catalog.LoadCSV(csvPath)
}

// buildDecider returns the model-backed phase decider when OpenRouter is
// configured, otherwise the deterministic funnel policy.
func buildDecider(ctx context.Context) contractx.PhaseDecider {
	policy := funnel.NewPolicy()

	orCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")
	if !orCfg.Enabled() {
		return policy
	}

	chatModel, err := orCfg.NewChatModel(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("openrouter model unavailable, using funnel policy")
		return policy
	}

	decider, err := llmx.NewDecider(chatModel, promptx.LoadPromptSet().PhaseDecider, policy)
	if err != nil {
		log.Warn().Err(err).Msg("model decider unavailable, using funnel policy")
		return policy
	}
	log.Info().Str("model", orCfg.Model).Msg("model-backed phase decider enabled")
	return decider
}

func buildSessionStore(kind string) statex.Store {
	if strings.EqualFold(strings.TrimSpace(kind), "redis") {
		redisCfg := configx.MustNew[statex.UpstashRedisConfig]("SESSION_REDIS")
		store, err := statex.NewUpstashRedisStore(*redisCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build redis session store")
		}
		return store
	}
	return statex.NewMemoryStore()
}
