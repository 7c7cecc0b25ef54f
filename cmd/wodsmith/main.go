package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rahul/wodsmith/internal/gateway"
	"github.com/rahul/wodsmith/internal/llm"
	"github.com/rahul/wodsmith/internal/observability"
	"github.com/rahul/wodsmith/internal/pipeline"
	"github.com/rahul/wodsmith/internal/store"
	"github.com/rahul/wodsmith/pkg/config"
	"github.com/tmc/langchaingo/llms/openai"
)

// planService runs the pipeline for gateway requests, persisting each plan
// and rendering it for chat.
type planService struct {
	pipe    *pipeline.Pipeline
	plans   *store.PlanStore
	pctx    pipeline.Context
	logger  *observability.Logger
	request string
}

func (s *planService) PlanText(ctx context.Context, request string) (string, error) {
	result := s.pipe.Run(ctx, request, s.pctx)
	savePlan(s.plans, s.logger, request, s.pctx, result)
	return pipeline.FormatPlan(result.Plan), nil
}

func savePlan(plans *store.PlanStore, logger *observability.Logger, request string, pctx pipeline.Context, result *pipeline.Result) {
	if plans == nil {
		return
	}
	if err := plans.SavePlan(request, pctx.Injury, pctx.Goals, result.Plan); err != nil {
		log.Printf("Warning: failed to save plan: %v", err)
		return
	}
	logger.LogPlanSaved(request)
}

func main() {
	cfg := config.LoadConfig("config.json")
	logger := observability.NewLogger()

	// Initialize LLM (using default enabled provider)
	pName, pCfg := cfg.GetDefaultProvider()
	if pName == "" {
		log.Fatal("No enabled provider found in config")
	}
	if pCfg.APIKey == "" {
		log.Fatalf("API key for provider %s is not set", pName)
	}

	var model *openai.LLM
	var err error
	switch pName {
	case "openai", "openrouter":
		opts := []openai.Option{
			openai.WithToken(pCfg.APIKey),
			openai.WithModel(pCfg.Model),
		}
		if pCfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(pCfg.BaseURL))
		}
		model, err = openai.New(opts...)
	default:
		log.Fatalf("Provider %s not yet implemented in main", pName)
	}
	if err != nil {
		log.Fatal(err)
	}

	contracts := pipeline.DefaultContracts()
	if cfg.App.PromptsPath != "" {
		contracts, err = pipeline.LoadTaskOverrides(cfg.App.PromptsPath, contracts)
		if err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	pipe := pipeline.New(llm.NewLangchainClient(model), logger, contracts, cfg.App.Debug)

	var plans *store.PlanStore
	if cfg.Memory.Path != "" {
		plans, err = store.NewPlanStore(cfg.Memory.Path)
		if err != nil {
			log.Fatal(err)
		}
		defer plans.Close()
	}

	pctx := pipeline.Context{
		Injury: cfg.Request.Injury,
		Goals:  cfg.Request.Goals,
	}

	// Gateway mode: serve requests over Telegram until interrupted.
	if tgCfg, ok := cfg.GetTelegramConfig(); ok {
		svc := &planService{pipe: pipe, plans: plans, pctx: pctx, logger: logger}
		tg, err := gateway.NewTelegramGateway(tgCfg.Token, svc)
		if err != nil {
			log.Fatal(err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			if err := tg.Start(); err != nil {
				log.Printf("Gateway error: %v", err)
				stop()
			}
		}()

		<-ctx.Done()
		tg.Stop()
		return
	}

	// One-shot mode: request from the command line, falling back to config.
	request := strings.TrimSpace(strings.Join(os.Args[1:], " "))
	if request == "" {
		request = cfg.Request.Text
	}
	if request == "" {
		log.Fatal("No request given: pass one as arguments or set request.text in config")
	}

	result := pipe.Run(context.Background(), request, pctx)
	savePlan(plans, logger, request, pctx, result)

	out, err := json.MarshalIndent(result.Plan, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
