package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Tramle26/ai-economic-consultant/internal/app"
	"github.com/Tramle26/ai-economic-consultant/internal/config"
	"github.com/Tramle26/ai-economic-consultant/internal/service"
	"github.com/Tramle26/ai-economic-consultant/internal/trace"
)

func main() {

	godotenv.Load()

	symbol := flag.String("symbol", "", "ticker to include series and news for")
	raw := flag.Bool("raw", false, "print the formatted context without the prompt framing")
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	if err := trace.Init(cfg.Tracing.Enabled); err != nil {
		log.Fatalf("error initializing tracing: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	chat := service.NewChatService(app.NewMarketData(cfg), nil)
	bundle := chat.BuildContext(ctx, strings.ToUpper(strings.TrimSpace(*symbol)))

	if *raw {
		fmt.Println(bundle.FormattedContext)
	} else {
		fmt.Println(bundle.PromptAddition)
	}

	slog.Info("fetch complete",
		"symbol", bundle.Raw.Symbol,
		"news", len(bundle.Raw.News),
		"symbol_news", len(bundle.Raw.SymbolNews),
		"series_days", len(bundle.Raw.TimeSeries),
	)

	trace.Shutdown(context.Background())
}
