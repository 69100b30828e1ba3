// Command bank runs the console banking flow: it registers a customer,
// opens one product, deposits, accrues one month of interest and prints
// the resulting balance.
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/mibanco/fintech/infra/initializer"
	"github.com/mibanco/fintech/pkg/config"
	"github.com/mibanco/fintech/pkg/domain/events"
	"github.com/mibanco/fintech/pkg/domain/product"
	"github.com/mibanco/fintech/pkg/eventbus"
	"github.com/mibanco/fintech/pkg/repository/memory"
	productsvc "github.com/mibanco/fintech/pkg/service/product"
	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, interactive()))
}

// interactive reports whether prompts should be shown. BANK_PROMPTS
// overrides the terminal check.
func interactive() bool {
	return config.GetEnvAsBool("BANK_PROMPTS", term.IsTerminal(int(os.Stdin.Fd())))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, prompts bool) int {
	fs := flag.NewFlagSet("bank", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kindFlag := fs.String("product", "",
		"product to open: savings, checking, certificate_of_deposit or credit_card (default PRODUCT_DEFAULT_KIND)")
	envFile := fs.String("env", "", "environment file to load (default $ENV_FILE, then .env)")
	verbose := fs.Bool("verbose", false, "log service activity to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Config loading logs through the default logger; keep it off stdout.
	slog.SetDefault(initializer.NewLogger(&config.Log{Level: int(log.WarnLevel), Format: "text"}, stderr))

	var cfg *config.App
	var err error
	if *envFile != "" {
		cfg, err = config.Load(*envFile)
	} else {
		cfg, err = config.LoadEnvFile(".env")
	}
	if err != nil {
		return fail(stderr, err)
	}
	logCfg := *cfg.Log
	if !*verbose && logCfg.Level < int(log.WarnLevel) {
		logCfg.Level = int(log.WarnLevel)
	}
	logger := initializer.NewLogger(&logCfg, stderr)

	rawKind := *kindFlag
	if rawKind == "" {
		rawKind = cfg.Products.DefaultKind
	}
	kind, err := product.ParseKind(rawKind)
	if err != nil {
		return fail(stderr, err)
	}

	bus := eventbus.NewSimpleEventBus()
	bus.Subscribe(eventbus.All, printEvents(stdout))
	svc := productsvc.NewService(config.Deps{
		Registry: memory.NewRegistry(),
		EventBus: bus,
		Logger:   logger,
		Config:   cfg,
	})

	err = withSession(stdin, stdout, prompts, func(s *session) error {
		return runFlow(context.Background(), svc, s, kind, cfg.Products, stdout)
	})
	if err != nil {
		return fail(stderr, err)
	}
	return 0
}

func fail(stderr io.Writer, err error) int {
	_, _ = color.New(color.FgRed).Fprintf(stderr, "Error: %v\n", err)
	return 1
}

// printEvents echoes the record of every published event.
func printEvents(w io.Writer) eventbus.HandlerFunc {
	c := color.New(color.FgHiBlack)
	return func(_ context.Context, e events.Event) {
		_, _ = c.Fprintf(w, "  > %s\n", e.String())
	}
}
