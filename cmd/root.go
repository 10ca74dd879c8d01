package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lukman83/jumia-reseller/config"
	"github.com/lukman83/jumia-reseller/internal/fetch"
	"github.com/lukman83/jumia-reseller/internal/httputil"
	"github.com/lukman83/jumia-reseller/internal/jumia"
	"github.com/lukman83/jumia-reseller/internal/logging"
	"github.com/lukman83/jumia-reseller/internal/platform"
	"github.com/lukman83/jumia-reseller/internal/pricing"
	"github.com/lukman83/jumia-reseller/internal/stealth"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	cfg       *config.Config
	flushLogs = func() {}
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "jumia",
	Short: "Jumia reseller - catalog scraper, REST API and MCP server",
	Long:  "Extracts the jumia.com.ng catalog into a normalized product model and serves it with a reseller margin applied.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
	SilenceUsage: true,
}

// Execute runs the root command. Interrupt and SIGTERM cancel the command
// context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	flushLogs()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("platform", "jumia", "Target storefront platform")
	flags.String("base-url", "", "Storefront origin (default https://www.jumia.com.ng)")
	flags.String("categories-file", "", "Category tree file (default data/categories.json)")
	flags.Float64("margin", 0, "Profit margin percentage (default from $PROFIT_MARGIN_PERCENTAGE or 15)")
	flags.String("fetch-mode", "", "Page fetcher: static, headless")
	flags.String("browser-url", "", "DevTools URL of a running browser for headless mode")
	flags.String("delay-profile", "", "Delay profile: off, aggressive, normal, cautious")
	flags.Bool("respect-robots", false, "Respect robots.txt rules")
	flags.String("proxy-file", "", "Path to proxy list file")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: console, json")
	flags.String("log-file", "", "Also write JSON logs to this file, rotated by size")
}

// initConfig builds cfg from defaults, then the environment, then any flag
// set explicitly on the command line.
func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	flags := rootCmd.PersistentFlags()
	setString(flags, "platform", &cfg.Platform)
	setString(flags, "base-url", &cfg.Origin)
	setString(flags, "categories-file", &cfg.CategoriesPath)
	setString(flags, "fetch-mode", &cfg.FetchMode)
	setString(flags, "browser-url", &cfg.BrowserURL)
	setString(flags, "delay-profile", &cfg.DelayProfile)
	setString(flags, "proxy-file", &cfg.ProxyFile)
	setString(flags, "log-level", &cfg.LogLevel)
	setString(flags, "log-format", &cfg.LogFormat)
	setString(flags, "log-file", &cfg.LogFile)
	if flags.Changed("respect-robots") {
		cfg.RespectRobots, _ = flags.GetBool("respect-robots")
	}
	if flags.Changed("margin") {
		if v, _ := flags.GetFloat64("margin"); v != 0 {
			cfg.ProfitMarginPercent = v
		}
	}

	flush, err := logging.Init(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		configErr = err
		return
	}
	flushLogs = flush
}

func setString(flags *pflag.FlagSet, name string, dst *string) {
	if flags.Changed(name) {
		*dst, _ = flags.GetString(name)
	}
}

func margin() pricing.Margin {
	return pricing.Margin{Percent: cfg.ProfitMarginPercent}
}

// buildHTTPClient creates the politeness-wrapped HTTP client from config.
func buildHTTPClient() (*http.Client, error) {
	transport := &stealth.Transport{
		Base:        httputil.NewTransport(),
		Delay:       stealth.NewHumanDelay(stealth.DelayProfile(cfg.DelayProfile)),
		RateLimiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
	}

	if cfg.RespectRobots {
		transport.Robots = stealth.NewRobotsChecker(&http.Client{Transport: httputil.NewTransport()})
	}

	if cfg.ProxyFile != "" {
		urls, err := stealth.LoadProxyFile(cfg.ProxyFile)
		if err != nil {
			return nil, err
		}
		rotator, err := stealth.NewProxyRotator(urls)
		if err != nil {
			return nil, err
		}
		transport.Proxy = rotator
	}

	return &http.Client{Transport: transport}, nil
}

// buildFetcher picks the page fetcher for cfg.FetchMode.
func buildFetcher() (fetch.Fetcher, error) {
	switch cfg.FetchMode {
	case config.FetchHeadless:
		return fetch.NewHeadlessFetcher(cfg.BrowserURL), nil
	case config.FetchStatic, "":
		client, err := buildHTTPClient()
		if err != nil {
			return nil, err
		}
		return fetch.NewStaticFetcher(client), nil
	default:
		return nil, fmt.Errorf("unknown fetch mode %q (want %s or %s)", cfg.FetchMode, config.FetchStatic, config.FetchHeadless)
	}
}

// initPlatforms registers all available storefront scrapers.
func initPlatforms() error {
	fetcher, err := buildFetcher()
	if err != nil {
		return err
	}
	platform.Register("jumia", jumia.NewScraper(fetcher, jumia.Options{
		Origin:         cfg.Origin,
		CategoriesPath: cfg.CategoriesPath,
	}))

	zap.L().Debug("platforms ready",
		zap.Strings("platforms", platform.Names()),
		zap.String("fetch_mode", cfg.FetchMode),
		zap.String("origin", cfg.Origin),
		zap.Float64("margin_percent", cfg.ProfitMarginPercent),
	)
	return nil
}

// currentScraper registers the platforms and returns the configured one.
func currentScraper() (platform.Scraper, error) {
	if err := initPlatforms(); err != nil {
		return nil, err
	}
	return platform.Get(cfg.Platform)
}
