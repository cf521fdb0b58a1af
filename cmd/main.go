package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jDTAUS/jdtaus-skin-tools/appinit"
	"github.com/jDTAUS/jdtaus-skin-tools/decoration"
	"github.com/jDTAUS/jdtaus-skin-tools/inject"
	"github.com/jDTAUS/jdtaus-skin-tools/langnav"
	"github.com/jDTAUS/jdtaus-skin-tools/sitemon"
	"github.com/jDTAUS/jdtaus-skin-tools/tasks"
)

var (
	flagSiteDir    = flag.String("site-dir", "", "generated site directory path")
	flagDescriptor = flag.String("descriptor", "", "site descriptor file path")
	flagCacheDir   = flag.String("cache-dir", "", "cache directory path")
	flagHTTPAddr   = flag.String("addr", "", "http listen address of the preview server")

	flagRender = flag.Bool("render", false, "print the language navigation fragment for one page")
	flagLang   = flag.String("lang", "", "language of the page to render the fragment for")
	flagPage   = flag.String("page", "index.html", "file name of the page to render the fragment for")
	flagRel    = flag.String("rel", ".", "relative path from the page to its language root")

	flagInject = flag.Bool("inject", false, "inject the language navigation into the site pages once")

	flagServe         = flag.Bool("serve", false, "start the preview web server")
	flagCheckInterval = flag.Int("check-interval", 0,
		"re-run injection when the descriptor or the site changes, checking every N minutes")
)

func runRender(descriptorPath, lang, page, rel string) error {
	doc, err := decoration.Load(descriptorPath)
	if err != nil {
		return fmt.Errorf("error while loading site descriptor: %w", err)
	}

	config := langnav.ParseConfig(doc)
	if config == nil {
		log.Println("the site descriptor has no languages navigation configuration")
		return nil
	}

	if len(lang) == 0 {
		lang = config.DefaultLanguage
	}

	fragment, err := langnav.Render(config, lang, rel, page)
	if err != nil {
		return fmt.Errorf("error while rendering language navigation: %w", err)
	}

	fmt.Println(fragment)

	return nil
}

func runInject(ctx context.Context, injector *inject.Injector) error {
	count, err := injector.Run(ctx)
	if err != nil {
		return fmt.Errorf("error while injecting language navigation: %w", err)
	}

	log.Printf("language navigation updated in %d page(s)", count)

	return nil
}

func runInterval(
	ctx context.Context,
	monitor *sitemon.Monitor,
	refreshTask *tasks.RefreshTask,
	delay time.Duration,
) {
	if err := monitor.StartIntervalCheck(ctx, delay, refreshTask); err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			log.Fatal(err)
		}

		log.Println("context cancelled or deadline exceeded:", err)
	}
}

func Run(ctx context.Context, cfg *appinit.Config) error {
	ctx, _ = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)

	if err := cfg.RefreshTask.OnUpdate(ctx); err != nil {
		return err
	}

	if cfg.CheckInterval > 0 {
		go runInterval(
			ctx,
			cfg.Monitor,
			cfg.RefreshTask,
			time.Minute*time.Duration(cfg.CheckInterval),
		)
	}

	server := cfg.Server

	go func() {
		<-ctx.Done()
		log.Println("server is shutting down")
		ctx, cancelCtx := context.WithTimeout(context.Background(), time.Second*10)
		defer cancelCtx()
		_ = server.Shutdown(ctx)
	}()

	log.Println("starting web server on", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error while running http server: %w", err)
	}

	return nil
}

func main() {
	flag.Parse()

	cfg, err := appinit.Init(
		// read params
		appinit.SetDefaultParams(),
		appinit.ParseEnvParams(),
		appinit.ParseFlagParams(
			flagSiteDir,
			flagDescriptor,
			flagCacheDir,
			flagHTTPAddr,
			flagCheckInterval,
		),
		appinit.ShowParams(!*flagRender),

		// create components
		appinit.NewStore(),
		appinit.NewScanner(),
		appinit.NewInjector(),
		appinit.NewSiteModel(),
		appinit.NewRefreshModelTask(),
		appinit.NewRefreshTask(),
		appinit.NewMonitor(),
		appinit.NewServer(),
	)
	if err != nil {
		log.Fatal(fmt.Errorf("error while application configuration initialization: %w", err))
	}

	ctx := context.Background()

	switch {
	case *flagRender:
		if err := runRender(cfg.DescriptorPath, *flagLang, *flagPage, *flagRel); err != nil {
			log.Fatal(err)
		}
	case *flagInject:
		if err := runInject(ctx, cfg.Injector); err != nil {
			log.Fatal(err)
		}
	case *flagServe:
		if err := Run(ctx, cfg); err != nil {
			log.Fatal(err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}
