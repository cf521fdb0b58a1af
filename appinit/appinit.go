// Package appinit wires the application components together. Each
// component is created by an option function that checks its
// dependencies were set by an earlier option.
package appinit

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jDTAUS/jdtaus-skin-tools/inject"
	"github.com/jDTAUS/jdtaus-skin-tools/sitemon"
	"github.com/jDTAUS/jdtaus-skin-tools/sitescan"
	"github.com/jDTAUS/jdtaus-skin-tools/store"
	"github.com/jDTAUS/jdtaus-skin-tools/tasks"
	"github.com/jDTAUS/jdtaus-skin-tools/web"
)

type Config struct {
	SiteDir        string
	DescriptorPath string
	CacheDir       string
	HTTPAddr       string
	CheckInterval  int

	Store            sitemon.CacheStore
	Scanner          *sitescan.Scanner
	Injector         *inject.Injector
	SiteModel        *web.SiteModel
	RefreshModelTask *web.RefreshModelTask
	RefreshTask      *tasks.RefreshTask
	Monitor          *sitemon.Monitor
	Server           *web.Server
}

var ErrBadConfiguration = errors.New("bad configuration")

func Init(opts ...func(config *Config) error) (*Config, error) {
	var config Config

	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return &config, err
		}
	}

	return &config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

func SetDefaultParams() func(*Config) error {
	return func(config *Config) error {
		config.SiteDir = "./site"
		config.DescriptorPath = "./site.xml"
		config.CacheDir = "./cache"
		config.HTTPAddr = ":8080"

		return nil
	}
}

func ParseEnvParams() func(*Config) error {
	return func(config *Config) error {
		config.SiteDir = getEnvOrDefault("SITE_DIR", config.SiteDir)
		config.DescriptorPath = getEnvOrDefault("DESCRIPTOR", config.DescriptorPath)
		config.CacheDir = getEnvOrDefault("CACHE_DIR", config.CacheDir)
		config.HTTPAddr = getEnvOrDefault("HTTP_ADDR", config.HTTPAddr)

		return nil
	}
}

func ParseFlagParams(
	flagSiteDir *string,
	flagDescriptor *string,
	flagCacheDir *string,
	flagHTTPAddr *string,
	flagCheckInterval *int,
) func(*Config) error {
	return func(config *Config) error {
		if len(*flagSiteDir) > 0 {
			config.SiteDir = *flagSiteDir
		}
		if len(*flagDescriptor) > 0 {
			config.DescriptorPath = *flagDescriptor
		}
		if len(*flagCacheDir) > 0 {
			config.CacheDir = *flagCacheDir
		}
		if len(*flagHTTPAddr) > 0 {
			config.HTTPAddr = *flagHTTPAddr
		}
		if *flagCheckInterval > 0 {
			config.CheckInterval = *flagCheckInterval
		}

		return nil
	}
}

func ShowParams(withPrint bool) func(*Config) error {
	return func(config *Config) error {
		if withPrint {
			log.Printf("SITE_DIR: %s", config.SiteDir)
			log.Printf("DESCRIPTOR: %s", config.DescriptorPath)
			log.Printf("CACHE_DIR: %s", config.CacheDir)
			log.Printf("HTTP_ADDR: %s", config.HTTPAddr)
			log.Printf("CHECK_INTERVAL: %d", config.CheckInterval)
		}

		return nil
	}
}

func NewStore() func(*Config) error {
	return func(config *Config) error {
		cacheDir := config.CacheDir
		if len(cacheDir) == 0 {
			config.Store = store.NewMemStore()

			return nil
		}

		config.Store = store.NewFileStore(cacheDir)

		return nil
	}
}

func NewScanner() func(*Config) error {
	return func(config *Config) error {
		siteDir := config.SiteDir
		if len(siteDir) == 0 {
			return fmt.Errorf("param SiteDir is not set: %w", ErrBadConfiguration)
		}

		config.Scanner = &sitescan.Scanner{SiteDir: siteDir}

		return nil
	}
}

func NewInjector() func(*Config) error {
	return func(config *Config) error {
		siteDir := config.SiteDir
		if len(siteDir) == 0 {
			return fmt.Errorf("param SiteDir is not set: %w", ErrBadConfiguration)
		}

		descriptorPath := config.DescriptorPath
		if len(descriptorPath) == 0 {
			return fmt.Errorf("param DescriptorPath is not set: %w", ErrBadConfiguration)
		}

		cacheStore := config.Store
		if cacheStore == nil {
			return fmt.Errorf("param Store is not set: %w", ErrBadConfiguration)
		}

		config.Injector = inject.New(siteDir, descriptorPath, cacheStore)

		return nil
	}
}

func NewSiteModel() func(*Config) error {
	return func(config *Config) error {
		config.SiteModel = web.NewSiteModel()

		return nil
	}
}

func NewRefreshModelTask() func(*Config) error {
	return func(config *Config) error {
		injector := config.Injector
		if injector == nil {
			return fmt.Errorf("param Injector is not set: %w", ErrBadConfiguration)
		}

		scanner := config.Scanner
		if scanner == nil {
			return fmt.Errorf("param Scanner is not set: %w", ErrBadConfiguration)
		}

		siteModel := config.SiteModel
		if siteModel == nil {
			return fmt.Errorf("param SiteModel is not set: %w", ErrBadConfiguration)
		}

		config.RefreshModelTask = web.NewRefreshModelTask(injector, scanner, siteModel)

		return nil
	}
}

func NewRefreshTask() func(*Config) error {
	return func(config *Config) error {
		injector := config.Injector
		if injector == nil {
			return fmt.Errorf("param Injector is not set: %w", ErrBadConfiguration)
		}

		refreshModelTask := config.RefreshModelTask
		if refreshModelTask == nil {
			return fmt.Errorf("param RefreshModelTask is not set: %w", ErrBadConfiguration)
		}

		config.RefreshTask = tasks.NewRefreshTask(injector, refreshModelTask)

		return nil
	}
}

func NewMonitor() func(*Config) error {
	return func(config *Config) error {
		descriptorPath := config.DescriptorPath
		if len(descriptorPath) == 0 {
			return fmt.Errorf("param DescriptorPath is not set: %w", ErrBadConfiguration)
		}

		siteDir := config.SiteDir
		if len(siteDir) == 0 {
			return fmt.Errorf("param SiteDir is not set: %w", ErrBadConfiguration)
		}

		cacheStore := config.Store
		if cacheStore == nil {
			return fmt.Errorf("param Store is not set: %w", ErrBadConfiguration)
		}

		config.Monitor = sitemon.NewMonitor(
			descriptorPath,
			siteDir,
			sitemon.NewCacheStorage(cacheStore),
		)

		return nil
	}
}

func NewServer() func(*Config) error {
	return func(config *Config) error {
		httpAddr := config.HTTPAddr
		if len(httpAddr) == 0 {
			return fmt.Errorf("param HTTPAddr is not set: %w", ErrBadConfiguration)
		}

		siteDir := config.SiteDir
		if len(siteDir) == 0 {
			return fmt.Errorf("param SiteDir is not set: %w", ErrBadConfiguration)
		}

		siteModel := config.SiteModel
		if siteModel == nil {
			return fmt.Errorf("param SiteModel is not set: %w", ErrBadConfiguration)
		}

		injector := config.Injector
		if injector == nil {
			return fmt.Errorf("param Injector is not set: %w", ErrBadConfiguration)
		}

		config.Server = web.NewServer(httpAddr, siteDir, siteModel, injector)

		return nil
	}
}
