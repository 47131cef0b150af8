package config_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/courseloom/insight/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.CatalogPageSize, convey.ShouldEqual, 50)
				convey.So(cfg.CatalogMaxItems, convey.ShouldEqual, 200)
				convey.So(cfg.GeminiModel, convey.ShouldEqual, "gemini-1.5-flash")
				convey.So(cfg.GeminiAPIKey, convey.ShouldBeEmpty)
				convey.So(cfg.ClassifyTitleLimit, convey.ShouldEqual, 100)
				convey.So(cfg.ConsistencyFloor, convey.ShouldEqual, 30)
				convey.So(cfg.ShutdownTimeout, convey.ShouldEqual, 10*time.Second)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("INSIGHT_ADDR", ":8080")
			_ = os.Setenv("INSIGHT_CATALOG_API_KEY", "test-key")
			_ = os.Setenv("INSIGHT_CATALOG_PAGE_SIZE", "25")
			_ = os.Setenv("INSIGHT_CATALOG_MAX_ITEMS", "100")
			_ = os.Setenv("INSIGHT_GEMINI_MODEL", "gemini-1.5-pro")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.CatalogAPIKey, convey.ShouldEqual, "test-key")
				convey.So(cfg.CatalogPageSize, convey.ShouldEqual, 25)
				convey.So(cfg.CatalogMaxItems, convey.ShouldEqual, 100)
				convey.So(cfg.GeminiModel, convey.ShouldEqual, "gemini-1.5-pro")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
catalog_api_key: "file-key"
catalog_page_size: 40
catalog_max_items: 120
consistency_floor: 25
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("INSIGHT_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.CatalogAPIKey, convey.ShouldEqual, "file-key")
				convey.So(cfg.CatalogPageSize, convey.ShouldEqual, 40)
				convey.So(cfg.CatalogMaxItems, convey.ShouldEqual, 120)
				convey.So(cfg.ConsistencyFloor, convey.ShouldEqual, 25)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
catalog_api_key: "file-key"
catalog_page_size: 40
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("INSIGHT_CONFIG", tmpFile)
			_ = os.Setenv("INSIGHT_ADDR", ":8080")          // This should override the file
			_ = os.Setenv("INSIGHT_CATALOG_API_KEY", "env") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")        // Overridden by env
				convey.So(cfg.CatalogAPIKey, convey.ShouldEqual, "env") // Overridden by env
				convey.So(cfg.CatalogPageSize, convey.ShouldEqual, 40)  // From file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("INSIGHT_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("INSIGHT_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("INSIGHT_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, config.ErrEmptyAddr)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a non-positive page size", func() {
			_ = os.Setenv("INSIGHT_CATALOG_PAGE_SIZE", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldWrap, config.ErrInvalidPageSize)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a negative max items", func() {
			_ = os.Setenv("INSIGHT_CATALOG_MAX_ITEMS", "-5")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldWrap, config.ErrInvalidMaxItems)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with partial YAML file", func() {
			yamlContent := `
addr: ":9090"
gemini_api_key: "abc"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("INSIGHT_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should merge with defaults for missing fields", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")       // From file
				convey.So(cfg.GeminiAPIKey, convey.ShouldEqual, "abc") // From file
				convey.So(cfg.CatalogPageSize, convey.ShouldEqual, 50) // From defaults
				convey.So(cfg.CatalogMaxItems, convey.ShouldEqual, 200)
				convey.So(cfg.ConsistencyFloor, convey.ShouldEqual, 30)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("INSIGHT_CATALOG_PAGE_SIZE", "invalid")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with duration environment variables", func() {
			_ = os.Setenv("INSIGHT_CATALOG_TIMEOUT", "30s")
			_ = os.Setenv("INSIGHT_SHUTDOWN_TIMEOUT", "5s")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should parse durations", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.CatalogTimeout, convey.ShouldEqual, 30*time.Second)
				convey.So(cfg.ShutdownTimeout, convey.ShouldEqual, 5*time.Second)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"INSIGHT_CONFIG",
		"INSIGHT_ADDR",
		"INSIGHT_CATALOG_API_KEY",
		"INSIGHT_CATALOG_PAGE_SIZE",
		"INSIGHT_CATALOG_MAX_ITEMS",
		"INSIGHT_CATALOG_TIMEOUT",
		"INSIGHT_GEMINI_API_KEY",
		"INSIGHT_GEMINI_MODEL",
		"INSIGHT_SHUTDOWN_TIMEOUT",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "insight-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
