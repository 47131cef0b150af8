package config_test

import (
	"testing"
	"time"

	"github.com/courseloom/insight/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.CatalogBaseURL, convey.ShouldEqual, "https://www.googleapis.com/youtube/v3")
			convey.So(cfg.CatalogPageSize, convey.ShouldEqual, 50)
			convey.So(cfg.CatalogMaxItems, convey.ShouldEqual, 200)
			convey.So(cfg.CatalogTimeout, convey.ShouldEqual, 15*time.Second)
			convey.So(cfg.GeminiModel, convey.ShouldEqual, "gemini-1.5-flash")
			convey.So(cfg.ClassifyTitleLimit, convey.ShouldEqual, 100)
			convey.So(cfg.ConsistencyFloor, convey.ShouldEqual, 30)
		})
	})
}
