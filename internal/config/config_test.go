package config_test

import (
	"errors"
	"testing"

	"github.com/okian/rematricula/internal/config"
	"github.com/okian/rematricula/internal/domain/scorecard"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8501")
			convey.So(cfg.LogFormat, convey.ShouldEqual, config.LogFormatText)
			convey.So(cfg.DataDir, convey.ShouldEqual, "data")
			convey.So(cfg.ScoresFile, convey.ShouldEqual, "puntaje_promedio_por_asesor_rematricula.csv")
			convey.So(cfg.HeatmapZMin, convey.ShouldEqual, 0.0)
			convey.So(cfg.HeatmapZMax, convey.ShouldEqual, 2.0)
			convey.So(cfg.ConfidenceColumns, convey.ShouldResemble, []string{"confidence", "confianza"})
			convey.So(cfg.Requirements, convey.ShouldResemble, scorecard.DefaultRequirements())
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then Files mirrors the file fields", func() {
			f := cfg.Files()
			convey.So(f.Detail, convey.ShouldEqual, cfg.DetailFile)
			convey.So(f.Results, convey.ShouldEqual, cfg.ResultsFile)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given invalid configurations", t, func() {
		cases := []struct {
			name   string
			mutate func(*config.Config)
		}{
			{"empty addr", func(c *config.Config) { c.Addr = " " }},
			{"empty data dir", func(c *config.Config) { c.DataDir = "" }},
			{"bad log format", func(c *config.Config) { c.LogFormat = "xml" }},
			{"empty file", func(c *config.Config) { c.PolarityFile = "" }},
			{"inverted range", func(c *config.Config) { c.HeatmapZMin, c.HeatmapZMax = 2, 1 }},
			{"no confidence", func(c *config.Config) { c.ConfidenceColumns = nil }},
			{"no requirements", func(c *config.Config) { c.Requirements = nil }},
			{"negative minimum", func(c *config.Config) { c.Requirements[0].Min = -1 }},
			{"duplicate requirement", func(c *config.Config) { c.Requirements[1].Name = c.Requirements[0].Name }},
		}
		for _, tc := range cases {
			cfg := config.New()
			tc.mutate(cfg)
			err := cfg.Validate()

			convey.Convey("Then "+tc.name+" is rejected", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})
}
