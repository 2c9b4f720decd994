package summary_test

import (
	"math"
	"testing"

	"github.com/okian/rematricula/internal/domain/model"
	"github.com/okian/rematricula/internal/domain/summary"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAggregate(t *testing.T) {
	Convey("Given empty tables", t, func() {
		scores := model.NewTable("scores", []string{"asesor", "puntaje_promedio"}, nil)
		sentiment := model.NewTable("sentiment", []string{"confidence", "polarity", "subjectivity"}, nil)

		Convey("Then every mean is zero", func() {
			s := summary.Aggregate(scores, sentiment, nil)
			So(s.AverageScore, ShouldEqual, 0)
			So(s.AverageConfidence, ShouldEqual, 0)
			So(s.AveragePolarity, ShouldEqual, 0)
			So(s.AverageSubjectivity, ShouldEqual, 0)
		})
	})

	Convey("Given nil tables", t, func() {
		Convey("Then aggregation does not panic and yields zeros", func() {
			s := summary.Aggregate(nil, nil, nil)
			So(s, ShouldResemble, summary.Summary{})
		})
	})

	Convey("Given populated tables", t, func() {
		scores := model.NewTable("scores", []string{"asesor", "puntaje_promedio"}, [][]string{
			{"Ana", "0.8"},
			{"Luis", "0.6"},
		})
		sentiment := model.NewTable("sentiment", []string{"confidence", "polarity", "subjectivity"}, [][]string{
			{"0.9", "0.2", "0.4"},
			{"0.7", "-0.1", "0.6"},
		})

		Convey("Then means are computed per column", func() {
			s := summary.Aggregate(scores, sentiment, nil)
			So(s.AverageScore, ShouldAlmostEqual, 0.7)
			So(s.AverageConfidence, ShouldAlmostEqual, 0.8)
			So(s.AveragePolarity, ShouldAlmostEqual, 0.05)
			So(s.AverageSubjectivity, ShouldAlmostEqual, 0.5)
			So(s.ConfidenceColumn, ShouldEqual, "confidence")
		})
	})

	Convey("Given a sentiment table with only the alternate confidence name", t, func() {
		sentiment := model.NewTable("sentiment", []string{"confianza", "polarity", "subjectivity"}, [][]string{
			{"0.5", "0", "0"},
			{"0.7", "0", "0"},
		})

		Convey("Then the alternate column is used", func() {
			s := summary.Aggregate(nil, sentiment, nil)
			So(s.AverageConfidence, ShouldAlmostEqual, 0.6)
			So(s.ConfidenceColumn, ShouldEqual, "confianza")
		})
	})

	Convey("Given a sentiment table with no confidence column at all", t, func() {
		sentiment := model.NewTable("sentiment", []string{"polarity"}, [][]string{{"0.3"}})

		Convey("Then confidence and subjectivity default to zero", func() {
			s := summary.Aggregate(nil, sentiment, nil)
			So(s.AverageConfidence, ShouldEqual, 0)
			So(s.ConfidenceColumn, ShouldBeEmpty)
			So(s.AverageSubjectivity, ShouldEqual, 0)
			So(s.AveragePolarity, ShouldAlmostEqual, 0.3)
		})
	})
}

func TestMean(t *testing.T) {
	Convey("Given a column with blanks and text", t, func() {
		tbl := model.NewTable("t", []string{"x"}, [][]string{{"1"}, {""}, {"abc"}, {"3"}, {"NaN"}})

		Convey("Then only numeric cells are averaged", func() {
			So(summary.Mean(tbl, "x"), ShouldEqual, 2)
		})

		Convey("And an absent column yields zero", func() {
			So(summary.Mean(tbl, "y"), ShouldEqual, 0)
		})
	})

	Convey("Given a column with no numeric cell", t, func() {
		tbl := model.NewTable("t", []string{"x"}, [][]string{{"-"}, {""}})
		So(summary.Mean(tbl, "x"), ShouldEqual, 0)
	})

	Convey("Given a header with no rows", t, func() {
		tbl := model.NewTable("t", []string{"x"}, nil)
		So(math.IsNaN(summary.Mean(tbl, "x")), ShouldBeFalse)
		So(summary.Mean(tbl, "x"), ShouldEqual, 0)
	})

	Convey("Given fractional scores", t, func() {
		tbl := model.NewTable("t", []string{"x"}, [][]string{{"0.25"}, {"0.5"}, {"0.75"}, {"1"}})
		So(summary.Mean(tbl, "x"), ShouldAlmostEqual, 0.625, 1e-9)
	})
}

func TestResolveColumn(t *testing.T) {
	Convey("Given candidates in priority order", t, func() {
		tbl := model.NewTable("t", []string{"confianza", "confidence"}, nil)

		Convey("Then the first present candidate wins", func() {
			col, ok := summary.ResolveColumn(tbl, "confidence", "confianza")
			So(ok, ShouldBeTrue)
			So(col, ShouldEqual, "confidence")
		})

		Convey("And no match reports false", func() {
			_, ok := summary.ResolveColumn(tbl, "score")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestCards(t *testing.T) {
	Convey("Given a summary", t, func() {
		s := summary.Summary{AverageScore: 0.8523, AverageConfidence: 0.9, AveragePolarity: 0.126, AverageSubjectivity: 0.5}

		Convey("Then cards are formatted as percent or fixed-point", func() {
			cards := s.Cards()
			So(cards, ShouldHaveLength, 4)
			So(cards[0].Text, ShouldEqual, "85.23%")
			So(cards[1].Text, ShouldEqual, "90.00%")
			So(cards[2].Text, ShouldEqual, "0.13")
			So(cards[3].Text, ShouldEqual, "0.50")
		})
	})
}
