package pivot_test

import (
	"errors"
	"testing"

	"github.com/okian/rematricula/internal/domain/model"
	"github.com/okian/rematricula/internal/domain/pivot"
	"github.com/smartystreets/goconvey/convey"
)

var header = []string{"asesor", "categoria", "promedio_conteo"}

func TestBuild(t *testing.T) {
	convey.Convey("Given a well-formed long table with a missing combination", t, func() {
		tbl := model.NewTable("detalle", header, [][]string{
			{"Luis", "saludo", "1"},
			{"Ana", "saludo", "0"},
			{"Ana", "cierre", "1.5"},
			{"Marta", "cierre", "2.5"},
		})

		m, err := pivot.Build(tbl)

		convey.Convey("Then it returns an N x M matrix", func() {
			convey.So(err, convey.ShouldBeNil)
			rows, cols := m.Dims()
			convey.So(rows, convey.ShouldEqual, 3)
			convey.So(cols, convey.ShouldEqual, 2)
			convey.So(m.Cells, convey.ShouldHaveLength, 3)
			for _, row := range m.Cells {
				convey.So(row, convey.ShouldHaveLength, 2)
			}
		})

		convey.Convey("And advisors and categories are sorted", func() {
			convey.So(m.Advisors, convey.ShouldResemble, []string{"Ana", "Luis", "Marta"})
			convey.So(m.Categories, convey.ShouldResemble, []string{"cierre", "saludo"})
		})

		convey.Convey("And an explicit zero is distinguishable from an omitted cell", func() {
			v, ok := m.Value("Ana", "saludo")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(v, convey.ShouldEqual, 0)

			_, ok = m.Value("Luis", "cierre")
			convey.So(ok, convey.ShouldBeFalse)
			convey.So(m.Cells[1][0], convey.ShouldBeNil)
		})

		convey.Convey("And values above the display range are kept as-is", func() {
			v, ok := m.Value("Marta", "cierre")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(v, convey.ShouldEqual, 2.5)
		})

		convey.Convey("And unknown keys report absent", func() {
			_, ok := m.Value("Zoe", "cierre")
			convey.So(ok, convey.ShouldBeFalse)
			_, ok = m.Value("Ana", "objecion")
			convey.So(ok, convey.ShouldBeFalse)
		})
	})

	convey.Convey("Given the same input twice", t, func() {
		rows := [][]string{{"b", "y", "1"}, {"a", "x", "2"}, {"b", "x", "3"}}
		m1, _ := pivot.Build(model.NewTable("d", header, rows))
		m2, _ := pivot.Build(model.NewTable("d", header, rows))

		convey.Convey("Then the output is identical", func() {
			convey.So(m1, convey.ShouldResemble, m2)
		})
	})

	convey.Convey("Given a duplicate advisor/category pair", t, func() {
		tbl := model.NewTable("detalle", header, [][]string{
			{"Ana", "saludo", "1"},
			{"Ana", "saludo", "2"},
		})

		m, err := pivot.Build(tbl)

		convey.Convey("Then no pivot is produced and the error names the pair", func() {
			convey.So(m, convey.ShouldBeNil)
			convey.So(errors.Is(err, pivot.ErrDuplicateKey), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, `"Ana"`)
		})
	})

	convey.Convey("Given a table missing a required column", t, func() {
		tbl := model.NewTable("detalle", []string{"asesor", "categoria"}, [][]string{{"Ana", "saludo"}})

		m, err := pivot.Build(tbl)

		convey.Convey("Then it reports missing columns", func() {
			convey.So(m, convey.ShouldBeNil)
			convey.So(errors.Is(err, pivot.ErrMissingColumns), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "promedio_conteo")
		})
	})

	convey.Convey("Given a non-numeric count", t, func() {
		tbl := model.NewTable("detalle", header, [][]string{{"Ana", "saludo", "n/a"}})

		m, err := pivot.Build(tbl)

		convey.Convey("Then the cell is empty rather than zero", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(m.Cells[0][0], convey.ShouldBeNil)
		})
	})
}

func TestHeatmap(t *testing.T) {
	convey.Convey("Given a matrix with three categories", t, func() {
		m, err := pivot.Build(model.NewTable("d", header, [][]string{
			{"Ana", "a", "3"}, {"Ana", "b", "1"}, {"Ana", "c", "-1"},
		}))
		convey.So(err, convey.ShouldBeNil)
		h := pivot.NewHeatmap(m, pivot.DefaultZMin, pivot.DefaultZMax)

		convey.Convey("Then separators sit between categories", func() {
			convey.So(h.Separators, convey.ShouldResemble, []float64{0.5, 1.5})
		})

		convey.Convey("And color values are clamped to the display range", func() {
			convey.So(h.Clamp(3), convey.ShouldEqual, 2)
			convey.So(h.Clamp(-1), convey.ShouldEqual, 0)
			convey.So(h.Intensity(1), convey.ShouldEqual, 0.5)
		})

		convey.Convey("And the matrix keeps the raw values", func() {
			v, _ := m.Value("Ana", "a")
			convey.So(v, convey.ShouldEqual, 3)
		})
	})

	convey.Convey("Given an inverted range", t, func() {
		m := &pivot.Matrix{}
		h := pivot.NewHeatmap(m, 5, 1)

		convey.Convey("Then defaults are used", func() {
			convey.So(h.ZMin, convey.ShouldEqual, 0)
			convey.So(h.ZMax, convey.ShouldEqual, 2)
			convey.So(h.Separators, convey.ShouldBeEmpty)
		})
	})
}
