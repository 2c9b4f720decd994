package model

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTable(t *testing.T) {
	Convey("Given a table with a BOM and padded header", t, func() {
		tbl := NewTable("t", []string{"\ufeffasesor", " puntaje ", "asesor"}, [][]string{
			{" Ana ", "1.5", "dup"},
			{"Luis"},
		})

		Convey("Then header names are cleaned and the first duplicate wins", func() {
			So(tbl.Header[0], ShouldEqual, "asesor")
			So(tbl.HasAll("asesor", "puntaje"), ShouldBeTrue)
			v, ok := tbl.Cell(0, "asesor")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "Ana")
		})

		Convey("Then short rows read as missing cells", func() {
			_, ok := tbl.Cell(1, "puntaje")
			So(ok, ShouldBeFalse)
			So(tbl.Column("puntaje"), ShouldResemble, []string{"1.5", ""})
		})

		Convey("Then out of range lookups fail", func() {
			_, ok := tbl.Cell(5, "asesor")
			So(ok, ShouldBeFalse)
			_, ok = tbl.Cell(0, "nope")
			So(ok, ShouldBeFalse)
			So(tbl.Column("nope"), ShouldBeNil)
		})
	})

	Convey("A nil table is empty", t, func() {
		var tbl *Table
		So(tbl.Len(), ShouldEqual, 0)
		So(tbl.Empty(), ShouldBeTrue)
		So(tbl.Has("asesor"), ShouldBeFalse)
	})
}

func TestParse(t *testing.T) {
	Convey("ParseFloat rejects blanks and non-finite values", t, func() {
		v, ok := ParseFloat(" 0.25 ")
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, 0.25)
		for _, s := range []string{"", "abc", "NaN", "inf"} {
			_, ok := ParseFloat(s)
			So(ok, ShouldBeFalse)
		}
	})

	Convey("ParseBool accepts pandas and Spanish spellings", t, func() {
		for _, s := range []string{"True", "1", "1.0", "sí", "Verdadero"} {
			v, ok := ParseBool(s)
			So(ok, ShouldBeTrue)
			So(v, ShouldBeTrue)
		}
		for _, s := range []string{"False", "0", "no", "falso"} {
			v, ok := ParseBool(s)
			So(ok, ShouldBeTrue)
			So(v, ShouldBeFalse)
		}
		_, ok := ParseBool("maybe")
		So(ok, ShouldBeFalse)
	})
}

func TestDecode(t *testing.T) {
	Convey("Given a call results table with gaps", t, func() {
		tbl := NewTable("results",
			[]string{"asesor", "archivo", "saludo", "saludo_ok", "efectiva", "puntaje"},
			[][]string{
				{"Ana", "a.wav", "2", "True", "True", "82.5"},
				{"Luis", "l.wav", "x", "", "False"},
			})
		rows := CallResults(tbl, []string{"saludo", "cierre"})

		Convey("Then present cells decode", func() {
			So(rows, ShouldHaveLength, 2)
			So(rows[0].Counts["saludo"], ShouldEqual, 2)
			So(rows[0].Pass["saludo"], ShouldBeTrue)
			So(rows[0].Efectiva, ShouldBeTrue)
			So(rows[0].Puntaje, ShouldEqual, 82.5)
		})

		Convey("Then missing and malformed cells take zero defaults", func() {
			So(rows[0].Counts["cierre"], ShouldEqual, 0)
			So(rows[0].Pass["cierre"], ShouldBeFalse)
			So(rows[1].Counts["saludo"], ShouldEqual, 0)
			So(rows[1].Pass["saludo"], ShouldBeFalse)
			So(rows[1].Puntaje, ShouldEqual, 0)
		})
	})

	Convey("Given a category count table", t, func() {
		tbl := NewTable("detail", []string{"asesor", "categoria", "promedio_conteo"}, [][]string{
			{"Ana", "saludo", "1.5"},
			{"Ana", "cierre", "n/a"},
		})
		rows := CategoryCounts(tbl)

		So(*rows[0].AverageCount, ShouldEqual, 1.5)
		So(rows[1].AverageCount, ShouldBeNil)
	})

	Convey("Given score and polarity tables", t, func() {
		scores := AdvisorScores(NewTable("s", []string{"asesor", "puntaje_promedio"}, [][]string{{"Ana", "0.8"}}))
		pol := AdvisorPolarities(NewTable("p", []string{"asesor", "polarity"}, [][]string{{"Ana", "-0.2"}}))

		So(scores, ShouldResemble, []AdvisorScore{{Advisor: "Ana", AverageScore: 0.8}})
		So(pol, ShouldResemble, []AdvisorPolarity{{Advisor: "Ana", Polarity: -0.2}})
	})
}
