package dataset_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/rematricula/internal/adapters/dataset"
	"github.com/smartystreets/goconvey/convey"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func writeDataset(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, dir, dataset.DefaultScoresFile, "asesor,puntaje_promedio\nAna,0.8\nLuis,0.6\n")
	writeFile(t, dir, dataset.DefaultDetailFile, "asesor,categoria,promedio_conteo\nAna,saludo,1\n")
	writeFile(t, dir, dataset.DefaultSentimentFile, "confianza,polarity,subjectivity\n0.9,0.1,0.4\n")
	writeFile(t, dir, dataset.DefaultPolarityFile, "asesor,polarity\nAna,0.1\n")
	writeFile(t, dir, dataset.DefaultResultsFile, "asesor,archivo,saludo,saludo_ok,efectiva,puntaje\nAna,a.wav,1,True,False,82.5\n")
}

func TestLoader(t *testing.T) {
	convey.Convey("Given a directory with the five input files", t, func() {
		dir := t.TempDir()
		writeDataset(t, dir)
		loader := dataset.NewLoader(dataset.WithDir(dir))

		convey.Convey("When loading", func() {
			ds, err := loader.Load(context.Background())

			convey.Convey("Then every table is read", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(ds.Scores.Len(), convey.ShouldEqual, 2)
				convey.So(ds.Detail.Len(), convey.ShouldEqual, 1)
				convey.So(ds.Sentiment.Has("confianza"), convey.ShouldBeTrue)
				convey.So(ds.Polarity.Len(), convey.ShouldEqual, 1)
				v, ok := ds.Results.Cell(0, "puntaje")
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(v, convey.ShouldEqual, "82.5")
			})
		})

		convey.Convey("When one file is missing", func() {
			_ = os.Remove(filepath.Join(dir, dataset.DefaultPolarityFile))
			ds, err := loader.Load(context.Background())

			convey.Convey("Then the load fails as a whole", func() {
				convey.So(ds, convey.ShouldBeNil)
				convey.So(errors.Is(err, dataset.ErrLoadDataset), convey.ShouldBeTrue)
				convey.So(errors.Is(err, os.ErrNotExist), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, dataset.TablePolarity)
			})
		})

		convey.Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := loader.Load(ctx)

			convey.Convey("Then the load stops", func() {
				convey.So(errors.Is(err, context.Canceled), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a file name is overridden with an absolute path", func() {
			other := t.TempDir()
			writeFile(t, other, "scores.csv", "asesor,puntaje_promedio\nZoe,1\n")
			l := dataset.NewLoader(dataset.WithDir(dir), dataset.WithFiles(dataset.Files{Scores: filepath.Join(other, "scores.csv")}))
			ds, err := l.Load(context.Background())

			convey.Convey("Then the override is used and the rest keep defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(ds.Scores.Len(), convey.ShouldEqual, 1)
				convey.So(ds.Results.Len(), convey.ShouldEqual, 1)
			})
		})
	})
}

func TestReadCSV(t *testing.T) {
	convey.Convey("Given CSV input", t, func() {
		convey.Convey("When it has only a header", func() {
			tbl, err := dataset.ReadCSV("x", strings.NewReader("asesor,polarity\n"))
			convey.So(err, convey.ShouldBeNil)
			convey.So(tbl.Empty(), convey.ShouldBeTrue)
			convey.So(tbl.Has("polarity"), convey.ShouldBeTrue)
		})

		convey.Convey("When it is completely empty", func() {
			_, err := dataset.ReadCSV("x", strings.NewReader(""))
			convey.So(errors.Is(err, dataset.ErrEmptyFile), convey.ShouldBeTrue)
		})

		convey.Convey("When a row is ragged", func() {
			_, err := dataset.ReadCSV("x", strings.NewReader("a,b\n1,2,3\n"))
			convey.So(err, convey.ShouldNotBeNil)
		})

		convey.Convey("When the header carries a byte order mark and spaces", func() {
			tbl, err := dataset.ReadCSV("x", strings.NewReader("\ufeffasesor, polarity\nAna, 0.5\n"))
			convey.So(err, convey.ShouldBeNil)
			convey.So(tbl.Has("asesor"), convey.ShouldBeTrue)
			v, _ := tbl.Cell(0, "polarity")
			convey.So(v, convey.ShouldEqual, "0.5")
		})
	})
}

func TestReadFile(t *testing.T) {
	convey.Convey("Given a workbook", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "scores.xlsx")
		f := excelize.NewFile()
		sheet := f.GetSheetName(0)
		convey.So(f.SetSheetRow(sheet, "A1", &[]interface{}{"asesor", "puntaje_promedio"}), convey.ShouldBeNil)
		convey.So(f.SetSheetRow(sheet, "A2", &[]interface{}{"Ana", 0.75}), convey.ShouldBeNil)
		convey.So(f.SaveAs(path), convey.ShouldBeNil)
		_ = f.Close()

		convey.Convey("Then it is read from the first sheet", func() {
			tbl, err := dataset.ReadFile("scores", path)
			convey.So(err, convey.ShouldBeNil)
			convey.So(tbl.Len(), convey.ShouldEqual, 1)
			v, _ := tbl.Cell(0, "puntaje_promedio")
			convey.So(v, convey.ShouldEqual, "0.75")
		})
	})

	convey.Convey("Given an unknown extension", t, func() {
		_, err := dataset.ReadFile("x", "data/file.parquet")
		convey.So(errors.Is(err, dataset.ErrUnsupportedFile), convey.ShouldBeTrue)
	})
}
