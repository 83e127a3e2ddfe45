package report_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/okian/vital/internal/domain/catalog"
	"github.com/okian/vital/internal/domain/table"
	"github.com/okian/vital/internal/report"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleTable() table.Table {
	return table.Table{
		{Year: 2015, Country: "DEU", KPI: "life expectancy", Value: 80.6, Source: catalog.SourceWorldBank},
		{Year: 2016, Country: "DEU", KPI: "life expectancy", Value: 80.9, Source: catalog.SourceWorldBank},
		{Year: 2016, Country: "DEU", KPI: "hospital beds", Value: 8, Source: catalog.SourceOECD},
	}
}

func TestSummarize(t *testing.T) {
	Convey("Given a unified table", t, func() {
		s := report.Summarize(sampleTable())

		Convey("Then the headline figures are correct", func() {
			So(s.Records, ShouldEqual, 3)
			So(s.YearMin, ShouldEqual, 2015)
			So(s.YearMax, ShouldEqual, 2016)
			So(s.KPIs, ShouldEqual, 2)
			So(s.Sources, ShouldResemble, []string{"World Bank", "OECD"})
		})

		Convey("Then RenderSummary mentions each figure", func() {
			var b strings.Builder
			So(report.RenderSummary(&b, sampleTable()), ShouldBeNil)
			So(b.String(), ShouldContainSubstring, "Total records: 3")
			So(b.String(), ShouldContainSubstring, "2015 - 2016")
			So(b.String(), ShouldContainSubstring, "World Bank, OECD")
		})
	})
}

func TestRenderPivot(t *testing.T) {
	Convey("Given a KPI-by-year pivot", t, func() {
		p := table.PivotByYear(sampleTable())
		var b strings.Builder
		So(report.RenderPivot(&b, p), ShouldBeNil)
		out := b.String()

		Convey("Then the header carries the year columns", func() {
			lines := strings.Split(out, "\n")
			So(lines[0], ShouldContainSubstring, "KPI")
			So(lines[0], ShouldContainSubstring, "2015")
			So(lines[0], ShouldContainSubstring, "2016")
		})

		Convey("Then absent cells render as a dash", func() {
			for _, line := range strings.Split(out, "\n") {
				if strings.HasPrefix(line, "hospital beds") {
					So(line, ShouldContainSubstring, "-")
					So(line, ShouldContainSubstring, "8")
				}
			}
		})
	})
}

func TestCSVWriters(t *testing.T) {
	Convey("Given the unified CSV writer", t, func() {
		var b strings.Builder
		So(report.WriteUnifiedCSV(&b, sampleTable()), ShouldBeNil)
		lines := strings.Split(strings.TrimSpace(b.String()), "\n")

		Convey("Then the canonical header and all rows are present", func() {
			So(lines[0], ShouldEqual, "Year,Country,KPI,Value,Source")
			So(len(lines), ShouldEqual, 4)
			So(lines[1], ShouldEqual, "2015,DEU,life expectancy,80.6,World Bank")
		})
	})

	Convey("Given the pivot CSV writer", t, func() {
		var b strings.Builder
		So(report.WritePivotCSV(&b, table.PivotByYear(sampleTable())), ShouldBeNil)
		lines := strings.Split(strings.TrimSpace(b.String()), "\n")

		Convey("Then missing cells stay empty", func() {
			So(lines[0], ShouldEqual, "KPI,2015,2016")
			So(lines[1], ShouldEqual, "life expectancy,80.6,80.9")
			So(lines[2], ShouldEqual, "hospital beds,,8")
		})
	})
}

func TestExport(t *testing.T) {
	Convey("Given an export directory", t, func() {
		dir := t.TempDir()

		paths, err := report.Export(dir, "DEU", sampleTable())

		Convey("Then both snapshot files are written with timestamped names", func() {
			So(err, ShouldBeNil)

			unified := filepath.Base(paths.Unified)
			summary := filepath.Base(paths.Summary)
			So(unified, ShouldStartWith, "health_kpis_DEU_")
			So(regexp.MustCompile(`^health_kpis_DEU_\d{8}_\d{6}\.csv$`).MatchString(unified), ShouldBeTrue)
			So(regexp.MustCompile(`^health_kpis_DEU_\d{8}_\d{6}_summary\.csv$`).MatchString(summary), ShouldBeTrue)

			data, err := os.ReadFile(paths.Unified)
			So(err, ShouldBeNil)
			So(string(data), ShouldStartWith, "Year,Country,KPI,Value,Source")
		})
	})
}
