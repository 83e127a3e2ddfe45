package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/vital/internal/adapters/source"
	"github.com/okian/vital/internal/domain/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

const oecdPayload = `STRUCTURE,REF_AREA,Reference area,TIME_PERIOD,OBS_VALUE,UNIT_MEASURE
DSD_HEALTH_STAT,DEU,Germany,2010,4.1,PC
DSD_HEALTH_STAT,DEU,Germany,2015,4.8,PC
DSD_HEALTH_STAT,DEU,Germany,2024,5.6,PC
DSD_HEALTH_STAT,DEU,Germany,2021,,PC
DSD_HEALTH_STAT,DEU,Germany,2022,not-a-number,PC
`

func TestOECDFetch(t *testing.T) {
	Convey("Given an OECD SDMX endpoint", t, func() {
		var gotPath, gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte(oecdPayload))
		}))
		defer srv.Close()

		adapter := source.NewOECD(source.WithBaseURL(srv.URL))

		Convey("When fetching a catalog indicator", func() {
			ind, ok := catalog.Find("Expenditure on pharmaceuticals per capita")
			So(ok, ShouldBeTrue)

			tb, err := adapter.Fetch(context.Background(), "DEU", ind)

			Convey("Then the explicit dataset routes the request", func() {
				So(err, ShouldBeNil)
				So(gotPath, ShouldEqual, "/"+catalog.OECDDatasetHealthStatistics+"/DEU.PHARM_EXP_PC_USD.._T")
				So(gotQuery, ShouldContainSubstring, "startPeriod=2015")
				So(gotQuery, ShouldContainSubstring, "endPeriod=2024")
				So(gotQuery, ShouldContainSubstring, "dimensionAtObservation=AllDimensions")
				So(gotQuery, ShouldContainSubstring, "format=csvfilewithlabels")
			})

			Convey("Then empty, malformed and pre-2015 rows are excluded", func() {
				So(err, ShouldBeNil)
				So(len(tb), ShouldEqual, 2)
				years := map[int]float64{}
				for _, r := range tb {
					years[r.Year] = r.Value
					So(r.Source, ShouldEqual, catalog.SourceOECD)
					So(r.Country, ShouldEqual, "DEU")
				}
				So(years[2015], ShouldEqual, 4.8)
				So(years[2024], ShouldEqual, 5.6)
			})
		})

		Convey("When fetching the insurance coverage indicator", func() {
			ind, ok := catalog.Find("% population with health insurance")
			So(ok, ShouldBeTrue)

			_, err := adapter.Fetch(context.Background(), "DEU", ind)

			Convey("Then the health protection dataset is queried", func() {
				So(err, ShouldBeNil)
				So(gotPath, ShouldStartWith, "/"+catalog.OECDDatasetHealthProtection+"/")
			})
		})

		Convey("When an ad-hoc indicator has no explicit dataset", func() {
			Convey("A name containing 'insurance' routes to health protection", func() {
				ind := catalog.Indicator{Name: "Private Insurance uptake", Code: "X", Source: catalog.SourceOECD}
				_, err := adapter.Fetch(context.Background(), "DEU", ind)
				So(err, ShouldBeNil)
				So(gotPath, ShouldStartWith, "/"+catalog.OECDDatasetHealthProtection+"/")
			})

			Convey("Any other name routes to health statistics", func() {
				ind := catalog.Indicator{Name: "Hospital discharges", Code: "X", Source: catalog.SourceOECD}
				_, err := adapter.Fetch(context.Background(), "DEU", ind)
				So(err, ShouldBeNil)
				So(gotPath, ShouldStartWith, "/"+catalog.OECDDatasetHealthStatistics+"/")
			})
		})

		Convey("When the expected columns are missing", func() {
			headless := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("REF_AREA,VALUE\nDEU,1\n"))
			}))
			defer headless.Close()

			ind := catalog.Indicator{Name: "anything", Code: "X", Source: catalog.SourceOECD}
			_, err := source.NewOECD(source.WithBaseURL(headless.URL)).
				Fetch(context.Background(), "DEU", ind)

			Convey("Then a missing-column error is returned", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
