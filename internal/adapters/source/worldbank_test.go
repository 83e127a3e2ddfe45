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

const wbPayload = `[
  {"page": 1, "pages": 1, "per_page": 100, "total": 4},
  [
    {"date": "2024", "value": 81.2},
    {"date": "2020", "value": null},
    {"date": "2015", "value": 80.6},
    {"date": "2010", "value": 79.9}
  ]
]`

func TestWorldBankFetch(t *testing.T) {
	Convey("Given a World Bank endpoint", t, func() {
		var gotPath, gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(wbPayload))
		}))
		defer srv.Close()

		adapter := source.NewWorldBank(source.WithBaseURL(srv.URL))
		ind := catalog.Indicator{Name: "Life expectancy at birth", Code: "SP.DYN.LE00.IN", Source: catalog.SourceWorldBank}

		Convey("When fetching for DEU", func() {
			tb, err := adapter.Fetch(context.Background(), "DEU", ind)

			Convey("Then the request targets country/indicator with fixed parameters", func() {
				So(err, ShouldBeNil)
				So(gotPath, ShouldEqual, "/country/DEU/indicator/SP.DYN.LE00.IN")
				So(gotQuery, ShouldContainSubstring, "format=json")
				So(gotQuery, ShouldContainSubstring, "date=2015%3A2024")
				So(gotQuery, ShouldContainSubstring, "per_page=100")
			})

			Convey("Then null values and pre-2015 years are excluded", func() {
				So(err, ShouldBeNil)
				So(len(tb), ShouldEqual, 2)
				years := map[int]bool{}
				for _, r := range tb {
					years[r.Year] = true
					So(r.Country, ShouldEqual, "DEU")
					So(r.Source, ShouldEqual, catalog.SourceWorldBank)
				}
				So(years[2024], ShouldBeTrue)
				So(years[2015], ShouldBeTrue)
				So(years[2020], ShouldBeFalse) // null value
				So(years[2010], ShouldBeFalse) // below year floor
			})
		})

		Convey("When the body carries only metadata", func() {
			metaOnly := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"message": [{"id": "120", "value": "Invalid indicator"}]}]`))
			}))
			defer metaOnly.Close()

			tb, err := source.NewWorldBank(source.WithBaseURL(metaOnly.URL)).
				Fetch(context.Background(), "DEU", ind)

			Convey("Then it reads as no data, not an error", func() {
				So(err, ShouldBeNil)
				So(tb.Empty(), ShouldBeTrue)
			})
		})

		Convey("When the body is not JSON", func() {
			broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>maintenance</html>"))
			}))
			defer broken.Close()

			_, err := source.NewWorldBank(source.WithBaseURL(broken.URL)).
				Fetch(context.Background(), "DEU", ind)

			Convey("Then a decode error is returned", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
