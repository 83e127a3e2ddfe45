package cli_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/okian/vital/internal/cli"
	"github.com/okian/vital/internal/domain/catalog"
	"github.com/okian/vital/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMenu(t *testing.T) {
	Convey("Given the indicator menu", t, func() {
		menu := cli.NewMenu()

		Convey("Then it offers the whole catalog", func() {
			So(menu.Size(), ShouldEqual, len(catalog.Indicators()))
		})

		Convey("Then rendering groups by source", func() {
			var b strings.Builder
			menu.Render(&b)
			out := b.String()
			So(out, ShouldContainSubstring, "WHO GHO indicators")
			So(out, ShouldContainSubstring, "World Bank indicators")
			So(out, ShouldContainSubstring, "OECD indicators")
			So(out, ShouldContainSubstring, " 1. ")
		})

		Convey("Then Pick resolves valid numbers and ignores junk", func() {
			picked := menu.Pick("1, 2, nope, 999, 2")
			So(len(picked), ShouldEqual, 2)
			So(picked[0], ShouldResemble, catalog.Indicators()[0])
			So(picked[1], ShouldResemble, catalog.Indicators()[1])
		})

		Convey("Then an empty selection picks nothing", func() {
			So(menu.Pick(""), ShouldBeEmpty)
		})
	})
}

func TestRunWithoutSelection(t *testing.T) {
	Convey("Given a session that selects no KPIs", t, func() {
		So(logger.Init(), ShouldBeNil)

		var requests int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&requests, 1)
		}))
		defer srv.Close()

		var out strings.Builder
		cfg := &cli.Config{
			Countries:        "germany",
			KPIs:             "garbage",
			NoExport:         true,
			WHOGHOBaseURL:    srv.URL,
			WorldBankBaseURL: srv.URL,
			OECDBaseURL:      srv.URL,
			In:               strings.NewReader(""),
			Out:              &out,
		}

		err := cli.Run(context.Background(), cfg)

		Convey("Then the user is told to select a KPI and no network call happens", func() {
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Select at least one KPI.")
			So(atomic.LoadInt64(&requests), ShouldEqual, 0)
		})
	})
}

func TestRunEndToEnd(t *testing.T) {
	Convey("Given a WHO GHO fixture server", t, func() {
		So(logger.Init(), ShouldBeNil)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"value": [
				{"SpatialDim": "DEU", "TimeDim": 2019, "NumericValue": 42.5}
			]}`))
		}))
		defer srv.Close()

		var out strings.Builder
		cfg := &cli.Config{
			Countries:        "germany",
			KPIs:             "1", // first WHO GHO indicator
			NoExport:         true,
			WHOGHOBaseURL:    srv.URL,
			WorldBankBaseURL: srv.URL,
			OECDBaseURL:      srv.URL,
			In:               strings.NewReader(""),
			Out:              &out,
		}

		err := cli.Run(context.Background(), cfg)

		Convey("Then the session renders summary and pivot", func() {
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Selected countries: DEU")
			So(out.String(), ShouldContainSubstring, "Total records: 1")
			So(out.String(), ShouldContainSubstring, "2019")
			So(out.String(), ShouldContainSubstring, "42.5")
		})
	})
}
