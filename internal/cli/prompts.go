package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/vital/internal/domain/catalog"
)

// Menu is the numbered indicator list shown to the user. Numbering is
// stable across a session: WHO GHO first, then World Bank, then OECD.
type Menu struct {
	entries []catalog.Indicator
}

// NewMenu builds the menu from the static catalog.
func NewMenu() *Menu {
	return &Menu{entries: catalog.Indicators()}
}

// Render writes the numbered menu grouped by source.
func (m *Menu) Render(w io.Writer) {
	fmt.Fprintln(w, "\nAvailable Health KPIs:")
	fmt.Fprintln(w, strings.Repeat("=", 60))

	n := 1
	for _, src := range catalog.Sources() {
		group := catalog.BySource(src)
		fmt.Fprintf(w, "\n%s indicators (%d available):\n", src, len(group))
		for _, ind := range group {
			fmt.Fprintf(w, "%2d. %s\n", n, ind.Name)
			n++
		}
	}
}

// Pick resolves a comma-separated selection like "1,3,12" against the
// menu. Tokens that are not valid menu numbers are ignored.
func (m *Menu) Pick(selection string) []catalog.Indicator {
	var out []catalog.Indicator
	seen := map[int]bool{}
	for _, token := range strings.Split(selection, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil || n < 1 || n > len(m.entries) || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, m.entries[n-1])
	}
	return out
}

// Size returns how many indicators the menu offers.
func (m *Menu) Size() int { return len(m.entries) }

// promptLine writes a prompt and reads one trimmed input line.
func promptLine(in *bufio.Scanner, out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

// splitCountries resolves a comma-separated country input to ISO3 codes.
func splitCountries(input string) []string {
	var out []string
	seen := map[string]bool{}
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		code := catalog.ResolveCountry(token)
		if !seen[code] {
			seen[code] = true
			out = append(out, code)
		}
	}
	return out
}
