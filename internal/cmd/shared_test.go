package cmd_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type test struct {
	name         string
	cliArgs      []string
	releaseBody  string
	tagPages     []string
	wantErr      bool
	wantOut      string
	wantOutRegex string
}

// setupAPIServer simulates the GitHub API for the acme/widget repository.
// The latest-release endpoint serves releaseBody, or 404 if it is empty.
// The tags endpoint serves tagPages one page per request, with a Link
// rel="next" header on every page but the last.
func setupAPIServer(releaseBody string, tagPages []string) *httptest.Server {
	mux := http.NewServeMux()
	var serverURL string

	mux.HandleFunc("/repos/acme/widget/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		if releaseBody == "" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, releaseBody)
	})

	mux.HandleFunc("/repos/acme/widget/tags", func(w http.ResponseWriter, r *http.Request) {
		if len(tagPages) == 0 {
			http.NotFound(w, r)
			return
		}

		page := 1
		if pageParam := r.URL.Query().Get("page"); pageParam != "" {
			var err error
			page, err = strconv.Atoi(pageParam)
			if err != nil || page > len(tagPages) {
				http.NotFound(w, r)
				return
			}
		}

		if page < len(tagPages) {
			w.Header().Set("Link", fmt.Sprintf(
				`<%s/repos/acme/widget/tags?page=%d>; rel="next"`,
				serverURL, page+1,
			))
		}
		fmt.Fprint(w, tagPages[page-1])
	})

	server := httptest.NewServer(mux)
	serverURL = server.URL

	return server
}

func tagPage(names ...string) string {
	page := "["
	for i, name := range names {
		if i > 0 {
			page += ","
		}
		page += fmt.Sprintf(`{"name":%q,"commit":{"sha":"sha-%s"}}`, name, name)
	}
	return page + "]"
}

func checkWantOut(t *testing.T, tt test, buf *bytes.Buffer) {
	if tt.wantOut == "" && tt.wantOutRegex == "" {
		t.Fatalf("Either wantOut or wantOutRegex must be set")
	}
	if tt.wantOut != "" {
		if diff := cmp.Diff(tt.wantOut, buf.String()); diff != "" {
			t.Errorf("Output mismatch (-want +got):\n%s", diff)
		}
	} else if tt.wantOutRegex != "" {
		matched, err := regexp.Match(tt.wantOutRegex, buf.Bytes())
		if err != nil {
			t.Errorf("Error compiling regex: %v", err)
		}
		if !matched {
			t.Errorf("Error matching regex: %v, output: %s", tt.wantOutRegex, buf.String())
		}
	}
}
