package github_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

// fakeAPI simulates the two GitHub API endpoints that ghlatest consumes.
//
// The latest-release endpoint serves releaseBody, or 404 if it is empty.
// The tags endpoint serves tagPages one page per request, with a Link
// rel="next" header on every page but the last.
type fakeAPI struct {
	releaseBody string
	tagPages    []string

	mu              sync.Mutex
	releaseRequests int
	tagRequests     int
}

func (f *fakeAPI) server() *httptest.Server {
	mux := http.NewServeMux()
	var serverURL string

	mux.HandleFunc("/repos/acme/widget/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.releaseRequests++
		f.mu.Unlock()

		if f.releaseBody == "" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, f.releaseBody)
	})

	mux.HandleFunc("/repos/acme/widget/tags", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.tagRequests++
		f.mu.Unlock()

		if len(f.tagPages) == 0 {
			http.NotFound(w, r)
			return
		}

		page := 1
		if pageParam := r.URL.Query().Get("page"); pageParam != "" {
			var err error
			page, err = strconv.Atoi(pageParam)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		if page > len(f.tagPages) {
			http.NotFound(w, r)
			return
		}

		if page < len(f.tagPages) {
			w.Header().Set("Link", fmt.Sprintf(
				`<%s/repos/acme/widget/tags?page=%d>; rel="next", <%s/repos/acme/widget/tags?page=%d>; rel="last"`,
				serverURL, page+1, serverURL, len(f.tagPages),
			))
		}
		fmt.Fprint(w, f.tagPages[page-1])
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
		page += fmt.Sprintf(
			`{"name":%q,"commit":{"sha":"sha-%s","url":"https://example.invalid/%s"}}`,
			name, name, name,
		)
	}
	return page + "]"
}
