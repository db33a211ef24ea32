package rest

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Alert headers carry a translatable message key for the UI.
func alertHeader(app string) string  { return "X-" + app + "-alert" }
func paramsHeader(app string) string { return "X-" + app + "-params" }
func errorHeader(app string) string  { return "X-" + app + "-error" }

// setEntityAlert sets "<app>.<entity>.<action>" with the entity id as parameter.
func setEntityAlert(h http.Header, app, entity, action, param string) {
	h.Set(alertHeader(app), app+"."+entity+"."+action)
	h.Set(paramsHeader(app), param)
}

func setFailureAlert(h http.Header, app, key, entity string) {
	h.Set(errorHeader(app), "error."+key)
	h.Set(paramsHeader(app), entity)
}

// setPaginationHeaders writes X-Total-Count and an RFC 5988 Link header
// with next, prev, last and first relations built from the request URL.
func setPaginationHeaders(h http.Header, u *url.URL, page, size int, total int64) {
	h.Set("X-Total-Count", strconv.FormatInt(total, 10))

	lastPage := 0
	if size > 0 && total > 0 {
		lastPage = int((total - 1) / int64(size))
	}

	var links []string
	if page < lastPage {
		links = append(links, pageLink(u, page+1, size, "next"))
	}
	if page > 0 {
		links = append(links, pageLink(u, page-1, size, "prev"))
	}
	links = append(links, pageLink(u, lastPage, size, "last"), pageLink(u, 0, size, "first"))
	h.Set("Link", strings.Join(links, ","))
}

func pageLink(u *url.URL, page, size int, rel string) string {
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	link := url.URL{Path: u.Path, RawQuery: q.Encode()}
	return fmt.Sprintf("<%s>; rel=%q", link.String(), rel)
}
