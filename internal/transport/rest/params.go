package rest

import (
	"net/http"
	"strconv"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// parsePageable reads page, size and the repeatable sort parameter.
// Missing values are left zero for the service to default.
func parsePageable(r *http.Request) (domain.Pageable, error) {
	q := r.URL.Query()
	var (
		p    domain.Pageable
		verr domain.ValidationError
	)

	p.Page = intParam(q.Get("page"), "page", &verr)
	p.Size = intParam(q.Get("size"), "size", &verr)
	if err := verr.Err(); err != nil {
		return domain.Pageable{}, err
	}

	for _, raw := range q["sort"] {
		o, err := domain.ParseOrder(raw)
		if err != nil {
			return domain.Pageable{}, err
		}
		p.Sort = append(p.Sort, o)
	}
	return p, nil
}

func intParam(v, field string, verr *domain.ValidationError) int {
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	verr.Check(err == nil, field, "must be an integer")
	return n
}

// pathID reads the {id} path value as a positive int64.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
