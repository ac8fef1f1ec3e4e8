package utils

import (
	"net/http"
	"net/url"
)

// Redirect is the response a form mutation hands back: where the browser goes next.
type Redirect struct {
	Location string
	Status   int
}

// SeeOther builds a 303 redirect to path, adding query values when present.
func SeeOther(path string, query url.Values) Redirect {
	location := path
	if encoded := query.Encode(); encoded != "" {
		location += "?" + encoded
	}
	return Redirect{Location: location, Status: http.StatusSeeOther}
}

// Write sends the redirect.
func (rd Redirect) Write(w http.ResponseWriter, r *http.Request) {
	status := rd.Status
	if status == 0 {
		status = http.StatusSeeOther
	}
	http.Redirect(w, r, rd.Location, status)
}
