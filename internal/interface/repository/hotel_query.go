package repository

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// outboundQuery builds the query string sent to the hotel API.
// Absent optional values are never written.
type outboundQuery url.Values

func newOutboundQuery() outboundQuery {
	return outboundQuery(url.Values{})
}

func (q outboundQuery) values() url.Values {
	return url.Values(q)
}

func (q outboundQuery) set(key, value string) {
	url.Values(q).Set(key, value)
}

func (q outboundQuery) str(key string, v *string) {
	if v != nil {
		q.set(key, *v)
	}
}

func (q outboundQuery) integer(key string, v *int) {
	if v != nil {
		q.set(key, strconv.Itoa(*v))
	}
}

func (q outboundQuery) number(key string, v *float64) {
	if v != nil {
		q.set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}

func (q outboundQuery) boolean(key string, v *bool) {
	if v != nil {
		q.set(key, strconv.FormatBool(*v))
	}
}

func (q outboundQuery) timestamp(key string, v *time.Time) {
	if v != nil {
		q.set(key, v.Format(time.RFC3339))
	}
}

// csv joins a list into one comma separated value
func (q outboundQuery) csv(key string, v []string) {
	if len(v) > 0 {
		q.set(key, strings.Join(v, ","))
	}
}

// repeated writes one key per list element
func (q outboundQuery) repeated(key string, v []string) {
	for _, item := range v {
		url.Values(q).Add(key, item)
	}
}
