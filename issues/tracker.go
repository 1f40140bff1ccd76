package issues

import (
	"net/url"

	"github.com/sapuseven/issuereport/urlutil"
)

// Default tracker coordinates.
const (
	DefaultHost   = "github.com"
	DefaultOwner  = "SapuSeven"
	DefaultRepo   = "BetterUntis"
	DefaultLabels = "bug"
)

// Tracker identifies the repository whose "new issue" page receives reports.
type Tracker struct {
	Host  string `yaml:"host"`
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`

	// Labels is sent as the labels query parameter. Trackers may ignore it
	// when the issue is created from an unauthenticated URL.
	Labels string `yaml:"labels"`
}

// DefaultTracker returns the BetterUntis issue tracker.
func DefaultTracker() Tracker {
	return Tracker{
		Host:   DefaultHost,
		Owner:  DefaultOwner,
		Repo:   DefaultRepo,
		Labels: DefaultLabels,
	}
}

// NewIssuePath returns "/<owner>/<repo>/issues/new".
func (t Tracker) NewIssuePath() string {
	return "/" + t.Owner + "/" + t.Repo + "/issues/new"
}

// NewIssueURL composes the https "new issue" URL with title, body and labels
// query parameters, in that order.
func (t Tracker) NewIssueURL(r Report) string {
	u := url.URL{
		Scheme: "https",
		Host:   t.Host,
		Path:   t.NewIssuePath(),
		RawQuery: urlutil.EncodeQuery(
			urlutil.Param{Key: "title", Value: r.Title},
			urlutil.Param{Key: "body", Value: r.Body},
			urlutil.Param{Key: "labels", Value: t.Labels},
		),
	}
	return u.String()
}
