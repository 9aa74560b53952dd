// Package metrics defines and registers all custom Prometheus metrics for the
// LensLink API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto and are exposed by the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lenslink"

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of photographer accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ProfilesCreatedTotal counts newly created photographer profiles.
var ProfilesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profiles_created_total",
		Help:      "Total number of photographer profiles created.",
	},
)

// PhotosUploadedTotal counts work photos accepted into portfolios.
var PhotosUploadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "photos_uploaded_total",
		Help:      "Total number of work photos uploaded.",
	},
)

// DiscoverySearchesTotal counts listing requests.
// Label:
//   - filter: "none", "city", "type", or "city_type"
var DiscoverySearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "discovery_searches_total",
		Help:      "Total number of photographer listing requests, by filter shape.",
	},
	[]string{"filter"},
)

// DiscoveryCacheTotal counts listing cache lookups.
// Label:
//   - result: "hit" or "miss"
var DiscoveryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "discovery_cache_total",
		Help:      "Total number of listing cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
