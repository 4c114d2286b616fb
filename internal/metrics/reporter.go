package metrics

import (
	"math"
	"sort"
	"time"
)

const reportDescription = "API usage metrics and statistics"

// EndpointDetail is one row of the per-endpoint breakdown.
type EndpointDetail struct {
	Endpoint            string `json:"endpoint"`
	Requests            int64  `json:"requests"`
	AverageResponseTime int64  `json:"averageResponseTime"`
	Percentage          int64  `json:"percentage"`
}

// MostConsulted identifies the endpoint with the highest request count.
type MostConsulted struct {
	Endpoint            string `json:"endpoint"`
	Requests            int64  `json:"requests"`
	AverageResponseTime int64  `json:"averageResponseTime"`
}

// Summary holds the report's global figures.
type Summary struct {
	TotalRequests         int64          `json:"totalRequests"`
	AverageResponseTime   int64          `json:"averageResponseTime"`
	MostConsultedEndpoint *MostConsulted `json:"mostConsultedEndpoint"`
}

// Metadata describes the report itself.
type Metadata struct {
	GeneratedAt string `json:"generatedAt"`
	Description string `json:"description"`
}

// Report is the full metrics response payload.
type Report struct {
	Summary         Summary          `json:"summary"`
	EndpointDetails []EndpointDetail `json:"endpointDetails"`
	Metadata        Metadata         `json:"metadata"`
}

// BuildReport derives summary statistics from a snapshot. A zero-count
// snapshot yields zero averages, a null most-consulted endpoint and an empty
// details list. Per-entry percentages are rounded independently and need not
// sum to exactly 100.
func BuildReport(snap Snapshot, now time.Time) Report {
	report := Report{
		EndpointDetails: make([]EndpointDetail, 0, len(snap.Keys)),
		Metadata: Metadata{
			GeneratedAt: now.UTC().Format(time.RFC3339),
			Description: reportDescription,
		},
	}
	report.Summary.TotalRequests = snap.TotalRequests
	if snap.TotalRequests > 0 {
		report.Summary.AverageResponseTime = roundDiv(snap.TotalMillis, snap.TotalRequests)
	}

	var maxRequests int64
	for _, key := range snap.Keys {
		stats := snap.Endpoints[key]
		if stats.Count == 0 {
			continue
		}
		avg := roundDiv(stats.TotalMillis, stats.Count)
		if stats.Count > maxRequests {
			maxRequests = stats.Count
			report.Summary.MostConsultedEndpoint = &MostConsulted{
				Endpoint:            key,
				Requests:            stats.Count,
				AverageResponseTime: avg,
			}
		}
		report.EndpointDetails = append(report.EndpointDetails, EndpointDetail{
			Endpoint:            key,
			Requests:            stats.Count,
			AverageResponseTime: avg,
			Percentage:          roundDiv(stats.Count*100, snap.TotalRequests),
		})
	}

	// Equal request counts keep their first-observed relative order.
	sort.SliceStable(report.EndpointDetails, func(i, j int) bool {
		return report.EndpointDetails[i].Requests > report.EndpointDetails[j].Requests
	})

	return report
}

func roundDiv(total, count int64) int64 {
	return int64(math.Round(float64(total) / float64(count)))
}
