package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	customersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "customers_registered_total",
			Help: "Total number of customers registered",
		},
	)

	customersUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "customers_updated_total",
			Help: "Total number of customer updates",
		},
	)

	customersDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "customers_deleted_total",
			Help: "Total number of customers deleted",
		},
	)

	deletesBlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "customer_deletes_blocked_total",
			Help: "Total number of deletions refused because the customer has orders",
		},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
	)
)

func RecordCustomerRegistered() {
	customersRegistered.Inc()
}

func RecordCustomerUpdated() {
	customersUpdated.Inc()
}

func RecordCustomerDeleted() {
	customersDeleted.Inc()
}

func RecordDeleteBlocked() {
	deletesBlocked.Inc()
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
