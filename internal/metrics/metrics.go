package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotelhub_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	ReportQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotelhub_report_queries_total",
		Help: "Report queries by report type",
	}, []string{"report"})

	ReportQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hotelhub_report_query_duration_seconds",
		Help:    "Report query duration, lock wait included",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})

	ReservationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotelhub_reservations_created_total",
		Help: "Reservations created",
	})

	ReservationsCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotelhub_reservations_cancelled_total",
		Help: "Reservations cancelled",
	})

	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotelhub_orders_placed_total",
		Help: "Menu orders placed",
	})

	NotifierEmailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotelhub_notifier_emails_total",
		Help: "Notification email outcomes",
	}, []string{"outcome"})
)
