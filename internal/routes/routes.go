package routes

const (
	// Health / infrastructure
	Health = "/healthz"
	Events = "/api/v1/events"

	// Properties
	Properties           = "/api/v1/properties"
	PropertyByID         = "/api/v1/properties/{id}"
	PropertyLeaseHistory = "/api/v1/properties/{id}/lease-history"

	// Leases
	Leases              = "/api/v1/leases"
	LeaseByID           = "/api/v1/leases/{id}"
	LeaseRenewals       = "/api/v1/lease-renewals"
	LeaseRenewalRespond = "/api/v1/lease-renewals/{id}/respond"

	// Payments
	Payments            = "/api/v1/payments"
	PaymentByID         = "/api/v1/payments/{id}"
	PaymentConfirm      = "/api/v1/payments/{id}/confirm"
	PaymentUploads      = "/api/v1/payment-uploads"
	PaymentUploadVerify = "/api/v1/payment-uploads/{id}/verify"
	PaymentMethods      = "/api/v1/payment-methods"

	// Maintenance
	MaintenanceRequests          = "/api/v1/maintenance-requests"
	MaintenanceRequestByID       = "/api/v1/maintenance-requests/{id}"
	MaintenanceRequestTransition = "/api/v1/maintenance-requests/{id}/transition"

	// Notices
	Notices        = "/api/v1/notices"
	NoticeByID     = "/api/v1/notices/{id}"
	NoticeMarkRead = "/api/v1/notices/{id}/read"

	// Currency
	CurrencySettings = "/api/v1/currency/settings"
	CurrencyConvert  = "/api/v1/currency/convert"
	CurrencyRate     = "/api/v1/currency/rate"

	// Profiles
	Profiles          = "/api/v1/profiles"
	ProfileMe         = "/api/v1/profiles/me"
	ProfileByID       = "/api/v1/profiles/{id}"
	ProfileChangeRole = "/api/v1/profiles/{id}/role"
)
