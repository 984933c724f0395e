package service_mocks

//go:generate mockgen -source=../interfaces.go -destination=service_mocks.go -package=service_mocks

// Mocks for the loader, aggregation, report, analysis, session, event,
// metrics and generator interfaces. Regenerate with:
//   go generate ./internal/services/service_mocks
