// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Services receive dependencies through constructor injection, depend only
// on repository interfaces (never on specific infrastructure), and signal
// expected failures with sentinel errors the API layer maps to HTTP status
// codes. The authenticated caller's identity is always an explicit argument;
// nothing is read from ambient state.
package service
