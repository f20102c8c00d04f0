// Package domain defines the core business types of the Roamline back office.
// It contains the record structs for each collection (Lead, Employee,
// Quotation, Itinerary), the Envelope wrapper that is persisted per
// collection, and the repository interfaces that define the contracts for
// data persistence.
//
// This package serves as the central point for application-wide types and
// business rules, ensuring a clean separation between the application's core
// logic and its implementation details, such as the storage backend or any
// calling UI. By defining interfaces for repositories, the domain package
// remains independent of the data storage technology.
package domain
