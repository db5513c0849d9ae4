// Package kernel provides the value objects shared by the bakery domain model.
//
// The package includes:
//   - Address: the city id plus free-text directions used by people and suppliers
//   - PersonName: a first name and two last names
//   - Person: the identity, name, address and birth date that employees and
//     customers have in common
//   - RequireText and RequirePositiveID: the field rules every aggregate applies
//
// Value objects are immutable and carry a guard.ConstructorGuard so a zero value
// fails Validate.
package kernel
