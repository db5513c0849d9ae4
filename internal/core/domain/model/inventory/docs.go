// Package inventory models the bakery's raw-material stock (materia prima).
//
// The package includes:
//   - Item: one inventory line with type, brand, name, purchase date, unit price
//     and quantity on hand, optionally specialised as an ingredient (with an
//     expiration date) or a material (with description and color)
//   - IsLowStock and IsExpiring: the two alert predicates evaluated per line at
//     read time
//   - AlertPolicy: the configured thresholds for those predicates
//
// Alert flags are derived on every read and never stored.
package inventory
