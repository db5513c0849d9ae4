// Package order provides the customer order aggregate of the bakery and the
// status it moves through while the kitchen works on it.
//
// The package includes:
//   - Order: the aggregate root holding the order number, the customer, the
//     description, the delivery date and the current status
//   - Status: the three-valued order status (encargado, elaborando, listo)
//   - Line: a product and quantity added to an existing order
//
// Key business rules:
//   - New orders start as Placed ("encargado")
//   - The order number is assigned by the database when the order is stored
//   - Status changes are accepted between any two valid statuses, including
//     moving a Ready order back to Placed
//   - A status outside the three known values is rejected with ErrInvalidStatus
//     before anything is persisted
package order
