// Package cart provides the customer's mutable staging area before checkout.
// A cart is keyed to one restaurant at a time; adding an item from another
// restaurant clears it. Quantities merge on repeated adds and a zero quantity
// update removes the line. The cart is destroyed when converted to an order,
// explicitly cleared, or emptied.
package cart
