// Package voucher provides the discount instrument of the food delivery
// system. A Voucher combines a tagged discount variant (percentage,
// fixed amount, or free shipping) with eligibility rules: active flag,
// validity window, minimum order amount, and an optional usage cap.
//
// Evaluation order is fixed: inactive, exhausted, minimum order, then the
// discount calculation. One evaluator serves both the checkout path and the
// standalone validation endpoint so the two always agree; in particular a
// free-shipping voucher always discounts the restaurant's delivery fee.
//
// Applying a voucher is a two-step contract: Evaluate is read-only, and the
// checkout use case calls MarkUsed inside its transaction so the usage
// counter commits together with the order.
package voucher
