// Package product contains the Product aggregate representing a sellable
// catalog item with a tracked stock level. Stock movements go through
// Reserve and Release so a product can never hold a negative quantity.
package product
