// Package status implements an append-only status lifecycle for domain
// entities: a history of status records with exactly one current entry,
// gated by pluggable per-family transition validators.
//
// Categories are closed, entity-specific string enum types (the same
// pattern used for every enum in this module):
//
//	type OrderStatus string
//
//	const (
//	    OrderPending OrderStatus = "pending"
//	    OrderPaid    OrderStatus = "paid"
//	)
//
// A history is parameterized by its owner entity and category type, so no
// runtime casts are needed anywhere between the collection, the validator,
// and the rule set:
//
//	rules := status.NewRuleSet[OrderStatus]().
//	    Allow(OrderPending, OrderPaid, OrderCancelled).
//	    Allow(OrderPaid, OrderShipped)
//
//	h := status.New[*Order, OrderStatus](order,
//	    status.WithValidator[*Order, OrderStatus](
//	        status.NewRuleSetValidator[*Order]("order", rules)))
//
//	err := h.Add(status.NewRecord(OrderPaid, "payment confirmed"))
//
// Histories are not internally synchronized; callers serialize access to a
// history instance, typically through the owning aggregate's transaction
// boundary. The Registry is safe for concurrent use.
package status
