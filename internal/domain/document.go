package domain

// Document is a schemaless record as stored in a collection. Values are whatever
// the client sent; the service only interprets the fields named below.
type Document map[string]any

// Field names the service reads or filters on.
const (
	FieldID            = "_id"
	FieldName          = "name"
	FieldOwnerEmail    = "email"
	FieldPurchaseCount = "purchaseCount"
	FieldFoodID        = "foodId"
	FieldBuyerEmail    = "buyer.buyer_email"
)

// String returns the named top-level field when it holds a non-empty string.
func (d Document) String(field string) (string, bool) {
	v, ok := d[field].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Without returns a shallow copy of d lacking the given keys.
func (d Document) Without(keys ...string) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
