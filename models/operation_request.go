package models

// OperationRequest is one submission of an operation form.
type OperationRequest struct {
	Category  Category
	Entry     string
	Operation Operation

	// Values holds every declared field of the operation, missing ones as "".
	Values FormValues

	// RequestID identifies the submission end to end (X-Request-ID).
	RequestID string
}

// Path returns the endpoint path relative to the service base:
// "/{category}/{entry}/{operation}/", each segment slugified.
func (r OperationRequest) Path() string {
	return OperationPath(r.Category, r.Entry, r.Operation)
}

// Key identifies the (entry, operation) pair a submission belongs to.
func (r OperationRequest) Key() string {
	return r.Category.Slug() + "/" + Slugify(r.Entry) + "/" + r.Operation.Slug()
}

// OperationPath builds the endpoint path for an operation on an entry.
func OperationPath(c Category, entryTitle string, op Operation) string {
	return "/" + c.Slug() + "/" + Slugify(entryTitle) + "/" + op.Slug() + "/"
}

// CatalogPath builds the listing path for a category.
func CatalogPath(c Category) string {
	return "/" + c.Slug() + "/"
}
