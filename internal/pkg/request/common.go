package request

// ByIDRequest is a common struct for endpoints that take an ID path parameter.
// Catalog IDs are short slugs (e.g. "vf3") or generated identifiers, so the
// only constraint is that the parameter is present.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required"`
}
