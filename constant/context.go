package constant

type contextKey string

// AdminIDKey carries the authenticated operator id through request contexts.
const AdminIDKey contextKey = "admin_id"
