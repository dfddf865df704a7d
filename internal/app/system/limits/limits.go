// internal/app/system/limits/limits.go
package limits

// Request body size limits for form posts.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxDashboardFormSize is the maximum size for dashboard form submissions
	// (add, edit, delete, read/unread).
	MaxDashboardFormSize = 1 << 20 // 1 MB

	// MaxContactFormSize is the maximum size for a public contact message.
	MaxContactFormSize = 64 << 10 // 64 KB
)
