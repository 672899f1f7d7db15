package constants

// Session and context keys shared between middleware and handlers.
const (
	SessionCookieName = "wdpl_session"

	ContextKeyUserID     = "user_id"
	ContextKeyAdminEmail = "admin_email"

	// SessionKeyIsAdmin is a UI hint only. Privileged requests always
	// re-check the admins table server-side.
	SessionKeyIsAdmin = "is_admin"

	SessionKeyViewer = "gallery_viewer"
)

const MinPasswordLength = 8

// Storage buckets.
const (
	BucketTeamPhotos        = "team-profile-pictures"
	BucketTestimonialPhotos = "testimonials"
	BucketGalleryImages     = "gallery-images"
	BucketResumes           = "resumes"
)

// PlaceholderImageURL is served as the cover for categories and events
// that have no images yet.
const PlaceholderImageURL = "https://via.placeholder.com/400x300?text=No+Image"
