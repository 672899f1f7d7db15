package repository

import (
	"github.com/wdpl/corporate-site-api/internal/models"
)

// AccountRepository defines data access for credentials and the admins
// allowlist.
type AccountRepository interface {
	// FindUserByEmail finds a credential record by email
	FindUserByEmail(email string) (*models.User, error)

	// FindUserByID finds a credential record by id
	FindUserByID(id uint64) (*models.User, error)

	// UpdatePassword replaces a user's password hash
	UpdatePassword(userID uint64, passwordHash string) error

	// FindAdminByEmail looks up the admins allowlist
	FindAdminByEmail(email string) (*models.AdminAccount, error)
}

// TeamRepository defines data access for departments, members, and skills.
type TeamRepository interface {
	// ListDepartments lists departments, optionally only active ones, name ascending
	ListDepartments(activeOnly bool) ([]models.Department, error)

	// CreateDepartment creates a department
	CreateDepartment(dep *models.Department) error

	// SetDepartmentActive flips the soft-disable flag
	SetDepartmentActive(id uint64, active bool) error

	// ListMembers lists members id ascending with skills and department preloaded
	ListMembers(activeOnly bool) ([]models.TeamMember, error)

	// FindMember finds a member with skills preloaded
	FindMember(id uint64) (*models.TeamMember, error)

	// CreateMember creates a member and its skills in one transaction
	CreateMember(member *models.TeamMember, skills []models.Skill) error

	// UpdateMember updates member fields and replaces the full skill set
	// (delete-all-then-reinsert) in one transaction
	UpdateMember(member *models.TeamMember, skills []models.Skill) error

	// SetMemberActive flips the soft-disable flag
	SetMemberActive(id uint64, active bool) error

	// DeleteMember removes the member and its skill rows in one transaction
	DeleteMember(id uint64) error

	// ListSkills lists a member's skills id ascending
	ListSkills(memberID uint64) ([]models.Skill, error)
}

// JobRepository defines data access for postings and applications.
type JobRepository interface {
	// ListOpen lists open postings newest-created-first
	ListOpen() ([]models.JobPosting, error)

	// ListAll lists every posting id descending (admin view)
	ListAll() ([]models.JobPosting, error)

	// FindByID finds a posting
	FindByID(id uint64) (*models.JobPosting, error)

	// Create creates a posting
	Create(job *models.JobPosting) error

	// Update updates a posting
	Update(job *models.JobPosting) error

	// SetStatus sets the status flag
	SetStatus(id uint64, status models.JobStatus) error

	// Delete removes a posting, gorm.ErrRecordNotFound when no row matches
	Delete(id uint64) error

	// CreateApplication records a candidate submission
	CreateApplication(app *models.Application) error
}

// ContactRepository defines data access for contact submissions.
type ContactRepository interface {
	// List lists submissions newest-first
	List() ([]models.ContactSubmission, error)

	// Create records a submission
	Create(sub *models.ContactSubmission) error

	// Delete removes a submission, gorm.ErrRecordNotFound when no row matches
	Delete(id string) error
}

// TestimonialRepository defines data access for testimonials.
type TestimonialRepository interface {
	// List lists testimonials newest-first
	List() ([]models.Testimonial, error)

	// FindByID finds a testimonial
	FindByID(id uint64) (*models.Testimonial, error)

	// Create creates a testimonial
	Create(t *models.Testimonial) error

	// Update updates a testimonial
	Update(t *models.Testimonial) error

	// Delete removes a testimonial, gorm.ErrRecordNotFound when no row matches
	Delete(id uint64) error
}

// GalleryRepository defines data access for the category → event → image
// tree.
type GalleryRepository interface {
	// ListCategories lists categories newest-first
	ListCategories() ([]models.GalleryCategory, error)

	// FindCategory finds a category
	FindCategory(id string) (*models.GalleryCategory, error)

	// CreateCategory creates a category
	CreateCategory(cat *models.GalleryCategory) error

	// DeleteCategory removes a category with its events and image rows,
	// gorm.ErrRecordNotFound when the category does not exist
	DeleteCategory(id string) error

	// ListEvents lists every event newest-first with category preloaded
	ListEvents() ([]models.GalleryEvent, error)

	// ListEventsByCategory lists a category's events newest-first
	ListEventsByCategory(categoryID string) ([]models.GalleryEvent, error)

	// FindEvent finds an event
	FindEvent(id string) (*models.GalleryEvent, error)

	// CreateEvent creates an event
	CreateEvent(event *models.GalleryEvent) error

	// DeleteEvent removes an event and its image rows,
	// gorm.ErrRecordNotFound when the event does not exist
	DeleteEvent(id string) error

	// ListImages lists every image newest-first with event and category preloaded
	ListImages() ([]models.GalleryImage, error)

	// ListImagesByEvent lists an event's images newest-first
	ListImagesByEvent(eventID string) ([]models.GalleryImage, error)

	// LatestImageByEvent returns the most recently created image of an
	// event, or gorm.ErrRecordNotFound when the event has none
	LatestImageByEvent(eventID string) (*models.GalleryImage, error)

	// LatestImageByCategory returns the most recently created image of a
	// category, or gorm.ErrRecordNotFound when the category has none
	LatestImageByCategory(categoryID string) (*models.GalleryImage, error)

	// FindImage finds an image
	FindImage(id string) (*models.GalleryImage, error)

	// CreateImage creates an image row
	CreateImage(img *models.GalleryImage) error

	// DeleteImage removes an image row
	DeleteImage(id string) error
}

// SiteRepository defines data access for static marketing content.
type SiteRepository interface {
	// ListMilestones lists the about-page timeline, oldest year first
	ListMilestones() ([]models.AboutMilestone, error)
}
